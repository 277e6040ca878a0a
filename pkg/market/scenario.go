package market

import (
	"io"

	"github.com/selectdb/stock_observer/pkg/investor"
	"github.com/selectdb/stock_observer/pkg/xerror"

	log "github.com/sirupsen/logrus"
)

// Listing is a stock to list and the names of the investors to attach to
// it, in attach order. Each name gets its own Investor.
type Listing struct {
	Symbol    string
	Price     float64
	Investors []string
}

type PriceMove struct {
	Symbol string
	Price  float64
}

type Scenario struct {
	Listings []Listing
	Moves    []PriceMove
}

// DefaultScenario is the IBM/Dell demo run by the stock_observer binary.
func DefaultScenario() *Scenario {
	return &Scenario{
		Listings: []Listing{
			{Symbol: "IBM", Price: 120.00, Investors: []string{"Marlon Santos", "John Smith"}},
			{Symbol: "Dell", Price: 200.00, Investors: []string{"John Smith", "Marlon Santos"}},
		},
		Moves: []PriceMove{
			{Symbol: "IBM", Price: 120.10},
			{Symbol: "IBM", Price: 121.00},
			{Symbol: "IBM", Price: 120.50},
			{Symbol: "IBM", Price: 120.75},
			{Symbol: "Dell", Price: 201.00},
		},
	}
}

// Run lists every stock of the scenario, attaches its investors writing to
// out, then applies the price moves in order.
func (m *Market) Run(scenario *Scenario, out io.Writer) error {
	for _, listing := range scenario.Listings {
		s, err := m.AddStock(listing.Symbol, listing.Price)
		if err != nil {
			return err
		}
		s.SetSeparatorOutput(out)

		for _, name := range listing.Investors {
			s.Attach(investor.NewInvestor(name, out))
		}
	}

	for i, move := range scenario.Moves {
		log.Debugf("apply move %d: %s -> %v", i, move.Symbol, move.Price)
		if err := m.SetPrice(move.Symbol, move.Price); err != nil {
			return xerror.Wrapf(err, xerror.Market, "apply move %d", i)
		}
	}

	return nil
}
