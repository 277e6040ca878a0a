package market

import (
	"github.com/selectdb/stock_observer/pkg/stock"
	"github.com/selectdb/stock_observer/pkg/xerror"
	"github.com/selectdb/stock_observer/pkg/xmetrics"

	log "github.com/sirupsen/logrus"
	"github.com/tidwall/btree"
)

const degree = 32

// Market indexes stocks by symbol, in symbol order.
type Market struct {
	stocks *btree.Map[string, *stock.Stock]
}

func NewMarket() *Market {
	return &Market{
		stocks: btree.NewMap[string, *stock.Stock](degree),
	}
}

// AddStock lists a new stock. Symbols are unique within a market.
func (m *Market) AddStock(symbol string, price float64) (*stock.Stock, error) {
	if symbol == "" {
		err := xerror.New(xerror.Market, "symbol is empty")
		xmetrics.AddError(err)
		return nil, err
	}
	if _, ok := m.stocks.Get(symbol); ok {
		err := xerror.Errorf(xerror.Market, "stock %s already listed", symbol)
		xmetrics.AddError(err)
		return nil, err
	}

	log.Infof("list stock %s at %v", symbol, price)
	s := stock.NewStock(symbol, price)
	m.stocks.Set(symbol, s)
	xmetrics.AddNewStock(symbol, price)
	return s, nil
}

func (m *Market) GetStock(symbol string) (*stock.Stock, bool) {
	return m.stocks.Get(symbol)
}

// SetPrice moves the price of a listed stock, notifying its observers
// before returning.
func (m *Market) SetPrice(symbol string, price float64) error {
	s, ok := m.stocks.Get(symbol)
	if !ok {
		err := xerror.Errorf(xerror.Market, "stock %s not listed", symbol)
		xmetrics.AddError(err)
		return err
	}

	s.SetPrice(price)
	return nil
}

func (m *Market) Len() int {
	return m.stocks.Len()
}

// Symbols returns the listed symbols in sorted order.
func (m *Market) Symbols() []string {
	symbols := make([]string, 0, m.stocks.Len())
	m.stocks.Scan(func(symbol string, _ *stock.Stock) bool {
		symbols = append(symbols, symbol)
		return true
	})
	return symbols
}

// Snapshot returns the current price of every listed stock.
func (m *Market) Snapshot() map[string]float64 {
	prices := make(map[string]float64, m.stocks.Len())
	m.stocks.Scan(func(symbol string, s *stock.Stock) bool {
		prices[symbol] = s.Price()
		return true
	})
	return prices
}
