package investor

import (
	"fmt"
	"io"

	"github.com/selectdb/stock_observer/pkg/stock"
	"github.com/selectdb/stock_observer/pkg/utils"
	"github.com/selectdb/stock_observer/pkg/xerror"
	"github.com/selectdb/stock_observer/pkg/xmetrics"

	log "github.com/sirupsen/logrus"
)

var _ stock.Observer = (*Investor)(nil)

// Investor prints a line to its writer for every price change it is told about.
type Investor struct {
	name string
	out  io.Writer
}

func NewInvestor(name string, out io.Writer) *Investor {
	return &Investor{
		name: name,
		out:  out,
	}
}

func (i *Investor) Name() string {
	return i.name
}

func (i *Investor) String() string {
	return fmt.Sprintf("investor: %s", i.name)
}

// impl utils.Observer[*stock.Stock]
func (i *Investor) Update(s *stock.Stock) {
	_, err := fmt.Fprintf(i.out, "Notified %s of %s's change to %s\n", i.name, s.Symbol(), utils.FormatCurrency(s.Price()))
	if err != nil {
		err = xerror.Wrapf(err, xerror.Console, "notify %s of %s", i.name, s.Symbol())
		xmetrics.AddError(err)
		log.Warnf("%+v", err)
	}
}
