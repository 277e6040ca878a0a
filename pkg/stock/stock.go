package stock

import (
	"fmt"
	"io"
	"reflect"

	"github.com/selectdb/stock_observer/pkg/utils"
	"github.com/selectdb/stock_observer/pkg/xerror"
	"github.com/selectdb/stock_observer/pkg/xmetrics"

	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

// Observer is anything that wants to hear about a Stock's price changes.
type Observer = utils.Observer[*Stock]

var _ utils.Subject[*Stock] = (*Stock)(nil)

// Stock is the subject. It owns the order of its observers but not the
// observers themselves, which may be attached to several stocks at once.
type Stock struct {
	symbol    string
	price     float64
	observers []Observer

	// separator receives one blank line after each notification batch
	separator io.Writer
}

func NewStock(symbol string, price float64) *Stock {
	return &Stock{
		symbol: symbol,
		price:  price,
	}
}

func (s *Stock) String() string {
	return fmt.Sprintf("symbol: %s, price: %v, observers: %d", s.symbol, s.price, len(s.observers))
}

func (s *Stock) Symbol() string {
	return s.symbol
}

func (s *Stock) Price() float64 {
	return s.price
}

func (s *Stock) ObserverCount() int {
	return len(s.observers)
}

func (s *Stock) SetSeparatorOutput(w io.Writer) {
	s.separator = w
}

// SetPrice is the only way to change the price. Observers are notified
// before SetPrice returns, and only when the price actually differs.
func (s *Stock) SetPrice(price float64) {
	if s.price == price {
		return
	}

	s.price = price
	s.Notify()
}

// impl utils.Subject[*Stock]
func (s *Stock) Attach(observer Observer) {
	if isNilObserver(observer) {
		err := xerror.Panicf(xerror.Stock, "attach nil observer to stock %s", s.symbol)
		xmetrics.AddError(err)
		log.Panicf("%+v", err)
	}
	log.Debugf("attach observer %v to stock %s", observer, s.symbol)

	s.observers = append(s.observers, observer)
	xmetrics.ObserverCount(s.symbol, len(s.observers))
}

func (s *Stock) Detach(observer Observer) {
	log.Debugf("detach observer %v from stock %s", observer, s.symbol)

	i := slices.IndexFunc(s.observers, func(o Observer) bool {
		return sameObserver(o, observer)
	})
	if i < 0 {
		return
	}
	s.observers = slices.Delete(s.observers, i, i+1)
	xmetrics.ObserverCount(s.symbol, len(s.observers))
}

func (s *Stock) Notify() {
	log.WithField("stock", s.symbol).Debugf("notify %d observers, price: %v", len(s.observers), s.price)

	for _, o := range s.observers {
		o.Update(s)
	}
	xmetrics.PriceChanged(s.symbol, s.price, len(s.observers))

	if s.separator != nil {
		if _, err := io.WriteString(s.separator, "\n"); err != nil {
			log.Warnf("write separator for stock %s failed: %v", s.symbol, err)
		}
	}
}

// isNilObserver also catches typed nils, e.g. (*investor.Investor)(nil).
func isNilObserver(observer Observer) bool {
	if observer == nil {
		return true
	}

	v := reflect.ValueOf(observer)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan, reflect.Slice, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

// sameObserver reports whether a and b are the same registration. Observers
// of a non-comparable type (func, map, slice) never match, so Detach leaves
// them attached instead of panicking.
func sameObserver(a, b Observer) bool {
	if b == nil || !reflect.TypeOf(b).Comparable() {
		return false
	}
	return a == b
}
