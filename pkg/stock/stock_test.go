package stock

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// recorder remembers the name and the observed price of every update, in call order.
type recorder struct {
	name string
	log  *[]string
}

// observerFunc adapts a plain func; func values are not comparable.
type observerFunc func(*Stock)

func (f observerFunc) Update(s *Stock) {
	f(s)
}

func (r *recorder) Update(s *Stock) {
	*r.log = append(*r.log, fmt.Sprintf("%s@%s=%.1f", r.name, s.Symbol(), s.Price()))
}

func TestNewStock(t *testing.T) {
	s := NewStock("IBM", 120.00)
	assert.Equal(t, "IBM", s.Symbol())
	assert.Equal(t, 120.00, s.Price())
	assert.Equal(t, 0, s.ObserverCount())
}

func TestAttachNilPanicCarriesStockError(t *testing.T) {
	s := NewStock("IBM", 120.00)
	defer func() {
		entry, ok := recover().(*logrus.Entry)
		require.True(t, ok)
		assert.Contains(t, entry.Message, "[stock] attach nil observer to stock IBM")
	}()

	s.Attach(nil)
}

func TestAttachTypedNilPanics(t *testing.T) {
	s := NewStock("IBM", 120.00)

	var r *recorder
	assert.Panics(t, func() {
		s.Attach(r)
	})

	var f observerFunc
	assert.Panics(t, func() {
		s.Attach(f)
	})
	assert.Equal(t, 0, s.ObserverCount())
}

func TestDetachFuncObserver(t *testing.T) {
	var calls []string
	s := NewStock("IBM", 1.0)

	f := observerFunc(func(got *Stock) {
		calls = append(calls, fmt.Sprintf("func@%.1f", got.Price()))
	})
	r := &recorder{name: "r", log: &calls}
	s.Attach(f)
	s.Attach(r)

	assert.NotPanics(t, func() {
		s.Detach(f)
		s.Detach(r)
		s.Detach(nil)
	})
	// func observers can't be matched, so they stay attached
	require.Equal(t, 1, s.ObserverCount())

	s.SetPrice(2.0)
	assert.Equal(t, []string{"func@2.0"}, calls)
}

func TestAttachKeepsOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := NewStock("IBM", 120.00)

	observers := make([]*MockObserver, 5)
	for i := range observers {
		observers[i] = NewMockObserver(ctrl)
		s.Attach(observers[i])
	}
	require.Equal(t, 5, s.ObserverCount())

	calls := make([]*gomock.Call, 0, len(observers))
	for _, o := range observers {
		calls = append(calls, o.EXPECT().Update(s).Do(func(got *Stock) {
			assert.Equal(t, 120.10, got.Price())
		}))
	}
	gomock.InOrder(calls...)

	s.SetPrice(120.10)
}

func TestSetSamePriceIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := NewStock("IBM", 120.00)

	observer := NewMockObserver(ctrl)
	observer.EXPECT().Update(gomock.Any()).Times(0)
	s.Attach(observer)

	s.SetPrice(120.00)
	assert.Equal(t, 120.00, s.Price())
}

func TestSetPriceNotifiesEachChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := NewStock("IBM", 120.00)

	observer := NewMockObserver(ctrl)
	observer.EXPECT().Update(s).Times(3)
	s.Attach(observer)

	s.SetPrice(120.10)
	s.SetPrice(120.10)
	s.SetPrice(121.00)
	s.SetPrice(120.50)
	assert.Equal(t, 120.50, s.Price())
}

func TestDetach(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := NewStock("Dell", 200.00)

	kept := NewMockObserver(ctrl)
	detached := NewMockObserver(ctrl)
	s.Attach(detached)
	s.Attach(kept)

	kept.EXPECT().Update(s).Times(1)
	detached.EXPECT().Update(gomock.Any()).Times(0)

	s.Detach(detached)
	assert.Equal(t, 1, s.ObserverCount())

	s.SetPrice(201.00)
}

func TestDetachUnknownIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := NewStock("Dell", 200.00)

	attached := NewMockObserver(ctrl)
	s.Attach(attached)

	s.Detach(NewMockObserver(ctrl))
	assert.Equal(t, 1, s.ObserverCount())
}

func TestDetachRemovesFirstMatchOnly(t *testing.T) {
	var calls []string
	a := &recorder{name: "a", log: &calls}
	b := &recorder{name: "b", log: &calls}

	s := NewStock("IBM", 1.0)
	s.Attach(a)
	s.Attach(b)
	s.Attach(a)

	s.Detach(a)
	require.Equal(t, 2, s.ObserverCount())

	s.SetPrice(2.0)
	assert.Equal(t, []string{"b@IBM=2.0", "a@IBM=2.0"}, calls)
}

func TestDuplicateAttachNotifiesTwice(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := NewStock("IBM", 120.00)

	observer := NewMockObserver(ctrl)
	s.Attach(observer)
	s.Attach(observer)

	observer.EXPECT().Update(s).Times(4)

	s.SetPrice(120.10)
	s.SetPrice(121.00)
}

func TestObserverSharedAcrossStocks(t *testing.T) {
	var calls []string
	shared := &recorder{name: "shared", log: &calls}

	ibm := NewStock("IBM", 1.0)
	dell := NewStock("Dell", 2.0)
	ibm.Attach(shared)
	dell.Attach(shared)

	ibm.SetPrice(3.0)
	dell.SetPrice(4.0)
	ibm.Detach(shared)
	ibm.SetPrice(5.0)
	dell.SetPrice(6.0)

	assert.Equal(t, []string{"shared@IBM=3.0", "shared@Dell=4.0", "shared@Dell=6.0"}, calls)
}

func TestAttachNilPanics(t *testing.T) {
	s := NewStock("IBM", 120.00)
	assert.Panics(t, func() {
		s.Attach(nil)
	})
	assert.Equal(t, 0, s.ObserverCount())
}

func TestSeparatorAfterEachBatch(t *testing.T) {
	var out bytes.Buffer
	var calls []string

	s := NewStock("IBM", 1.0)
	s.SetSeparatorOutput(&out)
	s.Attach(&recorder{name: "a", log: &calls})
	s.Attach(&recorder{name: "b", log: &calls})

	s.SetPrice(1.0)
	assert.Equal(t, "", out.String())

	s.SetPrice(2.0)
	s.SetPrice(3.0)
	assert.Equal(t, "\n\n", out.String())
	assert.Len(t, calls, 4)
}

func TestNotifyWithoutObservers(t *testing.T) {
	var out bytes.Buffer
	s := NewStock("IBM", 1.0)
	s.SetSeparatorOutput(&out)

	s.Notify()
	assert.Equal(t, "\n", out.String())
}
