package xmetrics

import (
	"errors"
	"testing"

	"github.com/selectdb/stock_observer/pkg/xerror"
	"github.com/stretchr/testify/assert"
)

func TestDashboardTags(t *testing.T) {
	assert.Equal(t, []string{"dashboard", "stockNum"}, DashboardMetrics().StockNum().Tag())
	assert.Equal(t, []string{"dashboard", "priceChangeNum"}, DashboardMetrics().PriceChangeNum().Tag())
}

func TestStockTags(t *testing.T) {
	assert.Equal(t, []string{"stock", "IBM", "price"}, StockMetrics("IBM").Price().Tag())
	assert.Equal(t, []string{"stock", "Dell", "observers"}, StockMetrics("Dell").Observers().Tag())

	// Tag must not grow on repeated calls
	tag := StockMetrics("IBM").Notifications()
	assert.Equal(t, tag.Tag(), tag.Tag())
	assert.Equal(t, []string{"stock", "IBM", "notifications"}, tag.Tag())
}

func TestErrorTags(t *testing.T) {
	recoverable := xerror.NewWithoutStack(xerror.Market, "duplicate symbol")
	assert.Equal(t, []string{"error", "market", "recoverable"}, ErrorMetrics(recoverable).Tag())

	var panicked *xerror.XError
	assert.True(t, errors.As(xerror.Panicf(xerror.Stock, "attach nil observer to stock %s", "IBM"), &panicked))
	assert.Equal(t, []string{"error", "stock", "panic"}, ErrorMetrics(panicked).Tag())
}
