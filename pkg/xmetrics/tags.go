package xmetrics

import "github.com/selectdb/stock_observer/pkg/xerror"

type IMetricsTag interface {
	Tag() []string
}

type metricsTag struct {
	tags []string
}

// dashboard metrics
type dashboardMetrics struct {
	metricsTag
}

func DashboardMetrics() *dashboardMetrics {
	return &dashboardMetrics{
		metricsTag: metricsTag{[]string{"dashboard"}},
	}
}

func (d *dashboardMetrics) Tag() []string {
	return d.tags
}

func (d *dashboardMetrics) StockNum() IMetricsTag {
	d.tags = append(d.tags, "stockNum")
	return d
}

func (d *dashboardMetrics) PriceChangeNum() IMetricsTag {
	d.tags = append(d.tags, "priceChangeNum")
	return d
}

// stock metrics
type stockMetrics struct {
	metricsTag
	symbol string
}

func StockMetrics(symbol string) *stockMetrics {
	return &stockMetrics{
		metricsTag: metricsTag{[]string{"stock"}},
		symbol:     symbol,
	}
}

func (s *stockMetrics) Tag() []string {
	tags := make([]string, 0, len(s.tags)+1)
	tags = append(tags, s.tags[0], s.symbol)
	return append(tags, s.tags[1:]...)
}

func (s *stockMetrics) Price() IMetricsTag {
	s.tags = append(s.tags, "price")
	return s
}

func (s *stockMetrics) Observers() IMetricsTag {
	s.tags = append(s.tags, "observers")
	return s
}

func (s *stockMetrics) Notifications() IMetricsTag {
	s.tags = append(s.tags, "notifications")
	return s
}

// error metrics
type errorMetrics struct {
	metricsTag
}

func ErrorMetrics(err *xerror.XError) IMetricsTag {
	errMetrics := &errorMetrics{
		metricsTag: metricsTag{[]string{"error", err.Category().Name()}},
	}

	switch {
	case err.IsRecoverable():
		errMetrics.tags = append(errMetrics.tags, "recoverable")
	case err.IsPanic():
		errMetrics.tags = append(errMetrics.tags, "panic")
	default:
		errMetrics.tags = append(errMetrics.tags, "unknown")
	}

	return errMetrics
}

func (e *errorMetrics) Tag() []string {
	return e.tags
}
