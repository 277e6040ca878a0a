package xmetrics

import (
	"errors"
	"sort"
	"time"

	"github.com/hashicorp/go-metrics"
	"github.com/selectdb/stock_observer/pkg/xerror"
	log "github.com/sirupsen/logrus"
)

const (
	sinkInterval = 10 * time.Second
	sinkRetain   = time.Minute
)

var inmemSink *metrics.InmemSink

// InitGlobal installs an in-memory sink as the global metrics sink. Until it
// is called every helper below goes to go-metrics' blackhole sink.
func InitGlobal(serviceName string) error {
	return initGlobal(serviceName, sinkInterval, sinkRetain)
}

func initGlobal(serviceName string, interval, retain time.Duration) error {
	sink := metrics.NewInmemSink(interval, retain)

	conf := metrics.DefaultConfig(serviceName)
	conf.EnableHostname = false
	conf.EnableRuntimeMetrics = false
	if _, err := metrics.NewGlobal(conf, sink); err != nil {
		return xerror.Wrap(err, xerror.Normal, "new global metrics failed")
	}

	inmemSink = sink
	return nil
}

// Dump logs the gauges and counters of the current interval.
func Dump() {
	if inmemSink == nil {
		return
	}

	data := inmemSink.Data()
	if len(data) == 0 {
		return
	}
	current := data[len(data)-1]

	gauges := make([]string, 0, len(current.Gauges))
	for name := range current.Gauges {
		gauges = append(gauges, name)
	}
	sort.Strings(gauges)
	for _, name := range gauges {
		log.Infof("[METRICS] gauge %s = %v", name, current.Gauges[name].Value)
	}

	counters := make([]string, 0, len(current.Counters))
	for name := range current.Counters {
		counters = append(counters, name)
	}
	sort.Strings(counters)
	for _, name := range counters {
		log.Infof("[METRICS] counter %s = %v", name, current.Counters[name].Sum)
	}
}

func AddError(err error) {
	var xerr *xerror.XError
	if !errors.As(err, &xerr) {
		return
	}
	metrics.IncrCounter(ErrorMetrics(xerr).Tag(), 1)
}

func AddNewStock(symbol string, price float64) {
	metrics.SetGauge(StockMetrics(symbol).Price().Tag(), float32(price))

	metrics.IncrCounter(DashboardMetrics().StockNum().Tag(), 1)
}

func ObserverCount(symbol string, count int) {
	metrics.SetGauge(StockMetrics(symbol).Observers().Tag(), float32(count))
}

func PriceChanged(symbol string, price float64, notified int) {
	metrics.SetGauge(StockMetrics(symbol).Price().Tag(), float32(price))
	metrics.IncrCounter(StockMetrics(symbol).Notifications().Tag(), float32(notified))

	metrics.IncrCounter(DashboardMetrics().PriceChangeNum().Tag(), 1)
}
