package metrics

import (
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/0xERR0R/tldextract/config"
	"github.com/0xERR0R/tldextract/log"
)

//nolint:gochecknoglobals
var (
	reg       = prometheus.NewRegistry()
	startOnce sync.Once
)

func logger() *logrus.Entry {
	return log.PrefixedLog("metrics")
}

// RegisterMetric registers prometheus collector
func RegisterMetric(c prometheus.Collector) {
	_ = reg.Register(c)
}

// StartCollection registers the runtime collectors and the event listeners.
// Calling it more than once has no effect.
func StartCollection() {
	startOnce.Do(func() {
		RegisterMetric(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		RegisterMetric(collectors.NewGoCollector())

		RegisterEventListeners()
	})
}

// Handler exposes the registered metrics
func Handler() http.Handler {
	return promhttp.InstrumentMetricHandler(reg, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
}

// Start starts the collection and mounts the metrics endpoint, if enabled
func Start(router chi.Router, cfg config.Metrics) {
	if !cfg.Enable {
		return
	}

	StartCollection()

	router.Handle(cfg.Path, Handler())

	logger().Infof("metrics exposed on '%s'", cfg.Path)
}
