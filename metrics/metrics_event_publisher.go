package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/0xERR0R/tldextract/evt"
	"github.com/0xERR0R/tldextract/util"
)

const (
	sectionPublic  = "public"
	sectionPrivate = "private"
)

// eventCounters are incremented once per event published on their topic.
// nolint:gochecknoglobals
var eventCounters = []struct {
	topic string
	opts  prometheus.CounterOpts
	// handler builds a bus callback with the topic's signature
	handler func(prometheus.Counter) interface{}
}{
	{
		evt.SuffixListRefreshFailed,
		prometheus.CounterOpts{
			Name: "tldextract_suffix_list_refresh_failed_count",
			Help: "Failed suffix list refresh counter",
		},
		func(c prometheus.Counter) interface{} { return func(error) { c.Inc() } },
	},
	{
		evt.CachingFailedDownloadChanged,
		prometheus.CounterOpts{
			Name: "tldextract_failed_download_count",
			Help: "Failed download counter",
		},
		incOnString,
	},
	{
		evt.ExtractCacheHit,
		prometheus.CounterOpts{
			Name: "tldextract_cache_hit_count",
			Help: "Extraction cache hit counter",
		},
		incOnString,
	},
	{
		evt.ExtractCacheMiss,
		prometheus.CounterOpts{
			Name: "tldextract_cache_miss_count",
			Help: "Extraction cache miss counter",
		},
		incOnString,
	},
	{
		evt.DomainRejected,
		prometheus.CounterOpts{
			Name: "tldextract_rejected_domain_count",
			Help: "Number of inputs rejected as invalid domains",
		},
		incOnString,
	},
}

func incOnString(c prometheus.Counter) interface{} {
	return func(string) { c.Inc() }
}

// RegisterEventListeners registers all metric handlers by the event bus
func RegisterEventListeners() {
	registerBuildInfo()
	registerSuffixListGauges()

	for _, ec := range eventCounters {
		counter := prometheus.NewCounter(ec.opts)
		RegisterMetric(counter)

		subscribe(ec.topic, ec.handler(counter))
	}
}

func registerBuildInfo() {
	info := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "tldextract_build_info",
		Help: "Version number and build info",
	}, []string{"version", "build_time"})

	RegisterMetric(info)

	subscribe(evt.ApplicationStarted, func(version, buildTime string) {
		info.WithLabelValues(version, buildTime).Set(1)
	})
}

func registerSuffixListGauges() {
	rules := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "tldextract_suffix_rules",
		Help: "Number of rules in the suffix list",
	}, []string{"section"})

	lastRefresh := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "tldextract_last_suffix_list_refresh",
		Help: "Timestamp of last suffix list refresh",
	})

	RegisterMetric(rules)
	RegisterMetric(lastRefresh)

	subscribe(evt.SuffixListRefreshed, func(public, private int) {
		lastRefresh.SetToCurrentTime()

		rules.WithLabelValues(sectionPublic).Set(float64(public))
		rules.WithLabelValues(sectionPrivate).Set(float64(private))
	})
}

func subscribe(topic string, fn interface{}) {
	util.FatalOnError(fmt.Sprintf("can't subscribe topic '%s'", topic), evt.Bus().Subscribe(topic, fn))
}
