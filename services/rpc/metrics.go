package rpc

import (
	"sync"

	"github.com/cloakchain/cloaknode/util"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	prometheusHandleInfo               prometheus.Histogram
	prometheusHandleFee                prometheus.Histogram
	prometheusHandleHeight             prometheus.Histogram
	prometheusHandlePeers              prometheus.Histogram
	prometheusHandleSendRawTransaction prometheus.Histogram
	prometheusHandleGetRandomOuts      prometheus.Histogram
)

var prometheusMetricsInitOnce sync.Once

func initPrometheusMetrics() {
	prometheusMetricsInitOnce.Do(_initPrometheusMetrics)
}

func _initPrometheusMetrics() {
	prometheusHandleInfo = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "rpc",
			Name:      "info",
			Help:      "Histogram of calls to the info handler in the rpc service",
			Buckets:   util.MetricsBucketsMilliSeconds,
		},
	)
	prometheusHandleFee = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "rpc",
			Name:      "fee",
			Help:      "Histogram of calls to the fee handler in the rpc service",
			Buckets:   util.MetricsBucketsMilliSeconds,
		},
	)
	prometheusHandleHeight = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "rpc",
			Name:      "height",
			Help:      "Histogram of calls to the height handler in the rpc service",
			Buckets:   util.MetricsBucketsMilliSeconds,
		},
	)
	prometheusHandlePeers = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "rpc",
			Name:      "peers",
			Help:      "Histogram of calls to the peers handler in the rpc service",
			Buckets:   util.MetricsBucketsMilliSeconds,
		},
	)
	prometheusHandleSendRawTransaction = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "rpc",
			Name:      "send_raw_transaction",
			Help:      "Histogram of calls to the sendTransaction handler in the rpc service",
			Buckets:   util.MetricsBucketsMilliSeconds,
		},
	)
	prometheusHandleGetRandomOuts = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "rpc",
			Name:      "get_random_outs",
			Help:      "Histogram of calls to the getRandomOuts handler in the rpc service",
			Buckets:   util.MetricsBucketsMilliSeconds,
		},
	)
}
