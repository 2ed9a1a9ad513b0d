package sntp

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// StatService exports the daemon's view of the last exchange over HTTP in
// Prometheus format.
type StatService struct {
	offsetGauge  prometheus.Gauge
	delayGauge   prometheus.Gauge
	stratumGauge prometheus.Gauge
	reqCounter   *prometheus.CounterVec
}

func NewStatService(addr string) *StatService {
	offsetGauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "sntp",
		Subsystem: "stat",
		Name:      "offset_ms",
		Help:      "The clock offset of the last exchange",
	})
	prometheus.MustRegister(offsetGauge)

	delayGauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "sntp",
		Subsystem: "stat",
		Name:      "delay_ms",
		Help:      "The round-trip delay of the last exchange",
	})
	prometheus.MustRegister(delayGauge)

	stratumGauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "sntp",
		Subsystem: "stat",
		Name:      "stratum",
		Help:      "The stratum reported by the server",
	})
	prometheus.MustRegister(stratumGauge)

	reqCounter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sntp",
		Subsystem: "exchange",
		Name:      "total",
		Help:      "The total number of exchanges by result",
	}, []string{"result"})
	prometheus.MustRegister(reqCounter)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		info("(Stats) listening on", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			info("(Stats) listener failed:", err)
		}
	}()

	return &StatService{
		offsetGauge:  offsetGauge,
		delayGauge:   delayGauge,
		stratumGauge: stratumGauge,
		reqCounter:   reqCounter,
	}
}

func (s *StatService) Update(result *QueryResult) {
	s.offsetGauge.Set(result.Offset)
	s.delayGauge.Set(result.Delay)
	s.stratumGauge.Set(float64(result.Header.Stratum))
	s.reqCounter.WithLabelValues("ok").Inc()
}

func (s *StatService) Miss() {
	s.reqCounter.WithLabelValues("error").Inc()
}
