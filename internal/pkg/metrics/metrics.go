package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Anomaly kinds reported by the aggregators when a derived value had to be normalised.
const (
	AnomalyNegativeAbsence      = "negative_absence"
	AnomalyRateOverflow         = "rate_over_100"
	AnomalyNegativeTodayAbsence = "negative_today_absence"
)

// Recorder counts data-quality anomalies. A nil *Recorder is a valid no-op.
type Recorder struct {
	registry  *prometheus.Registry
	anomalies *prometheus.CounterVec
	contracts *prometheus.GaugeVec
}

func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	anomalies := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hris",
		Subsystem: "attendance",
		Name:      "data_anomalies_total",
		Help:      "Derived attendance values that were clamped because the stored records were inconsistent.",
	}, []string{"kind"})
	contracts := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "hris",
		Subsystem: "contract",
		Name:      "employees",
		Help:      "Contract employees per urgency bucket as of the last sweep.",
	}, []string{"status"})
	reg.MustRegister(anomalies, contracts)
	return &Recorder{registry: reg, anomalies: anomalies, contracts: contracts}
}

func (r *Recorder) Anomaly(kind string) {
	if r == nil {
		return
	}
	r.anomalies.WithLabelValues(kind).Inc()
}

// ContractStatus replaces the contract gauges with the given bucket sizes.
func (r *Recorder) ContractStatus(counts map[string]int) {
	if r == nil {
		return
	}
	for status, n := range counts {
		r.contracts.WithLabelValues(status).Set(float64(n))
	}
}

// Registry exposes the underlying registry, mostly for tests.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
