package bench

import "github.com/prometheus/client_golang/prometheus"

// Metrics exports the latest cycle's figures. A nil *Metrics records nothing.
type Metrics struct {
	opsPerSecond        *prometheus.GaugeVec
	correctnessFailures *prometheus.CounterVec
	corpusBytes         prometheus.Gauge
	cycles              prometheus.Counter
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		opsPerSecond: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "strbench_ops_per_second",
			Help: "Searches per second in the latest cycle, by algorithm.",
		}, []string{"algorithm"}),
		correctnessFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "strbench_correctness_failures_total",
			Help: "Cycles an algorithm was excluded from because it disagreed with the reference.",
		}, []string{"algorithm"}),
		corpusBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "strbench_corpus_bytes",
			Help: "Corpus size searched in the latest cycle.",
		}),
		cycles: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "strbench_cycles_total",
			Help: "Completed measure-and-report cycles.",
		}),
	}

	for _, c := range []prometheus.Collector{m.opsPerSecond, m.correctnessFailures, m.corpusBytes, m.cycles} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observeCorpus(bytes int) {
	if m == nil {
		return
	}
	m.corpusBytes.Set(float64(bytes))
}

func (m *Metrics) observeRejected(name string) {
	if m == nil {
		return
	}
	m.correctnessFailures.WithLabelValues(name).Inc()
}

func (m *Metrics) observeRanking(n int, ranked []Result) {
	if m == nil {
		return
	}
	// algorithms rejected this cycle must not keep an old figure
	m.opsPerSecond.Reset()
	for _, r := range ranked {
		m.opsPerSecond.WithLabelValues(r.Name).Set(r.OpsPerSec(n))
	}
	m.cycles.Inc()
}
