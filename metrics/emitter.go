package metrics

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vanso-himesh/rs-mysql/tuning"
)

type Emitter struct {
	tunable      *prometheus.Desc
	systemMemory *prometheus.Desc
	tunables     tuning.TunableSet
	memoryBytes  uint64
	registry     *prometheus.Registry
}

func New(tunables tuning.TunableSet, memoryBytes uint64) *Emitter {
	e := &Emitter{
		registry:    prometheus.NewRegistry(),
		tunables:    tunables,
		memoryBytes: memoryBytes,
		tunable: prometheus.NewDesc(
			"rs_mysql_tunable",
			"Value of a mysql server tunable as written to the option file",
			[]string{"tunable"},
			nil,
		),
		systemMemory: prometheus.NewDesc(
			"rs_mysql_system_memory_bytes",
			"System memory the tunables were sized against",
			nil,
			nil,
		),
	}

	e.registry.MustRegister(e)
	return e
}

func (e *Emitter) Describe(desc chan<- *prometheus.Desc) {
	desc <- e.tunable
	desc <- e.systemMemory
}

func (e *Emitter) Collect(metrics chan<- prometheus.Metric) {
	for name, value := range e.tunables {
		metrics <- prometheus.MustNewConstMetric(e.tunable, prometheus.GaugeValue, float64(value), name)
	}
	metrics <- prometheus.MustNewConstMetric(e.systemMemory, prometheus.GaugeValue, float64(e.memoryBytes))
}

func (e *Emitter) Handler() http.Handler {
	return promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{})
}

// WriteTextfile writes the metrics in the format read by the node exporter textfile collector.
func (e *Emitter) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, e.registry); err != nil {
		return errors.Wrapf(err, "failed to write metrics to %s", path)
	}
	return nil
}

var _ prometheus.Collector = (*Emitter)(nil)
