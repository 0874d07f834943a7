// Package telemetry exposes per-step simulation counters as Prometheus
// metrics. A Recorder is a sim.Observer; its registry can be written in
// the node_exporter textfile format once a run ends.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/san-kum/spacesim/internal/physics"
	"github.com/san-kum/spacesim/internal/vec"
)

const namespace = "spacesim"

type Recorder struct {
	registry *prometheus.Registry

	steps      prometheus.Counter
	collisions prometheus.Counter
	wallHits   prometheus.Counter
	simTime    prometheus.Gauge
	kinetic    prometheus.Gauge
	momentum   prometheus.Gauge
	entities   prometheus.Gauge
}

// NewRecorder registers the step metrics under a fresh registry. The run
// label is attached to every series.
func NewRecorder(run string) *Recorder {
	labels := prometheus.Labels{"run": run}
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		steps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "steps_total",
			Help: "Number of integration steps taken", ConstLabels: labels,
		}),
		collisions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "collisions_total",
			Help: "Number of pairwise collision responses applied", ConstLabels: labels,
		}),
		wallHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "wall_hits_total",
			Help: "Number of wall reflections", ConstLabels: labels,
		}),
		simTime: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "simulated_time_seconds",
			Help: "Simulated time after the latest step", ConstLabels: labels,
		}),
		kinetic: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "kinetic_energy",
			Help: "Total kinetic energy after the latest step", ConstLabels: labels,
		}),
		momentum: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "momentum_magnitude",
			Help: "Magnitude of the total momentum after the latest step", ConstLabels: labels,
		}),
		entities: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "entities",
			Help: "Number of entities in the population", ConstLabels: labels,
		}),
	}
	r.registry.MustRegister(r.steps, r.collisions, r.wallHits, r.simTime, r.kinetic, r.momentum, r.entities)
	return r
}

func (r *Recorder) OnStep(pop []physics.Entity, stats physics.StepStats, t float64) {
	r.steps.Inc()
	r.collisions.Add(float64(stats.Collisions))
	r.wallHits.Add(float64(stats.WallHits))
	r.simTime.Set(t)
	r.kinetic.Set(physics.KineticEnergy(pop))
	r.momentum.Set(vec.Length(physics.TotalMomentum(pop)))
	r.entities.Set(float64(len(pop)))
}

func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// WriteTextfile writes the current values to path atomically.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
