package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Config holds configuration for run metrics.
type Config struct {
	// File, when set, receives the run's metrics in Prometheus text format
	// (suitable for the node_exporter textfile collector).
	File string `mapstructure:"file" default:""`
}

const namespace = "bucket_provisioner"

// Result labels.
const (
	ResultCreated  = "created"
	ResultExisting = "existing"
	ResultFailed   = "failed"
	ResultUploaded = "uploaded"
	ResultSkipped  = "skipped"
)

// Recorder holds the collectors for one provisioning run on its own registry.
type Recorder struct {
	registry *prometheus.Registry

	BucketsCreated prometheus.Counter
	Rules          *prometheus.CounterVec
	Assets         *prometheus.CounterVec
	LastSuccess    prometheus.Gauge
}

// New creates a Recorder with all collectors registered.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		BucketsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "buckets_created_total",
			Help:      "Buckets created because they were absent.",
		}),
		Rules: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "access_rules_total",
			Help:      "Access rule creation attempts by result.",
		}, []string{"result"}),
		Assets: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assets_total",
			Help:      "Local assets by upload result.",
		}, []string{"result"}),
		LastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last run that finished without a fatal error.",
		}),
	}
	r.registry.MustRegister(r.BucketsCreated, r.Rules, r.Assets, r.LastSuccess)
	return r
}

// Rule counts one access rule outcome.
func (r *Recorder) Rule(result string) {
	r.Rules.WithLabelValues(result).Inc()
}

// Asset counts one local asset outcome.
func (r *Recorder) Asset(result string) {
	r.Assets.WithLabelValues(result).Inc()
}

// Succeeded stamps the last-success gauge.
func (r *Recorder) Succeeded(at time.Time) {
	r.LastSuccess.Set(float64(at.Unix()))
}

// Gatherer exposes the recorder's registry.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes the current metrics to path atomically.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
