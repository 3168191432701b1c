package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ffcatalog"

// Result label values
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Registry holds every collector exported by the service
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

var (
	// SyncTotal counts catalog syncs by scope (all|owner) and result
	SyncTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sync_total",
		Help:      "Number of catalog synchronizations.",
	}, []string{"scope", "result"})

	// SyncDuration observes the wall time of catalog syncs
	SyncDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "sync_duration_seconds",
		Help:      "Duration of catalog synchronizations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"scope"})

	// MetadataUnavailable counts tokens rendered with placeholder metadata
	MetadataUnavailable = factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "metadata_unavailable_total",
		Help:      "Number of tokens whose metadata could not be loaded.",
	})

	// DroppedRecords counts registry records excluded for missing required fields
	DroppedRecords = factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dropped_records_total",
		Help:      "Number of malformed registry records dropped from the catalog.",
	})

	// DroppedTransfers counts transfer events dropped because their block could not be resolved
	DroppedTransfers = factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dropped_transfers_total",
		Help:      "Number of transfer events dropped from ownership history.",
	})

	// UploadTasks counts publish tasks run by the upload queue
	UploadTasks = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upload_tasks_total",
		Help:      "Number of upload tasks executed by the rate limited queue.",
	}, []string{"result"})
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// Handler serves the registry in the Prometheus exposition format
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{Registry: Registry})
}

// Result maps an error to a result label value
func Result(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultOK
}
