// Package metrics holds the Prometheus collectors of the sync server.
//
// All collectors live on a private registry, so tests can build as many
// [Metrics] values as they need without clashing on the default registerer.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "epr_sync"

// Result label values.
const (
	ResultOK       = "ok"
	ResultFailed   = "failed"
	ResultRejected = "rejected"
)

type Metrics struct {
	registry *prometheus.Registry

	// Connections counts accepted connections by flow and handshake result.
	Connections *prometheus.CounterVec

	// ActiveConversations is the number of conversations in progress per flow.
	ActiveConversations *prometheus.GaugeVec

	// ConversationDuration observes how long one conversation took.
	ConversationDuration *prometheus.HistogramVec

	RecordsAccepted *prometheus.CounterVec
	SyncRounds      *prometheus.CounterVec
	EntriesServed   prometheus.Counter
	Queries         *prometheus.CounterVec

	// ArchivedEntries counts log entries moved to the history table.
	ArchivedEntries prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Connections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "connections_total",
			Help:      "Accepted connections by flow and handshake result.",
		}, []string{"flow", "result"}),
		ActiveConversations: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_conversations",
			Help:      "Conversations currently in progress.",
		}, []string{"flow"}),
		ConversationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "conversation_duration_seconds",
			Help:      "Duration of one conversation.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"flow"}),
		RecordsAccepted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_total",
			Help:      "Pushed records by result.",
		}, []string{"result"}),
		SyncRounds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_rounds_total",
			Help:      "Sync rounds by result.",
		}, []string{"result"}),
		EntriesServed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "log_entries_served_total",
			Help:      "Mutation log entries sent to clients.",
		}),
		Queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queries_total",
			Help:      "Queries by kind and result.",
		}, []string{"kind", "result"}),
		ArchivedEntries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "log_entries_archived_total",
			Help:      "Mutation log entries moved to history.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.Connections,
		m.ActiveConversations,
		m.ConversationDuration,
		m.RecordsAccepted,
		m.SyncRounds,
		m.EntriesServed,
		m.Queries,
		m.ArchivedEntries,
	)

	return m
}

// Handler exposes the registry in the text exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry is the registry the collectors are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Result maps a boolean outcome onto the result label.
func Result(ok bool) string {
	if ok {
		return ResultOK
	}
	return ResultFailed
}
