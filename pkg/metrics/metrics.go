package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	EntriesCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "tidelog", Name: "entries_created_total", Help: "Number of intake entries created, by unit supplied."},
		[]string{"unit"},
	)
	EntriesDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "tidelog", Name: "entries_deleted_total", Help: "Number of intake entries deleted."},
	)
	ProfileUpserts = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "tidelog", Name: "profile_upserts_total", Help: "Number of profile writes."},
	)
	StoreOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "tidelog", Name: "store_ops_total", Help: "Ledger document loads and saves, by op."},
		[]string{"op"},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "tidelog", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "tidelog", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(EntriesCreated)
	reg.MustRegister(EntriesDeleted)
	reg.MustRegister(ProfileUpserts)
	reg.MustRegister(StoreOps)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}
