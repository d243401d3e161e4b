// internal/pkg/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CheckinsRecorded counts attendance check-ins that were admitted.
	CheckinsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gymflow_checkins_recorded_total",
		Help: "Number of attendance check-ins recorded.",
	})

	// CheckinsDenied counts denied check-ins by reason.
	CheckinsDenied = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gymflow_checkins_denied_total",
		Help: "Number of attendance check-ins denied, by reason.",
	}, []string{"reason"})

	// FeeCollectionsRecorded counts recorded fee collections.
	FeeCollectionsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gymflow_fee_collections_recorded_total",
		Help: "Number of fee collections recorded.",
	})

	// SubscriptionsSuspended counts lazy suspensions performed on read.
	SubscriptionsSuspended = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gymflow_subscriptions_suspended_total",
		Help: "Number of subscriptions auto-suspended for stale payment.",
	})
)
