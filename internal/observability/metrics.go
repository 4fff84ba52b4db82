package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MessagesSent counts direct messages accepted by the API.
	MessagesSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "skip2love_messages_sent_total",
		Help: "Total number of direct messages sent",
	})

	// MessagesBlocked counts message sends denied by the block guard.
	MessagesBlocked = promauto.NewCounter(prometheus.CounterOpts{
		Name: "skip2love_messages_blocked_total",
		Help: "Total number of message sends denied by a block relationship",
	})

	// RatingsSubmitted counts rating upserts by outcome (insert vs overwrite).
	RatingsSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skip2love_ratings_submitted_total",
		Help: "Total number of rating submissions",
	}, []string{"outcome"})

	// FavoriteToggles counts favorite adds and removals.
	FavoriteToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skip2love_favorite_toggles_total",
		Help: "Total number of favorite add/remove operations",
	}, []string{"action"})

	// BlocksCreated counts block rows created.
	BlocksCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "skip2love_blocks_created_total",
		Help: "Total number of user blocks created",
	})

	// ReportsFiled counts abuse reports filed.
	ReportsFiled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "skip2love_reports_filed_total",
		Help: "Total number of abuse reports filed",
	})
)
