package invite

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	generatedMetric = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "memorylane",
		Name:      "invites_generated_total",
		Help:      "The total number of invite codes generated",
	})

	redeemedMetric = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "memorylane",
		Name:      "invites_redeemed_total",
		Help:      "The total number of invites redeemed successfully",
	})

	redeemFailedMetric = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "memorylane",
		Name:      "invite_redeem_failures_total",
		Help:      "The total number of failed invite redemptions",
	}, []string{"reason"})
)
