package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MatchRequests counts eligibility match runs, labelled by outcome
	MatchRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scholarseeker_match_requests_total",
		Help: "Number of eligibility match runs",
	}, []string{"outcome"})

	// EngagementActions counts bookmark/apply actions, labelled by action and result
	EngagementActions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scholarseeker_engagement_actions_total",
		Help: "Number of bookmark and application actions",
	}, []string{"action", "result"})

	// SeededScholarships reports how many scholarships the last seed run inserted
	SeededScholarships = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "scholarseeker_seeded_scholarships",
		Help: "Scholarships inserted by the most recent catalog seed run",
	})
)
