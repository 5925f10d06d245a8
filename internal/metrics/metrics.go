package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	proposalsGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "proposals_generated_total",
			Help: "Total number of repayment proposals generated",
		},
	)

	applicationsSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "funding_applications_submitted_total",
			Help: "Total number of funding applications submitted",
		},
	)

	investmentsRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "investments_recorded_total",
			Help: "Total number of investment commitments recorded",
		},
		[]string{"kind"}, // new | top_up
	)

	dealsFullyFunded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "deals_fully_funded_total",
			Help: "Total number of deals that transitioned to fully funded",
		},
	)

	emailsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emails_sent_total",
			Help: "Total number of transactional emails attempted",
		},
		[]string{"template", "outcome"},
	)
)

func RecordApplicationSubmitted(proposalCount int) {
	applicationsSubmitted.Inc()
	proposalsGenerated.Add(float64(proposalCount))
}

func RecordInvestment(topUp bool) {
	kind := "new"
	if topUp {
		kind = "top_up"
	}
	investmentsRecorded.WithLabelValues(kind).Inc()
}

func RecordDealFullyFunded() { dealsFullyFunded.Inc() }

func RecordEmail(template string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	emailsSent.WithLabelValues(template, outcome).Inc()
}
