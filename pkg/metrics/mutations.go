package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	pkgerrors "github.com/angelmondragon/storefront-api/pkg/errors"
)

const (
	OutcomeAllowed          = "allowed"
	OutcomeConflict         = "conflict"
	OutcomeMissingReference = "missing_reference"
	OutcomeBlocked          = "blocked"
	OutcomeInvalid          = "invalid"
	OutcomeNotFound         = "not_found"
	OutcomeError            = "error"
)

// MutationMetrics counts guarded mutations by operation and outcome.
type MutationMetrics struct {
	total *prometheus.CounterVec
}

// NewMutationMetrics registers guarded_mutations_total on the provided registerer.
func NewMutationMetrics(reg prometheus.Registerer) *MutationMetrics {
	if reg == nil {
		return &MutationMetrics{}
	}
	total := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "guarded_mutations_total",
		Help: "Guarded mutations by operation and outcome.",
	}, []string{"operation", "outcome"})
	reg.MustRegister(total)
	return &MutationMetrics{total: total}
}

// Observe records the outcome of a mutation; a nil err counts as allowed.
func (m *MutationMetrics) Observe(operation string, err error) {
	if m == nil || m.total == nil {
		return
	}
	m.total.WithLabelValues(normalizeLabel(operation), OutcomeFor(err)).Inc()
}

// OutcomeFor maps a mutation result onto its outcome label.
func OutcomeFor(err error) string {
	if err == nil {
		return OutcomeAllowed
	}
	switch pkgerrors.CodeOf(err) {
	case pkgerrors.CodeConflict:
		return OutcomeConflict
	case pkgerrors.CodeReference:
		return OutcomeMissingReference
	case pkgerrors.CodeBlocked:
		return OutcomeBlocked
	case pkgerrors.CodeValidation:
		return OutcomeInvalid
	case pkgerrors.CodeNotFound, pkgerrors.CodeNotMatched:
		return OutcomeNotFound
	default:
		return OutcomeError
	}
}
