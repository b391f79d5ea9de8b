package scoring

import "rural-internship-backend/internal/domain"

// ReadinessStatus is a pure function of the current completeness and
// verified flag, not a latched transition: revoking verification drops the
// status back to DRAFT on the next recomputation.
func ReadinessStatus(completeness int, verified bool) string {
	if completeness >= 80 && verified {
		return domain.ReadinessReady
	}
	return domain.ReadinessDraft
}

// CanPostInternship requires verified independently of the readiness status.
// The conjunction is redundant today; it stays so the posting gate keeps
// requiring verification even if readiness logic ever decouples from it.
func CanPostInternship(readinessStatus string, verified bool) bool {
	return readinessStatus == domain.ReadinessReady && verified
}
