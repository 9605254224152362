package engine

import "fmt"

// AnalysisError is the single error an analysis can surface. Whatever went
// wrong internally, the caller sees one failure and no partial report.
type AnalysisError struct {
	Cause any
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("analysis failed: %v", e.Cause)
}
