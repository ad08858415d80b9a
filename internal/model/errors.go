package model

import "fmt"

// ValidationError reports invalid caller input: bad geometry, a zero or
// negative mounting height, a non-positive sampling resolution, or an
// inconsistent catalog. The offending entity and field are identified.
type ValidationError struct {
	Entity string // e.g. "room", "fixture a1b2c3d4", "electrical"
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %s: %s", e.Entity, e.Field, e.Reason)
}

// SizingError reports that no catalog breaker or wire satisfies the
// continuous-duty constraint for a circuit. It always propagates to the
// caller; the partitioner never silently substitutes an oversized device.
type SizingError struct {
	CircuitID string
	Load      float64 // Continuous load in amps
	Reason    string
}

func (e *SizingError) Error() string {
	return fmt.Sprintf("cannot size circuit %s (%.2f A continuous): %s", e.CircuitID, e.Load, e.Reason)
}

// ComputationError reports an internal numeric failure, such as a grid
// that produced zero cells.
type ComputationError struct {
	Stage  string // "grid", "metrics"
	Reason string
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("%s computation failed: %s", e.Stage, e.Reason)
}
