package aster

import "math"

// conditionEpsilon is the tolerance for numeric (in)equality comparisons.
// Fixed rather than per-condition; authored thresholds are coarse enough
// that a single tolerance suffices.
const conditionEpsilon = 1e-9

// Condition is one guard on a transition. All of a transition's conditions
// must pass (logical AND) for the transition to fire.
type Condition interface {
	Evaluate(ctx *MachineContext) bool
}

// EventCondition passes when the named one-shot event was triggered this
// frame.
type EventCondition struct {
	Event string
}

// Evaluate implements Condition.
func (c EventCondition) Evaluate(ctx *MachineContext) bool {
	return ctx.HasEvent(c.Event)
}

// BoolCondition passes when the named boolean input equals Expected.
// An unset input reads as false.
type BoolCondition struct {
	Input    string
	Expected bool
}

// Evaluate implements Condition.
func (c BoolCondition) Evaluate(ctx *MachineContext) bool {
	return ctx.Bool(c.Input) == c.Expected
}

// CompareOp is a numeric comparison operator.
type CompareOp uint8

const (
	CompareEqual CompareOp = iota
	CompareNotEqual
	CompareGreater
	CompareGreaterEqual
	CompareLess
	CompareLessEqual
)

// String returns the operator's symbolic form.
func (op CompareOp) String() string {
	switch op {
	case CompareEqual:
		return "=="
	case CompareNotEqual:
		return "!="
	case CompareGreater:
		return ">"
	case CompareGreaterEqual:
		return ">="
	case CompareLess:
		return "<"
	case CompareLessEqual:
		return "<="
	default:
		return "?"
	}
}

// NumberCondition passes when the named numeric input compares true against
// Threshold. Equality and inequality are epsilon-compared.
type NumberCondition struct {
	Input     string
	Op        CompareOp
	Threshold float64
}

// Evaluate implements Condition.
func (c NumberCondition) Evaluate(ctx *MachineContext) bool {
	v := ctx.Number(c.Input)
	switch c.Op {
	case CompareEqual:
		return math.Abs(v-c.Threshold) < conditionEpsilon
	case CompareNotEqual:
		return math.Abs(v-c.Threshold) >= conditionEpsilon
	case CompareGreater:
		return v > c.Threshold
	case CompareGreaterEqual:
		return v >= c.Threshold
	case CompareLess:
		return v < c.Threshold
	case CompareLessEqual:
		return v <= c.Threshold
	default:
		return false
	}
}

// TimeCondition passes once the active state has been running for at least
// Duration seconds.
type TimeCondition struct {
	Duration float64
}

// NewTimeCondition creates a time condition. Panics if duration is negative.
func NewTimeCondition(duration float64) TimeCondition {
	if duration < 0 {
		panic("aster: time condition duration must be >= 0")
	}
	return TimeCondition{Duration: duration}
}

// Evaluate implements Condition.
func (c TimeCondition) Evaluate(ctx *MachineContext) bool {
	return ctx.StateTime() >= c.Duration
}
