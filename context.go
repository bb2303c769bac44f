package aster

// MachineContext is the transient per-machine input store that transition
// conditions read: named booleans, named numbers, a one-frame event set, and
// the seconds elapsed since the active state was entered. Events are cleared
// at the end of every machine update; bools and numbers persist until
// rewritten.
type MachineContext struct {
	bools     map[string]bool
	numbers   map[string]float64
	events    map[string]struct{}
	stateTime float64
}

// NewMachineContext creates an empty context.
func NewMachineContext() *MachineContext {
	return &MachineContext{
		bools:   make(map[string]bool),
		numbers: make(map[string]float64),
		events:  make(map[string]struct{}),
	}
}

// SetBool sets a named boolean input.
func (c *MachineContext) SetBool(name string, v bool) {
	c.bools[name] = v
}

// Bool returns the named boolean input. Unset inputs read as false.
func (c *MachineContext) Bool(name string) bool {
	return c.bools[name]
}

// SetNumber sets a named numeric input.
func (c *MachineContext) SetNumber(name string, v float64) {
	c.numbers[name] = v
}

// Number returns the named numeric input. Unset inputs read as 0.
func (c *MachineContext) Number(name string) float64 {
	return c.numbers[name]
}

// Trigger queues a one-shot event. It is visible to conditions for exactly
// one machine update, then cleared.
func (c *MachineContext) Trigger(name string) {
	c.events[name] = struct{}{}
}

// HasEvent reports whether the named event was triggered this frame.
func (c *MachineContext) HasEvent(name string) bool {
	_, ok := c.events[name]
	return ok
}

// clearEvents empties the one-frame event set.
func (c *MachineContext) clearEvents() {
	clear(c.events)
}

// StateTime returns the seconds elapsed since the active state was entered.
func (c *MachineContext) StateTime() float64 {
	return c.stateTime
}
