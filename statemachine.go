package aster

import (
	"fmt"
	"math"
	"sort"
)

// State is a named state wrapping a timeline. Speed multiplies the machine's
// delta while the state is active; Loop wraps the state's time modulo its
// timeline duration. OnActivate/OnDeactivate, when set, run on entry/exit.
type State struct {
	ID       string
	Name     string
	Timeline *Timeline
	Speed    float64
	Loop     bool

	OnActivate   func()
	OnDeactivate func()
}

// NewState creates a state with unit speed and looping disabled.
func NewState(id, name string, tl *Timeline) *State {
	if tl == nil {
		panic("aster: state requires a timeline")
	}
	return &State{ID: id, Name: name, Timeline: tl, Speed: 1}
}

// activate runs the state's entry hook.
func (s *State) activate() {
	if s.OnActivate != nil {
		s.OnActivate()
	}
}

// deactivate runs the state's exit hook.
func (s *State) deactivate() {
	if s.OnDeactivate != nil {
		s.OnDeactivate()
	}
}

// Transition is a guarded, prioritized edge between two states. All
// conditions must pass for the edge to fire. Duration is the reserved blend
// time; it is stored but blending is not applied yet. Higher Priority wins
// when several edges fire on the same update; equal priorities keep
// declaration order.
type Transition struct {
	From       string
	To         string
	Conditions []Condition
	Duration   float64
	Priority   int
}

// StateMachine is a graph of states connected by guarded transitions, driving
// whichever state is active through its timeline each update.
type StateMachine struct {
	states      map[string]*State
	transitions []*Transition
	ctx         *MachineContext

	active      *State
	entryID     string
	currentTime float64

	// OnStateChange, when set, is called after every state change with the
	// new state's id.
	OnStateChange func(id string)

	// scratch buffer for candidate transitions, reused across updates
	candidates []*Transition
}

// NewStateMachine creates an empty machine with a fresh context.
func NewStateMachine() *StateMachine {
	return &StateMachine{
		states: make(map[string]*State),
		ctx:    NewMachineContext(),
	}
}

// Context returns the machine's input context.
func (m *StateMachine) Context() *MachineContext {
	return m.ctx
}

// AddState registers a state. The first state added becomes the machine's
// entry state, entered on the first Update. Panics on a duplicate id.
func (m *StateMachine) AddState(s *State) {
	if s == nil {
		panic("aster: cannot add nil state")
	}
	if _, exists := m.states[s.ID]; exists {
		panic(fmt.Sprintf("aster: duplicate state id %q", s.ID))
	}
	m.states[s.ID] = s
	if m.entryID == "" {
		m.entryID = s.ID
	}
}

// State returns the state with the given id, or nil.
func (m *StateMachine) State(id string) *State {
	return m.states[id]
}

// ActiveState returns the currently active state, or nil before the machine
// has entered its entry state.
func (m *StateMachine) ActiveState() *State {
	return m.active
}

// CurrentTime returns the active state's local time in seconds.
func (m *StateMachine) CurrentTime() float64 {
	return m.currentTime
}

// AddTransition registers a transition. Panics if either endpoint is not a
// registered state or if the blend duration is negative.
func (m *StateMachine) AddTransition(t *Transition) {
	if t == nil {
		panic("aster: cannot add nil transition")
	}
	if _, ok := m.states[t.From]; !ok {
		panic(fmt.Sprintf("aster: transition from unknown state %q", t.From))
	}
	if _, ok := m.states[t.To]; !ok {
		panic(fmt.Sprintf("aster: transition to unknown state %q", t.To))
	}
	if t.Duration < 0 {
		panic("aster: transition duration must be >= 0")
	}
	m.transitions = append(m.transitions, t)
}

// Transitions returns the registered transitions in declaration order.
// The returned slice MUST NOT be mutated by the caller.
func (m *StateMachine) Transitions() []*Transition {
	return m.transitions
}

// ChangeState deactivates the active state (if any), activates the state with
// the given id, and resets both the machine's current time and the context's
// state time to 0. Panics if the id is unknown.
func (m *StateMachine) ChangeState(id string) {
	next, ok := m.states[id]
	if !ok {
		panic(fmt.Sprintf("aster: unknown state id %q", id))
	}
	if m.active != nil {
		m.active.deactivate()
	}
	m.active = next
	m.currentTime = 0
	m.ctx.stateTime = 0
	next.activate()
	if m.OnStateChange != nil {
		m.OnStateChange(id)
	}
}

// Update advances the machine by dt seconds: scale by the active state's
// speed, advance the clocks, fire the highest-priority satisfied transition
// (which resets the clocks), wrap or clamp against the active timeline,
// evaluate it, and finally clear the one-frame event set.
func (m *StateMachine) Update(dt float64) {
	if m.active == nil {
		if m.entryID == "" {
			return
		}
		m.ChangeState(m.entryID)
	}

	dt *= m.active.Speed
	m.currentTime += dt
	m.ctx.stateTime += dt

	if t := m.selectTransition(); t != nil {
		m.ChangeState(t.To)
	}

	duration := m.active.Timeline.Duration()
	if m.active.Loop && duration > 0 {
		m.currentTime = math.Mod(m.currentTime, duration)
		if m.currentTime < 0 {
			m.currentTime += duration
		}
	} else if m.currentTime < 0 {
		m.currentTime = 0
	} else if m.currentTime > duration {
		m.currentTime = duration
	}

	m.active.Timeline.Evaluate(m.currentTime)
	m.ctx.clearEvents()
}

// selectTransition returns the highest-priority transition out of the active
// state whose conditions all pass, or nil. Equal priorities resolve to the
// earliest-declared edge (stable sort).
func (m *StateMachine) selectTransition() *Transition {
	m.candidates = m.candidates[:0]
	for _, t := range m.transitions {
		if t.From != m.active.ID {
			continue
		}
		if conditionsPass(t.Conditions, m.ctx) {
			m.candidates = append(m.candidates, t)
		}
	}
	if len(m.candidates) == 0 {
		return nil
	}
	sort.SliceStable(m.candidates, func(i, j int) bool {
		return m.candidates[i].Priority > m.candidates[j].Priority
	})
	return m.candidates[0]
}

// conditionsPass reports whether every condition evaluates true.
// An empty condition list always passes.
func conditionsPass(conds []Condition, ctx *MachineContext) bool {
	for _, c := range conds {
		if !c.Evaluate(ctx) {
			return false
		}
	}
	return true
}
