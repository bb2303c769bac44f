package aster

import "math"

// defaultMergeDistance is how close (in world units) two dirty rectangles may
// sit and still be merged into one redraw region.
const defaultMergeDistance = 8.0

// defaultRedrawThreshold is the dirty-area/viewport ratio above which one
// full-surface redraw beats per-region redraws.
const defaultRedrawThreshold = 0.5

// Runtime is the playback orchestrator: it owns the loaded artboard and
// timeline (or state machine), advances time each tick, applies loop-mode
// semantics, and drives the renderer and plugin collaborators. All of its
// methods must be called from the single tick thread; listeners invoked
// during a tick observe and may mutate the same tick's state.
type Runtime struct {
	clock    Clock
	renderer Renderer

	artboard *Node
	timeline *Timeline
	machine  *StateMachine

	state       PlaybackState
	currentTime float64
	speed       float64
	loopMode    LoopMode
	direction   float64 // +1 or -1; only ping-pong flips it

	events  *emitter
	plugins []pluginEntry

	regions        *RegionManager
	mergeDistance  float64
	redrawThresh   float64
	lastStats      RenderStats
	lastFullRedraw bool
	debug          bool
}

// NewRuntime creates an idle runtime. renderer may be nil for headless
// evaluation (tests, server-side baking); Tick then skips the render pass.
func NewRuntime(clock Clock, renderer Renderer) *Runtime {
	if clock == nil {
		panic("aster: runtime requires a clock")
	}
	return &Runtime{
		clock:         clock,
		renderer:      renderer,
		state:         PlaybackIdle,
		speed:         1,
		direction:     1,
		events:        newEmitter(),
		regions:       NewRegionManager(),
		mergeDistance: defaultMergeDistance,
		redrawThresh:  defaultRedrawThreshold,
	}
}

// --- Accessors ---

// State returns the current playback state.
func (r *Runtime) State() PlaybackState { return r.state }

// CurrentTime returns the playback position in seconds. When a state machine
// is loaded this is the active state's local time.
func (r *Runtime) CurrentTime() float64 {
	if r.machine != nil {
		return r.machine.CurrentTime()
	}
	return r.currentTime
}

// Duration returns the loaded timeline's duration, or 0 when idle.
func (r *Runtime) Duration() float64 {
	if tl := r.activeTimeline(); tl != nil {
		return tl.Duration()
	}
	return 0
}

// Speed returns the playback speed multiplier.
func (r *Runtime) Speed() float64 { return r.speed }

// Direction returns +1 or -1; only ping-pong playback flips it.
func (r *Runtime) Direction() float64 { return r.direction }

// LoopMode returns the current loop mode.
func (r *Runtime) LoopMode() LoopMode { return r.loopMode }

// SetLoopMode selects what happens at timeline boundaries.
func (r *Runtime) SetLoopMode(m LoopMode) { r.loopMode = m }

// Artboard returns the loaded artboard, or nil when idle.
func (r *Runtime) Artboard() *Node { return r.artboard }

// Timeline returns the loaded default timeline, or nil when idle.
func (r *Runtime) Timeline() *Timeline { return r.timeline }

// Machine returns the loaded state machine, or nil.
func (r *Runtime) Machine() *StateMachine { return r.machine }

// FrameStats returns the stats of the most recent render pass.
func (r *Runtime) FrameStats() RenderStats { return r.lastStats }

// DirtyRegions returns the region manager holding the most recent frame's
// optimized dirty rectangles.
func (r *Runtime) DirtyRegions() *RegionManager { return r.regions }

// activeTimeline is the machine's active state timeline when a machine is
// loaded, the default timeline otherwise.
func (r *Runtime) activeTimeline() *Timeline {
	if r.machine != nil {
		if s := r.machine.ActiveState(); s != nil {
			return s.Timeline
		}
	}
	return r.timeline
}

// --- Events ---

// On registers a listener for the given event kind and returns its
// subscription token.
func (r *Runtime) On(kind EventKind, fn func(Event)) Subscription {
	return r.events.on(kind, fn, false)
}

// Once registers a listener that auto-unsubscribes after its first
// invocation.
func (r *Runtime) Once(kind EventKind, fn func(Event)) Subscription {
	return r.events.on(kind, fn, true)
}

// Off removes a listener by its subscription token.
func (r *Runtime) Off(sub Subscription) {
	r.events.off(sub)
}

// setState transitions the playback state and emits stateChange.
func (r *Runtime) setState(s PlaybackState) {
	if r.state == s {
		return
	}
	r.state = s
	r.events.emit(Event{Kind: EventStateChange, State: s})
}

// --- Lifecycle ---

// Load validates data and installs it, implicitly unloading any previous
// animation first. A rejected load leaves existing state untouched.
func (r *Runtime) Load(data *AnimationData) error {
	if err := data.validate(); err != nil {
		return err
	}
	if r.state != PlaybackIdle {
		r.Unload()
	}
	r.artboard = data.Artboard
	r.timeline = data.Timeline
	r.machine = data.Machine
	r.currentTime = 0
	r.direction = 1
	r.setState(PlaybackStopped)
	return nil
}

// Unload discards the loaded animation wholesale: the artboard subtree is
// disposed and the runtime returns to idle. Playback speed and loop mode
// survive; they belong to the runtime, not the data.
func (r *Runtime) Unload() {
	if r.state == PlaybackIdle {
		return
	}
	if r.artboard != nil {
		r.artboard.Dispose()
	}
	r.artboard = nil
	r.timeline = nil
	r.machine = nil
	r.currentTime = 0
	r.direction = 1
	r.setState(PlaybackIdle)
}

// Play starts or resumes playback. Resuming from pause keeps the current
// time. Panics if nothing is loaded; no-op while already playing.
func (r *Runtime) Play() {
	if r.state == PlaybackIdle {
		panic("aster: play with nothing loaded")
	}
	if r.state == PlaybackPlaying {
		return
	}
	r.setState(PlaybackPlaying)
	r.events.emit(Event{Kind: EventPlay})
}

// Pause freezes playback at the current time. Idempotent; only a playing
// runtime pauses.
func (r *Runtime) Pause() {
	if r.state != PlaybackPlaying {
		return
	}
	r.setState(PlaybackPaused)
	r.events.emit(Event{Kind: EventPause})
}

// Stop halts playback and resets time to 0. Idempotent; no-op when idle.
func (r *Runtime) Stop() {
	if r.state != PlaybackPlaying && r.state != PlaybackPaused {
		return
	}
	r.currentTime = 0
	r.direction = 1
	if r.machine != nil && r.machine.ActiveState() != nil {
		r.machine.currentTime = 0
		r.machine.ctx.stateTime = 0
	}
	if tl := r.activeTimeline(); tl != nil {
		tl.Evaluate(0)
	}
	r.setState(PlaybackStopped)
	r.events.emit(Event{Kind: EventStop})
}

// Seek jumps to the given time, clamped to [0, duration], and evaluates the
// active timeline there. Panics if nothing is loaded.
func (r *Runtime) Seek(t float64) {
	if r.state == PlaybackIdle {
		panic("aster: seek with nothing loaded")
	}
	tl := r.activeTimeline()
	if t < 0 {
		t = 0
	} else if d := tl.Duration(); t > d {
		t = d
	}
	if r.machine != nil && r.machine.ActiveState() != nil {
		r.machine.currentTime = t
	} else {
		r.currentTime = t
	}
	tl.Evaluate(t)
}

// SetSpeed sets the playback speed multiplier. Panics for non-positive
// values; use LoopMode and direction for reverse semantics.
func (r *Runtime) SetSpeed(s float64) {
	if s <= 0 {
		panic("aster: speed must be > 0")
	}
	r.speed = s
}

// --- Frame loop ---

// Tick runs one frame: advance time if playing, then render. External
// schedulers call this once per frame.
func (r *Runtime) Tick() {
	if r.state == PlaybackPlaying {
		r.Advance(r.clock.Delta())
	}
	r.Render()
}

// Advance moves playback forward by dt seconds: plugins update first, then
// the state machine (or the timeline with loop-mode handling) evaluates,
// writing interpolated values into the scene graph. No-op unless playing.
func (r *Runtime) Advance(dt float64) {
	if r.state != PlaybackPlaying {
		return
	}

	r.updatePlugins(dt * 1000)
	// A listener or plugin may have stopped playback re-entrantly.
	if r.state != PlaybackPlaying {
		return
	}

	if r.machine != nil {
		r.machine.Update(dt * r.speed)
		return
	}

	r.currentTime += dt * r.speed * r.direction
	duration := r.timeline.Duration()

	switch r.loopMode {
	case LoopNone:
		if r.currentTime < 0 || r.currentTime > duration {
			if r.currentTime < 0 {
				r.currentTime = 0
			} else {
				r.currentTime = duration
			}
			r.timeline.Evaluate(r.currentTime)
			r.setState(PlaybackStopped)
			r.events.emit(Event{Kind: EventComplete})
			return
		}
	case LoopRepeat:
		if r.currentTime < 0 || r.currentTime > duration {
			if duration > 0 {
				r.currentTime = math.Mod(r.currentTime, duration)
				if r.currentTime < 0 {
					r.currentTime += duration
				}
			} else {
				r.currentTime = 0
			}
			r.events.emit(Event{Kind: EventLoop})
		}
	case LoopPingPong:
		for r.currentTime < 0 || r.currentTime > duration {
			if r.currentTime > duration {
				r.currentTime = duration - (r.currentTime - duration)
			} else {
				r.currentTime = -r.currentTime
			}
			r.direction = -r.direction
			r.events.emit(Event{Kind: EventLoop})
			if duration == 0 {
				r.currentTime = 0
				break
			}
		}
	}

	r.timeline.Evaluate(r.currentTime)
}

// Render collects and optimizes the frame's dirty regions, decides between a
// full and per-region redraw, walks the scene into the renderer, and clears
// the dirty flags. No-op without a renderer or loaded artboard.
func (r *Runtime) Render() {
	if r.renderer == nil || r.artboard == nil {
		return
	}

	r.regions.Clear()
	r.artboard.CollectDirtyRegions(r.regions)
	r.regions.Optimize(r.mergeDistance)
	r.lastFullRedraw = r.regions.ShouldRedrawFull(r.artboard.Width, r.artboard.Height, r.redrawThresh)

	r.renderer.BeginFrame()
	r.renderer.Clear(r.artboard.Background)
	r.lastStats = renderTree(r.renderer, r.artboard)
	if r.debug {
		DebugDrawRegions(r.renderer, r.regions, 1)
		r.debugLogFrame()
	}
	r.renderer.EndFrame()

	r.artboard.ClearDirty()
}
