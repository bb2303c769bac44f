package aster

// EventKind identifies a playback event emitted by the Runtime.
type EventKind uint8

const (
	EventPlay        EventKind = iota // playback started or resumed
	EventPause                        // playback paused
	EventStop                         // playback stopped, time reset to 0
	EventComplete                     // non-looping playback reached a boundary
	EventLoop                         // looping or ping-pong playback hit a boundary
	EventStateChange                  // playback state changed; Event.State carries the new state
)

// Event is the payload delivered to listeners.
type Event struct {
	Kind  EventKind
	State PlaybackState // set for EventStateChange
}

// Subscription is the token returned by listener registration; pass it to
// Runtime.Off to unsubscribe.
type Subscription struct {
	kind EventKind
	id   uint64
}

type listener struct {
	id   uint64
	fn   func(Event)
	once bool
}

// emitter is an explicit listener list keyed by event kind. Listeners run
// synchronously on the emitting tick and may subscribe, unsubscribe, or
// mutate runtime state re-entrantly; emit iterates a snapshot so the listener
// list can change mid-dispatch.
type emitter struct {
	nextID    uint64
	listeners map[EventKind][]listener
}

func newEmitter() *emitter {
	return &emitter{listeners: make(map[EventKind][]listener)}
}

func (e *emitter) on(kind EventKind, fn func(Event), once bool) Subscription {
	e.nextID++
	e.listeners[kind] = append(e.listeners[kind], listener{id: e.nextID, fn: fn, once: once})
	return Subscription{kind: kind, id: e.nextID}
}

func (e *emitter) off(sub Subscription) {
	ls := e.listeners[sub.kind]
	for i, l := range ls {
		if l.id == sub.id {
			e.listeners[sub.kind] = append(ls[:i:i], ls[i+1:]...)
			return
		}
	}
}

func (e *emitter) emit(ev Event) {
	snapshot := e.listeners[ev.Kind]
	for _, l := range snapshot {
		if l.once {
			e.off(Subscription{kind: ev.Kind, id: l.id})
		}
		l.fn(ev)
	}
}
