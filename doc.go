// Package aster evaluates vector animations over time: it walks a transform
// hierarchy, interpolates keyframed properties, drives an interactive state
// machine layer, and produces per-frame dirty regions for a renderer.
//
// # Quick start
//
// Build a scene, a timeline, and a runtime, then drive it with [Run]:
//
//	artboard := aster.NewArtboard("main", 640, 480, aster.Color{R: 0.1, G: 0.1, B: 0.1, A: 1})
//	box := aster.NewShape("box", aster.NewRectPath(80, 40))
//	artboard.AddChild(box)
//
//	tl := aster.NewTimeline(2, 60)
//	track, _ := aster.NewTrack(box, aster.PropertyPositionX)
//	track.AddKeyframe(aster.Keyframe{Time: 0, Value: 0})
//	track.AddKeyframe(aster.Keyframe{Time: 2, Value: 400})
//	tl.AddTrack(track)
//
//	renderer := aster.NewEbitenRenderer()
//	rt := aster.NewRuntime(aster.EbitenClock{}, renderer)
//	rt.Load(&aster.AnimationData{Artboard: artboard, Timeline: tl})
//	rt.SetLoopMode(aster.LoopRepeat)
//	rt.Play()
//	aster.Run(rt, renderer, aster.RunConfig{Title: "aster", Width: 640, Height: 480})
//
// # Scene graph
//
// Every visual element is a [Node]: an artboard, group, shape, or image.
// Children inherit their parent's transform, opacity, and visibility. World
// transforms and bounds are cached and recomputed lazily; any mutation marks
// the node dirty and propagates the flag to the root, where
// [Node.CollectDirtyRegions] turns it into a redraw plan.
//
// # Animation
//
// A [Timeline] owns [Track]s; each track binds keyframes to one property of
// one node, resolved to a typed accessor when the track is created. Easing
// uses the gween/ease function set. For interactive control, a
// [StateMachine] wraps timelines in named states connected by guarded,
// prioritized transitions whose conditions read the machine's
// [MachineContext] inputs.
//
// # Playback
//
// The [Runtime] owns the loaded artboard and timeline, advances time each
// tick with loop/ping-pong semantics, emits playback events, invokes plugin
// hooks, and drives a [Renderer]. [EbitenRenderer] renders through
// [Ebitengine]; any other backend can implement the interface. The whole
// engine is single-threaded and tick-driven: one scheduler calls
// [Runtime.Tick], and everything happens synchronously inside it.
//
// [Ebitengine]: https://ebitengine.org
package aster
