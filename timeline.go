package aster

import "math"

// Timeline is an ordered collection of tracks plus a duration and a frame
// rate. The frame rate is used only for frame/time conversion; evaluation is
// continuous.
type Timeline struct {
	duration float64
	fps      float64
	tracks   []*Track
}

// NewTimeline creates a timeline. Panics if duration is negative or fps is
// below 1.
func NewTimeline(duration, fps float64) *Timeline {
	if duration < 0 {
		panic("aster: timeline duration must be >= 0")
	}
	if fps < 1 {
		panic("aster: timeline fps must be >= 1")
	}
	return &Timeline{duration: duration, fps: fps}
}

// Duration returns the timeline's duration in seconds.
func (tl *Timeline) Duration() float64 {
	return tl.duration
}

// FPS returns the timeline's authored frame rate.
func (tl *Timeline) FPS() float64 {
	return tl.fps
}

// AddTrack appends a track to the timeline. The timeline takes ownership.
func (tl *Timeline) AddTrack(tr *Track) {
	tl.tracks = append(tl.tracks, tr)
}

// Tracks returns the owned track list.
// The returned slice MUST NOT be mutated by the caller.
func (tl *Timeline) Tracks() []*Track {
	return tl.tracks
}

// Evaluate clamps time to [0, duration] and evaluates every track at the
// clamped time. Tracks are independent; their order is unspecified.
func (tl *Timeline) Evaluate(time float64) {
	if time < 0 {
		time = 0
	} else if time > tl.duration {
		time = tl.duration
	}
	for _, tr := range tl.tracks {
		tr.Evaluate(time)
	}
}

// TimeToFrame converts a time in seconds to the nearest frame number.
func (tl *Timeline) TimeToFrame(time float64) int {
	return int(math.Round(time * tl.fps))
}

// FrameToTime converts a frame number to a time in seconds.
func (tl *Timeline) FrameToTime(frame int) float64 {
	return float64(frame) / tl.fps
}
