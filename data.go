package aster

import (
	"errors"
	"fmt"
)

// Load validation errors.
var (
	ErrMissingArtboard = errors.New("aster: animation data has no artboard")
	ErrMissingTimeline = errors.New("aster: animation data has no timeline")
)

// AnimationData is the deserialized object graph the loader hands to the
// runtime: a root artboard, the default timeline, and an optional state
// machine that, when present, drives its own states' timelines instead.
type AnimationData struct {
	Artboard *Node
	Timeline *Timeline
	Machine  *StateMachine
}

// validate checks the data without mutating anything, so a rejected load
// leaves the runtime untouched.
func (d *AnimationData) validate() error {
	if d == nil || d.Artboard == nil {
		return ErrMissingArtboard
	}
	if d.Artboard.Type != NodeTypeArtboard {
		return fmt.Errorf("aster: root node %q is a %s, not an artboard", d.Artboard.Name, d.Artboard.Type)
	}
	if d.Timeline == nil {
		return ErrMissingTimeline
	}
	return nil
}
