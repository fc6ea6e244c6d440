package shapes

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultEase is the curve used by animations that do not choose one.
var DefaultEase ease.TweenFunc = ease.InOutSine

// track interpolates one presentation field toward its model value.
type track struct {
	model        *float64
	presentation *float64
	to           float64
	tween        *gween.Tween
}

type propertyAnimationState uint8

const (
	propertyAnimationRunning propertyAnimationState = iota // advancing with the engine clock
	propertyAnimationPaused                                // clock frozen
	propertyAnimationFinished                              // reached its duration, completion delivered or queued
	propertyAnimationStopped                               // cancelled, completion never fires
)

// propertyAnimation is one in-flight implicit animation. Its changes run once
// the delay has elapsed; every layer property they set is animated from its
// presentation value to the new model value over duration seconds.
type propertyAnimation struct {
	engine     *animationEngine
	duration   float64
	delay      float64
	curve      ease.TweenFunc
	changes    func()
	completion func()

	waited  float64
	elapsed float64
	began   bool
	state   propertyAnimationState
	tracks  []*track
}

// animationEngine drives every implicit animation of a canvas. It is advanced
// by Canvas.Update (or Canvas.Advance) and never runs on its own.
type animationEngine struct {
	running []*propertyAnimation
	capture []*propertyAnimation
}

// animate schedules changes to run after delay seconds, animated over
// duration seconds with curve. completion, when non-nil, fires on a later
// update than the one that applied the changes.
func (e *animationEngine) animate(duration, delay float64, curve ease.TweenFunc, changes, completion func()) *propertyAnimation {
	if curve == nil {
		curve = DefaultEase
	}
	a := &propertyAnimation{
		engine:     e,
		duration:   max(duration, 0),
		delay:      max(delay, 0),
		curve:      curve,
		changes:    changes,
		completion: completion,
	}
	e.running = append(e.running, a)
	if a.delay == 0 {
		a.begin()
	}
	return a
}

// capturing returns the animation whose changes are currently executing, or
// nil when setters should apply immediately.
func (e *animationEngine) capturing() *propertyAnimation {
	if len(e.capture) == 0 {
		return nil
	}
	return e.capture[len(e.capture)-1]
}

// immediate runs fn with capturing suspended, so layers it touches snap to
// their new values even when called from inside an animation's changes.
func (e *animationEngine) immediate(fn func()) {
	saved := e.capture
	e.capture = nil
	fn()
	e.capture = saved
}

// cancelTrack drops any running interpolation of the given presentation field.
func (e *animationEngine) cancelTrack(field *float64) {
	for _, a := range e.running {
		a.dropTrack(field)
	}
}

// update advances every animation by dt seconds and then delivers the
// completions of those that finished.
func (e *animationEngine) update(dt float64) {
	if len(e.running) == 0 {
		return
	}
	snapshot := append([]*propertyAnimation(nil), e.running...)
	var finished []*propertyAnimation
	for _, a := range snapshot {
		if a.advance(dt) {
			finished = append(finished, a)
		}
	}

	kept := e.running[:0]
	for _, a := range e.running {
		if a.state == propertyAnimationRunning || a.state == propertyAnimationPaused {
			kept = append(kept, a)
		}
	}
	for i := len(kept); i < len(e.running); i++ {
		e.running[i] = nil
	}
	e.running = kept

	for _, a := range finished {
		if a.completion != nil {
			a.completion()
		}
	}
}

// active reports the number of animations that have not finished or stopped.
func (e *animationEngine) active() int {
	return len(e.running)
}

func (a *propertyAnimation) begin() {
	a.began = true
	if a.changes == nil {
		return
	}
	e := a.engine
	e.capture = append(e.capture, a)
	a.changes()
	e.capture = e.capture[:len(e.capture)-1]
}

// track starts (or restarts) interpolating presentation toward to. Any older
// interpolation of the same field is superseded.
func (a *propertyAnimation) track(model, presentation *float64, to float64) {
	a.engine.cancelTrack(presentation)
	if a.duration == 0 {
		*presentation = to
		return
	}
	a.tracks = append(a.tracks, &track{
		model:        model,
		presentation: presentation,
		to:           to,
		tween:        gween.New(float32(*presentation), float32(to), float32(a.duration), a.curve),
	})
}

func (a *propertyAnimation) dropTrack(field *float64) {
	for i, t := range a.tracks {
		if t.presentation == field {
			a.tracks = append(a.tracks[:i], a.tracks[i+1:]...)
			return
		}
	}
}

// advance moves the animation clock. Returns true when it finished during
// this step.
func (a *propertyAnimation) advance(dt float64) bool {
	if a.state != propertyAnimationRunning {
		return false
	}
	beganNow := false
	if !a.began {
		a.waited += dt
		if a.waited < a.delay {
			return false
		}
		dt = a.waited - a.delay
		a.begin()
		if a.state != propertyAnimationRunning {
			return false
		}
		beganNow = true
	}

	a.elapsed += dt
	// The tick that ran the changes never completes the animation.
	if !beganNow && a.elapsed >= a.duration-1e-9 {
		for _, t := range a.tracks {
			*t.presentation = t.to
		}
		a.tracks = nil
		a.state = propertyAnimationFinished
		return true
	}
	for _, t := range a.tracks {
		v, _ := t.tween.Update(float32(dt))
		*t.presentation = float64(v)
	}
	return false
}

func (a *propertyAnimation) pause() {
	if a.state == propertyAnimationRunning {
		a.state = propertyAnimationPaused
	}
}

func (a *propertyAnimation) resume() {
	if a.state == propertyAnimationPaused {
		a.state = propertyAnimationRunning
	}
}

// stop cancels the animation. Animated properties freeze at their current
// presentation values and the completion is discarded. Changes that have not
// run yet never run.
func (a *propertyAnimation) stop() {
	if a.state == propertyAnimationFinished || a.state == propertyAnimationStopped {
		return
	}
	for _, t := range a.tracks {
		*t.model = *t.presentation
	}
	a.tracks = nil
	a.state = propertyAnimationStopped
}

// done reports whether the animation can no longer make progress.
func (a *propertyAnimation) done() bool {
	return a.state == propertyAnimationFinished || a.state == propertyAnimationStopped
}
