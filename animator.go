package shapes

import "github.com/tanema/gween/ease"

// DefaultAnimationDuration is the duration, in seconds, of an Animation
// created with NewAnimation.
const DefaultAnimationDuration = 0.35

// Animation describes one timed change. Changes runs once, after Delay
// seconds; every drawable property it sets moves smoothly to its new value
// over Duration seconds.
type Animation struct {
	Duration float64
	Delay    float64
	// Ease shapes the interpolation. Nil selects DefaultEase.
	Ease    ease.TweenFunc
	Changes func()
}

// NewAnimation returns an Animation with the default duration and no delay.
func NewAnimation(changes func()) Animation {
	return Animation{Duration: DefaultAnimationDuration, Changes: changes}
}

// AnimatorState is the lifecycle state of an Animator.
type AnimatorState uint8

const (
	AnimatorInactive AnimatorState = iota // created, never started
	AnimatorActive                        // playing a step
	AnimatorStopped                       // finished or stopped; Start replays from the first step
	AnimatorPaused                        // the in-flight step is frozen
)

// String returns the state name.
func (s AnimatorState) String() string {
	switch s {
	case AnimatorInactive:
		return "inactive"
	case AnimatorActive:
		return "active"
	case AnimatorStopped:
		return "stopped"
	case AnimatorPaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Animator plays a list of Animations one after another, optionally looping.
// At most one step is in flight at any time.
type Animator struct {
	// Repeats restarts the list from the first step after the last one
	// completes, instead of stopping.
	Repeats bool

	canvas     *Canvas
	animations []Animation
	index      int
	state      AnimatorState
	current    *propertyAnimation
	generation uint64
	onFinish   func()
}

// NewAnimator creates an inactive animator for c. Call Start to play it.
func NewAnimator(c *Canvas, animations ...Animation) *Animator {
	return &Animator{
		canvas:     c,
		animations: append([]Animation(nil), animations...),
	}
}

// State returns the current lifecycle state.
func (a *Animator) State() AnimatorState { return a.state }

// Index returns the position of the step in flight (or next to play).
func (a *Animator) Index() int { return a.index }

// OnFinish sets a callback fired each time the animator enters the stopped
// state, whether by completing its list or by Stop.
func (a *Animator) OnFinish(fn func()) { a.onFinish = fn }

// Start plays the animator. From inactive it plays the first step; from
// stopped it discards anything left in flight and replays from the first
// step; from paused it resumes the in-flight step where it left off. Starting
// an active animator does nothing.
func (a *Animator) Start() {
	switch a.state {
	case AnimatorInactive:
		a.setState(AnimatorActive)
		a.performNext()
	case AnimatorStopped:
		if a.current != nil {
			a.current.stop()
			a.current = nil
		}
		a.generation++
		a.index = 0
		a.setState(AnimatorActive)
		a.performNext()
	case AnimatorPaused:
		if a.current == nil || a.current.done() {
			return
		}
		a.current.resume()
		a.setState(AnimatorActive)
	}
}

// Pause freezes the in-flight step. Pausing a stopped or never-started
// animator does nothing.
func (a *Animator) Pause() {
	if a.state == AnimatorStopped || a.state == AnimatorInactive {
		return
	}
	if a.current != nil {
		a.current.pause()
	}
	a.setState(AnimatorPaused)
}

// Stop cancels the in-flight step (its pending changes never run) and
// enters the stopped state, firing the finish callback. Stopping an already
// stopped animator does nothing. Safe to call from any callback, including
// the finish callback and a step's Changes.
func (a *Animator) Stop() {
	if a.state == AnimatorStopped {
		return
	}
	a.generation++
	if a.current != nil {
		a.current.stop()
		a.current = nil
	}
	a.setState(AnimatorStopped)
}

// performNext plays the step at index, wrapping or stopping at the end.
func (a *Animator) performNext() {
	if a.index >= len(a.animations) {
		if !a.Repeats || len(a.animations) == 0 {
			a.current = nil
			a.setState(AnimatorStopped)
			return
		}
		a.index = 0
	}

	step := a.animations[a.index]
	gen := a.generation
	handle := a.canvas.engine.animate(step.Duration, step.Delay, step.Ease, step.Changes, func() {
		if gen != a.generation {
			return
		}
		a.current = nil
		a.index++
		if a.state != AnimatorActive {
			return
		}
		a.performNext()
	})
	if gen != a.generation {
		// Stopped or restarted from inside the step's own changes.
		handle.stop()
		return
	}
	a.current = handle
	if a.state == AnimatorPaused {
		// Paused from inside the step's own changes, before the handle existed.
		handle.pause()
	}
}

func (a *Animator) setState(s AnimatorState) {
	if s == a.state {
		return
	}
	Logger().Debug("animator state", "from", a.state, "to", s, "step", a.index)
	a.state = s
	if s == AnimatorStopped && a.onFinish != nil {
		a.onFinish()
	}
}

// --- Canvas helpers ---

// Animate plays a single change over duration seconds after delay seconds
// and returns the started animator.
func (c *Canvas) Animate(duration, delay float64, changes func()) *Animator {
	return c.PerformAnimations(Animation{Duration: duration, Delay: delay, Changes: changes})
}

// PerformAnimations plays the animations in order once and returns the
// started animator.
func (c *Canvas) PerformAnimations(animations ...Animation) *Animator {
	a := NewAnimator(c, animations...)
	a.Start()
	return a
}

// PerformRepeatingAnimations plays the animations in order forever (until
// Stop) and returns the started animator.
func (c *Canvas) PerformRepeatingAnimations(animations ...Animation) *Animator {
	a := NewAnimator(c, animations...)
	a.Repeats = true
	a.Start()
	return a
}
