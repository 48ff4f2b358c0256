// Package animate drives the focus coordinate of the tab bar: one scalar,
// one writer, any number of readers per frame.
package animate

import "time"

// DefaultDuration is how long a retarget takes to settle.
const DefaultDuration = 350 * time.Millisecond

// Frame is the value every consumer reads while rendering. Outline and
// marker must come from the same Frame so they can never disagree.
type Frame struct {
	Coordinate float64
	Animating  bool
}

// Animator interpolates a single coordinate toward its latest target.
// A new target never restarts from the previous origin: the tween starts
// from wherever the value is at the moment of the call.
//
// Animator is not safe for concurrent use; in the TUI it is only touched
// from the Bubble Tea update loop and View.
type Animator struct {
	duration time.Duration
	easing   Easing

	from  float64
	to    float64
	start time.Time
}

// New returns an Animator resting at initial.
func New(initial float64, duration time.Duration, easing Easing) *Animator {
	if duration < 0 {
		duration = 0
	}
	if easing == nil {
		easing = EaseInOut
	}
	return &Animator{
		duration: duration,
		easing:   easing,
		from:     initial,
		to:       initial,
	}
}

// Duration returns the fixed tween length.
func (a *Animator) Duration() time.Duration { return a.duration }

// Target returns the value the animator is heading to (or resting at).
func (a *Animator) Target() float64 { return a.to }

// progress returns linear progress in [0, 1] at now.
func (a *Animator) progress(now time.Time) float64 {
	if a.start.IsZero() || a.duration == 0 {
		return 1
	}
	elapsed := now.Sub(a.start)
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= a.duration {
		return 1
	}
	return float64(elapsed) / float64(a.duration)
}

// Value samples the coordinate at now.
func (a *Animator) Value(now time.Time) float64 {
	p := a.progress(now)
	if p >= 1 {
		return a.to
	}
	return a.from + (a.to-a.from)*a.easing(p)
}

// Animating reports whether a tween is still in flight at now.
func (a *Animator) Animating(now time.Time) bool {
	return a.from != a.to && a.progress(now) < 1
}

// Frame samples the value once for a render pass.
func (a *Animator) Frame(now time.Time) Frame {
	return Frame{Coordinate: a.Value(now), Animating: a.Animating(now)}
}

// Retarget starts a tween from the current (possibly in-flight) value to
// target. Retargeting to the current target is a no-op.
func (a *Animator) Retarget(target float64, now time.Time) {
	if target == a.to {
		return
	}
	a.from = a.Value(now)
	a.to = target
	a.start = now
}

// Snap moves the value to v immediately, discarding any tween. Used when the
// layout is re-measured and old coordinates no longer apply.
func (a *Animator) Snap(v float64) {
	a.from = v
	a.to = v
	a.start = time.Time{}
}
