package snaplist

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// Phase is the observable state of the scroll machine.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseDragging
	PhaseInertial
	PhaseElastic
	PhaseAutoScrolling
)

func (p Phase) String() string {
	switch p {
	case PhaseDragging:
		return "dragging"
	case PhaseInertial:
		return "inertial"
	case PhaseElastic:
		return "elastic"
	case PhaseAutoScrolling:
		return "auto-scrolling"
	}
	return "idle"
}

// AutoScroll is an in-flight eased animation toward Target.
type AutoScroll struct {
	Enabled  bool
	Start    time.Time
	Duration float32 // seconds
	Target   float32
}

// ScrollState is the complete mutable state of the scroll machine. Only the
// primary-axis components of Offset and Velocity ever change.
type ScrollState struct {
	// Offset is the scroll position: how far content has moved toward its end.
	Offset Vec2
	// Velocity is in offset units per second.
	Velocity Vec2

	Dragging        bool
	DragStartCursor Vec2
	DragStartOffset Vec2

	Auto  AutoScroll
	Phase Phase
}

// Extent describes the scrollable range on the primary axis.
type Extent struct {
	View    float32
	Content float32
	Loop    bool
}

// MaxScroll returns the largest in-bounds scroll position.
func (e Extent) MaxScroll() float32 {
	return maxf(0, e.Content-e.View)
}

// Physics advances a ScrollState. It holds tuning only; all motion state
// lives in the ScrollState passed in and returned.
type Physics struct {
	Axis             Axis
	Movement         MovementType
	Elasticity       float32
	Inertia          bool
	DecelerationRate float32
	AutoAttach       bool
	Snap             AttachSnap
}

// PhysicsFromConfig extracts the physics tuning from c.
func PhysicsFromConfig(c Config) Physics {
	return Physics{
		Axis:             c.Axis(),
		Movement:         c.Movement,
		Elasticity:       c.Elasticity,
		Inertia:          c.Inertia,
		DecelerationRate: c.DecelerationRate,
		AutoAttach:       c.AutoAttach,
		Snap:             c.Snap,
	}
}

const (
	// stopSpeedSq is the squared speed under which inertia stops.
	stopSpeedSq = 10
	// arrivalDistance is how close auto-scroll must get before snapping.
	arrivalDistance = 1

	// A spring this close to rest snaps onto its target.
	settleDistance = 1e-3
	settleSpeed    = 1e-2
)

// BoundaryOffset returns the correction that brings pos back inside the
// scrollable range, or zero when pos is in range, movement is
// unrestricted, or the content loops.
func (p Physics) BoundaryOffset(pos float32, e Extent) float32 {
	if p.Movement == Unrestricted || e.Loop {
		return 0
	}
	if pos < 0 {
		return -pos
	}
	if m := e.MaxScroll(); pos > m {
		return m - pos
	}
	return 0
}

// RubberDelta compresses an overshoot so that dragging past the bounds
// moves content progressively less. The result is odd in overshoot and
// strictly less than viewSize in magnitude.
func RubberDelta(overshoot, viewSize float32) float32 {
	if viewSize <= 0 {
		return 0
	}
	return (1 - 1/(absf32(overshoot)*0.55/viewSize+1)) * viewSize * signf(overshoot)
}

// BeginDrag anchors a drag at cursor. Any running animation and velocity
// are dropped.
func (p Physics) BeginDrag(st ScrollState, cursor Vec2) ScrollState {
	st.Velocity = Vec2{}
	st.Auto.Enabled = false
	st.Dragging = true
	st.DragStartCursor = cursor
	st.DragStartOffset = st.Offset
	st.Phase = PhaseDragging
	return st
}

// Drag moves the content with the cursor, applying bounds per movement type.
func (p Physics) Drag(st ScrollState, cursor Vec2, e Extent) ScrollState {
	if !st.Dragging {
		return st
	}
	delta := cursor.On(p.Axis) - st.DragStartCursor.On(p.Axis)
	pos := st.DragStartOffset.On(p.Axis) - delta
	if off := p.BoundaryOffset(pos, e); off != 0 {
		pos += off
		if p.Movement == Elastic {
			pos += RubberDelta(-off, e.View)
		}
	}
	st.Offset = st.Offset.With(p.Axis, pos)
	return st
}

// EndDrag releases the content; velocity gathered while dragging carries on.
func (p Physics) EndDrag(st ScrollState, e Extent) ScrollState {
	st.Dragging = false
	st.Phase = p.phase(st, e)
	return st
}

// ScrollTo starts an eased animation to target lasting duration seconds.
func (p Physics) ScrollTo(st ScrollState, target, duration float32, now time.Time) ScrollState {
	st.Velocity = Vec2{}
	st.Auto = AutoScroll{
		Enabled:  true,
		Start:    now,
		Duration: duration,
		Target:   target,
	}
	st.Phase = PhaseAutoScrolling
	physicsLogger.Debug("auto-scroll start", "axis", p.Axis, "from", st.Offset.On(p.Axis), "to", target, "duration", duration)
	return st
}

// Step advances st by dt seconds. nearest resolves the snap target for a
// scroll position and is used by auto-attach; it may be nil.
func (p Physics) Step(st ScrollState, dt float32, now time.Time, e Extent, nearest func(pos float32) float32) ScrollState {
	pos := st.Offset.On(p.Axis)
	vel := st.Velocity.On(p.Axis)
	off := p.BoundaryOffset(pos, e)

	switch {
	case st.Auto.Enabled:
		alpha := float32(1)
		if st.Auto.Duration > 0 {
			alpha = clamp01(float32(now.Sub(st.Auto.Start).Seconds()) / st.Auto.Duration)
		}
		pos = lerpf(pos, st.Auto.Target, EaseInOutCubic(0, 1, alpha))
		vel = 0
		if absf32(pos-st.Auto.Target) <= arrivalDistance {
			pos = st.Auto.Target
			st.Auto.Enabled = false
			physicsLogger.Debug("auto-scroll done", "axis", p.Axis, "at", pos)
		}

	case !st.Dragging && (off != 0 || vel != 0):
		start := pos
		settled := false
		if p.Movement == Elastic && off != 0 {
			if p.AutoAttach && nearest != nil {
				return p.ScrollTo(st, nearest(pos), p.Snap.Duration, now)
			}
			pos, vel = p.spring(pos, vel, pos+off, dt)
			settled = vel == 0
		} else if p.Inertia {
			vel *= float32(math.Pow(float64(p.DecelerationRate), float64(dt)))
			if vel*vel < stopSpeedSq {
				vel = 0
			}
			pos += vel * dt
			if p.AutoAttach && nearest != nil && absf32(vel) < p.Snap.VelocityThreshold {
				return p.ScrollTo(st, nearest(pos), p.Snap.Duration, now)
			}
		} else {
			vel = 0
		}
		if vel == 0 && !settled {
			pos = start
		} else if p.Movement == Clamped {
			pos += p.BoundaryOffset(pos, e)
		}
	}

	st.Offset = st.Offset.With(p.Axis, pos)
	st.Velocity = st.Velocity.With(p.Axis, vel)
	st.Phase = p.phase(st, e)
	return st
}

// TrackDrag blends the positional change since prev into the velocity
// estimate while a drag is in progress.
func (p Physics) TrackDrag(st ScrollState, prev, dt float32) ScrollState {
	if !st.Dragging || !p.Inertia || dt <= 0 {
		return st
	}
	pos := st.Offset.On(p.Axis)
	v := lerpf(st.Velocity.On(p.Axis), (pos-prev)/dt, dt*10)
	st.Velocity = st.Velocity.With(p.Axis, v)
	return st
}

// spring moves pos toward target on a critically damped spring whose time
// constant is the elasticity.
func (p Physics) spring(pos, vel, target, dt float32) (float32, float32) {
	if dt <= 0 {
		return pos, vel
	}
	if p.Elasticity <= 0 {
		return target, 0
	}
	s := harmonica.NewSpring(float64(dt), 2/float64(p.Elasticity), 1)
	np, nv := s.Update(float64(pos), float64(vel), float64(target))
	if math.Abs(np-float64(target)) < settleDistance && math.Abs(nv) < settleSpeed {
		return target, 0
	}
	return float32(np), float32(nv)
}

func (p Physics) phase(st ScrollState, e Extent) Phase {
	switch {
	case st.Auto.Enabled:
		return PhaseAutoScrolling
	case st.Dragging:
		return PhaseDragging
	case p.Movement == Elastic && p.BoundaryOffset(st.Offset.On(p.Axis), e) != 0:
		return PhaseElastic
	case st.Velocity.On(p.Axis) != 0:
		return PhaseInertial
	}
	return PhaseIdle
}
