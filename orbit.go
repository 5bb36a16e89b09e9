package orbit

import "math"

// PointerSample is a pointer or touch contact position in surface-local pixels,
// origin at the top-left with Y increasing downward.
type PointerSample struct {
	X, Y float64
}

// distance returns the Euclidean distance between two samples.
func distance(a, b PointerSample) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Rotation is a pair of Euler angles in radians.
//
// On a SceneNode, X is the pitch (rotation about the X axis) and Y is the yaw
// (rotation about the Y axis). On a target rotation the axes are crossed:
// target X follows horizontal pointer motion and drives the node's Y angle,
// target Y follows vertical pointer motion and drives the node's X angle.
type Rotation struct {
	X, Y float64
}

// SceneNode is the displayed object being rotated and zoomed. The control
// references it but never owns it; any renderer's node type can satisfy it.
type SceneNode interface {
	Rotation() Rotation
	SetRotation(r Rotation)
	// Scale returns the uniform scale. Always positive.
	Scale() float64
	SetScale(s float64)
}

// ZoomLimits bounds a node's uniform scale. In is the smallest allowed scale
// (fully zoomed in on the limit side of the wheel), Out the largest.
type ZoomLimits struct {
	In, Out float64
}

// Clamp restricts s to [In, Out].
func (l ZoomLimits) Clamp(s float64) float64 {
	return math.Max(l.In, math.Min(s, l.Out))
}

// GestureMode is the gesture state of a GestureTracker.
type GestureMode uint8

const (
	ModeIdle         GestureMode = iota // no pointer or contact held
	ModeDragging                        // single pointer/contact rotating the target
	ModePinchZooming                    // two contacts driving zoom
)

// String returns the mode name.
func (m GestureMode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeDragging:
		return "dragging"
	case ModePinchZooming:
		return "pinch"
	default:
		return "unknown"
	}
}

// ZoomDirection selects whether a zoom step divides or multiplies the scale.
type ZoomDirection uint8

const (
	ZoomOut ZoomDirection = iota // scale /= speed, bounded below by ZoomLimits.In
	ZoomIn                       // scale *= speed, bounded above by ZoomLimits.Out
)

// String returns "out" or "in".
func (d ZoomDirection) String() string {
	if d == ZoomIn {
		return "in"
	}
	return "out"
}

// EventType identifies a kind of gesture event.
type EventType uint8

const (
	EventDragStart   EventType = iota // single pointer/contact pressed
	EventDragEnd                      // pointer released or touch ended
	EventPinchStart                   // two contacts down, zoom baseline recorded
	EventZoom                         // zoom step applied within limits
	EventZoomClamped                  // zoom step hit a limit and was clamped
	EventReset                        // target rotation re-seeded from a node or saved rotation
)

// GestureEvent carries gesture data for an EventStore.
type GestureEvent struct {
	Type EventType
	Mode GestureMode
	// Pointer position for drag events.
	X, Y float64
	// Target rotation after the event.
	Target Rotation
	// Zoom fields (valid for EventZoom and EventZoomClamped).
	Direction ZoomDirection
	Speed     float64
	Scale     float64
}

// EventStore receives gesture events. The ecs sub-package provides a Donburi
// implementation.
type EventStore interface {
	EmitEvent(event GestureEvent)
}
