package orbit

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Control rotates and zooms a SceneNode from mouse, wheel and touch input.
// Feed it input through the Pointer*, Wheel and Touch* methods (or attach an
// Input to poll ebiten) and call Update once per frame.
//
// A Control is not safe for concurrent use. Input delivery and Update are
// expected to run on the same goroutine, typically ebiten's Update.
type Control struct {
	cfg    Config
	limits ZoomLimits
	node   SceneNode

	tracker *GestureTracker
	motion  *MotionIntegrator

	zoomHandlers []zoomHandler
	nextID       uint32
	store        EventStore

	zoomTween *zoomAnim

	debug    bool
	disposed bool
}

// New creates a Control for node. node may be nil while a model is loading;
// ticks and zoom events are no-ops until SetNode provides one. Invalid options
// are reported here and never at call time.
func New(node SceneNode, cfg Config) (*Control, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Control{
		cfg:    cfg,
		limits: cfg.Limits(),
		motion: NewMotionIntegrator(cfg),
		debug:  cfg.Debug,
	}
	c.tracker = NewGestureTracker(cfg, c.zoom)
	c.SetNode(node)
	return c, nil
}

// Config returns the options the control was created with.
func (c *Control) Config() Config { return c.cfg }

// Node returns the controlled node, or nil.
func (c *Control) Node() SceneNode { return c.node }

// SetNode swaps the controlled node and re-seeds the target from its current
// rotation so the new model does not snap toward a stale target.
func (c *Control) SetNode(node SceneNode) {
	c.node = node
	if node == nil {
		return
	}
	if c.debug {
		debugCheckScale(node, c.limits)
	}
	c.ResetRotate(node)
}

// Tracker returns the gesture tracker.
func (c *Control) Tracker() *GestureTracker { return c.tracker }

// Integrator returns the motion integrator. Its exported fields may be
// changed between ticks, e.g. to toggle auto-rotate.
func (c *Control) Integrator() *MotionIntegrator { return c.motion }

// Mode returns the current gesture mode.
func (c *Control) Mode() GestureMode { return c.tracker.Mode() }

// Target returns the target rotation.
func (c *Control) Target() Rotation { return c.tracker.Target() }

// Locked reports whether single-touch rotation is locked out after a pinch.
func (c *Control) Locked() bool { return c.tracker.Locked() }

// SetDebug enables or disables diagnostics on stderr.
func (c *Control) SetDebug(enabled bool) { c.debug = enabled }

// SetEventStore forwards gesture events to store. Pass nil to detach.
func (c *Control) SetEventStore(store EventStore) { c.store = store }

// OnZoom registers an observer called after every zoom step that stayed
// within limits.
func (c *Control) OnZoom(fn func(ZoomContext)) CallbackHandle {
	c.nextID++
	id := c.nextID
	c.zoomHandlers = append(c.zoomHandlers, zoomHandler{id: id, fn: fn})
	return CallbackHandle{id: id, c: c}
}

// --- Mouse ---

// PointerDown starts a drag at surface position (x, y).
func (c *Control) PointerDown(x, y float64) {
	if c.disposed {
		return
	}
	c.setMode(func() { c.tracker.DragStart(PointerSample{X: x, Y: y}) })
	c.emit(GestureEvent{Type: EventDragStart, X: x, Y: y})
}

// PointerMove updates the target while a drag is active.
func (c *Control) PointerMove(x, y float64) {
	if c.disposed {
		return
	}
	c.tracker.DragMove(PointerSample{X: x, Y: y})
}

// PointerUp ends the current gesture. Also used for mouse-leave and
// touch-end.
func (c *Control) PointerUp() {
	if c.disposed || c.tracker.Mode() == ModeIdle {
		return
	}
	c.setMode(c.tracker.DragEnd)
	c.emit(GestureEvent{Type: EventDragEnd})
}

// Wheel applies one zoom step. Positive deltaY zooms out, negative zooms in;
// only the sign matters.
func (c *Control) Wheel(deltaY float64) {
	if c.disposed {
		return
	}
	switch {
	case deltaY > 0:
		c.zoom(ZoomOut)
	case deltaY < 0:
		c.zoom(ZoomIn)
	}
}

// --- Touch ---

// TouchStart handles new contacts. Two or more contacts start a pinch using
// the first two; a single contact starts a drag.
func (c *Control) TouchStart(contacts []PointerSample) {
	if c.disposed {
		return
	}
	switch {
	case len(contacts) >= 2:
		c.setMode(func() { c.tracker.PinchStart(contacts) })
		c.emit(GestureEvent{Type: EventPinchStart})
	case len(contacts) == 1:
		c.PointerDown(contacts[0].X, contacts[0].Y)
	}
}

// TouchMove handles moved contacts. Two or more contacts zoom; a single
// contact rotates unless it is locked out by a recent pinch.
func (c *Control) TouchMove(contacts []PointerSample) {
	if c.disposed {
		return
	}
	switch {
	case len(contacts) >= 2:
		c.setMode(func() { c.tracker.PinchMove(contacts) })
	case len(contacts) == 1:
		c.setMode(func() { c.tracker.TouchMove(contacts[0]) })
	}
}

// TouchEnd ends the current touch gesture.
func (c *Control) TouchEnd() {
	c.PointerUp()
}

// --- Surface ---

// Resize updates the surface size used to center pointer coordinates.
func (c *Control) Resize(width, height float64) {
	c.cfg.Width = width
	c.cfg.Height = height
	c.tracker.Resize(width, height)
}

// --- Rotation seeding ---

// ResetRotate re-seeds the target from node's current rotation, or from the
// controlled node when node is nil, and zeroes the in-flight distance. Call it
// before swapping or externally rotating a model to avoid a visible snap.
func (c *Control) ResetRotate(node SceneNode) {
	if node == nil {
		node = c.node
	}
	if node == nil {
		return
	}
	c.tracker.ResetRotate(node)
	c.motion.Reset()
	c.emit(GestureEvent{Type: EventReset})
}

// RecoverRotate re-seeds the target from a saved node rotation, e.g. a
// bookmarked view. The node eases toward it on the following ticks.
func (c *Control) RecoverRotate(saved Rotation) {
	c.tracker.RecoverRotate(saved)
	c.motion.Reset()
	c.emit(GestureEvent{Type: EventReset})
}

// --- Frame tick ---

// Update advances one frame: expires the single-touch lockout, steps any
// zoom animation and eases the node toward the target. A nil node is a no-op.
func (c *Control) Update() {
	if c.disposed {
		return
	}
	c.tracker.poll()
	if c.node == nil {
		return
	}
	if c.zoomTween != nil {
		c.updateZoomTween(float32(1.0 / float64(ebiten.TPS())))
	}
	c.motion.Update(c.tracker.Mode(), &c.tracker.target, c.node)
}

// Dispose detaches the control: the pending unlock and zoom animation are
// cancelled, observers and the event store are dropped, and the node keeps
// its current rotation. Later calls on the control are no-ops.
func (c *Control) Dispose() {
	if c.disposed {
		return
	}
	c.tracker.Cancel()
	c.tracker.DragEnd()
	c.zoomTween = nil
	c.zoomHandlers = nil
	c.store = nil
	c.disposed = true
}

// --- internals ---

func (c *Control) zoom(dir ZoomDirection) {
	if c.node == nil {
		return
	}
	c.zoomTween = nil
	speed := c.cfg.ZoomSpeed
	free := ApplyZoom(dir, c.node, speed, c.limits)
	scale := c.node.Scale()
	if !free {
		c.debugLog("zoom %s clamped at %v", dir, scale)
		c.emit(GestureEvent{Type: EventZoomClamped, Direction: dir, Speed: speed, Scale: scale})
		return
	}
	if c.cfg.ZoomCallBack != nil {
		c.cfg.ZoomCallBack(dir, speed)
	}
	ctx := ZoomContext{Direction: dir, Speed: speed, Scale: scale}
	// Observers may remove handles while being called.
	hs := append([]zoomHandler(nil), c.zoomHandlers...)
	for _, h := range hs {
		h.fn(ctx)
	}
	c.emit(GestureEvent{Type: EventZoom, Direction: dir, Speed: speed, Scale: scale})
}

// setMode runs fn and logs the mode transition it caused.
func (c *Control) setMode(fn func()) {
	prev := c.tracker.Mode()
	fn()
	if next := c.tracker.Mode(); next != prev {
		c.debugLog("mode %s -> %s", prev, next)
	}
}

func (c *Control) emit(e GestureEvent) {
	if c.store == nil {
		return
	}
	e.Mode = c.tracker.Mode()
	e.Target = c.tracker.Target()
	c.store.EmitEvent(e)
}

// SetClock replaces the time source used by the single-touch lockout.
// Defaults to time.Now.
func (c *Control) SetClock(now func() time.Time) {
	c.tracker.now = now
}
