package orbit

import "time"

// DragAnchor is captured when a drag begins. X and Y are already measured from
// the surface center; TargetX and TargetY are the target rotation at capture.
type DragAnchor struct {
	X, Y             float64
	TargetX, TargetY float64
}

// GestureTracker turns pointer and touch samples into a gesture mode and a
// target rotation. It never touches the node's rotation; a MotionIntegrator
// eases the node toward Target each tick.
type GestureTracker struct {
	mode   GestureMode
	anchor DragAnchor
	target Rotation

	halfW, halfH float64
	moveSpeed    float64

	pinchBaseline float64

	// lockSingleTouch is set by every pinch move and cleared when unlock fires.
	lockSingleTouch bool
	unlock          debounce

	now  func() time.Time
	zoom func(ZoomDirection)
}

// NewGestureTracker creates an idle tracker sized for cfg's surface. zoom is
// called for every pinch move that changed the contact distance; it may be nil.
func NewGestureTracker(cfg Config, zoom func(ZoomDirection)) *GestureTracker {
	t := &GestureTracker{
		halfW:     cfg.Width / 2,
		halfH:     cfg.Height / 2,
		moveSpeed: cfg.MouseMoveSpeed,
		now:       time.Now,
		zoom:      zoom,
	}
	t.unlock = newDebounce(cfg.debounceDelay(), func() {
		t.lockSingleTouch = false
	})
	return t
}

// Mode returns the current gesture mode.
func (t *GestureTracker) Mode() GestureMode { return t.mode }

// Target returns the target rotation.
func (t *GestureTracker) Target() Rotation { return t.target }

// Anchor returns the anchor of the current or most recent drag.
func (t *GestureTracker) Anchor() DragAnchor { return t.anchor }

// Locked reports whether single-contact moves are currently ignored.
func (t *GestureTracker) Locked() bool {
	t.poll()
	return t.lockSingleTouch
}

// Resize updates the surface center used to measure pointer positions. The
// target rotation is not affected.
func (t *GestureTracker) Resize(width, height float64) {
	t.halfW = width / 2
	t.halfH = height / 2
}

// DragStart anchors a new drag at s and enters ModeDragging.
func (t *GestureTracker) DragStart(s PointerSample) {
	t.anchor = DragAnchor{
		X:       s.X - t.halfW,
		Y:       s.Y - t.halfH,
		TargetX: t.target.X,
		TargetY: t.target.Y,
	}
	t.mode = ModeDragging
}

// DragMove moves the target by the pointer's displacement from the anchor.
// No-op unless dragging.
func (t *GestureTracker) DragMove(s PointerSample) {
	if t.mode != ModeDragging {
		return
	}
	dx := (s.X - t.halfW) - t.anchor.X
	dy := (s.Y - t.halfH) - t.anchor.Y
	t.target.X = t.anchor.TargetX + dx*t.moveSpeed
	t.target.Y = t.anchor.TargetY + dy*t.moveSpeed
}

// DragEnd returns to ModeIdle. The target is kept so motion keeps easing
// toward it.
func (t *GestureTracker) DragEnd() {
	t.mode = ModeIdle
}

// PinchStart records the distance between the first two contacts as the zoom
// baseline and enters ModePinchZooming. Fewer than two contacts are ignored.
func (t *GestureTracker) PinchStart(contacts []PointerSample) {
	if len(contacts) < 2 {
		return
	}
	t.pinchBaseline = distance(contacts[0], contacts[1])
	t.mode = ModePinchZooming
}

// PinchMove zooms in when the contacts are further apart than the baseline
// and out when closer, then locks single-contact rotation until the debounce
// delay passes without another pinch move. Fewer than two contacts are ignored.
func (t *GestureTracker) PinchMove(contacts []PointerSample) {
	if len(contacts) < 2 {
		return
	}
	if t.mode != ModePinchZooming {
		t.PinchStart(contacts)
	}
	dolly := distance(contacts[0], contacts[1]) - t.pinchBaseline
	if t.zoom != nil {
		switch {
		case dolly > 0:
			t.zoom(ZoomIn)
		case dolly < 0:
			t.zoom(ZoomOut)
		}
	}
	t.lockSingleTouch = true
	t.unlock.arm(t.now())
}

// TouchMove handles a single-contact move. The tracker is (re)entered into
// ModeDragging with the existing anchor even while locked out after a pinch,
// so a held contact pauses auto-rotate. While locked the sample is dropped;
// otherwise the target follows the contact.
func (t *GestureTracker) TouchMove(s PointerSample) {
	t.mode = ModeDragging
	if t.Locked() {
		return
	}
	t.DragMove(s)
}

// ResetRotate re-seeds the target from node's current rotation so a swapped
// or externally rotated model does not snap. A nil node is ignored.
func (t *GestureTracker) ResetRotate(node SceneNode) {
	if node == nil {
		return
	}
	t.RecoverRotate(node.Rotation())
}

// RecoverRotate re-seeds the target from a saved node rotation.
func (t *GestureTracker) RecoverRotate(r Rotation) {
	t.target = Rotation{X: r.Y, Y: r.X}
}

// Cancel stops any pending unlock and clears the lockout.
func (t *GestureTracker) Cancel() {
	t.unlock.cancel()
	t.lockSingleTouch = false
}

func (t *GestureTracker) poll() {
	if t.unlock.pending() {
		t.unlock.poll(t.now())
	}
}
