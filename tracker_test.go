package orbit

import (
	"testing"
	"time"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Unix(1700000000, 0)}
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestTracker(zoom func(ZoomDirection)) (*GestureTracker, *fakeClock) {
	clock := newFakeClock()
	tr := NewGestureTracker(DefaultConfig(), zoom)
	tr.now = clock.Now
	return tr, clock
}

func TestTrackerDragMovesTarget(t *testing.T) {
	tr, _ := newTestTracker(nil)
	tr.RecoverRotate(Rotation{X: 0.5, Y: 1}) // target {1, 0.5}

	tr.DragStart(PointerSample{X: 100, Y: 100})
	if tr.Mode() != ModeDragging {
		t.Fatalf("mode = %v, want dragging", tr.Mode())
	}
	a := tr.Anchor()
	if a.X != 100-400 || a.Y != 100-300 {
		t.Errorf("anchor = (%v, %v), want centered (-300, -200)", a.X, a.Y)
	}

	tr.DragMove(PointerSample{X: 150, Y: 80})
	want := Rotation{X: 1 + 50*0.01, Y: 0.5 - 20*0.01}
	if got := tr.Target(); got != want {
		t.Errorf("target = %+v, want %+v", got, want)
	}

	tr.DragEnd()
	if tr.Mode() != ModeIdle {
		t.Errorf("mode = %v, want idle", tr.Mode())
	}
	if got := tr.Target(); got != want {
		t.Errorf("DragEnd changed target to %+v", got)
	}
}

func TestTrackerDragMoveIgnoredWhenIdle(t *testing.T) {
	tr, _ := newTestTracker(nil)
	tr.DragMove(PointerSample{X: 500, Y: 500})
	if got := tr.Target(); got != (Rotation{}) {
		t.Errorf("idle move changed target to %+v", got)
	}
}

func TestTrackerAnchorUsesSizeAtCapture(t *testing.T) {
	tr, _ := newTestTracker(nil)
	tr.DragStart(PointerSample{X: 100, Y: 100})
	tr.Resize(400, 400)
	if got := tr.Target(); got != (Rotation{}) {
		t.Errorf("Resize changed target to %+v", got)
	}
	// Anchor was measured from (400, 300); the move is now measured from (200, 200).
	tr.DragMove(PointerSample{X: 100, Y: 100})
	want := Rotation{X: 200 * 0.01, Y: 100 * 0.01}
	if got := tr.Target(); got != want {
		t.Errorf("target = %+v, want %+v", got, want)
	}
}

func TestTrackerPinchDirection(t *testing.T) {
	var dirs []ZoomDirection
	tr, _ := newTestTracker(func(d ZoomDirection) { dirs = append(dirs, d) })

	tr.PinchStart([]PointerSample{{X: 0, Y: 0}, {X: 100, Y: 0}})
	if tr.Mode() != ModePinchZooming {
		t.Fatalf("mode = %v, want pinch", tr.Mode())
	}
	tr.PinchMove([]PointerSample{{X: 0, Y: 0}, {X: 150, Y: 0}})
	tr.PinchMove([]PointerSample{{X: 0, Y: 0}, {X: 50, Y: 0}})
	tr.PinchMove([]PointerSample{{X: 0, Y: 0}, {X: 0, Y: 100}})

	want := []ZoomDirection{ZoomIn, ZoomOut}
	if len(dirs) != len(want) {
		t.Fatalf("zoom calls = %v, want %v", dirs, want)
	}
	for i := range want {
		if dirs[i] != want[i] {
			t.Errorf("zoom %d = %v, want %v", i, dirs[i], want[i])
		}
	}
}

func TestTrackerPinchNeedsTwoContacts(t *testing.T) {
	calls := 0
	tr, _ := newTestTracker(func(ZoomDirection) { calls++ })
	tr.PinchStart([]PointerSample{{X: 1, Y: 1}})
	if tr.Mode() != ModeIdle {
		t.Errorf("single-contact PinchStart changed mode to %v", tr.Mode())
	}
	tr.PinchMove(nil)
	tr.PinchMove([]PointerSample{{X: 1, Y: 1}})
	if calls != 0 || tr.Locked() {
		t.Errorf("short PinchMove dispatched: calls=%d locked=%v", calls, tr.Locked())
	}
}

func TestTrackerDebounceLockout(t *testing.T) {
	tr, clock := newTestTracker(nil)

	tr.DragStart(PointerSample{X: 400, Y: 300})
	tr.PinchStart([]PointerSample{{X: 300, Y: 300}, {X: 500, Y: 300}})
	tr.PinchMove([]PointerSample{{X: 280, Y: 300}, {X: 520, Y: 300}})

	move := PointerSample{X: 450, Y: 320}
	clock.Advance(100 * time.Millisecond)
	tr.TouchMove(move)
	if got := tr.Target(); got != (Rotation{}) {
		t.Fatalf("locked move changed target to %+v", got)
	}
	if tr.Mode() != ModeDragging {
		t.Errorf("locked move left mode %v, want dragging", tr.Mode())
	}

	clock.Advance(200 * time.Millisecond)
	tr.TouchMove(move)
	want := Rotation{X: 50 * 0.01, Y: 20 * 0.01}
	if got := tr.Target(); got != want {
		t.Errorf("target after lockout = %+v, want %+v", got, want)
	}
	if tr.Mode() != ModeDragging {
		t.Errorf("mode = %v, want dragging", tr.Mode())
	}
}

func TestTrackerPinchMoveRearmsLockout(t *testing.T) {
	tr, clock := newTestTracker(nil)
	pair := []PointerSample{{X: 0, Y: 0}, {X: 100, Y: 0}}
	tr.PinchStart(pair)
	tr.PinchMove(pair)
	clock.Advance(250 * time.Millisecond)
	tr.PinchMove(pair)
	clock.Advance(250 * time.Millisecond)
	if !tr.Locked() {
		t.Error("second pinch move should have extended the lockout")
	}
	clock.Advance(50 * time.Millisecond)
	if tr.Locked() {
		t.Error("lockout should expire 300ms after the last pinch move")
	}
}

func TestTrackerResetRotateCrossesAxes(t *testing.T) {
	tr, _ := newTestTracker(nil)
	node := NewModel()
	node.SetRotation(Rotation{X: 0.25, Y: 1.5})

	tr.ResetRotate(node)
	if got, want := tr.Target(), (Rotation{X: 1.5, Y: 0.25}); got != want {
		t.Errorf("target = %+v, want %+v", got, want)
	}

	tr.ResetRotate(nil)
	if got, want := tr.Target(), (Rotation{X: 1.5, Y: 0.25}); got != want {
		t.Errorf("nil ResetRotate changed target to %+v", got)
	}

	tr.RecoverRotate(Rotation{X: -1, Y: 2})
	if got, want := tr.Target(), (Rotation{X: 2, Y: -1}); got != want {
		t.Errorf("RecoverRotate target = %+v, want %+v", got, want)
	}
}

func TestTrackerCancelClearsLock(t *testing.T) {
	tr, _ := newTestTracker(nil)
	pair := []PointerSample{{X: 0, Y: 0}, {X: 100, Y: 0}}
	tr.PinchMove(pair)
	if !tr.Locked() {
		t.Fatal("expected lock after pinch move")
	}
	tr.Cancel()
	if tr.Locked() || tr.unlock.pending() {
		t.Error("Cancel did not clear the lockout")
	}
}

func TestGestureModeString(t *testing.T) {
	tests := []struct {
		m    GestureMode
		want string
	}{
		{ModeIdle, "idle"},
		{ModeDragging, "dragging"},
		{ModePinchZooming, "pinch"},
		{GestureMode(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("GestureMode(%d).String() = %q, want %q", tt.m, got, tt.want)
		}
	}
}
