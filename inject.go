package orbit

// syntheticKind identifies an injected input event.
type syntheticKind uint8

const (
	synthPress syntheticKind = iota
	synthMove
	synthRelease
	synthWheel
	synthTouchStart
	synthTouchMove
	synthTouchEnd
)

// syntheticEvent represents a single injected input event in surface
// coordinates.
type syntheticEvent struct {
	kind     syntheticKind
	x, y     float64
	delta    float64
	contacts []PointerSample
}

// InjectPress queues a mouse press at (x, y). Each queued event is consumed on
// its own tick by Poll.
func (in *Input) InjectPress(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticEvent{kind: synthPress, x: x, y: y})
}

// InjectMove queues a mouse move to (x, y) with the button held.
func (in *Input) InjectMove(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticEvent{kind: synthMove, x: x, y: y})
}

// InjectRelease queues a mouse release.
func (in *Input) InjectRelease() {
	in.injectQueue = append(in.injectQueue, syntheticEvent{kind: synthRelease})
}

// InjectWheel queues a wheel event. Positive delta zooms out.
func (in *Input) InjectWheel(delta float64) {
	in.injectQueue = append(in.injectQueue, syntheticEvent{kind: synthWheel, delta: delta})
}

// InjectTouch queues a touch start, move or end carrying the given contacts.
// A nil contacts slice with end=true queues a touch end.
func (in *Input) InjectTouch(contacts []PointerSample, start, end bool) {
	kind := synthTouchMove
	switch {
	case end:
		kind = synthTouchEnd
	case start:
		kind = synthTouchStart
	}
	cp := append([]PointerSample(nil), contacts...)
	in.injectQueue = append(in.injectQueue, syntheticEvent{kind: kind, contacts: cp})
}

// InjectDrag queues a full mouse drag: press at (fromX, fromY), moves linearly
// interpolated over frames-2 intermediate frames ending at (toX, toY), and a
// release. The sequence consumes `frames` frames; the minimum is 3 so the
// pointer reaches the destination before release.
func (in *Input) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 3 {
		frames = 3
	}
	in.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		in.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	in.InjectRelease()
}

// InjectPinch queues a two-finger pinch centered on (cx, cy) whose contacts
// start fromDist apart and end toDist apart, over `frames` frames including
// the touch start and end. Contacts are placed horizontally.
func (in *Input) InjectPinch(cx, cy, fromDist, toDist float64, frames int) {
	if frames < 3 {
		frames = 3
	}
	pair := func(d float64) []PointerSample {
		return []PointerSample{{X: cx - d/2, Y: cy}, {X: cx + d/2, Y: cy}}
	}
	in.InjectTouch(pair(fromDist), true, false)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		in.InjectTouch(pair(fromDist+(toDist-fromDist)*t), false, false)
	}
	in.InjectTouch(nil, false, true)
}

// Pending returns the number of queued synthetic events.
func (in *Input) Pending() int {
	return len(in.injectQueue)
}

// processInjectedInput pops one event from the inject queue and dispatches it.
// Returns true if an event was consumed (real input should be skipped).
func (in *Input) processInjectedInput() bool {
	if len(in.injectQueue) == 0 {
		return false
	}
	evt := in.injectQueue[0]
	copy(in.injectQueue, in.injectQueue[1:])
	in.injectQueue[len(in.injectQueue)-1] = syntheticEvent{}
	in.injectQueue = in.injectQueue[:len(in.injectQueue)-1]

	c := in.control
	switch evt.kind {
	case synthPress:
		c.PointerDown(evt.x, evt.y)
	case synthMove:
		c.PointerMove(evt.x, evt.y)
	case synthRelease:
		c.PointerUp()
	case synthWheel:
		c.Wheel(evt.delta)
	case synthTouchStart:
		c.TouchStart(evt.contacts)
	case synthTouchMove:
		c.TouchMove(evt.contacts)
	case synthTouchEnd:
		c.TouchEnd()
	}
	return true
}
