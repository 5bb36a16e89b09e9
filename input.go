package orbit

import "github.com/hajimehoshi/ebiten/v2"

const maxContacts = 10

// inputSource is the polled device state. The default reads ebiten; tests
// substitute a fake.
type inputSource interface {
	CursorPosition() (x, y int)
	MousePressed() bool
	Wheel() (xoff, yoff float64)
	AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID
	TouchPosition(id ebiten.TouchID) (x, y int)
}

type ebitenSource struct{}

func (ebitenSource) CursorPosition() (int, int) { return ebiten.CursorPosition() }

func (ebitenSource) MousePressed() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func (ebitenSource) Wheel() (float64, float64) { return ebiten.Wheel() }

func (ebitenSource) AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID {
	return ebiten.AppendTouchIDs(ids)
}

func (ebitenSource) TouchPosition(id ebiten.TouchID) (int, int) { return ebiten.TouchPosition(id) }

// Input polls ebiten's mouse, wheel and touch state once per tick and routes
// edges to a Control. Call Poll from ebiten.Game.Update before Control.Update.
type Input struct {
	control *Control
	src     inputSource

	// Mouse state
	mousePressed bool // raw button state on the previous poll
	mouseDown    bool // a mouse drag is active
	lastX, lastY float64

	// Touch state: ebiten touch IDs mapped to stable slots.
	touchMap     [maxContacts]ebiten.TouchID
	touchUsed    [maxContacts]bool
	touchPos     [maxContacts]PointerSample
	prevTouchIDs []ebiten.TouchID
	contacts     []PointerSample

	injectQueue []syntheticEvent
	testRunner  *TestRunner
}

// NewInput creates an Input that drives c from ebiten's input state.
func NewInput(c *Control) *Input {
	return &Input{control: c, src: ebitenSource{}}
}

// Poll reads one tick of input. Injected events take precedence over real
// input: while the inject queue is non-empty, one event is consumed per tick
// and devices are not read.
func (in *Input) Poll() {
	if in.testRunner != nil {
		in.testRunner.step(in)
	}
	if in.processInjectedInput() {
		return
	}
	touching := in.processTouches()
	if !touching {
		in.processMouse()
	}
	in.processWheel()
}

// processMouse handles the left button. Leaving the surface while pressed
// ends the drag; re-entering does not resume it until a new press.
func (in *Input) processMouse() {
	mx, my := in.src.CursorPosition()
	x, y := float64(mx), float64(my)
	pressed := in.src.MousePressed()
	justPressed := pressed && !in.mousePressed
	in.mousePressed = pressed

	cfg := in.control.Config()
	inside := x >= 0 && y >= 0 && x < cfg.Width && y < cfg.Height

	switch {
	case justPressed && inside:
		in.mouseDown = true
		in.control.PointerDown(x, y)
	case in.mouseDown && (!pressed || !inside):
		in.mouseDown = false
		in.control.PointerUp()
	case in.mouseDown && (x != in.lastX || y != in.lastY):
		in.control.PointerMove(x, y)
	}
	in.lastX = x
	in.lastY = y
}

// processWheel converts ebiten's wheel offset to DOM sign: scrolling toward
// the user (negative ebiten Y) zooms out.
func (in *Input) processWheel() {
	_, wy := in.src.Wheel()
	if wy != 0 {
		in.control.Wheel(-wy)
	}
}

// processTouches diffs the active touches against the previous poll.
// Returns true if any contact is held.
func (in *Input) processTouches() bool {
	ids := in.src.AppendTouchIDs(in.prevTouchIDs[:0])
	in.prevTouchIDs = ids

	var active [maxContacts]bool
	var started, moved bool
	for _, tid := range ids {
		slot, isNew := in.touchSlot(tid)
		if slot < 0 {
			continue
		}
		active[slot] = true

		tx, ty := in.src.TouchPosition(tid)
		p := PointerSample{X: float64(tx), Y: float64(ty)}
		if isNew {
			started = true
		} else if in.touchPos[slot] != p {
			moved = true
		}
		in.touchPos[slot] = p
	}

	// Release slots whose touch disappeared.
	var released bool
	for i := 0; i < maxContacts; i++ {
		if in.touchUsed[i] && !active[i] {
			in.touchUsed[i] = false
			in.touchMap[i] = 0
			released = true
		}
	}

	in.contacts = in.contacts[:0]
	for i := 0; i < maxContacts; i++ {
		if in.touchUsed[i] {
			in.contacts = append(in.contacts, in.touchPos[i])
		}
	}

	if released {
		in.control.TouchEnd()
	}
	switch {
	case started:
		in.control.TouchStart(in.contacts)
	case moved && len(in.contacts) > 0:
		in.control.TouchMove(in.contacts)
	}
	return len(in.contacts) > 0 || released
}

// touchSlot maps an ebiten.TouchID to a slot, allocating one for a new touch.
// Returns -1 if all slots are taken.
func (in *Input) touchSlot(tid ebiten.TouchID) (slot int, isNew bool) {
	for i := 0; i < maxContacts; i++ {
		if in.touchUsed[i] && in.touchMap[i] == tid {
			return i, false
		}
	}
	for i := 0; i < maxContacts; i++ {
		if !in.touchUsed[i] {
			in.touchUsed[i] = true
			in.touchMap[i] = tid
			return i, true
		}
	}
	return -1, false
}
