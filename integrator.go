package orbit

import "math"

// MotionIntegrator eases a node's rotation toward a target rotation once per
// tick. Each tick covers a fixed fraction of the remaining distance, so motion
// decelerates as it approaches the target. There is no notion of wall-clock
// time: frame-rate changes alter the perceived speed, not the end state.
type MotionIntegrator struct {
	AutoRotate    bool
	AutoRotateDeg float64
	EnableX       bool
	EnableY       bool

	// RotateSpeed is the fraction of remaining distance covered per tick.
	RotateSpeed float64
	// EaseOffset is the dead zone below which an axis is left alone.
	EaseOffset float64

	XUpLimit   float64
	XDownLimit float64

	// remaining is target minus current from the last tick, in target axes.
	remaining Rotation
}

// NewMotionIntegrator creates an integrator from cfg.
func NewMotionIntegrator(cfg Config) *MotionIntegrator {
	return &MotionIntegrator{
		AutoRotate:    cfg.EnableAutoRotate,
		AutoRotateDeg: cfg.AutoRotateDeg,
		EnableX:       cfg.EnableXRotation,
		EnableY:       cfg.EnableYRotation,
		RotateSpeed:   cfg.MouseRotateSpeed,
		EaseOffset:    cfg.EaseOffset,
		XUpLimit:      cfg.RotateXUpLimit,
		XDownLimit:    cfg.RotateXDownLimit,
	}
}

// Remaining returns the distance to target measured on the last tick.
func (m *MotionIntegrator) Remaining() Rotation { return m.remaining }

// Reset zeroes the in-flight distance.
func (m *MotionIntegrator) Reset() { m.remaining = Rotation{} }

// Update advances node one tick. When idle with auto-rotate on, the node yaws
// by AutoRotateDeg and target is re-seeded so a following drag starts from the
// displayed rotation. Otherwise each enabled axis eases toward target. The
// vertical axis only moves while inside [XDownLimit, XUpLimit] and is clamped
// back into that range after moving. A nil node is a no-op.
func (m *MotionIntegrator) Update(mode GestureMode, target *Rotation, node SceneNode) {
	if node == nil || target == nil {
		return
	}
	rot := node.Rotation()

	if mode == ModeIdle && m.AutoRotate {
		rot.Y += m.AutoRotateDeg
		node.SetRotation(rot)
		*target = Rotation{X: rot.Y, Y: rot.X}
		m.remaining = Rotation{}
		return
	}

	m.remaining = Rotation{
		X: target.X - rot.Y,
		Y: target.Y - rot.X,
	}

	// Horizontal
	if math.Abs(m.remaining.X) > m.EaseOffset && m.EnableY {
		rot.Y += m.remaining.X * m.RotateSpeed
	}

	// Vertical
	if math.Abs(m.remaining.Y) > m.EaseOffset && m.EnableX &&
		rot.X <= m.XUpLimit && rot.X >= m.XDownLimit {
		rot.X += m.remaining.Y * m.RotateSpeed
		if rot.X > m.XUpLimit {
			rot.X = m.XUpLimit
		} else if rot.X < m.XDownLimit {
			rot.X = m.XDownLimit
		}
	}

	node.SetRotation(rot)
}
