package orbit

import "github.com/go-gl/mathgl/mgl64"

// Model is a minimal SceneNode holding XY Euler angles and a uniform scale.
// Use it when the renderer has no node type of its own, and read Matrix each
// frame to draw.
type Model struct {
	rotation Rotation
	scale    float64
}

// NewModel creates a Model with no rotation and scale 1.
func NewModel() *Model {
	return &Model{scale: 1}
}

// Rotation returns the model's rotation.
func (m *Model) Rotation() Rotation { return m.rotation }

// SetRotation sets the model's rotation.
func (m *Model) SetRotation(r Rotation) { m.rotation = r }

// Scale returns the uniform scale.
func (m *Model) Scale() float64 { return m.scale }

// SetScale sets the uniform scale.
func (m *Model) SetScale(s float64) { m.scale = s }

// Matrix returns the model matrix Rx * Ry * S (XYZ Euler order).
func (m *Model) Matrix() mgl64.Mat4 {
	s := m.scale
	return mgl64.HomogRotate3DX(m.rotation.X).
		Mul4(mgl64.HomogRotate3DY(m.rotation.Y)).
		Mul4(mgl64.Scale3D(s, s, s))
}

// Transform maps a point from model space into world space.
func (m *Model) Transform(v mgl64.Vec3) mgl64.Vec3 {
	return m.Matrix().Mul4x1(v.Vec4(1)).Vec3()
}
