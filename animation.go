package orbit

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// View is a bookmark of a node's displayed rotation and scale.
type View struct {
	Rotation Rotation
	Scale    float64
}

// zoomAnim animates the node scale toward an exact end value.
type zoomAnim struct {
	tween *gween.Tween
	to    float64
}

// SaveView captures the node's current rotation and scale. Returns the zero
// View when no node is set.
func (c *Control) SaveView() View {
	if c.node == nil {
		return View{}
	}
	return View{Rotation: c.node.Rotation(), Scale: c.node.Scale()}
}

// RestoreView eases the node back to v: the rotation through the motion
// integrator and the scale through a tween of the given duration in seconds.
func (c *Control) RestoreView(v View, duration float32, easeFn ease.TweenFunc) {
	if c.disposed {
		return
	}
	c.RecoverRotate(v.Rotation)
	if v.Scale > 0 {
		c.ZoomTo(v.Scale, duration, easeFn)
	}
}

// ZoomTo animates the node scale to scale, clamped to the zoom limits, over
// duration seconds. A non-positive duration sets it immediately. A nil easeFn
// uses ease.OutQuad. Wheel and pinch zooming cancel the animation.
func (c *Control) ZoomTo(scale float64, duration float32, easeFn ease.TweenFunc) {
	if c.disposed || c.node == nil {
		return
	}
	to := c.limits.Clamp(scale)
	if duration <= 0 {
		c.zoomTween = nil
		c.node.SetScale(to)
		return
	}
	if easeFn == nil {
		easeFn = ease.OutQuad
	}
	c.zoomTween = &zoomAnim{
		tween: gween.New(float32(c.node.Scale()), float32(to), duration, easeFn),
		to:    to,
	}
}

// Zooming reports whether a ZoomTo animation is in progress.
func (c *Control) Zooming() bool {
	return c.zoomTween != nil
}

// updateZoomTween advances the scale animation by dt seconds. The final frame
// writes the exact clamped target rather than the tween's float32 value.
func (c *Control) updateZoomTween(dt float32) {
	val, done := c.zoomTween.tween.Update(dt)
	if done {
		c.node.SetScale(c.zoomTween.to)
		c.zoomTween = nil
		return
	}
	c.node.SetScale(c.limits.Clamp(float64(val)))
}
