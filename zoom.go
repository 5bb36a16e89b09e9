package orbit

// ApplyZoom performs one zoom step on node and reports whether it was applied
// freely. ZoomOut divides the scale by speed and ZoomIn multiplies it. A step
// that would leave [limits.In, limits.Out] is replaced by an exact clamp to the
// violated limit and reports false. A nil node is left alone and reports false.
//
// speed must be greater than 1 and limits must satisfy 0 < In < Out; Config
// validation enforces both, so they are not checked here.
func ApplyZoom(direction ZoomDirection, node SceneNode, speed float64, limits ZoomLimits) bool {
	if node == nil {
		return false
	}
	s := node.Scale()
	switch direction {
	case ZoomOut:
		s /= speed
		if s < limits.In {
			node.SetScale(limits.In)
			return false
		}
	case ZoomIn:
		s *= speed
		if s > limits.Out {
			node.SetScale(limits.Out)
			return false
		}
	default:
		return false
	}
	node.SetScale(s)
	return true
}

// zoomHandler is a registered zoom observer.
type zoomHandler struct {
	id uint32
	fn func(ZoomContext)
}

// ZoomContext describes a zoom step that was applied within limits.
type ZoomContext struct {
	Direction ZoomDirection
	Speed     float64
	// Scale is the node scale after the step.
	Scale float64
}

// CallbackHandle allows removing a registered observer.
type CallbackHandle struct {
	id uint32
	c  *Control
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.c == nil {
		return
	}
	s := h.c.zoomHandlers
	for i := range s {
		if s[i].id == h.id {
			h.c.zoomHandlers = append(s[:i:i], s[i+1:]...)
			return
		}
	}
}
