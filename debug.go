package orbit

import (
	"fmt"
	"os"
)

// debugLog prints a diagnostic line to stderr when debug mode is on.
func (c *Control) debugLog(format string, args ...any) {
	if !c.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[orbit] "+format+"\n", args...)
}

// debugCheckScale warns on stderr if a node's scale starts outside the zoom
// limits. The first zoom step will snap it to the nearest limit.
func debugCheckScale(n SceneNode, limits ZoomLimits) {
	s := n.Scale()
	if s < limits.In || s > limits.Out {
		_, _ = fmt.Fprintf(os.Stderr, "[orbit] warning: node scale %v outside zoom limits [%v, %v]\n",
			s, limits.In, limits.Out)
	}
}
