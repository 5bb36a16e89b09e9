package orbit

import "testing"

func TestApplyZoomConvergesToLimits(t *testing.T) {
	limits := ZoomLimits{In: 0.01, Out: 1}
	for _, speed := range []float64{1.001, 1.02, 1.5, 3, 10, 1000} {
		m := NewModel()
		m.SetScale(0.5)
		for i := 0; i < 100000; i++ {
			free := ApplyZoom(ZoomIn, m, speed, limits)
			if m.Scale() > limits.Out {
				t.Fatalf("speed %v: scale %v exceeded out limit", speed, m.Scale())
			}
			if !free {
				break
			}
		}
		if m.Scale() != limits.Out {
			t.Errorf("speed %v: zoom in settled at %v, want %v", speed, m.Scale(), limits.Out)
		}
		if ApplyZoom(ZoomIn, m, speed, limits) || m.Scale() != limits.Out {
			t.Errorf("speed %v: zoom in at limit should stay clamped, got %v", speed, m.Scale())
		}

		for i := 0; i < 100000; i++ {
			free := ApplyZoom(ZoomOut, m, speed, limits)
			if m.Scale() < limits.In {
				t.Fatalf("speed %v: scale %v went below in limit", speed, m.Scale())
			}
			if !free {
				break
			}
		}
		if m.Scale() != limits.In {
			t.Errorf("speed %v: zoom out settled at %v, want %v", speed, m.Scale(), limits.In)
		}
	}
}

func TestApplyZoomReportsClampOnly(t *testing.T) {
	limits := ZoomLimits{In: 0.1, Out: 2}
	tests := []struct {
		name  string
		dir   ZoomDirection
		start float64
		speed float64
		want  bool
		scale float64
	}{
		{"in free", ZoomIn, 1, 1.5, true, 1.5},
		{"in lands on limit", ZoomIn, 1, 2, true, 2},
		{"in overshoots", ZoomIn, 1.5, 2, false, 2},
		{"out free", ZoomOut, 1, 2, true, 0.5},
		{"out lands on limit", ZoomOut, 0.2, 2, true, 0.1},
		{"out overshoots", ZoomOut, 0.15, 2, false, 0.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel()
			m.SetScale(tt.start)
			if got := ApplyZoom(tt.dir, m, tt.speed, limits); got != tt.want {
				t.Errorf("ApplyZoom = %v, want %v", got, tt.want)
			}
			if m.Scale() != tt.scale {
				t.Errorf("scale = %v, want %v", m.Scale(), tt.scale)
			}
		})
	}
}

func TestApplyZoomNilNode(t *testing.T) {
	if ApplyZoom(ZoomIn, nil, 2, ZoomLimits{In: 0.1, Out: 1}) {
		t.Error("ApplyZoom on nil node should report false")
	}
}

func TestZoomLimitsClamp(t *testing.T) {
	l := ZoomLimits{In: 0.5, Out: 2}
	if got := l.Clamp(0.1); got != 0.5 {
		t.Errorf("Clamp(0.1) = %v, want 0.5", got)
	}
	if got := l.Clamp(3); got != 2 {
		t.Errorf("Clamp(3) = %v, want 2", got)
	}
	if got := l.Clamp(1); got != 1 {
		t.Errorf("Clamp(1) = %v, want 1", got)
	}
}
