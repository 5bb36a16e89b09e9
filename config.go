package orbit

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Configuration errors returned by Config.Validate and New.
var (
	ErrInvalidZoomLimits   = errors.New("orbit: zoom limits must satisfy 0 < in < out")
	// ErrInvalidSpeed is stricter than "positive": ZoomSpeed must exceed 1 and
	// MouseRotateSpeed must not exceed 1.
	ErrInvalidSpeed        = errors.New("orbit: invalid speed")
	ErrInvalidRotateLimits = errors.New("orbit: rotate X limits must satisfy down <= up")
	ErrInvalidSize         = errors.New("orbit: surface size must be positive")
)

const defaultDebounceMillis = 300

// Config holds the options for a Control. Start from DefaultConfig and
// override fields; the zero value is not valid.
type Config struct {
	// Width and Height are the initial surface size in pixels. Pointer
	// coordinates are measured against the surface center.
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`

	EnableAutoRotate bool `toml:"enable_auto_rotate"`
	EnableXRotation  bool `toml:"enable_x_rotation"`
	EnableYRotation  bool `toml:"enable_y_rotation"`

	// AutoRotateDeg is the per-tick yaw increment applied while idle, in
	// radians. The default is 0.1 degrees.
	AutoRotateDeg float64 `toml:"auto_rotate_deg"`

	// ZoomInLimit is the smallest scale and ZoomOutLimit the largest.
	ZoomInLimit  float64 `toml:"zoom_in_limit"`
	ZoomOutLimit float64 `toml:"zoom_out_limit"`
	// ZoomSpeed is the factor applied per wheel notch or pinch move. It must be
	// greater than 1, not merely positive: values in (0, 1] would invert the
	// zoom directions and are rejected.
	ZoomSpeed float64 `toml:"zoom_speed"`

	// MouseRotateSpeed is the fraction of the remaining distance covered per
	// tick. It must be in (0, 1]; larger values overshoot the target and are
	// rejected.
	MouseRotateSpeed float64 `toml:"mouse_rotate_speed"`
	// MouseMoveSpeed converts pointer pixels into target radians.
	MouseMoveSpeed float64 `toml:"mouse_move_speed"`

	RotateXUpLimit   float64 `toml:"rotate_x_up_limit"`
	RotateXDownLimit float64 `toml:"rotate_x_down_limit"`

	// EaseOffset is the dead zone in radians below which an axis is settled.
	EaseOffset float64 `toml:"ease_offset"`

	// DebounceMillis is how long single-touch rotation stays locked out after
	// the last pinch move.
	DebounceMillis int `toml:"debounce_ms"`

	// Debug enables diagnostics on stderr.
	Debug bool `toml:"debug"`

	// ZoomCallBack, if set, is called after every zoom step that stayed within
	// limits. Clamped steps are not reported.
	ZoomCallBack func(direction ZoomDirection, speed float64) `toml:"-"`
}

// DefaultConfig returns the default options for an 800x600 surface.
func DefaultConfig() Config {
	return Config{
		Width:            800,
		Height:           600,
		EnableXRotation:  true,
		EnableYRotation:  true,
		AutoRotateDeg:    0.1 * math.Pi / 180,
		ZoomInLimit:      0.01,
		ZoomOutLimit:     1,
		ZoomSpeed:        1.02,
		MouseRotateSpeed: 0.04,
		MouseMoveSpeed:   0.01,
		RotateXUpLimit:   math.Pi / 2,
		RotateXDownLimit: -math.Pi / 2,
		EaseOffset:       0.2,
		DebounceMillis:   defaultDebounceMillis,
	}
}

// Validate reports the first impossible option combination.
func (c Config) Validate() error {
	if !(c.Width > 0) || !(c.Height > 0) {
		return fmt.Errorf("%w: %vx%v", ErrInvalidSize, c.Width, c.Height)
	}
	if !(c.ZoomInLimit > 0) || !(c.ZoomInLimit < c.ZoomOutLimit) {
		return fmt.Errorf("%w: in=%v out=%v", ErrInvalidZoomLimits, c.ZoomInLimit, c.ZoomOutLimit)
	}
	if !(c.ZoomSpeed > 1) {
		return fmt.Errorf("%w: zoom speed %v must be greater than 1", ErrInvalidSpeed, c.ZoomSpeed)
	}
	if !(c.MouseRotateSpeed > 0) || c.MouseRotateSpeed > 1 {
		return fmt.Errorf("%w: mouse rotate speed %v must be in (0, 1]", ErrInvalidSpeed, c.MouseRotateSpeed)
	}
	if !(c.MouseMoveSpeed > 0) {
		return fmt.Errorf("%w: mouse move speed %v must be positive", ErrInvalidSpeed, c.MouseMoveSpeed)
	}
	if c.AutoRotateDeg < 0 {
		return fmt.Errorf("%w: auto rotate step %v must not be negative", ErrInvalidSpeed, c.AutoRotateDeg)
	}
	if c.RotateXDownLimit > c.RotateXUpLimit {
		return fmt.Errorf("%w: down=%v up=%v", ErrInvalidRotateLimits, c.RotateXDownLimit, c.RotateXUpLimit)
	}
	if c.EaseOffset < 0 {
		return fmt.Errorf("%w: ease offset %v must not be negative", ErrInvalidSpeed, c.EaseOffset)
	}
	return nil
}

// Limits returns the zoom limits as a ZoomLimits value.
func (c Config) Limits() ZoomLimits {
	return ZoomLimits{In: c.ZoomInLimit, Out: c.ZoomOutLimit}
}

func (c Config) debounceDelay() time.Duration {
	if c.DebounceMillis <= 0 {
		return defaultDebounceMillis * time.Millisecond
	}
	return time.Duration(c.DebounceMillis) * time.Millisecond
}

// ParseConfig decodes TOML options on top of DefaultConfig and validates the
// result. Keys absent from data keep their defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a TOML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return ParseConfig(data)
}
