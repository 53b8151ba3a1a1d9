package snaplist

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Orientation selects the scrolling direction.
type Orientation uint8

const (
	Vertical Orientation = iota
	Horizontal
)

// Axis returns the primary axis of the orientation.
func (o Orientation) Axis() Axis {
	if o == Horizontal {
		return AxisX
	}
	return AxisY
}

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// MarshalText implements encoding.TextMarshaler.
func (o Orientation) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Orientation) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "vertical":
		*o = Vertical
	case "horizontal":
		*o = Horizontal
	default:
		return fmt.Errorf("unknown orientation %q", b)
	}
	return nil
}

// MovementType controls what happens at the content bounds.
type MovementType uint8

const (
	// Elastic lets content overshoot with rubber-band resistance and
	// springs it back.
	Elastic MovementType = iota
	// Clamped pins content at the bounds.
	Clamped
	// Unrestricted applies no bounds.
	Unrestricted
)

func (m MovementType) String() string {
	switch m {
	case Clamped:
		return "clamped"
	case Unrestricted:
		return "unrestricted"
	}
	return "elastic"
}

// MarshalText implements encoding.TextMarshaler.
func (m MovementType) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *MovementType) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "elastic":
		*m = Elastic
	case "clamped":
		*m = Clamped
	case "unrestricted":
		*m = Unrestricted
	default:
		return fmt.Errorf("unknown movement type %q", b)
	}
	return nil
}

// AttachSnap tunes auto-attach: inertial motion slower than
// VelocityThreshold settles onto the nearest item over Duration seconds.
type AttachSnap struct {
	VelocityThreshold float32 `toml:"velocity_threshold"`
	Duration          float32 `toml:"duration"`
}

// Config holds everything that shapes a list. Changing it rebuilds the
// window.
type Config struct {
	ItemCount   int         `toml:"item_count"`
	Orientation Orientation `toml:"orientation"`
	// FixedCount is the number of items per line on the cross axis.
	FixedCount int `toml:"fixed_count"`
	// ItemSize overrides the template's natural size on non-zero axes.
	ItemSize Vec2   `toml:"item_size"`
	Spacing  Vec2   `toml:"spacing"`
	Margin   Margin `toml:"margin"`
	Loop     bool   `toml:"loop"`

	Movement         MovementType `toml:"movement"`
	Elasticity       float32      `toml:"elasticity"`
	Inertia          bool         `toml:"inertia"`
	DecelerationRate float32      `toml:"deceleration_rate"`
	AutoAttach       bool         `toml:"auto_attach"`
	Snap             AttachSnap   `toml:"snap"`

	// ScaleByProximity shrinks items as they move away from the viewport
	// center using the list's scale curve.
	ScaleByProximity bool `toml:"scale_by_proximity"`
}

// DefaultConfig returns a vertical, single-column, elastic list.
func DefaultConfig() Config {
	return Config{
		Orientation:      Vertical,
		FixedCount:       1,
		Movement:         Elastic,
		Elasticity:       0.1,
		Inertia:          true,
		DecelerationRate: 0.135,
		Snap: AttachSnap{
			VelocityThreshold: 0.5,
			Duration:          0.3,
		},
	}
}

// Axis returns the primary axis.
func (c Config) Axis() Axis { return c.Orientation.Axis() }

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.ItemCount < 0:
		return fmt.Errorf("item_count must not be negative, got %d", c.ItemCount)
	case c.FixedCount < 1:
		return fmt.Errorf("fixed_count must be at least 1, got %d", c.FixedCount)
	case c.ItemSize.X < 0 || c.ItemSize.Y < 0:
		return fmt.Errorf("item_size must not be negative, got %v", c.ItemSize)
	case c.Spacing.X < 0 || c.Spacing.Y < 0:
		return fmt.Errorf("spacing must not be negative, got %v", c.Spacing)
	case c.Elasticity < 0:
		return fmt.Errorf("elasticity must not be negative, got %g", c.Elasticity)
	case c.DecelerationRate < 0 || c.DecelerationRate > 1:
		return fmt.Errorf("deceleration_rate must be within [0, 1], got %g", c.DecelerationRate)
	case c.Snap.Duration < 0:
		return fmt.Errorf("snap.duration must not be negative, got %g", c.Snap.Duration)
	case c.Snap.VelocityThreshold < 0:
		return fmt.Errorf("snap.velocity_threshold must not be negative, got %g", c.Snap.VelocityThreshold)
	}
	return nil
}

// ErrUnknownKeys is returned when a config file carries keys that do not
// map to any Config field.
var ErrUnknownKeys = errors.New("unknown config keys")

// DecodeConfig parses TOML text on top of DefaultConfig.
func DecodeConfig(data string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return finishConfig(cfg, md)
}

// LoadConfig reads a TOML file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return finishConfig(cfg, md)
}

func finishConfig(cfg Config, md toml.MetaData) (Config, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: %s", ErrUnknownKeys, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
