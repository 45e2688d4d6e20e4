package vtable

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the file form of the engine options, for hosts that let users
// tune tables without recompiling.
//
//	overscan: 4
//	sizing:
//	  min_visible_rows: 3
//	  max_visible_rows: 20
//	  auto_height: true
//	theme: gta
//	scrollbars:
//	  auto_hide: true
//	  fade_delay: 2s
//	  colors:
//	    thumb: "#006496"
type Config struct {
	Overscan     int             `yaml:"overscan"`
	Sizing       SizingConfig    `yaml:"sizing,omitempty"`
	Width        float32         `yaml:"width,omitempty"`
	CellOrder    []string        `yaml:"cell_order,omitempty"`
	VisibleCells []string        `yaml:"visible_cells,omitempty"`
	Theme        string          `yaml:"theme,omitempty"`
	Scrollbars   ScrollbarConfig `yaml:"scrollbars,omitempty"`
}

type SizingConfig struct {
	VisibleRows    int     `yaml:"visible_rows,omitempty"`
	MinVisibleRows int     `yaml:"min_visible_rows,omitempty"`
	MaxVisibleRows int     `yaml:"max_visible_rows,omitempty"`
	Height         float32 `yaml:"height,omitempty"`
	AutoHeight     bool    `yaml:"auto_height,omitempty"`
}

type ScrollbarConfig struct {
	Visibility     string         `yaml:"visibility,omitempty"` // auto | never
	AutoHide       bool           `yaml:"auto_hide,omitempty"`
	FadeDelay      Duration       `yaml:"fade_delay,omitempty"`
	Thickness      float32        `yaml:"thickness,omitempty"`
	ThumbMin       float32        `yaml:"thumb_min,omitempty"`
	VisibleOpacity *float32       `yaml:"visible_opacity,omitempty"` // nil keeps the theme's value
	DimmedOpacity  *float32       `yaml:"dimmed_opacity,omitempty"`
	Colors         ScrollbarTheme `yaml:"colors,omitempty"`
}

type ScrollbarTheme struct {
	Track        Color `yaml:"track,omitempty"`
	Thumb        Color `yaml:"thumb,omitempty"`
	ThumbHovered Color `yaml:"thumb_hovered,omitempty"`
	ThumbActive  Color `yaml:"thumb_active,omitempty"`
}

// Duration is a time.Duration written as "1500ms" in YAML.
type Duration time.Duration

func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	if s == "" {
		*d = 0
		return nil
	}
	dur, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(dur)
	return nil
}

// Color is a packed color written as "#RRGGBB" or "#RRGGBBAA" in YAML.
// The zero value means "keep the theme color".
type Color uint32

func (c Color) MarshalYAML() (interface{}, error) {
	r, g, b, a := UnpackRGBA(uint32(c))
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a), nil
}

func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	v, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ParseColor parses "#RRGGBB" or "#RRGGBBAA". An empty string is the zero
// Color.
func ParseColor(s string) (Color, error) {
	if s == "" {
		return 0, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return 0, fmt.Errorf("invalid color %q: want #RRGGBB or #RRGGBBAA", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color(RGBA(uint8(n>>24), uint8(n>>16), uint8(n>>8), uint8(n))), nil
}

// DefaultConfig returns the configuration equivalent to passing no options.
func DefaultConfig() *Config {
	return &Config{
		Overscan: DefaultOverscan,
		Theme:    "default",
		Scrollbars: ScrollbarConfig{
			Visibility: "auto",
			FadeDelay:  Duration(DefaultFadeDelay),
		},
	}
}

// LoadConfig reads a YAML config. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML on top of the defaults.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Theme {
	case "", "default", "gta", "terminal":
	default:
		return fmt.Errorf("parse config: unknown theme %q", c.Theme)
	}
	switch c.Scrollbars.Visibility {
	case "", "auto", "never":
	default:
		return fmt.Errorf("parse config: unknown scrollbar visibility %q", c.Scrollbars.Visibility)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Overscan < 0 {
		c.Overscan = 0
	}
	if c.Scrollbars.FadeDelay <= 0 {
		c.Scrollbars.FadeDelay = Duration(DefaultFadeDelay)
	}
}

// Style returns the theme with the scrollbar overrides applied.
func (c *Config) Style() Style {
	var s Style
	switch c.Theme {
	case "gta":
		s = GTAStyle()
	case "terminal":
		s = TerminalStyle()
	default:
		s = DefaultStyle()
	}

	sb := c.Scrollbars
	for _, axis := range [...]*AxisStyle{&s.Vertical, &s.Horizontal} {
		if sb.Thickness > 0 {
			axis.Thickness = sb.Thickness
		}
		if sb.ThumbMin > 0 {
			axis.ThumbMin = sb.ThumbMin
		}
		overrideColor(&axis.Colors.Track, sb.Colors.Track)
		overrideColor(&axis.Colors.Thumb, sb.Colors.Thumb)
		overrideColor(&axis.Colors.ThumbHovered, sb.Colors.ThumbHovered)
		overrideColor(&axis.Colors.ThumbActive, sb.Colors.ThumbActive)
	}
	if sb.VisibleOpacity != nil {
		s.VisibleOpacity = clampf(*sb.VisibleOpacity, 0, 1)
	}
	if sb.DimmedOpacity != nil {
		s.DimmedOpacity = clampf(*sb.DimmedOpacity, 0, 1)
	}
	return s
}

func overrideColor(dst *uint32, c Color) {
	if c != 0 {
		*dst = uint32(c)
	}
}

// Options converts the config into engine options. Callers append their
// own options (renderers, callbacks) after these.
func (c *Config) Options() []Option {
	opts := []Option{
		WithOverscan(c.Overscan),
		WithStyle(c.Style()),
	}
	sz := c.Sizing
	if sz.VisibleRows > 0 {
		opts = append(opts, WithVisibleRows(sz.VisibleRows))
	}
	if sz.MinVisibleRows > 0 || sz.MaxVisibleRows > 0 {
		opts = append(opts, WithVisibleRowRange(sz.MinVisibleRows, sz.MaxVisibleRows))
	}
	if sz.Height > 0 {
		opts = append(opts, WithHeight(sz.Height))
	}
	if sz.AutoHeight {
		opts = append(opts, WithAutoHeight())
	}
	if c.Width > 0 {
		opts = append(opts, WithWidth(c.Width))
	}
	if c.CellOrder != nil {
		opts = append(opts, WithCellOrder(c.CellOrder...))
	}
	if c.VisibleCells != nil {
		opts = append(opts, WithVisibleCells(c.VisibleCells...))
	}
	if c.Scrollbars.Visibility == "never" {
		opts = append(opts, WithScrollbarVisibility(ScrollbarNever))
	}
	if c.Scrollbars.AutoHide {
		opts = append(opts, WithAutoHide(c.Scrollbars.FadeDelay.Duration()))
	}
	return opts
}
