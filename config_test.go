package vtable_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-theft-auto/vtable"
)

const sampleConfig = `
overscan: 4
sizing:
  min_visible_rows: 3
  max_visible_rows: 20
width: 640
cell_order: [name, id]
theme: gta
scrollbars:
  auto_hide: true
  fade_delay: 750ms
  thickness: 8
  dimmed_opacity: 0.5
  colors:
    thumb: "#ff000080"
    track: "#102030"
`

func TestParseConfig(t *testing.T) {
	cfg, err := vtable.ParseConfig([]byte(sampleConfig))
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	if cfg.Overscan != 4 || cfg.Width != 640 {
		t.Errorf("Unexpected overscan/width: %d/%v", cfg.Overscan, cfg.Width)
	}
	if cfg.Sizing.MinVisibleRows != 3 || cfg.Sizing.MaxVisibleRows != 20 {
		t.Errorf("Unexpected sizing %+v", cfg.Sizing)
	}
	if cfg.Scrollbars.FadeDelay.Duration() != 750*time.Millisecond {
		t.Errorf("Expected 750ms fade delay, got %v", cfg.Scrollbars.FadeDelay.Duration())
	}
	if cfg.Scrollbars.Visibility != "auto" {
		t.Errorf("Expected default visibility to survive, got %q", cfg.Scrollbars.Visibility)
	}

	s := cfg.Style()
	if s.Vertical.Thickness != 8 || s.Horizontal.Thickness != 8 {
		t.Errorf("Expected thickness override on both axes, got %v/%v", s.Vertical.Thickness, s.Horizontal.Thickness)
	}
	if s.Vertical.Colors.Thumb != vtable.RGBA(255, 0, 0, 128) {
		t.Errorf("Expected thumb color override, got %#08x", s.Vertical.Colors.Thumb)
	}
	if s.Vertical.Colors.Track != vtable.RGBA(0x10, 0x20, 0x30, 255) {
		t.Errorf("Expected opaque track color, got %#08x", s.Vertical.Colors.Track)
	}
	if s.Vertical.Colors.ThumbActive != vtable.GTAStyle().Vertical.Colors.ThumbActive {
		t.Error("Expected unset colors to keep the theme's values")
	}
	if s.DimmedOpacity != 0.5 {
		t.Errorf("Expected dimmed opacity 0.5, got %v", s.DimmedOpacity)
	}
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := vtable.ParseConfig([]byte("overscan: -3\n"))
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	if cfg.Overscan != 0 {
		t.Errorf("Expected negative overscan clamped to 0, got %d", cfg.Overscan)
	}
	if cfg.Scrollbars.FadeDelay.Duration() != vtable.DefaultFadeDelay {
		t.Errorf("Expected default fade delay, got %v", cfg.Scrollbars.FadeDelay.Duration())
	}
	if cfg.Theme != "default" {
		t.Errorf("Expected default theme, got %q", cfg.Theme)
	}
}

func TestParseConfigZeroOpacity(t *testing.T) {
	cfg, err := vtable.ParseConfig([]byte("scrollbars:\n  dimmed_opacity: 0\n"))
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	if s := cfg.Style(); s.DimmedOpacity != 0 || s.VisibleOpacity != 1 {
		t.Errorf("Expected fully hidden dimmed scrollbars, got dimmed=%v visible=%v", s.DimmedOpacity, s.VisibleOpacity)
	}

	cfg, err = vtable.ParseConfig([]byte("theme: default\n"))
	if err != nil {
		t.Fatal(err)
	}
	if s := cfg.Style(); s.DimmedOpacity != vtable.DefaultStyle().DimmedOpacity {
		t.Errorf("Expected unset opacity to keep the theme's value, got %v", s.DimmedOpacity)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown theme", "theme: neon\n", "unknown theme"},
		{"unknown visibility", "scrollbars:\n  visibility: sometimes\n", "unknown scrollbar visibility"},
		{"bad duration", "scrollbars:\n  fade_delay: soon\n", "invalid duration"},
		{"bad color", "scrollbars:\n  colors:\n    thumb: red\n", "invalid color"},
		{"bad yaml", "overscan: [1, 2\n", "parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := vtable.ParseConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatal("Expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	c, err := vtable.ParseColor("#00649680")
	if err != nil {
		t.Fatal(err)
	}
	if uint32(c) != vtable.RGBA(0, 0x64, 0x96, 0x80) {
		t.Errorf("Expected packed 0x80966400, got %#08x", uint32(c))
	}
	if c, _ := vtable.ParseColor(""); c != 0 {
		t.Errorf("Expected zero color for empty input, got %#08x", uint32(c))
	}
	if _, err := vtable.ParseColor("#12345"); err == nil {
		t.Error("Expected an error for a short color")
	}
}

func TestConfigOptions(t *testing.T) {
	cfg, err := vtable.ParseConfig([]byte(sampleConfig))
	if err != nil {
		t.Fatal(err)
	}
	sched := vtable.NewScheduler(start)
	opts := append(cfg.Options(), vtable.WithScheduler(sched))
	e := vtable.New(testRows(5), 40, testColumns, opts...)

	if e.Mode() != vtable.SizeRowRange(3, 20) {
		t.Errorf("Expected row range mode, got %v", e.Mode())
	}
	if got := e.Plan().Keys(); len(got) != 2 || got[0] != "name" {
		t.Errorf("Expected configured cell order, got %v", got)
	}
	if vtable.ApplyAndGet(opts, vtable.OptOverscan) != 4 {
		t.Error("Expected overscan option 4")
	}
	if !vtable.ApplyAndGet(opts, vtable.OptAutoHide) {
		t.Error("Expected auto-hide enabled")
	}
	if d := vtable.ApplyAndGet(opts, vtable.OptFadeDelay); d != 750*time.Millisecond {
		t.Errorf("Expected fade delay 750ms, got %v", d)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	cfg, err := vtable.LoadConfig(filepath.Join(dir, "missing.yaml"))
	if err != nil {
		t.Fatalf("Expected defaults for a missing file, got %v", err)
	}
	if cfg.Overscan != vtable.DefaultOverscan {
		t.Errorf("Expected default overscan, got %d", cfg.Overscan)
	}

	path := filepath.Join(dir, "vtable.yaml")
	if err := os.WriteFile(path, []byte("theme: terminal\nscrollbars:\n  visibility: never\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = vtable.LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Style().CharWidth != 1 {
		t.Errorf("Expected terminal metrics, got char width %v", cfg.Style().CharWidth)
	}
	if v := vtable.ApplyAndGet(cfg.Options(), vtable.OptScrollbarVisibility); v != vtable.ScrollbarNever {
		t.Errorf("Expected ScrollbarNever, got %v", v)
	}
}
