package vtable

import "time"

// Option configures an Engine.
type Option func(*options)

// options holds all engine configuration via the extensions map.
// All options use the unified OptKey system for type safety.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for engine options.
// All options (built-in and custom) use this system for consistency.
//
// Example:
//
//	var OptRowTint = vtable.NewOptKey("rowTint", vtable.ColorTransparent)
//	e := vtable.New(rows, 24, cols, vtable.WithOpt(OptRowTint, tint))
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
// The default is returned when the option is not set.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name (useful for debugging).
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value with type safety.
// Returns the key's default value if not set.
func GetOpt[T any](o options, key OptKey[T]) T {
	if o.extensions == nil {
		return key.def
	}
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	if o.extensions == nil {
		return false
	}
	_, ok := o.extensions[key.name]
	return ok
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// ApplyAndGet applies options and returns a single value.
func ApplyAndGet[T any](opts []Option, key OptKey[T]) T {
	return GetOpt(applyOptions(opts), key)
}

// ScrollbarVisibility controls when the synthetic scrollbars are shown.
type ScrollbarVisibility int

const (
	ScrollbarAuto  ScrollbarVisibility = iota // Show only when content overflows
	ScrollbarNever                            // Never draw; scrolling still works
)

// Click callbacks.
type (
	RowClickFunc        func(row Row, index int)
	CellClickFunc       func(c CellContext)
	HeaderCellClickFunc func(key string)
	FooterCellClickFunc func(key string)
)

// Built-in option keys.
var (
	OptOverscan = NewOptKey("overscan", DefaultOverscan)

	// Sizing (see SelectSizingMode for precedence)
	OptVisibleRows    = NewOptKey("visibleRows", 0)
	OptMinVisibleRows = NewOptKey("minVisibleRows", 0)
	OptMaxVisibleRows = NewOptKey("maxVisibleRows", 0)
	OptHeight         = NewOptKey[float32]("height", 0)
	OptAutoHeight     = NewOptKey("autoHeight", false)
	OptWidth          = NewOptKey[float32]("width", 0)

	// Columns
	OptCellOrder    = NewOptKey[[]string]("cellOrder", nil)
	OptVisibleCells = NewOptKey[[]string]("visibleCells", nil)
	OptHeaders      = NewOptKey[map[string]HeaderRenderer]("headers", nil)
	OptFooters      = NewOptKey[map[string]FooterRenderer]("footers", nil)

	// Appearance
	OptStyle               = NewOptKey("style", DefaultStyle())
	OptScrollbarVisibility = NewOptKey("scrollbarVisibility", ScrollbarAuto)
	OptAutoHide            = NewOptKey("autoHideScrollbars", false)
	OptFadeDelay           = NewOptKey("scrollbarFadeDelay", DefaultFadeDelay)
	OptTextMeasure         = NewOptKey[TextMeasure]("textMeasure", nil)

	// Callbacks
	OptOnRowClick        = NewOptKey[RowClickFunc]("onRowClick", nil)
	OptOnCellClick       = NewOptKey[CellClickFunc]("onCellClick", nil)
	OptOnHeaderCellClick = NewOptKey[HeaderCellClickFunc]("onHeaderCellClick", nil)
	OptOnFooterCellClick = NewOptKey[FooterCellClickFunc]("onFooterCellClick", nil)

	OptScheduler = NewOptKey[*Scheduler]("scheduler", nil)
)

// WithOverscan sets how many extra rows render above and below the viewport.
func WithOverscan(n int) Option { return WithOpt(OptOverscan, n) }

// WithVisibleRows sizes the body to exactly n rows.
func WithVisibleRows(n int) Option { return WithOpt(OptVisibleRows, n) }

// WithVisibleRowRange sizes the body to the row count clamped to [minRows, maxRows].
func WithVisibleRowRange(minRows, maxRows int) Option {
	return func(o *options) {
		WithOpt(OptMinVisibleRows, minRows)(o)
		WithOpt(OptMaxVisibleRows, maxRows)(o)
	}
}

// WithHeight fixes the total table height in pixels.
func WithHeight(px float32) Option { return WithOpt(OptHeight, px) }

// WithAutoHeight makes the table track its parent's content box.
func WithAutoHeight() Option { return WithOpt(OptAutoHeight, true) }

// WithWidth fixes the table width (0 = parent width, else column total).
func WithWidth(px float32) Option { return WithOpt(OptWidth, px) }

// WithCellOrder sets the display order of columns.
func WithCellOrder(keys ...string) Option { return WithOpt(OptCellOrder, keys) }

// WithVisibleCells restricts which columns are shown.
func WithVisibleCells(keys ...string) Option { return WithOpt(OptVisibleCells, keys) }

// WithHeaders enables the header band. Keys without a renderer get a
// capitalized label.
func WithHeaders(h map[string]HeaderRenderer) Option {
	if h == nil {
		h = map[string]HeaderRenderer{}
	}
	return WithOpt(OptHeaders, h)
}

// WithFooters enables the footer band. Keys without a renderer render empty.
func WithFooters(f map[string]FooterRenderer) Option {
	if f == nil {
		f = map[string]FooterRenderer{}
	}
	return WithOpt(OptFooters, f)
}

// WithStyle sets the visual style.
func WithStyle(s Style) Option { return WithOpt(OptStyle, s) }

// WithScrollbarVisibility controls synthetic scrollbar drawing.
func WithScrollbarVisibility(v ScrollbarVisibility) Option {
	return WithOpt(OptScrollbarVisibility, v)
}

// WithAutoHide dims the scrollbars after delay without scroll or pointer
// activity.
func WithAutoHide(delay time.Duration) Option {
	return func(o *options) {
		WithOpt(OptAutoHide, true)(o)
		if delay > 0 {
			WithOpt(OptFadeDelay, delay)(o)
		}
	}
}

// WithTextMeasure sets the text measure used for auto-width columns.
func WithTextMeasure(m TextMeasure) Option { return WithOpt(OptTextMeasure, m) }

// WithScheduler shares a frame scheduler between engines.
func WithScheduler(s *Scheduler) Option { return WithOpt(OptScheduler, s) }

// OnRowClick sets the row click callback.
func OnRowClick(fn RowClickFunc) Option { return WithOpt(OptOnRowClick, fn) }

// OnCellClick sets the cell click callback.
func OnCellClick(fn CellClickFunc) Option { return WithOpt(OptOnCellClick, fn) }

// OnHeaderCellClick sets the header cell click callback.
func OnHeaderCellClick(fn HeaderCellClickFunc) Option { return WithOpt(OptOnHeaderCellClick, fn) }

// OnFooterCellClick sets the footer cell click callback.
func OnFooterCellClick(fn FooterCellClickFunc) Option { return WithOpt(OptOnFooterCellClick, fn) }
