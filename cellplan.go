package vtable

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Row is an opaque record with a stable identity. The engine only ever
// calls RowID; everything else belongs to the caller's renderers.
type Row interface {
	RowID() string
}

// CellValuer is implemented by rows that expose per-column values. It feeds
// click context and the fallback renderer.
type CellValuer interface {
	CellValue(key string) any
}

// MapRow is a convenience Row backed by a map with an "id" entry.
type MapRow map[string]any

// RowID returns the "id" entry formatted as a string.
func (m MapRow) RowID() string {
	return fmt.Sprint(m["id"])
}

// CellValue returns the entry stored under key.
func (m MapRow) CellValue(key string) any {
	return m[key]
}

// CellValue returns row's value for key, or nil if the row does not
// implement CellValuer.
func CellValue(row Row, key string) any {
	if v, ok := row.(CellValuer); ok {
		return v.CellValue(key)
	}
	return nil
}

// CellContext is everything a cell renderer or click handler gets to see.
type CellContext struct {
	Row      Row
	RowIndex int
	Key      string
	Value    any
}

// CellRenderer turns one cell into display text.
type CellRenderer func(c CellContext) string

// HeaderRenderer renders the header label of a column.
type HeaderRenderer func(key string) string

// FooterRenderer renders a footer cell; it receives the full row array so
// it can aggregate.
type FooterRenderer func(key string, rows []Row) string

// Column configures one table column.
type Column struct {
	Key    string
	Render CellRenderer

	Width    float32 // Fixed width in pixels (0 = auto or stretch)
	Stretch  float32 // Stretch weight; >0 shares the remaining width
	MinWidth float32
	MaxWidth float32 // 0 = unlimited
}

// PlanEntry is a resolved column: the configured Column plus whether it is
// shown and whether its renderer is the fallback.
type PlanEntry struct {
	Column
	Visible  bool
	Fallback bool
}

// CellPlan is the ordered, visibility-filtered list of columns. It is built
// once per configuration change so row rendering never re-resolves column
// configuration.
type CellPlan struct {
	all     []PlanEntry
	visible []PlanEntry
}

// NewCellPlan resolves column order and visibility.
//
// With a nil order the plan follows the column slice order. With an order,
// only the ordered keys appear, in that order; a key without a configured
// column renders through the fallback renderer. A non-nil visible list
// filters entries without changing their order.
func NewCellPlan(columns []Column, order, visible []string) *CellPlan {
	byKey := make(map[string]Column, len(columns))
	for _, c := range columns {
		if _, dup := byKey[c.Key]; !dup {
			byKey[c.Key] = c
		}
	}

	var keys []string
	if order != nil {
		keys = dedupe(order)
	} else {
		for _, c := range columns {
			keys = append(keys, c.Key)
		}
		keys = dedupe(keys)
	}

	var show map[string]bool
	if visible != nil {
		show = make(map[string]bool, len(visible))
		for _, k := range visible {
			show[k] = true
		}
	}

	p := &CellPlan{all: make([]PlanEntry, 0, len(keys))}
	for _, k := range keys {
		col, ok := byKey[k]
		entry := PlanEntry{Column: col, Visible: show == nil || show[k]}
		if !ok {
			entry.Column = Column{Key: k}
		}
		if entry.Render == nil {
			entry.Render = DefaultCellText
			entry.Fallback = true
		}
		p.all = append(p.all, entry)
		if entry.Visible {
			p.visible = append(p.visible, entry)
		}
	}
	return p
}

// Entries returns the visible columns in display order.
func (p *CellPlan) Entries() []PlanEntry {
	return p.visible
}

// All returns every ordered column including hidden ones.
func (p *CellPlan) All() []PlanEntry {
	return p.all
}

// Len returns the number of visible columns.
func (p *CellPlan) Len() int {
	return len(p.visible)
}

// Keys returns the visible column keys in display order.
func (p *CellPlan) Keys() []string {
	keys := make([]string, len(p.visible))
	for i, e := range p.visible {
		keys[i] = e.Key
	}
	return keys
}

// DefaultCellText is the fallback renderer: the cell value as plain text.
func DefaultCellText(c CellContext) string {
	if c.Value == nil {
		return ""
	}
	return fmt.Sprint(c.Value)
}

// DefaultLabel is the fallback header label: the key with separators turned
// into spaces and each word capitalized ("unit_price" -> "Unit Price").
func DefaultLabel(key string) string {
	words := strings.FieldsFunc(key, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	return cases.Title(language.Und, cases.NoLower).String(strings.Join(words, " "))
}

func dedupe(keys []string) []string {
	seen := make(map[string]bool, len(keys))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}
