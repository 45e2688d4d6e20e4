package vtable_test

import (
	"slices"
	"testing"

	"github.com/go-theft-auto/vtable"
)

func upper(c vtable.CellContext) string { return "X" }

func TestCellPlanFollowsColumnOrder(t *testing.T) {
	p := vtable.NewCellPlan([]vtable.Column{{Key: "a"}, {Key: "b"}, {Key: "c"}}, nil, nil)
	if got := p.Keys(); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("Expected column order, got %v", got)
	}
	if p.Len() != 3 {
		t.Errorf("Expected 3 entries, got %d", p.Len())
	}
}

func TestCellPlanCellOrder(t *testing.T) {
	cols := []vtable.Column{{Key: "a", Render: upper}, {Key: "b"}, {Key: "c"}}
	p := vtable.NewCellPlan(cols, []string{"c", "a", "c", "missing"}, nil)

	if got := p.Keys(); !slices.Equal(got, []string{"c", "a", "missing"}) {
		t.Fatalf("Expected ordered keys without duplicates, got %v", got)
	}
	entries := p.Entries()
	if entries[1].Fallback {
		t.Error("Column with a renderer must not use the fallback")
	}
	if !entries[0].Fallback || !entries[2].Fallback {
		t.Error("Columns without a renderer must use the fallback")
	}
	if got := entries[2].Render(vtable.CellContext{Key: "missing", Value: 42}); got != "42" {
		t.Errorf("Expected fallback text %q, got %q", "42", got)
	}
}

func TestCellPlanVisibleCells(t *testing.T) {
	cols := []vtable.Column{{Key: "a"}, {Key: "b"}, {Key: "c"}}
	p := vtable.NewCellPlan(cols, []string{"c", "b", "a"}, []string{"a", "c"})

	if got := p.Keys(); !slices.Equal(got, []string{"c", "a"}) {
		t.Errorf("Expected visible keys in display order, got %v", got)
	}
	if len(p.All()) != 3 {
		t.Errorf("Expected hidden entries kept in All, got %d", len(p.All()))
	}
	for _, e := range p.All() {
		if e.Key == "b" && e.Visible {
			t.Error("Expected b to be hidden")
		}
	}
}

func TestCellPlanEmptyVisibleHidesAll(t *testing.T) {
	p := vtable.NewCellPlan([]vtable.Column{{Key: "a"}}, nil, []string{})
	if p.Len() != 0 {
		t.Errorf("Expected an empty visible list to hide every column, got %v", p.Keys())
	}
}

func TestDefaultCellText(t *testing.T) {
	if got := vtable.DefaultCellText(vtable.CellContext{}); got != "" {
		t.Errorf("Expected empty text for nil value, got %q", got)
	}
	if got := vtable.DefaultCellText(vtable.CellContext{Value: 3.5}); got != "3.5" {
		t.Errorf("Expected %q, got %q", "3.5", got)
	}
}

func TestDefaultLabel(t *testing.T) {
	tests := map[string]string{
		"id":         "Id",
		"unit_price": "Unit Price",
		"owner-name": "Owner Name",
		"isActive":   "IsActive",
		"":           "",
	}
	for key, want := range tests {
		if got := vtable.DefaultLabel(key); got != want {
			t.Errorf("DefaultLabel(%q) = %q, want %q", key, got, want)
		}
	}
}

func TestMapRow(t *testing.T) {
	row := vtable.MapRow{"id": 7, "name": "Banshee"}
	if row.RowID() != "7" {
		t.Errorf("Expected RowID 7, got %q", row.RowID())
	}
	if got := vtable.CellValue(row, "name"); got != "Banshee" {
		t.Errorf("Expected Banshee, got %v", got)
	}
}

type idOnly string

func (r idOnly) RowID() string { return string(r) }

func TestCellValueWithoutValuer(t *testing.T) {
	if got := vtable.CellValue(idOnly("x"), "name"); got != nil {
		t.Errorf("Expected nil for rows without CellValue, got %v", got)
	}
}
