package vtable_test

import (
	"testing"

	"github.com/go-theft-auto/vtable"
)

func TestSelectSizingModePrecedence(t *testing.T) {
	tests := []struct {
		name   string
		params vtable.SizingParams
		want   vtable.SizingMode
	}{
		{"nothing", vtable.SizingParams{}, vtable.SizeAuto()},
		{"auto flag alone", vtable.SizingParams{AutoHeight: true}, vtable.SizeAuto()},
		{"explicit", vtable.SizingParams{Height: 300}, vtable.SizeExplicit(300)},
		{"range beats explicit", vtable.SizingParams{MinVisibleRows: 3, MaxVisibleRows: 8, Height: 300}, vtable.SizeRowRange(3, 8)},
		{"range with only max", vtable.SizingParams{MaxVisibleRows: 8}, vtable.SizeRowRange(0, 8)},
		{"fixed beats everything", vtable.SizingParams{VisibleRows: 5, MinVisibleRows: 3, Height: 300, AutoHeight: true}, vtable.SizeFixedRows(5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := vtable.SelectSizingMode(tt.params); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestResolveHeight(t *testing.T) {
	tests := []struct {
		name     string
		in       vtable.HeightInput
		wantEff  float32
		wantBody float32
	}{
		{
			name:     "fixed rows",
			in:       vtable.HeightInput{Mode: vtable.SizeFixedRows(5), RowHeight: 40, RowCount: 100},
			wantEff:  200,
			wantBody: 200,
		},
		{
			name:     "fixed rows with bands",
			in:       vtable.HeightInput{Mode: vtable.SizeFixedRows(5), RowHeight: 40, HeaderHeight: 30, FooterHeight: 20},
			wantEff:  250,
			wantBody: 200,
		},
		{
			name:     "range grows with rows",
			in:       vtable.HeightInput{Mode: vtable.SizeRowRange(3, 8), RowHeight: 40, RowCount: 5},
			wantEff:  200,
			wantBody: 200,
		},
		{
			name:     "range minimum",
			in:       vtable.HeightInput{Mode: vtable.SizeRowRange(3, 8), RowHeight: 40, RowCount: 1},
			wantEff:  120,
			wantBody: 120,
		},
		{
			name:     "range maximum",
			in:       vtable.HeightInput{Mode: vtable.SizeRowRange(3, 8), RowHeight: 40, RowCount: 20},
			wantEff:  320,
			wantBody: 320,
		},
		{
			name:     "range open upper bound",
			in:       vtable.HeightInput{Mode: vtable.SizeRowRange(3, 0), RowHeight: 40, RowCount: 20},
			wantEff:  800,
			wantBody: 800,
		},
		{
			name: "range capped by parent",
			in: vtable.HeightInput{Mode: vtable.SizeRowRange(3, 8), RowHeight: 40, RowCount: 20,
				AutoDetect: true, ParentHeight: 100},
			wantEff:  100,
			wantBody: 100,
		},
		{
			name: "range cap leaves room for bands",
			in: vtable.HeightInput{Mode: vtable.SizeRowRange(3, 8), RowHeight: 40, RowCount: 20,
				HeaderHeight: 30, AutoDetect: true, ParentHeight: 100},
			wantEff:  100,
			wantBody: 70,
		},
		{
			name: "range ignores parent without auto detect",
			in: vtable.HeightInput{Mode: vtable.SizeRowRange(3, 8), RowHeight: 40, RowCount: 20,
				ParentHeight: 100},
			wantEff:  320,
			wantBody: 320,
		},
		{
			name:     "explicit",
			in:       vtable.HeightInput{Mode: vtable.SizeExplicit(300), RowHeight: 40, HeaderHeight: 30, FooterHeight: 20},
			wantEff:  300,
			wantBody: 250,
		},
		{
			name:     "explicit smaller than bands",
			in:       vtable.HeightInput{Mode: vtable.SizeExplicit(40), RowHeight: 40, HeaderHeight: 30, FooterHeight: 20},
			wantEff:  40,
			wantBody: 0,
		},
		{
			name:     "auto follows parent",
			in:       vtable.HeightInput{Mode: vtable.SizeAuto(), RowHeight: 40, HeaderHeight: 30, FooterHeight: 20, AutoDetect: true, ParentHeight: 600},
			wantEff:  600,
			wantBody: 550,
		},
		{
			name:     "auto before parent is measured",
			in:       vtable.HeightInput{Mode: vtable.SizeAuto(), RowHeight: 40, HeaderHeight: 30},
			wantEff:  0,
			wantBody: 0,
		},
		{
			name:     "negative bands clamp",
			in:       vtable.HeightInput{Mode: vtable.SizeFixedRows(2), RowHeight: 40, HeaderHeight: -10, FooterHeight: -5},
			wantEff:  80,
			wantBody: 80,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := vtable.ResolveHeight(tt.in)
			if got.EffectiveHeight != tt.wantEff || got.BodyHeight != tt.wantBody {
				t.Errorf("Expected effective=%v body=%v, got effective=%v body=%v",
					tt.wantEff, tt.wantBody, got.EffectiveHeight, got.BodyHeight)
			}
			if again := vtable.ResolveHeight(tt.in); again != got {
				t.Errorf("Second resolve differs: %+v vs %+v", got, again)
			}
		})
	}
}

func TestResolveHeightExplicitSumsExactly(t *testing.T) {
	for _, h := range []float32{120, 333.5, 480.25, 1000} {
		for _, header := range []float32{0, 24, 31.5} {
			for _, footer := range []float32{0, 18.75, 40} {
				in := vtable.HeightInput{Mode: vtable.SizeExplicit(h), RowHeight: 24,
					HeaderHeight: header, FooterHeight: footer}
				var res vtable.HeightResult
				for i := 0; i < 100; i++ {
					res = vtable.ResolveHeight(in)
				}
				if sum := res.BodyHeight + header + footer; sum != h {
					t.Errorf("H=%v header=%v footer=%v: body+bands = %v", h, header, footer, sum)
				}
			}
		}
	}
}

func TestResolveHeightFractionalBandsSumExactly(t *testing.T) {
	totals := []float32{123.45, 300.7, 480.33, 600.1, 1999.99}
	bands := []float32{0, 0.3, 12.1, 19.7, 27.9, 33.3}
	for _, total := range totals {
		for _, header := range bands {
			for _, footer := range bands {
				for _, mode := range []vtable.SizingMode{vtable.SizeExplicit(total), vtable.SizeAuto()} {
					res := vtable.ResolveHeight(vtable.HeightInput{Mode: mode, RowHeight: 24,
						HeaderHeight: header, FooterHeight: footer, AutoDetect: true, ParentHeight: total})
					if res.EffectiveHeight != total {
						t.Errorf("%v: expected effective %v, got %v", mode, total, res.EffectiveHeight)
					}
					if sum := res.BodyHeight + res.HeaderHeight + res.FooterHeight; sum != total {
						t.Errorf("%v H=%v header=%v footer=%v: body+bands = %v", mode, total, header, footer, sum)
					}
					if d := res.HeaderHeight - header; d > 1.0/128 || d < -1.0/128 {
						t.Errorf("Header %v resolved to %v", header, res.HeaderHeight)
					}
					if d := res.FooterHeight - footer; d > 1.0/128 || d < -1.0/128 {
						t.Errorf("Footer %v resolved to %v", footer, res.FooterHeight)
					}
				}
			}
		}
	}
}
