package sizes

import (
	"math"
	"slices"
	"testing"
)

func TestDefaults(t *testing.T) {
	tests := []struct {
		name string
		fn   func(int) float64
		n    int
		want float64
	}{
		{"vertex size", VertexSize, 10, 0.022360679774997897},
		{"vertex line width", VertexLineWidth, 10, 0.8187307530779818},
		{"edge line width", EdgeLineWidth, 10, 0.9200444146293233},
		{"font size", FontSize, 10, 18.09674836071919},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.n); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("%s(%d) = %v, want %v", tt.name, tt.n, got, tt.want)
			}
		})
	}
}

func TestDefaultsNonIncreasing(t *testing.T) {
	fns := map[string]func(int) float64{
		"VertexSize":      VertexSize,
		"VertexLineWidth": VertexLineWidth,
		"EdgeLineWidth":   EdgeLineWidth,
		"FontSize":        FontSize,
	}
	for name, fn := range fns {
		prev := fn(1)
		for n := 2; n <= 5000; n++ {
			cur := fn(n)
			if cur > prev {
				t.Fatalf("%s(%d) = %v > %s(%d) = %v", name, n, cur, name, n-1, prev)
			}
			prev = cur
		}
	}
}

func TestCLog(t *testing.T) {
	if got := CLog(10, 10); got != 1 {
		t.Errorf("CLog(10, 10) = %v, want 1", got)
	}
	if got := CLog(8, 2); math.Abs(got-3) > 1e-12 {
		t.Errorf("CLog(8, 2) = %v, want 3", got)
	}
}

func TestArrowHeadWidth(t *testing.T) {
	widths := []float64{1, 1, 1, 2}

	got := ArrowHeadWidth(widths, true, len(widths))
	want := []float64{0.015, 0.015, 0.015, 0.03}
	if !slices.Equal(got, want) {
		t.Errorf("ArrowHeadWidth(show) = %v, want %v", got, want)
	}

	got = ArrowHeadWidth(widths, false, 12)
	if len(got) != 12 {
		t.Fatalf("ArrowHeadWidth(hide) len = %d, want 12", len(got))
	}
	for _, w := range got {
		if w != 0 {
			t.Errorf("ArrowHeadWidth(hide) = %v, want zeros", got)
			break
		}
	}
}

func TestFill(t *testing.T) {
	tests := []struct {
		name string
		o    *Override
		want []float64
	}{
		{"default", nil, []float64{2, 2, 2}},
		{"scalar", Scale(0.5), []float64{1, 1, 1}},
		{"per element", PerElement(1, 2, 3), []float64{2, 4, 6}},
		{"short list padded", PerElement(3), []float64{6, 2, 2}},
		{"long list truncated", PerElement(1, 1, 1, 5), []float64{2, 2, 2}},
		{"empty override", &Override{}, []float64{2, 2, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fill(tt.o, 2, 3); !slices.Equal(got, tt.want) {
				t.Errorf("Fill() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConstruct(t *testing.T) {
	s := Construct(Request{VertexCount: 10, EdgeCount: 4})

	if len(s.VertexSize) != 10 || len(s.VertexLineWidth) != 10 || len(s.EdgeLineWidth) != 4 {
		t.Fatalf("Construct() lengths = %d/%d/%d, want 10/10/4",
			len(s.VertexSize), len(s.VertexLineWidth), len(s.EdgeLineWidth))
	}
	if s.VertexSize[0] != VertexSize(10) {
		t.Errorf("VertexSize[0] = %v, want %v", s.VertexSize[0], VertexSize(10))
	}
	if s.EdgeLineWidth[0] != EdgeLineWidth(4) {
		t.Errorf("EdgeLineWidth[0] = %v, want %v", s.EdgeLineWidth[0], EdgeLineWidth(4))
	}
	if s.FontSize != FontSize(10) {
		t.Errorf("FontSize = %v, want %v", s.FontSize, FontSize(10))
	}
}

func TestConstructOverrides(t *testing.T) {
	scale := 2.0
	s := Construct(Request{
		VertexCount: 2,
		EdgeCount:   1,
		VertexSize:  PerElement(1, 3),
		FontScale:   &scale,
	})

	want := []float64{VertexSize(2), 3 * VertexSize(2)}
	if !slices.Equal(s.VertexSize, want) {
		t.Errorf("VertexSize = %v, want %v", s.VertexSize, want)
	}
	if s.FontSize != 2*FontSize(2) {
		t.Errorf("FontSize = %v, want %v", s.FontSize, 2*FontSize(2))
	}
}
