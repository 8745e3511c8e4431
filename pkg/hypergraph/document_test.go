package hypergraph

import (
	"bytes"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/hullviz/pkg/errors"
	"github.com/matzehuels/hullviz/pkg/geometry"
	"github.com/matzehuels/hullviz/pkg/layout"
	"github.com/matzehuels/hullviz/pkg/sizes"
)

const sampleYAML = `vertex_count: 3
edges:
  - [0, 1]
  - [0, 1, 2]
labels: [a, b, c]
positions:
  - [0, 0]
  - [1, 0]
  - [0, 1]
`

const sampleJSON = `{
  "vertex_count": 3,
  "edges": [[0, 1], [0, 1, 2]],
  "labels": ["a", "b", "c"],
  "positions": [[0, 0], [1, 0], [0, 1]]
}`

func TestReadFormats(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		format Format
	}{
		{"json", sampleJSON, FormatJSON},
		{"yaml", sampleYAML, FormatYAML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Read(strings.NewReader(tt.input), tt.format)
			if err != nil {
				t.Fatalf("Read() error: %v", err)
			}
			if doc.VertexCount != 3 || len(doc.Edges) != 2 || len(doc.Edges[1]) != 3 {
				t.Errorf("unexpected hypergraph: %+v", doc.Hypergraph)
			}
			if doc.Labels[2] != "c" {
				t.Errorf("Labels[2] = %q, want c", doc.Labels[2])
			}
			pts, err := doc.Points()
			if err != nil {
				t.Fatalf("Points() error: %v", err)
			}
			if pts[1] != (geometry.Point{X: 1, Y: 0}) {
				t.Errorf("pts[1] = %v, want (1,0)", pts[1])
			}
		})
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		format Format
		code   errors.Code
	}{
		{"malformed json", `{"vertex_count": `, FormatJSON, errors.ErrCodeInvalidFormat},
		{"malformed yaml", "edges: [[0, 1]\n", FormatYAML, errors.ErrCodeInvalidFormat},
		{"bad edge", `{"vertex_count": 2, "edges": [[0, 5]]}`, FormatJSON, errors.ErrCodeInvalidEdge},
		{"short position", `{"vertex_count": 1, "positions": [[0]]}`, FormatJSON, errors.ErrCodeInvalidPosition},
		{"position count", `{"vertex_count": 2, "positions": [[0, 0]]}`, FormatJSON, errors.ErrCodeInvalidPosition},
		{"negative size", `{"vertex_count": 1, "vertex_sizes": [-1]}`, FormatJSON, errors.ErrCodeInvalidRadius},
		{"size count", `{"vertex_count": 2, "vertex_sizes": [1]}`, FormatJSON, errors.ErrCodeInvalidRadius},
		{"unknown format", `{}`, Format("toml"), errors.ErrCodeUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input), tt.format)
			if !errors.Is(err, tt.code) {
				t.Fatalf("Read() = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
		ok   bool
	}{
		{"g.json", FormatJSON, true},
		{"g.YAML", FormatYAML, true},
		{"dir/g.yml", FormatYAML, true},
		{"g.txt", "", false},
		{"g", "", false},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if (err == nil) != tt.ok || got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, %v", tt.path, got, err)
		}
	}
}

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	doc, err := Read(strings.NewReader(sampleJSON), FormatJSON)
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"g.json", "g.yaml"} {
		path := filepath.Join(dir, name)
		if err := WriteFile(doc, path); err != nil {
			t.Fatalf("WriteFile(%s) error: %v", name, err)
		}
		back, err := ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile(%s) error: %v", name, err)
		}
		a, _ := MarshalDocument(doc)
		b, _ := MarshalDocument(back)
		if !bytes.Equal(a, b) {
			t.Errorf("%s round trip changed document:\n%s\n%s", name, a, b)
		}
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Fatalf("ReadFile() = %v, want FILE_NOT_FOUND", err)
	}
}

func TestSetPoints(t *testing.T) {
	doc := &Document{Hypergraph: Hypergraph{VertexCount: 2}}
	doc.SetPoints([]geometry.Point{{X: 1, Y: 2}, {X: 3, Y: 4}})
	pts, err := doc.Points()
	if err != nil {
		t.Fatal(err)
	}
	if pts[1] != (geometry.Point{X: 3, Y: 4}) {
		t.Errorf("pts[1] = %v", pts[1])
	}
}

func TestLayoutFile(t *testing.T) {
	doc, err := Read(strings.NewReader(sampleJSON), FormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	pts, _ := doc.Points()
	sz := sizes.Construct(sizes.Request{VertexCount: doc.VertexCount, EdgeCount: doc.EdgeCount()})
	res, err := layout.Compute(layout.Input{
		VertexCount:     doc.VertexCount,
		Edges:           doc.Edges,
		Positions:       pts,
		VertexSizes:     sz.VertexSize,
		RadiusIncrement: layout.DefaultRadiusIncrement,
	})
	if err != nil {
		t.Fatal(err)
	}

	l, err := NewLayout(doc, res, sz, layout.DefaultRadiusIncrement)
	if err != nil {
		t.Fatalf("NewLayout() error: %v", err)
	}
	if len(l.Lines) != 2 || len(l.Arcs) != 2 || len(l.EdgeCenters) != 2 {
		t.Fatalf("unexpected group counts: %d lines, %d arcs, %d centers", len(l.Lines), len(l.Arcs), len(l.EdgeCenters))
	}
	if l.Bounds == nil {
		t.Fatal("Bounds is nil")
	}

	path := filepath.Join(t.TempDir(), "out.layout.json")
	if err := WriteLayoutFile(l, path); err != nil {
		t.Fatalf("WriteLayoutFile() error: %v", err)
	}
	back, err := ReadLayoutFile(path)
	if err != nil {
		t.Fatalf("ReadLayoutFile() error: %v", err)
	}
	if len(back.Hulls) != 1 || back.Hulls[0].Edge != 1 {
		t.Errorf("Hulls = %+v, want one hull for edge 1", back.Hulls)
	}
	if back.Arcs[1][0] != l.Arcs[1][0] {
		t.Errorf("arc changed across round trip: %+v vs %+v", back.Arcs[1][0], l.Arcs[1][0])
	}
}

func TestUnmarshalLayoutRejectsMismatch(t *testing.T) {
	if _, err := UnmarshalLayout([]byte(`{"edges": [[0]], "lines": [], "arcs": []}`)); err == nil {
		t.Error("expected error for mismatched groups")
	}
	if _, err := UnmarshalLayout([]byte(`not json`)); err == nil {
		t.Error("expected error for malformed json")
	}
}

func TestWriteFileUnsupported(t *testing.T) {
	doc := &Document{Hypergraph: Hypergraph{VertexCount: 1}}
	path := filepath.Join(t.TempDir(), "g.txt")
	if err := WriteFile(doc, path); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Fatalf("WriteFile() = %v, want UNSUPPORTED", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("file should not be created")
	}
}

// failingCloser accepts writes and fails on Close, like a file whose final
// flush hits a full disk.
type failingCloser struct {
	bytes.Buffer
	closed bool
}

func (f *failingCloser) Close() error {
	f.closed = true
	return os.ErrClosed
}

func TestEncodeAndCloseReportsCloseError(t *testing.T) {
	doc := &Document{Hypergraph: Hypergraph{VertexCount: 1, Edges: [][]int{{0}}}}

	fc := &failingCloser{}
	err := encodeAndClose(fc, "g.json", func(w io.Writer) error {
		return Write(doc, w, FormatJSON)
	})
	if !fc.closed {
		t.Error("writer was not closed")
	}
	if !errors.Is(err, errors.ErrCodeInternal) || !stderrors.Is(err, os.ErrClosed) {
		t.Fatalf("encodeAndClose() = %v, want the close error", err)
	}

	encodeErr := errors.New(errors.ErrCodeUnsupported, "bad format")
	err = encodeAndClose(&failingCloser{}, "g.json", func(io.Writer) error { return encodeErr })
	if err != encodeErr {
		t.Errorf("encodeAndClose() = %v, want the encode error", err)
	}
}
