package cli

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/hullviz/pkg/hypergraph"
)

const testDocument = `vertex_count: 4
edges:
  - [0, 1]
  - [1, 2, 3]
  - [0]
`

// execute runs the root command with args in an isolated environment.
func execute(t *testing.T, args ...string) error {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.ExecuteContext(context.Background())
}

// writeDocument writes the test hypergraph as YAML and returns its path.
func writeDocument(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.yaml")
	if err := os.WriteFile(path, []byte(testDocument), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLayoutCommand(t *testing.T) {
	input := writeDocument(t)
	if err := execute(t, "layout", "--seed", "3", "--write-input", input); err != nil {
		t.Fatalf("layout: %v", err)
	}

	base := strings.TrimSuffix(input, ".yaml")
	l, err := hypergraph.ReadLayoutFile(base + ".layout.json")
	if err != nil {
		t.Fatalf("read layout: %v", err)
	}
	if len(l.Lines) != 3 || len(l.Positions) != 4 {
		t.Errorf("unexpected layout: %d line groups, %d positions", len(l.Lines), len(l.Positions))
	}
	if l.RadiusIncrement != 0.3 {
		t.Errorf("radius_increment = %v, want default 0.3", l.RadiusIncrement)
	}

	filled, err := hypergraph.ReadFile(base + ".filled.yaml")
	if err != nil {
		t.Fatalf("read filled input: %v", err)
	}
	if !filled.HasPositions() || !filled.HasSizes() {
		t.Error("filled input is missing positions or sizes")
	}
}

func TestLayoutCommandFlagsOverrideConfig(t *testing.T) {
	input := writeDocument(t)
	out := filepath.Join(t.TempDir(), "out.json")
	cfg := writeConfig(t, "[layout]\nradius_increment = 0.9\n")

	if err := execute(t, "--config", cfg, "layout", "--no-cache", "-o", out, input); err != nil {
		t.Fatalf("layout: %v", err)
	}
	l, err := hypergraph.ReadLayoutFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if l.RadiusIncrement != 0.9 {
		t.Errorf("radius_increment = %v, want 0.9 from config", l.RadiusIncrement)
	}

	if err := execute(t, "--config", cfg, "layout", "--no-cache", "--radius-increment", "0", "-o", out, input); err != nil {
		t.Fatalf("layout: %v", err)
	}
	l, _ = hypergraph.ReadLayoutFile(out)
	if l.RadiusIncrement != 0 {
		t.Errorf("radius_increment = %v, want 0 from flag", l.RadiusIncrement)
	}
}

func TestLayoutCommandErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"vertex_count": 2, "edges": [[0, 5]]}`), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		args []string
	}{
		{"missing file", []string{"layout", filepath.Join(dir, "missing.json")}},
		{"invalid edge", []string{"layout", bad}},
		{"unsupported extension", []string{"layout", filepath.Join(dir, "graph.txt")}},
		{"no args", []string{"layout"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := execute(t, tt.args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestSizesCommand(t *testing.T) {
	if err := execute(t, "sizes", "-n", "10", "-m", "3"); err != nil {
		t.Fatalf("sizes: %v", err)
	}
	if err := execute(t, "sizes", "-n", "0"); err == nil {
		t.Error("sizes with zero vertices should fail")
	}
	if err := execute(t, "sizes"); err == nil {
		t.Error("sizes without --vertices should fail")
	}
}

func TestInitPositionsCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "pos.json")
	if err := execute(t, "init-positions", "5", "--seed", "11", "--scale", "2", "-o", out); err != nil {
		t.Fatalf("init-positions: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	var got positionsOutput
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got.Seed != 11 || len(got.Positions) != 5 {
		t.Fatalf("unexpected output: %+v", got)
	}
	for i, p := range got.Positions {
		if p[0] < -2 || p[0] > 2 || p[1] < -2 || p[1] > 2 {
			t.Errorf("position %d = %v outside scale", i, p)
		}
	}

	for _, arg := range []string{"0", "-3", "abc"} {
		if err := execute(t, "init-positions", "--", arg); err == nil {
			t.Errorf("init-positions %q should fail", arg)
		}
	}
}

func TestFormatFloats(t *testing.T) {
	tests := []struct {
		in   []float64
		want string
	}{
		{nil, "-"},
		{[]float64{0.5, 0.5, 0.5}, "0.5 × 3"},
		{[]float64{1, 2}, "1, 2"},
	}
	for _, tt := range tests {
		if got := formatFloats(tt.in); got != tt.want {
			t.Errorf("formatFloats(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
