package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hullviz/pkg/errors"
	"github.com/matzehuels/hullviz/pkg/hypergraph"
	"github.com/matzehuels/hullviz/pkg/pipeline"
	"github.com/matzehuels/hullviz/pkg/sizes"
)

// layoutFlags holds layout command flags that override the config file.
type layoutFlags struct {
	output          string
	noCache         bool
	refresh         bool
	radiusIncrement float64
	seed            uint64
	scale           float64
	vertexScale     float64
	fontScale       float64
	writeInput      bool
}

// layoutCommand creates the layout command.
func (c *CLI) layoutCommand() *cobra.Command {
	var f layoutFlags

	cmd := &cobra.Command{
		Use:   "layout [graph.json|graph.yaml]",
		Short: "Compute hull outlines for a hypergraph",
		Long: `Compute hull outlines for a hypergraph.

The input document lists the vertex count and hyperedges, optionally with
vertex positions and sizes. Missing positions are drawn from a seeded
random square and missing sizes default from the vertex count.

Edges are laid out smallest first. Every edge a vertex belongs to widens
the circle later edges draw around it, so nested edges stay visually
separate. The result is written as <input>.layout.json: tangent lines and
arcs per edge, ready for any 2D renderer.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.layoutOptions(cmd, f)
			return c.runLayout(cmd.Context(), args[0], opts, f)
		},
	}

	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "recompute even when a cached layout exists")
	cmd.Flags().Float64Var(&f.radiusIncrement, "radius-increment", pipeline.DefaultRadiusIncrement, "fraction of vertex size added per containing edge")
	cmd.Flags().Uint64Var(&f.seed, "seed", pipeline.DefaultSeed, "seed for generated positions")
	cmd.Flags().Float64Var(&f.scale, "scale", pipeline.DefaultScale, "half-width of the square generated positions are drawn from")
	cmd.Flags().Float64Var(&f.vertexScale, "vertex-scale", 1, "factor applied to every vertex size")
	cmd.Flags().Float64Var(&f.fontScale, "font-scale", 1, "factor applied to the default font size")
	cmd.Flags().BoolVar(&f.writeInput, "write-input", false, "also write the input with filled-in positions and sizes next to the output")

	return cmd
}

// layoutOptions starts from the config file and applies flags the user set.
func (c *CLI) layoutOptions(cmd *cobra.Command, f layoutFlags) pipeline.Options {
	opts := c.Config.Layout
	flags := cmd.Flags()
	if flags.Changed("radius-increment") {
		inc := f.radiusIncrement
		opts.RadiusIncrement = &inc
	}
	if flags.Changed("seed") {
		seed := f.seed
		opts.Seed = &seed
	}
	if flags.Changed("scale") {
		opts.Scale = f.scale
	}
	if flags.Changed("vertex-scale") {
		opts.VertexSize = sizes.Scale(f.vertexScale)
	}
	if flags.Changed("font-scale") {
		fs := f.fontScale
		opts.FontScale = &fs
	}
	opts.Refresh = f.refresh
	opts.Logger = c.Logger
	return opts
}

// runLayout loads the document, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, input string, opts pipeline.Options, f layoutFlags) error {
	doc, err := hypergraph.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load %s: %w", input, err)
	}

	runner, err := c.newRunner(ctx, f.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.SetDefaults()
	prog := newProgress(c.Logger)
	spin := startSpinner(ctx, c.status, fmt.Sprintf("Laying out %d edges...", len(doc.Edges)))

	res, err := runner.Layout(ctx, doc, opts)
	if err != nil {
		spin.fail("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spin.stop()
	if spin.interrupted() {
		return ctx.Err()
	}

	base := strings.TrimSuffix(input, filepath.Ext(input))
	outputPath := f.output
	if outputPath == "" {
		outputPath = base + ".layout.json"
	}
	if err := errors.ValidatePath(outputPath); err != nil {
		return err
	}
	if err := hypergraph.WriteLayoutFile(res.Layout, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}
	prog.done("wrote layout", "path", outputPath, "hulls", res.Stats.HullCount)

	printSuccess("Layout complete")
	printFile(outputPath)

	if f.writeInput {
		filled := base + ".filled" + filepath.Ext(input)
		if err := hypergraph.WriteFile(res.Document, filled); err != nil {
			return fmt.Errorf("write filled input %s: %w", filled, err)
		}
		printFile(filled)
	}

	printStats(res.Stats, res.CacheHit)
	if res.Stats.GeneratedPositions {
		printDetail("positions generated with seed %d", opts.PositionSeed())
	}
	return nil
}
