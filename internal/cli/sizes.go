package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hullviz/pkg/errors"
	"github.com/matzehuels/hullviz/pkg/sizes"
)

// sizesOutput is the JSON shape printed by "sizes --json".
type sizesOutput struct {
	sizes.Sizes
	CLog           float64   `json:"c_log"`
	ArrowHeadWidth []float64 `json:"arrow_head_width"`
}

// sizesCommand creates the sizes command.
func (c *CLI) sizesCommand() *cobra.Command {
	var (
		vertices  int
		edges     int
		asJSON    bool
		fontScale float64
	)

	cmd := &cobra.Command{
		Use:   "sizes",
		Short: "Print default drawing sizes for a graph shape",
		Long: `Print default drawing sizes for a graph shape.

Vertex size and line widths shrink as the graph grows so large drawings
stay legible:

  vertex size        0.1 / sqrt(n + 10)
  vertex line width  exp(-n / 50)
  edge line width    exp(-m / 120)
  font size          20 * exp(-n / 100)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if vertices <= 0 {
				return errors.New(errors.ErrCodeInvalidInput, "--vertices must be positive")
			}
			if edges < 0 {
				return errors.New(errors.ErrCodeInvalidInput, "--edges must not be negative")
			}

			req := sizes.Request{VertexCount: vertices, EdgeCount: edges}
			if cmd.Flags().Changed("font-scale") {
				req.FontScale = &fontScale
			}
			out := sizesOutput{Sizes: sizes.Construct(req)}
			if edges > 0 {
				out.ArrowHeadWidth = sizes.ArrowHeadWidth(out.EdgeLineWidth, true, edges)
			}
			if vertices > 1 && edges > 1 {
				out.CLog = sizes.CLog(float64(vertices), float64(edges))
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			fmt.Println(StyleTitle.Render(fmt.Sprintf("Sizes for %d vertices, %d edges", vertices, edges)))
			printKeyValue("vertex size", formatFloats(out.VertexSize))
			printKeyValue("vertex line width", formatFloats(out.VertexLineWidth))
			printKeyValue("edge line width", formatFloats(out.EdgeLineWidth))
			printKeyValue("arrow head width", formatFloats(out.ArrowHeadWidth))
			printKeyValue("font size", StyleNumber.Render(fmt.Sprintf("%.6g", out.FontSize)))
			if out.CLog != 0 {
				printKeyValue("log ratio", StyleNumber.Render(fmt.Sprintf("%.6g", out.CLog)))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&vertices, "vertices", "n", 0, "number of vertices (required)")
	cmd.Flags().IntVarP(&edges, "edges", "m", 0, "number of edges")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	cmd.Flags().Float64Var(&fontScale, "font-scale", 1, "factor applied to the default font size")
	_ = cmd.MarkFlagRequired("vertices")

	return cmd
}
