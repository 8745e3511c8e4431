package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/hullviz/pkg/pipeline"
)

var (
	colorAccent = lipgloss.Color("36")
	colorOK     = lipgloss.Color("35")
	colorWarn   = lipgloss.Color("220")
	colorFail   = lipgloss.Color("167")
	colorLink   = lipgloss.Color("75")
	colorMuted  = lipgloss.Color("240")
	colorLabel  = lipgloss.Color("245")
)

// Styles shared by command output.
var (
	StyleTitle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	StyleLink   = lipgloss.NewStyle().Foreground(colorLink).Underline(true)
	StyleDim    = lipgloss.NewStyle().Foreground(colorMuted)
	StyleNumber = lipgloss.NewStyle().Foreground(colorAccent)
)

var (
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorAccent)
	styleLabel       = lipgloss.NewStyle().Foreground(colorLabel).Width(18)
	styleCached      = lipgloss.NewStyle().Foreground(colorOK)
)

type marker struct {
	icon  string
	style lipgloss.Style
}

var (
	markSuccess = marker{"✓", lipgloss.NewStyle().Foreground(colorOK)}
	markError   = marker{"✗", lipgloss.NewStyle().Foreground(colorFail)}
	markWarning = marker{"!", lipgloss.NewStyle().Foreground(colorWarn)}
	markInfo    = marker{"›", lipgloss.NewStyle().Foreground(colorLabel)}
)

func (m marker) print(format string, args ...any) {
	fmt.Println(m.style.Render(m.icon) + " " + fmt.Sprintf(format, args...))
}

func printSuccess(format string, args ...any) { markSuccess.print(format, args...) }
func printError(format string, args ...any)   { markError.print(format, args...) }
func printInfo(format string, args ...any)    { markInfo.print(format, args...) }

func printWarning(format string, args ...any) {
	markWarning.print("%s", markWarning.style.Render(fmt.Sprintf(format, args...)))
}

// printDetail prints an indented secondary line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

func printFile(path string) {
	fmt.Println("  " + StyleDim.Render("→") + " " + path)
}

func printKeyValue(key, value string) {
	fmt.Println(styleLabel.Render(key) + " " + value)
}

// formatStats renders layout statistics on one line, ending with whether
// the layout came from the cache.
func formatStats(s pipeline.Stats, cached bool) string {
	parts := []string{
		fmt.Sprintf("%d vertices", s.VertexCount),
		fmt.Sprintf("%d edges", s.EdgeCount),
		fmt.Sprintf("%d hulls", s.HullCount),
	}
	status := StyleDim.Render("fresh")
	if cached {
		status = styleCached.Render("cached")
	} else if s.LayoutTime > 0 {
		parts = append(parts, s.LayoutTime.String())
	}

	for i, p := range parts {
		parts[i] = StyleDim.Render(p)
	}
	return "  " + strings.Join(append(parts, status), StyleDim.Render(" · "))
}

func printStats(s pipeline.Stats, cached bool) {
	fmt.Println(formatStats(s, cached))
}

// formatFloats renders a size slice compactly, collapsing uniform values
// to "v × n".
func formatFloats(values []float64) string {
	if len(values) == 0 {
		return "-"
	}
	uniform := true
	for _, v := range values[1:] {
		if v != values[0] {
			uniform = false
			break
		}
	}
	if uniform {
		return fmt.Sprintf("%.6g × %d", values[0], len(values))
	}
	strs := make([]string, len(values))
	for i, v := range values {
		strs[i] = fmt.Sprintf("%.6g", v)
	}
	return strings.Join(strs, ", ")
}
