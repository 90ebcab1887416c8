package render

import (
	"dex/internal/compare"
	"dex/internal/favorites"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

const (
	favoriteMark = "★"
	barWidth     = 20
	maxTextWidth = 72
)

type LipglossRenderer struct {
	width int
	r     *lipgloss.Renderer

	idStyle     lipgloss.Style
	nameStyle   lipgloss.Style
	typeStyle   lipgloss.Style
	descStyle   lipgloss.Style
	favStyle    lipgloss.Style
	faintStyle  lipgloss.Style
	winnerStyle lipgloss.Style
}

func NewLipglossRenderer(w io.Writer, width int) *LipglossRenderer {
	r := lipgloss.NewRenderer(w)
	return &LipglossRenderer{
		width:       width,
		r:           r,
		idStyle:     r.NewStyle().Faint(true),
		nameStyle:   r.NewStyle().Bold(true),
		typeStyle:   r.NewStyle().Foreground(lipgloss.Color("6")),
		descStyle:   r.NewStyle().Italic(true),
		favStyle:    r.NewStyle().Foreground(lipgloss.Color("11")),
		faintStyle:  r.NewStyle().Faint(true),
		winnerStyle: r.NewStyle().Foreground(lipgloss.Color("10")),
	}
}

func NewLipglossRendererAuto(w io.Writer) *LipglossRenderer {
	width := 80
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(f.Fd()); err == nil && tw > 0 {
			width = tw
		}
	}
	return NewLipglossRenderer(w, width)
}

func (r *LipglossRenderer) RenderList(view ListView) string {
	var sb strings.Builder

	if view.IsEmpty() {
		sb.WriteString("No Pokémon found.\n")
	} else {
		nameWidth := 0
		for _, e := range view.Visible {
			nameWidth = max(nameWidth, lipgloss.Width(DisplayName(e.Name)))
		}
		for _, e := range view.Visible {
			mark := " "
			if view.isFavorite(e.ID) {
				mark = r.favStyle.Render(favoriteMark)
			}
			types := strings.Join(e.Categories, ", ")
			if types == "" {
				types = "unknown"
			}
			name := DisplayName(e.Name)
			name += strings.Repeat(" ", nameWidth-lipgloss.Width(name))

			sb.WriteString(mark)
			sb.WriteString(" ")
			sb.WriteString(r.idStyle.Render(FormatID(e.ID)))
			sb.WriteString("  ")
			sb.WriteString(r.nameStyle.Render(name))
			sb.WriteString("  ")
			sb.WriteString(r.typeStyle.Render(types))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(r.faintStyle.Render(Summary(view.View)))
	sb.WriteString("\n")
	if pager := Pager(view.View); pager != "" {
		sb.WriteString(pager)
		sb.WriteString("\n")
	}
	return sb.String()
}

func (r *LipglossRenderer) RenderTypes(counts []TypeCount) string {
	if len(counts) == 0 {
		return "No types found.\n"
	}

	labelWidth := 0
	for _, c := range counts {
		labelWidth = max(labelWidth, len(c.Label))
	}

	var sb strings.Builder
	for _, c := range counts {
		fmt.Fprintf(&sb, "%s  %s\n",
			r.typeStyle.Render(fmt.Sprintf("%-*s", labelWidth, c.Label)),
			r.faintStyle.Render(fmt.Sprintf("%3d", c.Count)))
	}
	return sb.String()
}

func (r *LipglossRenderer) RenderDetail(view DetailView) string {
	d := view.Detail
	var sb strings.Builder

	sb.WriteString(r.idStyle.Render(FormatID(d.ID)))
	sb.WriteString(" ")
	sb.WriteString(r.nameStyle.Render(DisplayName(d.Name)))
	if view.Favorite {
		sb.WriteString(" ")
		sb.WriteString(r.favStyle.Render(favoriteMark))
	}
	sb.WriteString("\n")
	sb.WriteString(r.typeStyle.Render(strings.Join(d.Types, ", ")))
	sb.WriteString("\n\n")

	sb.WriteString(r.wrap(r.descStyle, d.Description))
	sb.WriteString("\n\n")

	fmt.Fprintf(&sb, "%-10s %.1f m\n", "Height", float64(d.Height)/10)
	fmt.Fprintf(&sb, "%-10s %.1f kg\n", "Weight", float64(d.Weight)/10)
	fmt.Fprintf(&sb, "%-10s %d\n", "Base exp", d.BaseExperience)
	if len(d.Abilities) > 0 {
		names := make([]string, len(d.Abilities))
		for i, a := range d.Abilities {
			names[i] = a.Name
			if a.Hidden {
				names[i] += " (hidden)"
			}
		}
		fmt.Fprintf(&sb, "%-10s %s\n", "Abilities", strings.Join(names, ", "))
	}

	if len(d.Stats) > 0 {
		sb.WriteString("\n")
		for _, s := range d.Stats {
			fmt.Fprintf(&sb, "%-16s %3d  %s\n", s.Name, s.Base, r.bar(s.Base))
		}
		fmt.Fprintf(&sb, "%-16s %3d\n", "total", d.TotalStats())
	}
	return sb.String()
}

func (r *LipglossRenderer) RenderComparison(res compare.Result) string {
	var sb strings.Builder

	left, right := DisplayName(res.Left.Name), DisplayName(res.Right.Name)
	fmt.Fprintf(&sb, "%s vs %s\n\n", r.nameStyle.Render(left), r.nameStyle.Render(right))

	colWidth := max(len(left), len(right), 5)
	fmt.Fprintf(&sb, "%-16s %*s   %*s\n", "", colWidth, left, colWidth, right)
	for _, row := range res.Rows {
		fmt.Fprintf(&sb, "%-16s %*d %s %*d\n", row.Stat, colWidth, row.Left, r.marker(row.Left, row.Right), colWidth, row.Right)
	}
	fmt.Fprintf(&sb, "%-16s %*d %s %*d\n", "total", colWidth, res.Left.Total, r.marker(res.Left.Total, res.Right.Total), colWidth, res.Right.Total)

	sb.WriteString("\n")
	if res.Even() {
		sb.WriteString(res.Message)
	} else {
		sb.WriteString(r.winnerStyle.Render(res.Message))
	}
	sb.WriteString("\n")
	return sb.String()
}

func (r *LipglossRenderer) RenderFavorites(items []favorites.Named) string {
	if len(items) == 0 {
		return "No favorites yet.\n"
	}

	var sb strings.Builder
	for _, it := range items {
		sb.WriteString(r.favStyle.Render(favoriteMark))
		sb.WriteString(" ")
		sb.WriteString(r.idStyle.Render(FormatID(it.ID)))
		sb.WriteString("  ")
		sb.WriteString(r.nameStyle.Render(DisplayName(it.Name)))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (r *LipglossRenderer) bar(base int) string {
	filled := compare.BarPercent(base) * barWidth / 100
	return r.winnerStyle.Render(strings.Repeat("█", filled)) +
		r.faintStyle.Render(strings.Repeat("░", barWidth-filled))
}

func (r *LipglossRenderer) marker(left, right int) string {
	switch {
	case left > right:
		return "<"
	case right > left:
		return ">"
	default:
		return "="
	}
}

// wrap word-wraps s to the terminal width, capped for readability.
func (r *LipglossRenderer) wrap(style lipgloss.Style, s string) string {
	width := min(r.width, maxTextWidth)
	lines := strings.Split(style.Width(width).Render(s), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}
