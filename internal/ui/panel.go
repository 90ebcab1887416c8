package ui

import (
	"dex/internal/browse"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	activeSymbol   = "◆"
	completeSymbol = "◇"
	separator      = " · "
	borderTop      = "┌"
	borderSide     = "│"
	borderBottom   = "└"
	checkSymbol    = "✓"
)

func Theme() *huh.Theme {
	t := huh.ThemeBase()
	red := lipgloss.Color("1")
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.SetString("✗").Foreground(red)
	t.Blurred.ErrorMessage = t.Blurred.ErrorMessage.SetString("✗").Foreground(red)
	return t
}

type Field struct {
	Label    string
	Value    string
	Optional bool
}

func borderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
}

// StateFields describes the filter, sort and paging settings of v.
// Unset filters are left empty so RenderPanel collapses them.
func StateFields(v browse.View) []Field {
	return []Field{
		{Label: "Types", Value: strings.Join(v.SelectedCategories, ", "), Optional: true},
		{Label: "Search", Value: v.Query, Optional: true},
		{Label: "Sort", Value: fmt.Sprintf("%s %s", v.SortKey, v.SortDirection)},
		{Label: "Per page", Value: fmt.Sprint(v.PageSize)},
		{Label: "Page", Value: fmt.Sprintf("%d of %d", v.CurrentPage, v.TotalPages)},
	}
}

// RenderPanel draws a framed list of fields. Fields without a value are
// hidden unless active. Pass a negative activeIdx when nothing is focused.
func RenderPanel(title string, fields []Field, activeIdx int) string {
	var b strings.Builder

	border := borderStyle()

	b.WriteString(border.Render(borderTop))
	b.WriteString(" ")
	b.WriteString(title)
	b.WriteString("\n")

	b.WriteString(border.Render(borderSide))
	b.WriteString("\n")

	for i, f := range fields {
		active := i == activeIdx
		if f.Value != "" || active {
			b.WriteString(renderField(f, active))
			b.WriteString("\n")
		}
	}

	if activeIdx >= 0 && activeIdx < len(fields) {
		b.WriteString(border.Render(borderSide))
		b.WriteString("\n")
	}

	b.WriteString(border.Render(borderBottom))
	b.WriteString("\n")

	return b.String()
}

// RenderNotice draws a short confirmation box with a headline, a subtitle
// and a checked line per item.
func RenderNotice(headline, subtitle string, items []string) string {
	var b strings.Builder

	border := borderStyle()

	b.WriteString(border.Render(borderTop))
	b.WriteString(" ")
	b.WriteString(activeSymbol)
	b.WriteString(" ")
	b.WriteString(headline)
	b.WriteString("\n")

	if subtitle != "" {
		b.WriteString(border.Render(borderSide))
		b.WriteString(" ")
		b.WriteString(subtitle)
		b.WriteString("\n")
	}

	if len(items) > 0 {
		b.WriteString(border.Render(borderSide))
		b.WriteString("\n")
	}

	for _, item := range items {
		b.WriteString(border.Render(borderSide))
		b.WriteString(" ")
		b.WriteString(checkSymbol)
		b.WriteString(" ")
		b.WriteString(item)
		b.WriteString("\n")
	}

	b.WriteString(border.Render(borderBottom))
	b.WriteString("\n")

	return b.String()
}

func renderField(f Field, active bool) string {
	var b strings.Builder

	if active {
		b.WriteString(activeSymbol)
		b.WriteString(" ")
		b.WriteString(f.Label)
		if f.Optional {
			b.WriteString(" (optional)")
		}
		if f.Value != "" {
			b.WriteString(separator)
			b.WriteString(f.Value)
		}
	} else {
		b.WriteString(completeSymbol)
		b.WriteString(" ")
		b.WriteString(f.Label)
		b.WriteString(separator)
		b.WriteString(f.Value)
	}

	return b.String()
}
