package main

import (
	"context"
	"dex/internal/browse"
	"dex/internal/catalog"
	"encoding/json"
	"fmt"
	"strings"
)

type ListCmd struct {
	Types   []string `short:"t" name:"type" help:"Filter by type (repeatable, matches any)"`
	Query   string   `short:"q" help:"Filter by name substring"`
	Sort    string   `enum:"id,name" default:"id" help:"Sort key (id, name)"`
	Desc    bool     `short:"d" help:"Sort descending"`
	Page    int      `short:"p" default:"1" help:"Page to show"`
	PerPage int      `name:"per-page" help:"Entries per page (10, 20, 50)"`
	Names   bool     `short:"n" help:"Output every matching name, one per line, ignoring paging"`
	JSON    bool     `help:"Output the page as JSON"`
}

type listJSON struct {
	Page       int             `json:"page"`
	TotalPages int             `json:"total_pages"`
	PageSize   int             `json:"page_size"`
	Matches    int             `json:"matches"`
	Total      int             `json:"total"`
	Items      []catalog.Entry `json:"items"`
}

func (cmd *ListCmd) Run(ctx context.Context, g *Globals) error {
	if err := g.load(ctx); err != nil {
		return err
	}
	if err := cmd.apply(g); err != nil {
		return err
	}

	if cmd.Names {
		s := g.Coord.State()
		for _, e := range catalog.Sort(catalog.Filter(s.Collection.Entries(), s.Filter), s.Sort) {
			fmt.Fprintln(g.Out, e.Name)
		}
		return nil
	}

	v := g.Coord.View()
	if cmd.JSON {
		enc := json.NewEncoder(g.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(listJSON{
			Page:       v.CurrentPage,
			TotalPages: v.TotalPages,
			PageSize:   v.PageSize,
			Matches:    v.MatchCount,
			Total:      v.Total,
			Items:      v.Visible,
		})
	}

	fmt.Fprint(g.Out, g.Render.RenderList(g.listView(v)))
	return nil
}

// apply turns the flags into coordinator actions. Page size is applied
// before the page because changing it resets to page 1.
func (cmd *ListCmd) apply(g *Globals) error {
	for _, t := range cmd.Types {
		label := strings.ToLower(strings.TrimSpace(t))
		if g.Coord.View().IsSelected(label) {
			continue
		}
		if !g.Coord.Dispatch(browse.ToggleCategoryAction{Label: label}) {
			return fmt.Errorf("unknown type %q (see '%s types')", t, appName)
		}
	}

	if cmd.Query != "" {
		g.Coord.Dispatch(browse.SetQueryAction{Query: cmd.Query})
	}

	if !g.Coord.Dispatch(browse.SetSortKeyAction{Key: catalog.SortKey(cmd.Sort)}) {
		return fmt.Errorf("invalid sort key %q", cmd.Sort)
	}
	if cmd.Desc {
		g.Coord.Dispatch(browse.SetSortDirectionAction{Direction: catalog.Descending})
	}

	size := cmd.PerPage
	if size == 0 {
		size = g.PageSize
	}
	if size != 0 && size != g.Coord.View().PageSize {
		if !g.Coord.Dispatch(browse.SetPageSizeAction{Size: size}) {
			return fmt.Errorf("page size must be one of %v, got %d", browse.PageSizes(), size)
		}
	}

	if cmd.Page != 1 {
		if !g.Coord.Dispatch(browse.SetPageAction{Page: cmd.Page}) {
			return fmt.Errorf("page %d out of range (1-%d)", cmd.Page, g.Coord.View().TotalPages)
		}
	}
	return nil
}
