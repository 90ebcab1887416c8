package main

import (
	"context"
	"dex/internal/browse"
	"dex/internal/catalog"
	"dex/internal/ui"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
)

var errQuit = errors.New("quit")

// Prompter asks the user what to do next given the current view.
// It returns errQuit or huh.ErrUserAborted to end the session.
type Prompter interface {
	NextAction(v browse.View) (browse.Action, error)
}

type BrowseCmd struct{}

func (cmd *BrowseCmd) Run(ctx context.Context, g *Globals) error {
	if err := g.load(ctx); err != nil {
		return err
	}

	show := func(v browse.View) {
		fmt.Fprint(g.Out, ui.RenderPanel("Pokédex", ui.StateFields(v), -1))
		fmt.Fprint(g.Out, g.Render.RenderList(g.listView(v)))
	}
	g.Coord.Subscribe(show)
	show(g.Coord.View())

	for ctx.Err() == nil {
		a, err := g.Prompt.NextAction(g.Coord.View())
		if errors.Is(err, errQuit) || errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		if err != nil {
			return err
		}
		if !g.Coord.Dispatch(a) {
			fmt.Fprintf(g.Out, "Nothing to do for %s.\n", a)
		}
	}
	return nil
}

type menuChoice string

const (
	choiceType      menuChoice = "Toggle a type filter"
	choiceSearch    menuChoice = "Search by name"
	choiceSort      menuChoice = "Sort by"
	choiceDirection menuChoice = "Sort direction"
	choiceNext      menuChoice = "Next page"
	choicePrev      menuChoice = "Previous page"
	choiceGoto      menuChoice = "Go to page"
	choicePageSize  menuChoice = "Page size"
	choiceClear     menuChoice = "Clear filters"
	choiceQuit      menuChoice = "Quit"
)

// menuChoices lists what makes sense from v; paging entries are offered
// only where there is a page to go to.
func menuChoices(v browse.View) []menuChoice {
	choices := []menuChoice{choiceType, choiceSearch, choiceSort, choiceDirection}
	if v.CurrentPage < v.TotalPages {
		choices = append(choices, choiceNext)
	}
	if v.CurrentPage > 1 {
		choices = append(choices, choicePrev)
	}
	if v.TotalPages > 1 {
		choices = append(choices, choiceGoto)
	}
	choices = append(choices, choicePageSize)
	if v.Filtered() {
		choices = append(choices, choiceClear)
	}
	return append(choices, choiceQuit)
}

// actionFor maps a menu choice and its follow-up answer to an action.
func actionFor(choice menuChoice, v browse.View, input string) (browse.Action, error) {
	switch choice {
	case choiceType:
		return browse.ToggleCategoryAction{Label: input}, nil
	case choiceSearch:
		return browse.SetQueryAction{Query: input}, nil
	case choiceSort:
		return browse.SetSortKeyAction{Key: catalog.SortKey(input)}, nil
	case choiceDirection:
		return browse.SetSortDirectionAction{Direction: catalog.Direction(input)}, nil
	case choiceNext:
		return browse.SetPageAction{Page: v.CurrentPage + 1}, nil
	case choicePrev:
		return browse.SetPageAction{Page: v.CurrentPage - 1}, nil
	case choiceGoto:
		n, err := strconv.Atoi(strings.TrimSpace(input))
		if err != nil {
			return nil, fmt.Errorf("invalid page %q", input)
		}
		return browse.SetPageAction{Page: n}, nil
	case choicePageSize:
		n, err := strconv.Atoi(strings.TrimSpace(input))
		if err != nil {
			return nil, fmt.Errorf("invalid page size %q", input)
		}
		return browse.SetPageSizeAction{Size: n}, nil
	case choiceClear:
		return browse.ClearFiltersAction{}, nil
	case choiceQuit:
		return nil, errQuit
	default:
		return nil, fmt.Errorf("unknown choice %q", choice)
	}
}

type huhPrompter struct {
	theme *huh.Theme
}

func newHuhPrompter() *huhPrompter {
	return &huhPrompter{theme: ui.Theme()}
}

func (p *huhPrompter) NextAction(v browse.View) (browse.Action, error) {
	var choice menuChoice
	if err := p.run(huh.NewSelect[menuChoice]().
		Title("What next?").
		Options(huh.NewOptions(menuChoices(v)...)...).
		Value(&choice)); err != nil {
		return nil, err
	}

	input, err := p.ask(choice, v)
	if err != nil {
		return nil, err
	}
	return actionFor(choice, v, input)
}

func (p *huhPrompter) ask(choice menuChoice, v browse.View) (string, error) {
	var input string
	var field huh.Field

	switch choice {
	case choiceType:
		opts := make([]huh.Option[string], 0, len(v.Universe))
		for _, label := range v.Universe {
			key := "  " + label
			if v.IsSelected(label) {
				key = "✓ " + label
			}
			opts = append(opts, huh.NewOption(key, label))
		}
		field = huh.NewSelect[string]().Title("Type").Options(opts...).Value(&input)

	case choiceSearch:
		input = v.Query
		field = huh.NewInput().Title("Name contains").Value(&input)

	case choiceSort:
		input = string(v.SortKey)
		field = huh.NewSelect[string]().
			Title("Sort by").
			Options(huh.NewOptions(string(catalog.SortByID), string(catalog.SortByName))...).
			Value(&input)

	case choiceDirection:
		input = string(v.SortDirection)
		field = huh.NewSelect[string]().
			Title("Direction").
			Options(huh.NewOptions(string(catalog.Ascending), string(catalog.Descending))...).
			Value(&input)

	case choiceGoto:
		field = huh.NewInput().
			Title(fmt.Sprintf("Page (1-%d)", v.TotalPages)).
			Value(&input).
			Validate(func(s string) error {
				n, err := strconv.Atoi(strings.TrimSpace(s))
				if err != nil || n < 1 || n > v.TotalPages {
					return fmt.Errorf("enter a number from 1 to %d", v.TotalPages)
				}
				return nil
			})

	case choicePageSize:
		input = strconv.Itoa(v.PageSize)
		var sizes []string
		for _, n := range browse.PageSizes() {
			sizes = append(sizes, strconv.Itoa(n))
		}
		field = huh.NewSelect[string]().
			Title("Per page").
			Options(huh.NewOptions(sizes...)...).
			Value(&input)

	default:
		return "", nil
	}

	if err := p.run(field); err != nil {
		return "", err
	}
	return input, nil
}

func (p *huhPrompter) run(field huh.Field) error {
	return huh.NewForm(huh.NewGroup(field)).WithTheme(p.theme).Run()
}
