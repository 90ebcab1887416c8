package pokeapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const noDescription = "No description available"

type Ability struct {
	Name   string `json:"name"`
	Hidden bool   `json:"hidden"`
}

type Stat struct {
	Name string `json:"name"`
	Base int    `json:"base"`
}

// Detail is the full record shown by the detail and compare views.
// Height is in decimetres and weight in hectograms, as PokeAPI reports them.
type Detail struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Height         int       `json:"height"`
	Weight         int       `json:"weight"`
	BaseExperience int       `json:"base_experience"`
	Types          []string  `json:"types"`
	Abilities      []Ability `json:"abilities"`
	Stats          []Stat    `json:"stats"`
	Sprite         string    `json:"sprite,omitempty"`
	Description    string    `json:"description"`
}

func (d Detail) TotalStats() int {
	total := 0
	for _, s := range d.Stats {
		total += s.Base
	}
	return total
}

func (d Detail) Stat(name string) (int, bool) {
	for _, s := range d.Stats {
		if s.Name == name {
			return s.Base, true
		}
	}
	return 0, false
}

type pokemonResponse struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Height         int    `json:"height"`
	Weight         int    `json:"weight"`
	BaseExperience int    `json:"base_experience"`
	Types          []struct {
		Slot int `json:"slot"`
		Type struct {
			Name string `json:"name"`
		} `json:"type"`
	} `json:"types"`
	Abilities []struct {
		Ability struct {
			Name string `json:"name"`
		} `json:"ability"`
		IsHidden bool `json:"is_hidden"`
	} `json:"abilities"`
	Stats []struct {
		BaseStat int `json:"base_stat"`
		Stat     struct {
			Name string `json:"name"`
		} `json:"stat"`
	} `json:"stats"`
	Sprites struct {
		FrontDefault string `json:"front_default"`
		Other        struct {
			OfficialArtwork struct {
				FrontDefault string `json:"front_default"`
			} `json:"official-artwork"`
		} `json:"other"`
	} `json:"sprites"`
	Species struct {
		URL string `json:"url"`
	} `json:"species"`
}

type speciesResponse struct {
	FlavorTextEntries []struct {
		FlavorText string `json:"flavor_text"`
		Language   struct {
			Name string `json:"name"`
		} `json:"language"`
	} `json:"flavor_text_entries"`
}

// FetchDetail loads one Pokémon by name or numeric id, including the English
// species description.
func (c *Client) FetchDetail(ctx context.Context, nameOrID string) (Detail, error) {
	ident := strings.ToLower(strings.TrimSpace(nameOrID))
	if ident == "" {
		return Detail{}, ErrEmptyName
	}

	key := "detail-" + ident
	var d Detail
	if c.cached(key, &d) {
		return d, nil
	}

	var p pokemonResponse
	if err := c.getJSON(ctx, c.restURL+"/pokemon/"+url.PathEscape(ident), &p); err != nil {
		return Detail{}, fmt.Errorf("fetching %q: %w", ident, err)
	}

	d = detailFromResponse(p)
	d.Description = noDescription
	if p.Species.URL != "" {
		var s speciesResponse
		if err := c.getJSON(ctx, p.Species.URL, &s); err != nil {
			return Detail{}, fmt.Errorf("fetching species for %q: %w", ident, err)
		}
		d.Description = englishFlavorText(s)
	}

	c.store(key, d)
	if key != "detail-"+strconv.Itoa(d.ID) {
		c.store("detail-"+strconv.Itoa(d.ID), d)
	}
	return d, nil
}

// FetchName resolves an id to a name through the detail endpoint.
func (c *Client) FetchName(ctx context.Context, id int) (string, error) {
	d, err := c.FetchDetail(ctx, strconv.Itoa(id))
	if err != nil {
		return "", err
	}
	return d.Name, nil
}

func detailFromResponse(p pokemonResponse) Detail {
	d := Detail{
		ID:             p.ID,
		Name:           p.Name,
		Height:         p.Height,
		Weight:         p.Weight,
		BaseExperience: p.BaseExperience,
		Types:          make([]string, 0, len(p.Types)),
		Abilities:      make([]Ability, 0, len(p.Abilities)),
		Stats:          make([]Stat, 0, len(p.Stats)),
		Sprite:         p.Sprites.Other.OfficialArtwork.FrontDefault,
	}
	if d.Sprite == "" {
		d.Sprite = p.Sprites.FrontDefault
	}
	for _, t := range p.Types {
		d.Types = append(d.Types, t.Type.Name)
	}
	for _, a := range p.Abilities {
		d.Abilities = append(d.Abilities, Ability{Name: a.Ability.Name, Hidden: a.IsHidden})
	}
	for _, s := range p.Stats {
		d.Stats = append(d.Stats, Stat{Name: s.Stat.Name, Base: s.BaseStat})
	}
	return d
}

func englishFlavorText(s speciesResponse) string {
	for _, e := range s.FlavorTextEntries {
		if e.Language.Name == "en" {
			return strings.ReplaceAll(e.FlavorText, "\f", " ")
		}
	}
	return noDescription
}
