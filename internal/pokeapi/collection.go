package pokeapi

import (
	"bytes"
	"context"
	"dex/internal/catalog"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const collectionQuery = `query getPokemons {
  pokemon_v2_pokemon(limit: %d) {
    id
    name
    pokemon_v2_pokemontypes {
      pokemon_v2_type {
        name
      }
    }
  }
}`

type graphQLRequest struct {
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables"`
	OperationName string         `json:"operationName"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type collectionResponse struct {
	Data struct {
		Pokemon []struct {
			ID    int    `json:"id"`
			Name  string `json:"name"`
			Types []struct {
				Type struct {
					Name string `json:"name"`
				} `json:"pokemon_v2_type"`
			} `json:"pokemon_v2_pokemontypes"`
		} `json:"pokemon_v2_pokemon"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

// FetchCollection loads the first limit Pokémon with their type names.
func (c *Client) FetchCollection(ctx context.Context) ([]catalog.Entry, error) {
	key := "collection-" + strconv.Itoa(c.limit)

	var entries []catalog.Entry
	if c.cached(key, &entries) {
		return entries, nil
	}

	body, err := json.Marshal(graphQLRequest{
		Query:         fmt.Sprintf(collectionQuery, c.limit),
		OperationName: "getPokemons",
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.graphqlURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "*/*")

	var resp collectionResponse
	if err := c.do(req, &resp); err != nil {
		return nil, fmt.Errorf("fetching collection: %w", err)
	}
	if len(resp.Errors) > 0 {
		msgs := make([]string, len(resp.Errors))
		for i, e := range resp.Errors {
			msgs[i] = e.Message
		}
		return nil, fmt.Errorf("fetching collection: %w", errors.New(strings.Join(msgs, "; ")))
	}

	entries = make([]catalog.Entry, 0, len(resp.Data.Pokemon))
	for _, p := range resp.Data.Pokemon {
		types := make([]string, 0, len(p.Types))
		for _, t := range p.Types {
			types = append(types, t.Type.Name)
		}
		entries = append(entries, catalog.NewEntry(p.ID, p.Name, types...))
	}

	c.log.Debug("collection fetched", zap.Int("entries", len(entries)))
	c.store(key, entries)
	return entries, nil
}
