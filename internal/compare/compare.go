// Package compare puts two Pokémon side by side by base stats.
package compare

import (
	"dex/internal/pokeapi"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
)

// EvenThreshold is the total-stat gap below which two Pokémon are even.
const EvenThreshold = 30

// MaxBaseStat is the scale used for stat bars.
const MaxBaseStat = 255

var ErrTooFewEntries = errors.New("need at least two entries to pick a pair")

type Side struct {
	Name  string
	Total int
}

type Row struct {
	Stat  string
	Left  int
	Right int
}

type Result struct {
	Left       Side
	Right      Side
	Difference int
	// Winner is empty when the two are evenly matched.
	Winner  string
	Message string
	Rows    []Row
}

func (r Result) Even() bool {
	return r.Winner == ""
}

func Compare(left, right pokeapi.Detail) Result {
	res := Result{
		Left:  Side{Name: left.Name, Total: left.TotalStats()},
		Right: Side{Name: right.Name, Total: right.TotalStats()},
		Rows:  rows(left, right),
	}

	diff := res.Left.Total - res.Right.Total
	if diff < 0 {
		diff = -diff
	}
	res.Difference = diff

	switch {
	case diff < EvenThreshold:
		res.Message = fmt.Sprintf("%s and %s are fairly evenly matched!", left.Name, right.Name)
	case res.Left.Total > res.Right.Total:
		res.Winner = left.Name
	default:
		res.Winner = right.Name
	}
	if res.Winner != "" {
		res.Message = fmt.Sprintf("%s has stronger overall stats by %d points!", res.Winner, diff)
	}
	return res
}

// rows lines up stats by name, in the left Pokémon's order with any stats
// only the right one has appended.
func rows(left, right pokeapi.Detail) []Row {
	var names []string
	for _, s := range left.Stats {
		if !slices.Contains(names, s.Name) {
			names = append(names, s.Name)
		}
	}
	for _, s := range right.Stats {
		if !slices.Contains(names, s.Name) {
			names = append(names, s.Name)
		}
	}

	out := make([]Row, 0, len(names))
	for _, name := range names {
		l, _ := left.Stat(name)
		r, _ := right.Stat(name)
		out = append(out, Row{Stat: name, Left: l, Right: r})
	}
	return out
}

// BarPercent scales a base stat onto 0..100.
func BarPercent(base int) int {
	if base <= 0 {
		return 0
	}
	return min(100, base*100/MaxBaseStat)
}

// RandomPair picks two distinct indices in [0, n).
func RandomPair(rng *rand.Rand, n int) (int, int, error) {
	if n < 2 {
		return 0, 0, fmt.Errorf("%w: have %d", ErrTooFewEntries, n)
	}

	i := rng.IntN(n)
	j := rng.IntN(n - 1)
	if j >= i {
		j++
	}
	return i, j, nil
}
