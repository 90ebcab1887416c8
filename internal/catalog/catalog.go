package catalog

import "errors"

var (
	ErrNotFound       = errors.New("entry not found")
	ErrInvalidEntry   = errors.New("invalid entry")
	ErrDuplicateEntry = errors.New("duplicate entry")
)

type FilterOptions struct {
	Categories []string
	Query      string
}

func (o FilterOptions) IsZero() bool {
	return len(o.Categories) == 0 && o.Query == ""
}

type SortKey string

const (
	SortByID   SortKey = "id"
	SortByName SortKey = "name"
)

func (k SortKey) Valid() bool {
	return k == SortByID || k == SortByName
}

type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

func (d Direction) Valid() bool {
	return d == Ascending || d == Descending
}

type SortOptions struct {
	Key       SortKey
	Direction Direction
}

func DefaultSort() SortOptions {
	return SortOptions{Key: SortByID, Direction: Ascending}
}
