package catalog

// TotalPages returns the number of pages needed for n items, never less
// than one.
func TotalPages(n, pageSize int) int {
	if pageSize < 1 {
		pageSize = 1
	}
	if n <= 0 {
		return 1
	}
	return (n + pageSize - 1) / pageSize
}

// Paginate returns page number page (1-indexed) of entries together with
// the total page count. A page outside 1..totalPages yields no items.
func Paginate(entries []Entry, pageSize, page int) ([]Entry, int) {
	if pageSize < 1 {
		pageSize = 1
	}
	total := TotalPages(len(entries), pageSize)
	if page < 1 || page > total {
		return []Entry{}, total
	}

	start := (page - 1) * pageSize
	end := min(start+pageSize, len(entries))

	items := make([]Entry, end-start)
	copy(items, entries[start:end])
	return items, total
}
