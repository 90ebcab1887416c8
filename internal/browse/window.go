package browse

// PageWindow returns up to width consecutive page numbers around current,
// shifted so the window stays within 1..total.
func PageWindow(current, total, width int) []int {
	if total < 1 || width < 1 {
		return nil
	}
	current = max(1, min(current, total))

	start := max(1, current-width/2)
	end := min(total, start+width-1)
	if end-start+1 < width {
		start = max(1, end-width+1)
	}

	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	return pages
}
