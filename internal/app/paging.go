package app

// Fixed page sizes per endpoint. Callers cannot override them.
const (
	JobSearchPageSize       = 50
	JobListPageSize         = 50
	ApplicationListPageSize = 20
)

// paginate slices one fixed-size page out of an already-materialized
// result set. page is 0-indexed; out-of-range pages yield an empty page.
// hasNext reports whether at least one item exists past the page.
func paginate[T any](items []T, page, size int) ([]T, bool) {
	if page < 0 {
		page = 0
	}
	start := page * size
	if start >= len(items) {
		return []T{}, false
	}
	end := start + size
	if end >= len(items) {
		return items[start:], false
	}
	return items[start:end], true
}
