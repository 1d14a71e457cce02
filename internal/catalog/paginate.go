package catalog

// DefaultPageSize is the page size used when a view configures none. It is the
// browse view's size.
const DefaultPageSize = 6

// Pagination describes one page of a listing.
type Pagination struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	TotalItems  int   `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
	HasPrev     bool  `json:"has_prev"`
	HasNext     bool  `json:"has_next"`
	Pages       []int `json:"pages"`
}

// TotalPages is ceil(n/size), never less than 1.
func TotalPages(n, size int) int {
	if size <= 0 || n <= 0 {
		return 1
	}
	return (n + size - 1) / size
}

// Paginate returns the items of the requested 1-indexed page. A page outside
// [1, totalPages] falls back to page 1, and a size <= 0 to DefaultPageSize.
func Paginate[T any](items []T, page, size int) ([]T, Pagination) {
	if size <= 0 {
		size = DefaultPageSize
	}

	total := TotalPages(len(items), size)
	if page < 1 || page > total {
		page = 1
	}

	start := min((page-1)*size, len(items))
	end := min(start+size, len(items))

	pages := make([]int, total)
	for i := range pages {
		pages[i] = i + 1
	}

	return items[start:end], Pagination{
		CurrentPage: page,
		PerPage:     size,
		TotalItems:  len(items),
		TotalPages:  total,
		HasPrev:     page > 1,
		HasNext:     page < total,
		Pages:       pages,
	}
}
