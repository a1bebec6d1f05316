// Package pagination computes page-number labels and slice boundaries
// for paged collections.
package pagination

// Ellipsis marks a gap in the page-number labels.
const Ellipsis = -1

// maxPlainPages is the largest page count rendered without ellipsis.
const maxPlainPages = 5

// PageNumbers returns the labels to render for the given current page
// and total page count: either the full range [1..totalPages], or page
// 1, a three-wide middle window around currentPage, and the last page,
// with Ellipsis markers for the gaps on either side.
func PageNumbers(currentPage, totalPages int) []int {
	if totalPages < 1 {
		totalPages = 1
	}
	if currentPage < 1 {
		currentPage = 1
	}
	if currentPage > totalPages {
		currentPage = totalPages
	}

	if totalPages <= maxPlainPages {
		pages := make([]int, 0, totalPages)
		for i := 1; i <= totalPages; i++ {
			pages = append(pages, i)
		}
		return pages
	}

	pages := []int{1}

	start := max(2, currentPage-1)
	end := min(totalPages-1, currentPage+1)

	// Widen the window at the boundaries so three middle entries show
	// whenever possible.
	if start == 2 {
		end = min(totalPages-1, start+2)
	}
	if end == totalPages-1 {
		start = max(2, end-2)
	}

	if start > 2 {
		pages = append(pages, Ellipsis)
	}
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}
	if end < totalPages-1 {
		pages = append(pages, Ellipsis)
	}

	return append(pages, totalPages)
}

// TotalPages is ceil(totalCount / pageSize), never less than 1.
func TotalPages(totalCount, pageSize int) int {
	if pageSize < 1 {
		return 1
	}
	pages := (totalCount + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// SliceBounds returns the half-open range [start, end) of the items on
// the given page, clamped to totalCount.
func SliceBounds(page, pageSize, totalCount int) (start, end int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		return 0, 0
	}
	start = (page - 1) * pageSize
	if start > totalCount {
		start = totalCount
	}
	end = page * pageSize
	if end > totalCount {
		end = totalCount
	}
	return start, end
}
