package pagination

// State tracks the current page and page size over a collection whose
// item count may change.
type State struct {
	Page       int
	PageSize   int
	TotalCount int
}

func NewState(pageSize, totalCount int) *State {
	if pageSize < 1 {
		pageSize = 1
	}
	if totalCount < 0 {
		totalCount = 0
	}
	return &State{Page: 1, PageSize: pageSize, TotalCount: totalCount}
}

func (s *State) TotalPages() int {
	return TotalPages(s.TotalCount, s.PageSize)
}

// SetPage moves to page n. Values outside [1, TotalPages] are rejected.
func (s *State) SetPage(n int) bool {
	if n < 1 || n > s.TotalPages() {
		return false
	}
	s.Page = n
	return true
}

// Next advances one page; no-op on the last page.
func (s *State) Next() bool {
	return s.SetPage(s.Page + 1)
}

// Prev steps back one page; no-op on page 1.
func (s *State) Prev() bool {
	return s.SetPage(s.Page - 1)
}

// SetPageSize changes the page size and resets to page 1.
func (s *State) SetPageSize(size int) {
	if size < 1 {
		return
	}
	s.PageSize = size
	s.Page = 1
}

// SetTotalCount updates the item count, clamping the current page back
// into range when the collection shrinks.
func (s *State) SetTotalCount(count int) {
	if count < 0 {
		count = 0
	}
	s.TotalCount = count
	if s.Page > s.TotalPages() {
		s.Page = s.TotalPages()
	}
}

// Labels returns the page-number labels for the current state.
func (s *State) Labels() []int {
	return PageNumbers(s.Page, s.TotalPages())
}
