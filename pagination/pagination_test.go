package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageNumbers(t *testing.T) {
	tests := []struct {
		name        string
		currentPage int
		totalPages  int
		want        []int
	}{
		{"single page", 1, 1, []int{1}},
		{"three pages from first", 1, 3, []int{1, 2, 3}},
		{"three pages from middle", 2, 3, []int{1, 2, 3}},
		{"three pages from last", 3, 3, []int{1, 2, 3}},
		{"five pages no ellipsis", 3, 5, []int{1, 2, 3, 4, 5}},
		{"middle of ten", 5, 10, []int{1, Ellipsis, 4, 5, 6, Ellipsis, 10}},
		{"first of ten widens right", 1, 10, []int{1, 2, 3, 4, Ellipsis, 10}},
		{"second of ten widens right", 2, 10, []int{1, 2, 3, 4, Ellipsis, 10}},
		{"third of ten", 3, 10, []int{1, 2, 3, 4, Ellipsis, 10}},
		{"fourth of ten", 4, 10, []int{1, Ellipsis, 3, 4, 5, Ellipsis, 10}},
		{"seventh of ten", 7, 10, []int{1, Ellipsis, 6, 7, 8, Ellipsis, 10}},
		{"eighth of ten widens left", 8, 10, []int{1, Ellipsis, 7, 8, 9, 10}},
		{"last of ten widens left", 10, 10, []int{1, Ellipsis, 7, 8, 9, 10}},
		{"six pages from first", 1, 6, []int{1, 2, 3, 4, Ellipsis, 6}},
		{"current clamped above total", 99, 3, []int{1, 2, 3}},
		{"current clamped below one", -2, 10, []int{1, 2, 3, 4, Ellipsis, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PageNumbers(tt.currentPage, tt.totalPages))
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 8))
	assert.Equal(t, 1, TotalPages(8, 8))
	assert.Equal(t, 2, TotalPages(9, 8))
	assert.Equal(t, 3, TotalPages(17, 8))
	assert.Equal(t, 1, TotalPages(5, 0))
}

func TestSliceBounds(t *testing.T) {
	tests := []struct {
		page, size, count  int
		wantStart, wantEnd int
	}{
		{1, 8, 20, 0, 8},
		{2, 8, 20, 8, 16},
		{3, 8, 20, 16, 20},
		{4, 8, 20, 20, 20},
		{1, 8, 0, 0, 0},
		{0, 8, 20, 0, 8},
	}

	for _, tt := range tests {
		start, end := SliceBounds(tt.page, tt.size, tt.count)
		assert.Equal(t, tt.wantStart, start, "page=%d size=%d count=%d", tt.page, tt.size, tt.count)
		assert.Equal(t, tt.wantEnd, end, "page=%d size=%d count=%d", tt.page, tt.size, tt.count)
	}
}

func TestStateNavigationGuards(t *testing.T) {
	s := NewState(8, 20) // 3 pages

	assert.False(t, s.Prev(), "prev on page 1 is a no-op")
	assert.Equal(t, 1, s.Page)

	assert.True(t, s.Next())
	assert.True(t, s.Next())
	assert.Equal(t, 3, s.Page)

	assert.False(t, s.Next(), "next on the last page is a no-op")
	assert.Equal(t, 3, s.Page)

	assert.False(t, s.SetPage(0))
	assert.False(t, s.SetPage(4))
	assert.True(t, s.SetPage(2))
	assert.Equal(t, 2, s.Page)
}

func TestSetPageSizeResetsToFirstPage(t *testing.T) {
	s := NewState(8, 100)
	s.SetPage(5)

	s.SetPageSize(16)

	assert.Equal(t, 1, s.Page)
	assert.Equal(t, 16, s.PageSize)
	assert.Equal(t, TotalPages(100, 16), s.TotalPages())
}

func TestSetTotalCountClampsPage(t *testing.T) {
	s := NewState(8, 100)
	s.SetPage(13)

	s.SetTotalCount(10)

	assert.Equal(t, 2, s.TotalPages())
	assert.Equal(t, 2, s.Page)
}

func TestStateLabels(t *testing.T) {
	s := NewState(8, 80) // 10 pages
	s.SetPage(5)

	assert.Equal(t, []int{1, Ellipsis, 4, 5, 6, Ellipsis, 10}, s.Labels())
}
