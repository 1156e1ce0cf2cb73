package query

import (
	"sync"

	"github.com/doodlesbykumbi/producer-console/pkg/model"
)

// Source supplies the current items of a tenant.
type Source interface {
	List(tenantID string) []model.Producer
}

// View is the listing state of one screen: a filter and a page.
type View struct {
	source  Source
	maxSize int

	mu     sync.Mutex
	filter Filter
	page   Page
}

// NewView creates a view on the first page. Page sizes are clamped to
// [1, maxSize]; a maxSize below 1 disables the upper bound.
func NewView(source Source, pageSize, maxSize int) *View {
	v := &View{source: source, maxSize: maxSize}
	v.page = Page{Number: 1, Size: v.clamp(pageSize)}
	return v
}

// Filter returns the active filter.
func (v *View) Filter() Filter {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.filter
}

// Page returns the active page.
func (v *View) Page() Page {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.page
}

// SetFilter replaces the filter. A different filter resets the page to 1.
func (v *View) SetFilter(f Filter) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.filter.Equal(f) {
		v.page.Number = 1
	}
	v.filter = f
}

// SetPageSize changes the page size and returns to the first page.
func (v *View) SetPageSize(size int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.page = Page{Number: 1, Size: v.clamp(size)}
}

// SetPageNumber moves to page n. Numbers below 1 select the first page.
func (v *View) SetPageNumber(n int) {
	if n < 1 {
		n = 1
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.page.Number = n
}

// Query runs the view against the source for tenantID.
func (v *View) Query(tenantID string) (Result, error) {
	v.mu.Lock()
	filter, page := v.filter, v.page
	v.mu.Unlock()
	return Run(v.source.List(tenantID), tenantID, filter, page)
}

func (v *View) clamp(size int) int {
	if size < 1 {
		size = 1
	}
	if v.maxSize > 0 && size > v.maxSize {
		size = v.maxSize
	}
	return size
}
