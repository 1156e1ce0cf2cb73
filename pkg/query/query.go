package query

import (
	"errors"
	"fmt"

	"github.com/doodlesbykumbi/producer-console/pkg/model"
)

// ErrInvalidPage is returned for a page number below 1 or a page size below 1.
var ErrInvalidPage = errors.New("invalid page")

// Page selects a slice of the filtered listing. Number starts at 1.
type Page struct {
	Number int `json:"pageNumber"`
	Size   int `json:"pageSize"`
}

// Validate checks the page bounds.
func (p Page) Validate() error {
	if p.Size < 1 {
		return fmt.Errorf("%w: page size %d must be at least 1", ErrInvalidPage, p.Size)
	}
	if p.Number < 1 {
		return fmt.Errorf("%w: page number %d must be at least 1", ErrInvalidPage, p.Number)
	}
	return nil
}

// Result is one page of a filtered listing.
type Result struct {
	Items      []model.Producer `json:"items"`
	Total      int              `json:"total"`
	PageNumber int              `json:"pageNumber"`
	PageSize   int              `json:"pageSize"`
	TotalPages int              `json:"totalPages"`
}

// Run filters items owned by tenantID and returns the requested page. A page
// past the end yields no items and the full total.
func Run(items []model.Producer, tenantID string, filter Filter, page Page) (Result, error) {
	if err := page.Validate(); err != nil {
		return Result{}, err
	}

	matched := make([]model.Producer, 0, len(items))
	for _, p := range items {
		if p.TenantID == tenantID && filter.Match(p) {
			matched = append(matched, p)
		}
	}

	total := len(matched)
	result := Result{
		Items:      []model.Producer{},
		Total:      total,
		PageNumber: page.Number,
		PageSize:   page.Size,
		TotalPages: pageCount(total, page.Size),
	}

	// Compare against the page count first so the offset cannot overflow.
	if page.Number > result.TotalPages {
		return result, nil
	}
	start := (page.Number - 1) * page.Size
	end := start + page.Size
	if end > total {
		end = total
	}
	result.Items = matched[start:end]
	return result, nil
}

func pageCount(total, size int) int {
	n := total / size
	if total%size != 0 {
		n++
	}
	return n
}
