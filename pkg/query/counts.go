package query

import (
	"github.com/doodlesbykumbi/producer-console/pkg/model"
)

// Counts are the per-tab totals of a tenant's producers.
type Counts struct {
	InProcessing int `json:"inProcessing"`
	Approved     int `json:"approved"`
}

// Tab is a listing preset over lifecycle states.
type Tab struct {
	Name     string         `json:"name"`
	Label    string         `json:"label"`
	Statuses []model.Status `json:"statuses"`
}

// Tabs are the status tabs of the producer listing.
var Tabs = []Tab{
	{Name: "in-processing", Label: "In Processing", Statuses: []model.Status{model.StatusCreated, model.StatusInReview}},
	{Name: "approved", Label: "Approved", Statuses: []model.Status{model.StatusApproved}},
}

// TabByName returns the named tab.
func TabByName(name string) (Tab, bool) {
	for _, tab := range Tabs {
		if tab.Name == name {
			return tab, true
		}
	}
	return Tab{}, false
}

// StatusCounts counts every producer of tenantID by tab. It ignores any
// listing filter.
func StatusCounts(items []model.Producer, tenantID string) Counts {
	var c Counts
	for _, p := range items {
		if p.TenantID != tenantID {
			continue
		}
		switch p.Status {
		case model.StatusCreated, model.StatusInReview:
			c.InProcessing++
		case model.StatusApproved:
			c.Approved++
		}
	}
	return c
}
