package query

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/doodlesbykumbi/producer-console/pkg/model"
)

// Filter narrows a listing. Zero-valued fields do not constrain it.
type Filter struct {
	Search   string               `json:"search,omitempty"`
	Statuses []model.Status       `json:"statuses,omitempty"`
	Coverage *bool                `json:"coverage,omitempty"`
	Types    []model.ProducerType `json:"types,omitempty"`
}

// Match reports whether p passes every constraint of f. Search text is
// trimmed; blank text matches every name.
func (f Filter) Match(p model.Producer) bool {
	if search := strings.TrimSpace(f.Search); search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(search)) {
		return false
	}
	if len(f.Statuses) > 0 && !containsStatus(f.Statuses, p.Status) {
		return false
	}
	if f.Coverage != nil && *f.Coverage == p.EUDR.IsNone() {
		return false
	}
	if len(f.Types) > 0 && !containsType(f.Types, p.Type) {
		return false
	}
	return true
}

// Equal reports whether f and other select the same producers. Set fields are
// compared ignoring order and duplicates.
func (f Filter) Equal(other Filter) bool {
	if strings.TrimSpace(f.Search) != strings.TrimSpace(other.Search) {
		return false
	}
	if (f.Coverage == nil) != (other.Coverage == nil) {
		return false
	}
	if f.Coverage != nil && *f.Coverage != *other.Coverage {
		return false
	}
	return sameSet(f.Statuses, other.Statuses) && sameSet(f.Types, other.Types)
}

// ParseFilter reads a filter from query parameters: search, status (repeated
// or comma separated), coverage (true/false) and type. Unrecognized status,
// type and coverage values are dropped.
func ParseFilter(values url.Values) Filter {
	f := Filter{Search: strings.TrimSpace(values.Get("search"))}

	for _, token := range splitValues(values["status"]) {
		if s, ok := model.ParseStatus(token); ok {
			f.Statuses = append(f.Statuses, s)
		}
	}
	for _, token := range splitValues(values["type"]) {
		if t, ok := model.ParseProducerType(token); ok {
			f.Types = append(f.Types, t)
		}
	}
	if raw := values.Get("coverage"); raw != "" {
		if b, err := strconv.ParseBool(raw); err == nil {
			f.Coverage = &b
		}
	}
	return f
}

// Values encodes f as query parameters understood by ParseFilter.
func (f Filter) Values() url.Values {
	values := url.Values{}
	if f.Search != "" {
		values.Set("search", f.Search)
	}
	for _, s := range f.Statuses {
		values.Add("status", s.String())
	}
	for _, t := range f.Types {
		values.Add("type", t.String())
	}
	if f.Coverage != nil {
		values.Set("coverage", strconv.FormatBool(*f.Coverage))
	}
	return values
}

func splitValues(raw []string) []string {
	var tokens []string
	for _, v := range raw {
		for _, token := range strings.Split(v, ",") {
			if token = strings.TrimSpace(token); token != "" {
				tokens = append(tokens, token)
			}
		}
	}
	return tokens
}

func containsStatus(set []model.Status, s model.Status) bool {
	for _, member := range set {
		if member == s {
			return true
		}
	}
	return false
}

func containsType(set []model.ProducerType, t model.ProducerType) bool {
	for _, member := range set {
		if member == t {
			return true
		}
	}
	return false
}

func sameSet[T comparable](a, b []T) bool {
	as := make(map[T]struct{}, len(a))
	for _, v := range a {
		as[v] = struct{}{}
	}
	bs := make(map[T]struct{}, len(b))
	for _, v := range b {
		bs[v] = struct{}{}
	}
	if len(as) != len(bs) {
		return false
	}
	for v := range as {
		if _, ok := bs[v]; !ok {
			return false
		}
	}
	return true
}
