package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Coverage is a "k/n" string: k of n required checks are covered.
type Coverage string

// NewCoverage formats k and n as a Coverage.
func NewCoverage(k, n int) Coverage {
	return Coverage(fmt.Sprintf("%d/%d", k, n))
}

// Parse splits the coverage into its numerator and denominator.
func (c Coverage) Parse() (covered, total int, ok bool) {
	num, den, found := strings.Cut(strings.TrimSpace(string(c)), "/")
	if !found {
		return 0, 0, false
	}
	covered, err := strconv.Atoi(strings.TrimSpace(num))
	if err != nil {
		return 0, 0, false
	}
	total, err = strconv.Atoi(strings.TrimSpace(den))
	if err != nil {
		return 0, 0, false
	}
	return covered, total, true
}

// Valid reports whether the coverage is well formed with 0 <= k <= n and n > 0.
func (c Coverage) Valid() bool {
	k, n, ok := c.Parse()
	return ok && n > 0 && k >= 0 && k <= n
}

// IsNone reports whether the coverage is the zero sentinel "0/n". Malformed
// values are not the sentinel.
func (c Coverage) IsNone() bool {
	k, _, ok := c.Parse()
	return ok && k == 0
}
