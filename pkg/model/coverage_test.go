package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoverage(t *testing.T) {
	tests := []struct {
		coverage Coverage
		valid    bool
		none     bool
	}{
		{coverage: "0/4", valid: true, none: true},
		{coverage: "0/7", valid: true, none: true},
		{coverage: "1/4", valid: true, none: false},
		{coverage: "4/4", valid: true, none: false},
		{coverage: " 2 / 3 ", valid: true, none: false},
		{coverage: "5/4", valid: false, none: false},
		{coverage: "0/0", valid: false, none: true},
		{coverage: "-1/4", valid: false, none: false},
		{coverage: "none", valid: false, none: false},
		{coverage: "", valid: false, none: false},
		{coverage: "a/4", valid: false, none: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.coverage), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.coverage.Valid())
			assert.Equal(t, tt.none, tt.coverage.IsNone())
		})
	}
}

func TestNewCoverage(t *testing.T) {
	assert.Equal(t, Coverage("3/4"), NewCoverage(3, 4))

	k, n, ok := NewCoverage(0, 4).Parse()
	assert.True(t, ok)
	assert.Equal(t, 0, k)
	assert.Equal(t, 4, n)
}
