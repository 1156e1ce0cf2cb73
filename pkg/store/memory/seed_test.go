package memory

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/producer-console/pkg/model"
)

func TestStore_LoadSeed(t *testing.T) {
	s := New()

	n, err := s.LoadSeed(filepath.Join("testdata", "producers.yml"))
	require.NoError(t, err)
	assert.Equal(t, 13, n)

	tenant1 := s.List("tenant-1")
	require.Len(t, tenant1, 11)
	assert.Equal(t, "p01", tenant1[0].ID)
	assert.Equal(t, "p11", tenant1[10].ID)
	assert.Len(t, s.List("tenant-2"), 2)

	ana, ok := s.Get("tenant-1", "p03")
	require.True(t, ok)
	assert.Equal(t, "Ana Paula Santos", ana.Name)
	assert.Equal(t, model.StatusInReview, ana.Status)
	assert.Equal(t, model.ProducerTypeIndividual, ana.Type)
	assert.True(t, ana.EUDR.IsNone())
	assert.Equal(t, 2024, ana.CreatedAt.Year())
}

func TestStore_SeedRejectsDuplicates(t *testing.T) {
	s := New()
	p := model.Producer{
		ID:       "dup",
		TenantID: "tenant-1",
		Name:     "Bruno Silva",
		Type:     model.ProducerTypeCooperative,
		Serasa:   "1/5",
		EUDR:     "1/4",
	}

	require.NoError(t, s.Seed(p))
	assert.Error(t, s.Seed(p))

	// Ids are unique across tenants too.
	p.TenantID = "tenant-2"
	assert.Error(t, s.Seed(p))
}

func TestParseSeed(t *testing.T) {
	producers, err := ParseSeed(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, producers)

	_, err = ParseSeed(strings.NewReader("producers:\n  - nickname: x\n"))
	assert.Error(t, err)

	_, err = ParseSeed(strings.NewReader("producers:\n  - status: Archived\n"))
	assert.Error(t, err)
}
