package model

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProducer() Producer {
	return NewProducer("tenant-1", ProducerFields{
		Name:          "Ana Paula Santos",
		Type:          ProducerTypeFarmGroup,
		NumberOfFarms: 4,
		Serasa:        "1/4",
		EUDR:          "0/4",
	})
}

func TestNewProducer(t *testing.T) {
	p := validProducer()

	assert.Equal(t, StatusCreated, p.Status)
	assert.Equal(t, "tenant-1", p.TenantID)
	assert.Empty(t, p.ID)
	assert.NoError(t, Validate(p))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Producer)
	}{
		{name: "missing name", mutate: func(p *Producer) { p.Name = "" }},
		{name: "unknown type", mutate: func(p *Producer) { p.Type = ProducerType(0) }},
		{name: "negative farms", mutate: func(p *Producer) { p.NumberOfFarms = -1 }},
		{name: "malformed serasa", mutate: func(p *Producer) { p.Serasa = "one of four" }},
		{name: "eudr above total", mutate: func(p *Producer) { p.EUDR = "5/4" }},
		{name: "unknown status", mutate: func(p *Producer) { p.Status = Status(42) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProducer()
			tt.mutate(&p)

			err := Validate(p)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidProducer))
		})
	}
}

func TestProducerUpdate_Apply(t *testing.T) {
	p := validProducer()
	p.ID = "p-1"

	name := "Ana Paula S."
	farms := 6
	u := ProducerUpdate{Name: &name, NumberOfFarms: &farms}

	got := u.Apply(p)
	assert.Equal(t, "Ana Paula S.", got.Name)
	assert.Equal(t, 6, got.NumberOfFarms)
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, p.TenantID, got.TenantID)
	assert.Equal(t, p.Status, got.Status)
	assert.Equal(t, p.EUDR, got.EUDR)

	assert.False(t, u.IsEmpty())
	assert.True(t, ProducerUpdate{}.IsEmpty())
}

func TestProducerUpdate_JSON(t *testing.T) {
	var u ProducerUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"type":"Cooperative","eudr":"2/4","id":"x","tenantId":"tenant-2"}`), &u))

	require.NotNil(t, u.Type)
	assert.Equal(t, ProducerTypeCooperative, *u.Type)
	require.NotNil(t, u.EUDR)
	assert.Equal(t, Coverage("2/4"), *u.EUDR)
	assert.Nil(t, u.Name)
}

func TestProducer_JSON(t *testing.T) {
	p := validProducer()
	p.Status = StatusInReview

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"status":"In Review"`)
	assert.Contains(t, string(data), `"type":"Farm Group"`)
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in   string
		want Status
		ok   bool
	}{
		{in: "In Review", want: StatusInReview, ok: true},
		{in: "in review", want: StatusInReview, ok: true},
		{in: "in-review", want: StatusInReview, ok: true},
		{in: "InReview", want: StatusInReview, ok: true},
		{in: "approved", want: StatusApproved, ok: true},
		{in: "Created", want: StatusCreated, ok: true},
		{in: "archived", ok: false},
		{in: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseStatus(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseProducerType(t *testing.T) {
	got, ok := ParseProducerType("farm-group")
	assert.True(t, ok)
	assert.Equal(t, ProducerTypeFarmGroup, got)

	got, ok = ParseProducerType("Individual")
	assert.True(t, ok)
	assert.Equal(t, ProducerTypeIndividual, got)

	_, ok = ParseProducerType("corporation")
	assert.False(t, ok)
}
