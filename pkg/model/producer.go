package model

import "time"

// Producer is a supplier owned by exactly one tenant.
type Producer struct {
	ID            string       `json:"id" yaml:"id"`
	TenantID      string       `json:"tenantId" yaml:"tenantId"`
	Name          string       `json:"name" yaml:"name" validate:"required,max=200"`
	Type          ProducerType `json:"type" yaml:"type" validate:"known"`
	NumberOfFarms int          `json:"numberOfFarms" yaml:"numberOfFarms" validate:"gte=0"`
	Serasa        Coverage     `json:"serasa" yaml:"serasa" validate:"coverage"`
	EUDR          Coverage     `json:"eudr" yaml:"eudr" validate:"coverage"`
	Status        Status       `json:"status" yaml:"status" validate:"known"`
	CreatedAt     time.Time    `json:"createdAt" yaml:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt" yaml:"updatedAt"`
}

// ProducerFields are the caller-supplied attributes of a new producer.
type ProducerFields struct {
	Name          string       `json:"name" yaml:"name"`
	Type          ProducerType `json:"type" yaml:"type"`
	NumberOfFarms int          `json:"numberOfFarms" yaml:"numberOfFarms"`
	Serasa        Coverage     `json:"serasa" yaml:"serasa"`
	EUDR          Coverage     `json:"eudr" yaml:"eudr"`
}

// ProducerUpdate is a partial update. Nil fields are left untouched. It has
// no identity, tenant, creation or status fields, so those cannot be
// overwritten through it.
type ProducerUpdate struct {
	Name          *string       `json:"name,omitempty"`
	Type          *ProducerType `json:"type,omitempty"`
	NumberOfFarms *int          `json:"numberOfFarms,omitempty"`
	Serasa        *Coverage     `json:"serasa,omitempty"`
	EUDR          *Coverage     `json:"eudr,omitempty"`
}

// IsEmpty reports whether the update changes nothing.
func (u ProducerUpdate) IsEmpty() bool {
	return u.Name == nil && u.Type == nil && u.NumberOfFarms == nil && u.Serasa == nil && u.EUDR == nil
}

// Apply returns p with the non-nil fields of u merged in.
func (u ProducerUpdate) Apply(p Producer) Producer {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Type != nil {
		p.Type = *u.Type
	}
	if u.NumberOfFarms != nil {
		p.NumberOfFarms = *u.NumberOfFarms
	}
	if u.Serasa != nil {
		p.Serasa = *u.Serasa
	}
	if u.EUDR != nil {
		p.EUDR = *u.EUDR
	}
	return p
}

// NewProducer builds a Created producer for tenantID. Identity and timestamps
// are assigned by the store.
func NewProducer(tenantID string, f ProducerFields) Producer {
	return Producer{
		TenantID:      tenantID,
		Name:          f.Name,
		Type:          f.Type,
		NumberOfFarms: f.NumberOfFarms,
		Serasa:        f.Serasa,
		EUDR:          f.EUDR,
		Status:        StatusCreated,
	}
}
