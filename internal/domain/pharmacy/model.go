package pharmacy

import (
	"time"

	"github.com/google/uuid"

	"github.com/carebook/carebook/internal/domain/address"
)

// Base holds the fields shared by the create payload and the stored
// record. The address is embedded as given, not resolved against the
// address store.
type Base struct {
	Name          string       `json:"name" validate:"required"`
	LicenseNumber string       `json:"license_number" validate:"required,license_number"`
	Address       address.Base `json:"address" validate:"required"`
	Phone         string       `json:"phone,omitempty"`
}

// Pharmacy is the stored read shape.
type Pharmacy struct {
	ID uuid.UUID `json:"id"`
	Base
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateInput is the payload for POST /pharmacies. The id is server-generated.
type CreateInput = Base

// UpdateInput is the payload for PATCH /pharmacies/:id. Nil fields never
// touch the stored record; a present address replaces the whole address.
type UpdateInput struct {
	Name          *string       `json:"name"`
	LicenseNumber *string       `json:"license_number" validate:"omitempty,license_number"`
	Address       *address.Base `json:"address"`
	Phone         *string       `json:"phone"`
}

func (in *UpdateInput) Apply(p *Pharmacy) {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.LicenseNumber != nil {
		p.LicenseNumber = *in.LicenseNumber
	}
	if in.Address != nil {
		p.Address = *in.Address
	}
	if in.Phone != nil {
		p.Phone = *in.Phone
	}
}

// Filter holds the optional equality filters for GET /pharmacies. The
// city, state, postal code and country filters match against the nested
// address.
type Filter struct {
	Name          *string
	LicenseNumber *string
	Phone         *string
	City          *string
	State         *string
	PostalCode    *string
	Country       *string
}

func (f Filter) Match(p *Pharmacy) bool {
	if f.Name != nil && p.Name != *f.Name {
		return false
	}
	if f.LicenseNumber != nil && p.LicenseNumber != *f.LicenseNumber {
		return false
	}
	if f.Phone != nil && p.Phone != *f.Phone {
		return false
	}
	if f.City != nil && p.Address.City != *f.City {
		return false
	}
	if f.State != nil && p.Address.State != *f.State {
		return false
	}
	if f.PostalCode != nil && p.Address.PostalCode != *f.PostalCode {
		return false
	}
	if f.Country != nil && p.Address.Country != *f.Country {
		return false
	}
	return true
}
