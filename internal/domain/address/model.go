package address

import (
	"time"

	"github.com/google/uuid"
)

// Base holds the fields shared by the create payload and the stored
// record. Unlike the other resources, the id is client-supplied and part
// of the payload.
type Base struct {
	ID         uuid.UUID `json:"id" validate:"required"`
	Street     string    `json:"street" validate:"required"`
	City       string    `json:"city" validate:"required"`
	State      string    `json:"state" validate:"required"`
	PostalCode string    `json:"postal_code" validate:"required"`
	Country    string    `json:"country" validate:"required"`
}

// Address is the stored read shape: base fields plus server timestamps.
type Address struct {
	Base
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateInput is the payload for POST /addresses.
type CreateInput = Base

// UpdateInput is the payload for PATCH /addresses/:id. Every field is a
// pointer so an omitted field is distinguishable from an explicit value;
// nil fields never touch the stored record. The id is immutable.
type UpdateInput struct {
	Street     *string `json:"street"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	PostalCode *string `json:"postal_code"`
	Country    *string `json:"country"`
}

// Apply overlays the fields present in the payload onto a.
func (in *UpdateInput) Apply(a *Address) {
	if in.Street != nil {
		a.Street = *in.Street
	}
	if in.City != nil {
		a.City = *in.City
	}
	if in.State != nil {
		a.State = *in.State
	}
	if in.PostalCode != nil {
		a.PostalCode = *in.PostalCode
	}
	if in.Country != nil {
		a.Country = *in.Country
	}
}

// Filter holds the optional equality filters for GET /addresses.
// Filters compose by logical AND; a nil filter imposes no restriction.
type Filter struct {
	Street     *string
	City       *string
	State      *string
	PostalCode *string
	Country    *string
}

// Match reports whether a satisfies every supplied filter.
func (f Filter) Match(a *Address) bool {
	if f.Street != nil && a.Street != *f.Street {
		return false
	}
	if f.City != nil && a.City != *f.City {
		return false
	}
	if f.State != nil && a.State != *f.State {
		return false
	}
	if f.PostalCode != nil && a.PostalCode != *f.PostalCode {
		return false
	}
	if f.Country != nil && a.Country != *f.Country {
		return false
	}
	return true
}
