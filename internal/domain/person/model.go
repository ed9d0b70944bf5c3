package person

import (
	"time"

	"github.com/google/uuid"

	"github.com/carebook/carebook/internal/domain/address"
)

// Base holds the fields shared by the create payload and the stored
// record. Calendar dates travel as YYYY-MM-DD strings. The addresses are
// stored exactly as given; they are not checked against the address
// store.
type Base struct {
	UNI       string         `json:"uni" validate:"required"`
	FirstName string         `json:"first_name" validate:"required"`
	LastName  string         `json:"last_name" validate:"required"`
	Email     string         `json:"email,omitempty"`
	Phone     string         `json:"phone,omitempty"`
	BirthDate string         `json:"birth_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Addresses []address.Base `json:"addresses" validate:"omitempty,dive"`
}

// Person is the stored read shape.
type Person struct {
	ID uuid.UUID `json:"id"`
	Base
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateInput is the payload for POST /persons. The id is server-generated.
type CreateInput = Base

// UpdateInput is the payload for PATCH /persons/:id. Nil fields never
// touch the stored record. A present addresses key replaces the whole
// sequence, including replacement by an empty one.
type UpdateInput struct {
	UNI       *string        `json:"uni"`
	FirstName *string        `json:"first_name"`
	LastName  *string        `json:"last_name"`
	Email     *string        `json:"email"`
	Phone     *string        `json:"phone"`
	BirthDate *string        `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Addresses []address.Base `json:"addresses" validate:"omitempty,dive"`
}

func (in *UpdateInput) Apply(p *Person) {
	if in.UNI != nil {
		p.UNI = *in.UNI
	}
	if in.FirstName != nil {
		p.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		p.LastName = *in.LastName
	}
	if in.Email != nil {
		p.Email = *in.Email
	}
	if in.Phone != nil {
		p.Phone = *in.Phone
	}
	if in.BirthDate != nil {
		p.BirthDate = *in.BirthDate
	}
	if in.Addresses != nil {
		p.Addresses = in.Addresses
	}
}

// Filter holds the optional equality filters for GET /persons. City and
// Country match when at least one of the person's addresses matches.
type Filter struct {
	UNI       *string
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	BirthDate *string
	City      *string
	Country   *string
}

func (f Filter) Match(p *Person) bool {
	if f.UNI != nil && p.UNI != *f.UNI {
		return false
	}
	if f.FirstName != nil && p.FirstName != *f.FirstName {
		return false
	}
	if f.LastName != nil && p.LastName != *f.LastName {
		return false
	}
	if f.Email != nil && p.Email != *f.Email {
		return false
	}
	if f.Phone != nil && p.Phone != *f.Phone {
		return false
	}
	if f.BirthDate != nil && p.BirthDate != *f.BirthDate {
		return false
	}
	if f.City != nil && !anyAddress(p.Addresses, func(a address.Base) bool { return a.City == *f.City }) {
		return false
	}
	if f.Country != nil && !anyAddress(p.Addresses, func(a address.Base) bool { return a.Country == *f.Country }) {
		return false
	}
	return true
}

func anyAddress(addrs []address.Base, match func(address.Base) bool) bool {
	for _, a := range addrs {
		if match(a) {
			return true
		}
	}
	return false
}
