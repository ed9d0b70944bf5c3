package insurance

import (
	"time"

	"github.com/google/uuid"
)

// Base holds the fields shared by the create payload and the stored
// record. Coverage dates travel as YYYY-MM-DD strings and may be absent.
type Base struct {
	Provider     string `json:"provider" validate:"required"`
	PolicyNumber string `json:"policy_number" validate:"required,policy_number"`
	StartDate    string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate      string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// Insurance is the stored read shape.
type Insurance struct {
	ID uuid.UUID `json:"id"`
	Base
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateInput is the payload for POST /insurances. The id is server-generated.
type CreateInput = Base

// UpdateInput is the payload for PATCH /insurances/:id. Nil fields never
// touch the stored record.
type UpdateInput struct {
	Provider     *string `json:"provider"`
	PolicyNumber *string `json:"policy_number" validate:"omitempty,policy_number"`
	StartDate    *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate      *string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

func (in *UpdateInput) Apply(i *Insurance) {
	if in.Provider != nil {
		i.Provider = *in.Provider
	}
	if in.PolicyNumber != nil {
		i.PolicyNumber = *in.PolicyNumber
	}
	if in.StartDate != nil {
		i.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		i.EndDate = *in.EndDate
	}
}

// Filter holds the optional equality filters for GET /insurances.
type Filter struct {
	Provider     *string
	PolicyNumber *string
	StartDate    *string
	EndDate      *string
}

func (f Filter) Match(i *Insurance) bool {
	if f.Provider != nil && i.Provider != *f.Provider {
		return false
	}
	if f.PolicyNumber != nil && i.PolicyNumber != *f.PolicyNumber {
		return false
	}
	if f.StartDate != nil && i.StartDate != *f.StartDate {
		return false
	}
	if f.EndDate != nil && (i.EndDate == "" || i.EndDate != *f.EndDate) {
		return false
	}
	return true
}
