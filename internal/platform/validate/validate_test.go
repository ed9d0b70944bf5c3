package validate

import (
	"errors"
	"testing"
)

type policyPayload struct {
	PolicyNumber string `json:"policy_number" validate:"required,policy_number"`
}

type licensePayload struct {
	LicenseNumber string `json:"license_number" validate:"required,license_number"`
}

type datePayload struct {
	StartDate string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
}

func TestPolicyNumber_Valid(t *testing.T) {
	v := New()
	for _, s := range []string{"ab1", "ab1234", "abc123456", "xy5678"} {
		if err := Struct(v, policyPayload{PolicyNumber: s}); err != nil {
			t.Errorf("%q: expected valid, got %v", s, err)
		}
	}
}

func TestPolicyNumber_Invalid(t *testing.T) {
	v := New()
	for _, s := range []string{"AB123", "abcd12", "ab", "a1234", "ab1234567", "ab 123", ""} {
		if err := Struct(v, policyPayload{PolicyNumber: s}); err == nil {
			t.Errorf("%q: expected validation failure", s)
		}
	}
}

func TestLicenseNumber_Valid(t *testing.T) {
	v := New()
	for _, s := range []string{"rx98765", "ph1234", "rx12345678"} {
		if err := Struct(v, licensePayload{LicenseNumber: s}); err != nil {
			t.Errorf("%q: expected valid, got %v", s, err)
		}
	}
}

func TestLicenseNumber_Invalid(t *testing.T) {
	v := New()
	// Nine digits is one past the limit.
	for _, s := range []string{"rx123456789", "RX123", "r123", "rx"} {
		if err := Struct(v, licensePayload{LicenseNumber: s}); err == nil {
			t.Errorf("%q: expected validation failure", s)
		}
	}
}

func TestDate_Valid(t *testing.T) {
	v := New()
	for _, s := range []string{"", "2025-01-01", "1999-12-31"} {
		if err := Struct(v, datePayload{StartDate: s}); err != nil {
			t.Errorf("%q: expected valid, got %v", s, err)
		}
	}
}

func TestDate_Invalid(t *testing.T) {
	v := New()
	for _, s := range []string{"2025-13-01", "01-01-2025", "2025/01/01", "not-a-date"} {
		if err := Struct(v, datePayload{StartDate: s}); err == nil {
			t.Errorf("%q: expected validation failure", s)
		}
	}
}

func TestStruct_FieldErrorsUseJSONNames(t *testing.T) {
	v := New()
	err := Struct(v, policyPayload{PolicyNumber: "NOPE"})
	if err == nil {
		t.Fatal("expected validation failure")
	}

	var verrs Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected Errors, got %T", err)
	}
	if len(verrs) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(verrs))
	}
	if verrs[0].Field != "policy_number" {
		t.Errorf("expected field policy_number, got %s", verrs[0].Field)
	}
	if verrs[0].Rule != "policy_number" {
		t.Errorf("expected rule policy_number, got %s", verrs[0].Rule)
	}
}
