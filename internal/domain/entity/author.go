// Package entity defines the core domain entities and validation logic for the application.
// It contains the Author and Post records, the field validators that guard every write,
// and the ValidationError type those validators report.
package entity

import (
	"fmt"
	"time"
)

// Author represents a blog author.
// Name is unique across all authors; PhoneNumber is optional.
type Author struct {
	ID          int64
	Name        string
	PhoneNumber *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewAuthor builds an Author after running every field validator.
// ID and timestamps are assigned by the store.
func NewAuthor(name string, phoneNumber *string) (*Author, error) {
	a := &Author{}
	if err := a.SetName(name); err != nil {
		return nil, err
	}
	if err := a.SetPhoneNumber(phoneNumber); err != nil {
		return nil, err
	}
	return a, nil
}

// SetName assigns name if it passes ValidateAuthorName.
// The author is left unchanged on error.
func (a *Author) SetName(name string) error {
	if err := ValidateAuthorName(name); err != nil {
		return err
	}
	a.Name = name
	return nil
}

// SetPhoneNumber assigns phone if it passes ValidatePhoneNumber. nil clears the number.
func (a *Author) SetPhoneNumber(phone *string) error {
	if err := ValidatePhoneNumber(phone); err != nil {
		return err
	}
	a.PhoneNumber = cloneString(phone)
	return nil
}

// Validate re-runs the field validators against the current values.
func (a *Author) Validate() error {
	if err := ValidateAuthorName(a.Name); err != nil {
		return err
	}
	return ValidatePhoneNumber(a.PhoneNumber)
}

func (a *Author) String() string {
	return fmt.Sprintf("Author(id=%d, name=%s)", a.ID, a.Name)
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func formatOptional(s *string) string {
	if s == nil {
		return "<nil>"
	}
	return *s
}
