package models

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Backcall is a "request a callback" lead left through the consultation form
type Backcall struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// Domain errors
var (
	ErrInvalidName  = errors.New("backcall name cannot be empty")
	ErrInvalidPhone = errors.New("backcall phone must be +380 followed by 9 digits")
)

// ukrainianPhone matches the only phone shape the consultation form accepts
var ukrainianPhone = regexp.MustCompile(`^\+380\d{9}$`)

// NewBackcall creates a new backcall with validation
func NewBackcall(name, phone string) (*Backcall, error) {
	if err := validateBackcallInput(name, phone); err != nil {
		return nil, err
	}

	return &Backcall{
		ID:        uuid.New().String(),
		Name:      name,
		Phone:     phone,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Matches reports whether the backcall was left by exactly this name and phone
func (b *Backcall) Matches(name, phone string) bool {
	return b.Name == name && b.Phone == phone
}

// ValidPhone reports whether phone passes the consultation form's check
func ValidPhone(phone string) bool {
	return ukrainianPhone.MatchString(phone)
}

// validateBackcallInput validates backcall creation parameters
func validateBackcallInput(name, phone string) error {
	if strings.TrimSpace(name) == "" {
		return ErrInvalidName
	}
	if !ValidPhone(phone) {
		return ErrInvalidPhone
	}
	return nil
}
