package models

import (
	"errors"
	"testing"
)

func TestNewBackcall(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		phone    string
		wantErr  error
	}{
		{
			name:     "valid backcall",
			userName: "TestOlena",
			phone:    "+380506743060",
			wantErr:  nil,
		},
		{
			name:     "empty name",
			userName: "",
			phone:    "+380506743060",
			wantErr:  ErrInvalidName,
		},
		{
			name:     "whitespace name",
			userName: "   ",
			phone:    "+380506743060",
			wantErr:  ErrInvalidName,
		},
		{
			name:     "phone too short",
			userName: "TestOlena",
			phone:    "+38063111111",
			wantErr:  ErrInvalidPhone,
		},
		{
			name:     "phone wrong country",
			userName: "TestOlena",
			phone:    "+11111111111111",
			wantErr:  ErrInvalidPhone,
		},
		{
			name:     "phone prefix only",
			userName: "TestOlena",
			phone:    "+380",
			wantErr:  ErrInvalidPhone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backcall, err := NewBackcall(tt.userName, tt.phone)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("NewBackcall() error = %v, wantErr %v", err, tt.wantErr)
				}
				if backcall != nil {
					t.Errorf("NewBackcall() returned backcall on error")
				}
				return
			}

			if err != nil {
				t.Fatalf("NewBackcall() unexpected error = %v", err)
			}
			if backcall.ID == "" {
				t.Error("NewBackcall() ID should not be empty")
			}
			if backcall.CreatedAt.IsZero() {
				t.Error("NewBackcall() CreatedAt should be set")
			}
			if !backcall.Matches(tt.userName, tt.phone) {
				t.Errorf("NewBackcall() = %+v, want name %q phone %q", backcall, tt.userName, tt.phone)
			}
		})
	}
}

func TestBackcall_Matches(t *testing.T) {
	b := &Backcall{Name: "TestOlena", Phone: "+380506743060"}

	if !b.Matches("TestOlena", "+380506743060") {
		t.Error("expected exact name and phone to match")
	}
	if b.Matches("testolena", "+380506743060") {
		t.Error("name comparison must be case sensitive")
	}
	if b.Matches("TestOlena", "+380506743061") {
		t.Error("different phone must not match")
	}
}
