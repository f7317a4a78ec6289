package validation_test

import (
	"strings"
	"testing"

	"github.com/internhub/internhub/internal/validation"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"valid", "user@example.com", false},
		{"valid with plus", "user+tag@example.com", false},
		{"empty", "", true},
		{"no at", "userexample.com", true},
		{"no domain", "user@", true},
		{"too long", strings.Repeat("a", 250) + "@x.com", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validation.ValidateEmail(tc.email)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ValidateEmail(%q) error = %v, wantErr %v", tc.email, err, tc.wantErr)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	if err := validation.ValidatePassword("password123"); err != nil {
		t.Fatalf("expected valid password, got %v", err)
	}
	if err := validation.ValidatePassword("short"); err == nil {
		t.Fatal("expected error for short password")
	}
	// bcrypt truncates beyond 72 bytes, so longer passwords are rejected
	if err := validation.ValidatePassword(strings.Repeat("x", 73)); err == nil {
		t.Fatal("expected error for over-long password")
	}
}

func TestValidatePhoto(t *testing.T) {
	if err := validation.ValidatePhoto(strings.Repeat("A", 100), 200); err != nil {
		t.Fatalf("expected photo within limit to pass, got %v", err)
	}
	if err := validation.ValidatePhoto(strings.Repeat("A", 300), 200); err == nil {
		t.Fatal("expected error for oversized photo")
	}
}

func TestValidateAbout(t *testing.T) {
	if err := validation.ValidateAbout("short bio", 100); err != nil {
		t.Fatalf("expected about within limit to pass, got %v", err)
	}
	if err := validation.ValidateAbout(strings.Repeat("a", 101), 100); err == nil {
		t.Fatal("expected error for over-long about")
	}
}
