package validation

import (
	"errors"
	"fmt"
)

// ValidatePhoto bounds the Base64 photo blob. The photo lives in a TEXT
// column, so the limit applies to the encoded size.
func ValidatePhoto(photo string, maxBytes int) error {
	if len(photo) > maxBytes {
		return fmt.Errorf("photo exceeds the maximum size of %d bytes", maxBytes)
	}
	return nil
}

// ValidateAbout bounds the free-text about section.
func ValidateAbout(about string, maxChars int) error {
	if len(about) > maxChars {
		return fmt.Errorf("about section exceeds the maximum length of %d characters", maxChars)
	}
	return nil
}

// ValidateName checks that a full name is plausible for display
func ValidateName(name string) error {
	if name == "" {
		return errors.New("name is required")
	}
	if len(name) > 150 {
		return errors.New("name is too long (max 150 characters)")
	}
	return nil
}
