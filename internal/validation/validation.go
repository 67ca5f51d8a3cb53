// Package validation holds syntactic checks performed before any data
// leaves the device. Failures here never reach the relay.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// emailPattern is a permissive syntactic check; deliverability is
	// the relay's problem, not ours.
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

	// labelCodePattern matches the 8-character alphanumeric codes used
	// on printable QR labels.
	labelCodePattern = regexp.MustCompile(`^[a-zA-Z0-9]{8}$`)

	// uuidPattern matches the canonical 36-character UUID form.
	uuidPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

	// hexColorPattern matches #RGB and #RRGGBB hex colors.
	hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
)

// ValidateEmail checks that the address is syntactically plausible.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("invalid email address: %s", email)
	}
	return nil
}

// ValidateSpoolID accepts the two supported identifier formats:
// a 36-character UUID or an 8-character alphanumeric label code.
func ValidateSpoolID(id string) error {
	if id == "" {
		return fmt.Errorf("spool id cannot be empty")
	}
	if uuidPattern.MatchString(id) || labelCodePattern.MatchString(id) {
		return nil
	}
	return fmt.Errorf("spool id must be a UUID or an 8-character label code: %s", id)
}

// ValidateHexColor checks a #RGB or #RRGGBB color string.
// An empty color is allowed (color is optional on a spool).
func ValidateHexColor(color string) error {
	if color == "" {
		return nil
	}
	if !hexColorPattern.MatchString(color) {
		return fmt.Errorf("invalid hex color: %s", color)
	}
	return nil
}

// ValidateSyncKey checks that a sync key is non-empty after trimming.
// Keys are opaque; no structure beyond that is assumed.
func ValidateSyncKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("sync key cannot be empty")
	}
	return nil
}

// ValidateWeights checks the invariants on spool weights.
func ValidateWeights(usedWeight, totalWeight float64) error {
	if usedWeight < 0 {
		return fmt.Errorf("used weight cannot be negative")
	}
	if totalWeight < 0 {
		return fmt.Errorf("total weight cannot be negative")
	}
	return nil
}
