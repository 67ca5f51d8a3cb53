package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{name: "valid", email: "user@example.com", wantErr: false},
		{name: "valid with plus", email: "user+tag@example.co.uk", wantErr: false},
		{name: "empty", email: "", wantErr: true},
		{name: "whitespace only", email: "   ", wantErr: true},
		{name: "missing domain", email: "user@", wantErr: true},
		{name: "missing at", email: "user.example.com", wantErr: true},
		{name: "missing tld", email: "user@example", wantErr: true},
		{name: "spaces inside", email: "us er@example.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateSpoolID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "uuid", id: "9f3b7a52-1c44-4e0f-9d26-7a1b2c3d4e5f", wantErr: false},
		{name: "label code", id: "a1B2c3D4", wantErr: false},
		{name: "empty", id: "", wantErr: true},
		{name: "too short code", id: "abc123", wantErr: true},
		{name: "too long code", id: "abc123def", wantErr: true},
		{name: "code with dash", id: "abc-123d", wantErr: true},
		{name: "malformed uuid", id: "9f3b7a52-1c44-4e0f-9d26", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSpoolID(tt.id)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateHexColor(t *testing.T) {
	assert.NoError(t, ValidateHexColor(""))
	assert.NoError(t, ValidateHexColor("#fff"))
	assert.NoError(t, ValidateHexColor("#1A2B3C"))
	assert.Error(t, ValidateHexColor("fff"))
	assert.Error(t, ValidateHexColor("#12345"))
	assert.Error(t, ValidateHexColor("#GGHHII"))
}

func TestValidateSyncKey(t *testing.T) {
	assert.NoError(t, ValidateSyncKey("abc123"))
	assert.Error(t, ValidateSyncKey(""))
	assert.Error(t, ValidateSyncKey("   "))
}

func TestValidateWeights(t *testing.T) {
	assert.NoError(t, ValidateWeights(0, 1000))
	assert.NoError(t, ValidateWeights(250, 1000))
	assert.Error(t, ValidateWeights(-1, 1000))
	assert.Error(t, ValidateWeights(0, -5))
}
