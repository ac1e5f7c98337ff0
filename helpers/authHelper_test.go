package helpers

import (
	"testing"

	"gopkg.in/go-playground/assert.v1"
)

func TestCanAccessResource(t *testing.T) {
	owner := "uid-1"

	tests := []struct {
		name    string
		role    string
		uid     string
		ownerId *string
		allowed bool
	}{
		{"owner may access", "CUSTOMER", "uid-1", &owner, true},
		{"other customer may not", "CUSTOMER", "uid-2", &owner, false},
		{"admin may access anything", "ADMIN", "uid-2", &owner, true},
		{"admin may access unowned rows", "ADMIN", "uid-2", nil, true},
		{"customer may not access unowned rows", "CUSTOMER", "uid-1", nil, false},
		{"missing role is not admin", "", "uid-2", &owner, false},
		{"owner allowed whatever the role", "", "uid-1", &owner, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, CanAccessResource(tt.role, tt.uid, tt.ownerId), tt.allowed)
		})
	}
}
