package detection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email    string
		expected bool
	}{
		{"jane@example.org", true},
		{"jane.smith+tag@sub.example.co.uk", true},
		{"", false},
		{"not-an-email", false},
		{"jane@", false},
		{"@example.org", false},
		{"jane@example", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidEmail(tt.email))
		})
	}
}

func TestEmailDomain(t *testing.T) {
	assert.Equal(t, "example.org", emailDomain("jane@example.org"))
	assert.Equal(t, "example.org", emailDomain("jane@EXAMPLE.ORG"))
	assert.Equal(t, "", emailDomain("no-at-sign"))
}

func TestEmailLocalPart(t *testing.T) {
	assert.Equal(t, "jane.smith", emailLocalPart("jane.smith@example.org"))
	assert.Equal(t, "no-at-sign", emailLocalPart("no-at-sign"))
}
