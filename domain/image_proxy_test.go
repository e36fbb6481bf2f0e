package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidImageContentType(t *testing.T) {
	tests := []struct {
		contentType string
		want        bool
	}{
		{"image/jpeg", true},
		{"image/png", true},
		{"image/svg+xml", true},
		{"IMAGE/JPEG", true},
		{"image/webp; charset=binary", true},
		{" image/gif", true},
		{"text/html", false},
		{"application/octet-stream", false},
		{"", false},
		{"imagery/fake", false},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidImageContentType(tt.contentType))
		})
	}
}
