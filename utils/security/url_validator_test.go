package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "fieldboard/utils/errors"
)

func TestParseImageURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{name: "http", raw: "http://images.example.com/cat.jpg"},
		{name: "https with query", raw: "https://cdn.example.com/img?w=600&fm=jpg"},
		{name: "empty", raw: "", wantErr: true},
		{name: "relative path", raw: "/cat.jpg", wantErr: true},
		{name: "schemeless host", raw: "images.example.com/cat.jpg", wantErr: true},
		{name: "ftp scheme", raw: "ftp://images.example.com/cat.jpg", wantErr: true},
		{name: "file scheme", raw: "file:///etc/passwd", wantErr: true},
		{name: "javascript scheme", raw: "javascript:alert(1)", wantErr: true},
		{name: "control character", raw: "http://example.com/\x7f", wantErr: true},
		{name: "missing host", raw: "http:///cat.jpg", wantErr: true},
		{name: "overlong", raw: "http://example.com/" + strings.Repeat("a", 2100), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := ParseImageURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrInvalidImageURL)
				assert.Nil(t, u)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, u)
			assert.Equal(t, tt.raw, u.String())
		})
	}
}
