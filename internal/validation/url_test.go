package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		schemes   []string
		expectErr bool
	}{
		// Valid URLs
		{name: "valid http URL", url: "http://localhost:8080", schemes: []string{"http", "https"}},
		{name: "valid https URL with path", url: "https://example.com/path/to/resource", schemes: []string{"http", "https"}},
		{name: "query with several params", url: "postgres://db:5432/app?sslmode=disable&timeout=5"},
		{name: "s3 bucket", url: "s3://bucket/prefix", schemes: []string{"s3"}},
		{name: "any scheme", url: "redis://cache:6379"},

		// Invalid
		{name: "empty", url: "", expectErr: true},
		{name: "no scheme", url: "localhost/app", expectErr: true},
		{name: "disallowed scheme", url: "ftp://example.com", schemes: []string{"http", "https"}, expectErr: true},
		{name: "javascript scheme", url: "javascript:alert(1)", schemes: []string{"http", "https"}, expectErr: true},
		{name: "missing host", url: "https:///path", expectErr: true},
		{name: "relative path", url: "/api/v1", expectErr: true},
		{name: "contains space", url: "https://example.com/a b", expectErr: true},
		{name: "contains newline", url: "https://example.com\nHost: evil", expectErr: true},
		{name: "contains quote", url: `https://example.com/"x"`, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.url, tt.schemes...)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateDSN(t *testing.T) {
	tests := []struct {
		name      string
		dsn       string
		expectErr bool
	}{
		{name: "postgres with host", dsn: "postgres://user:pw@db:5432/app?sslmode=disable"},
		{name: "sqlite absolute path", dsn: "sqlite:///var/db.sqlite"},
		{name: "opaque form", dsn: "sqlite:app.db"},
		{name: "unix socket", dsn: "postgres:///app?host=/var/run/postgresql"},

		{name: "empty", dsn: "", expectErr: true},
		{name: "no scheme", dsn: "localhost/app", expectErr: true},
		{name: "contains space", dsn: "postgres://db/app name", expectErr: true},
		{name: "bad escape", dsn: "postgres://db/%zz", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDSN(tt.dsn)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePort(t *testing.T) {
	assert.Error(t, ValidatePort(0))
	assert.NoError(t, ValidatePort(1))
	assert.NoError(t, ValidatePort(65535))
}
