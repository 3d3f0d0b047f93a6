// Package validation checks user-supplied values that end up in service
// configuration.
package validation

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// ValidateURL checks that rawURL parses, uses one of schemes and names a
// host. With no schemes any scheme is accepted, but one must be present.
func ValidateURL(rawURL string, schemes ...string) error {
	if rawURL == "" {
		return fmt.Errorf("URL cannot be empty")
	}

	// Reject characters a URL never needs unescaped
	if i := strings.IndexFunc(rawURL, isForbiddenRune); i >= 0 {
		return fmt.Errorf("URL contains forbidden character %q", rawURL[i])
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}

	if parsed.Scheme == "" {
		return fmt.Errorf("URL must include a scheme")
	}
	if len(schemes) > 0 && !slices.Contains(schemes, parsed.Scheme) {
		return fmt.Errorf("invalid URL scheme: %s (allowed: %s)", parsed.Scheme, strings.Join(schemes, ", "))
	}

	if parsed.Host == "" {
		return fmt.Errorf("URL must have a valid hostname")
	}

	return nil
}

// ValidateDSN checks a connection string such as a database URL: it must
// parse and carry a scheme. Unlike ValidateURL no host is required, so
// sqlite:///var/app.db or unix-socket forms pass.
func ValidateDSN(dsn string) error {
	if dsn == "" {
		return fmt.Errorf("DSN cannot be empty")
	}
	if i := strings.IndexFunc(dsn, isForbiddenRune); i >= 0 {
		return fmt.Errorf("DSN contains forbidden character %q", dsn[i])
	}

	parsed, err := url.Parse(dsn)
	if err != nil {
		return fmt.Errorf("invalid DSN: %w", err)
	}
	if parsed.Scheme == "" {
		return fmt.Errorf("DSN must include a scheme")
	}

	return nil
}

// ValidatePort rejects the zero port, which cannot be listened on explicitly.
func ValidatePort(port uint16) error {
	if port == 0 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	return nil
}

func isForbiddenRune(r rune) bool {
	if r < 0x20 || r == 0x7f {
		return true
	}
	switch r {
	case ' ', '"', '\'', '`', '<', '>', '\\':
		return true
	}
	return false
}
