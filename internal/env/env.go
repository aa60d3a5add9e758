// Package env resolves configuration from process environment variables.
//
// Each configuration value may be published under more than one variable
// name (a primary name plus legacy aliases); the first non-blank value wins.
package env

import (
	"fmt"
	"os"
	"strings"

	osserrors "github.com/fine-build/oss-upload/errors"
)

// Lookup returns the first non-blank value among the given variable names.
// Values are trimmed of surrounding whitespace; a whitespace-only value
// counts as blank. Returns "" when every name is blank or unset.
func Lookup(names ...string) string {
	for _, name := range names {
		if value := strings.TrimSpace(os.Getenv(name)); value != "" {
			return value
		}
	}
	return ""
}

// Require is like Lookup but fails when every name is blank or unset.
// The error names all checked variables so CI logs show exactly what to set.
func Require(names ...string) (string, error) {
	if value := Lookup(names...); value != "" {
		return value, nil
	}
	return "", fmt.Errorf("%w: %s", osserrors.ErrMissingEnv, strings.Join(names, ", "))
}
