// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
)

// ErrInvalidSettingKey is the sentinel error wrapped by InvalidSettingKeyError.
var ErrInvalidSettingKey = errors.New("invalid setting key")

type (
	// SettingKey represents a surfraw setting name. The rendered configuration
	// is sourced by /bin/sh as a sequence of SURFRAW_<key>=<value> assignments,
	// so a valid key must be a shell identifier: it starts with a letter or
	// underscore and contains only letters, digits and underscores.
	SettingKey string

	// InvalidSettingKeyError is returned when a SettingKey value is empty or
	// is not a valid shell identifier.
	InvalidSettingKeyError struct {
		Value SettingKey
	}
)

// String returns the string representation of the SettingKey.
func (k SettingKey) String() string { return string(k) }

// IsValid returns whether the SettingKey is a valid shell identifier.
func (k SettingKey) IsValid() (bool, []error) {
	if k == "" {
		return false, []error{&InvalidSettingKeyError{Value: k}}
	}
	for i, c := range string(k) {
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false, []error{&InvalidSettingKeyError{Value: k}}
			}
		default:
			return false, []error{&InvalidSettingKeyError{Value: k}}
		}
	}
	return true, nil
}

// Error implements the error interface for InvalidSettingKeyError.
func (e *InvalidSettingKeyError) Error() string {
	return fmt.Sprintf("invalid setting key %q: must be a shell identifier ([A-Za-z_][A-Za-z0-9_]*)", e.Value)
}

// Unwrap returns ErrInvalidSettingKey for errors.Is() compatibility.
func (e *InvalidSettingKeyError) Unwrap() error { return ErrInvalidSettingKey }
