// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"strings"
	"testing"
)

func TestFormatError(t *testing.T) {
	t.Parallel()

	t.Run("nil error returns nil", func(t *testing.T) {
		t.Parallel()

		err := FormatError(nil, "test.cue")
		if err != nil {
			t.Errorf("expected nil, got %v", err)
		}
	})

	t.Run("non-CUE error is wrapped with filepath", func(t *testing.T) {
		t.Parallel()

		originalErr := errors.New("some error")
		err := FormatError(originalErr, "test.cue")
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "test.cue") {
			t.Errorf("error should contain filepath, got: %v", err)
		}
		if !strings.Contains(err.Error(), "some error") {
			t.Errorf("error should contain original message, got: %v", err)
		}
	})
}

func TestFormatPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     []string
		expected string
	}{
		{name: "empty path", path: []string{}, expected: ""},
		{name: "single element", path: []string{"browser"}, expected: "browser"},
		{name: "nested path", path: []string{"graphical", "browser"}, expected: "graphical.browser"},
		{name: "array index", path: []string{"graphical", "browser_args", "0"}, expected: "graphical.browser_args[0]"},
		{name: "index then field", path: []string{"entries", "2", "name"}, expected: "entries[2].name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := formatPath(tt.path); got != tt.expected {
				t.Errorf("formatPath(%v) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	t.Run("with CUE path", func(t *testing.T) {
		t.Parallel()
		e := &ValidationError{FilePath: "config.cue", CUEPath: "graphical.browser", Message: "expected string"}
		want := "config.cue: graphical.browser: expected string"
		if got := e.Error(); got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
	})

	t.Run("without CUE path", func(t *testing.T) {
		t.Parallel()
		e := &ValidationError{FilePath: "config.cue", Message: "syntax error"}
		want := "config.cue: syntax error"
		if got := e.Error(); got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
	})
}

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	if err := CheckFileSize(make([]byte, 16), 16, "ok.cue"); err != nil {
		t.Errorf("size at limit should pass, got: %v", err)
	}
	err := CheckFileSize(make([]byte, 17), 16, "big.cue")
	if err == nil {
		t.Fatal("size above limit should fail")
	}
	if !strings.Contains(err.Error(), "big.cue") {
		t.Errorf("error should name the file, got: %v", err)
	}
}
