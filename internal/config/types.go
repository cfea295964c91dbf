// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"surfconf/pkg/types"
)

const (
	// DefaultGraphicalBrowser is the graphical browser surfraw launches when
	// the user declares none.
	DefaultGraphicalBrowser BrowserPath = "/usr/bin/firefox"
	// DefaultTextBrowser is the text-mode browser surfraw launches when the
	// user declares none.
	DefaultTextBrowser BrowserPath = "/usr/bin/w3m"
)

var (
	// ErrInvalidBrowserPath is returned when a BrowserPath value is empty or whitespace-only.
	ErrInvalidBrowserPath = errors.New("invalid browser path")
	// ErrInvalidBookmarksFilePath is returned when a BookmarksFilePath value is whitespace-only.
	ErrInvalidBookmarksFilePath = errors.New("invalid bookmarks file path")
	// ErrInvalidBrowserConfig is the sentinel error wrapped by InvalidBrowserConfigError.
	ErrInvalidBrowserConfig = errors.New("invalid browser config")
	// ErrInvalidSettings is the sentinel error wrapped by InvalidSettingsError.
	ErrInvalidSettings = errors.New("invalid settings")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// BrowserPath represents a filesystem path to a browser executable.
	// A valid path must be non-empty and not whitespace-only.
	BrowserPath string

	// InvalidBrowserPathError is returned when a BrowserPath value is
	// empty or whitespace-only. It wraps ErrInvalidBrowserPath for errors.Is().
	InvalidBrowserPathError struct {
		Value BrowserPath
	}

	// BookmarksFilePath represents a filesystem path to a TOML bookmarks file.
	// The zero value ("") is valid and means "no bookmarks file configured".
	// Non-zero values must not be whitespace-only.
	BookmarksFilePath string

	// InvalidBookmarksFilePathError is returned when a BookmarksFilePath value
	// is non-empty but whitespace-only.
	InvalidBookmarksFilePathError struct {
		Value BookmarksFilePath
	}

	// BrowserConfig declares one of surfraw's two browsers.
	BrowserConfig struct {
		// Browser is the path to the browser executable.
		Browser BrowserPath `json:"browser" mapstructure:"browser"`
		// BrowserArgs are extra arguments passed to the browser. A list whose
		// every element is empty renders as surfraw's literal none.
		BrowserArgs []string `json:"browser_args" mapstructure:"browser_args"`
	}

	// InvalidBrowserConfigError is returned when a BrowserConfig has invalid fields.
	// It wraps ErrInvalidBrowserConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidBrowserConfigError struct {
		FieldErrors []error
	}

	// InvalidSettingsError is returned when the free-form settings block has
	// invalid keys. It wraps ErrInvalidSettings for errors.Is() compatibility
	// and collects per-key validation errors.
	InvalidSettingsError struct {
		FieldErrors []error
	}

	// Config holds the surfconf configuration.
	Config struct {
		// UseGraphicalBrowser selects the graphical browser over the text-mode one.
		UseGraphicalBrowser bool `json:"use_graphical_browser" mapstructure:"use_graphical_browser"`
		// Graphical declares the graphical browser.
		Graphical BrowserConfig `json:"graphical" mapstructure:"graphical"`
		// Textual declares the text-mode browser.
		Textual BrowserConfig `json:"textual" mapstructure:"textual"`
		// Settings is the free-form surfraw settings block. Keys are carried
		// verbatim, case preserved; values are limited to bool, int and string.
		Settings map[string]any `json:"settings" mapstructure:"settings"`
		// BookmarksFile optionally references a TOML bookmarks file.
		BookmarksFile BookmarksFilePath `json:"bookmarks_file" mapstructure:"bookmarks_file"`
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}
)

// String returns the string representation of the BrowserPath.
func (p BrowserPath) String() string { return string(p) }

// IsValid returns whether the BrowserPath is valid.
// A valid path must be non-empty and not whitespace-only.
func (p BrowserPath) IsValid() (bool, []error) {
	if strings.TrimSpace(string(p)) == "" {
		return false, []error{&InvalidBrowserPathError{Value: p}}
	}
	return true, nil
}

// Error implements the error interface for InvalidBrowserPathError.
func (e *InvalidBrowserPathError) Error() string {
	return fmt.Sprintf("invalid browser path %q: must be non-empty", e.Value)
}

// Unwrap returns ErrInvalidBrowserPath for errors.Is() compatibility.
func (e *InvalidBrowserPathError) Unwrap() error { return ErrInvalidBrowserPath }

// String returns the string representation of the BookmarksFilePath.
func (p BookmarksFilePath) String() string { return string(p) }

// IsValid returns whether the BookmarksFilePath is valid.
// The zero value ("") is valid (means "no bookmarks file configured").
// Non-zero values must not be whitespace-only.
func (p BookmarksFilePath) IsValid() (bool, []error) {
	if p == "" {
		return true, nil
	}
	if strings.TrimSpace(string(p)) == "" {
		return false, []error{&InvalidBookmarksFilePathError{Value: p}}
	}
	return true, nil
}

// Error implements the error interface for InvalidBookmarksFilePathError.
func (e *InvalidBookmarksFilePathError) Error() string {
	return fmt.Sprintf("invalid bookmarks file path %q: non-empty value must not be whitespace-only", e.Value)
}

// Unwrap returns ErrInvalidBookmarksFilePath for errors.Is() compatibility.
func (e *InvalidBookmarksFilePathError) Unwrap() error { return ErrInvalidBookmarksFilePath }

// IsValid returns whether the BrowserConfig has valid fields.
// It delegates to Browser.IsValid(); BrowserArgs need no validation (any
// list of strings, including empty ones, is renderable).
func (c BrowserConfig) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.Browser.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidBrowserConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidBrowserConfigError.
func (e *InvalidBrowserConfigError) Error() string {
	return fmt.Sprintf("invalid browser config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidBrowserConfig for errors.Is() compatibility.
func (e *InvalidBrowserConfigError) Unwrap() error { return ErrInvalidBrowserConfig }

// Error implements the error interface for InvalidSettingsError.
func (e *InvalidSettingsError) Error() string {
	return fmt.Sprintf("invalid settings: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidSettings for errors.Is() compatibility.
func (e *InvalidSettingsError) Unwrap() error { return ErrInvalidSettings }

// validSettings returns whether every key in the free-form settings block is
// a valid shell identifier. Value-domain checks live at the render boundary,
// where each value is converted into its typed variant.
func validSettings(settings map[string]any) (bool, []error) {
	var errs []error
	for key := range settings {
		if valid, fieldErrs := types.SettingKey(key).IsValid(); !valid {
			errs = append(errs, fieldErrs...)
		}
	}
	if len(errs) > 0 {
		return false, []error{&InvalidSettingsError{FieldErrors: errs}}
	}
	return true, nil
}

// IsValid returns whether the Config has valid fields.
// It delegates to Graphical.IsValid(), Textual.IsValid(), the settings key
// check, and BookmarksFile.IsValid(). UseGraphicalBrowser is a bool and
// needs no validation.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.Graphical.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Textual.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := validSettings(c.Settings); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.BookmarksFile.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// DefaultConfig returns the default configuration. The default browser args
// are a single empty string, which renders as surfraw's literal none.
func DefaultConfig() *Config {
	return &Config{
		UseGraphicalBrowser: true,
		Graphical: BrowserConfig{
			Browser:     DefaultGraphicalBrowser,
			BrowserArgs: []string{""},
		},
		Textual: BrowserConfig{
			Browser:     DefaultTextBrowser,
			BrowserArgs: []string{""},
		},
		Settings:      map[string]any{},
		BookmarksFile: "",
	}
}
