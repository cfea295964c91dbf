// SPDX-License-Identifier: MPL-2.0

package bookmarks

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"
	"unicode"

	"github.com/pelletier/go-toml/v2"
)

var (
	// ErrInvalidBookmarkName is the sentinel error wrapped by InvalidBookmarkNameError.
	ErrInvalidBookmarkName = errors.New("invalid bookmark name")
	// ErrInvalidBookmarkURL is the sentinel error wrapped by InvalidBookmarkURLError.
	ErrInvalidBookmarkURL = errors.New("invalid bookmark url")
)

type (
	// Bookmarks maps bookmark names to URLs.
	Bookmarks map[string]string

	// InvalidBookmarkNameError is returned when a bookmark name is empty or
	// contains whitespace. It wraps ErrInvalidBookmarkName for errors.Is().
	InvalidBookmarkNameError struct {
		Name string
	}

	// InvalidBookmarkURLError is returned when a bookmark URL is empty or
	// contains whitespace. It wraps ErrInvalidBookmarkURL for errors.Is().
	InvalidBookmarkURLError struct {
		Name string
		URL  string
	}
)

// Error implements the error interface for InvalidBookmarkNameError.
func (e *InvalidBookmarkNameError) Error() string {
	return fmt.Sprintf("invalid bookmark name %q: must be a single non-empty word", e.Name)
}

// Unwrap returns ErrInvalidBookmarkName for errors.Is() compatibility.
func (e *InvalidBookmarkNameError) Unwrap() error { return ErrInvalidBookmarkName }

// Error implements the error interface for InvalidBookmarkURLError.
func (e *InvalidBookmarkURLError) Error() string {
	return fmt.Sprintf("invalid url %q for bookmark %q: must be a single non-empty word", e.URL, e.Name)
}

// Unwrap returns ErrInvalidBookmarkURL for errors.Is() compatibility.
func (e *InvalidBookmarkURLError) Unwrap() error { return ErrInvalidBookmarkURL }

// Parse decodes a TOML bookmarks document and validates every entry.
// surfraw splits a bookmarks line on whitespace, so both names and URLs
// must be single words.
func Parse(data []byte) (Bookmarks, error) {
	var raw map[string]string
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse bookmarks: %w", err)
	}

	for name, url := range raw {
		if name == "" || containsSpace(name) {
			return nil, &InvalidBookmarkNameError{Name: name}
		}
		if url == "" || containsSpace(url) {
			return nil, &InvalidBookmarkURLError{Name: name, URL: url}
		}
	}

	return Bookmarks(raw), nil
}

// Load reads and parses a TOML bookmarks file.
func Load(path string) (Bookmarks, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bookmarks file: %w", err)
	}
	return Parse(data)
}

// Render produces the bookmarks document: one "name url" line per bookmark,
// sorted by name, with no trailing newline. Output is deterministic for a
// given Bookmarks value.
func (b Bookmarks) Render() string {
	names := slices.Sorted(maps.Keys(b))
	lines := make([]string, len(names))
	for i, name := range names {
		lines[i] = name + " " + b[name]
	}
	return strings.Join(lines, "\n")
}

func containsSpace(s string) bool {
	return strings.IndexFunc(s, unicode.IsSpace) >= 0
}
