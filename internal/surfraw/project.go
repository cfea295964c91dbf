// SPDX-License-Identifier: MPL-2.0

package surfraw

import (
	"errors"
	"fmt"
	"strings"

	"surfconf/internal/config"
)

// reservedSettings maps the setting keys that surfraw derives from the
// structured browser configuration to the dotted config path that produces
// them. The table is fixed at compile time; Project fails on any entry whose
// path does not resolve, and the default-config projection test keeps the
// table honest.
var reservedSettings = map[string]string{
	"graphical":              "use_graphical_browser",
	"graphical_browser":      "graphical.browser",
	"graphical_browser_args": "graphical.browser_args",
	"text_browser":           "textual.browser",
	"text_browser_args":      "textual.browser_args",
}

// ErrUnresolvedReservedPath is the sentinel error wrapped by UnresolvedReservedPathError.
var ErrUnresolvedReservedPath = errors.New("unresolved reserved path")

// UnresolvedReservedPathError is returned when a reservedSettings entry names
// a config path that does not exist. This is a defect in the table itself,
// never a user error.
type UnresolvedReservedPathError struct {
	Key  string
	Path string
}

// Error implements the error interface for UnresolvedReservedPathError.
func (e *UnresolvedReservedPathError) Error() string {
	return fmt.Sprintf("reserved setting %q: config path %q does not resolve", e.Key, e.Path)
}

// Unwrap returns ErrUnresolvedReservedPath for errors.Is() compatibility.
func (e *UnresolvedReservedPathError) Unwrap() error { return ErrUnresolvedReservedPath }

// ReservedPath returns the structured config path backing a reserved setting
// key, and whether the key is reserved at all. Callers use it to phrase
// collision hints.
func ReservedPath(key string) (string, bool) {
	path, ok := reservedSettings[key]
	return path, ok
}

// Project resolves every reserved setting key against the structured browser
// configuration and returns the projected settings map. It is a pure function
// of cfg: projecting the same configuration twice yields equal maps.
func Project(cfg *config.Config) (map[string]Value, error) {
	out := make(map[string]Value, len(reservedSettings))
	for key, path := range reservedSettings {
		v, ok := lookupPath(cfg, path)
		if !ok {
			return nil, &UnresolvedReservedPathError{Key: key, Path: path}
		}
		out[key] = v
	}
	return out, nil
}

// lookupPath resolves a dotted path against the configuration record.
func lookupPath(cfg *config.Config, path string) (Value, bool) {
	head, rest, _ := strings.Cut(path, ".")
	switch head {
	case "use_graphical_browser":
		if rest != "" {
			return nil, false
		}
		return Bool(cfg.UseGraphicalBrowser), true
	case "graphical", "textual":
		browser := cfg.Graphical
		if head == "textual" {
			browser = cfg.Textual
		}
		switch rest {
		case "browser":
			return Text(browser.Browser), true
		case "browser_args":
			return List(browser.BrowserArgs), true
		}
	}
	return nil, false
}
