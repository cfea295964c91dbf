// SPDX-License-Identifier: MPL-2.0

package surfraw

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrReservedSettingKey is the sentinel error wrapped by ReservedKeyCollisionError.
var ErrReservedSettingKey = errors.New("reserved setting key")

type (
	// Collision pairs a directly-supplied setting key with the structured
	// config path the user should set instead.
	Collision struct {
		Key            string
		StructuredPath string
	}

	// ReservedKeyCollisionError is returned when free-form settings contain
	// keys that are derived from the structured browser configuration. It
	// carries every colliding key, sorted, so the user can fix all of them
	// from a single report.
	ReservedKeyCollisionError struct {
		Collisions []Collision
	}
)

// Error implements the error interface for ReservedKeyCollisionError.
func (e *ReservedKeyCollisionError) Error() string {
	parts := make([]string, len(e.Collisions))
	for i, c := range e.Collisions {
		parts[i] = fmt.Sprintf("%s (use %s instead)", c.Key, c.StructuredPath)
	}
	return "reserved setting keys supplied directly: " + strings.Join(parts, ", ")
}

// Unwrap returns ErrReservedSettingKey for errors.Is() compatibility.
func (e *ReservedKeyCollisionError) Unwrap() error { return ErrReservedSettingKey }

// ValidateSettings checks that no free-form setting key collides with a
// reserved key. It must pass before the two namespaces may be merged; on
// failure no partial result exists to fall back to.
func ValidateSettings(settings map[string]Value) error {
	var collisions []Collision
	for key := range settings {
		if path, ok := reservedSettings[key]; ok {
			collisions = append(collisions, Collision{Key: key, StructuredPath: path})
		}
	}
	if len(collisions) == 0 {
		return nil
	}
	slices.SortFunc(collisions, func(a, b Collision) int {
		return strings.Compare(a.Key, b.Key)
	})
	return &ReservedKeyCollisionError{Collisions: collisions}
}
