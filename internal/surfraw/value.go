// SPDX-License-Identifier: MPL-2.0

package surfraw

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnsupportedSettingValue is the sentinel error wrapped by UnsupportedSettingValueError.
var ErrUnsupportedSettingValue = errors.New("unsupported setting value")

type (
	// Value is a setting value in surfraw's closed value domain. The four
	// variants are Bool, Int, Text and List; Format is total over all of
	// them. The interface is sealed so that no fifth variant can appear at
	// render time.
	Value interface {
		isValue()
	}

	// Bool renders as the literals yes / no.
	Bool bool

	// Int renders as its decimal representation, unquoted.
	Int int64

	// Text renders verbatim, unquoted.
	Text string

	// List renders as its elements space-joined and double-quoted, or the
	// literal none when every element is empty (including the empty list).
	List []string

	// UnsupportedSettingValueError is returned when a free-form setting value
	// falls outside the {bool, int, string} domain.
	UnsupportedSettingValueError struct {
		Key   string
		Value any
	}
)

func (Bool) isValue() {}
func (Int) isValue()  {}
func (Text) isValue() {}
func (List) isValue() {}

// Format converts a Value into surfraw's textual value grammar. It is total:
// every Value maps to exactly one string.
func Format(v Value) string {
	switch v := v.(type) {
	case Bool:
		if v {
			return "yes"
		}
		return "no"
	case Int:
		return strconv.FormatInt(int64(v), 10)
	case Text:
		return string(v)
	case List:
		if v.isEffectivelyEmpty() {
			return "none"
		}
		return `"` + strings.Join(v, " ") + `"`
	}
	// Unreachable: Value is sealed to the four variants above.
	return ""
}

// isEffectivelyEmpty reports whether the list carries no textual content.
// surfraw treats a lone empty string the same as no arguments at all, so
// both [] and [""] (and any list of empty strings) render as none.
func (l List) isEffectivelyEmpty() bool {
	for _, elem := range l {
		if elem != "" {
			return false
		}
	}
	return true
}

// FromAny converts a boundary value (as produced by the CUE decode of the
// settings block) into its Value variant. Free-form settings are limited to
// {bool, int, string, []string}; anything else fails with
// UnsupportedSettingValueError. The key is carried only for the error message.
func FromAny(key string, v any) (Value, error) {
	switch v := v.(type) {
	case Value:
		return v, nil
	case bool:
		return Bool(v), nil
	case int:
		return Int(v), nil
	case int8:
		return Int(v), nil
	case int16:
		return Int(v), nil
	case int32:
		return Int(v), nil
	case int64:
		return Int(v), nil
	case uint:
		return Int(v), nil
	case uint8:
		return Int(v), nil
	case uint16:
		return Int(v), nil
	case uint32:
		return Int(v), nil
	case string:
		return Text(v), nil
	case []string:
		return List(v), nil
	default:
		return nil, &UnsupportedSettingValueError{Key: key, Value: v}
	}
}

// Error implements the error interface for UnsupportedSettingValueError.
func (e *UnsupportedSettingValueError) Error() string {
	return fmt.Sprintf("unsupported setting value for %q: %T (valid: bool, int, string)", e.Key, e.Value)
}

// Unwrap returns ErrUnsupportedSettingValue for errors.Is() compatibility.
func (e *UnsupportedSettingValueError) Unwrap() error { return ErrUnsupportedSettingValue }
