// SPDX-License-Identifier: MPL-2.0

package surfraw

import (
	"maps"
	"slices"
	"strings"

	"surfconf/internal/config"
)

// keyPrefix is prepended to every setting key in the rendered document.
// surfraw only reads variables carrying this prefix.
const keyPrefix = "SURFRAW_"

// Render produces the surfraw conf document for a configuration: the
// free-form settings block converted into typed values, merged with the
// projected browser settings, rendered one SURFRAW_<key>=<value> line per
// entry. The output has no trailing newline; callers append one when
// persisting.
func Render(cfg *config.Config) (string, error) {
	settings, err := SettingsFromConfig(cfg)
	if err != nil {
		return "", err
	}
	return RenderSettings(settings, cfg)
}

// RenderSettings renders pre-converted free-form settings against the
// structured browser configuration. The collision check runs before any
// merging; its error is propagated unchanged. Lines are sorted bytewise by
// key, so output is byte-identical across runs for identical input.
func RenderSettings(settings map[string]Value, cfg *config.Config) (string, error) {
	projected, err := Project(cfg)
	if err != nil {
		return "", err
	}
	if err := ValidateSettings(settings); err != nil {
		return "", err
	}

	// Safe to merge: key sets are disjoint after validation.
	merged := make(map[string]Value, len(settings)+len(projected))
	maps.Copy(merged, settings)
	maps.Copy(merged, projected)

	keys := slices.Sorted(maps.Keys(merged))
	var sb strings.Builder
	for i, key := range keys {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(keyPrefix)
		sb.WriteString(key)
		sb.WriteByte('=')
		sb.WriteString(Format(merged[key]))
	}
	return sb.String(), nil
}

// SettingsFromConfig converts the configuration's free-form settings block
// into typed values, rejecting anything outside the {bool, int, string}
// domain. Keys are carried verbatim, case preserved.
func SettingsFromConfig(cfg *config.Config) (map[string]Value, error) {
	out := make(map[string]Value, len(cfg.Settings))
	for key, raw := range cfg.Settings {
		v, err := FromAny(key, raw)
		if err != nil {
			return nil, err
		}
		out[key] = v
	}
	return out, nil
}
