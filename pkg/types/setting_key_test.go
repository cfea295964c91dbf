// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"testing"
)

func TestSettingKey_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key     SettingKey
		want    bool
		wantErr bool
	}{
		{"results", true, false},
		{"escape_url_args", true, false},
		{"useGraphicalBrowser", true, false},
		{"_private", true, false},
		{"w3m2", true, false},
		{"", false, true},
		{"9results", false, true},
		{"has space", false, true},
		{"has-dash", false, true},
		{"has=equals", false, true},
		{"quote\"", false, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			t.Parallel()
			isValid, errs := tt.key.IsValid()
			if isValid != tt.want {
				t.Errorf("SettingKey(%q).IsValid() = %v, want %v", tt.key, isValid, tt.want)
			}
			if tt.wantErr {
				if len(errs) == 0 {
					t.Fatalf("SettingKey(%q).IsValid() returned no errors, want error", tt.key)
				}
				if !errors.Is(errs[0], ErrInvalidSettingKey) {
					t.Errorf("error should wrap ErrInvalidSettingKey, got: %v", errs[0])
				}
			} else if len(errs) > 0 {
				t.Errorf("SettingKey(%q).IsValid() returned unexpected errors: %v", tt.key, errs)
			}
		})
	}
}
