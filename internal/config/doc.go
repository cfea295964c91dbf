// SPDX-License-Identifier: MPL-2.0

// Package config handles surfconf configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/surfconf/config.cue (or XDG equivalent on Linux,
// ~/Library/Application Support/surfconf/config.cue on macOS, %APPDATA%\surfconf\config.cue
// on Windows). The file declares the typed browser configuration, the free-form surfraw
// settings block, and an optional bookmarks file reference.
//
// Configuration validation is performed against a CUE schema (config_schema.cue) to ensure
// type safety and provide clear error messages for invalid configurations. The settings
// block is taken from the CUE decode rather than from Viper's key store, because Viper
// lowercases keys and surfraw setting keys are case-preserved.
package config
