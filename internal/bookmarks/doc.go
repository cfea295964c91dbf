// SPDX-License-Identifier: MPL-2.0

// Package bookmarks renders surfraw's bookmarks file from a TOML source.
//
// The source file is a flat TOML table of name = "url" pairs; the rendered
// document is one "name url" line per bookmark, sorted by name. surfraw
// splits each line on whitespace, so bookmark names must be single words.
package bookmarks
