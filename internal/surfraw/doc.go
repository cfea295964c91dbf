// SPDX-License-Identifier: MPL-2.0

// Package surfraw renders surfraw's run-time configuration.
//
// The rendering pipeline is a chain of pure functions: the browser
// configuration is projected onto surfraw's reserved setting keys, the
// user's free-form settings are checked for collisions against those keys,
// and the disjoint union is rendered as sorted SURFRAW_<key>=<value> lines.
// The document is also parse-checked as shell, since surfraw sources it
// with /bin/sh.
package surfraw
