// SPDX-License-Identifier: MPL-2.0

// Package types provides small validated value types shared across surfconf.
package types
