// SPDX-License-Identifier: MPL-2.0

package cueutil

// DefaultMaxFileSize is the maximum accepted input size in bytes. A surfconf
// config file is a few kilobytes at most; anything near this limit is either
// a mistake or an attempt to exhaust memory during CUE compilation.
const DefaultMaxFileSize int64 = 1 << 20

type options struct {
	filename    string
	maxFileSize int64
	concrete    bool
}

// Option configures a ParseAndDecode call.
type Option func(*options)

func defaultOptions() options {
	return options{
		maxFileSize: DefaultMaxFileSize,
	}
}

// WithFilename sets the filename used in error messages.
func WithFilename(name string) Option {
	return func(o *options) {
		o.filename = name
	}
}

// WithMaxFileSize overrides the maximum accepted input size in bytes.
func WithMaxFileSize(size int64) Option {
	return func(o *options) {
		o.maxFileSize = size
	}
}

// WithConcrete requires all values to be concrete during validation.
// Leave unset for schemas whose fields are optional.
func WithConcrete() Option {
	return func(o *options) {
		o.concrete = true
	}
}
