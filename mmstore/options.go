// SPDX-License-Identifier: MIT

package mmstore

import "io/fs"

const (
	// DefaultFileMode is the permission used by Create and Save.
	DefaultFileMode fs.FileMode = 0o644

	// DefaultFlushOnClose flushes dirty pages before unmapping.
	DefaultFlushOnClose = true
)

// Option configures Create, Open and Save.
type Option func(*Options)

// Options holds the effective configuration.
type Options struct {
	mode         fs.FileMode
	flushOnClose bool
}

// WithFileMode sets the permission of newly created files.
func WithFileMode(mode fs.FileMode) Option {
	return func(o *Options) { o.mode = mode }
}

// WithFlushOnClose toggles the flush performed by Close.
func WithFlushOnClose(on bool) Option {
	return func(o *Options) { o.flushOnClose = on }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		mode:         DefaultFileMode,
		flushOnClose: DefaultFlushOnClose,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
