// SPDX-License-Identifier: MIT

package render

import "errors"

var (
	// ErrFormat indicates an output format gonum/plot cannot write.
	ErrFormat = errors.New("render: unsupported format")

	// ErrSize indicates a non-positive canvas size or a palette shorter than MinColors.
	ErrSize = errors.New("render: invalid size")
)
