// SPDX-License-Identifier: MIT

package traits

import (
	"fmt"
	"reflect"
)

// RequireReadMatrix returns nil when t is a read matrix, otherwise the first
// missing capability (ErrNoValueType → ErrNoShape → ErrNoReader) wrapped
// with the type name.
func RequireReadMatrix(t reflect.Type) error {
	tr := Of(t)
	switch {
	case !tr.HasValueType:
		return requireErrorf(t, ErrNoValueType)
	case !tr.HasShape:
		return requireErrorf(t, ErrNoShape)
	case !tr.HasReader:
		return requireErrorf(t, ErrNoReader)
	}

	return nil
}

// RequireReadWriteMatrix extends RequireReadMatrix with ErrNoWriter.
func RequireReadWriteMatrix(t reflect.Type) error {
	if err := RequireReadMatrix(t); err != nil {
		return err
	}
	if !Of(t).HasWriter {
		return requireErrorf(t, ErrNoWriter)
	}

	return nil
}

func requireErrorf(t reflect.Type, err error) error {
	return fmt.Errorf("traits: %s: %w", typeName(t), err)
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	return t.String()
}
