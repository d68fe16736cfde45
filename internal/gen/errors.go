package gen

import "errors"

var (
	ErrOddKeyValueCount = errors.New("odd number of keys and values")
	ErrPackageMismatch  = errors.New("file does not belong to the package")
)
