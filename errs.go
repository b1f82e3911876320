package kmap

import (
	"errors"
	"fmt"
)

var (
	ErrAxisTooLarge = errors.New("more than 2 variables on one axis")
	ErrRowArity     = errors.New("row arity")
	ErrDuplicateVar = errors.New("duplicate variable")
)

func axisTooLargeErr(axis Axis, vars []byte) error {
	return fmt.Errorf("%w: %s axis has %d (%q)", ErrAxisTooLarge, axis, len(vars), vars)
}

func rowArityErr(row, got, want int) error {
	return fmt.Errorf("%w: row %d has %d inputs, table declares %d variables",
		ErrRowArity, row, got, want)
}

func duplicateVarErr(v byte) error {
	return fmt.Errorf("%w: %q", ErrDuplicateVar, v)
}
