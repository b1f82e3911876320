package parse

import (
	"errors"
	"fmt"
)

var (
	ErrEmpty           = errors.New("empty table")
	ErrVarName         = errors.New("variable names must be a single character")
	ErrDuplicateVar    = errors.New("duplicate variable")
	ErrBadToken        = errors.New("bad token")
	ErrRowArity        = errors.New("bad row arity")
	ErrIncompleteTable = errors.New("incomplete table")
	ErrDuplicateRow    = errors.New("duplicate row")
)

func badTokenErr(line int, tok string) error {
	return fmt.Errorf("%w: line %d: %q is not 0 or 1", ErrBadToken, line, tok)
}

func rowArityErr(line, got, want int) error {
	return fmt.Errorf("%w: line %d has %d values, want %d inputs and an outcome",
		ErrRowArity, line, got, want)
}
