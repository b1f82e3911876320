package eval

import (
	"errors"
	"fmt"
)

var ErrRoundTrip = errors.New("rendering does not reproduce table")

func roundTripErr(v bool, row int, got, want bool) error {
	kind := "sop"
	if !v {
		kind = "pos"
	}
	return fmt.Errorf("%w: %s row %d evaluates to %t, table says %t",
		ErrRoundTrip, kind, row, got, want)
}
