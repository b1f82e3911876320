package verify

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/kmaptool/kmap"
)

var (
	ErrNotEquivalent = errors.New("formula not equivalent to table")
	ErrUndecided     = errors.New("solver undecided")
)

func notEquivalentErr(v bool, witness kmap.Assignment) error {
	kind := "sop"
	if !v {
		kind = "pos"
	}
	vars := make([]string, 0, len(witness))
	for k := range witness {
		vars = append(vars, string(k))
	}
	sort.Strings(vars)
	parts := make([]string, 0, len(vars))
	for _, k := range vars {
		parts = append(parts, fmt.Sprintf("%s=%t", k, witness[k[0]]))
	}
	return fmt.Errorf("%w: %s differs at %s", ErrNotEquivalent, kind,
		strings.Join(parts, " "))
}
