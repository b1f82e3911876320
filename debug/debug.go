// Package debug provides env-var gated debug logging for the kmap
// pipeline.  Set KMAP_DEBUG_GROUPS, KMAP_DEBUG_COVER, KMAP_DEBUG_EVAL or
// KMAP_DEBUG_VERIFY to a true value to trace the corresponding stage on
// stderr.
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Groups bool
	Cover  bool
	Eval   bool
	Verify bool
}

var d *debug

func init() {
	d = &debug{}
	d.Groups = boolEnv("KMAP_DEBUG_GROUPS")
	d.Cover = boolEnv("KMAP_DEBUG_COVER")
	d.Eval = boolEnv("KMAP_DEBUG_EVAL")
	d.Verify = boolEnv("KMAP_DEBUG_VERIFY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Groups() bool {
	return d.Groups
}
func Cover() bool {
	return d.Cover
}
func Eval() bool {
	return d.Eval
}
func Verify() bool {
	return d.Verify
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}

func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
