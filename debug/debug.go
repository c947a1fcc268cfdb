// Package debug holds env-gated debug switches for the patch pipeline.
// Set SQXPATCH_DEBUG_<STAGE>=1 to trace a stage on stderr.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Expand bool
	Plan   bool
	Apply  bool
	Write  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Expand = boolEnv("SQXPATCH_DEBUG_EXPAND")
	d.Plan = boolEnv("SQXPATCH_DEBUG_PLAN")
	d.Apply = boolEnv("SQXPATCH_DEBUG_APPLY")
	d.Write = boolEnv("SQXPATCH_DEBUG_WRITE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Expand() bool {
	return d.Expand
}
func Plan() bool {
	return d.Plan
}
func Apply() bool {
	return d.Apply
}
func Write() bool {
	return d.Write
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
