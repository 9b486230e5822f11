package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Scan  bool
	Diff  bool
	Patch bool
	REPL  bool
}

var d *debug

func init() {
	Reload()
}

// Reload re-reads the PSON_DEBUG_* environment variables.
func Reload() {
	d = &debug{}
	d.Scan = boolEnv("PSON_DEBUG_SCAN")
	d.Diff = boolEnv("PSON_DEBUG_DIFF")
	d.Patch = boolEnv("PSON_DEBUG_PATCH")
	d.REPL = boolEnv("PSON_DEBUG_REPL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Scan() bool {
	return d.Scan
}
func Diff() bool {
	return d.Diff
}
func Patch() bool {
	return d.Patch
}
func REPL() bool {
	return d.REPL
}
