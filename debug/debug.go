package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse   bool
	Merge   bool
	Convert bool
	Patch   bool
	Eval    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("YV_DEBUG_PARSE")
	d.Merge = boolEnv("YV_DEBUG_MERGE")
	d.Convert = boolEnv("YV_DEBUG_CONVERT")
	d.Patch = boolEnv("YV_DEBUG_PATCH")
	d.Eval = boolEnv("YV_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Merge() bool {
	return d.Merge
}
func Convert() bool {
	return d.Convert
}
func Patch() bool {
	return d.Patch
}
func Eval() bool {
	return d.Eval
}
