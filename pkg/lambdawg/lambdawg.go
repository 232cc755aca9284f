// Package lambdawg is the public embeddable API: a thin re-export of
// internal/driver for programs that want to compile or check Lambdawg
// source without shelling out to the cmd/lambdawg CLI.
package lambdawg

import "github.com/lambdawg/lambdawg/internal/driver"

// Options configures a single Compile or Check call.
type Options = driver.Options

// Result is what Compile and Check return.
type Result = driver.Result

// Compile lexes, parses, type-checks, and emits JavaScript for src,
// short-circuiting at the first stage that reports an error.
func Compile(src string, opts Options) Result {
	return driver.Compile(src, opts)
}

// Check runs every validation stage (lexer, parser, inferer) without
// emitting code, for callers that only want diagnostics.
func Check(src string, opts Options) Result {
	return driver.Check(src, opts)
}
