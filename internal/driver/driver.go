// Package driver is the compiler's public entry point: it wires lexer,
// parser, inferer, and emitter into the short-circuiting sequence of
// spec.md §4.5 and packages the outcome into a single Result.
package driver

import (
	"github.com/google/uuid"

	"github.com/lambdawg/lambdawg/internal/ast"
	"github.com/lambdawg/lambdawg/internal/diagnostics"
	"github.com/lambdawg/lambdawg/internal/emitter"
	"github.com/lambdawg/lambdawg/internal/inferer"
	"github.com/lambdawg/lambdawg/internal/lexer"
	"github.com/lambdawg/lambdawg/internal/parser"
	"github.com/lambdawg/lambdawg/internal/pipeline"
	"github.com/lambdawg/lambdawg/internal/source"
)

// Options configures a single compile/check call (spec.md §4.5).
type Options struct {
	Filename      string
	SkipTypeCheck bool
	EmitOptions   EmitOptions
}

// EmitOptions reserves a place for emission knobs; the emitter currently
// accepts none, matching spec.md §4.4's "two-space indent, no
// minification" being non-negotiable rather than configurable.
type EmitOptions struct{}

// Result is what every driver entry point returns.
type Result struct {
	Success      bool
	Errors       []diagnostics.Diagnostic
	Warnings     []diagnostics.Diagnostic
	Code         string // empty unless emission ran
	AST          *ast.Program
	InvocationID string
}

// Compile runs lexer -> parser -> (optional) inferer -> emitter over
// source, short-circuiting at the first stage that reports an error.
func Compile(src string, opts Options) (result Result) {
	id := uuid.NewString()
	defer recoverInternal(&result, id)

	ctx := run(src, opts, true)
	return toResult(ctx, id)
}

// Check runs every validation stage (lexer, parser, inferer) without
// emitting code.
func Check(src string, opts Options) (result Result) {
	id := uuid.NewString()
	defer recoverInternal(&result, id)

	ctx := run(src, opts, false)
	return toResult(ctx, id)
}

func run(src string, opts Options, emit bool) *pipeline.Context {
	stages := []pipeline.Processor{lexer.Processor{}, parser.Processor{}, inferer.Processor{}}
	if emit {
		stages = append(stages, emitter.Processor{})
	}

	ctx := &pipeline.Context{
		Source:        src,
		Filename:      opts.Filename,
		SkipTypeCheck: opts.SkipTypeCheck,
	}
	ctx = pipeline.New(stages...).Run(ctx)
	ctx.Diags.Attach(src, opts.Filename)
	return ctx
}

func toResult(ctx *pipeline.Context, id string) Result {
	ctx.Diags.AttachInvocation(id)
	return Result{
		Success:      !ctx.Diags.HasErrors(),
		Errors:       ctx.Diags.Errors(),
		Warnings:     ctx.Diags.Warnings(),
		Code:         ctx.Code,
		AST:          ctx.AST,
		InvocationID: id,
	}
}

// recoverInternal converts a stage panic into an MInternal diagnostic
// rather than propagating it to the caller, per spec.md's ambient
// error-handling expectations (SPEC_FULL.md §10.1).
func recoverInternal(result *Result, id string) {
	if r := recover(); r != nil {
		*result = Result{
			Success: false,
			Errors: []diagnostics.Diagnostic{
				diagnostics.NewErrorf(diagnostics.MInternal, source.Span{}, "internal compiler error: %v", r),
			},
			InvocationID: id,
		}
	}
}
