// Package pipeline composes the compiler's stages (lex, parse, infer,
// emit) into the short-circuiting sequence the driver runs, adapted from
// the teacher's generic Processor/Pipeline composition to the concrete
// stage context a Lambdawg compilation carries (spec.md §4.5).
package pipeline

import (
	"github.com/lambdawg/lambdawg/internal/ast"
	"github.com/lambdawg/lambdawg/internal/diagnostics"
	"github.com/lambdawg/lambdawg/internal/token"
	"github.com/lambdawg/lambdawg/internal/types"
)

// Context carries a single compilation's state from stage to stage.
// Each processor reads what earlier stages produced and fills in its own
// field, accumulating diagnostics into Diags rather than returning an
// error — the driver decides after each stage whether to continue.
type Context struct {
	Source   string
	Filename string

	SkipTypeCheck bool

	Tokens []token.Token
	AST    *ast.Program
	Env    *types.Env
	Code   string

	Diags diagnostics.Bag
}

// Processor performs one compiler stage over a Context, mutating it and
// returning it for the next stage.
type Processor interface {
	Process(ctx *Context) *Context
}

// Pipeline is an ordered sequence of stages.
type Pipeline struct {
	stages []Processor
}

// New builds a Pipeline over stages, run in order.
func New(stages ...Processor) *Pipeline {
	return &Pipeline{stages: stages}
}

// Run executes each stage in order, short-circuiting at the earliest
// stage whose Diags carries an error — later stages assume a
// well-formed input from the ones before them (spec.md §4.5).
func (p *Pipeline) Run(initial *Context) *Context {
	ctx := initial
	for _, stage := range p.stages {
		ctx = stage.Process(ctx)
		if ctx.Diags.HasErrors() {
			break
		}
	}
	return ctx
}
