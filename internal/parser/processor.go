package parser

import "github.com/lambdawg/lambdawg/internal/pipeline"

// Processor runs the parser as the pipeline's second stage, grounded on
// the teacher's ParserProcessor (github.com/funvibe/funxy/internal/
// parser/processor.go): construct the stage's own component over the
// previous stage's output and fold its diagnostics into the shared bag.
type Processor struct{}

func (Processor) Process(ctx *pipeline.Context) *pipeline.Context {
	prog, diags := Parse(ctx.Tokens, ctx.Filename)
	ctx.AST = prog
	ctx.Diags.AddAll(diags.All())
	return ctx
}
