package lexer

import "github.com/lambdawg/lambdawg/internal/pipeline"

// Processor runs the lexer as the pipeline's first stage.
type Processor struct{}

func (Processor) Process(ctx *pipeline.Context) *pipeline.Context {
	l := New(ctx.Source)
	toks, diags := l.Tokenize()
	ctx.Tokens = toks
	ctx.Diags.AddAll(diags)
	return ctx
}
