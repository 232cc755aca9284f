package inferer

import "github.com/lambdawg/lambdawg/internal/pipeline"

// Processor runs type inference as the pipeline's third stage. It is
// skipped entirely when the driver's options request it (spec.md §4.5
// "skipTypeCheck").
type Processor struct{}

func (Processor) Process(ctx *pipeline.Context) *pipeline.Context {
	if ctx.SkipTypeCheck || ctx.AST == nil {
		return ctx
	}
	_, diags := Infer(ctx.AST)
	ctx.Diags.AddAll(diags.All())
	return ctx
}
