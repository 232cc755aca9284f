package emitter

import "github.com/lambdawg/lambdawg/internal/pipeline"

// Processor runs code generation as the pipeline's final stage.
type Processor struct{}

func (Processor) Process(ctx *pipeline.Context) *pipeline.Context {
	if ctx.AST == nil {
		return ctx
	}
	ctx.Code = Emit(ctx.AST)
	return ctx
}
