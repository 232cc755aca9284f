// Package diagnostics defines the diagnostic record every compiler stage
// reports through and the ordered bag the driver collects them into.
package diagnostics

import (
	"fmt"

	"github.com/lambdawg/lambdawg/internal/source"
)

// Severity classifies how a diagnostic should be treated by a caller.
type Severity int

const (
	Error Severity = iota
	Warning
	Info
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	default:
		return "unknown"
	}
}

// Code is a stable 4-character diagnostic identifier (spec.md §6.2).
type Code string

const (
	// Lexer.
	LUnexpectedChar         Code = "L001"
	LUnterminatedString     Code = "L002"
	LUnterminatedBlockCmt   Code = "L003"
	LInvalidNumber          Code = "L004"
	LInvalidEscape          Code = "L005"

	// Parser.
	PUnexpectedToken  Code = "P001"
	PExpectedExpr     Code = "P002"
	PExpectedIdent    Code = "P003"
	PExpectedType     Code = "P004"
	PUnclosedParen    Code = "P005"
	PUnclosedBrace    Code = "P006"
	PUnclosedBracket  Code = "P007"
	PInvalidPattern   Code = "P008"
	PInvalidAssign    Code = "P009"

	// Type inference.
	TMismatch         Code = "T001"
	TUndefinedVar     Code = "T002"
	TUndefinedType    Code = "T003"
	TNotAFunction     Code = "T004"
	TWrongArity       Code = "T005"
	TInfiniteType     Code = "T006"
	TDuplicateField   Code = "T007"
	TMissingField     Code = "T008"
	TNonExhaustive    Code = "T009"
	TEffectOutsideDo  Code = "T010"
	TUnresolvedAmbient Code = "T011"

	// Module / driver.
	MInternal       Code = "M001"
	MStageSkipped   Code = "M002"
	MUnsupportedJS  Code = "M003"
)

// Diagnostic is a single reported problem or note.
type Diagnostic struct {
	Severity     Severity
	Code         Code
	Message      string
	Span         source.Span
	Source       string // full source text, attached by the driver
	Filename     string // attached by the driver
	Hints        []string
	InvocationID string // attached by the driver, for log correlation
}

func New(severity Severity, code Code, span source.Span, message string) Diagnostic {
	return Diagnostic{Severity: severity, Code: code, Span: span, Message: message}
}

// NewError builds an error-severity diagnostic.
func NewError(code Code, span source.Span, message string) Diagnostic {
	return New(Error, code, span, message)
}

// NewErrorf builds an error-severity diagnostic with a formatted message.
func NewErrorf(code Code, span source.Span, format string, args ...interface{}) Diagnostic {
	return New(Error, code, span, fmt.Sprintf(format, args...))
}

// NewWarning builds a warning-severity diagnostic.
func NewWarning(code Code, span source.Span, message string) Diagnostic {
	return New(Warning, code, span, message)
}

// WithHint returns a copy of d with an additional hint appended.
func (d Diagnostic) WithHint(hint string) Diagnostic {
	d.Hints = append(d.Hints, hint)
	return d
}

func (d Diagnostic) String() string {
	loc := d.Span.Start.String()
	if d.Filename != "" {
		loc = d.Filename + ":" + loc
	}
	return fmt.Sprintf("%s: %s [%s] %s", loc, d.Severity, d.Code, d.Message)
}

// Bag accumulates diagnostics in production order; it never deduplicates
// (spec.md §5 — "deduplication is not performed").
type Bag struct {
	items []Diagnostic
}

// Add appends a diagnostic to the bag.
func (b *Bag) Add(d Diagnostic) {
	b.items = append(b.items, d)
}

// AddAll appends every diagnostic in ds to the bag, preserving order.
func (b *Bag) AddAll(ds []Diagnostic) {
	b.items = append(b.items, ds...)
}

// All returns every diagnostic recorded so far, in production order.
func (b *Bag) All() []Diagnostic {
	return b.items
}

// HasErrors reports whether any diagnostic in the bag is error-severity.
func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// Errors returns only the error-severity diagnostics.
func (b *Bag) Errors() []Diagnostic {
	return b.filter(Error)
}

// Warnings returns only the warning-severity diagnostics.
func (b *Bag) Warnings() []Diagnostic {
	return b.filter(Warning)
}

func (b *Bag) filter(sev Severity) []Diagnostic {
	var out []Diagnostic
	for _, d := range b.items {
		if d.Severity == sev {
			out = append(out, d)
		}
	}
	return out
}

// Attach sets Source and Filename on every diagnostic currently in the
// bag that doesn't already carry one. The parser calls it with its
// filename, and the driver calls it once after the stages have run, so
// that diagnostics from every stage carry the same context (spec.md §4.5).
func (b *Bag) Attach(src, filename string) {
	for i := range b.items {
		if b.items[i].Source == "" {
			b.items[i].Source = src
		}
		if b.items[i].Filename == "" {
			b.items[i].Filename = filename
		}
	}
}

// AttachInvocation stamps every diagnostic currently in the bag with
// invocationID, for log correlation across a single compile/check call
// (SPEC_FULL.md §11, google/uuid).
func (b *Bag) AttachInvocation(invocationID string) {
	for i := range b.items {
		b.items[i].InvocationID = invocationID
	}
}
