// Package token defines the closed vocabulary of lexical tokens that the
// lexer produces and the parser consumes.
package token

import "github.com/lambdawg/lambdawg/internal/source"

// Kind identifies what a token represents. The set is closed: every
// lexeme the lexer can produce maps to exactly one Kind.
type Kind int

const (
	ILLEGAL Kind = iota
	EOF

	// Literals.
	INT
	FLOAT
	STRING
	CHAR

	// Identifiers, distinguished by leading-letter case.
	IDENT_LOWER // value-ident: foo, bar_baz
	IDENT_UPPER // type-ident: Foo, BarBaz
	WILDCARD    // bare `_`

	// Keywords.
	LET
	TYPE
	MODULE
	IMPORT
	PRIVATE
	IF
	THEN
	ELSE
	MATCH
	WITH
	DO
	IN
	PROVIDE
	PROVIDING
	SEQ
	TRUE
	FALSE
	JS
	AS

	// Punctuators and operators.
	PLUS
	MINUS
	STAR
	SLASH
	PERCENT
	ASSIGN
	EQ
	NOT_EQ
	LT
	GT
	LTE
	GTE
	AND
	OR
	BANG
	PIPE
	ARROW_FAT  // =>
	ARROW_THIN // ->
	PIPELINE   // |>
	QUESTION
	COLON
	COMMA
	DOT
	ELLIPSIS
	UNDERSCORE
	AT
	LPAREN
	RPAREN
	LBRACE
	RBRACE
	LBRACKET
	RBRACKET

	NEWLINE
)

var keywords = map[string]Kind{
	"let":       LET,
	"type":      TYPE,
	"module":    MODULE,
	"import":    IMPORT,
	"private":   PRIVATE,
	"if":        IF,
	"then":      THEN,
	"else":      ELSE,
	"match":     MATCH,
	"with":      WITH,
	"do":        DO,
	"in":        IN,
	"provide":   PROVIDE,
	"providing": PROVIDING,
	"seq":       SEQ,
	"true":      TRUE,
	"false":     FALSE,
	"js":        JS,
	"as":        AS,
}

// LookupIdent classifies an identifier-shaped lexeme into a keyword kind
// or, failing that, a value/type identifier kind based on leading case.
func LookupIdent(lexeme string) Kind {
	if kind, ok := keywords[lexeme]; ok {
		return kind
	}
	if len(lexeme) > 0 && lexeme[0] >= 'A' && lexeme[0] <= 'Z' {
		return IDENT_UPPER
	}
	return IDENT_LOWER
}

// Token is a single lexical unit: its kind, its literal text, the span
// it occupies in the source, and (for literals) the decoded value.
type Token struct {
	Kind    Kind
	Lexeme  string
	Span    source.Span
	Literal interface{} // decoded int64/float64/string/rune for literal kinds
}

func (t Token) String() string {
	if t.Lexeme == "" {
		return t.Kind.String()
	}
	return t.Lexeme
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

var kindNames = map[Kind]string{
	ILLEGAL:     "ILLEGAL",
	EOF:         "EOF",
	INT:         "INT",
	FLOAT:       "FLOAT",
	STRING:      "STRING",
	CHAR:        "CHAR",
	IDENT_LOWER: "IDENT_LOWER",
	IDENT_UPPER: "IDENT_UPPER",
	WILDCARD:    "WILDCARD",
	LET:         "let",
	TYPE:        "type",
	MODULE:      "module",
	IMPORT:      "import",
	PRIVATE:     "private",
	IF:          "if",
	THEN:        "then",
	ELSE:        "else",
	MATCH:       "match",
	WITH:        "with",
	DO:          "do",
	IN:          "in",
	PROVIDE:     "provide",
	PROVIDING:   "providing",
	SEQ:         "seq",
	TRUE:        "true",
	FALSE:       "false",
	JS:          "js",
	AS:          "as",
	PLUS:        "+",
	MINUS:       "-",
	STAR:        "*",
	SLASH:       "/",
	PERCENT:     "%",
	ASSIGN:      "=",
	EQ:          "==",
	NOT_EQ:      "!=",
	LT:          "<",
	GT:          ">",
	LTE:         "<=",
	GTE:         ">=",
	AND:         "&&",
	OR:          "||",
	BANG:        "!",
	PIPE:        "|",
	ARROW_FAT:   "=>",
	ARROW_THIN:  "->",
	PIPELINE:    "|>",
	QUESTION:    "?",
	COLON:       ":",
	COMMA:       ",",
	DOT:         ".",
	ELLIPSIS:    "...",
	UNDERSCORE:  "_",
	AT:          "@",
	LPAREN:      "(",
	RPAREN:      ")",
	LBRACE:      "{",
	RBRACE:      "}",
	LBRACKET:    "[",
	RBRACKET:    "]",
	NEWLINE:     "NEWLINE",
}
