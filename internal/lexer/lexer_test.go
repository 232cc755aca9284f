package lexer_test

import (
	"testing"

	"github.com/lambdawg/lambdawg/internal/lexer"
	"github.com/lambdawg/lambdawg/internal/token"
)

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func TestTokenizeKeywordsAndIdents(t *testing.T) {
	toks, diags := lexer.New("let x = Foo").Tokenize()
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	want := []token.Kind{token.LET, token.IDENT_LOWER, token.ASSIGN, token.IDENT_UPPER, token.EOF}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestTokenizeRadixIntegers(t *testing.T) {
	cases := []struct {
		input string
		want  int64
	}{
		{"0xFF", 255},
		{"0b1010", 10},
		{"0o755", 493},
		{"1_000", 1000},
	}
	for _, c := range cases {
		toks, diags := lexer.New(c.input).Tokenize()
		if len(diags) != 0 {
			t.Fatalf("%s: unexpected diagnostics: %v", c.input, diags)
		}
		if toks[0].Kind != token.INT {
			t.Fatalf("%s: expected INT, got %v", c.input, toks[0].Kind)
		}
		if toks[0].Literal.(int64) != c.want {
			t.Fatalf("%s: got %v want %d", c.input, toks[0].Literal, c.want)
		}
	}
}

func TestTokenizeFloat(t *testing.T) {
	toks, _ := lexer.New("3.14e2").Tokenize()
	if toks[0].Kind != token.FLOAT {
		t.Fatalf("expected FLOAT, got %v", toks[0].Kind)
	}
	if toks[0].Literal.(float64) != 314.0 {
		t.Fatalf("got %v want 314.0", toks[0].Literal)
	}
}

func TestTokenizeString(t *testing.T) {
	toks, diags := lexer.New(`"hello\nworld"`).Tokenize()
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if toks[0].Kind != token.STRING {
		t.Fatalf("expected STRING, got %v", toks[0].Kind)
	}
	if toks[0].Literal.(string) != "hello\nworld" {
		t.Fatalf("got %q", toks[0].Literal)
	}
}

func TestUnterminatedStringDiagnostic(t *testing.T) {
	_, diags := lexer.New(`"unterminated`).Tokenize()
	if len(diags) != 1 {
		t.Fatalf("expected exactly 1 diagnostic, got %d: %v", len(diags), diags)
	}
	if diags[0].Code != "L002" {
		t.Fatalf("expected L002, got %s", diags[0].Code)
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	_, diags := lexer.New("let x = 1 {- oops").Tokenize()
	if len(diags) != 1 || diags[0].Code != "L003" {
		t.Fatalf("expected single L003 diagnostic, got %v", diags)
	}
}

func TestNestedBlockComment(t *testing.T) {
	toks, diags := lexer.New("let x = {- outer {- inner -} still -} 1").Tokenize()
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	// let x = 1 EOF
	want := []token.Kind{token.LET, token.IDENT_LOWER, token.ASSIGN, token.INT, token.EOF}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestOperatorMaximalMunch(t *testing.T) {
	toks, _ := lexer.New("a |> b == c != d <= e >= f && g || h => i -> j ... k").Tokenize()
	want := []token.Kind{
		token.IDENT_LOWER, token.PIPELINE,
		token.IDENT_LOWER, token.EQ,
		token.IDENT_LOWER, token.NOT_EQ,
		token.IDENT_LOWER, token.LTE,
		token.IDENT_LOWER, token.GTE,
		token.IDENT_LOWER, token.AND,
		token.IDENT_LOWER, token.OR,
		token.IDENT_LOWER, token.ARROW_FAT,
		token.IDENT_LOWER, token.ARROW_THIN,
		token.IDENT_LOWER, token.ELLIPSIS,
		token.IDENT_LOWER, token.EOF,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestSpansCoverSource(t *testing.T) {
	src := "let x = 1"
	toks, _ := lexer.New(src).Tokenize()
	if toks[0].Span.Start.Offset != 0 {
		t.Fatalf("expected first token to start at offset 0, got %d", toks[0].Span.Start.Offset)
	}
	for _, tok := range toks[:len(toks)-1] {
		if got := src[tok.Span.Start.Offset:tok.Span.End.Offset]; got != tok.Lexeme {
			t.Fatalf("token %v: span covers %q, want %q", tok.Kind, got, tok.Lexeme)
		}
	}
}

func TestWildcardVsIdentifier(t *testing.T) {
	toks, _ := lexer.New("_ _foo").Tokenize()
	if toks[0].Kind != token.WILDCARD {
		t.Fatalf("expected WILDCARD, got %v", toks[0].Kind)
	}
	if toks[1].Kind != token.IDENT_LOWER {
		t.Fatalf("expected IDENT_LOWER for _foo, got %v", toks[1].Kind)
	}
}
