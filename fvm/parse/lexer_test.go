// Copyright 2019 The fpl authors. All rights reserved.
// Use of this source code is governed by an AGPL license that can be found in the LICENSE file.
package parse

import (
	"testing"

	"github.com/fpl-lang/fpl/fvm/tok"
)

func lexKinds(t *testing.T, source string) []tok.Kind {
	t.Helper()
	lexer := NewLexer("Test.fpl", source)
	kinds := []tok.Kind{}
	for {
		token, e := lexer.NextToken()
		if e != nil {
			t.Fatalf("lex failed: %s", e.String())
		}
		kinds = append(kinds, token.Kind)
		if token.Kind == tok.EndOfFile {
			return kinds
		}
	}
}

func expectKinds(t *testing.T, source string, expected ...tok.Kind) {
	t.Helper()
	kinds := lexKinds(t, source)
	if len(kinds) != len(expected) {
		t.Fatalf("unexpected token count: %d, want %d", len(kinds), len(expected))
	}
	for i, kind := range kinds {
		if kind != expected[i] {
			t.Fatalf("unexpected token %d: %s, want %s", i, kind, expected[i])
		}
	}
}

func TestLexerKinds(t *testing.T) {
	expectKinds(t, `let a = 1`, tok.Let, tok.Name, tok.Equal, tok.Integer, tok.EndOfFile)
	expectKinds(t, `export b = a + 2`, tok.Export, tok.Name, tok.Equal, tok.Name, tok.Plus, tok.Integer, tok.EndOfFile)
	expectKinds(t, `{ ( ) } ,`, tok.OpenBrace, tok.OpenParenthesis, tok.CloseParenthesis, tok.CloseBrace, tok.Comma, tok.EndOfFile)
	expectKinds(t, `+ - * / !`, tok.Plus, tok.Minus, tok.Asterisk, tok.Slash, tok.ExclamationMark, tok.EndOfFile)
	expectKinds(t, `== != < > <= >=`, tok.EqualEqual, tok.ExclamationMarkEqual, tok.LessThan, tok.GreaterThan, tok.LessThanEqual, tok.GreaterThanEqual, tok.EndOfFile)
	expectKinds(t, `= += -= *= /=`, tok.Equal, tok.PlusEqual, tok.MinusEqual, tok.AsteriskEqual, tok.SlashEqual, tok.EndOfFile)
	expectKinds(t, `<- ->`, tok.LeftArrow, tok.RightArrow, tok.EndOfFile)
	expectKinds(t, "a\nb", tok.Name, tok.Newline, tok.Name, tok.EndOfFile)
}

func TestLexerComments(t *testing.T) {
	expectKinds(t, "1 // a comment\n2", tok.Integer, tok.Newline, tok.Integer, tok.EndOfFile)
	expectKinds(t, `// only a comment`, tok.EndOfFile)
}

func TestLexerIntegerBases(t *testing.T) {
	cases := []struct {
		Source string
		Value  uint64
	}{
		{`0`, 0},
		{`42`, 42},
		{`0b101`, 5},
		{`0o17`, 15},
		{`0d42`, 42},
		{`0xff`, 255},
		{`0xFF`, 255},
		{`1_000_000`, 1000000},
		{`0b1010_1010`, 170},
	}
	for _, c := range cases {
		lexer := NewLexer("Test.fpl", c.Source)
		token, e := lexer.NextToken()
		if e != nil {
			t.Fatalf("%s: lex failed: %s", c.Source, e.String())
		}
		if token.Kind != tok.Integer {
			t.Fatalf("%s: unexpected kind: %s", c.Source, token.Kind)
		}
		if token.Int != c.Value {
			t.Fatalf("%s: unexpected value: %d, want %d", c.Source, token.Int, c.Value)
		}
		if token.IntOverflow {
			t.Fatalf("%s: unexpected overflow", c.Source)
		}
	}
}

func TestLexerIntegerDigitTooBig(t *testing.T) {
	lexer := NewLexer("Test.fpl", `0b102`)
	_, e := lexer.NextToken()
	if e == nil {
		t.Fatalf("lex succeeded unexpectedly")
	}
	expected := `Test.fpl:1:5: Compile Error: Character '2' is too big for base '2'`
	if e.String() != expected {
		t.Fatalf("unexpected rendering: %s", e.String())
	}
}

func TestLexerIntegerOverflow(t *testing.T) {

	{ // largest 64 bit value still fits
		lexer := NewLexer("Test.fpl", `18446744073709551615`)
		token, e := lexer.NextToken()
		if e != nil {
			t.Fatalf("lex failed: %s", e.String())
		}
		if token.IntOverflow {
			t.Fatalf("unexpected overflow")
		}
		if token.Int != 18446744073709551615 {
			t.Fatalf("unexpected value: %d", token.Int)
		}
	}

	{ // one beyond flags overflow, lexing still succeeds
		lexer := NewLexer("Test.fpl", `18446744073709551616`)
		token, e := lexer.NextToken()
		if e != nil {
			t.Fatalf("lex failed: %s", e.String())
		}
		if !token.IntOverflow {
			t.Fatalf("missing overflow flag")
		}
		if token.Text != `18446744073709551616` {
			t.Fatalf("unexpected text: %s", token.Text)
		}
	}
}

func TestLexerLocations(t *testing.T) {
	lexer := NewLexer("Test.fpl", "a\nbc")

	a, e := lexer.NextToken()
	if e != nil {
		t.Fatalf("lex failed: %s", e.String())
	}
	if a.Location.Line != 1 || a.Location.Column != 1 || a.Length != 1 {
		t.Fatalf("unexpected location: %v", a.Location)
	}

	newline, e := lexer.NextToken()
	if e != nil {
		t.Fatalf("lex failed: %s", e.String())
	}
	if newline.Location.Line != 1 || newline.Location.Column != 2 {
		t.Fatalf("unexpected location: %v", newline.Location)
	}

	bc, e := lexer.NextToken()
	if e != nil {
		t.Fatalf("lex failed: %s", e.String())
	}
	if bc.Location.Line != 2 || bc.Location.Column != 1 || bc.Length != 2 {
		t.Fatalf("unexpected location: %v", bc.Location)
	}
	if bc.Text != "bc" {
		t.Fatalf("unexpected text: %s", bc.Text)
	}
}

func TestLexerUnexpectedCharacter(t *testing.T) {
	lexer := NewLexer("Test.fpl", `$`)
	_, e := lexer.NextToken()
	if e == nil {
		t.Fatalf("lex succeeded unexpectedly")
	}
	if e.String() != `Test.fpl:1:1: Compile Error: Unexpected '$'` {
		t.Fatalf("unexpected rendering: %s", e.String())
	}
}

func TestLexerPeekDoesNotConsume(t *testing.T) {
	lexer := NewLexer("Test.fpl", `let a`)
	for i := 0; i < 3; i++ {
		kind, e := lexer.PeekKind()
		if e != nil {
			t.Fatalf("peek failed: %s", e.String())
		}
		if kind != tok.Let {
			t.Fatalf("unexpected kind: %s", kind)
		}
	}
	token, e := lexer.NextToken()
	if e != nil {
		t.Fatalf("lex failed: %s", e.String())
	}
	if token.Kind != tok.Let {
		t.Fatalf("unexpected kind: %s", token.Kind)
	}
}
