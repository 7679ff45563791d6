// Copyright 2019 The fpl authors. All rights reserved.
// Use of this source code is governed by an AGPL license that can be found in the LICENSE file.

// Package parse turns source text into a syntax tree.
package parse

import (
	"fmt"
	"math"

	"github.com/fpl-lang/fpl/common"
	"github.com/fpl-lang/fpl/fvm/err"
	"github.com/fpl-lang/fpl/fvm/tok"
)

// Lexer produces tokens from one source file. It carries no lookahead
// state: PeekKind works on a copy.
type Lexer struct {
	filepath string
	source   []rune
	position int
	line     int
	column   int
}

func NewLexer(filepath, source string) *Lexer {
	return &Lexer{
		filepath: filepath,
		source:   []rune(source),
		position: 0,
		line:     1,
		column:   1,
	}
}

func (l *Lexer) currentChar() rune {
	if l.position < len(l.source) {
		return l.source[l.position]
	}
	return 0
}

func (l *Lexer) nextChar() rune {
	current := l.currentChar()
	l.position++
	l.column++
	if current == '\n' {
		l.line++
		l.column = 1
	}
	return current
}

func (l *Lexer) location() common.SourceLocation {
	return common.SourceLocation{
		Filepath: l.filepath,
		Position: l.position,
		Line:     l.line,
		Column:   l.column,
	}
}

func (l *Lexer) token(kind tok.Kind, start common.SourceLocation) tok.Token {
	return tok.Token{
		Kind:     kind,
		Text:     string(l.source[start.Position:l.position]),
		Location: start,
		Length:   l.position - start.Position,
	}
}

func (l *Lexer) singleCharToken(kind tok.Kind) tok.Token {
	start := l.location()
	l.nextChar()
	return l.token(kind, start)
}

func (l *Lexer) doubleCharToken(kind tok.Kind, second rune, secondKind tok.Kind) tok.Token {
	start := l.location()
	l.nextChar()
	if l.currentChar() == second {
		l.nextChar()
		return l.token(secondKind, start)
	}
	return l.token(kind, start)
}

func (l *Lexer) doubleCharToken2(kind tok.Kind, secondA rune, secondKindA tok.Kind, secondB rune, secondKindB tok.Kind) tok.Token {
	start := l.location()
	l.nextChar()
	if l.currentChar() == secondA {
		l.nextChar()
		return l.token(secondKindA, start)
	}
	if l.currentChar() == secondB {
		l.nextChar()
		return l.token(secondKindB, start)
	}
	return l.token(kind, start)
}

// NextToken consumes and returns the next token. Spaces, tabs and line
// comments are skipped; newlines are tokens in their own right.
func (l *Lexer) NextToken() (tok.Token, err.Error) {
	for {
		start := l.location()
		c := l.currentChar()
		switch {

		case c == 0:
			return l.token(tok.EndOfFile, start), nil

		case c == ' ' || c == '\t':
			l.nextChar()
			continue

		case c == '\n':
			l.nextChar()
			if l.currentChar() == '\r' {
				l.nextChar()
			}
			return l.token(tok.Newline, start), nil

		case c == '\r':
			l.nextChar()
			if l.currentChar() == '\n' {
				l.nextChar()
			}
			return l.token(tok.Newline, start), nil

		case isNameStart(c):
			for isNameContinue(l.currentChar()) {
				l.nextChar()
			}
			t := l.token(tok.Name, start)
			switch t.Text {
			case "export":
				t.Kind = tok.Export
			case "let":
				t.Kind = tok.Let
			}
			return t, nil

		case c >= '0' && c <= '9':
			return l.integerToken(start)

		case c == '(':
			return l.singleCharToken(tok.OpenParenthesis), nil
		case c == ')':
			return l.singleCharToken(tok.CloseParenthesis), nil
		case c == '{':
			return l.singleCharToken(tok.OpenBrace), nil
		case c == '}':
			return l.singleCharToken(tok.CloseBrace), nil
		case c == ',':
			return l.singleCharToken(tok.Comma), nil

		case c == '+':
			return l.doubleCharToken(tok.Plus, '=', tok.PlusEqual), nil
		case c == '-':
			return l.doubleCharToken2(tok.Minus, '=', tok.MinusEqual, '>', tok.RightArrow), nil
		case c == '*':
			return l.doubleCharToken(tok.Asterisk, '=', tok.AsteriskEqual), nil

		case c == '/':
			l.nextChar()
			if l.currentChar() == '/' {
				for l.currentChar() != '\n' && l.currentChar() != 0 {
					l.nextChar()
				}
				if l.currentChar() == '\r' {
					l.nextChar()
				}
				continue
			}
			if l.currentChar() == '=' {
				l.nextChar()
				return l.token(tok.SlashEqual, start), nil
			}
			return l.token(tok.Slash, start), nil

		case c == '=':
			return l.doubleCharToken(tok.Equal, '=', tok.EqualEqual), nil
		case c == '!':
			return l.doubleCharToken(tok.ExclamationMark, '=', tok.ExclamationMarkEqual), nil
		case c == '<':
			return l.doubleCharToken2(tok.LessThan, '=', tok.LessThanEqual, '-', tok.LeftArrow), nil
		case c == '>':
			return l.doubleCharToken(tok.GreaterThan, '=', tok.GreaterThanEqual), nil

		default:
			l.nextChar()
			return tok.Token{}, err.SyntaxError{
				Loc:     start,
				Problem: fmt.Sprintf("Unexpected '%c'", c),
			}
		}
	}
}

// integerToken lexes an integer literal: a bare decimal or a 0b/0o/0d/0x
// prefixed literal, with underscores allowed as digit separators. The
// magnitude is accumulated in 64 bits; overflow is recorded on the
// token, not reported here.
func (l *Lexer) integerToken(start common.SourceLocation) (tok.Token, err.Error) {
	base := uint64(10)
	if l.currentChar() == '0' {
		l.nextChar()
		switch l.currentChar() {
		case 'b':
			l.nextChar()
			base = 2
		case 'o':
			l.nextChar()
			base = 8
		case 'd':
			l.nextChar()
			base = 10
		case 'x':
			l.nextChar()
			base = 16
		}
	}

	value := uint64(0)
	overflow := false
	for {
		c := l.currentChar()
		var digit uint64
		switch {
		case c >= '0' && c <= '9':
			digit = uint64(c - '0')
		case c >= 'A' && c <= 'Z':
			digit = uint64(c-'A') + 10
		case c >= 'a' && c <= 'z':
			digit = uint64(c-'a') + 10
		case c == '_':
			l.nextChar()
			continue
		default:
			t := l.token(tok.Integer, start)
			t.Int = value
			t.IntOverflow = overflow
			return t, nil
		}
		if digit >= base {
			return tok.Token{}, err.SyntaxError{
				Loc:     l.location(),
				Problem: fmt.Sprintf("Character '%c' is too big for base '%d'", c, base),
			}
		}
		if !overflow && (value > (math.MaxUint64-digit)/base) {
			overflow = true
		}
		value = value*base + digit
		l.nextChar()
	}
}

// PeekKind returns the next token's kind without consuming it.
func (l *Lexer) PeekKind() (tok.Kind, err.Error) {
	copied := *l
	t, e := copied.NextToken()
	if e != nil {
		return 0, e
	}
	return t.Kind, nil
}

func isNameStart(c rune) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || c == '_'
}

func isNameContinue(c rune) bool {
	return isNameStart(c) || (c >= '0' && c <= '9')
}
