// Copyright 2019 The fpl authors. All rights reserved.
// Use of this source code is governed by an AGPL license that can be found in the LICENSE file.
package tok

import (
	"github.com/fpl-lang/fpl/common"
)

// Kind is the closed set of token kinds.
type Kind int

const (
	// special
	EndOfFile Kind = iota
	Newline
	Name
	Integer

	// keywords
	Export
	Let

	// brackets
	OpenParenthesis
	CloseParenthesis
	OpenBrace
	CloseBrace

	// symbols
	LeftArrow
	RightArrow
	Comma

	// operators
	Plus
	Minus
	Asterisk
	Slash
	ExclamationMark

	// comparison operators
	EqualEqual
	ExclamationMarkEqual
	LessThan
	GreaterThan
	LessThanEqual
	GreaterThanEqual

	// assignment operators
	Equal
	PlusEqual
	MinusEqual
	AsteriskEqual
	SlashEqual
)

// String returns the kind's name as it appears in diagnostics.
func (k Kind) String() string {
	switch k {
	case EndOfFile:
		return "the end of file"
	case Newline:
		return "a newline"
	case Name:
		return "a name"
	case Integer:
		return "an integer"
	case Export:
		return "export"
	case Let:
		return "let"
	case OpenParenthesis:
		return "("
	case CloseParenthesis:
		return ")"
	case OpenBrace:
		return "{"
	case CloseBrace:
		return "}"
	case LeftArrow:
		return "<-"
	case RightArrow:
		return "->"
	case Comma:
		return ","
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Asterisk:
		return "*"
	case Slash:
		return "/"
	case ExclamationMark:
		return "!"
	case EqualEqual:
		return "=="
	case ExclamationMarkEqual:
		return "!="
	case LessThan:
		return "<"
	case GreaterThan:
		return ">"
	case LessThanEqual:
		return "<="
	case GreaterThanEqual:
		return ">="
	case Equal:
		return "="
	case PlusEqual:
		return "+="
	case MinusEqual:
		return "-="
	case AsteriskEqual:
		return "*="
	case SlashEqual:
		return "/="
	}
	return "unknown"
}

// Token is one lexeme of a source file. Integer tokens carry their
// magnitude in Int; IntOverflow records that the magnitude did not fit
// in 64 bits (the binder, not the lexer, enforces the signed ceiling).
type Token struct {
	Kind        Kind
	Text        string
	Int         uint64
	IntOverflow bool
	Location    common.SourceLocation
	Length      int
}
