// Copyright 2019 The fpl authors. All rights reserved.
// Use of this source code is governed by an AGPL license that can be found in the LICENSE file.
package parse

import (
	"fmt"

	"github.com/fpl-lang/fpl/fvm/ast"
	"github.com/fpl-lang/fpl/fvm/err"
	"github.com/fpl-lang/fpl/fvm/tok"
)

// allowNewline skips a single newline token, letting expressions
// continue on the next line after an operator, comma or equals sign.
func allowNewline(lexer *Lexer) err.Error {
	kind, e := lexer.PeekKind()
	if e != nil {
		return e
	}
	if kind == tok.Newline {
		if _, e := lexer.NextToken(); e != nil {
			return e
		}
	}
	return nil
}

// skipNewlines consumes any number of newline tokens.
func skipNewlines(lexer *Lexer) (tok.Kind, err.Error) {
	for {
		kind, e := lexer.PeekKind()
		if e != nil {
			return 0, e
		}
		if kind != tok.Newline {
			return kind, nil
		}
		if _, e := lexer.NextToken(); e != nil {
			return 0, e
		}
	}
}

// ParseFile parses a whole source file: newline separated expressions
// up to the end of the file.
func ParseFile(lexer *Lexer) (ast.File, err.Error) {
	expressions := []ast.Node{}
	for {
		kind, e := skipNewlines(lexer)
		if e != nil {
			return ast.File{}, e
		}
		if kind == tok.EndOfFile {
			break
		}
		expression, e := parseExpression(lexer)
		if e != nil {
			return ast.File{}, e
		}
		expressions = append(expressions, expression)
		kind, e = lexer.PeekKind()
		if e != nil {
			return ast.File{}, e
		}
		if kind == tok.EndOfFile {
			break
		}
		newline, e := lexer.NextToken()
		if e != nil {
			return ast.File{}, e
		}
		if newline.Kind != tok.Newline {
			return ast.File{}, err.SyntaxError{
				Loc:     newline.Location,
				Problem: fmt.Sprintf("Expected %s at the end of the expression, but got %s", tok.Newline, newline.Kind),
			}
		}
	}
	endOfFileToken, e := lexer.NextToken()
	if e != nil {
		return ast.File{}, e
	}
	return ast.File{
		Expressions:    expressions,
		EndOfFileToken: endOfFileToken,
	}, nil
}

func parseExpression(lexer *Lexer) (ast.Node, err.Error) {
	return parseBinaryExpression(lexer, 0)
}

func unaryPrecedence(kind tok.Kind) int {
	switch kind {
	case tok.Plus, tok.Minus, tok.ExclamationMark:
		return 4
	}
	return 0
}

func binaryPrecedence(kind tok.Kind) int {
	switch kind {
	case tok.Asterisk, tok.Slash:
		return 3
	case tok.Plus, tok.Minus:
		return 2
	case tok.EqualEqual, tok.ExclamationMarkEqual, tok.LessThan, tok.GreaterThan, tok.LessThanEqual, tok.GreaterThanEqual:
		return 1
	}
	return 0
}

// parseBinaryExpression is a precedence climbing parser. Call
// parentheses bind tighter than any operator and may follow any
// operand, so `f(1)(2)` chains.
func parseBinaryExpression(lexer *Lexer, parentPrecedence int) (ast.Node, err.Error) {
	kind, e := lexer.PeekKind()
	if e != nil {
		return nil, e
	}

	var left ast.Node
	if precedence := unaryPrecedence(kind); precedence > 0 {
		operatorToken, e := lexer.NextToken()
		if e != nil {
			return nil, e
		}
		if e := allowNewline(lexer); e != nil {
			return nil, e
		}
		operand, e := parseBinaryExpression(lexer, precedence)
		if e != nil {
			return nil, e
		}
		left = ast.Unary{
			OperatorToken: operatorToken,
			Operand:       operand,
		}
	} else {
		left, e = parsePrimaryExpression(lexer)
		if e != nil {
			return nil, e
		}
	}

	for {
		kind, e := lexer.PeekKind()
		if e != nil {
			return nil, e
		}
		for kind == tok.OpenParenthesis {
			left, e = parseCall(lexer, left)
			if e != nil {
				return nil, e
			}
			kind, e = lexer.PeekKind()
			if e != nil {
				return nil, e
			}
		}

		precedence := binaryPrecedence(kind)
		if precedence <= parentPrecedence {
			return left, nil
		}
		operatorToken, e := lexer.NextToken()
		if e != nil {
			return nil, e
		}
		if e := allowNewline(lexer); e != nil {
			return nil, e
		}
		right, e := parseBinaryExpression(lexer, precedence)
		if e != nil {
			return nil, e
		}
		left = ast.Binary{
			Left:          left,
			OperatorToken: operatorToken,
			Right:         right,
		}
	}
}

// parseCall parses one argument list following an operand. A trailing
// comma before the closing parenthesis is allowed.
func parseCall(lexer *Lexer, operand ast.Node) (ast.Node, err.Error) {
	openParenthesisToken, e := lexer.NextToken()
	if e != nil {
		return nil, e
	}
	if e := allowNewline(lexer); e != nil {
		return nil, e
	}
	first := true
	arguments := []ast.Node{}
	for {
		kind, e := lexer.PeekKind()
		if e != nil {
			return nil, e
		}
		if kind == tok.CloseParenthesis || kind == tok.EndOfFile {
			break
		}
		if first {
			first = false
		} else {
			comma, e := lexer.NextToken()
			if e != nil {
				return nil, e
			}
			if comma.Kind != tok.Comma {
				return nil, err.SyntaxError{
					Loc:     comma.Location,
					Problem: fmt.Sprintf("Expected %s to seperate arguments in the call, but got %s", tok.Comma, comma.Kind),
				}
			}
			if e := allowNewline(lexer); e != nil {
				return nil, e
			}
			kind, e = lexer.PeekKind()
			if e != nil {
				return nil, e
			}
			if kind == tok.CloseParenthesis {
				break
			}
		}
		argument, e := parseExpression(lexer)
		if e != nil {
			return nil, e
		}
		arguments = append(arguments, argument)
	}
	closeParenthesisToken, e := lexer.NextToken()
	if e != nil {
		return nil, e
	}
	if closeParenthesisToken.Kind != tok.CloseParenthesis {
		return nil, err.SyntaxError{
			Loc:     closeParenthesisToken.Location,
			Problem: fmt.Sprintf("Expected %s at the end of the call, but got %s", tok.CloseParenthesis, closeParenthesisToken.Kind),
		}
	}
	return ast.Call{
		Operand:               operand,
		OpenParenthesisToken:  openParenthesisToken,
		Arguments:             arguments,
		CloseParenthesisToken: closeParenthesisToken,
	}, nil
}

func parsePrimaryExpression(lexer *Lexer) (ast.Node, err.Error) {
	kind, e := lexer.PeekKind()
	if e != nil {
		return nil, e
	}
	switch kind {

	case tok.Name:
		nameToken, e := lexer.NextToken()
		if e != nil {
			return nil, e
		}
		return ast.Name{NameToken: nameToken}, nil

	case tok.Integer:
		integerToken, e := lexer.NextToken()
		if e != nil {
			return nil, e
		}
		return ast.Integer{IntegerToken: integerToken}, nil

	case tok.OpenBrace:
		return parseBlock(lexer)

	case tok.OpenParenthesis:
		if _, e := lexer.NextToken(); e != nil {
			return nil, e
		}
		expression, e := parseExpression(lexer)
		if e != nil {
			return nil, e
		}
		closeParenthesisToken, e := lexer.NextToken()
		if e != nil {
			return nil, e
		}
		if closeParenthesisToken.Kind != tok.CloseParenthesis {
			return nil, err.SyntaxError{
				Loc:     closeParenthesisToken.Location,
				Problem: fmt.Sprintf("Expected %s to close the opening (, but got %s", tok.CloseParenthesis, closeParenthesisToken.Kind),
			}
		}
		return expression, nil

	case tok.Export:
		exportToken, e := lexer.NextToken()
		if e != nil {
			return nil, e
		}
		nameToken, e := lexer.NextToken()
		if e != nil {
			return nil, e
		}
		if nameToken.Kind != tok.Name {
			return nil, err.SyntaxError{
				Loc:     nameToken.Location,
				Problem: fmt.Sprintf("Expected %s for export, but got %s", tok.Name, nameToken.Kind),
			}
		}
		equalToken, e := lexer.NextToken()
		if e != nil {
			return nil, e
		}
		if equalToken.Kind != tok.Equal {
			return nil, err.SyntaxError{
				Loc:     equalToken.Location,
				Problem: fmt.Sprintf("Expected %s for export value, but got %s", tok.Equal, equalToken.Kind),
			}
		}
		if e := allowNewline(lexer); e != nil {
			return nil, e
		}
		value, e := parseExpression(lexer)
		if e != nil {
			return nil, e
		}
		return ast.Export{
			ExportToken: exportToken,
			NameToken:   nameToken,
			EqualToken:  equalToken,
			Value:       value,
		}, nil

	case tok.Let:
		letToken, e := lexer.NextToken()
		if e != nil {
			return nil, e
		}
		nameToken, e := lexer.NextToken()
		if e != nil {
			return nil, e
		}
		if nameToken.Kind != tok.Name {
			return nil, err.SyntaxError{
				Loc:     nameToken.Location,
				Problem: fmt.Sprintf("Expected %s for let, but got %s", tok.Name, nameToken.Kind),
			}
		}
		kind, e := lexer.PeekKind()
		if e != nil {
			return nil, e
		}
		if kind != tok.Equal {
			return ast.Let{
				LetToken:  letToken,
				NameToken: nameToken,
			}, nil
		}
		equalToken, e := lexer.NextToken()
		if e != nil {
			return nil, e
		}
		if e := allowNewline(lexer); e != nil {
			return nil, e
		}
		value, e := parseExpression(lexer)
		if e != nil {
			return nil, e
		}
		return ast.Let{
			LetToken:   letToken,
			NameToken:  nameToken,
			EqualToken: &equalToken,
			Value:      value,
		}, nil

	}
	token, e := lexer.NextToken()
	if e != nil {
		return nil, e
	}
	return nil, err.SyntaxError{
		Loc:     token.Location,
		Problem: fmt.Sprintf("Expected an expression but got %s", token.Kind),
	}
}

// parseBlock parses a braced, newline separated expression sequence.
func parseBlock(lexer *Lexer) (ast.Node, err.Error) {
	openBraceToken, e := lexer.NextToken()
	if e != nil {
		return nil, e
	}
	expressions := []ast.Node{}
	for {
		kind, e := skipNewlines(lexer)
		if e != nil {
			return nil, e
		}
		if kind == tok.CloseBrace || kind == tok.EndOfFile {
			break
		}
		expression, e := parseExpression(lexer)
		if e != nil {
			return nil, e
		}
		expressions = append(expressions, expression)
		kind, e = lexer.PeekKind()
		if e != nil {
			return nil, e
		}
		if kind == tok.CloseBrace || kind == tok.EndOfFile {
			break
		}
		newline, e := lexer.NextToken()
		if e != nil {
			return nil, e
		}
		if newline.Kind != tok.Newline {
			return nil, err.SyntaxError{
				Loc:     newline.Location,
				Problem: fmt.Sprintf("Expected %s or %s at the end of the expression, but got %s", tok.Newline, tok.CloseBrace, newline.Kind),
			}
		}
	}
	closeBraceToken, e := lexer.NextToken()
	if e != nil {
		return nil, e
	}
	if closeBraceToken.Kind != tok.CloseBrace {
		return nil, err.SyntaxError{
			Loc:     closeBraceToken.Location,
			Problem: fmt.Sprintf("Expected %s, but got %s", tok.CloseBrace, closeBraceToken.Kind),
		}
	}
	return ast.Block{
		OpenBraceToken:  openBraceToken,
		Expressions:     expressions,
		CloseBraceToken: closeBraceToken,
	}, nil
}
