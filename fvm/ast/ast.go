// Copyright 2019 The fpl authors. All rights reserved.
// Use of this source code is governed by an AGPL license that can be found in the LICENSE file.
package ast

import (
	"strconv"
	"strings"

	"github.com/fpl-lang/fpl/common"
	"github.com/fpl-lang/fpl/fvm/tok"
)

// Node is the closed set of syntax nodes.
type Node interface {
	Location() common.SourceLocation
	Dump(indent int) string
	_ast() // private interface
}

type File struct {
	Expressions    []Node
	EndOfFileToken tok.Token
}

type Block struct {
	OpenBraceToken  tok.Token
	Expressions     []Node
	CloseBraceToken tok.Token
}

type Export struct {
	ExportToken tok.Token
	NameToken   tok.Token
	EqualToken  tok.Token
	Value       Node
}

type Let struct {
	LetToken   tok.Token
	NameToken  tok.Token
	EqualToken *tok.Token // nil when the let carries no value
	Value      Node       // nil when the let carries no value
}

type Unary struct {
	OperatorToken tok.Token
	Operand       Node
}

type Binary struct {
	Left          Node
	OperatorToken tok.Token
	Right         Node
}

type Name struct {
	NameToken tok.Token
}

type Integer struct {
	IntegerToken tok.Token
}

type Call struct {
	Operand               Node
	OpenParenthesisToken  tok.Token
	Arguments             []Node
	CloseParenthesisToken tok.Token
}

func (File) _ast()    {}
func (Block) _ast()   {}
func (Export) _ast()  {}
func (Let) _ast()     {}
func (Unary) _ast()   {}
func (Binary) _ast()  {}
func (Name) _ast()    {}
func (Integer) _ast() {}
func (Call) _ast()    {}

func (n File) Location() common.SourceLocation {
	return n.EndOfFileToken.Location
}

func (n Block) Location() common.SourceLocation {
	return n.OpenBraceToken.Location
}

func (n Export) Location() common.SourceLocation {
	return n.NameToken.Location
}

func (n Let) Location() common.SourceLocation {
	return n.NameToken.Location
}

func (n Unary) Location() common.SourceLocation {
	return n.OperatorToken.Location
}

func (n Binary) Location() common.SourceLocation {
	return n.OperatorToken.Location
}

func (n Name) Location() common.SourceLocation {
	return n.NameToken.Location
}

func (n Integer) Location() common.SourceLocation {
	return n.IntegerToken.Location
}

func (n Call) Location() common.SourceLocation {
	return n.OpenParenthesisToken.Location
}

const indentUnit = "    "

func indentation(indent int) string {
	return strings.Repeat(indentUnit, indent)
}

func (n File) Dump(indent int) string {
	out := ""
	for _, x := range n.Expressions {
		out += "\n" + indentation(indent) + x.Dump(indent)
	}
	return out + "\n"
}

func (n Block) Dump(indent int) string {
	out := "{"
	for _, x := range n.Expressions {
		out += "\n" + indentation(indent+1) + x.Dump(indent+1)
	}
	return out + "\n" + indentation(indent) + "}"
}

func (n Export) Dump(indent int) string {
	return "export " + n.NameToken.Text + " = " + n.Value.Dump(indent)
}

func (n Let) Dump(indent int) string {
	out := "let " + n.NameToken.Text
	if n.Value != nil {
		out += " = " + n.Value.Dump(indent)
	}
	return out
}

func (n Unary) Dump(indent int) string {
	return n.OperatorToken.Kind.String() + n.Operand.Dump(indent)
}

func (n Binary) Dump(indent int) string {
	return n.Left.Dump(indent) + " " + n.OperatorToken.Kind.String() + " " + n.Right.Dump(indent)
}

func (n Name) Dump(indent int) string {
	return n.NameToken.Text
}

func (n Integer) Dump(indent int) string {
	return strconv.FormatUint(n.IntegerToken.Int, 10)
}

func (n Call) Dump(indent int) string {
	out := n.Operand.Dump(indent) + "("
	for i, a := range n.Arguments {
		if i > 0 {
			out += ", "
		}
		out += a.Dump(indent)
	}
	return out + ")"
}
