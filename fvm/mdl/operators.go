// Copyright 2019 The fpl authors. All rights reserved.
// Use of this source code is governed by an AGPL license that can be found in the LICENSE file.
package mdl

import (
	"github.com/fpl-lang/fpl/fvm/tok"
)

type UnaryOperatorKind int

const (
	UnaryIdentity UnaryOperatorKind = iota
	UnaryNegation
)

func (k UnaryOperatorKind) String() string {
	switch k {
	case UnaryIdentity:
		return "identity"
	case UnaryNegation:
		return "negation"
	}
	return "unknown"
}

// UnaryOperator maps an operand type to a result type for one operator
// token. Descriptors are immutable table entries.
type UnaryOperator struct {
	Kind    UnaryOperatorKind
	Operand Type
	Result  Type
}

type BinaryOperatorKind int

const (
	BinaryAddition BinaryOperatorKind = iota
	BinarySubtraction
	BinaryMultiplication
	BinaryDivision
)

func (k BinaryOperatorKind) String() string {
	switch k {
	case BinaryAddition:
		return "addition"
	case BinarySubtraction:
		return "subtraction"
	case BinaryMultiplication:
		return "multiplication"
	case BinaryDivision:
		return "division"
	}
	return "unknown"
}

type BinaryOperator struct {
	Kind                BinaryOperatorKind
	Left, Right, Result Type
}

// The operator tables are ordered: the first structurally matching entry
// wins. Adding an operator or an overload means adding an entry, never
// touching the lookup.

var unaryOperators = []struct {
	Token    tok.Kind
	Operator UnaryOperator
}{
	{tok.Plus, UnaryOperator{UnaryIdentity, Integer{}, Integer{}}},
	{tok.Minus, UnaryOperator{UnaryNegation, Integer{}, Integer{}}},
}

var binaryOperators = []struct {
	Token    tok.Kind
	Operator BinaryOperator
}{
	{tok.Plus, BinaryOperator{BinaryAddition, Integer{}, Integer{}, Integer{}}},
	{tok.Minus, BinaryOperator{BinarySubtraction, Integer{}, Integer{}, Integer{}}},
	{tok.Asterisk, BinaryOperator{BinaryMultiplication, Integer{}, Integer{}, Integer{}}},
	{tok.Slash, BinaryOperator{BinaryDivision, Integer{}, Integer{}, Integer{}}},
}

// LookupUnaryOperator finds the first table entry matching the operator
// token and operand type.
func LookupUnaryOperator(token tok.Kind, operand Type) (UnaryOperator, bool) {
	for _, entry := range unaryOperators {
		if entry.Token == token && entry.Operator.Operand.Equals(operand) {
			return entry.Operator, true
		}
	}
	return UnaryOperator{}, false
}

// LookupBinaryOperator finds the first table entry matching the operator
// token and both operand types.
func LookupBinaryOperator(token tok.Kind, left, right Type) (BinaryOperator, bool) {
	for _, entry := range binaryOperators {
		if entry.Token == token && entry.Operator.Left.Equals(left) && entry.Operator.Right.Equals(right) {
			return entry.Operator, true
		}
	}
	return BinaryOperator{}, false
}
