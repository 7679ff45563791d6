// Copyright 2019 The fpl authors. All rights reserved.
// Use of this source code is governed by an AGPL license that can be found in the LICENSE file.
package fvm

import (
	"fmt"

	"github.com/fpl-lang/fpl/common"
	"github.com/fpl-lang/fpl/fvm/err"
	"github.com/fpl-lang/fpl/fvm/mdl"
)

// DuplicateDefinitionError reports a name defined twice in the same
// scope. Previous points at the earlier definition.
type DuplicateDefinitionError struct {
	Name     string
	Loc      common.SourceLocation
	Previous common.SourceLocation
}

var _ err.CompileError = DuplicateDefinitionError{}

func (e DuplicateDefinitionError) Location() common.SourceLocation {
	return e.Loc
}
func (e DuplicateDefinitionError) Message() string {
	return fmt.Sprintf("%s is already defined", e.Name)
}
func (e DuplicateDefinitionError) Notes() []err.Note {
	previous := e.Previous
	return []err.Note{
		{Location: &previous, Message: fmt.Sprintf("%s was previously defined here", e.Name)},
	}
}
func (e DuplicateDefinitionError) Error() string {
	return e.String()
}
func (e DuplicateDefinitionError) String() string {
	return err.Render(e)
}
func (e DuplicateDefinitionError) Child() err.Error {
	return nil
}

// UndefinedNameError reports a reference to a name with no visible
// definition.
type UndefinedNameError struct {
	Name string
	Loc  common.SourceLocation
}

var _ err.CompileError = UndefinedNameError{}

func (e UndefinedNameError) Location() common.SourceLocation {
	return e.Loc
}
func (e UndefinedNameError) Message() string {
	return fmt.Sprintf("Unable to find %s", e.Name)
}
func (e UndefinedNameError) Notes() []err.Note {
	return nil
}
func (e UndefinedNameError) Error() string {
	return e.String()
}
func (e UndefinedNameError) String() string {
	return err.Render(e)
}
func (e UndefinedNameError) Child() err.Error {
	return nil
}

// OperatorNotFoundError reports an operator applied to operand types no
// table entry accepts.
type OperatorNotFoundError struct {
	Loc      common.SourceLocation
	Operator string
	Operands []mdl.Type
}

var _ err.CompileError = OperatorNotFoundError{}

func (e OperatorNotFoundError) Location() common.SourceLocation {
	return e.Loc
}
func (e OperatorNotFoundError) Message() string {
	if len(e.Operands) == 1 {
		return fmt.Sprintf("Unable to find unary operator %s for type %s", e.Operator, mdl.ToHuman(e.Operands[0]))
	}
	return fmt.Sprintf("Unable to find binary operator %s for types %s and %s", e.Operator, mdl.ToHuman(e.Operands[0]), mdl.ToHuman(e.Operands[1]))
}
func (e OperatorNotFoundError) Notes() []err.Note {
	return nil
}
func (e OperatorNotFoundError) Error() string {
	return e.String()
}
func (e OperatorNotFoundError) String() string {
	return err.Render(e)
}
func (e OperatorNotFoundError) Child() err.Error {
	return nil
}

// IntegerTooLargeError reports an integer literal beyond the signed
// 64 bit ceiling. Text is the raw lexeme.
type IntegerTooLargeError struct {
	Loc  common.SourceLocation
	Text string
}

var _ err.CompileError = IntegerTooLargeError{}

func (e IntegerTooLargeError) Location() common.SourceLocation {
	return e.Loc
}
func (e IntegerTooLargeError) Message() string {
	return fmt.Sprintf("Integer %s is too big for a 64 bit signed integer", e.Text)
}
func (e IntegerTooLargeError) Notes() []err.Note {
	return nil
}
func (e IntegerTooLargeError) Error() string {
	return e.String()
}
func (e IntegerTooLargeError) String() string {
	return err.Render(e)
}
func (e IntegerTooLargeError) Child() err.Error {
	return nil
}

// NotCallableError reports a call whose operand is not a procedure.
// Operand points at the callee expression.
type NotCallableError struct {
	Loc     common.SourceLocation
	Operand common.SourceLocation
	Actual  mdl.Type
}

var _ err.CompileError = NotCallableError{}

func (e NotCallableError) Location() common.SourceLocation {
	return e.Loc
}
func (e NotCallableError) Message() string {
	return "Cannot call a non procedure"
}
func (e NotCallableError) Notes() []err.Note {
	operand := e.Operand
	return []err.Note{
		{Location: &operand, Message: fmt.Sprintf("The type was %s", mdl.ToHuman(e.Actual))},
	}
}
func (e NotCallableError) Error() string {
	return e.String()
}
func (e NotCallableError) String() string {
	return err.Render(e)
}
func (e NotCallableError) Child() err.Error {
	return nil
}

// ArityMismatchError reports a call with the wrong argument count.
type ArityMismatchError struct {
	Loc      common.SourceLocation
	Expected int
	Actual   int
}

var _ err.CompileError = ArityMismatchError{}

func (e ArityMismatchError) Location() common.SourceLocation {
	return e.Loc
}
func (e ArityMismatchError) Message() string {
	return fmt.Sprintf("Invalid number of arguments for procedure, expected %d arguments but got %d", e.Expected, e.Actual)
}
func (e ArityMismatchError) Notes() []err.Note {
	return nil
}
func (e ArityMismatchError) Error() string {
	return e.String()
}
func (e ArityMismatchError) String() string {
	return err.Render(e)
}
func (e ArityMismatchError) Child() err.Error {
	return nil
}

// ArgumentTypeMismatchError reports the first argument whose type does
// not match the procedure's parameter.
type ArgumentTypeMismatchError struct {
	Loc      common.SourceLocation
	Index    int
	Expected mdl.Type
	Actual   mdl.Type
}

var _ err.CompileError = ArgumentTypeMismatchError{}

func (e ArgumentTypeMismatchError) Location() common.SourceLocation {
	return e.Loc
}
func (e ArgumentTypeMismatchError) Message() string {
	return fmt.Sprintf("Wrong argument type for procedure, expected type %s but got type %s", mdl.ToHuman(e.Expected), mdl.ToHuman(e.Actual))
}
func (e ArgumentTypeMismatchError) Notes() []err.Note {
	return nil
}
func (e ArgumentTypeMismatchError) Error() string {
	return e.String()
}
func (e ArgumentTypeMismatchError) String() string {
	return err.Render(e)
}
func (e ArgumentTypeMismatchError) Child() err.Error {
	return nil
}
