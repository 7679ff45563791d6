// Copyright 2019 The fpl authors. All rights reserved.
// Use of this source code is governed by an AGPL license that can be found in the LICENSE file.
package fvm

import (
	"fmt"
	"math"

	"github.com/fpl-lang/fpl/common"
	"github.com/fpl-lang/fpl/fvm/ast"
	"github.com/fpl-lang/fpl/fvm/bnd"
	"github.com/fpl-lang/fpl/fvm/err"
	"github.com/fpl-lang/fpl/fvm/mdl"
)

// Scope maps visible names to their defining nodes. vars holds every
// visible name, own only the names defined in this scope itself: inner
// scopes may shadow outer names, redefinition within one scope is an
// error.
type Scope struct {
	vars map[string]bnd.ID
	own  map[string]bool
}

func NewScope() *Scope {
	return &Scope{
		vars: map[string]bnd.ID{},
		own:  map[string]bool{},
	}
}

// Clone copies the visible names into a fresh scope with an empty own
// set. Definitions added to the clone never leak back.
func (s *Scope) Clone() *Scope {
	c := NewScope()
	for k, v := range s.vars {
		c.vars[k] = v
	}
	return c
}

func (s *Scope) Lookup(name string) (bnd.ID, bool) {
	id, ok := s.vars[name]
	return id, ok
}

// DefinedHere reports whether name was defined in this scope itself,
// as opposed to inherited from an enclosing one.
func (s *Scope) DefinedHere(name string) (bnd.ID, bool) {
	if !s.own[name] {
		return 0, false
	}
	return s.vars[name], true
}

func (s *Scope) Define(name string, id bnd.ID) {
	s.vars[name] = id
	s.own[name] = true
}

const builtinPrintInteger = "print_integer"

// Bind resolves names and checks types over a parsed file. It returns
// the arena of bound nodes and the ID of the bound file body. Binding
// aborts on the first error.
func Bind(file ast.File) (*bnd.Arena, bnd.ID, err.Error) {
	arena := bnd.NewArena()
	scope := NewScope()

	builtin := arena.Append(bnd.Builtin{
		Loc:  common.SourceLocation{Filepath: file.EndOfFileToken.Location.Filepath, Line: 1, Column: 1},
		Name: builtinPrintInteger,
		ProcType: mdl.Proc{
			Parameters: []mdl.Type{mdl.Integer{}},
			Result:     mdl.Void{},
		},
	})
	scope.vars[builtinPrintInteger] = builtin

	root, e := bindBlock(arena, scope, file.Location(), file.Expressions)
	if e != nil {
		return nil, 0, e
	}
	return arena, root, nil
}

// bindBlock binds a sequence of expressions in a clone of the enclosing
// scope and collects the block's exports into its type.
func bindBlock(arena *bnd.Arena, enclosing *Scope, loc common.SourceLocation, expressions []ast.Node) (bnd.ID, err.Error) {
	scope := enclosing.Clone()
	bound := make([]bnd.ID, 0, len(expressions))
	exports := map[string]bnd.ID{}
	blockType := mdl.Block{}
	for _, x := range expressions {
		id, e := bindNode(arena, scope, x)
		if e != nil {
			return 0, e
		}
		bound = append(bound, id)
		if export, ok := arena.Node(id).(bnd.Export); ok {
			exports[export.Name] = id
			blockType[export.Name] = arena.TypeOf(id)
		}
	}
	return arena.Append(bnd.Block{
		Loc:         loc,
		Expressions: bound,
		Exports:     exports,
		BlockType:   blockType,
	}), nil
}

func bindNode(arena *bnd.Arena, scope *Scope, node ast.Node) (bnd.ID, err.Error) {
	switch node := node.(type) {

	case ast.Block:
		return bindBlock(arena, scope, node.Location(), node.Expressions)

	case ast.Export:
		// The value binds before the collision check, so that
		// `export a = a` resolves a to an outer definition.
		value, e := bindNode(arena, scope, node.Value)
		if e != nil {
			return 0, e
		}
		name := node.NameToken.Text
		if previous, ok := scope.DefinedHere(name); ok {
			return 0, DuplicateDefinitionError{
				Name:     name,
				Loc:      node.Location(),
				Previous: arena.Node(previous).Location(),
			}
		}
		id := arena.Append(bnd.Export{
			Loc:   node.Location(),
			Name:  name,
			Value: value,
		})
		scope.Define(name, id)
		return id, nil

	case ast.Let:
		value := bnd.ID(0)
		hasValue := node.Value != nil
		if hasValue {
			bound, e := bindNode(arena, scope, node.Value)
			if e != nil {
				return 0, e
			}
			value = bound
		}
		name := node.NameToken.Text
		if previous, ok := scope.DefinedHere(name); ok {
			return 0, DuplicateDefinitionError{
				Name:     name,
				Loc:      node.Location(),
				Previous: arena.Node(previous).Location(),
			}
		}
		id := arena.Append(bnd.Let{
			Loc:      node.Location(),
			Name:     name,
			Value:    value,
			HasValue: hasValue,
		})
		scope.Define(name, id)
		return id, nil

	case ast.Unary:
		operand, e := bindNode(arena, scope, node.Operand)
		if e != nil {
			return 0, e
		}
		operator, ok := mdl.LookupUnaryOperator(node.OperatorToken.Kind, arena.TypeOf(operand))
		if !ok {
			return 0, OperatorNotFoundError{
				Loc:      node.Location(),
				Operator: node.OperatorToken.Kind.String(),
				Operands: []mdl.Type{arena.TypeOf(operand)},
			}
		}
		return arena.Append(bnd.Unary{
			Loc:      node.Location(),
			Operator: operator,
			Operand:  operand,
		}), nil

	case ast.Binary:
		left, e := bindNode(arena, scope, node.Left)
		if e != nil {
			return 0, e
		}
		right, e := bindNode(arena, scope, node.Right)
		if e != nil {
			return 0, e
		}
		operator, ok := mdl.LookupBinaryOperator(node.OperatorToken.Kind, arena.TypeOf(left), arena.TypeOf(right))
		if !ok {
			return 0, OperatorNotFoundError{
				Loc:      node.Location(),
				Operator: node.OperatorToken.Kind.String(),
				Operands: []mdl.Type{arena.TypeOf(left), arena.TypeOf(right)},
			}
		}
		return arena.Append(bnd.Binary{
			Loc:      node.Location(),
			Left:     left,
			Operator: operator,
			Right:    right,
		}), nil

	case ast.Name:
		name := node.NameToken.Text
		target, ok := scope.Lookup(name)
		if !ok {
			return 0, UndefinedNameError{
				Name: name,
				Loc:  node.Location(),
			}
		}
		return arena.Append(bnd.Name{
			Loc:    node.Location(),
			Name:   name,
			Target: target,
		}), nil

	case ast.Integer:
		token := node.IntegerToken
		if token.IntOverflow || token.Int > math.MaxInt64 {
			return 0, IntegerTooLargeError{
				Loc:  node.Location(),
				Text: token.Text,
			}
		}
		return arena.Append(bnd.Integer{
			Loc:   node.Location(),
			Value: int64(token.Int),
		}), nil

	case ast.Call:
		callee, e := bindNode(arena, scope, node.Operand)
		if e != nil {
			return 0, e
		}
		proc, ok := arena.TypeOf(callee).(mdl.Proc)
		if !ok {
			return 0, NotCallableError{
				Loc:     node.CloseParenthesisToken.Location,
				Operand: node.Operand.Location(),
				Actual:  arena.TypeOf(callee),
			}
		}
		if len(node.Arguments) != len(proc.Parameters) {
			return 0, ArityMismatchError{
				Loc:      node.CloseParenthesisToken.Location,
				Expected: len(proc.Parameters),
				Actual:   len(node.Arguments),
			}
		}
		arguments := make([]bnd.ID, 0, len(node.Arguments))
		for i, argument := range node.Arguments {
			bound, e := bindNode(arena, scope, argument)
			if e != nil {
				return 0, e
			}
			if !arena.TypeOf(bound).Equals(proc.Parameters[i]) {
				return 0, ArgumentTypeMismatchError{
					Loc:      argument.Location(),
					Index:    i,
					Expected: proc.Parameters[i],
					Actual:   arena.TypeOf(bound),
				}
			}
			arguments = append(arguments, bound)
		}
		return arena.Append(bnd.Call{
			Loc:       node.Location(),
			Callee:    callee,
			Arguments: arguments,
			ProcType:  proc,
		}), nil

	}
	panic(fmt.Sprintf("unhandled syntax node type: %T", node))
}
