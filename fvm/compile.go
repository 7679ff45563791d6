// Copyright 2019 The fpl authors. All rights reserved.
// Use of this source code is governed by an AGPL license that can be found in the LICENSE file.
package fvm

import (
	"fmt"

	"github.com/fpl-lang/fpl/fvm/bnd"
	"github.com/fpl-lang/fpl/fvm/inst"
	"github.com/fpl-lang/fpl/fvm/mdl"
)

// CompileProgram lowers a bound program to an instruction sequence.
// The root block's result is left on the stack when Exit runs; Exit
// discards it.
func CompileProgram(arena *bnd.Arena, root bnd.ID) inst.Sequence {
	program := compileNode(arena, root, nil)
	return append(program, inst.Exit{})
}

func compileNode(arena *bnd.Arena, id bnd.ID, program inst.Sequence) inst.Sequence {
	switch n := arena.Node(id).(type) {

	case bnd.Block:
		// Blocks are environments, not values: every child's result is
		// popped and nothing is pushed for the block itself. The
		// bottom-of-stack void stands in as its result.
		for _, x := range n.Expressions {
			program = compileNode(arena, x, program)
			program = append(program, inst.Pop{})
		}
		return program

	case bnd.Export:
		program = compileNode(arena, n.Value, program)
		program = append(program, inst.Dup{})
		return append(program, inst.Store{Name: n.Name})

	case bnd.Let:
		if n.HasValue {
			program = compileNode(arena, n.Value, program)
		} else {
			program = append(program, inst.Constant{Value: inst.Void{}})
		}
		program = append(program, inst.Dup{})
		return append(program, inst.Store{Name: n.Name})

	case bnd.Unary:
		program = compileNode(arena, n.Operand, program)
		switch n.Operator.Kind {
		case mdl.UnaryIdentity:
			return program
		case mdl.UnaryNegation:
			return append(program, inst.NegInt{})
		}
		panic(fmt.Sprintf("unhandled unary operator kind: %v", n.Operator.Kind))

	case bnd.Binary:
		program = compileNode(arena, n.Left, program)
		program = compileNode(arena, n.Right, program)
		switch n.Operator.Kind {
		case mdl.BinaryAddition:
			return append(program, inst.AddInt{})
		case mdl.BinarySubtraction:
			return append(program, inst.SubInt{})
		case mdl.BinaryMultiplication:
			return append(program, inst.MulInt{})
		case mdl.BinaryDivision:
			return append(program, inst.DivInt{})
		}
		panic(fmt.Sprintf("unhandled binary operator kind: %v", n.Operator.Kind))

	case bnd.Name:
		if builtin, ok := arena.Node(n.Target).(bnd.Builtin); ok {
			return append(program, builtinConstant(builtin.Name))
		}
		return append(program, inst.Load{Name: n.Name})

	case bnd.Integer:
		return append(program, inst.Constant{Value: inst.Integer(n.Value)})

	case bnd.Call:
		program = compileNode(arena, n.Callee, program)
		for _, x := range n.Arguments {
			program = compileNode(arena, x, program)
		}
		return append(program, inst.Call{ArgumentCount: len(n.Arguments)})

	case bnd.Builtin:
		return append(program, builtinConstant(n.Name))

	}
	panic(fmt.Sprintf("unhandled bound node type: %T", arena.Node(id)))
}

// builtinConstant returns the procedure value backing a predefined name.
func builtinConstant(name string) inst.Constant {
	switch name {
	case builtinPrintInteger:
		return inst.Constant{Value: inst.Procedure{
			inst.PrintInt{},
			inst.Return{},
		}}
	}
	panic(fmt.Sprintf("unhandled builtin: %s", name))
}
