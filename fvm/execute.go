// Copyright 2019 The fpl authors. All rights reserved.
// Use of this source code is governed by an AGPL license that can be found in the LICENSE file.
package fvm

import (
	"fmt"
	"io"
	"os"

	"github.com/fpl-lang/fpl/fvm/err"
	"github.com/fpl-lang/fpl/fvm/inst"

	"github.com/kr/pretty"
)

// Cell is one shared slot holding a runtime value. Dup and Load push
// additional references to the same cell; payloads are never mutated
// in place.
type Cell struct {
	Value inst.Value
}

// Stack is the operand stack of one procedure invocation.
type Stack []*Cell

func (s *Stack) Push(c *Cell) {
	*s = append(*s, c)
}

func (s *Stack) Pop() (*Cell, bool) {
	if len(*s) == 0 {
		return nil, false
	}
	c := (*s)[len(*s)-1]
	(*s)[len(*s)-1] = nil
	*s = (*s)[:len(*s)-1]
	return c, true
}

// VirtualMachine executes instruction sequences. The zero value writes
// to standard output with tracing off.
type VirtualMachine struct {
	Output io.Writer
	Trace  bool
}

func (vm *VirtualMachine) output() io.Writer {
	if vm.Output == nil {
		return os.Stdout
	}
	return vm.Output
}

// Run executes a whole program. It returns nil both when the program
// exits and when its top sequence returns.
func (vm *VirtualMachine) Run(program inst.Sequence) err.Error {
	_, _, e := vm.execute(program, nil)
	return e
}

// execute runs one instruction sequence over its own stack and a fresh,
// private variable environment. It reports whether the program exited
// (as opposed to the sequence returning a result).
func (vm *VirtualMachine) execute(program inst.Sequence, initial Stack) (*Cell, bool, err.Error) {
	// Every invocation starts with a void at the bottom of its stack,
	// beneath any arguments. Procedure bodies that print and return
	// yield this void as their result.
	stack := make(Stack, 0, len(initial)+1)
	stack.Push(&Cell{Value: inst.Void{}})
	for _, c := range initial {
		stack.Push(c)
	}
	vars := map[string]*Cell{}

	for pc := 0; pc < len(program); pc++ {
		if vm.Trace {
			pretty.Println(program[pc], stack)
		}
		switch n := program[pc].(type) {

		case inst.Exit:
			return nil, true, nil

		case inst.Constant:
			stack.Push(&Cell{Value: n.Value})

		case inst.Pop:
			if _, ok := stack.Pop(); !ok {
				return nil, false, err.ExecutionError{Problem: "stack underflow in pop instruction"}
			}

		case inst.Dup:
			if len(stack) == 0 {
				return nil, false, err.ExecutionError{Problem: "stack underflow in dup instruction"}
			}
			stack.Push(stack[len(stack)-1])

		case inst.Call:
			// Arguments pop in reverse push order; the callee's stack
			// seeds them back in their original left-to-right order.
			arguments := make(Stack, n.ArgumentCount)
			for i := n.ArgumentCount - 1; i >= 0; i-- {
				c, ok := stack.Pop()
				if !ok {
					return nil, false, err.ExecutionError{Problem: "stack underflow in call instruction"}
				}
				arguments[i] = c
			}
			callee, ok := stack.Pop()
			if !ok {
				return nil, false, err.ExecutionError{Problem: "stack underflow in call instruction"}
			}
			procedure, ok := callee.Value.(inst.Procedure)
			if !ok {
				return nil, false, err.ExecutionError{Problem: fmt.Sprintf("call of non-procedure value %T", callee.Value)}
			}
			result, exited, e := vm.execute(inst.Sequence(procedure), arguments)
			if e != nil {
				return nil, false, e
			}
			if exited {
				return nil, true, nil
			}
			stack.Push(result)

		case inst.Return:
			c, ok := stack.Pop()
			if !ok {
				return nil, false, err.ExecutionError{Problem: "stack underflow in return instruction"}
			}
			return c, false, nil

		case inst.Load:
			c, ok := vars[n.Name]
			if !ok {
				return nil, false, err.ExecutionError{Problem: fmt.Sprintf("load of undefined variable %s", n.Name)}
			}
			stack.Push(c)

		case inst.Store:
			c, ok := stack.Pop()
			if !ok {
				return nil, false, err.ExecutionError{Problem: "stack underflow in store instruction"}
			}
			vars[n.Name] = c

		case inst.AddInt:
			left, right, e := popIntegerOperands(&stack, "add")
			if e != nil {
				return nil, false, e
			}
			stack.Push(&Cell{Value: left + right})

		case inst.SubInt:
			left, right, e := popIntegerOperands(&stack, "subtract")
			if e != nil {
				return nil, false, e
			}
			stack.Push(&Cell{Value: left - right})

		case inst.MulInt:
			left, right, e := popIntegerOperands(&stack, "multiply")
			if e != nil {
				return nil, false, e
			}
			stack.Push(&Cell{Value: left * right})

		case inst.DivInt:
			left, right, e := popIntegerOperands(&stack, "divide")
			if e != nil {
				return nil, false, e
			}
			if right == 0 {
				return nil, false, err.ExecutionError{Problem: "division by zero"}
			}
			stack.Push(&Cell{Value: left / right})

		case inst.NegInt:
			c, ok := stack.Pop()
			if !ok {
				return nil, false, err.ExecutionError{Problem: "stack underflow in negate instruction"}
			}
			v, ok := c.Value.(inst.Integer)
			if !ok {
				return nil, false, err.ExecutionError{Problem: fmt.Sprintf("negate of non-integer value %T", c.Value)}
			}
			stack.Push(&Cell{Value: -v})

		case inst.PrintInt:
			c, ok := stack.Pop()
			if !ok {
				return nil, false, err.ExecutionError{Problem: "stack underflow in print instruction"}
			}
			v, ok := c.Value.(inst.Integer)
			if !ok {
				return nil, false, err.ExecutionError{Problem: fmt.Sprintf("print of non-integer value %T", c.Value)}
			}
			fmt.Fprintln(vm.output(), int64(v))

		default:
			panic(fmt.Sprintf("unhandled instruction type: %T", program[pc]))
		}
	}
	return nil, false, err.ExecutionError{Problem: "procedure ran past the end of its instructions"}
}

func popIntegerOperands(stack *Stack, operation string) (inst.Integer, inst.Integer, err.Error) {
	right, ok := stack.Pop()
	if !ok {
		return 0, 0, err.ExecutionError{Problem: fmt.Sprintf("stack underflow in %s instruction", operation)}
	}
	left, ok := stack.Pop()
	if !ok {
		return 0, 0, err.ExecutionError{Problem: fmt.Sprintf("stack underflow in %s instruction", operation)}
	}
	rv, ok := right.Value.(inst.Integer)
	if !ok {
		return 0, 0, err.ExecutionError{Problem: fmt.Sprintf("%s of non-integer value %T", operation, right.Value)}
	}
	lv, ok := left.Value.(inst.Integer)
	if !ok {
		return 0, 0, err.ExecutionError{Problem: fmt.Sprintf("%s of non-integer value %T", operation, left.Value)}
	}
	return lv, rv, nil
}
