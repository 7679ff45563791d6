// Copyright 2019 The fpl authors. All rights reserved.
// Use of this source code is governed by an AGPL license that can be found in the LICENSE file.
package inst

// Instruction is the closed set of virtual machine instructions.
type Instruction interface {
	_inst() // private interface
}

// Sequence is a flat list of instructions, executed in order.
type Sequence []Instruction

// Exit stops the whole program immediately, discarding the stack.
type Exit struct{}

// Constant pushes its value onto the stack.
type Constant struct {
	Value
}

// Pop discards the topmost stack value.
type Pop struct{}

// Dup duplicates the topmost stack value.
type Dup struct{}

// Call pops ArgumentCount arguments, then the procedure beneath them,
// and executes the procedure on a fresh stack seeded with the arguments
// in their original order.
type Call struct {
	ArgumentCount int
}

// Return ends the current procedure, popping its result.
type Return struct{}

// Load pushes the value of a named variable in the current frame.
type Load struct {
	Name string
}

// Store pops the top of the stack into a named variable in the current
// frame.
type Store struct {
	Name string
}

type AddInt struct{}
type SubInt struct{}
type MulInt struct{}
type DivInt struct{}
type NegInt struct{}

// PrintInt pops an integer and writes it, followed by a newline, to the
// machine's output.
type PrintInt struct{}

func (Sequence) _inst() {}
func (Exit) _inst()     {}
func (Constant) _inst() {}
func (Pop) _inst()      {}
func (Dup) _inst()      {}
func (Call) _inst()     {}
func (Return) _inst()   {}
func (Load) _inst()     {}
func (Store) _inst()    {}
func (AddInt) _inst()   {}
func (SubInt) _inst()   {}
func (MulInt) _inst()   {}
func (DivInt) _inst()   {}
func (NegInt) _inst()   {}
func (PrintInt) _inst() {}
