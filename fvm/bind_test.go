// Copyright 2019 The fpl authors. All rights reserved.
// Use of this source code is governed by an AGPL license that can be found in the LICENSE file.
package fvm

import (
	"testing"

	"github.com/fpl-lang/fpl/fvm/bnd"
	"github.com/fpl-lang/fpl/fvm/err"
	"github.com/fpl-lang/fpl/fvm/mdl"
	"github.com/fpl-lang/fpl/fvm/parse"
)

func bindSource(t *testing.T, source string) (*bnd.Arena, bnd.ID) {
	t.Helper()
	file, e := parse.ParseFile(parse.NewLexer("Test.fpl", source))
	if e != nil {
		t.Fatalf("parse failed: %s", e.String())
	}
	arena, root, e := Bind(file)
	if e != nil {
		t.Fatalf("bind failed: %s", e.String())
	}
	return arena, root
}

func bindError(t *testing.T, source string) err.Error {
	t.Helper()
	file, e := parse.ParseFile(parse.NewLexer("Test.fpl", source))
	if e != nil {
		t.Fatalf("parse failed: %s", e.String())
	}
	_, _, e = Bind(file)
	if e == nil {
		t.Fatalf("bind succeeded unexpectedly")
	}
	return e
}

func TestBindIntegerCeiling(t *testing.T) {

	{ // largest representable value
		arena, root := bindSource(t, `9223372036854775807`)
		block := arena.Node(root).(bnd.Block)
		integer := arena.Node(block.Expressions[0]).(bnd.Integer)
		if integer.Value != 9223372036854775807 {
			t.Fatalf("unexpected value: %d", integer.Value)
		}
		if !arena.TypeOf(block.Expressions[0]).Equals(mdl.Integer{}) {
			t.Fatalf("unexpected type")
		}
	}

	{ // one beyond the ceiling
		e := bindError(t, `9223372036854775808`)
		if _, ok := e.(IntegerTooLargeError); !ok {
			t.Fatalf("unexpected error: %s", e.String())
		}
	}

	{ // beyond 64 bits entirely
		e := bindError(t, `18446744073709551616`)
		if _, ok := e.(IntegerTooLargeError); !ok {
			t.Fatalf("unexpected error: %s", e.String())
		}
		expected := `Test.fpl:1:1: Compile Error: Integer 18446744073709551616 is too big for a 64 bit signed integer`
		if e.String() != expected {
			t.Fatalf("unexpected rendering: %s", e.String())
		}
	}
}

func TestBindDuplicateDefinition(t *testing.T) {

	e := bindError(t, "let a = 1\nlet a = 2")
	if _, ok := e.(DuplicateDefinitionError); !ok {
		t.Fatalf("unexpected error: %s", e.String())
	}
	expected := "Test.fpl:2:5: Compile Error: a is already defined\n" +
		"Test.fpl:1:5: Note: a was previously defined here"
	if e.String() != expected {
		t.Fatalf("unexpected rendering: %s", e.String())
	}

	{ // expressions in between do not matter
		e := bindError(t, "export a = 1\n1 + 2\nexport a = 3")
		if _, ok := e.(DuplicateDefinitionError); !ok {
			t.Fatalf("unexpected error: %s", e.String())
		}
	}
}

func TestBindShadowing(t *testing.T) {

	arena, root := bindSource(t, "let a = 1\n{\nlet a = 2\nexport b = a\n}\nlet c = a")

	rootBlock := arena.Node(root).(bnd.Block)
	if len(rootBlock.Expressions) != 3 {
		t.Fatalf("unexpected expression count: %d", len(rootBlock.Expressions))
	}
	outerLet := rootBlock.Expressions[0]

	// the inner export's name resolves to the inner let
	innerBlock := arena.Node(rootBlock.Expressions[1]).(bnd.Block)
	innerLet := innerBlock.Expressions[0]
	export := arena.Node(innerBlock.Expressions[1]).(bnd.Export)
	exported := arena.Node(export.Value).(bnd.Name)
	if exported.Target != innerLet {
		t.Fatalf("inner name bound to node %d, want %d", exported.Target, innerLet)
	}

	// after the block, a still denotes the outer definition
	outerUse := arena.Node(rootBlock.Expressions[2]).(bnd.Let)
	name := arena.Node(outerUse.Value).(bnd.Name)
	if name.Target != outerLet {
		t.Fatalf("outer name bound to node %d, want %d", name.Target, outerLet)
	}
}

func TestBindBlockType(t *testing.T) {

	arena, root := bindSource(t, "{\nlet a = 1\nexport b = 2\n}")
	rootBlock := arena.Node(root).(bnd.Block)
	blockType := arena.TypeOf(rootBlock.Expressions[0])

	expected := mdl.Block{"b": mdl.Integer{}}
	if !blockType.Equals(expected) {
		t.Fatalf("unexpected block type: %s", mdl.ToHuman(blockType))
	}
}

func TestBindUndefinedName(t *testing.T) {
	e := bindError(t, `x`)
	if _, ok := e.(UndefinedNameError); !ok {
		t.Fatalf("unexpected error: %s", e.String())
	}
	if e.String() != `Test.fpl:1:1: Compile Error: Unable to find x` {
		t.Fatalf("unexpected rendering: %s", e.String())
	}
}

func TestBindOperatorNotFound(t *testing.T) {

	{ // valueless let has type void
		e := bindError(t, "let a\na + 1")
		if _, ok := e.(OperatorNotFoundError); !ok {
			t.Fatalf("unexpected error: %s", e.String())
		}
		expected := `Test.fpl:2:3: Compile Error: Unable to find binary operator + for types void and integer`
		if e.String() != expected {
			t.Fatalf("unexpected rendering: %s", e.String())
		}
	}

	{ // no unary minus on procedures
		e := bindError(t, `-print_integer`)
		if _, ok := e.(OperatorNotFoundError); !ok {
			t.Fatalf("unexpected error: %s", e.String())
		}
		expected := `Test.fpl:1:1: Compile Error: Unable to find unary operator - for type proc(integer) -> void`
		if e.String() != expected {
			t.Fatalf("unexpected rendering: %s", e.String())
		}
	}
}

func TestBindCallErrors(t *testing.T) {

	{ // integers are not callable
		e := bindError(t, `1(2)`)
		notCallable, ok := e.(NotCallableError)
		if !ok {
			t.Fatalf("unexpected error: %s", e.String())
		}
		if !notCallable.Actual.Equals(mdl.Integer{}) {
			t.Fatalf("unexpected actual type: %s", mdl.ToHuman(notCallable.Actual))
		}
		expected := "Test.fpl:1:4: Compile Error: Cannot call a non procedure\n" +
			"Test.fpl:1:1: Note: The type was integer"
		if e.String() != expected {
			t.Fatalf("unexpected rendering: %s", e.String())
		}
	}

	{ // too few arguments
		e := bindError(t, `print_integer()`)
		arity, ok := e.(ArityMismatchError)
		if !ok {
			t.Fatalf("unexpected error: %s", e.String())
		}
		if arity.Expected != 1 || arity.Actual != 0 {
			t.Fatalf("unexpected arity: %d/%d", arity.Expected, arity.Actual)
		}
	}

	{ // too many arguments
		e := bindError(t, `print_integer(1, 2)`)
		arity, ok := e.(ArityMismatchError)
		if !ok {
			t.Fatalf("unexpected error: %s", e.String())
		}
		if arity.Expected != 1 || arity.Actual != 2 {
			t.Fatalf("unexpected arity: %d/%d", arity.Expected, arity.Actual)
		}
	}

	{ // wrong argument type
		e := bindError(t, `print_integer(print_integer)`)
		mismatch, ok := e.(ArgumentTypeMismatchError)
		if !ok {
			t.Fatalf("unexpected error: %s", e.String())
		}
		if !mismatch.Expected.Equals(mdl.Integer{}) {
			t.Fatalf("unexpected expected type: %s", mdl.ToHuman(mismatch.Expected))
		}
		expected := `Test.fpl:1:15: Compile Error: Wrong argument type for procedure, expected type integer but got type proc(integer) -> void`
		if e.String() != expected {
			t.Fatalf("unexpected rendering: %s", e.String())
		}
	}
}

func TestBindBuiltinType(t *testing.T) {
	arena, root := bindSource(t, `print_integer`)
	block := arena.Node(root).(bnd.Block)
	actual := arena.TypeOf(block.Expressions[0])
	expected := mdl.Proc{
		Parameters: []mdl.Type{mdl.Integer{}},
		Result:     mdl.Void{},
	}
	if !actual.Equals(expected) {
		t.Fatalf("unexpected builtin type: %s", mdl.ToHuman(actual))
	}
}

func TestBoundTreeDump(t *testing.T) {
	arena, root := bindSource(t, "let a = 1")
	dump := bnd.ToHuman(arena, root)
	expected := "block : block{}\n" +
		"    let a : integer\n" +
		"        integer 1 : integer\n"
	if dump != expected {
		t.Fatalf("unexpected dump:\n%s", dump)
	}
}
