// Copyright 2019 The fpl authors. All rights reserved.
// Use of this source code is governed by an AGPL license that can be found in the LICENSE file.
package parse

import (
	"testing"

	"github.com/fpl-lang/fpl/fvm/ast"
	"github.com/fpl-lang/fpl/fvm/err"
	"github.com/fpl-lang/fpl/fvm/tok"
)

func parseSource(t *testing.T, source string) ast.File {
	t.Helper()
	file, e := ParseFile(NewLexer("Test.fpl", source))
	if e != nil {
		t.Fatalf("parse failed: %s", e.String())
	}
	return file
}

func parseError(t *testing.T, source string) err.Error {
	t.Helper()
	_, e := ParseFile(NewLexer("Test.fpl", source))
	if e == nil {
		t.Fatalf("parse succeeded unexpectedly")
	}
	return e
}

func TestParsePrecedence(t *testing.T) {

	{ // multiplication binds tighter than addition
		file := parseSource(t, `1 + 2 * 3`)
		sum := file.Expressions[0].(ast.Binary)
		if sum.OperatorToken.Kind != tok.Plus {
			t.Fatalf("unexpected operator: %s", sum.OperatorToken.Kind)
		}
		product := sum.Right.(ast.Binary)
		if product.OperatorToken.Kind != tok.Asterisk {
			t.Fatalf("unexpected operator: %s", product.OperatorToken.Kind)
		}
	}

	{ // parentheses override precedence
		file := parseSource(t, `(1 + 2) * 3`)
		product := file.Expressions[0].(ast.Binary)
		if product.OperatorToken.Kind != tok.Asterisk {
			t.Fatalf("unexpected operator: %s", product.OperatorToken.Kind)
		}
		if _, ok := product.Left.(ast.Binary); !ok {
			t.Fatalf("unexpected left operand: %T", product.Left)
		}
	}

	{ // same precedence associates left
		file := parseSource(t, `10 - 3 - 2`)
		outer := file.Expressions[0].(ast.Binary)
		if _, ok := outer.Left.(ast.Binary); !ok {
			t.Fatalf("unexpected left operand: %T", outer.Left)
		}
		if _, ok := outer.Right.(ast.Integer); !ok {
			t.Fatalf("unexpected right operand: %T", outer.Right)
		}
	}

	{ // unary binds tighter than binary
		file := parseSource(t, `-1 + 2`)
		sum := file.Expressions[0].(ast.Binary)
		if _, ok := sum.Left.(ast.Unary); !ok {
			t.Fatalf("unexpected left operand: %T", sum.Left)
		}
	}
}

func TestParseCall(t *testing.T) {

	{
		file := parseSource(t, `f(1, 2)`)
		call := file.Expressions[0].(ast.Call)
		if len(call.Arguments) != 2 {
			t.Fatalf("unexpected argument count: %d", len(call.Arguments))
		}
		if _, ok := call.Operand.(ast.Name); !ok {
			t.Fatalf("unexpected operand: %T", call.Operand)
		}
	}

	{ // trailing comma is allowed
		file := parseSource(t, `f(1, 2,)`)
		call := file.Expressions[0].(ast.Call)
		if len(call.Arguments) != 2 {
			t.Fatalf("unexpected argument count: %d", len(call.Arguments))
		}
	}

	{ // calls chain
		file := parseSource(t, `f(1)(2)`)
		outer := file.Expressions[0].(ast.Call)
		inner := outer.Operand.(ast.Call)
		if _, ok := inner.Operand.(ast.Name); !ok {
			t.Fatalf("unexpected operand: %T", inner.Operand)
		}
	}

	{ // call binds tighter than unary
		file := parseSource(t, `-f()`)
		unary := file.Expressions[0].(ast.Unary)
		if _, ok := unary.Operand.(ast.Call); !ok {
			t.Fatalf("unexpected operand: %T", unary.Operand)
		}
	}

	{ // missing comma
		e := parseError(t, `f(1 2)`)
		expected := `Test.fpl:1:5: Compile Error: Expected , to seperate arguments in the call, but got an integer`
		if e.String() != expected {
			t.Fatalf("unexpected rendering: %s", e.String())
		}
	}
}

func TestParseLet(t *testing.T) {

	{
		file := parseSource(t, `let a = 1`)
		let := file.Expressions[0].(ast.Let)
		if let.NameToken.Text != "a" {
			t.Fatalf("unexpected name: %s", let.NameToken.Text)
		}
		if let.Value == nil {
			t.Fatalf("missing value")
		}
	}

	{ // valueless let
		file := parseSource(t, `let a`)
		let := file.Expressions[0].(ast.Let)
		if let.Value != nil || let.EqualToken != nil {
			t.Fatalf("unexpected value")
		}
	}

	{
		e := parseError(t, `let 1`)
		expected := `Test.fpl:1:5: Compile Error: Expected a name for let, but got an integer`
		if e.String() != expected {
			t.Fatalf("unexpected rendering: %s", e.String())
		}
	}
}

func TestParseExport(t *testing.T) {

	{
		file := parseSource(t, `export a = 1`)
		export := file.Expressions[0].(ast.Export)
		if export.NameToken.Text != "a" {
			t.Fatalf("unexpected name: %s", export.NameToken.Text)
		}
	}

	{
		e := parseError(t, `export = 1`)
		expected := `Test.fpl:1:8: Compile Error: Expected a name for export, but got =`
		if e.String() != expected {
			t.Fatalf("unexpected rendering: %s", e.String())
		}
	}

	{
		e := parseError(t, `export a 1`)
		expected := `Test.fpl:1:10: Compile Error: Expected = for export value, but got an integer`
		if e.String() != expected {
			t.Fatalf("unexpected rendering: %s", e.String())
		}
	}
}

func TestParseBlock(t *testing.T) {

	file := parseSource(t, "{\nlet a = 1\nexport b = a\n}")
	block := file.Expressions[0].(ast.Block)
	if len(block.Expressions) != 2 {
		t.Fatalf("unexpected expression count: %d", len(block.Expressions))
	}
	if _, ok := block.Expressions[0].(ast.Let); !ok {
		t.Fatalf("unexpected expression: %T", block.Expressions[0])
	}
	if _, ok := block.Expressions[1].(ast.Export); !ok {
		t.Fatalf("unexpected expression: %T", block.Expressions[1])
	}

	{ // empty block
		file := parseSource(t, `{}`)
		block := file.Expressions[0].(ast.Block)
		if len(block.Expressions) != 0 {
			t.Fatalf("unexpected expression count: %d", len(block.Expressions))
		}
	}
}

func TestParseNewlineSeparation(t *testing.T) {

	{ // expressions separate on newlines, blank lines are fine
		file := parseSource(t, "1\n\n2\n")
		if len(file.Expressions) != 2 {
			t.Fatalf("unexpected expression count: %d", len(file.Expressions))
		}
	}

	{ // two expressions on one line is an error
		e := parseError(t, `1 2`)
		expected := `Test.fpl:1:3: Compile Error: Expected a newline at the end of the expression, but got an integer`
		if e.String() != expected {
			t.Fatalf("unexpected rendering: %s", e.String())
		}
	}

	{ // operators continue over a newline
		file := parseSource(t, "1 +\n2")
		if len(file.Expressions) != 1 {
			t.Fatalf("unexpected expression count: %d", len(file.Expressions))
		}
		if _, ok := file.Expressions[0].(ast.Binary); !ok {
			t.Fatalf("unexpected expression: %T", file.Expressions[0])
		}
	}
}

func TestParseExpectedExpression(t *testing.T) {
	e := parseError(t, `,`)
	expected := `Test.fpl:1:1: Compile Error: Expected an expression but got ,`
	if e.String() != expected {
		t.Fatalf("unexpected rendering: %s", e.String())
	}
}
