// Copyright 2019 The fpl authors. All rights reserved.
// Use of this source code is governed by an AGPL license that can be found in the LICENSE file.

// Package fvm is the language back end: it binds and type checks a
// syntax tree, lowers it to bytecode and executes the result on a
// stack machine.
package fvm

import (
	"github.com/fpl-lang/fpl/fvm/err"
	"github.com/fpl-lang/fpl/fvm/inst"
	"github.com/fpl-lang/fpl/fvm/parse"
)

// CompileSource runs the whole front and middle end over one source
// file: lex, parse, bind, lower. Filepath is used in diagnostics only.
func CompileSource(filepath, source string) (inst.Sequence, err.Error) {
	file, e := parse.ParseFile(parse.NewLexer(filepath, source))
	if e != nil {
		return nil, e
	}
	arena, root, e := Bind(file)
	if e != nil {
		return nil, e
	}
	return CompileProgram(arena, root), nil
}
