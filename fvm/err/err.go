// Copyright 2019 The fpl authors. All rights reserved.
// Use of this source code is governed by an AGPL license that can be found in the LICENSE file.
package err

import (
	"fmt"

	"github.com/fpl-lang/fpl/common"
)

// Error is implemented by every diagnostic in the pipeline.
type Error interface {
	Error() string  // proxy to String() (to implement error interface)
	String() string // human readable string
	Child() Error   // may be nil
}

// Note is supplementary information attached to a compile error.
// Location may be nil.
type Note struct {
	Location *common.SourceLocation
	Message  string
}

// CompileError is implemented by diagnostics that point at a source
// location and render in the compiler's diagnostic format.
type CompileError interface {
	Error
	Location() common.SourceLocation
	Message() string
	Notes() []Note
}

// Render produces the diagnostic format external tooling depends on:
//
//	<filepath>:<line>:<column>: Compile Error: <message>
//
// followed by one line per note, each optionally prefixed by a location.
func Render(e CompileError) string {
	loc := e.Location()
	out := fmt.Sprintf("%s:%d:%d: Compile Error: %s", loc.Filepath, loc.Line, loc.Column, e.Message())
	for _, n := range e.Notes() {
		out += "\n"
		if n.Location != nil {
			out += fmt.Sprintf("%s:%d:%d: ", n.Location.Filepath, n.Location.Line, n.Location.Column)
		}
		out += "Note: " + n.Message
	}
	return out
}

// SyntaxError is any lexer or parser failure.
type SyntaxError struct {
	Loc      common.SourceLocation
	Problem  string
	NoteList []Note
}

var _ CompileError = SyntaxError{}

func (e SyntaxError) Location() common.SourceLocation {
	return e.Loc
}
func (e SyntaxError) Message() string {
	return e.Problem
}
func (e SyntaxError) Notes() []Note {
	return e.NoteList
}
func (e SyntaxError) Error() string {
	return e.String()
}
func (e SyntaxError) String() string {
	return Render(e)
}
func (e SyntaxError) Child() Error {
	return nil
}

// ExecutionError is a fatal fault in a running program. It aborts the
// run; it is never recoverable at the language level.
type ExecutionError struct {
	Problem string
	Child_  Error
}

var _ Error = ExecutionError{}

func (e ExecutionError) Error() string {
	return e.String()
}
func (e ExecutionError) String() string {
	return "Runtime Fault: " + e.Problem
}
func (e ExecutionError) Child() Error {
	return e.Child_
}
