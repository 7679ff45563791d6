// Copyright 2019 The fpl authors. All rights reserved.
// Use of this source code is governed by an AGPL license that can be found in the LICENSE file.
package bnd

import (
	"github.com/fpl-lang/fpl/common"
	"github.com/fpl-lang/fpl/fvm/mdl"
)

// ID is a stable handle to a node in an Arena. Nodes refer to each other
// exclusively by ID, so no node owns another and references like a
// name's definition target stay cheap and copyable.
type ID int

// Arena owns all bound nodes of one program. IDs index into it and
// never move.
type Arena struct {
	nodes []Node
}

func NewArena() *Arena {
	return &Arena{}
}

// Append adds a node and returns its ID.
func (a *Arena) Append(n Node) ID {
	a.nodes = append(a.nodes, n)
	return ID(len(a.nodes) - 1)
}

func (a *Arena) Node(id ID) Node {
	return a.nodes[id]
}

// TypeOf resolves a node's static type, chasing references through the
// arena where the node itself does not carry one.
func (a *Arena) TypeOf(id ID) mdl.Type {
	return a.nodes[id].Type(a)
}

func (a *Arena) Len() int {
	return len(a.nodes)
}

// Node is the closed set of bound nodes. Every node knows its source
// location and its static type.
type Node interface {
	Location() common.SourceLocation
	Type(*Arena) mdl.Type
	_bnd() // private interface
}

// Block is a bound block or file body. Exports maps each exported name
// to its defining node.
type Block struct {
	Loc         common.SourceLocation
	Expressions []ID
	Exports     map[string]ID
	BlockType   mdl.Type
}

type Export struct {
	Loc   common.SourceLocation
	Name  string
	Value ID
}

// Let is a local definition. HasValue is false for a valueless let,
// which defines the name as void.
type Let struct {
	Loc      common.SourceLocation
	Name     string
	Value    ID
	HasValue bool
}

type Unary struct {
	Loc      common.SourceLocation
	Operator mdl.UnaryOperator
	Operand  ID
}

type Binary struct {
	Loc      common.SourceLocation
	Left     ID
	Operator mdl.BinaryOperator
	Right    ID
}

// Name is a resolved reference: Target is the definition it refers to.
type Name struct {
	Loc    common.SourceLocation
	Name   string
	Target ID
}

type Integer struct {
	Loc   common.SourceLocation
	Value int64
}

type Call struct {
	Loc       common.SourceLocation
	Callee    ID
	Arguments []ID
	ProcType  mdl.Type
}

// Builtin is a predefined procedure seeded into the root scope.
type Builtin struct {
	Loc      common.SourceLocation
	Name     string
	ProcType mdl.Proc
}

func (Block) _bnd()   {}
func (Export) _bnd()  {}
func (Let) _bnd()     {}
func (Unary) _bnd()   {}
func (Binary) _bnd()  {}
func (Name) _bnd()    {}
func (Integer) _bnd() {}
func (Call) _bnd()    {}
func (Builtin) _bnd() {}

func (n Block) Location() common.SourceLocation {
	return n.Loc
}
func (n Export) Location() common.SourceLocation {
	return n.Loc
}
func (n Let) Location() common.SourceLocation {
	return n.Loc
}
func (n Unary) Location() common.SourceLocation {
	return n.Loc
}
func (n Binary) Location() common.SourceLocation {
	return n.Loc
}
func (n Name) Location() common.SourceLocation {
	return n.Loc
}
func (n Integer) Location() common.SourceLocation {
	return n.Loc
}
func (n Call) Location() common.SourceLocation {
	return n.Loc
}
func (n Builtin) Location() common.SourceLocation {
	return n.Loc
}

func (n Block) Type(a *Arena) mdl.Type {
	return n.BlockType
}

func (n Export) Type(a *Arena) mdl.Type {
	return a.TypeOf(n.Value)
}

func (n Let) Type(a *Arena) mdl.Type {
	if !n.HasValue {
		return mdl.Void{}
	}
	return a.TypeOf(n.Value)
}

func (n Unary) Type(a *Arena) mdl.Type {
	return n.Operator.Result
}

func (n Binary) Type(a *Arena) mdl.Type {
	return n.Operator.Result
}

func (n Name) Type(a *Arena) mdl.Type {
	return a.TypeOf(n.Target)
}

func (n Integer) Type(a *Arena) mdl.Type {
	return mdl.Integer{}
}

func (n Call) Type(a *Arena) mdl.Type {
	return n.ProcType
}

func (n Builtin) Type(a *Arena) mdl.Type {
	return n.ProcType
}
