// Copyright 2019 The fpl authors. All rights reserved.
// Use of this source code is governed by an AGPL license that can be found in the LICENSE file.
package mdl

// Type is the closed set of static types. Equality is structural and
// deep, including nested block mappings and procedure signatures.
type Type interface {
	Equals(Type) bool
	_mdl() // private interface
}

type Void struct{}

// Meta is the type of types. Reserved: no expression produces it yet.
type Meta struct{}

type Integer struct{}

// Block maps a block's exported names to their types. Lets are absent.
type Block map[string]Type

// Proc is a procedure signature: ordered parameter types and one result.
type Proc struct {
	Parameters []Type
	Result     Type
}

func (Void) _mdl()    {}
func (Meta) _mdl()    {}
func (Integer) _mdl() {}
func (Block) _mdl()   {}
func (Proc) _mdl()    {}

func (Void) Equals(t Type) bool {
	_, ok := t.(Void)
	return ok
}

func (Meta) Equals(t Type) bool {
	_, ok := t.(Meta)
	return ok
}

func (Integer) Equals(t Type) bool {
	_, ok := t.(Integer)
	return ok
}

func (b Block) Equals(t Type) bool {
	q, ok := t.(Block)
	if !ok {
		return false
	}
	if len(b) != len(q) {
		return false
	}
	for k, m := range b {
		n, ok := q[k]
		if !ok {
			return false
		}
		if !m.Equals(n) {
			return false
		}
	}
	return true
}

func (p Proc) Equals(t Type) bool {
	q, ok := t.(Proc)
	if !ok {
		return false
	}
	if len(p.Parameters) != len(q.Parameters) {
		return false
	}
	for i, m := range p.Parameters {
		if !m.Equals(q.Parameters[i]) {
			return false
		}
	}
	return p.Result.Equals(q.Result)
}
