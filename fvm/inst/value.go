// Copyright 2019 The fpl authors. All rights reserved.
// Use of this source code is governed by an AGPL license that can be found in the LICENSE file.
package inst

import (
	"reflect"
)

// Value is the closed set of runtime values.
type Value interface {
	Equals(Value) bool
	_val() // private interface
}

type Void struct{}

type Integer int64

// Procedure is a callable value: the instruction sequence of its body.
type Procedure Sequence

// Record maps exported names to their values. Blocks evaluate to void
// at runtime today; Record exists for the codec and future block values.
type Record map[string]Value

func (Void) _val()      {}
func (Integer) _val()   {}
func (Procedure) _val() {}
func (Record) _val()    {}

func (Void) Equals(v Value) bool {
	_, ok := v.(Void)
	return ok
}

func (i Integer) Equals(v Value) bool {
	q, ok := v.(Integer)
	return ok && i == q
}

func (p Procedure) Equals(v Value) bool {
	q, ok := v.(Procedure)
	return ok && reflect.DeepEqual(p, q)
}

func (r Record) Equals(v Value) bool {
	q, ok := v.(Record)
	if !ok {
		return false
	}
	if len(r) != len(q) {
		return false
	}
	for k, m := range r {
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
