// Copyright 2019 The fpl authors. All rights reserved.
// Use of this source code is governed by an AGPL license that can be found in the LICENSE file.
package bnd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fpl-lang/fpl/fvm/mdl"
)

const indentUnit = "    "

// ToHuman renders the bound tree rooted at id as an indented listing,
// one node per line, each annotated with its static type.
func ToHuman(a *Arena, id ID) string {
	out := &strings.Builder{}
	toHuman(out, a, id, 0)
	return out.String()
}

func toHuman(out *strings.Builder, a *Arena, id ID, indent int) {
	out.WriteString(strings.Repeat(indentUnit, indent))
	n := a.Node(id)
	switch n := n.(type) {

	case Block:
		out.WriteString("block : " + typeString(a, id) + "\n")
		for _, x := range n.Expressions {
			toHuman(out, a, x, indent+1)
		}

	case Export:
		out.WriteString("export " + n.Name + " : " + typeString(a, id) + "\n")
		toHuman(out, a, n.Value, indent+1)

	case Let:
		out.WriteString("let " + n.Name + " : " + typeString(a, id) + "\n")
		if n.HasValue {
			toHuman(out, a, n.Value, indent+1)
		}

	case Unary:
		out.WriteString("unary " + n.Operator.Kind.String() + " : " + typeString(a, id) + "\n")
		toHuman(out, a, n.Operand, indent+1)

	case Binary:
		out.WriteString("binary " + n.Operator.Kind.String() + " : " + typeString(a, id) + "\n")
		toHuman(out, a, n.Left, indent+1)
		toHuman(out, a, n.Right, indent+1)

	case Name:
		out.WriteString("name " + n.Name + " : " + typeString(a, id) + "\n")

	case Integer:
		out.WriteString("integer " + strconv.FormatInt(n.Value, 10) + " : " + typeString(a, id) + "\n")

	case Call:
		out.WriteString("call : " + typeString(a, id) + "\n")
		toHuman(out, a, n.Callee, indent+1)
		for _, x := range n.Arguments {
			toHuman(out, a, x, indent+1)
		}

	case Builtin:
		out.WriteString("builtin " + n.Name + " : " + typeString(a, id) + "\n")

	default:
		panic(fmt.Sprintf("unhandled bound node type: %T", n))
	}
}

func typeString(a *Arena, id ID) string {
	return mdl.ToHuman(a.TypeOf(id))
}
