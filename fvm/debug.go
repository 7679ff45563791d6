// Copyright 2019 The fpl authors. All rights reserved.
// Use of this source code is governed by an AGPL license that can be found in the LICENSE file.
package fvm

import (
	"fmt"

	"github.com/fpl-lang/fpl/fvm/inst"

	"github.com/kr/pretty"
)

// DumpProgram renders an instruction sequence for debugging, one
// instruction per line.
func DumpProgram(program inst.Sequence) string {
	out := ""
	for i, n := range program {
		out += fmt.Sprintf("%4d %# v\n", i, pretty.Formatter(n))
	}
	return out
}
