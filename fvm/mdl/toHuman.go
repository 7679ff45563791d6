// Copyright 2019 The fpl authors. All rights reserved.
// Use of this source code is governed by an AGPL license that can be found in the LICENSE file.
package mdl

import (
	"fmt"
	"sort"
	"strings"
)

// ToHuman renders a type for diagnostics and debug dumps.
func ToHuman(t Type) string {
	switch t := t.(type) {

	case Void:
		return "void"

	case Meta:
		return "type"

	case Integer:
		return "integer"

	case Block:
		if len(t) == 0 {
			return "block{}"
		}
		keys := make([]string, 0, len(t))
		for k, _ := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fields := make([]string, 0, len(keys))
		for _, k := range keys {
			fields = append(fields, k+": "+ToHuman(t[k]))
		}
		return "block{" + strings.Join(fields, ", ") + "}"

	case Proc:
		parameters := make([]string, 0, len(t.Parameters))
		for _, p := range t.Parameters {
			parameters = append(parameters, ToHuman(p))
		}
		return "proc(" + strings.Join(parameters, ", ") + ") -> " + ToHuman(t.Result)

	}
	panic(fmt.Sprintf("unhandled type: %T", t))
}
