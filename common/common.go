// Copyright 2019 The fpl authors. All rights reserved.
// Use of this source code is governed by an AGPL license that can be found in the LICENSE file.
package common

// SourceLocation identifies a position in a source file.
// Line and Column are 1-based, Position is a 0-based byte offset.
type SourceLocation struct {
	Filepath string
	Position int
	Line     int
	Column   int
}
