// Copyright 2019 The fpl authors. All rights reserved.
// Use of this source code is governed by an AGPL license that can be found in the LICENSE file.
package config

import (
	"flag"
	"os"
)

var (
	CacheFile    string
	DumpAst      bool
	DumpBound    bool
	DumpBytecode bool
	Trace        bool
)

func init() {
	flag.StringVar(
		&CacheFile,
		"cache-file",
		getenv("FPL_CACHE_FILE", CacheFile),
		"Path to the compiled program cache. Caching is disabled when empty. Defaults to environment variable FPL_CACHE_FILE.",
	)
	flag.BoolVar(
		&DumpAst,
		"dump-ast",
		getenvBool("FPL_DUMP_AST", DumpAst),
		"Print the syntax tree before binding. Defaults to environment variable FPL_DUMP_AST.",
	)
	flag.BoolVar(
		&DumpBound,
		"dump-bound",
		getenvBool("FPL_DUMP_BOUND", DumpBound),
		"Print the bound tree with types after binding. Defaults to environment variable FPL_DUMP_BOUND.",
	)
	flag.BoolVar(
		&DumpBytecode,
		"dump-bytecode",
		getenvBool("FPL_DUMP_BYTECODE", DumpBytecode),
		"Print the lowered instruction sequence before execution. Defaults to environment variable FPL_DUMP_BYTECODE.",
	)
	flag.BoolVar(
		&Trace,
		"trace",
		getenvBool("FPL_TRACE", Trace),
		"Print each executed instruction and the operand stack. Defaults to environment variable FPL_TRACE.",
	)
}

func getenv(key string, deflt string) string {
	v := os.Getenv(key)
	if v == "" {
		return deflt
	}
	return v
}

func getenvBool(key string, deflt bool) bool {
	switch os.Getenv(key) {
	case "1", "true", "yes":
		return true
	case "0", "false", "no":
		return false
	}
	return deflt
}
