// Copyright 2019 The fpl authors. All rights reserved.
// Use of this source code is governed by an AGPL license that can be found in the LICENSE file.
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/fpl-lang/fpl/cache"
	"github.com/fpl-lang/fpl/config"
	"github.com/fpl-lang/fpl/fvm"
	"github.com/fpl-lang/fpl/fvm/bnd"
	"github.com/fpl-lang/fpl/fvm/inst"
	"github.com/fpl-lang/fpl/fvm/parse"
)

func main() {

	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: fpl [flags] <source file>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	filepath := flag.Arg(0)

	bytes, e := ioutil.ReadFile(filepath)
	if e != nil {
		log.Fatalln(e)
	}
	source := string(bytes)

	var programCache *cache.Cache = nil
	if config.CacheFile != "" {
		c, e := cache.Open(config.CacheFile)
		if e != nil {
			log.Fatalln(e)
		}
		defer c.Close()
		programCache = c
	}

	program := lookupCached(programCache, filepath, source)
	if program == nil {
		program = compile(filepath, source)
		if programCache != nil {
			if e := programCache.Store(cache.NewKey(filepath, source), program); e != nil {
				log.Println(e)
			}
		}
	}

	if config.DumpBytecode {
		fmt.Print(fvm.DumpProgram(program))
	}

	vm := &fvm.VirtualMachine{Trace: config.Trace}
	if e := vm.Run(program); e != nil {
		fmt.Fprintln(os.Stderr, e.String())
		os.Exit(1)
	}
}

func lookupCached(programCache *cache.Cache, filepath, source string) inst.Sequence {
	if programCache == nil {
		return nil
	}
	program, e := programCache.Lookup(cache.NewKey(filepath, source))
	if e != nil {
		log.Println(e)
		return nil
	}
	return program
}

// compile runs lex, parse, bind and lowering, printing the configured
// debug dumps along the way. Diagnostics go to stderr with exit code 1.
func compile(filepath, source string) inst.Sequence {

	file, e := parse.ParseFile(parse.NewLexer(filepath, source))
	if e != nil {
		fmt.Fprintln(os.Stderr, e.String())
		os.Exit(1)
	}
	if config.DumpAst {
		fmt.Print(file.Dump(0))
	}

	arena, root, e := fvm.Bind(file)
	if e != nil {
		fmt.Fprintln(os.Stderr, e.String())
		os.Exit(1)
	}
	if config.DumpBound {
		fmt.Print(bnd.ToHuman(arena, root))
	}

	return fvm.CompileProgram(arena, root)
}
