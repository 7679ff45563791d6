// Copyright 2019 The fpl authors. All rights reserved.
// Use of this source code is governed by an AGPL license that can be found in the LICENSE file.
package cache

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/fpl-lang/fpl/fvm/inst"
)

func tempCache(t *testing.T) (*Cache, func()) {
	t.Helper()
	dir, e := ioutil.TempDir("", "fpl-cache")
	if e != nil {
		t.Fatalf("tempdir failed: %s", e)
	}
	c, e := Open(filepath.Join(dir, "programs.db"))
	if e != nil {
		os.RemoveAll(dir)
		t.Fatalf("open failed: %s", e)
	}
	return c, func() {
		c.Close()
		os.RemoveAll(dir)
	}
}

func TestCacheRoundtrip(t *testing.T) {
	c, done := tempCache(t)
	defer done()

	program := inst.Sequence{
		inst.Constant{Value: inst.Integer(7)},
		inst.Pop{},
		inst.Exit{},
	}
	key := NewKey("Test.fpl", `7`)

	if e := c.Store(key, program); e != nil {
		t.Fatalf("store failed: %s", e)
	}
	cached, e := c.Lookup(key)
	if e != nil {
		t.Fatalf("lookup failed: %s", e)
	}
	if !reflect.DeepEqual(cached, program) {
		t.Fatalf("unexpected program:\n%#v", cached)
	}
}

func TestCacheMiss(t *testing.T) {
	c, done := tempCache(t)
	defer done()

	cached, e := c.Lookup(NewKey("Test.fpl", `7`))
	if e != nil {
		t.Fatalf("lookup failed: %s", e)
	}
	if cached != nil {
		t.Fatalf("unexpected hit")
	}
}

func TestKeyDiscriminates(t *testing.T) {
	a := NewKey("Test.fpl", `1`)
	b := NewKey("Test.fpl", `2`)
	if a == b {
		t.Fatalf("keys collide across sources")
	}
	c := NewKey("Other.fpl", `1`)
	if a == c {
		t.Fatalf("keys collide across filepaths")
	}
	if a != NewKey("Test.fpl", `1`) {
		t.Fatalf("keys are not deterministic")
	}
}
