// Copyright 2019 The fpl authors. All rights reserved.
// Use of this source code is governed by an AGPL license that can be found in the LICENSE file.

// Package cache persists compiled programs keyed by a hash of their
// source, so unchanged files skip the bind and lowering passes.
package cache

import (
	"fmt"
	"time"

	"github.com/fpl-lang/fpl/codec"
	"github.com/fpl-lang/fpl/fvm/inst"

	bolt "github.com/coreos/bbolt"
	"golang.org/x/crypto/blake2b"
)

const (
	InitialMmapSize = 1024 * 1024 * 16 // 16MB
	Perm            = 0700
)

var programsBucket = []byte("programs")

// Key is a content hash of one source file. Equal sources always map
// to the same key.
type Key [blake2b.Size256]byte

func NewKey(filepath, source string) Key {
	return Key(blake2b.Sum256([]byte(filepath + "\x00" + source)))
}

type Cache struct {
	db *bolt.DB
}

func Open(path string) (*Cache, error) {
	db, e := bolt.Open(path, Perm, &bolt.Options{
		InitialMmapSize: InitialMmapSize,
		Timeout:         time.Second * 3,
	})
	if e != nil {
		return nil, e
	}
	e = db.Update(func(tx *bolt.Tx) error {
		_, e := tx.CreateBucketIfNotExists(programsBucket)
		return e
	})
	if e != nil {
		db.Close()
		return nil, e
	}
	return &Cache{db: db}, nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}

// Lookup returns the cached program for key. A miss is (nil, nil); a
// corrupt entry is an error.
func (c *Cache) Lookup(key Key) (inst.Sequence, error) {
	var data []byte
	e := c.db.View(func(tx *bolt.Tx) error {
		stored := tx.Bucket(programsBucket).Get(key[:])
		if stored != nil {
			data = make([]byte, len(stored))
			copy(data, stored)
		}
		return nil
	})
	if e != nil {
		return nil, e
	}
	if data == nil {
		return nil, nil
	}
	program, e := codec.Decode(data)
	if e != nil {
		return nil, fmt.Errorf("cache: corrupt entry: %s", e)
	}
	return program, nil
}

func (c *Cache) Store(key Key, program inst.Sequence) error {
	data := codec.Encode(program)
	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(programsBucket).Put(key[:], data)
	})
}
