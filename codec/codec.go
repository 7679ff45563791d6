// Copyright 2019 The fpl authors. All rights reserved.
// Use of this source code is governed by an AGPL license that can be found in the LICENSE file.

// Package codec implements the binary encoding of compiled programs
// used by the on-disk program cache.
package codec

import (
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/fpl-lang/fpl/fvm/inst"
)

// Op identifies an instruction on the wire.
type Op byte

const (
	OpExit Op = iota
	OpConstant
	OpPop
	OpDup
	OpCall
	OpReturn
	OpLoad
	OpStore
	OpAddInt
	OpSubInt
	OpMulInt
	OpDivInt
	OpNegInt
	OpPrintInt
)

func (o Op) String() string {
	switch o {
	case OpExit:
		return "exit"
	case OpConstant:
		return "constant"
	case OpPop:
		return "pop"
	case OpDup:
		return "dup"
	case OpCall:
		return "call"
	case OpReturn:
		return "return"
	case OpLoad:
		return "load"
	case OpStore:
		return "store"
	case OpAddInt:
		return "addInt"
	case OpSubInt:
		return "subInt"
	case OpMulInt:
		return "mulInt"
	case OpDivInt:
		return "divInt"
	case OpNegInt:
		return "negInt"
	case OpPrintInt:
		return "printInt"
	}
	return "unknown"
}

// Tag identifies a constant value on the wire.
type Tag byte

const (
	TagVoid Tag = iota
	TagInteger
	TagProcedure
	TagRecord
)

func (t Tag) String() string {
	switch t {
	case TagVoid:
		return "void"
	case TagInteger:
		return "integer"
	case TagProcedure:
		return "procedure"
	case TagRecord:
		return "record"
	}
	return "unknown"
}

// Encode serializes a program. The encoding is length-prefixed
// throughout and has no framing of its own: Decode expects exactly one
// program per byte slice.
func Encode(program inst.Sequence) []byte {
	return encodeSequence(nil, program)
}

func encodeSequence(out []byte, program inst.Sequence) []byte {
	out = appendUvarint(out, uint64(len(program)))
	for _, n := range program {
		out = encodeInstruction(out, n)
	}
	return out
}

func encodeInstruction(out []byte, n inst.Instruction) []byte {
	switch n := n.(type) {
	case inst.Exit:
		return append(out, byte(OpExit))
	case inst.Constant:
		out = append(out, byte(OpConstant))
		return encodeValue(out, n.Value)
	case inst.Pop:
		return append(out, byte(OpPop))
	case inst.Dup:
		return append(out, byte(OpDup))
	case inst.Call:
		out = append(out, byte(OpCall))
		return appendUvarint(out, uint64(n.ArgumentCount))
	case inst.Return:
		return append(out, byte(OpReturn))
	case inst.Load:
		out = append(out, byte(OpLoad))
		return appendString(out, n.Name)
	case inst.Store:
		out = append(out, byte(OpStore))
		return appendString(out, n.Name)
	case inst.AddInt:
		return append(out, byte(OpAddInt))
	case inst.SubInt:
		return append(out, byte(OpSubInt))
	case inst.MulInt:
		return append(out, byte(OpMulInt))
	case inst.DivInt:
		return append(out, byte(OpDivInt))
	case inst.NegInt:
		return append(out, byte(OpNegInt))
	case inst.PrintInt:
		return append(out, byte(OpPrintInt))
	}
	panic(fmt.Sprintf("unhandled instruction type: %T", n))
}

func encodeValue(out []byte, v inst.Value) []byte {
	switch v := v.(type) {
	case inst.Void:
		return append(out, byte(TagVoid))
	case inst.Integer:
		out = append(out, byte(TagInteger))
		return appendVarint(out, int64(v))
	case inst.Procedure:
		out = append(out, byte(TagProcedure))
		return encodeSequence(out, inst.Sequence(v))
	case inst.Record:
		out = append(out, byte(TagRecord))
		out = appendUvarint(out, uint64(len(v)))
		keys := make([]string, 0, len(v))
		for k, _ := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			out = appendString(out, k)
			out = encodeValue(out, v[k])
		}
		return out
	}
	panic(fmt.Sprintf("unhandled value type: %T", v))
}

// Decode deserializes a program. It fails on unknown opcodes, truncated
// input and trailing bytes.
func Decode(data []byte) (inst.Sequence, error) {
	d := &decoder{data: data}
	program, e := d.sequence()
	if e != nil {
		return nil, e
	}
	if d.offset != len(d.data) {
		return nil, fmt.Errorf("codec: %d trailing bytes after program", len(d.data)-d.offset)
	}
	return program, nil
}

type decoder struct {
	data   []byte
	offset int
}

func (d *decoder) byte() (byte, error) {
	if d.offset >= len(d.data) {
		return 0, fmt.Errorf("codec: truncated input at offset %d", d.offset)
	}
	b := d.data[d.offset]
	d.offset++
	return b, nil
}

func (d *decoder) uvarint() (uint64, error) {
	v, n := binary.Uvarint(d.data[d.offset:])
	if n <= 0 {
		return 0, fmt.Errorf("codec: invalid varint at offset %d", d.offset)
	}
	d.offset += n
	return v, nil
}

func (d *decoder) varint() (int64, error) {
	v, n := binary.Varint(d.data[d.offset:])
	if n <= 0 {
		return 0, fmt.Errorf("codec: invalid varint at offset %d", d.offset)
	}
	d.offset += n
	return v, nil
}

func (d *decoder) string() (string, error) {
	length, e := d.uvarint()
	if e != nil {
		return "", e
	}
	if uint64(len(d.data)-d.offset) < length {
		return "", fmt.Errorf("codec: truncated string at offset %d", d.offset)
	}
	s := string(d.data[d.offset : d.offset+int(length)])
	d.offset += int(length)
	return s, nil
}

func (d *decoder) sequence() (inst.Sequence, error) {
	count, e := d.uvarint()
	if e != nil {
		return nil, e
	}
	program := make(inst.Sequence, 0, count)
	for i := uint64(0); i < count; i++ {
		n, e := d.instruction()
		if e != nil {
			return nil, e
		}
		program = append(program, n)
	}
	return program, nil
}

func (d *decoder) instruction() (inst.Instruction, error) {
	op, e := d.byte()
	if e != nil {
		return nil, e
	}
	switch Op(op) {
	case OpExit:
		return inst.Exit{}, nil
	case OpConstant:
		v, e := d.value()
		if e != nil {
			return nil, e
		}
		return inst.Constant{Value: v}, nil
	case OpPop:
		return inst.Pop{}, nil
	case OpDup:
		return inst.Dup{}, nil
	case OpCall:
		count, e := d.uvarint()
		if e != nil {
			return nil, e
		}
		return inst.Call{ArgumentCount: int(count)}, nil
	case OpReturn:
		return inst.Return{}, nil
	case OpLoad:
		name, e := d.string()
		if e != nil {
			return nil, e
		}
		return inst.Load{Name: name}, nil
	case OpStore:
		name, e := d.string()
		if e != nil {
			return nil, e
		}
		return inst.Store{Name: name}, nil
	case OpAddInt:
		return inst.AddInt{}, nil
	case OpSubInt:
		return inst.SubInt{}, nil
	case OpMulInt:
		return inst.MulInt{}, nil
	case OpDivInt:
		return inst.DivInt{}, nil
	case OpNegInt:
		return inst.NegInt{}, nil
	case OpPrintInt:
		return inst.PrintInt{}, nil
	}
	return nil, fmt.Errorf("codec: unknown opcode %d at offset %d", op, d.offset-1)
}

func (d *decoder) value() (inst.Value, error) {
	tag, e := d.byte()
	if e != nil {
		return nil, e
	}
	switch Tag(tag) {
	case TagVoid:
		return inst.Void{}, nil
	case TagInteger:
		v, e := d.varint()
		if e != nil {
			return nil, e
		}
		return inst.Integer(v), nil
	case TagProcedure:
		program, e := d.sequence()
		if e != nil {
			return nil, e
		}
		return inst.Procedure(program), nil
	case TagRecord:
		count, e := d.uvarint()
		if e != nil {
			return nil, e
		}
		record := make(inst.Record, count)
		for i := uint64(0); i < count; i++ {
			k, e := d.string()
			if e != nil {
				return nil, e
			}
			v, e := d.value()
			if e != nil {
				return nil, e
			}
			record[k] = v
		}
		return record, nil
	}
	return nil, fmt.Errorf("codec: unknown value tag %d at offset %d", tag, d.offset-1)
}

func appendUvarint(out []byte, v uint64) []byte {
	buffer := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(buffer, v)
	return append(out, buffer[:n]...)
}

func appendVarint(out []byte, v int64) []byte {
	buffer := make([]byte, binary.MaxVarintLen64)
	n := binary.PutVarint(buffer, v)
	return append(out, buffer[:n]...)
}

func appendString(out []byte, s string) []byte {
	out = appendUvarint(out, uint64(len(s)))
	return append(out, s...)
}
