// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package asm

import (
	"fmt"
	"io"
	"strings"
	"text/scanner"

	"github.com/db47h/intcode/internal/ici"
	"github.com/db47h/intcode/vm"
)

var opcodes = map[vm.Opcode][]string{
	vm.OpAdd:         {"add"},
	vm.OpMul:         {"mul"},
	vm.OpIn:          {"in", "inp"},
	vm.OpOut:         {"out"},
	vm.OpJumpIfTrue:  {"jt", "jnz"},
	vm.OpJumpIfFalse: {"jf", "jz"},
	vm.OpLessThan:    {"lt", "slt"},
	vm.OpEquals:      {"eq", "seq"},
	vm.OpAdjustBase:  {"arb", "rbo"},
	vm.OpHalt:        {"hlt", "halt"},
}

var opcodeIndex = make(map[string]vm.Opcode)

func init() {
	for op, names := range opcodes {
		for _, n := range names {
			opcodeIndex[n] = op
		}
	}
}

// Error is a single assembly error.
type Error struct {
	Pos scanner.Position
	Msg string
}

func (e *Error) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// ErrAsm is the error type returned by Assemble. It contains up to 10 entries.
type ErrAsm []Error

func (e ErrAsm) Error() string {
	var b strings.Builder
	for k := range e {
		if k > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e[k].Error())
	}
	return b.String()
}

// Assemble compiles assembly read from the supplied io.Reader and returns the
// resulting image and error if any.
//
// Then name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
//
// The returned error, if not nil, can safely be cast to an ErrAsm value.
func Assemble(name string, r io.Reader) (img vm.Image, err error) {
	p := newParser()
	img, err = p.Parse(name, r)
	if err != nil {
		return nil, err
	}
	return img, nil
}

func operandPrefix(m vm.Mode) string {
	switch m {
	case vm.Immediate:
		return "#"
	case vm.Relative:
		return "@"
	}
	return ""
}

// Disassemble writes a disassembly of the cells in the given slice at position
// pc to the specified io.Writer and returns the position of the next
// instruction and any write error.
//
// Cells that do not hold a valid instruction in canonical form, or whose
// operands would lie past the end of the slice, are written as .dat
// directives, so that the output can always be assembled back to the same
// image.
func Disassemble(img []vm.Cell, pc int, w io.Writer) (next int, err error) {
	ew := ici.NewErrWriter(w)

	v := img[pc]
	ins, err := vm.Decode(v)
	n := ins.Op.Params()
	if err != nil || ins.Encode() != v || pc+n >= len(img) ||
		(ins.Op.Writes() >= 0 && ins.Modes[ins.Op.Writes()] == vm.Immediate) {
		ew.WriteString(".dat ")
		ew.WriteInt(int64(v))
		return pc + 1, ew.Err
	}
	ew.WriteString(ins.Op.String())
	for k := 0; k < n; k++ {
		ew.WriteString(" " + operandPrefix(ins.Modes[k]))
		ew.WriteInt(int64(img[pc+1+k]))
	}
	return pc + 1 + n, ew.Err
}

// DisassembleAll writes a disassembly of all cells in the given slice to
// the specified io.Writer. The base argument specifies the real address of the
// first cell (i[0]). Addresses are written as comments. It will return any
// write error.
func DisassembleAll(img []vm.Cell, base int, w io.Writer) error {
	ew := ici.NewErrWriter(w)
	for pc := 0; pc < len(img); {
		fmt.Fprintf(ew, "( %6d )\t", base+pc)
		pc, _ = Disassemble(img, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
