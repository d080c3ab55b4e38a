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

package vm

import "strconv"

// Opcode is the two lowest decimal digits of an instruction.
type Opcode Cell

// Intcode opcodes.
const (
	OpAdd         Opcode = 1
	OpMul         Opcode = 2
	OpIn          Opcode = 3
	OpOut         Opcode = 4
	OpJumpIfTrue  Opcode = 5
	OpJumpIfFalse Opcode = 6
	OpLessThan    Opcode = 7
	OpEquals      Opcode = 8
	OpAdjustBase  Opcode = 9
	OpHalt        Opcode = 99
)

var opcodes = [...]struct {
	name   string
	params int
}{
	OpAdd:         {"add", 3},
	OpMul:         {"mul", 3},
	OpIn:          {"in", 1},
	OpOut:         {"out", 1},
	OpJumpIfTrue:  {"jt", 2},
	OpJumpIfFalse: {"jf", 2},
	OpLessThan:    {"lt", 3},
	OpEquals:      {"eq", 3},
	OpAdjustBase:  {"arb", 1},
	OpHalt:        {"hlt", 0},
}

// Valid returns true if op is a known opcode.
func (op Opcode) Valid() bool {
	return op > 0 && int(op) < len(opcodes) && opcodes[op].name != ""
}

// Params returns the number of parameters that follow the instruction.
func (op Opcode) Params() int {
	if !op.Valid() {
		return 0
	}
	return opcodes[op].params
}

// Writes returns the index of the parameter used as a write target, or -1 if
// the instruction does not write to memory.
func (op Opcode) Writes() int {
	switch op {
	case OpAdd, OpMul, OpLessThan, OpEquals:
		return 2
	case OpIn:
		return 0
	}
	return -1
}

func (op Opcode) String() string {
	if op.Valid() {
		return opcodes[op].name
	}
	return "op(" + strconv.FormatInt(int64(op), 10) + ")"
}

// Mode is a parameter mode.
type Mode int8

// Parameter modes.
const (
	Position Mode = iota
	Immediate
	Relative
)

// Valid returns true if m is a known parameter mode.
func (m Mode) Valid() bool {
	return m >= Position && m <= Relative
}

func (m Mode) String() string {
	switch m {
	case Position:
		return "position"
	case Immediate:
		return "immediate"
	case Relative:
		return "relative"
	}
	return "mode(" + strconv.Itoa(int(m)) + ")"
}

// MaxParams is the maximum number of parameters of an instruction.
const MaxParams = 3

// Instruction is a decoded instruction.
type Instruction struct {
	Op    Opcode
	Modes [MaxParams]Mode
}

// Decode decodes the instruction stored in the cell v. The opcode is v mod 100
// and the mode of parameter k is the (k+3)th decimal digit of v, starting from
// the least significant one. Digits above the third mode are ignored.
func Decode(v Cell) (Instruction, error) {
	var ins Instruction
	if v < 0 {
		return ins, &DecodeError{v, "opcode", v}
	}
	ins.Op = Opcode(v % 100)
	if !ins.Op.Valid() {
		return ins, &DecodeError{v, "opcode", Cell(ins.Op)}
	}
	m := v / 100
	for k := range ins.Modes {
		md := Mode(m % 10)
		if !md.Valid() {
			return ins, &DecodeError{v, "mode", Cell(md)}
		}
		ins.Modes[k] = md
		m /= 10
	}
	return ins, nil
}

// Encode returns the cell value for ins. Modes of unused parameters are
// ignored, so that for any valid cell v, Decode(v) yields an instruction that
// encodes back to v if and only if v is in canonical form.
func (ins Instruction) Encode() Cell {
	v := Cell(ins.Op)
	f := Cell(100)
	for k := 0; k < ins.Op.Params(); k++ {
		v += Cell(ins.Modes[k]) * f
		f *= 10
	}
	return v
}
