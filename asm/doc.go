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

// Package asm provides utility functions to assemble and disassemble Intcode
// programs.
//
// Supported assembler mnemonics:
//
//	Instructions take up to three operands. The "w" column shows the operand
//	used as a write target, which cannot be in immediate mode.
//
//	opcode	asm		operands	w	description
//	------	-----------	--------	-	----------------------------------------------
//	1	add		a b c		c	c = a + b
//	2	mul		a b c		c	c = a * b
//	3	in, inp		a		a	store the next input value at a
//	4	out		a			output a
//	5	jt, jnz		a b			jump to b if a != 0
//	6	jf, jz		a b			jump to b if a == 0
//	7	lt, slt		a b c		c	c = 1 if a < b, 0 otherwise
//	8	eq, seq		a b c		c	c = 1 if a == b, 0 otherwise
//	9	arb, rbo	a			add a to the relative base
//	99	hlt, halt				halt
//
// Operands:
//
// The addressing mode of an operand is set by its prefix:
//
//	42	position mode: the value at address 42
//	#42	immediate mode: the value 42
//	@42	relative mode: the value at address relative base + 42
//
// The value following the prefix can be an integer, a character literal, a
// constant or a label.
//
// Comments:
//
// Comments are placed between parentheses, i.e. '(' and ')'. The body of the
// comment must be separated from the enclosing parentheses by a space:
//
//	( this is a valid comment )
//	(this is not, and will be seen by the parser as "(this" )
//
// Literals and label/const identifiers:
//
// Input is split at white space (space, tab or new line) into tokens. The
// parser then does the following:
//
//	- If a token can be converted to a Go integer (see strconv.ParseInt), it
//	  is an integer literal.
//	- If it is a Go character literal between single quotes, it is converted
//	  to the corresponding integer literal.
//	- If a token is the name of a defined constant, it is replaced by the
//	  constant's value.
//	- Otherwise, the token is looked up in the assembler mnemonics where an
//	  instruction is expected, and if no match is found, it is considered to
//	  be a label.
//
// Where an instruction is expected, integer literals, character literals,
// constants and labels are compiled as raw data cells, just like with the
// .dat directive. More than one instruction may appear on the same line.
//
// Labels:
//
// Labels are defined by prefixing them with a colon (:). A label reference
// (without the ':' prefix) compiles as the address of the label:
//
//	:loop	in x
//		out x
//		jt #1 #loop	( jump to loop )
//	:x	0
//
// Local labels:
//
// Local labels work in the same way as in the GNU assembler. They are defined
// as a colon followed by a sequence of digits (i.e. :007, :0, :42) and can be
// defined multiple times. The assembler internally assigns them a unique name
// of the form N·counter (the middle character is '·'). References to such
// labels must be suffixed with either a '-' (backward reference to the last
// definition of this label), or a '+' (forward reference to the next
// definition of this label):
//
//	:1	jt #1 #1+	( jumps to the second :1 )
//	:1	jt #1 #1-	( jumps to itself )
//
// Assembler directives:
//
//	.equ <IDENTIFIER> <value>
//
// defines a constant value. The value must be an integer value, named
// constant or character literal.
//
//	.org <value>
//
// places the next instruction at the given address, which must be below
// MaxImage. Skipped cells are set to 0.
//
//	.dat <value>
//
// compiles the given value as-is. The value can be an integer, named
// constant, character literal or label.
//
// Disassembly:
//
// Disassemble writes cells that do not hold an instruction in canonical form
// as .dat directives, so that the output of DisassembleAll assembles back to
// the original image.
package asm
