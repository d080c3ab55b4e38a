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

package asm_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/vm"
)

// Shows off some of the assembler features.
func ExampleAssemble() {
	code := `
		( a constant definition. Does not generate any code on its own )
		.equ NL 10

:loop	in c			( read a character )
		eq c #0 tmp		( 0 terminates input )
		jt tmp #end
		out c
		out #NL
		jt #1 #loop
:end	hlt

:c		0				( implicit .dat )
:tmp	.dat 0
`

	img, err := asm.Assemble("raw_string", strings.NewReader(code))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(img)

	out, err := vm.RunWithInputs(img, 'h', 'i', 0)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%q\n", []rune{rune(out[0]), rune(out[1]), rune(out[2]), rune(out[3])})

	// Output:
	// 3,17,1008,17,0,18,1005,18,16,4,17,104,10,1105,1,0,99,0,0
	// ['h' '\n' 'i' '\n']
}

// Disassemble is pretty straightforward. Cells that do not hold a valid
// instruction are written as .dat directives.
func ExampleDisassemble() {
	img := []vm.Cell{1002, 4, 3, 4, 33}

	for pc := 0; pc < len(img); {
		var err error
		fmt.Printf("% 4d\t", pc)
		pc, err = asm.Disassemble(img, pc, os.Stdout)
		if err != nil {
			panic(err)
		}
		fmt.Println()
	}

	// Output:
	//    0	mul 4 #3 4
	//    4	.dat 33
}

// Demonstrates use of local labels
func Example_locals() {
	code := `
	:1	jt #1 #1+
	:2	jf #0 #1-
	:1	jt #1 #2+
	:2	hlt
	`

	img, err := asm.Assemble("locals", strings.NewReader(code))
	if err != nil {
		fmt.Println(err)
		return
	}

	asm.DisassembleAll(img, 0, os.Stdout)

	// Output:
	// (      0 )	jt #1 #6
	// (      3 )	jf #0 #0
	// (      6 )	jt #1 #9
	// (      9 )	hlt
}
