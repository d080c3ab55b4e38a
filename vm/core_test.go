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

package vm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/db47h/intcode/vm"
)

type C []vm.Cell

func parse(t *testing.T, prog string) vm.Image {
	t.Helper()
	img, err := vm.ParseString(prog)
	require.NoError(t, err)
	return img
}

func runProg(t *testing.T, prog string, inputs ...vm.Cell) *vm.Instance {
	t.Helper()
	i, err := vm.New(parse(t, prog), vm.Input(inputs...))
	require.NoError(t, err)
	_, err = i.Run()
	require.NoError(t, err, "%+v", err)
	return i
}

func TestAddMul(t *testing.T) {
	tests := [...]struct {
		prog string
		mem  C
	}{
		{"1,9,10,3,2,3,11,0,99,30,40,50", C{3500, 9, 10, 70, 2, 3, 11, 0, 99, 30, 40, 50}},
		{"1,0,0,0,99", C{2, 0, 0, 0, 99}},
		{"2,3,0,3,99", C{2, 3, 0, 6, 99}},
		{"2,4,4,5,99,0", C{2, 4, 4, 5, 99, 9801}},
		{"1,1,1,4,99,5,6,0,99", C{30, 1, 1, 4, 2, 5, 6, 0, 99}},
		{"1101,100,-1,4,0", C{1101, 100, -1, 4, 99}},
		{"1002,4,3,4,33", C{1002, 4, 3, 4, 99}},
	}
	for _, test := range tests {
		mem, err := vm.RunNoIO(parse(t, test.prog))
		require.NoError(t, err, test.prog)
		require.Equal(t, test.mem, C(mem), test.prog)
	}
}

func TestCompare(t *testing.T) {
	tests := [...]struct {
		name string
		prog string
		cmp  func(v vm.Cell) bool
	}{
		{"eq position", "3,9,8,9,10,9,4,9,99,-1,8", func(v vm.Cell) bool { return v == 8 }},
		{"lt position", "3,9,7,9,10,9,4,9,99,-1,8", func(v vm.Cell) bool { return v < 8 }},
		{"eq immediate", "3,3,1108,-1,8,3,4,3,99", func(v vm.Cell) bool { return v == 8 }},
		{"lt immediate", "3,3,1107,-1,8,3,4,3,99", func(v vm.Cell) bool { return v < 8 }},
	}
	for _, test := range tests {
		for _, in := range (C{-8, 0, 7, 8, 9, 1 << 40}) {
			var want vm.Cell
			if test.cmp(in) {
				want = 1
			}
			i := runProg(t, test.prog, in)
			require.Equal(t, C{want}, C(i.Outputs()), "%s, input %d", test.name, in)
		}
	}
}

func TestJump(t *testing.T) {
	tests := [...]struct {
		name string
		prog string
	}{
		{"position", "3,12,6,12,15,1,13,14,13,4,13,99,-1,0,1,9"},
		{"immediate", "3,3,1105,-1,9,1101,0,0,12,4,12,99,1"},
	}
	for _, test := range tests {
		for _, in := range (C{0, 1, -1, 42}) {
			var want vm.Cell
			if in != 0 {
				want = 1
			}
			i := runProg(t, test.prog, in)
			require.Equal(t, C{want}, C(i.Outputs()), "%s, input %d", test.name, in)
		}
	}
}

func TestCompareJump(t *testing.T) {
	prog := "3,21,1008,21,8,20,1005,20,22,107,8,21,20,1006,20,31,1106,0,36,98,0,0,1002,21,125,20,4,20,1105,1,46,104,999,1105,1,46,1101,1000,1,20,4,20,1105,1,46,98,99"
	for in, want := range map[vm.Cell]vm.Cell{
		-3: 999, 7: 999, 8: 1000, 9: 1001, 100: 1001,
	} {
		i := runProg(t, prog, in)
		require.Equal(t, C{want}, C(i.Outputs()), "input %d", in)
	}
}

func TestOutputImmediate(t *testing.T) {
	i := runProg(t, "104,1125899906842624,99")
	require.Equal(t, C{1125899906842624}, C(i.Outputs()))
	i = runProg(t, "104,-7,4,1,99")
	require.Equal(t, C{-7, -7}, C(i.Outputs()))
}

func TestLargeNumbers(t *testing.T) {
	i := runProg(t, "1102,34915192,34915192,7,4,7,99,0")
	require.Equal(t, C{34915192 * 34915192}, C(i.Outputs()))
	require.Equal(t, vm.Cell(1219070632396864), i.Outputs()[0])
}

func TestRelative(t *testing.T) {
	i := runProg(t, "109,1,204,-1,99")
	require.Equal(t, C{109}, C(i.Outputs()))
	require.Equal(t, vm.Cell(1), i.RelativeBase())

	// relative mode write target for input, into sparse memory
	i = runProg(t, "109,10,203,0,204,0,99", 42)
	require.Equal(t, C{42}, C(i.Outputs()))
	v, err := i.Peek(10)
	require.NoError(t, err)
	require.Equal(t, vm.Cell(42), v)

	// relative mode write target for add
	i = runProg(t, "109,-3,21101,4,5,13,204,13,99,0,0")
	require.Equal(t, C{9}, C(i.Outputs()))
	require.Equal(t, vm.Cell(9), i.Memory()[10])
}

func TestQuine(t *testing.T) {
	prog := "109,1,204,-1,1001,100,1,100,1008,100,16,101,1006,101,0,99"
	i := runProg(t, prog)
	require.Equal(t, parse(t, prog), vm.Image(i.Outputs()))
	// the program uses addresses 100 and 101 as scratch cells
	require.Len(t, i.Memory(), 16)
	v, err := i.Peek(100)
	require.NoError(t, err)
	require.Equal(t, vm.Cell(16), v)
}

func TestSparseMemory(t *testing.T) {
	// read beyond the image, write it back incremented, read it again.
	i := runProg(t, "4,1000,1001,1000,5,1000,4,1000,99")
	require.Equal(t, C{0, 5}, C(i.Outputs()))
	v, err := i.Peek(1 << 50)
	require.NoError(t, err)
	require.Zero(t, v)
	require.Len(t, i.Memory(), 9)
}
