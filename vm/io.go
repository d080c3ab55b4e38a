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

// AddInput appends values to the input queue. Values are consumed in FIFO
// order by input instructions.
func (i *Instance) AddInput(values ...Cell) {
	i.inputs = append(i.inputs, values...)
}

// Inputs returns a copy of all the values ever queued, consumed or not.
func (i *Instance) Inputs() []Cell {
	return append([]Cell(nil), i.inputs...)
}

// Pending returns the number of queued input values not yet consumed.
func (i *Instance) Pending() int {
	return len(i.inputs) - i.inPos
}

// Outputs returns a copy of all the values output so far.
func (i *Instance) Outputs() []Cell {
	return append([]Cell(nil), i.outputs...)
}

func (i *Instance) nextInput() (Cell, error) {
	if i.inPos >= len(i.inputs) {
		return 0, ErrInputExhausted
	}
	v := i.inputs[i.inPos]
	i.inPos++
	return v, nil
}

func (i *Instance) out(v Cell) {
	i.outputs = append(i.outputs, v)
	if i.yield {
		i.status = Yielded
	}
}
