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

// Memory is the memory of a VM instance. Addresses below the size of the
// initial image are stored in a dense slice. Addresses beyond are stored in a
// sparse map and read as 0 until written to.
type Memory struct {
	dense  []Cell
	sparse map[Cell]Cell
}

// NewMemory returns a new Memory initialized with a copy of img.
func NewMemory(img Image) *Memory {
	m := &Memory{
		dense:  make([]Cell, len(img)),
		sparse: make(map[Cell]Cell),
	}
	copy(m.dense, img)
	return m
}

// Read returns the value at address addr.
func (m *Memory) Read(addr Cell) (Cell, error) {
	if addr < 0 {
		return 0, &AddressError{addr}
	}
	if addr < Cell(len(m.dense)) {
		return m.dense[addr], nil
	}
	return m.sparse[addr], nil
}

// Write stores v at address addr.
func (m *Memory) Write(addr, v Cell) error {
	if addr < 0 {
		return &AddressError{addr}
	}
	if addr < Cell(len(m.dense)) {
		m.dense[addr] = v
		return nil
	}
	m.sparse[addr] = v
	return nil
}

// Len returns the size of the dense part of the memory, i.e. the size of the
// initial image.
func (m *Memory) Len() int {
	return len(m.dense)
}

// Snapshot returns a copy of the dense part of the memory.
func (m *Memory) Snapshot() []Cell {
	s := make([]Cell, len(m.dense))
	copy(s, m.dense)
	return s
}

// Sparse returns a copy of the cells written beyond the initial image.
func (m *Memory) Sparse() map[Cell]Cell {
	s := make(map[Cell]Cell, len(m.sparse))
	for addr, v := range m.sparse {
		s[addr] = v
	}
	return s
}
