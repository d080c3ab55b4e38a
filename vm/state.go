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

import "github.com/pkg/errors"

// Snapshot holds the complete state of an Instance between two steps, as plain
// data.
type Snapshot struct {
	PC               int
	RelativeBase     Cell
	Memory           []Cell        // cells covering the initial image
	Sparse           map[Cell]Cell // cells written beyond the initial image
	Inputs           []Cell        // all queued inputs, consumed or not
	InputCursor      int           // index of the next input to consume
	Outputs          []Cell
	Yield            bool
	Status           Status
	InstructionCount int64
}

// State returns a snapshot of the instance state. The snapshot shares no
// memory with the instance.
func (i *Instance) State() Snapshot {
	return Snapshot{
		PC:               i.PC,
		RelativeBase:     i.rb,
		Memory:           i.mem.Snapshot(),
		Sparse:           i.mem.Sparse(),
		Inputs:           i.Inputs(),
		InputCursor:      i.inPos,
		Outputs:          i.Outputs(),
		Yield:            i.yield,
		Status:           i.status,
		InstructionCount: i.insCount,
	}
}

// Restore creates a new instance from a snapshot. Resuming the new instance
// behaves exactly like resuming the one the snapshot was taken from. The
// options are applied after the state has been restored. Snapshots of
// faulted instances cannot be restored.
func Restore(s Snapshot, opts ...Option) (*Instance, error) {
	switch {
	case s.Status == Faulted:
		return nil, errors.New("Restore: cannot restore a faulted instance")
	case s.Status < Running || s.Status > Faulted:
		return nil, errors.Errorf("Restore: invalid status %d", s.Status)
	case s.PC < 0:
		return nil, errors.Errorf("Restore: invalid PC %d", s.PC)
	case s.InputCursor < 0 || s.InputCursor > len(s.Inputs):
		return nil, errors.Errorf("Restore: input cursor %d out of range [0, %d]", s.InputCursor, len(s.Inputs))
	case s.Status == Yielded && len(s.Outputs) == 0:
		return nil, errors.New("Restore: yielded instance with no output")
	}
	m := NewMemory(s.Memory)
	for addr, v := range s.Sparse {
		if addr < Cell(len(s.Memory)) {
			return nil, errors.Errorf("Restore: sparse address %d overlaps memory", addr)
		}
		if err := m.Write(addr, v); err != nil {
			return nil, errors.Wrap(err, "Restore")
		}
	}
	i := &Instance{log: zapNop}
	i.PC = s.PC
	i.rb = s.RelativeBase
	i.mem = m
	i.inputs = append([]Cell(nil), s.Inputs...)
	i.inPos = s.InputCursor
	i.outputs = append([]Cell(nil), s.Outputs...)
	i.yield = s.Yield
	i.status = s.Status
	i.insCount = s.InstructionCount
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}
