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

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Result is returned by Advance.
type Result struct {
	State   Status // Yielded or Complete
	Value   Cell   // value produced by the last output instruction if State is Yielded
	Outputs []Cell // full output log if State is Complete
}

func (i *Instance) decode(v Cell) (Instruction, error) {
	if i.cache != nil {
		if ins, ok := i.cache.Get(v); ok {
			return ins, nil
		}
	}
	ins, err := Decode(v)
	if err == nil && i.cache != nil {
		i.cache.Add(v, ins)
	}
	return ins, err
}

// param returns the value of the read parameter n of the current instruction.
func (i *Instance) param(ins *Instruction, n int) (Cell, error) {
	lit, err := i.mem.Read(Cell(i.PC + 1 + n))
	if err != nil {
		return 0, err
	}
	switch ins.Modes[n] {
	case Immediate:
		return lit, nil
	case Relative:
		return i.mem.Read(lit + i.rb)
	default:
		return i.mem.Read(lit)
	}
}

// params returns the values of the first two read parameters.
func (i *Instance) params(ins *Instruction) (a, b Cell, err error) {
	if a, err = i.param(ins, 0); err != nil {
		return 0, 0, err
	}
	if b, err = i.param(ins, 1); err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

// target returns the address designated by the write parameter n.
func (i *Instance) target(ins *Instruction, n int) (Cell, error) {
	lit, err := i.mem.Read(Cell(i.PC + 1 + n))
	if err != nil {
		return 0, err
	}
	switch ins.Modes[n] {
	case Immediate:
		return 0, ErrImmediateWrite
	case Relative:
		lit += i.rb
	}
	if lit < 0 {
		return 0, &AddressError{lit}
	}
	return lit, nil
}

func (i *Instance) jump(to Cell) error {
	if to < 0 {
		return &AddressError{to}
	}
	i.PC = int(to)
	return nil
}

func b2c(b bool) Cell {
	if b {
		return 1
	}
	return 0
}

func (i *Instance) fault(err error) error {
	i.log.Info("fault", zap.Int("pc", i.PC), zap.Error(err))
	i.err = errors.Wrapf(err, "pc=%d", i.PC)
	i.status = Faulted
	return i.err
}

// Step executes a single instruction.
//
// Calling Step on a yielded instance resumes it. Calling Step on a halted
// instance does nothing and returns nil. If the instruction faults, the
// instance state is set to Faulted, the PC is left pointing at the faulty
// instruction and the returned error, also available from Err, wraps the
// fault.
func (i *Instance) Step() error {
	switch i.status {
	case Complete:
		return nil
	case Faulted:
		return i.err
	case Yielded:
		i.status = Running
	}
	v, err := i.mem.Read(Cell(i.PC))
	if err != nil {
		return i.fault(err)
	}
	ins, err := i.decode(v)
	if err != nil {
		return i.fault(err)
	}
	if ce := i.log.Check(zap.DebugLevel, "exec"); ce != nil {
		ce.Write(zap.Int("pc", i.PC), zap.Int64("ins", int64(v)), zap.Stringer("op", ins.Op), zap.Int64("rb", int64(i.rb)))
	}
	switch ins.Op {
	case OpAdd, OpMul, OpLessThan, OpEquals:
		a, b, err := i.params(&ins)
		if err != nil {
			return i.fault(err)
		}
		dst, err := i.target(&ins, 2)
		if err != nil {
			return i.fault(err)
		}
		var r Cell
		switch ins.Op {
		case OpAdd:
			r = a + b
		case OpMul:
			r = a * b
		case OpLessThan:
			r = b2c(a < b)
		case OpEquals:
			r = b2c(a == b)
		}
		if err = i.mem.Write(dst, r); err != nil {
			return i.fault(err)
		}
		i.PC += 4
	case OpIn:
		dst, err := i.target(&ins, 0)
		if err != nil {
			return i.fault(err)
		}
		in, err := i.nextInput()
		if err != nil {
			return i.fault(err)
		}
		if err = i.mem.Write(dst, in); err != nil {
			return i.fault(err)
		}
		i.PC += 2
	case OpOut:
		a, err := i.param(&ins, 0)
		if err != nil {
			return i.fault(err)
		}
		i.PC += 2
		i.out(a)
	case OpJumpIfTrue, OpJumpIfFalse:
		a, b, err := i.params(&ins)
		if err != nil {
			return i.fault(err)
		}
		if (a != 0) == (ins.Op == OpJumpIfTrue) {
			if err = i.jump(b); err != nil {
				return i.fault(err)
			}
		} else {
			i.PC += 3
		}
	case OpAdjustBase:
		a, err := i.param(&ins, 0)
		if err != nil {
			return i.fault(err)
		}
		i.rb += a
		i.PC += 2
	case OpHalt:
		i.status = Complete
		i.log.Info("halt", zap.Int("pc", i.PC), zap.Int64("instructions", i.insCount+1), zap.Int("outputs", len(i.outputs)))
	}
	i.insCount++
	return nil
}

func (i *Instance) result() Result {
	if i.status == Yielded {
		return Result{State: Yielded, Value: i.outputs[len(i.outputs)-1]}
	}
	return Result{State: Complete, Outputs: i.Outputs()}
}

// Advance resumes execution of the VM.
//
// In batch mode, Advance runs the program until it halts and returns a Result
// with State set to Complete and the full output log. In yield mode, Advance
// returns right after the next output instruction, with State set to Yielded
// and Value set to the output value, or with State set to Complete if the
// program halts first.
//
// Once halted, subsequent calls return the completed result again. If an
// error occurs, the returned Result has State set to Faulted.
func (i *Instance) Advance() (Result, error) {
	if i.status == Faulted {
		return Result{State: Faulted}, i.err
	}
	if i.status == Complete {
		return i.result(), nil
	}
	for {
		if err := i.Step(); err != nil {
			return Result{State: Faulted}, err
		}
		if i.status != Running {
			return i.result(), nil
		}
	}
}

// ctxCheckInterval is the number of instructions executed by AdvanceContext
// between two checks of its context.
const ctxCheckInterval = 4096

// AdvanceContext is like Advance, but it also returns once ctx is done, with
// ctx.Err() and a Result whose State is Running. The instance is left in a
// consistent state and can be advanced again.
func (i *Instance) AdvanceContext(ctx context.Context) (Result, error) {
	if i.status == Faulted {
		return Result{State: Faulted}, i.err
	}
	if i.status == Complete {
		return i.result(), nil
	}
	for n := 0; ; n++ {
		if n%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return Result{State: Running}, err
			}
		}
		if err := i.Step(); err != nil {
			return Result{State: Faulted}, err
		}
		if i.status != Running {
			return i.result(), nil
		}
	}
}

// Run runs the program until it halts and returns the full output log. In
// yield mode, Run keeps advancing the VM over each output.
func (i *Instance) Run() ([]Cell, error) {
	for {
		r, err := i.Advance()
		if err != nil {
			return nil, err
		}
		if r.State == Complete {
			return r.Outputs, nil
		}
	}
}
