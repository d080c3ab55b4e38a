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
	"github.com/hashicorp/golang-lru/v2/simplelru"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Cell is the raw type stored in a memory location.
type Cell int64

var zapNop = zap.NewNop()

// Status is the execution state of an Instance.
type Status int

// Execution states.
const (
	Running  Status = iota // ready to execute the next instruction
	Yielded                // suspended right after an output instruction (yield mode only)
	Complete               // halted
	Faulted                // stopped by a fatal error
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Yielded:
		return "yielded"
	case Complete:
		return "complete"
	case Faulted:
		return "faulted"
	}
	return "invalid"
}

// Instance represents an Intcode VM instance.
//
// An Instance is not safe for concurrent use. Instances do not share any
// state, so that distinct instances can safely run in separate goroutines.
type Instance struct {
	PC       int // Program Counter (aka. Instruction Pointer)
	mem      *Memory
	rb       Cell
	inputs   []Cell
	inPos    int
	outputs  []Cell
	yield    bool
	status   Status
	err      error
	insCount int64
	log      *zap.Logger
	cache    *simplelru.LRU[Cell, Instruction]
}

// Option interface
type Option func(*Instance) error

// Input appends the given values to the input queue.
func Input(values ...Cell) Option {
	return func(i *Instance) error { i.AddInput(values...); return nil }
}

// Yield enables or disables yield mode. In yield mode, Advance returns after
// each output instruction. The default is false.
func Yield(yield bool) Option {
	return func(i *Instance) error { i.yield = yield; return nil }
}

// Logger sets the logger used to trace execution. Every executed instruction
// is logged at debug level, halts and faults at info level. The default is a
// no-op logger.
func Logger(l *zap.Logger) Option {
	return func(i *Instance) error {
		if l == nil {
			l = zapNop
		}
		i.log = l
		return nil
	}
}

// DecodeCache enables caching of decoded instructions. The cache holds up to
// size entries keyed by raw cell value. It mostly pays off for long running
// programs with tight loops.
func DecodeCache(size int) Option {
	return func(i *Instance) error {
		c, err := simplelru.NewLRU[Cell, Instruction](size, nil)
		if err != nil {
			return errors.Wrap(err, "DecodeCache")
		}
		i.cache = c
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Intcode VM instance in batch mode.
//
// The memory of the instance is initialized with a copy of img, which is left
// untouched.
//
// Options will be set by calling SetOptions.
func New(img Image, opts ...Option) (*Instance, error) {
	i := &Instance{
		mem: NewMemory(img),
		log: zapNop,
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// NewYielding creates a new Intcode VM instance in yield mode, with an empty
// input queue.
func NewYielding(img Image, opts ...Option) (*Instance, error) {
	return New(img, append([]Option{Yield(true)}, opts...)...)
}

// Status returns the current execution state.
func (i *Instance) Status() Status {
	return i.status
}

// Err returns the error that caused the instance to fault, if any.
func (i *Instance) Err() error {
	return i.err
}

// RelativeBase returns the current value of the relative base register.
func (i *Instance) RelativeBase() Cell {
	return i.rb
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

// Memory returns a copy of the memory cells covering the initial image. Use
// Peek to read cells beyond.
func (i *Instance) Memory() []Cell {
	return i.mem.Snapshot()
}

// Peek returns the value of the memory cell at address addr.
func (i *Instance) Peek(addr Cell) (Cell, error) {
	return i.mem.Read(addr)
}
