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
	"strconv"

	"github.com/pkg/errors"
)

var (
	// ErrInputExhausted is returned when an input instruction is executed
	// and all queued input values have already been consumed.
	ErrInputExhausted = errors.New("input exhausted")

	// ErrImmediateWrite is returned when an instruction attempts to write
	// to a parameter in immediate mode.
	ErrImmediateWrite = errors.New("write to immediate mode parameter")
)

// DecodeError is returned when a cell cannot be decoded as an instruction.
type DecodeError struct {
	Value Cell // raw cell value
	Field string
	Code  Cell // offending opcode or mode
}

func (e *DecodeError) Error() string {
	return "cannot decode " + strconv.FormatInt(int64(e.Value), 10) + ": invalid " + e.Field + " " + strconv.FormatInt(int64(e.Code), 10)
}

// AddressError is returned when a memory access resolves to a negative
// address.
type AddressError struct {
	Addr Cell
}

func (e *AddressError) Error() string {
	return "invalid address " + strconv.FormatInt(int64(e.Addr), 10)
}
