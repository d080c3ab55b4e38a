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

// Package vm implements the Intcode virtual machine.
//
// An Intcode program is a flat array of signed 64 bits integers. Each
// instruction is encoded as a single cell holding a two digits opcode and up
// to three parameter modes (position, immediate or relative), followed by its
// parameters. Memory can be addressed beyond the end of the loaded program:
// such cells read as 0 until written to and are kept in a sparse map.
//
// An Instance runs in one of two modes:
//
//	- batch mode: Advance (or Run) executes the program until it halts and
//	  returns the full output log.
//	- yield mode: Advance returns control to the caller right after each
//	  output instruction with the value that was just produced. Calling
//	  Advance again resumes execution where it stopped.
//
// Yield mode is what allows several instances to be wired together in a
// pipeline or feedback loop without any goroutine: the caller alternates
// Advance calls across instances and forwards outputs with AddInput. See the
// lang/amp package for an example.
//
// Fatal conditions (unknown opcode or parameter mode, negative address, write
// to an immediate mode parameter, read from an empty input queue) stop the VM.
// They are reported as errors wrapping one of the fault types declared in
// this package and can be inspected with errors.As, errors.Is or
// errors.Cause. An Instance that has faulted will keep returning the same
// error.
//
// Like every instruction, the PC is not incremented in a single place: each
// opcode deals with it as needed. If an instruction faults, the PC is left
// pointing at that instruction.
package vm
