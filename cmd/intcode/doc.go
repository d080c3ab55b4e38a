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

// The intcode command line tool runs, assembles and disassembles Intcode
// programs, and drives the amplifier and hull painting robot programs built on
// top of the VM in package github.com/db47h/intcode/vm.
//
// Usage:
//
//	intcode run FILE [-i 1,2,3] [--yield] [--dump]
//	intcode asm FILE [-o filename]
//	intcode dis FILE
//	intcode patch FILE [--noun N --verb V | --target T]
//	intcode amp FILE [--feedback] [--phases 0,1,2,3,4]
//	intcode paint FILE [--start black|white]
//
// Global flags:
//
//	--cache int
//		  size of the instruction decode cache (0 disables it)
//	--config filename
//		  config file (default ./intcode.yaml)
//	--debug
//		  enable debug logging and stack traces
//	--no-color
//		  disable colored output
//
// Program files are text files of comma separated integers. Files with an .asm
// extension are assembled on the fly (see package
// github.com/db47h/intcode/asm for the syntax). A FILE of "-" reads a program
// from stdin.
//
// --debug: traces every executed instruction to stderr and prints a full
// stacktrace should the VM fault.
//
// --dump: prints the VM registers and memory upon exit, including cells
// written beyond the initial image.
//
// Global flags can also be set from the environment, with an INTCODE_ prefix
// (INTCODE_DEBUG=1, INTCODE_NO_COLOR=1, INTCODE_CACHE=256), or in the config
// file:
//
//	debug: true
//	cache: 256
package main
