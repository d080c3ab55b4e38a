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

package main

import (
	"fmt"

	"github.com/db47h/intcode/vm"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run FILE",
		Short: "Run a program and print its outputs",
		Args:  cobra.ExactArgs(1),
		RunE:  runHandler,
	}
	f := cmd.Flags()
	f.StringP("input", "i", "", "comma separated list of input values")
	f.Bool("yield", false, "run in yield mode, printing values as they are output")
	f.Bool("dump", false, "dump the VM state upon exit")
	return cmd
}

func runHandler(cmd *cobra.Command, args []string) (err error) {
	f := cmd.Flags()
	input, _ := f.GetString("input")
	yield, _ := f.GetBool("yield")
	dump, _ := f.GetBool("dump")

	img, err := loadImage(cmd, args[0])
	if err != nil {
		return err
	}
	in, err := parseCells(input)
	if err != nil {
		return err
	}
	i, err := vm.New(img, append(vmOptions(cmd), vm.Input(in...), vm.Yield(yield))...)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if dump {
		defer func() {
			if derr := dumpVM(i, w); err == nil {
				err = derr
			}
		}()
	}

	if !yield {
		out, err := i.Run()
		if err != nil {
			return err
		}
		for _, v := range out {
			fmt.Fprintln(w, v)
		}
		return nil
	}
	for {
		r, err := i.Advance()
		if err != nil {
			return err
		}
		if r.State == vm.Complete {
			return nil
		}
		fmt.Fprintln(w, r.Value)
	}
}
