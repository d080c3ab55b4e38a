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
	"io"
	"os"

	"github.com/db47h/intcode/asm"
	"github.com/spf13/cobra"
)

func newAsmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "asm FILE",
		Short: "Assemble a program",
		Long: `Assemble the given source file and print the resulting program as comma
separated integers. A FILE of "-" reads the source from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: asmHandler,
	}
	cmd.Flags().StringP("output", "o", "", "write the program to `filename` instead of stdout")
	return cmd
}

func asmHandler(cmd *cobra.Command, args []string) error {
	var r io.Reader = cmd.InOrStdin()
	name := args[0]
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	img, err := asm.Assemble(name, r)
	if err != nil {
		return err
	}
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		return img.Save(out)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), img)
	return err
}

func newDisCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dis FILE",
		Short: "Disassemble a program",
		Long: `Disassemble the given program. The output can be assembled back to the
same program with the asm command.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := loadImage(cmd, args[0])
			if err != nil {
				return err
			}
			return asm.DisassembleAll(img, 0, cmd.OutOrStdout())
		},
	}
}
