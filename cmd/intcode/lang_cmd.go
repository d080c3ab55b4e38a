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

	"github.com/db47h/intcode/lang/amp"
	"github.com/db47h/intcode/lang/patch"
	"github.com/db47h/intcode/lang/robot"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newPatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patch FILE",
		Short: "Run a program with a noun and verb patched in",
		Long: `Run a program with memory cells 1 and 2 set to the given noun and verb and
print the value of cell 0 once it halts. With --target, search for the noun
and verb that produce the target value instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			noun, _ := f.GetInt64("noun")
			verb, _ := f.GetInt64("verb")
			target, _ := f.GetInt64("target")

			img, err := loadImage(cmd, args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if !f.Changed("target") {
				v, err := patch.Run(img, vm.Cell(noun), vm.Cell(verb), vmOptions(cmd)...)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(w, v)
				return err
			}
			n, v, err := patch.Search(cmd.Context(), img, vm.Cell(target), vmOptions(cmd)...)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(w, "noun=%d verb=%d answer=%d\n", n, v, 100*n+v)
			return err
		},
	}
	f := cmd.Flags()
	f.Int64("noun", 12, "value of cell 1")
	f.Int64("verb", 2, "value of cell 2")
	f.Int64("target", 0, "search for the noun and verb that produce this value")
	return cmd
}

func newAmpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "amp FILE",
		Short: "Find the phase settings that maximize the thrust of an amplifier chain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			feedback, _ := f.GetBool("feedback")
			list, _ := f.GetString("phases")
			if !f.Changed("phases") && feedback {
				list = "5,6,7,8,9"
			}
			phases, err := parseCells(list)
			if err != nil {
				return err
			}
			img, err := loadImage(cmd, args[0])
			if err != nil {
				return err
			}
			r, err := amp.MaxThrust(cmd.Context(), img, phases, feedback, vmOptions(cmd)...)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", r.Thrust, vm.Image(r.Phases))
			return err
		},
	}
	f := cmd.Flags()
	f.Bool("feedback", false, "run the amplifiers in a feedback loop")
	f.String("phases", "0,1,2,3,4", "comma separated list of phase settings (default 5,6,7,8,9 with --feedback)")
	return cmd
}

func newPaintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paint FILE",
		Short: "Run a hull painting robot",
		Long: `Run a hull painting robot controlled by the given program. Prints the number
of panels painted at least once, followed by a picture of the hull.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var start robot.Color
			switch s, _ := cmd.Flags().GetString("start"); s {
			case "black":
			case "white":
				start = robot.White
			default:
				return errors.Errorf("invalid start color %q", s)
			}
			img, err := loadImage(cmd, args[0])
			if err != nil {
				return err
			}
			h, err := robot.Paint(cmd.Context(), img, start, vmOptions(cmd)...)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d\n%s", h.Painted(), h.Render())
			return err
		},
	}
	cmd.Flags().String("start", "black", "color of the starting panel, black or white")
	return cmd
}
