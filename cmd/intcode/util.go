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
	"os"
	"path/filepath"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// loadImage loads the program in the named file. Files with an .asm extension
// are assembled, others are parsed as comma separated integers. A name of "-"
// reads a program image from stdin.
func loadImage(cmd *cobra.Command, name string) (vm.Image, error) {
	if name == "-" {
		return vm.Parse(cmd.InOrStdin())
	}
	if filepath.Ext(name) != ".asm" {
		return vm.Load(name)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return asm.Assemble(name, f)
}

// vmOptions returns the VM options set by global flags.
func vmOptions(cmd *cobra.Command) []vm.Option {
	var opts []vm.Option
	if n := viper.GetInt("cache"); n != 0 {
		opts = append(opts, vm.DecodeCache(n))
	}
	if viper.GetBool("debug") {
		opts = append(opts, vm.Logger(newLogger(true, cmd.ErrOrStderr())))
	}
	return opts
}

// parseCells parses a comma separated list of integers.
func parseCells(s string) ([]vm.Cell, error) {
	if s == "" {
		return nil, nil
	}
	c, err := vm.ParseString(s)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid list %q", s)
	}
	return c, nil
}
