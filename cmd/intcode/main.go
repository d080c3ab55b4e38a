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
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var red = color.New(color.FgRed).SprintFunc()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "intcode",
		Short:         "Run, assemble and disassemble Intcode programs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(); err != nil {
				return err
			}
			if viper.GetBool("no-color") || !isTerminal(os.Stderr) {
				color.NoColor = true
			}
			l := newLogger(viper.GetBool("debug"), cmd.ErrOrStderr())
			cmd.SetContext(logctx.NewContext(cmd.Context(), l))
			return nil
		},
	}
	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default ./intcode.yaml)")
	pf.Bool("debug", false, "enable debug logging and stack traces")
	pf.Bool("no-color", false, "disable colored output")
	pf.Int("cache", 0, "size of the instruction decode cache (0 disables it)")
	for _, name := range []string{"config", "debug", "no-color", "cache"} {
		if err := viper.BindPFlag(name, pf.Lookup(name)); err != nil {
			panic(err)
		}
	}

	root.AddCommand(
		newRunCmd(),
		newAsmCmd(),
		newDisCmd(),
		newPatchCmd(),
		newAmpCmd(),
		newPaintCmd(),
	)
	return root
}

// initConfig reads the config file and environment variables, if any.
func initConfig() error {
	viper.SetEnvPrefix("intcode")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	if cfg := viper.GetString("config"); cfg != "" {
		viper.SetConfigFile(cfg)
		return errors.Wrap(viper.ReadInConfig(), "config")
	}
	viper.SetConfigName("intcode")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			return errors.Wrap(err, "config")
		}
	}
	return nil
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// newLogger returns a development logger writing to w. The level is Info, or
// Debug if debug is set.
func newLogger(debug bool, w io.Writer) *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if color.NoColor {
		enc.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	level := zapcore.InfoLevel
	opts := []zap.Option{}
	if debug {
		level = zapcore.DebugLevel
		opts = append(opts, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), level)
	return zap.New(core, opts...)
}

func atExit(err error) {
	if err == nil {
		return
	}
	if !viper.GetBool("debug") {
		fmt.Fprintf(os.Stderr, "%s\n", red(err.Error()))
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "%s\n", red(fmt.Sprintf("%+v", err)))
	os.Exit(1)
}

func main() {
	atExit(newRootCmd().ExecuteContext(context.Background()))
}
