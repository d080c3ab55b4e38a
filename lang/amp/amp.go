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

// Package amp drives chains of Intcode amplifiers, each running its own copy
// of the same program and configured with a phase setting.
//
// In a chain, each amplifier receives its phase setting followed by the output
// of the previous amplifier (0 for the first one), and runs to completion. In a
// feedback loop, the output of the last amplifier is fed back into the first
// one until the last amplifier halts.
package amp

import (
	"context"
	"runtime"
	"slices"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"go.brendoncarroll.net/stdctx/logctx"
	"golang.org/x/sync/errgroup"
)

// Chain runs one amplifier per phase setting in series and returns the output
// of the last one. It stops and returns ctx.Err() once ctx is done.
func Chain(ctx context.Context, img vm.Image, phases []vm.Cell, opts ...vm.Option) (vm.Cell, error) {
	var signal vm.Cell
	for k, p := range phases {
		a, err := vm.New(img, append([]vm.Option{vm.Input(p, signal)}, opts...)...)
		if err != nil {
			return 0, err
		}
		r, err := a.AdvanceContext(ctx)
		if err != nil {
			return 0, errors.Wrapf(err, "amplifier %d (phase %d)", k, p)
		}
		if len(r.Outputs) == 0 {
			return 0, errors.Errorf("amplifier %d (phase %d): no output", k, p)
		}
		signal = r.Outputs[len(r.Outputs)-1]
	}
	return signal, nil
}

// Feedback runs one yielding amplifier per phase setting in a feedback loop,
// forwarding each output to the next amplifier, until one of them halts. It
// returns the last value output by the last amplifier. It stops and returns
// ctx.Err() once ctx is done.
func Feedback(ctx context.Context, img vm.Image, phases []vm.Cell, opts ...vm.Option) (vm.Cell, error) {
	if len(phases) == 0 {
		return 0, errors.New("no amplifiers")
	}
	amps := make([]*vm.Instance, len(phases))
	for k, p := range phases {
		a, err := vm.NewYielding(img, append([]vm.Option{vm.Input(p)}, opts...)...)
		if err != nil {
			return 0, err
		}
		amps[k] = a
	}
	var (
		signal, last vm.Cell
		got          bool
	)
loop:
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		for k, a := range amps {
			a.AddInput(signal)
			r, err := a.AdvanceContext(ctx)
			if err != nil {
				return 0, errors.Wrapf(err, "amplifier %d (phase %d)", k, phases[k])
			}
			if r.State == vm.Complete {
				// downstream amplifiers have nothing new to read
				break loop
			}
			signal = r.Value
			if k == len(amps)-1 {
				last, got = signal, true
			}
		}
	}
	if !got {
		return 0, errors.New("last amplifier halted without output")
	}
	return last, nil
}

// Result is the outcome of MaxThrust.
type Result struct {
	Phases []vm.Cell // phase settings, in amplifier order
	Thrust vm.Cell   // output of the last amplifier
}

// MaxThrust tries every permutation of the given phase settings and returns
// the one that produces the highest output. Permutations are evaluated
// concurrently. If several permutations produce the same output, the first
// one in lexical order wins.
//
// The options are applied to every amplifier.
func MaxThrust(ctx context.Context, img vm.Image, phases []vm.Cell, feedback bool, opts ...vm.Option) (Result, error) {
	run := Chain
	if feedback {
		run = Feedback
	}
	perms := Permutations(phases)
	thrust := make([]vm.Cell, len(perms))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for k, p := range perms {
		k, p := k, p
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t, err := run(ctx, img, p, opts...)
			if err != nil {
				return errors.Wrapf(err, "phases %v", p)
			}
			thrust[k] = t
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Result{}, err
	}

	best := 0
	for k := range thrust {
		if thrust[k] > thrust[best] {
			best = k
		}
	}
	r := Result{Phases: perms[best], Thrust: thrust[best]}
	logctx.Infof(ctx, "%d permutations, best thrust %d with phases %v", len(perms), r.Thrust, r.Phases)
	return r, nil
}

// Permutations returns all distinct permutations of phases in lexical order.
// phases is left untouched.
func Permutations(phases []vm.Cell) [][]vm.Cell {
	p := slices.Clone(phases)
	slices.Sort(p)
	var perms [][]vm.Cell
	for {
		perms = append(perms, slices.Clone(p))
		// find the rightmost k such that p[k] < p[k+1]
		k := len(p) - 2
		for k >= 0 && p[k] >= p[k+1] {
			k--
		}
		if k < 0 {
			return perms
		}
		l := len(p) - 1
		for p[l] <= p[k] {
			l--
		}
		p[k], p[l] = p[l], p[k]
		slices.Reverse(p[k+1:])
	}
}
