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

// Package patch runs Intcode programs that take their parameters as a noun
// and a verb patched into memory cells 1 and 2, and report their result in
// cell 0.
package patch

import (
	"context"
	"runtime"
	"sync"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Max is the upper bound (inclusive) of the noun and verb values tried by
// Search.
const Max = 99

// ErrNotFound is returned by Search when no noun and verb produce the target.
var ErrNotFound = errors.New("no noun and verb produce the target value")

// Run runs a copy of img with memory cells 1 and 2 set to noun and verb
// respectively and returns the value of cell 0 after the program halts.
func Run(img vm.Image, noun, verb vm.Cell, opts ...vm.Option) (vm.Cell, error) {
	return run(context.Background(), img, noun, verb, opts)
}

func run(ctx context.Context, img vm.Image, noun, verb vm.Cell, opts []vm.Option) (vm.Cell, error) {
	if len(img) < 3 {
		return 0, errors.Errorf("image too short: %d cells", len(img))
	}
	p := make(vm.Image, len(img))
	copy(p, img)
	p[1], p[2] = noun, verb
	i, err := vm.New(p, opts...)
	if err != nil {
		return 0, err
	}
	if _, err = i.AdvanceContext(ctx); err != nil {
		return 0, errors.Wrapf(err, "noun=%d verb=%d", noun, verb)
	}
	return i.Peek(0)
}

// Search looks for the noun and verb in [0, Max] that make the program
// output target. Nouns are searched concurrently. If more than one pair
// matches, the one with the lowest 100*noun+verb is returned. Programs that
// fault for a given pair are treated as not matching. Search returns ctx.Err()
// once ctx is done, even if a program never halts.
func Search(ctx context.Context, img vm.Image, target vm.Cell, opts ...vm.Option) (noun, verb vm.Cell, err error) {
	if len(img) < 3 {
		return 0, 0, errors.Errorf("image too short: %d cells", len(img))
	}
	var (
		mu    sync.Mutex
		found bool
	)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for n := vm.Cell(0); n <= Max; n++ {
		n := n
		eg.Go(func() error {
			for v := vm.Cell(0); v <= Max; v++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				r, err := run(ctx, img, n, v, opts)
				if err != nil {
					logctx.Debug(ctx, "skipping", zap.Error(err))
					continue
				}
				if r != target {
					continue
				}
				mu.Lock()
				if !found || n*100+v < noun*100+verb {
					noun, verb, found = n, v, true
				}
				mu.Unlock()
				return nil
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, 0, err
	}
	if !found {
		return 0, 0, ErrNotFound
	}
	logctx.Infof(ctx, "found noun=%d verb=%d for %d", noun, verb, target)
	return noun, verb, nil
}
