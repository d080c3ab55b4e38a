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

package amp_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/db47h/intcode/lang/amp"
	"github.com/db47h/intcode/vm"
	"github.com/stretchr/testify/require"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap/zaptest"
)

const (
	chain1    = "3,15,3,16,1002,16,10,16,1,16,15,15,4,15,99,0,0"
	chain2    = "3,23,3,24,1002,24,10,24,1002,23,-1,23,101,5,23,23,1,24,23,23,4,23,99,0,0"
	chain3    = "3,31,3,32,1002,32,10,32,1001,31,-2,31,1007,31,0,33,1002,33,7,33,1,33,31,31,1,32,31,31,4,31,99,0,0,0"
	feedback1 = "3,26,1001,26,-4,26,3,27,1002,27,2,27,1,27,26,27,4,27,1001,28,-1,28,1005,28,6,99,0,0,5"
	feedback2 = "3,52,1001,52,-5,52,3,53,1,52,56,54,1007,54,5,55,1005,55,26,1001,54,-5,54,1105,1,12,1,53,54,53,1008,54,0,55,1001,55,1,55,2,53,55,53,4,53,1001,56,-1,56,1005,56,6,99,0,0,0,0,10"
)

func parse(t testing.TB, s string) vm.Image {
	img, err := vm.ParseString(s)
	require.NoError(t, err)
	return img
}

func testContext(t testing.TB) context.Context {
	ctx, cf := context.WithCancel(context.Background())
	t.Cleanup(cf)
	return logctx.NewContext(ctx, zaptest.NewLogger(t))
}

func TestMaxThrust(t *testing.T) {
	tests := [...]struct {
		prog     string
		feedback bool
		phases   []vm.Cell
		thrust   vm.Cell
	}{
		{chain1, false, []vm.Cell{4, 3, 2, 1, 0}, 43210},
		{chain2, false, []vm.Cell{0, 1, 2, 3, 4}, 54321},
		{chain3, false, []vm.Cell{1, 0, 4, 3, 2}, 65210},
		{feedback1, true, []vm.Cell{9, 8, 7, 6, 5}, 139629729},
		{feedback2, true, []vm.Cell{9, 7, 8, 5, 6}, 18216},
	}
	ctx := testContext(t)
	for _, test := range tests {
		img := parse(t, test.prog)
		phases := []vm.Cell{0, 1, 2, 3, 4}
		if test.feedback {
			phases = []vm.Cell{5, 6, 7, 8, 9}
		}
		r, err := amp.MaxThrust(ctx, img, phases, test.feedback)
		require.NoError(t, err)
		require.Equal(t, test.thrust, r.Thrust)
		require.Equal(t, test.phases, r.Phases)

		// direct run with the best phases
		run := amp.Chain
		if test.feedback {
			run = amp.Feedback
		}
		v, err := run(ctx, img, test.phases)
		require.NoError(t, err)
		require.Equal(t, test.thrust, v)
	}
}

func TestMaxThrust_ties(t *testing.T) {
	// outputs its phase setting regardless of the input signal: every
	// permutation ending with the same phase ties.
	img := parse(t, "3,9,3,10,4,9,99,0,0,0,0")
	r, err := amp.MaxThrust(testContext(t), img, []vm.Cell{2, 0, 1}, false)
	require.NoError(t, err)
	require.EqualValues(t, 2, r.Thrust)
	require.Equal(t, []vm.Cell{0, 1, 2}, r.Phases)
}

func TestMaxThrust_errors(t *testing.T) {
	ctx := testContext(t)
	// needs a third input
	img := parse(t, "3,0,3,0,3,0,99")
	_, err := amp.MaxThrust(ctx, img, []vm.Cell{0, 1}, false)
	require.ErrorIs(t, err, vm.ErrInputExhausted)

	_, err = amp.Chain(ctx, parse(t, "3,0,3,0,99"), []vm.Cell{0})
	require.ErrorContains(t, err, "no output")

	_, err = amp.Feedback(ctx, parse(t, "3,0,3,0,99"), []vm.Cell{0, 1})
	require.ErrorContains(t, err, "without output")

	cctx, cf := context.WithCancel(ctx)
	cf()
	_, err = amp.MaxThrust(cctx, parse(t, chain1), []vm.Cell{0, 1, 2, 3, 4}, false)
	require.ErrorIs(t, err, context.Canceled)
}

func TestMaxThrust_deadline(t *testing.T) {
	tests := [...]struct {
		name     string
		prog     string
		feedback bool
	}{
		{"echo loop", "3,100,4,100,1105,1,0", true},
		{"silent loop", "1105,1,0", false},
		{"silent feedback", "3,100,1105,1,2", true},
	}
	for _, test := range tests {
		ctx, cf := context.WithTimeout(testContext(t), 100*time.Millisecond)
		_, err := amp.MaxThrust(ctx, parse(t, test.prog), []vm.Cell{5, 6}, test.feedback)
		cf()
		require.ErrorIs(t, err, context.DeadlineExceeded, test.name)
	}
}

func TestFeedback_halt(t *testing.T) {
	// reads its phase, then for each input x: halts if x-phase >= 6, else
	// outputs x+phase.
	img := parse(t, "3,29,3,30,1002,29,-1,31,1,30,31,32,1007,32,6,33,1006,33,28,1,30,29,34,4,34,1105,1,2,99,0,0,0,0,0,0")
	// round 1: A outputs 0, B outputs 10. round 2: A gets 10 and halts, B
	// must not run again on a value A never produced.
	v, err := amp.Feedback(testContext(t), img, []vm.Cell{0, 10})
	require.NoError(t, err)
	require.EqualValues(t, 10, v)
}

func TestMaxThrust_options(t *testing.T) {
	r, err := amp.MaxThrust(testContext(t), parse(t, chain1), []vm.Cell{0, 1, 2, 3, 4}, false, vm.DecodeCache(8))
	require.NoError(t, err)
	require.EqualValues(t, 43210, r.Thrust)

	_, err = amp.MaxThrust(testContext(t), parse(t, chain1), []vm.Cell{0, 1}, false, vm.DecodeCache(0))
	require.Error(t, err)
}

func TestPermutations(t *testing.T) {
	phases := []vm.Cell{3, 1, 2}
	require.Equal(t, [][]vm.Cell{
		{1, 2, 3}, {1, 3, 2}, {2, 1, 3}, {2, 3, 1}, {3, 1, 2}, {3, 2, 1},
	}, amp.Permutations(phases))
	require.Equal(t, []vm.Cell{3, 1, 2}, phases)

	require.Equal(t, [][]vm.Cell{{1, 1, 2}, {1, 2, 1}, {2, 1, 1}}, amp.Permutations([]vm.Cell{2, 1, 1}))
	require.Len(t, amp.Permutations([]vm.Cell{5, 6, 7, 8, 9}), 120)
}

func ExampleChain() {
	img, err := vm.ParseString(chain1)
	if err != nil {
		panic(err)
	}
	thrust, err := amp.Chain(context.Background(), img, []vm.Cell{4, 3, 2, 1, 0})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(thrust)

	// Output:
	// 43210
}
