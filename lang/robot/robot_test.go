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

package robot_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/db47h/intcode/lang/robot"
	"github.com/db47h/intcode/vm"
	"github.com/stretchr/testify/require"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

// script returns a brain that reads the camera and then outputs the given
// color/turn pairs, one pair per cycle.
func script(pairs ...[2]vm.Cell) vm.Image {
	var img vm.Image
	for _, p := range pairs {
		img = append(img, 3, 100, 104, p[0], 104, p[1])
	}
	return append(img, 99)
}

func testContext(t testing.TB) context.Context {
	ctx, cf := context.WithCancel(context.Background())
	t.Cleanup(cf)
	return logctx.NewContext(ctx, zaptest.NewLogger(t))
}

var sample = script([2]vm.Cell{1, 0}, [2]vm.Cell{0, 0}, [2]vm.Cell{1, 0}, [2]vm.Cell{1, 0}, [2]vm.Cell{0, 1}, [2]vm.Cell{1, 0}, [2]vm.Cell{1, 0})

func TestPaint(t *testing.T) {
	h, err := robot.Paint(testContext(t), sample, robot.Black)
	require.NoError(t, err)
	require.Equal(t, 6, h.Painted())
	require.Equal(t, robot.Black, h.Color(robot.Point{}))
	require.Equal(t, robot.White, h.Color(robot.Point{X: 1, Y: -1}))
	require.Equal(t, robot.Black, h.Color(robot.Point{X: 42, Y: 42}))
	require.Equal(t, "..#\n..#\n##.\n", h.Render())
}

func TestPaint_camera(t *testing.T) {
	// paints the panel with the color it sees, turns right and halts
	brain := vm.Image{3, 9, 4, 9, 104, 1, 99, 0, 0, 0}
	for _, c := range []robot.Color{robot.Black, robot.White} {
		h, err := robot.Paint(testContext(t), brain, c)
		require.NoError(t, err)
		require.Equal(t, 1, h.Painted())
		require.Equal(t, c, h.Color(robot.Point{}))
	}
}

func TestPaint_errors(t *testing.T) {
	ctx := testContext(t)
	_, err := robot.Paint(ctx, vm.Image{104, 2, 104, 0, 99}, robot.Black)
	require.ErrorContains(t, err, "invalid color 2")

	_, err = robot.Paint(ctx, vm.Image{104, 1, 104, 7, 99}, robot.Black)
	require.ErrorContains(t, err, "invalid turn 7")

	_, err = robot.Paint(ctx, vm.Image{3, 0, 3, 0, 99}, robot.Black)
	require.ErrorIs(t, err, vm.ErrInputExhausted)

	cctx, cf := context.WithCancel(ctx)
	cf()
	_, err = robot.Paint(cctx, sample, robot.Black)
	require.ErrorIs(t, err, context.Canceled)
}

func TestPaint_halfCycle(t *testing.T) {
	h, err := robot.Paint(testContext(t), vm.Image{104, 1, 99}, robot.Black)
	require.NoError(t, err)
	require.Equal(t, 1, h.Painted())
	require.Equal(t, "#\n", h.Render())
}

func ExamplePaint() {
	ctx := logctx.NewContext(context.Background(), zap.NewNop())
	h, err := robot.Paint(ctx, sample, robot.White)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(h.Painted())
	fmt.Print(h.Render())

	// Output:
	// 6
	// ..#
	// ..#
	// ##.
}
