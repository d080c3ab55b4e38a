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

// Package robot runs a hull painting robot controlled by an Intcode program.
//
// The robot starts on a black hull at the origin, facing up. On each cycle it
// sends the color of the panel under it (0 for black, 1 for white) to its
// brain, which outputs the color to paint the panel with, followed by the
// direction to turn (0 for left, 1 for right). The robot then moves forward
// one panel. It stops when the brain halts.
package robot

import (
	"context"
	"strings"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"go.brendoncarroll.net/stdctx/logctx"
	"golang.org/x/exp/maps"
)

// Color is the color of a hull panel.
type Color int

// Panel colors.
const (
	Black Color = iota
	White
)

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	}
	return "invalid"
}

// Point is the location of a panel. Y grows downwards.
type Point struct {
	X, Y int
}

func (p Point) add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// directions in clockwise order, starting up
var dirs = [...]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Hull is the state of a hull after painting.
type Hull struct {
	colors  map[Point]Color
	painted map[Point]struct{}
}

func newHull() *Hull {
	return &Hull{
		colors:  make(map[Point]Color),
		painted: make(map[Point]struct{}),
	}
}

// Color returns the color of the panel at p.
func (h *Hull) Color(p Point) Color {
	return h.colors[p]
}

// Painted returns the number of panels painted at least once.
func (h *Hull) Painted() int {
	return len(h.painted)
}

func (h *Hull) paint(p Point, c Color) {
	h.colors[p] = c
	h.painted[p] = struct{}{}
}

// Render returns a picture of the bounding box of the known panels, one line
// per row, with '#' for white panels and '.' for black ones.
func (h *Hull) Render() string {
	pts := maps.Keys(h.colors)
	if len(pts) == 0 {
		return ""
	}
	lo, hi := pts[0], pts[0]
	for _, p := range pts[1:] {
		lo.X, hi.X = min(lo.X, p.X), max(hi.X, p.X)
		lo.Y, hi.Y = min(lo.Y, p.Y), max(hi.Y, p.Y)
	}
	var b strings.Builder
	for y := lo.Y; y <= hi.Y; y++ {
		for x := lo.X; x <= hi.X; x++ {
			if h.colors[Point{x, y}] == White {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Paint runs the robot with the brain program img. The starting panel has the
// given start color. Paint returns the painted hull once the brain halts.
func Paint(ctx context.Context, img vm.Image, start Color, opts ...vm.Option) (*Hull, error) {
	brain, err := vm.NewYielding(img, opts...)
	if err != nil {
		return nil, err
	}
	h := newHull()
	if start != Black {
		h.colors[Point{}] = start
	}
	var (
		pos   Point
		dir   int
		moves int
	)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		brain.AddInput(vm.Cell(h.Color(pos)))
		r, err := brain.Advance()
		if err != nil {
			return nil, errors.Wrap(err, "brain")
		}
		if r.State == vm.Complete {
			break
		}
		c := Color(r.Value)
		if c != Black && c != White {
			return nil, errors.Errorf("invalid color %d at %v", r.Value, pos)
		}
		h.paint(pos, c)

		if r, err = brain.Advance(); err != nil {
			return nil, errors.Wrap(err, "brain")
		}
		if r.State == vm.Complete {
			break
		}
		switch r.Value {
		case 0:
			dir = (dir + 3) % len(dirs)
		case 1:
			dir = (dir + 1) % len(dirs)
		default:
			return nil, errors.Errorf("invalid turn %d at %v", r.Value, pos)
		}
		pos = pos.add(dirs[dir])
		moves++
	}
	logctx.Infof(ctx, "painted %d panels in %d moves, %d instructions", h.Painted(), moves, brain.InstructionCount())
	return h, nil
}
