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

package vm

import "github.com/pkg/errors"

// RunNoIO runs the program img to completion in a new instance with no input
// and returns the final memory, limited to the size of img.
func RunNoIO(img Image, opts ...Option) ([]Cell, error) {
	i, err := New(img, opts...)
	if err != nil {
		return nil, err
	}
	if _, err = i.Run(); err != nil {
		return nil, errors.Wrap(err, "RunNoIO")
	}
	return i.Memory(), nil
}

// RunWithInputs runs the program img to completion in a new instance with the
// given inputs and returns the output log.
func RunWithInputs(img Image, inputs ...Cell) ([]Cell, error) {
	i, err := New(img, Input(inputs...))
	if err != nil {
		return nil, err
	}
	out, err := i.Run()
	return out, errors.Wrap(err, "RunWithInputs")
}
