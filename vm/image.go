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

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Image encapsulates a VM's initial memory.
type Image []Cell

// Parse reads a program in its textual form: integers in base 10 separated by
// commas. White space around values is ignored, as is a trailing comma.
func Parse(r io.Reader) (Image, error) {
	var img Image
	br := bufio.NewReader(r)
	for n := 0; ; n++ {
		field, err := br.ReadString(',')
		if err != nil && err != io.EOF {
			return nil, errors.Wrap(err, "Parse")
		}
		s := strings.TrimSpace(strings.TrimSuffix(field, ","))
		if s == "" {
			if err == io.EOF {
				return img, nil
			}
			return nil, errors.Errorf("Parse: field %d: empty value", n)
		}
		v, perr := strconv.ParseInt(s, 10, 64)
		if perr != nil {
			return nil, errors.Wrapf(perr, "Parse: field %d", n)
		}
		img = append(img, Cell(v))
		if err == io.EOF {
			return img, nil
		}
	}
}

// ParseString parses the program in s. See Parse.
func ParseString(s string) (Image, error) {
	return Parse(strings.NewReader(s))
}

// Load loads a program from file fileName.
func Load(fileName string) (Image, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "Load")
	}
	defer f.Close()
	img, err := Parse(f)
	if err != nil {
		return nil, errors.Wrap(err, fileName)
	}
	return img, nil
}

// Save writes the textual form of the program to file fileName, followed by a
// new line.
func (i Image) Save(fileName string) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return errors.Wrap(err, "create failed")
	}
	w := bufio.NewWriter(f)
	defer func() {
		if ferr := w.Flush(); err == nil && ferr != nil {
			err = errors.Wrap(ferr, "write failed")
		}
		f.Close()
		// delete file on error
		if err != nil {
			os.Remove(fileName)
		}
	}()
	if _, err = io.WriteString(w, i.String()); err != nil {
		return errors.Wrap(err, "write failed")
	}
	_, err = w.Write([]byte{'\n'})
	return errors.Wrap(err, "write failed")
}

// String returns the textual form of the program.
func (i Image) String() string {
	var b strings.Builder
	for k, v := range i {
		if k > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatInt(int64(v), 10))
	}
	return b.String()
}
