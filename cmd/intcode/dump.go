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
	"io"
	"slices"

	"github.com/db47h/intcode/internal/ici"
	"github.com/db47h/intcode/vm"
	"golang.org/x/exp/maps"
)

func dumpSlice(w *ici.ErrWriter, a []vm.Cell) error {
	for k, v := range a {
		if k > 0 {
			w.Write([]byte{','})
		}
		w.WriteInt(int64(v))
	}
	return w.Err
}

// dumpVM dumps the VM registers and memory to the specified io.Writer. Cells
// written beyond the initial image are listed in address order.
func dumpVM(i *vm.Instance, w io.Writer) error {
	ew := ici.NewErrWriter(w)
	ew.WriteString("status\t" + i.Status().String() + "\npc\t")
	ew.WriteInt(int64(i.PC))
	ew.WriteString("\nrb\t")
	ew.WriteInt(int64(i.RelativeBase()))
	ew.WriteString("\ncount\t")
	ew.WriteInt(i.InstructionCount())
	ew.WriteString("\nmem\t")
	dumpSlice(ew, i.Memory())
	s := i.State().Sparse
	if len(s) > 0 {
		ew.WriteString("\nsparse\t")
		addrs := maps.Keys(s)
		slices.Sort(addrs)
		for k, addr := range addrs {
			if k > 0 {
				ew.Write([]byte{' '})
			}
			ew.WriteInt(int64(addr))
			ew.Write([]byte{'='})
			ew.WriteInt(int64(s[addr]))
		}
	}
	ew.Write([]byte{'\n'})
	return ew.Err
}
