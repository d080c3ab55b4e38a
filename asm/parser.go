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

package asm

import (
	"io"
	"slices"
	"strconv"
	"text/scanner"
	"unicode"

	"github.com/db47h/intcode/vm"
	"golang.org/x/exp/maps"
)

const maxErrors = 10

// MaxImage is the maximum address accepted by the .org directive.
const MaxImage = 1 << 20

func isIdentRune(ch rune, i int) bool {
	return unicode.IsLetter(ch) || unicode.IsSymbol(ch) || unicode.IsPunct(ch) || unicode.IsDigit(ch)
}

type labelSite struct {
	pos     scanner.Position
	address int
}

type label struct {
	labelSite
	uses []labelSite
}

// parser states
const (
	stStatement = iota
	stOrg
	stDat
	stEqu
)

type parser struct {
	i       []vm.Cell
	pc      int
	end     int
	s       scanner.Scanner
	labels  map[string]*label
	consts  map[string]labelSite
	locals  map[string]int
	cstName string
	cstPos  scanner.Position
	errs    ErrAsm

	// instruction being assembled
	ins   vm.Instruction
	insPC int
	arg   int
	nargs int
}

func newParser() *parser {
	p := new(parser)
	p.labels = make(map[string]*label)
	p.consts = make(map[string]labelSite)
	p.locals = make(map[string]int)
	return p
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func localName(n string, count int) string {
	return n + "\u00b7" + strconv.Itoa(count)
}

// local converts a reference to a local label (N+ or N-) to its internal
// name. Other names are returned unchanged.
func (p *parser) local(s string) string {
	if len(s) < 2 {
		return s
	}
	n, dir := s[:len(s)-1], s[len(s)-1]
	if (dir != '+' && dir != '-') || !isDigits(n) {
		return s
	}
	count := p.locals[n]
	if dir == '+' {
		count++
	} else if count == 0 {
		p.error("backward reference to undefined local label " + n)
	}
	return localName(n, count)
}

func (p *parser) errorAt(pos scanner.Position, msg string) {
	if len(p.errs) < maxErrors {
		p.errs = append(p.errs, Error{pos, msg})
	}
}

func (p *parser) error(msg string) {
	pos := p.s.Position
	if !pos.IsValid() {
		pos = p.s.Pos()
	}
	p.errorAt(pos, msg)
}

func (p *parser) write(v vm.Cell) {
	for p.pc >= len(p.i) {
		p.i = append(p.i, make([]vm.Cell, 1024)...)
	}
	p.i[p.pc] = v
	p.pc++
	if p.pc > p.end {
		p.end = p.pc
	}
}

func (p *parser) useLabel(name string) {
	lbl := p.labels[name]
	if lbl == nil {
		// use current position as valid temp position
		lbl = &label{labelSite{p.s.Position, -1}, nil}
		p.labels[name] = lbl
	}
	lbl.uses = append(lbl.uses, labelSite{p.s.Position, p.pc})
}

// value converts s to an integer. Integers, character literals and constants
// are accepted. ok is false if s is none of these.
func (p *parser) value(s string) (v vm.Cell, ok bool) {
	if n, err := strconv.ParseInt(s, 0, 64); err == nil {
		return vm.Cell(n), true
	}
	if len(s) > 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		r, _, tail, err := strconv.UnquoteChar(s[1:len(s)-1], '\'')
		if err != nil || tail != "" {
			p.error("invalid character literal " + s)
			return 0, true
		}
		return vm.Cell(r), true
	}
	if c, ok := p.consts[s]; ok {
		return vm.Cell(c.address), true
	}
	return 0, false
}

// data writes the value of s at the current address. If s is not a value, it
// is taken as a label reference.
func (p *parser) data(s string) {
	if v, ok := p.value(s); ok {
		p.write(v)
		return
	}
	switch s[0] {
	case ':', '.', '#', '@':
		p.error("unexpected " + s)
	}
	p.useLabel(p.local(s))
	p.write(0)
}

func (p *parser) defineLabel(n string) {
	if len(n) == 0 {
		p.error("empty label name")
		return
	}
	if isDigits(n) {
		p.locals[n]++
		n = localName(n, p.locals[n])
	}
	if cst, ok := p.consts[n]; ok {
		p.error("label redefinition: " + n + ", previously defined as a constant here: " + cst.pos.String())
		return
	}
	if l, ok := p.labels[n]; ok {
		if l.address != -1 {
			p.error("label redefinition: " + n + ", previous definition here: " + l.pos.String())
			return
		}
		l.address = p.pc
		l.pos = p.s.Position
		return
	}
	p.labels[n] = &label{labelSite{p.s.Position, p.pc}, nil}
}

func (p *parser) operand(s string) {
	if _, ok := opcodeIndex[s]; ok {
		p.error("unexpected opcode as operand: " + s)
		return
	}
	mode := vm.Position
	switch s[0] {
	case '#':
		mode = vm.Immediate
		s = s[1:]
	case '@':
		mode = vm.Relative
		s = s[1:]
	case ':', '.':
		p.error("unexpected " + s + " as operand")
		return
	}
	if s == "" {
		p.error("missing operand value")
		return
	}
	if mode == vm.Immediate && p.arg == p.ins.Op.Writes() {
		p.error("immediate mode write target for " + p.ins.Op.String())
	}
	p.ins.Modes[p.arg] = mode
	p.data(s)
	p.arg++
	if p.arg == p.nargs {
		p.i[p.insPC] = p.ins.Encode()
	}
}

func (p *parser) statement(s string) (state int) {
	switch s[0] {
	case ':':
		p.defineLabel(s[1:])
		return stStatement
	case '.':
		switch s {
		case ".org":
			return stOrg
		case ".dat":
			return stDat
		case ".equ":
			if t := p.s.Scan(); t != scanner.Ident {
				p.error(".equ: expected identifier, got " + p.s.TokenText())
				return stStatement
			}
			p.cstName = p.s.TokenText()
			if l, ok := p.labels[p.cstName]; ok {
				p.error(".equ: redefinition of " + p.cstName + ", previously defined or used as a label here: " + l.pos.String())
				return stStatement
			}
			p.cstPos = p.s.Position
			return stEqu
		}
		p.error("unknown directive: " + s)
		return stStatement
	}
	if op, ok := opcodeIndex[s]; ok {
		p.ins = vm.Instruction{Op: op}
		p.insPC = p.pc
		p.arg = 0
		p.nargs = op.Params()
		p.write(p.ins.Encode())
		return stStatement
	}
	// implicit .dat
	p.data(s)
	return stStatement
}

// Parse does the parsing and compiling.
func (p *parser) Parse(name string, r io.Reader) (vm.Image, error) {
	var state int

	p.s.Init(r)
	p.s.Error = func(s *scanner.Scanner, msg string) {
		p.error(msg)
	}
	p.s.IsIdentRune = isIdentRune
	p.s.Mode = scanner.ScanIdents
	p.s.Filename = name

	for tok := p.s.Scan(); tok != scanner.EOF && len(p.errs) < maxErrors; tok = p.s.Scan() {
		if tok != scanner.Ident {
			p.error("unexpected character " + strconv.QuoteRune(tok))
			continue
		}
		s := p.s.TokenText()
		if s == "(" {
			// skip comments
			for tok != scanner.EOF && (tok != scanner.Ident || p.s.TokenText() != ")") {
				tok = p.s.Scan()
			}
			continue
		}
		switch {
		case p.arg < p.nargs:
			p.operand(s)
		case state == stOrg:
			v, ok := p.value(s)
			switch {
			case !ok || v < 0:
				p.error(".org: invalid address " + s)
			case v >= MaxImage:
				p.error(".org: address " + s + " out of range")
			default:
				p.pc = int(v)
			}
			state = stStatement
		case state == stEqu:
			v, ok := p.value(s)
			if !ok {
				p.error(".equ: invalid value " + s)
			} else {
				p.consts[p.cstName] = labelSite{p.cstPos, int(v)}
			}
			state = stStatement
		case state == stDat:
			p.data(s)
			state = stStatement
		default:
			state = p.statement(s)
		}
	}

	if p.arg < p.nargs {
		p.error("missing operand for " + p.ins.Op.String())
	} else if state != stStatement {
		p.error("missing directive argument")
	}

	// write labels
	names := maps.Keys(p.labels)
	slices.Sort(names)
	for _, n := range names {
		l := p.labels[n]
		if l.address == -1 {
			p.errorAt(l.uses[0].pos, "undefined label "+n)
			continue
		}
		for _, u := range l.uses {
			p.i[u.address] = vm.Cell(l.address)
		}
	}

	if len(p.errs) > 0 {
		return nil, p.errs
	}
	return vm.Image(p.i[:p.end]), nil
}
