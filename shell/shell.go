// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/mattn/go-shellwords"

	"github.com/bitmark-inc/bstree/fault"
	"github.com/bitmark-inc/bstree/key"
)

// MaxLineLength - longest command line accepted by Run
const MaxLineLength = 1024 * 1024

// Dictionary - the operations every tree supports
type Dictionary interface {
	Insert(key.Item, interface{}) bool
	Search(key.Item) (interface{}, bool)
	Height() int
	Count() int
	Print(io.Writer)
	Check() error
}

// Deleter - optional interface for trees that support delete
type Deleter interface {
	Delete(key.Item) (interface{}, bool)
}

// Processor - apply command lines to a dictionary
type Processor struct {
	StopOnError bool

	dict     Dictionary
	keyKind  key.Kind
	out      io.Writer
	log      *logger.L
	commands int
	failures int
}

// New - create a processor writing its results to out
func New(dict Dictionary, keyKind key.Kind, out io.Writer, log *logger.L) *Processor {
	return &Processor{
		dict:    dict,
		keyKind: keyKind,
		out:     out,
		log:     log,
	}
}

// Commands - number of commands processed
func (p *Processor) Commands() int {
	return p.commands
}

// Failures - number of commands that returned an error
func (p *Processor) Failures() int {
	return p.failures
}

// Run - process lines until end of input
//
// a line longer than MaxLineLength stops the run with bufio.ErrTooLong
func (p *Processor) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), MaxLineLength)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber += 1
		line := scanner.Text()
		err := p.Process(line)
		if nil == err {
			continue
		}
		p.log.Warnf("line: %d  command: %q  error: %s", lineNumber, line, err)
		fmt.Fprintf(p.out, "error: %s\n", err)
		if p.StopOnError {
			return err
		}
	}
	if err := scanner.Err(); nil != err {
		return err
	}
	p.log.Infof("commands: %d  failures: %d", p.commands, p.failures)
	return nil
}

// Process - execute a single command line
func (p *Processor) Process(line string) error {
	line = strings.TrimSpace(line)
	if "" == line || strings.HasPrefix(line, "#") {
		return nil
	}

	p.commands += 1
	fields, err := shellwords.Parse(line)
	if nil != err || 0 == len(fields) {
		p.log.Debugf("parse: %q  error: %v", line, err)
		p.failures += 1
		return fault.ErrInvalidCommandLine
	}

	err = p.execute(strings.ToLower(fields[0]), fields[1:])
	if nil != err {
		p.failures += 1
	}
	return err
}

func (p *Processor) execute(command string, arguments []string) error {
	p.log.Debugf("command: %s  arguments: %q", command, arguments)

	switch command {
	case "insert":
		if 2 != len(arguments) {
			return fault.ErrWrongArgumentCount
		}
		k, err := key.Parse(p.keyKind, arguments[0])
		if nil != err {
			return err
		}
		if p.dict.Insert(k, arguments[1]) {
			fmt.Fprintf(p.out, "added %v\n", k)
		} else {
			fmt.Fprintf(p.out, "updated %v\n", k)
		}

	case "search":
		if 1 != len(arguments) {
			return fault.ErrWrongArgumentCount
		}
		k, err := key.Parse(p.keyKind, arguments[0])
		if nil != err {
			return err
		}
		value, found := p.dict.Search(k)
		if !found {
			return fault.ErrKeyNotFound
		}
		fmt.Fprintf(p.out, "%v → %v\n", k, value)

	case "delete":
		if 1 != len(arguments) {
			return fault.ErrWrongArgumentCount
		}
		d, ok := p.dict.(Deleter)
		if !ok {
			return fault.ErrDeleteNotSupported
		}
		k, err := key.Parse(p.keyKind, arguments[0])
		if nil != err {
			return err
		}
		value, found := d.Delete(k)
		if !found {
			return fault.ErrKeyNotFound
		}
		fmt.Fprintf(p.out, "deleted %v → %v\n", k, value)

	case "height":
		if 0 != len(arguments) {
			return fault.ErrWrongArgumentCount
		}
		fmt.Fprintf(p.out, "height: %d\n", p.dict.Height())

	case "count":
		if 0 != len(arguments) {
			return fault.ErrWrongArgumentCount
		}
		fmt.Fprintf(p.out, "count: %d\n", p.dict.Count())

	case "print":
		if 0 != len(arguments) {
			return fault.ErrWrongArgumentCount
		}
		p.dict.Print(p.out)

	case "check":
		if 0 != len(arguments) {
			return fault.ErrWrongArgumentCount
		}
		if err := p.dict.Check(); nil != err {
			return err
		}
		fmt.Fprintf(p.out, "ok\n")

	default:
		return fault.ErrUnknownCommand
	}
	return nil
}
