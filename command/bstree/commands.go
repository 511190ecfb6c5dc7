// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bstree/avl"
	"github.com/bitmark-inc/bstree/fault"
	"github.com/bitmark-inc/bstree/key"
	"github.com/bitmark-inc/bstree/redblack"
	"github.com/bitmark-inc/bstree/shell"
)

// setup command handler
//
// commands that do not need the configuration file or logging
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "bench", "run":
		return false

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] [--config-file=FILE] [--tree=avl|redblack] [--keys=int|string] [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  bench N                             - insert N random integer keys then search,\n")
		fmt.Printf("                                        count a range and check the tree\n")
		fmt.Printf("\n")

		fmt.Printf("  run FILE                            - execute the commands in FILE\n")
		fmt.Printf("\n")

		fmt.Printf("with no command, commands are read from standard input:\n\n")
		fmt.Printf("  insert KEY VALUE | search KEY | delete KEY | height | count | print | check\n")
		fmt.Printf("\n")
		return true
	}
}

// tree command handler
//
// commands that operate on a tree
func processTreeCommand(log *logger.L, theConfiguration *Configuration, arguments []string) error {

	command := arguments[0]
	arguments = arguments[1:]

	switch command {
	case "bench":
		if 1 != len(arguments) {
			return fault.ErrWrongArgumentCount
		}
		n, err := strconv.Atoi(arguments[0])
		if nil != err || n <= 0 {
			return fault.ErrInvalidCount
		}
		return benchmark(os.Stdout, log, theConfiguration.Tree, n, theConfiguration.Seed)

	case "run":
		if 1 != len(arguments) {
			return fault.ErrWrongArgumentCount
		}
		f, err := os.Open(arguments[0])
		if nil != err {
			return err
		}
		defer f.Close()
		return runCommands(log, theConfiguration, f)

	default:
		return fault.ErrUnknownCommand
	}
}

// run a command script against a new tree
func runCommands(log *logger.L, theConfiguration *Configuration, in io.Reader) error {
	dict, err := newDictionary(theConfiguration.Tree)
	if nil != err {
		return err
	}

	log.Infof("tree: %s  keys: %s", theConfiguration.Tree, theConfiguration.Keys)

	p := shell.New(dict, key.Kind(theConfiguration.Keys), os.Stdout, logger.New("shell"))
	p.StopOnError = theConfiguration.StopOnError
	return p.Run(in)
}

// create an empty tree of the named kind
func newDictionary(tree string) (shell.Dictionary, error) {
	switch tree {
	case treeAVL:
		return avl.New(), nil
	case treeRedBlack:
		return redblack.New(), nil
	default:
		return nil, fault.ErrInvalidTreeKind
	}
}
