// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bstree/configuration"
	"github.com/bitmark-inc/bstree/fault"
	"github.com/bitmark-inc/bstree/key"
)

// basic defaults (a relative log directory is taken from the
// directory holding the configuration file)
const (
	defaultTree = treeAVL
	defaultKeys = key.KindInt

	defaultLogFile  = "bstree.log"
	defaultLogCount = 10          //  number of log files retained
	defaultLogSize  = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// the supported trees
const (
	treeAVL      = "avl"
	treeRedBlack = "redblack"
)

// to hold log levels
type LoglevelMap map[string]string

// Configuration - the values from the configuration file merged with
// the command-line options
type Configuration struct {
	Tree        string               `gluamapper:"tree" json:"tree"`
	Keys        string               `gluamapper:"keys" json:"keys"`
	StopOnError bool                 `gluamapper:"stop_on_error" json:"stop_on_error"`
	Seed        int64                `gluamapper:"seed" json:"seed"`
	Logging     logger.Configuration `gluamapper:"logging" json:"logging"`
}

func getConfiguration(configurationFileName string, options map[string][]string) (*Configuration, error) {

	theConfiguration := &Configuration{
		Tree:        defaultTree,
		Keys:        string(defaultKeys),
		StopOnError: false,
		Seed:        0,

		Logging: logger.Configuration{
			Directory: os.TempDir(),
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   true,
			Levels: LoglevelMap{
				logger.DefaultTag: "critical",
			},
		},
	}

	if "" != configurationFileName {
		fileName, err := filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}
		dataDirectory, _ := filepath.Split(fileName)

		theConfiguration.Logging.Directory = "."
		theConfiguration.Logging.Console = false

		err = configuration.ParseConfigurationFile(fileName, theConfiguration)
		if nil != err {
			return nil, err
		}

		if !filepath.IsAbs(theConfiguration.Logging.Directory) {
			theConfiguration.Logging.Directory = filepath.Join(dataDirectory, theConfiguration.Logging.Directory)
		}
		theConfiguration.Logging.Directory = filepath.Clean(theConfiguration.Logging.Directory)
	}

	// command-line overrides
	if len(options["tree"]) > 0 {
		theConfiguration.Tree = options["tree"][len(options["tree"])-1]
	}
	if len(options["keys"]) > 0 {
		theConfiguration.Keys = options["keys"][len(options["keys"])-1]
	}
	if len(options["verbose"]) > 0 {
		theConfiguration.Logging.Console = true
		theConfiguration.Logging.Levels = LoglevelMap{
			logger.DefaultTag: "info",
		}
	}
	if len(options["quiet"]) > 0 {
		theConfiguration.Logging.Console = false
	}

	tree, err := parseTreeKind(theConfiguration.Tree)
	if nil != err {
		return nil, err
	}
	theConfiguration.Tree = tree

	keys, err := key.ParseKind(theConfiguration.Keys)
	if nil != err {
		return nil, err
	}
	theConfiguration.Keys = string(keys)

	return theConfiguration, nil
}

// canonical tree name, case is ignored
func parseTreeKind(name string) (string, error) {
	switch t := strings.ToLower(strings.TrimSpace(name)); t {
	case treeAVL, treeRedBlack:
		return t, nil
	default:
		return "", fault.ErrInvalidTreeKind
	}
}
