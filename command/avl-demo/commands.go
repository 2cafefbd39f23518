// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
)

// setup command handler
//
// commands that do not need the configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "version", "v":
		fmt.Printf("%s\n", version)

	case "help", "h", "?":
		fmt.Printf("usage: %s [--help] [--verbose] [--version] --config-file=FILE [[command|help] arguments...]\n", program)
		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                 (h)      - display this message\n\n")
		fmt.Printf("  version              (v)      - display version string\n\n")
		fmt.Printf("  show-config          (sc)     - print the decoded configuration\n\n")

	default:
		return false
	}

	return true
}

// configuration command handler
//
// commands that only inspect the configuration
func processConfigCommand(arguments []string, options *Configuration) bool {

	switch arguments[0] {
	case "show-config", "sc":
		b, err := json.MarshalIndent(options, "", "  ")
		if nil != err {
			fmt.Printf("configuration: error: %s\n", err)
			return true
		}
		fmt.Printf("%s\n", b)

	default:
		fmt.Printf("unrecognised command: %q\n", arguments[0])
	}

	return true
}
