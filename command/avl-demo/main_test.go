// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
)

const (
	logCategory = "testing"
)

// the logger may only be initialised once per process
func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "avl-demo-test-")
	if nil != err {
		fmt.Fprintf(os.Stderr, "temporary directory error: %s\n", err)
		os.Exit(1)
	}

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", logCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	if err := logger.Initialise(logging); nil != err {
		fmt.Fprintf(os.Stderr, "logger initialise error: %s\n", err)
		os.Exit(1)
	}

	rc := m.Run()

	logger.Finalise()
	_ = os.RemoveAll(dir)
	os.Exit(rc)
}

// write a configuration file into a fresh directory
func writeConfiguration(t *testing.T, text string) string {
	t.Helper()
	fileName := filepath.Join(t.TempDir(), "avl-demo.conf")
	if err := os.WriteFile(fileName, []byte(text), 0600); nil != err {
		t.Fatalf("write configuration error: %s", err)
	}
	return fileName
}
