// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/multiavl/fault"
)

func TestGetConfiguration(t *testing.T) {
	fileName := writeConfiguration(t, `
return {
    data_directory = ".",
    values = { 3, 1, 2, 2 },
    deletes = { { value = 2 }, { value = 3, all = true } },
    random = { count = 5, seed = 7 },
    detailed = true,
    logging = { file = "demo.log", levels = { DEFAULT = "info" } },
}
`)

	options, err := getConfiguration(fileName)
	require.NoError(t, err, "get configuration")

	dir := filepath.Dir(fileName)
	assert.Equal(t, dir, options.DataDirectory, "data directory")
	assert.Equal(t, []int{3, 1, 2, 2}, options.Values, "values")
	assert.Equal(t, []DeleteType{{Value: 2}, {Value: 3, All: true}}, options.Deletes, "deletes")
	assert.Equal(t, RandomType{Count: 5, Limit: defaultRandomLimit, Seed: 7}, options.Random, "random")
	assert.True(t, options.Detailed, "detailed")

	assert.Equal(t, filepath.Join(dir, defaultLogDirectory), options.Logging.Directory, "log directory")
	assert.Equal(t, "demo.log", options.Logging.File, "log file")
	assert.Equal(t, defaultLogCount, options.Logging.Count, "log count")
	assert.Equal(t, defaultLogSize, options.Logging.Size, "log size")
	assert.Equal(t, "info", options.Logging.Levels["DEFAULT"], "log level")

	info, err := os.Stat(options.Logging.Directory)
	require.NoError(t, err, "log directory not created")
	assert.True(t, info.IsDir(), "log directory is not a directory")
}

func TestGetConfigurationRandomLimits(t *testing.T) {
	fileName := writeConfiguration(t, `
return {
    data_directory = ".",
    values = { 1 },
    random = { count = -4, limit = 0 },
}
`)

	options, err := getConfiguration(fileName)
	require.NoError(t, err, "get configuration")
	assert.Equal(t, 0, options.Random.Count, "count")
	assert.Equal(t, defaultRandomLimit, options.Random.Limit, "limit")
}

func TestGetConfigurationErrors(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"no values", `return { data_directory = "." }`},
		{"no data directory", `return { values = { 1 } }`},
		{"missing data directory", `return { data_directory = "/no/such/directory/here", values = { 1 } }`},
		{"log file with path", `return { data_directory = ".", values = { 1 }, logging = { file = "x/y.log" } }`},
		{"not a table", `return 42`},
	}

	for _, c := range cases {
		fileName := writeConfiguration(t, c.text)
		options, err := getConfiguration(fileName)
		assert.Error(t, err, c.name)
		assert.Nil(t, options, c.name)
	}

	fileName := writeConfiguration(t, `return { data_directory = "." }`)
	_, err := getConfiguration(fileName)
	assert.Equal(t, fault.ErrMissingValues, err, "missing values error")
}
