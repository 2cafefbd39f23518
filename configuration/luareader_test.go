// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/multiavl/configuration"
	"github.com/bitmark-inc/multiavl/fault"
)

type deleteItem struct {
	Value int  `gluamapper:"value"`
	All   bool `gluamapper:"all"`
}

type testConfiguration struct {
	Name    string       `gluamapper:"name"`
	Values  []int        `gluamapper:"values"`
	Deletes []deleteItem `gluamapper:"deletes"`
	Source  string       `gluamapper:"source"`
}

func writeFile(t *testing.T, text string) string {
	fileName := filepath.Join(t.TempDir(), "test.conf")
	err := os.WriteFile(fileName, []byte(text), 0600)
	require.NoError(t, err, "write configuration")
	return fileName
}

func TestParse(t *testing.T) {
	fileName := writeFile(t, `
local values = {}
for i = 1, 5 do
    values[#values + 1] = i * 10
end
return {
    name = "numbers",
    values = values,
    deletes = {
        { value = 20 },
        { value = 40, all = true },
    },
    source = arg[0],
}
`)

	options := &testConfiguration{
		Name: "default",
	}
	err := configuration.ParseConfigurationFile(fileName, options)
	require.NoError(t, err, "parse")

	assert.Equal(t, "numbers", options.Name, "name")
	assert.Equal(t, []int{10, 20, 30, 40, 50}, options.Values, "values")
	assert.Equal(t, []deleteItem{{Value: 20}, {Value: 40, All: true}}, options.Deletes, "deletes")
	assert.Equal(t, fileName, options.Source, "arg[0]")
}

func TestParseKeepsDefaults(t *testing.T) {
	fileName := writeFile(t, `return { values = { 3 } }`)

	options := &testConfiguration{
		Name: "default",
	}
	err := configuration.ParseConfigurationFile(fileName, options)
	require.NoError(t, err, "parse")
	assert.Equal(t, "default", options.Name, "name")
	assert.Equal(t, []int{3}, options.Values, "values")
}

func TestParseErrors(t *testing.T) {
	options := testConfiguration{}

	fileName := writeFile(t, `return { values = { 1 } }`)
	err := configuration.ParseConfigurationFile(fileName, options)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "not a pointer")

	err = configuration.ParseConfigurationFile(fileName, new(int))
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "not a struct")

	fileName = writeFile(t, `return 42`)
	err = configuration.ParseConfigurationFile(fileName, &options)
	assert.Equal(t, fault.ErrNotLuaTable, err, "not a table")

	fileName = writeFile(t, `return {`)
	err = configuration.ParseConfigurationFile(fileName, &options)
	assert.Error(t, err, "syntax error")

	err = configuration.ParseConfigurationFile(filepath.Join(t.TempDir(), "missing.conf"), &options)
	assert.Error(t, err, "missing file")
}
