// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDemo(t *testing.T) {
	options := &Configuration{
		Values: []int{41, 20, 65, 29, 50, 11, 26, 23, 55},
		Deletes: []DeleteType{
			{Value: 41},
			{Value: 55},
			{Value: 99}, // absent: logged and skipped
			{Value: 20},
			{Value: 29, All: true},
		},
	}

	out := strings.Builder{}
	err := runDemo(options, logger.New("demo"), &out)
	require.NoError(t, err, "run demo")

	s := out.String()
	assert.True(t, strings.HasPrefix(s, "initial: values: 9  distinct: 9  height: 3\n41 - 55 - 65\n"), "initial tree:\n%s", s)

	expected := "after deletes: values: 5  distinct: 5  height: 2\n" +
		"26 - 50 - 65\n" +
		"  \\\n" +
		"   - 23\n" +
		"       \\\n" +
		"        - 11\n" +
		separator + "\n"
	assert.True(t, strings.HasSuffix(s, expected), "final tree:\n%s", s)
	assert.Equal(t, 2, strings.Count(s, separator), "separators")
}

func TestRunDemoRandom(t *testing.T) {
	options := &Configuration{
		Values: []int{5},
		Random: RandomType{
			Count: 40,
			Limit: 10,
			Seed:  1,
		},
		Detailed: true,
	}

	out := strings.Builder{}
	err := runDemo(options, logger.New("demo"), &out)
	require.NoError(t, err, "run demo")

	s := out.String()
	assert.Contains(t, s, "initial: values: 1  distinct: 1  height: 0\n<5 h:0 b:+0 c:1>\n", "initial tree")
	assert.Contains(t, s, "random: values: 40  distinct: ", "random tree")
	assert.NotContains(t, s, "after deletes", "no deletes configured")
	assert.Equal(t, 2, strings.Count(s, separator), "separators")
}

func TestRunDemoDeleteEverything(t *testing.T) {
	options := &Configuration{
		Values:  []int{7, 7, 7},
		Deletes: []DeleteType{{Value: 7, All: true}},
	}

	out := strings.Builder{}
	err := runDemo(options, logger.New("demo"), &out)
	require.NoError(t, err, "run demo")
	assert.Contains(t, out.String(), "after deletes: values: 0  distinct: 0  height: -1\n"+separator+"\n", "empty tree")
}

func TestRunDemoRequiresValues(t *testing.T) {
	out := strings.Builder{}
	err := runDemo(&Configuration{}, logger.New("demo"), &out)
	assert.Error(t, err, "empty values accepted")
	assert.Equal(t, "", out.String(), "output written")
}
