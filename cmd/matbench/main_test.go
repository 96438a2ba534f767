// Copyright 2026 gorse Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var timeLine = regexp.MustCompile(`^time_ms=(\S+)$`)

func execute(t *testing.T, args ...string) []string {
	cmd := newMatbenchCommand()
	buf := bytes.NewBuffer(nil)
	cmd.SetOut(buf)
	cmd.SetArgs(positionalArgs(cmd.PersistentFlags(), args))
	require.NoError(t, cmd.Execute())
	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
}

func assertTime(t *testing.T, line string) {
	match := timeLine.FindStringSubmatch(line)
	require.Len(t, match, 2, line)
	ms, err := strconv.ParseFloat(match[1], 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, ms, float64(0))
}

func TestMatbench(t *testing.T) {
	lines := execute(t, "4")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "N=4  check(A*I≈A) max_abs_diff="), lines[0])
	assertTime(t, lines[1])
}

func TestMatbench_Default(t *testing.T) {
	lines := execute(t)
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "N=64  "), lines[0])
	assertTime(t, lines[1])
}

func TestMatbench_Empty(t *testing.T) {
	for _, arg := range []string{"0", "abc"} {
		lines := execute(t, arg)
		require.Len(t, lines, 2)
		assert.Equal(t, "N=0  check(A*I≈A) max_abs_diff=0", lines[0])
		assertTime(t, lines[1])
	}
}

func TestMatbench_Negative(t *testing.T) {
	for _, args := range [][]string{
		{"-5"},
		{"--debug", "-5"},
		{"-5", "--debug"},
		{"--log-max-age", "-1", "-5"},
	} {
		lines := execute(t, args...)
		require.Len(t, lines, 2, args)
		assert.True(t, strings.HasPrefix(lines[0], "N=-5  check(A*I≈A) max_abs_diff="), lines[0])
		assert.NotEqual(t, "N=-5  check(A*I≈A) max_abs_diff=0", lines[0])
		assertTime(t, lines[1])
	}
}

func TestPositionalArgs(t *testing.T) {
	flagSet := newMatbenchCommand().PersistentFlags()
	assert.Equal(t, []string{"--", "-5"}, positionalArgs(flagSet, []string{"-5"}))
	assert.Equal(t, []string{"--debug", "--", "-5"}, positionalArgs(flagSet, []string{"--debug", "-5"}))
	assert.Equal(t, []string{"-c", "a.toml", "--", "-5x"}, positionalArgs(flagSet, []string{"-c", "a.toml", "-5x"}))
	assert.Equal(t, []string{"--log-max-size", "-1", "4"}, positionalArgs(flagSet, []string{"--log-max-size", "-1", "4"}))
	assert.Equal(t, []string{"4", "-5"}, positionalArgs(flagSet, []string{"4", "-5"}))
	assert.Equal(t, []string{"--", "-5"}, positionalArgs(flagSet, []string{"--", "-5"}))
	assert.Empty(t, positionalArgs(flagSet, nil))
}

func TestMatbench_Atoi(t *testing.T) {
	lines := execute(t, " 3xyz", "ignored")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "N=3  "), lines[0])
}

func TestMatbench_Config(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[benchmark]\nsize = 5\nwarmup_rounds = 0\n"), 0644))
	lines := execute(t, "--config", path)
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "N=5  "), lines[0])
	// positional argument overrides the configured size
	lines = execute(t, "-c", path, "2")
	assert.True(t, strings.HasPrefix(lines[0], "N=2  "), lines[0])
}

func TestMatbench_Version(t *testing.T) {
	lines := execute(t, "--version")
	assert.True(t, strings.HasPrefix(lines[0], "Version:"), lines[0])
}
