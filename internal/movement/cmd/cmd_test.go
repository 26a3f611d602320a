// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/movement/pkg/grid"
	"laptudirm.com/x/movement/pkg/schedule"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := Root()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestGenerateStdout(t *testing.T) {
	out, err := execute(t, "generate", "--teams", "4")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Round,NS,EW,Boards,NS,EW,Boards,NS,EW,Boards,NS,EW,Boards,",
		"Table->,1,,,2,,,3,,,4,,,",
		"1,1,4,1,2,3,1,3,2,1,4,1,1,",
		"2,1,3,2,2,4,2,3,1,2,4,2,2,",
		"3,1,2,1,2,1,1,3,4,1,4,3,1,",
		"",
	}, strings.Split(out, "\r\n"))
}

func TestGenerateFlags(t *testing.T) {
	out, err := execute(t, "generate", "-n", "4", "--double", "--mapping", "2,4,6,8", "--boards", "-1", "--standard")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\r\n"), "\r\n")
	require.Len(t, lines, 2+6)
	assert.Equal(t, "1,1,8,1,2,6,1,3,4,1,4,2,1", lines[2])
	assert.Equal(t, "6,1,4,6,2,2,6,3,8,6,4,6,6", lines[7])
}

func TestGenerateOutputFile(t *testing.T) {
	output := filepath.Join(t.TempDir(), "pairs.csv")

	out, err := execute(t, "generate", "-n", "6", "-o", output)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, 2+5, strings.Count(string(data), ",\r\n"))
}

func TestGenerateErrors(t *testing.T) {
	_, err := execute(t, "generate", "--teams", "5")
	assert.ErrorIs(t, err, schedule.ErrInvalidTeams)

	_, err = execute(t, "generate", "--teams", "4", "--mapping", "1,2")
	assert.ErrorIs(t, err, schedule.ErrDimension)

	_, err = execute(t, "generate", "--teams", "4", "--boards", "0")
	assert.ErrorIs(t, err, grid.ErrBoardSets)

	_, err = execute(t, "generate")
	assert.Error(t, err)
}

func TestJoin(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pairs.yaml")
	output := filepath.Join(dir, "joined.csv")

	require.NoError(t, os.WriteFile(path, []byte(strings.Join([]string{
		"name: pairs",
		"sections:",
		"  - teams: 2",
		"    mapping: [1, 3]",
		"  - teams: 2",
		"    mapping: [2, 4]",
		"order: [1, 3, 2, 4]",
	}, "\n")), 0644))

	_, err := execute(t, "join", path, "--output", output)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t,
		"Round,NS,EW,Boards,NS,EW,Boards,NS,EW,Boards,NS,EW,Boards,\r\n"+
			"Table->,1,,,2,,,3,,,4,,,\r\n"+
			"1,1,3,1,2,4,1,3,1,1,4,2,1,\r\n",
		string(data),
	)
}

func TestJoinMissingEvent(t *testing.T) {
	_, err := execute(t, "join", filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
