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

package schedule

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundRobinFourTeams(t *testing.T) {
	matches, err := RoundRobin(4)
	require.NoError(t, err)

	assert.Equal(t, Matrix{
		{4, 3, 2, 1},
		{3, 4, 1, 2},
		{2, 1, 4, 3},
	}, matches)

	assert.Equal(t, [][2]int{{1, 4}, {2, 3}}, matches.Pairings(0))
}

func TestRoundRobinSixTeams(t *testing.T) {
	matches, err := RoundRobin(6)
	require.NoError(t, err)

	// Lineups [1 2 3 4 5 6], [1 6 2 3 4 5], [1 5 6 2 3 4] and so on.
	assert.Equal(t, []int{6, 5, 4, 3, 2, 1}, matches[0])
	assert.Equal(t, []int{5, 3, 2, 6, 1, 4}, matches[1])
	assert.Equal(t, []int{4, 6, 5, 1, 3, 2}, matches[2])
}

func TestRoundRobinProperties(t *testing.T) {
	for n := 2; n <= 32; n += 2 {
		matches, err := RoundRobin(n)
		require.NoError(t, err, "n = %d", n)

		assert.Equal(t, n-1, matches.Rounds(), "n = %d", n)
		assert.Equal(t, n, matches.Teams(), "n = %d", n)
		assert.NoError(t, Verify(matches), "n = %d", n)

		for team := 1; team <= n; team++ {
			seen := make(map[int]bool)
			for round := 0; round < matches.Rounds(); round++ {
				opponent := matches.Opponent(team, round)
				assert.NotEqual(t, team, opponent)
				assert.Equal(t, team, matches.Opponent(opponent, round))
				seen[opponent] = true
			}
			assert.Len(t, seen, n-1, "n = %d, team = %d", n, team)
		}
	}
}

func TestRoundRobinInvalidTeams(t *testing.T) {
	for _, n := range []int{-2, -1, 0, 1, 3, 5, 15} {
		matches, err := RoundRobin(n)
		assert.Nil(t, matches)
		assert.ErrorIs(t, err, ErrInvalidTeams, "n = %d", n)
	}
}

func TestGenerate(t *testing.T) {
	t.Run("identity mapping", func(t *testing.T) {
		plain, err := Generate(8, Options{})
		require.NoError(t, err)

		mapped, err := Generate(8, Options{Mapping: []int{1, 2, 3, 4, 5, 6, 7, 8}})
		require.NoError(t, err)

		assert.Equal(t, plain, mapped)
	})

	t.Run("double", func(t *testing.T) {
		matches, err := Generate(4, Options{Double: true})
		require.NoError(t, err)

		require.Equal(t, 6, matches.Rounds())
		assert.Equal(t, matches[:3], matches[3:])
		assert.NoError(t, Verify(matches))
	})

	t.Run("mapping", func(t *testing.T) {
		matches, err := Generate(4, Options{Mapping: []int{2, 4, 6, 8}})
		require.NoError(t, err)

		assert.Equal(t, Matrix{
			{8, 6, 4, 2},
			{6, 8, 2, 4},
			{4, 2, 8, 6},
		}, matches)
	})

	t.Run("mapping length", func(t *testing.T) {
		_, err := Generate(4, Options{Mapping: []int{1, 2, 3}})
		assert.ErrorIs(t, err, ErrDimension)
	})

	t.Run("mapping duplicates", func(t *testing.T) {
		_, err := Generate(4, Options{Mapping: []int{1, 2, 2, 4}})
		assert.ErrorIs(t, err, ErrInvalidMapping)
	})

	t.Run("odd", func(t *testing.T) {
		_, err := Generate(7, Options{Double: true})
		assert.ErrorIs(t, err, ErrInvalidTeams)
	})
}

func TestDoubleDoesNotAlias(t *testing.T) {
	matches, err := RoundRobin(4)
	require.NoError(t, err)

	double := matches.Double()
	double[0][0] = 99

	assert.Equal(t, 4, matches[0][0])
	assert.Equal(t, 4, double[3][0])
}

func TestVerify(t *testing.T) {
	cases := []struct {
		name    string
		matches Matrix
	}{
		{"self pairing", Matrix{{1, 2}}},
		{"not mutual", Matrix{{2, 3, 1, 4}, {3, 4, 1, 2}, {4, 3, 2, 1}}},
		{"unknown team", Matrix{{2, 5}}},
		{"repeated opponent", Matrix{{2, 1, 4, 3}, {2, 1, 4, 3}, {3, 4, 1, 2}}},
		{"too few rounds", Matrix{{2, 1, 4, 3}}},
		{"ragged", Matrix{{2, 1}, {2}}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := Verify(c.matches)
			if !errors.Is(err, ErrNotRoundRobin) && !errors.Is(err, ErrShapeMismatch) {
				t.Errorf("Verify(%v) = %v; want a verification error", c.matches, err)
			}
		})
	}
}

func TestGenerateTraceVerifies(t *testing.T) {
	level := logrus.GetLevel()
	logrus.SetLevel(logrus.TraceLevel)
	defer logrus.SetLevel(level)

	for n := 2; n <= 12; n += 2 {
		matches, err := Generate(n, Options{Double: true})
		require.NoError(t, err, "n = %d", n)
		assert.NoError(t, Verify(matches), "n = %d", n)
	}

	_, err := Generate(5, Options{})
	assert.ErrorIs(t, err, ErrInvalidTeams)
}
