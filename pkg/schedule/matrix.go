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
	"fmt"

	"github.com/samber/lo"
)

// Matrix is a schedule with one row per round and one column per team
// (or table). matrix[r][t-1] is the opponent of team t in round r.
type Matrix [][]int

// Rounds returns the number of rounds in the schedule.
func (m Matrix) Rounds() int {
	return len(m)
}

// Teams returns the number of columns in the schedule.
func (m Matrix) Teams() int {
	if len(m) == 0 {
		return 0
	}

	return len(m[0])
}

// Opponent returns the opponent of the given team (1-indexed) in the
// given round (0-indexed).
func (m Matrix) Opponent(team, round int) int {
	return m[round][team-1]
}

// Clone returns a deep copy of the schedule.
func (m Matrix) Clone() Matrix {
	clone := make(Matrix, len(m))
	for r, row := range m {
		clone[r] = append([]int(nil), row...)
	}

	return clone
}

// CheckShape makes sure that every round has the same number of columns.
func (m Matrix) CheckShape() error {
	for r, row := range m {
		if len(row) != m.Teams() {
			return fmt.Errorf(
				"%w: round %d has %d columns, want %d",
				ErrShapeMismatch, r+1, len(row), m.Teams(),
			)
		}
	}

	return nil
}

// Double returns the schedule followed by a second copy of all of its
// rounds, i.e. a double round robin.
func (m Matrix) Double() Matrix {
	return append(m.Clone(), m.Clone()...)
}

// Remap translates the abstract team numbers of the schedule into the
// displayed ones: a value v becomes mapping[v-1].
func (m Matrix) Remap(mapping []int) (Matrix, error) {
	if len(mapping) != m.Teams() {
		return nil, fmt.Errorf(
			"%w: mapping has %d entries for %d teams",
			ErrDimension, len(mapping), m.Teams(),
		)
	}

	if dups := lo.FindDuplicates(mapping); len(dups) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMapping, dups)
	}

	mapped := make(Matrix, len(m))
	for r, row := range m {
		mapped[r] = make([]int, len(row))
		for t, v := range row {
			if v < 1 || v > len(mapping) {
				return nil, fmt.Errorf(
					"%w: team %d is outside a mapping of %d teams",
					ErrDimension, v, len(mapping),
				)
			}

			mapped[r][t] = mapping[v-1]
		}
	}

	return mapped, nil
}

// Pairings returns the pairs of tables that meet in the given round
// (0-indexed), with the lower table first. It assumes the schedule's
// values are table numbers, as in an unmapped or reordered schedule.
func (m Matrix) Pairings(round int) [][2]int {
	var pairs [][2]int
	for t, opponent := range m[round] {
		if table := t + 1; table < opponent {
			pairs = append(pairs, [2]int{table, opponent})
		}
	}

	return pairs
}
