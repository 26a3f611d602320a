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

// Verify checks that the given unmapped schedule is a valid round robin:
// every round pairs each team with exactly one other team, and over the
// whole schedule every team meets every other team equally often.
func Verify(m Matrix) error {
	if err := m.CheckShape(); err != nil {
		return err
	}

	n := m.Teams()
	if n < 2 || m.Rounds()%(n-1) != 0 {
		return fmt.Errorf(
			"%w: %d rounds can't be played by %d teams",
			ErrNotRoundRobin, m.Rounds(), n,
		)
	}

	for r, row := range m {
		for t, opponent := range row {
			team := t + 1
			switch {
			case opponent < 1 || opponent > n:
				return fmt.Errorf("%w: round %d: team %d plays unknown team %d", ErrNotRoundRobin, r+1, team, opponent)
			case opponent == team:
				return fmt.Errorf("%w: round %d: team %d plays itself", ErrNotRoundRobin, r+1, team)
			case m.Opponent(opponent, r) != team:
				return fmt.Errorf("%w: round %d: team %d plays %d which plays %d", ErrNotRoundRobin, r+1, team, opponent, m.Opponent(opponent, r))
			}
		}
	}

	legs := m.Rounds() / (n - 1)
	for team := 1; team <= n; team++ {
		opponents := lo.Map(m, func(row []int, _ int) int {
			return row[team-1]
		})

		for opponent, count := range lo.CountValues(opponents) {
			if count != legs {
				return fmt.Errorf(
					"%w: team %d meets team %d %d times, want %d",
					ErrNotRoundRobin, team, opponent, count, legs,
				)
			}
		}
	}

	return nil
}
