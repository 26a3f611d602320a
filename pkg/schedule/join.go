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

// Join concatenates the columns of the given sections, which must all
// have the same number of rounds. If order is non-nil, the column at
// index i of the joined schedule is moved to column order[i] (1-indexed).
func Join(sections []Matrix, order []int) (Matrix, error) {
	if len(sections) == 0 {
		return Matrix{}, nil
	}

	rounds := sections[0].Rounds()
	for i, section := range sections {
		if err := section.CheckShape(); err != nil {
			return nil, fmt.Errorf("section %d: %w", i+1, err)
		}

		if section.Rounds() != rounds {
			return nil, fmt.Errorf(
				"%w: section %d has %d rounds, want %d",
				ErrShapeMismatch, i+1, section.Rounds(), rounds,
			)
		}
	}

	joined := make(Matrix, rounds)
	for r := range joined {
		for _, section := range sections {
			joined[r] = append(joined[r], section[r]...)
		}
	}

	if order == nil {
		return joined, nil
	}

	return joined.Permute(order)
}

// Permute returns a new schedule where the column at index i is moved to
// column order[i] (1-indexed).
func (m Matrix) Permute(order []int) (Matrix, error) {
	columns := m.Teams()
	if len(order) != columns {
		return nil, fmt.Errorf(
			"%w: order has %d entries for %d columns",
			ErrDimension, len(order), columns,
		)
	}

	targets := lo.Map(order, func(column int, _ int) int {
		return column - 1
	})

	outside := lo.ContainsBy(targets, func(target int) bool {
		return target < 0 || target >= columns
	})
	if outside || len(lo.Uniq(targets)) != columns {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOrder, order)
	}

	permuted := make(Matrix, len(m))
	for r, row := range m {
		permuted[r] = make([]int, columns)
		for i, target := range targets {
			permuted[r][target] = row[i]
		}
	}

	return permuted, nil
}
