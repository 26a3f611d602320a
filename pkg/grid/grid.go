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

// Package grid lays a schedule out as a table assignment sheet: one row
// per round, and an NS/EW/Boards triple per table.
package grid

import (
	"errors"
	"fmt"
	"strconv"

	"laptudirm.com/x/movement/pkg/schedule"
)

// DefaultBoardSets is the number of board sets used when none is given.
const DefaultBoardSets = 2

// Unbounded gives every round its own board set.
const Unbounded = -1

// ErrBoardSets is returned for a board set cap which is neither positive
// nor Unbounded.
var ErrBoardSets = errors.New("grid: board sets must be positive or -1 for unbounded")

// Grid is a formatted movement.
type Grid struct {
	Header []string
	Tables []string
	Rounds []Round
}

// Round is a single row of the movement.
type Round struct {
	Number int
	Seats  []Seat
}

// Seat is the assignment of a single table in a round.
type Seat struct {
	NS, EW int
	Boards int
}

// Format lays out the given schedule, which has one row per round and
// one column per table. Board sets cycle through 1..highestSet, or count
// up with the rounds if highestSet is Unbounded.
func Format(matches schedule.Matrix, highestSet int) (*Grid, error) {
	if err := matches.CheckShape(); err != nil {
		return nil, err
	}

	sets, err := BoardSets(matches.Rounds(), highestSet)
	if err != nil {
		return nil, err
	}

	tables := matches.Teams()

	grid := Grid{
		Header: make([]string, 1, 1+3*tables),
		Tables: make([]string, 1+3*tables),
		Rounds: make([]Round, matches.Rounds()),
	}

	grid.Header[0] = "Round"
	grid.Tables[0] = "Table->"
	for table := 1; table <= tables; table++ {
		grid.Header = append(grid.Header, "NS", "EW", "Boards")
		grid.Tables[3*table-2] = strconv.Itoa(table)
	}

	for r, row := range matches {
		round := Round{
			Number: r + 1,
			Seats:  make([]Seat, tables),
		}

		for t, opponent := range row {
			round.Seats[t] = Seat{
				NS:     t + 1,
				EW:     opponent,
				Boards: sets[r],
			}
		}

		grid.Rounds[r] = round
	}

	return &grid, nil
}

// BoardSets returns the board set played in each of the given number of
// rounds.
func BoardSets(rounds, highestSet int) ([]int, error) {
	if highestSet == 0 || highestSet < Unbounded {
		return nil, fmt.Errorf("%w: %d", ErrBoardSets, highestSet)
	}

	sets := make([]int, rounds)
	for r := range sets {
		if highestSet == Unbounded {
			sets[r] = r + 1
		} else {
			sets[r] = r%highestSet + 1
		}
	}

	return sets, nil
}

// Records flattens the grid into rows of fields, headers first.
func (grid *Grid) Records() [][]string {
	records := make([][]string, 0, len(grid.Rounds)+2)
	records = append(records, grid.Header, grid.Tables)

	for _, round := range grid.Rounds {
		record := make([]string, 0, 1+3*len(round.Seats))
		record = append(record, strconv.Itoa(round.Number))

		for _, seat := range round.Seats {
			record = append(record,
				strconv.Itoa(seat.NS),
				strconv.Itoa(seat.EW),
				strconv.Itoa(seat.Boards),
			)
		}

		records = append(records, record)
	}

	return records
}
