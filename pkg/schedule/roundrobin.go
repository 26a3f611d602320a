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

	"github.com/sirupsen/logrus"
)

// anchor is the team which stays in place while the others rotate.
const anchor = 1

// Options configures Generate.
type Options struct {
	// Double plays the whole round robin twice.
	Double bool

	// Mapping translates team i into the displayed team Mapping[i-1].
	Mapping []int
}

// Generate builds the round robin schedule for n teams and applies the
// given options to it.
func Generate(n int, opts Options) (Matrix, error) {
	matches, err := RoundRobin(n)
	if err != nil {
		return nil, err
	}

	if opts.Double {
		matches = matches.Double()
	}

	// Self-check the unmapped schedule when tracing.
	if logrus.IsLevelEnabled(logrus.TraceLevel) {
		if err := Verify(matches); err != nil {
			return nil, err
		}
		logrus.Tracef("verified %d rounds for %d teams", matches.Rounds(), n)
	}

	if opts.Mapping != nil {
		matches, err = matches.Remap(opts.Mapping)
		if err != nil {
			return nil, err
		}
	}

	logrus.Debugf("generated %d rounds for %d teams", matches.Rounds(), n)
	return matches, nil
}

// RoundRobin schedules n teams using the circle method. Team 1 is fixed
// while teams 2..n sit around a circle which turns by one seat every
// round. In each round the lineup [1, circle...] is folded in half, so
// the team at position k meets the team at position n-1-k.
func RoundRobin(n int) (Matrix, error) {
	if n <= 0 || n%2 != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTeams, n)
	}

	circle := newCircle(n)
	matches := make(Matrix, n-1)

	for round := range matches {
		lineup := make([]int, n)
		for pos := 0; pos < n; pos++ {
			lineup[circle.lineup(pos)-1] = circle.lineup(n - pos - 1)
		}

		matches[round] = lineup
		circle.rotate()
	}

	return matches, nil
}

// circle holds the rotating teams of a round robin. Turning the circle
// moves the offset instead of shifting the teams around.
type circle struct {
	teams  []int
	offset int
}

func newCircle(n int) *circle {
	c := &circle{teams: make([]int, n-1)}
	for i := range c.teams {
		c.teams[i] = anchor + i + 1
	}

	return c
}

// lineup returns the team at the given position of the current round's
// lineup, where position 0 holds the anchor.
func (c *circle) lineup(pos int) int {
	if pos == 0 {
		return anchor
	}

	return c.teams[(c.offset+pos-1)%len(c.teams)]
}

// rotate moves the last team of the circle to the front.
func (c *circle) rotate() {
	c.offset = (c.offset + len(c.teams) - 1) % len(c.teams)
}
