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

import "errors"

var (
	// ErrInvalidTeams is returned when a round robin is requested for an
	// odd or non-positive number of teams.
	ErrInvalidTeams = errors.New("schedule: team count must be a positive even number")

	// ErrDimension is returned when a mapping or an order does not have
	// one entry per column of the schedule it is applied to.
	ErrDimension = errors.New("schedule: dimension mismatch")

	// ErrInvalidMapping is returned when a mapping assigns the same
	// displayed number to more than one team.
	ErrInvalidMapping = errors.New("schedule: mapping repeats a team number")

	// ErrShapeMismatch is returned for ragged schedules and when joining
	// sections with different round counts.
	ErrShapeMismatch = errors.New("schedule: shape mismatch")

	// ErrInvalidOrder is returned when a column order is not a
	// permutation of 1..columns.
	ErrInvalidOrder = errors.New("schedule: order is not a permutation of the columns")

	// ErrNotRoundRobin is returned by Verify.
	ErrNotRoundRobin = errors.New("schedule: not a round robin")
)
