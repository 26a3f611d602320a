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
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/movement/pkg/export"
	"laptudirm.com/x/movement/pkg/grid"
	"laptudirm.com/x/movement/pkg/schedule"
)

// movement generate
func Generate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate --teams n",
		Short: "Generate the movement of a single round robin",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`generate schedules a round robin between the given even
			number of teams using the circle method and lays it out as a
			table assignment sheet, with one row per round and a NS, EW,
			and Boards column for every table.

			Board sets cycle through 1..boards, or a new board set is used
			every round if --boards is -1. The --mapping flag replaces the
			team numbers 1..n with the given displayed numbers.

			The movement is written to stdout unless --output is given.`),
		Example: heredoc.Doc(`
			$ movement generate --teams 8 --double --output pairs.csv
			$ movement generate -n 4 --mapping 2,4,6,8 --boards -1`),

		RunE: func(cmd *cobra.Command, args []string) error {
			teams, _ := cmd.Flags().GetInt("teams")
			double, _ := cmd.Flags().GetBool("double")
			mapping, _ := cmd.Flags().GetIntSlice("mapping")
			boards, _ := cmd.Flags().GetInt("boards")
			output, _ := cmd.Flags().GetString("output")
			standard, _ := cmd.Flags().GetBool("standard")

			if len(mapping) == 0 {
				mapping = nil
			}

			matches, err := schedule.Generate(teams, schedule.Options{
				Double:  double,
				Mapping: mapping,
			})
			if err != nil {
				return err
			}

			for round := range matches {
				if mapping == nil {
					logrus.Tracef("round %d: %v", round+1, matches.Pairings(round))
				} else {
					logrus.Tracef("round %d: %v", round+1, matches[round])
				}
			}

			movement, err := grid.Format(matches, boards)
			if err != nil {
				return err
			}

			style := export.StyleCompat
			if standard {
				style = export.StyleStandard
			}

			if output == "" {
				return export.Write(cmd.OutOrStdout(), movement.Records(), style)
			}

			if err := export.WriteFile(output, movement.Records(), style); err != nil {
				return err
			}

			logrus.Infof("\x1b[32mWrote\x1b[0m %d rounds for %d teams to %s", matches.Rounds(), teams, output)
			return nil
		},
	}

	cmd.Flags().IntP("teams", "n", 0, "Number of teams (must be even)")
	cmd.Flags().BoolP("double", "d", false, "Play the round robin twice")
	cmd.Flags().IntSliceP("mapping", "m", nil, "Displayed number of each team")
	cmd.Flags().IntP("boards", "b", grid.DefaultBoardSets, "Highest board set, -1 for unbounded")
	cmd.Flags().StringP("output", "o", "", "File to write the movement to")
	cmd.Flags().Bool("standard", false, "Write standard CSV instead of the compat format")

	_ = cmd.MarkFlagRequired("teams")

	return cmd
}
