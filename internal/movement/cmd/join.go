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

	movement "laptudirm.com/x/movement/pkg/common"
	"laptudirm.com/x/movement/pkg/event"
)

// movement join
func Join() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "join { event-name event-file }",
		Short: "Generate the movement described by an event file",
		Args:  cobra.ExactArgs(1),
		Long: heredoc.Doc(`join generates every section of the given event, joins
			the sections side by side into a single movement, and writes
			it to the event's output file.

			The event is either the path to a YAML or JSON event file, or
			the name of an event saved in ~/movement/events.

			An event file looks like:

			    name: spring-pairs
			    boards: 2
			    sections:
			      - teams: 4
			        mapping: [1, 3, 5, 7]
			      - teams: 4
			        mapping: [2, 4, 6, 8]
			    order: [1, 3, 5, 7, 2, 4, 6, 8]`),

		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := movement.FindEvent(movement.EventsDirectory, args[0])
			if err != nil {
				return err
			}

			logrus.Debugf("loading event from %s", path)
			tour, err := event.Load(path)
			if err != nil {
				return err
			}

			if output, _ := cmd.Flags().GetString("output"); output != "" {
				tour.Output = output
			}

			if err := tour.Export(); err != nil {
				return err
			}

			logrus.Infof("\x1b[32mWrote\x1b[0m %s (%d sections) to %s", tour.Name, len(tour.Sections), tour.Output)
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", "Override the event's output file")

	return cmd
}
