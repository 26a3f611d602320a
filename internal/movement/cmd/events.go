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
	"fmt"

	"github.com/spf13/cobra"

	movement "laptudirm.com/x/movement/pkg/common"
)

func Events() *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "Lists the saved events",
		Args:  cobra.ExactArgs(0),

		RunE: func(cmd *cobra.Command, args []string) error {
			if err := movement.TryMkdir(movement.EventsDirectory); err != nil {
				return err
			}

			names, err := movement.ListEvents(movement.EventsDirectory)
			if err != nil {
				return err
			}

			if len(names) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "\x1b[31mNo Events Saved.\x1b[0m Add event files to %s\n", movement.EventsDirectory)
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), "\u001B[32mSaved Events\u001B[0m:")
			fmt.Fprintln(cmd.OutOrStdout())
			for _, name := range names {
				fmt.Fprintf(cmd.OutOrStdout(), "- \x1b[34m%s\x1b[0m\n", name)
			}

			return nil
		},
	}
}
