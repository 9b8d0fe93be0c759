/*
Copyright © 2025 dibend

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/
package cmd

import (
	"fmt"
	"strconv"

	"github.com/dibend/passtools/pkg/config"
	"github.com/dibend/passtools/pkg/password"
	"github.com/spf13/cobra"
)

func NewGenpassCmd(app *App) *cobra.Command {
	var noSymbols bool

	genpassCmd := &cobra.Command{
		Use:   "genpass [length]",
		Short: "Generate a random password",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			length := config.PasswordLength()
			if len(args) == 1 {
				parsed, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid length %q: %w", args[0], err)
				}
				length = parsed
			}

			pw, err := password.Generate(length, noSymbols)
			if err != nil {
				return err
			}

			// The password goes to stdout unadorned so it can be piped.
			fmt.Fprintln(cmd.OutOrStdout(), pw)
			return nil
		},
	}

	genpassCmd.Flags().BoolVarP(&noSymbols, "no-symbols", "n", false, "use letters and digits only")

	return genpassCmd
}
