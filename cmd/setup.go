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
	"github.com/dibend/passtools/internal/setup"
	"github.com/dibend/passtools/pkg/config"
	"github.com/spf13/cobra"
)

func NewSetupCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Interactively set up the password store",
		Long: `Checks for the required tools, discovers or generates a GPG secret key,
initializes the pass password store for it, optionally puts the store under
git, and prints a short usage guide.

The store location defaults to ~/.password-store and can be overridden with
the PASSWORD_STORE_DIR environment variable.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			storeDir, err := config.StoreDir()
			if err != nil {
				return err
			}

			w := setup.NewWorkflow(storeDir, app.Shell, app.UI)
			return w.Run(cmd.Context())
		},
	}
}
