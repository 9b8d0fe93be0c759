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
	"log/slog"
	"os"

	"github.com/dibend/passtools/pkg/config"
	"github.com/dibend/passtools/pkg/cout"
	"github.com/dibend/passtools/pkg/shell"
	"github.com/spf13/cobra"
)

var debugMode bool

// App bundles the injectable dependencies commands run against, so tests can
// substitute mocks for the shell and the terminal.
type App struct {
	Shell shell.Executor
	UI    cout.IO
}

func NewRootCmd(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "passtools",
		Short:        "Set up a GPG-backed password store and generate passwords",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initLogging()

			slog.Debug("starting passtools")

			if err := config.Init(); err != nil {
				return fmt.Errorf("failed to initialize: %w", err)
			}
			slog.Debug("initialization complete")

			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&debugMode, "debug", "d", false, "enable debug logging")

	rootCmd.AddCommand(NewSetupCmd(app))
	rootCmd.AddCommand(NewGenpassCmd(app))

	return rootCmd
}

func initLogging() {
	level := slog.LevelWarn
	if debugMode {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}
