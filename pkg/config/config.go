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
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dibend/passtools/pkg/shell"
	"github.com/spf13/viper"
)

// ErrMissingTool marks a fatal dependency failure. Wrapped errors carry the
// tool name and a remediation hint.
var ErrMissingTool = errors.New("missing required tool")

const DefaultPasswordLength = 20

// Tools the setup wizard shells out to. gpg and pass are mandatory, git only
// degrades the store's version-control integration, and the clipboard helpers
// are probed so the usage guide can mention `pass -c` accurately.
var (
	requiredTools  = []string{"gpg", "pass"}
	clipboardTools = []string{"pbcopy", "wl-copy", "xclip", "xsel"}
)

func Init() error {
	viper.SetDefault("password_length", DefaultPasswordLength)

	if err := viper.BindEnv("store_dir", "PASSWORD_STORE_DIR"); err != nil {
		return fmt.Errorf("failed to bind PASSWORD_STORE_DIR: %w", err)
	}

	return nil
}

// StoreDir returns the password store location: PASSWORD_STORE_DIR when set,
// otherwise the pass default of ~/.password-store.
func StoreDir() (string, error) {
	if dir := viper.GetString("store_dir"); dir != "" {
		slog.Debug("store dir from PASSWORD_STORE_DIR", "dir", dir)
		return dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".password-store"), nil
}

func PasswordLength() int {
	return viper.GetInt("password_length")
}

// CheckDependencies verifies the mandatory external tools are present.
func CheckDependencies(executor shell.Executor) error {
	for _, tool := range requiredTools {
		if _, err := executor.LookPath(tool); err != nil {
			return fmt.Errorf("%w: %s is not installed or in PATH", ErrMissingTool, tool)
		}
		slog.Debug("dependency check passed", "tool", tool)
	}
	return nil
}

// HasGit reports whether the optional version-control tool is available.
// Absence is not an error, it just disables the store's git integration.
func HasGit(executor shell.Executor) bool {
	if _, err := executor.LookPath("git"); err != nil {
		slog.Debug("git not found, store git integration disabled")
		return false
	}
	return true
}

// FindClipboardTool probes for a platform clipboard helper. The helper is
// never invoked here, only its presence matters.
func FindClipboardTool(executor shell.Executor) (string, bool) {
	for _, tool := range clipboardTools {
		if path, err := executor.LookPath(tool); err == nil {
			slog.Debug("found clipboard helper", "tool", tool, "path", path)
			return tool, true
		}
	}
	return "", false
}
