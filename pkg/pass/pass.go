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
package pass

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dibend/passtools/pkg/shell"
)

// ErrStoreInit marks a failed store initialization. Fatal.
var ErrStoreInit = errors.New("password store initialization failed")

// markerFile records which key ID the store is currently configured to
// encrypt to. pass maintains it; the wizard only reads it.
const markerFile = ".gpg-id"

// Store wraps the pass CLI for one store directory. The directory is passed
// to pass through PASSWORD_STORE_DIR on every invocation.
type Store struct {
	Dir        string
	BinaryPath string
	executor   shell.Executor
}

func New(dir string, executor shell.Executor) (*Store, error) {
	binary, err := executor.LookPath("pass")
	if err != nil {
		return nil, fmt.Errorf("pass binary not found: %w", err)
	}
	slog.Debug("found pass binary", "path", binary)

	return &Store{
		Dir:        dir,
		BinaryPath: binary,
		executor:   executor,
	}, nil
}

// CurrentKeyID reads the store's marker file and returns the configured key
// identifier, or "" when the store has never been initialized.
func (s *Store) CurrentKeyID() (string, error) {
	data, err := os.ReadFile(filepath.Join(s.Dir, markerFile))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read store marker file: %w", err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		if id := strings.TrimSpace(line); id != "" {
			slog.Debug("store marker file read", "keyID", id)
			return id, nil
		}
	}
	return "", nil
}

// Init runs `pass init` for the given key. Re-running against a store already
// configured for another key asks pass to re-encrypt existing entries; the
// caller is responsible for warning the operator to verify that.
func (s *Store) Init(keyID string) error {
	slog.Debug("initializing password store", "dir", s.Dir, "keyID", keyID)

	stdout, stderr, err := s.run("init", keyID)
	if err != nil {
		return fmt.Errorf("%w: %v, stdout: %s, stderr: %s", ErrStoreInit, err, stdout, stderr)
	}

	slog.Debug("password store initialized", "stdout", strings.TrimSpace(stdout))
	return nil
}

// HasGit reports whether the store already has version-control integration.
func (s *Store) HasGit() bool {
	info, err := os.Stat(filepath.Join(s.Dir, ".git"))
	return err == nil && info.IsDir()
}

// GitInit runs `pass git init` so pass tracks every store change in its own
// repository from here on.
func (s *Store) GitInit() error {
	slog.Debug("initializing store git integration", "dir", s.Dir)

	stdout, stderr, err := s.run("git", "init")
	if err != nil {
		return fmt.Errorf("pass git init failed: %w, stdout: %s, stderr: %s", err, stdout, stderr)
	}

	slog.Debug("store git integration initialized")
	return nil
}

func (s *Store) run(args ...string) (string, string, error) {
	cmd := s.executor.Command(s.BinaryPath, args...)
	cmd.SetEnv(append(os.Environ(), fmt.Sprintf("PASSWORD_STORE_DIR=%s", s.Dir)))

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.SetStdout(&stdoutBuf)
	cmd.SetStderr(&stderrBuf)

	err := cmd.Run()
	return stdoutBuf.String(), stderrBuf.String(), err
}
