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
package gpg

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dibend/passtools/pkg/shell"
)

var (
	// ErrNoSecretKeys signals an empty keyring. It is recoverable: the caller
	// may offer interactive key generation and retry the listing.
	ErrNoSecretKeys = errors.New("no GPG secret keys available")

	// ErrKeyGenerationIncomplete means generation was attempted but the
	// keyring is still empty. Fatal.
	ErrKeyGenerationIncomplete = errors.New("GPG key generation did not produce a usable secret key")
)

// GPG queries and drives the local gpg installation. It operates on the
// user's default keyring, so no GNUPGHOME override is set.
type GPG struct {
	BinaryPath string
	executor   shell.Executor
}

func New(executor shell.Executor) (*GPG, error) {
	binary, err := executor.LookPath("gpg")
	if err != nil {
		return nil, fmt.Errorf("gpg binary not found: %w", err)
	}
	slog.Debug("found gpg binary", "path", binary)

	return &GPG{
		BinaryPath: binary,
		executor:   executor,
	}, nil
}

func (g *GPG) execute(args ...string) (string, string, error) {
	cmd := g.executor.Command(g.BinaryPath, args...)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.SetStdout(&stdoutBuf)
	cmd.SetStderr(&stderrBuf)

	err := cmd.Run()
	return stdoutBuf.String(), stderrBuf.String(), err
}
