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
	"fmt"
	"log/slog"
	"os"
	"strings"
)

const keyIDLength = 16

// SecretKey is one secret key record from the keyring listing.
type SecretKey struct {
	// KeyID is the long-form key identifier: the trailing 16 hex characters
	// of the raw identifier field.
	KeyID string
	// UserID is the first identity line found for the key, empty when the
	// key carries none.
	UserID string
}

// ListSecretKeys queries the keyring in machine-readable colon format and
// returns the secret key records in keyring order. An empty keyring yields an
// empty slice and no error.
func (g *GPG) ListSecretKeys() ([]SecretKey, error) {
	slog.Debug("listing secret keys")

	stdout, stderr, err := g.execute("--list-secret-keys", "--with-colons")
	if err != nil {
		// gpg exits non-zero on a keyring with no secret keys at all.
		if strings.TrimSpace(stdout) == "" {
			slog.Debug("keyring has no secret keys", "stderr", strings.TrimSpace(stderr))
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list secret keys: %w, stderr: %s", err, stderr)
	}

	keys := parseSecretKeyListing(stdout)
	slog.Debug("found secret keys", "count", len(keys))
	return keys, nil
}

// parseSecretKeyListing walks the colon-delimited listing line by line. A
// "sec" line starts a new record carrying the key identifier; the first "uid"
// line after it sets the record's identity, later ones are ignored.
func parseSecretKeyListing(listing string) []SecretKey {
	var keys []SecretKey
	current := -1

	for _, line := range strings.Split(listing, "\n") {
		fields := strings.Split(line, ":")
		switch fields[0] {
		case "sec":
			if len(fields) < 5 {
				continue
			}
			keys = append(keys, SecretKey{KeyID: trailingKeyID(fields[4])})
			current = len(keys) - 1
		case "uid":
			if current < 0 || len(fields) < 10 {
				continue
			}
			if keys[current].UserID != "" {
				continue
			}
			keys[current].UserID = strings.TrimSpace(fields[9])
		}
	}

	return keys
}

// trailingKeyID reduces a raw identifier field to the long key ID. Full
// fingerprints carry a leading prefix before the final 16 characters.
func trailingKeyID(raw string) string {
	raw = strings.TrimSpace(raw)
	if len(raw) > keyIDLength {
		return raw[len(raw)-keyIDLength:]
	}
	return raw
}

// GenerateKey runs interactive key generation wired to the caller's terminal.
// The exit status is reported but not trusted: the only reliable success
// signal is a subsequent ListSecretKeys returning a record.
func (g *GPG) GenerateKey() error {
	slog.Debug("starting interactive key generation")

	cmd := g.executor.Command(g.BinaryPath, "--full-generate-key")
	cmd.SetStdin(os.Stdin)
	cmd.SetStdout(os.Stdout)
	cmd.SetStderr(os.Stderr)

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("gpg key generation exited abnormally: %w", err)
	}

	slog.Debug("key generation command completed")
	return nil
}
