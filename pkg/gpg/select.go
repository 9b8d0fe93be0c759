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
	"strconv"
	"strings"

	"github.com/dibend/passtools/pkg/cout"
)

// SelectKey resolves a listing to exactly one key. A single key is selected
// without prompting. Multiple keys present a 1-based numbered menu and the
// loop re-prompts until the operator enters a valid index; there is no
// default and no attempt limit, since choosing the store key is a one-time
// decision. An empty listing returns ErrNoSecretKeys.
func SelectKey(keys []SecretKey, ui cout.IO) (SecretKey, error) {
	switch len(keys) {
	case 0:
		return SecretKey{}, ErrNoSecretKeys
	case 1:
		slog.Debug("single secret key, auto-selecting", "keyID", keys[0].KeyID)
		return keys[0], nil
	}

	ui.Infoln("Multiple GPG secret keys found:")
	for i, key := range keys {
		ui.Infofln("  %d) %s  %s", i+1, key.KeyID, key.UserID)
	}

	for {
		answer, err := ui.Input(fmt.Sprintf("Select a key [1-%d]", len(keys)), "")
		if err != nil {
			return SecretKey{}, fmt.Errorf("key selection failed: %w", err)
		}

		index, err := strconv.Atoi(strings.TrimSpace(answer))
		if err != nil || index < 1 || index > len(keys) {
			ui.Warning(fmt.Sprintf("Invalid selection %q: enter a number between 1 and %d.", answer, len(keys)))
			continue
		}

		slog.Debug("key selected", "index", index, "keyID", keys[index-1].KeyID)
		return keys[index-1], nil
	}
}

// ResolveIdentity looks up the chosen key's identity line and splits it into
// name and email for reuse as version-control author identity. Missing parts
// come back as empty strings, not errors; the caller must skip author
// configuration when either is empty.
func (g *GPG) ResolveIdentity(keyID string) (string, string, error) {
	slog.Debug("resolving key identity", "keyID", keyID)

	stdout, stderr, err := g.execute("--list-secret-keys", "--with-colons", keyID)
	if err != nil {
		return "", "", fmt.Errorf("failed to look up key %s: %w, stderr: %s", keyID, err, stderr)
	}

	keys := parseSecretKeyListing(stdout)
	if len(keys) == 0 {
		return "", "", nil
	}

	name, email := SplitUserID(keys[0].UserID)
	slog.Debug("resolved identity", "name", name, "email", email)
	return name, email, nil
}

// SplitUserID splits an identity line of the form "Name <email>". Without a
// <...> segment the whole line is the name and the email is empty.
func SplitUserID(userID string) (name, email string) {
	open := strings.Index(userID, "<")
	if open < 0 {
		return strings.TrimSpace(userID), ""
	}

	name = strings.TrimSpace(userID[:open])
	if end := strings.Index(userID[open:], ">"); end > 0 {
		email = userID[open+1 : open+end]
	}
	return name, email
}
