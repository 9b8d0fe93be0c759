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
package git

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-git/go-git/v5"
)

// IsRepo reports whether path is the root of an existing git repository.
func IsRepo(path string) bool {
	_, err := git.PlainOpen(path)
	if err != nil {
		if !errors.Is(err, git.ErrRepositoryNotExists) {
			slog.Debug("failed to open repository", "path", path, "error", err)
		}
		return false
	}
	return true
}

// ConfigureAuthor writes user.name and user.email into the repository's local
// config, scoped to that repository only.
func ConfigureAuthor(repoPath, name, email string) error {
	slog.Debug("configuring git author", "path", repoPath, "name", name, "email", email)

	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		return fmt.Errorf("failed to open repository: %w", err)
	}

	cfg, err := repo.Config()
	if err != nil {
		return fmt.Errorf("failed to read repository config: %w", err)
	}

	cfg.User.Name = name
	cfg.User.Email = email

	if err := repo.SetConfig(cfg); err != nil {
		return fmt.Errorf("failed to write repository config: %w", err)
	}

	slog.Debug("git author configured")
	return nil
}
