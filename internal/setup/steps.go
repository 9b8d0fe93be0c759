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
package setup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dibend/passtools/internal/workflow"
	"github.com/dibend/passtools/pkg/config"
	"github.com/dibend/passtools/pkg/cout"
	"github.com/dibend/passtools/pkg/git"
	"github.com/dibend/passtools/pkg/gpg"
	"github.com/dibend/passtools/pkg/pass"
	"github.com/dibend/passtools/pkg/shell"
)

// Context carries the wizard's accumulated state between steps. Everything
// here is explicit: the store directory and the chosen identity are threaded
// through rather than read from ambient globals.
type Context struct {
	Shell    shell.Executor
	UI       cout.IO
	StoreDir string

	GPG          *gpg.GPG
	Store        *pass.Store
	Key          gpg.SecretKey
	GitAvailable bool
	HasClipboard bool
}

func (c *Context) stepCheckTools() workflow.StepConfig {
	return workflow.StepConfig{
		Name: "check_tools",
		Execute: func(ctx context.Context) error {
			if err := config.CheckDependencies(c.Shell); err != nil {
				return err
			}

			g, err := gpg.New(c.Shell)
			if err != nil {
				return err
			}
			c.GPG = g

			store, err := pass.New(c.StoreDir, c.Shell)
			if err != nil {
				return err
			}
			c.Store = store

			c.GitAvailable = config.HasGit(c.Shell)
			if !c.GitAvailable {
				c.UI.Infoln("git not found: the store will work, but version control will be skipped.")
			}

			tool, ok := config.FindClipboardTool(c.Shell)
			c.HasClipboard = ok
			if ok {
				slog.Debug("clipboard copy available", "tool", tool)
			} else {
				c.UI.Infoln("No clipboard helper found: `pass -c` will not work until one is installed.")
			}

			return nil
		},
	}
}

func (c *Context) stepSelectKey() workflow.StepConfig {
	return workflow.StepConfig{
		Name: "select_key",
		Execute: func(ctx context.Context) error {
			keys, err := c.GPG.ListSecretKeys()
			if err != nil {
				return err
			}

			key, err := gpg.SelectKey(keys, c.UI)
			if errors.Is(err, gpg.ErrNoSecretKeys) {
				key, err = c.generateAndSelect()
			}
			if err != nil {
				return err
			}

			c.Key = key
			c.UI.Successfln("Using GPG key %s  %s", key.KeyID, key.UserID)
			return nil
		},
	}
}

// generateAndSelect handles the empty-keyring path: offer interactive
// generation, then trust only a fresh listing as proof that it worked.
func (c *Context) generateAndSelect() (gpg.SecretKey, error) {
	confirmed, err := c.UI.Confirm("No GPG secret key found. Generate one now?")
	if err != nil {
		return gpg.SecretKey{}, fmt.Errorf("confirmation failed: %w", err)
	}
	if !confirmed {
		return gpg.SecretKey{}, fmt.Errorf("a GPG secret key is required to initialize the password store")
	}

	c.UI.Infoln("Handing over to gpg. Follow its prompts to create your key.")
	if err := c.GPG.GenerateKey(); err != nil {
		// The exit status is not trusted either way; the re-listing below
		// decides whether generation actually produced a key.
		slog.Warn("key generation reported failure", "error", err)
	}

	keys, err := c.GPG.ListSecretKeys()
	if err != nil {
		return gpg.SecretKey{}, err
	}

	key, err := gpg.SelectKey(keys, c.UI)
	if errors.Is(err, gpg.ErrNoSecretKeys) {
		return gpg.SecretKey{}, gpg.ErrKeyGenerationIncomplete
	}
	return key, err
}

func (c *Context) stepInitStore() workflow.StepConfig {
	return workflow.StepConfig{
		Name: "init_store",
		Execute: func(ctx context.Context) error {
			current, err := c.Store.CurrentKeyID()
			if err != nil {
				return err
			}

			if current == c.Key.KeyID {
				c.UI.Successfln("Password store at %s already configured for key %s.", c.Store.Dir, current)
				return nil
			}

			if current != "" {
				c.UI.Warning(fmt.Sprintf(
					"Store at %s is configured for key %s. Re-initializing for %s; pass should re-encrypt existing entries, but verify them afterwards.",
					c.Store.Dir, current, c.Key.KeyID))
			}

			if err := c.Store.Init(c.Key.KeyID); err != nil {
				return err
			}

			c.UI.Successfln("Password store initialized at %s.", c.Store.Dir)
			return nil
		},
		Retry: &workflow.RetryConfig{
			MaxAttempts: 3,
			PromptRetry: func(err error, attempt int) (bool, error) {
				return c.UI.Confirm(fmt.Sprintf("Store initialization failed: %v. Retry?", err))
			},
		},
	}
}

func (c *Context) stepSetupGit() workflow.StepConfig {
	return workflow.StepConfig{
		Name: "setup_git",
		Execute: func(ctx context.Context) error {
			if !c.GitAvailable {
				slog.Debug("git unavailable, skipping store git setup")
				return nil
			}

			if c.Store.HasGit() {
				c.UI.Infoln("Store git integration already set up.")
				return c.configureAuthor()
			}

			confirmed, err := c.UI.Confirm("Track password store changes with git?")
			if err != nil {
				return fmt.Errorf("confirmation failed: %w", err)
			}
			if !confirmed {
				c.UI.Infoln("Skipping git integration.")
				return nil
			}

			if err := c.Store.GitInit(); err != nil {
				return err
			}
			c.UI.Successln("Store git integration initialized.")

			return c.configureAuthor()
		},
	}
}

// configureAuthor derives the commit author from the chosen key's identity.
// A key with no usable name or email simply leaves the repository config
// untouched.
func (c *Context) configureAuthor() error {
	if !git.IsRepo(c.Store.Dir) {
		slog.Debug("store has no repository, skipping author config")
		return nil
	}

	name, email, err := c.GPG.ResolveIdentity(c.Key.KeyID)
	if err != nil {
		return err
	}
	if name == "" || email == "" {
		slog.Debug("key identity incomplete, skipping author config", "name", name, "email", email)
		return nil
	}

	if err := git.ConfigureAuthor(c.Store.Dir, name, email); err != nil {
		return err
	}

	c.UI.Infofln("Git author set to %s <%s> for the store repository.", name, email)
	return nil
}

func (c *Context) stepPrintGuide() workflow.StepConfig {
	return workflow.StepConfig{
		Name: "print_guide",
		Execute: func(ctx context.Context) error {
			printGuide(c.UI, c.HasClipboard, c.GitAvailable)
			return nil
		},
	}
}
