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
	"os"
	"path/filepath"
	"testing"

	"github.com/dibend/passtools/pkg/gpg"
	"github.com/dibend/passtools/pkg/pass"
	"github.com/dibend/passtools/tests/mocks"
)

const (
	secLine = "sec:u:255:22:89AB45EA5F2D4E7B:1669108945:::u:::cESC:::+::ed25519:::0:"
	uidLine = "uid:u::::1669108945::0123456789ABCDEF::Jane Doe <jane@example.com>::::::::::0:"
)

func newTestContext(t *testing.T, shell *mocks.MockShell, ui *mocks.MockUI) *Context {
	t.Helper()

	c := &Context{
		Shell:    shell,
		UI:       ui,
		StoreDir: t.TempDir(),
	}

	g, err := gpg.New(shell)
	if err != nil {
		t.Fatalf("gpg.New() returned error: %v", err)
	}
	c.GPG = g

	store, err := pass.New(c.StoreDir, shell)
	if err != nil {
		t.Fatalf("pass.New() returned error: %v", err)
	}
	c.Store = store

	return c
}

func TestStepSelectKey_SingleKey(t *testing.T) {
	shell := mocks.NewMockShell()
	shell.AddResponse("/usr/bin/gpg", []string{"--list-secret-keys", "--with-colons"},
		secLine+"\n"+uidLine+"\n", "", nil)
	ui := mocks.NewMockUI()

	c := newTestContext(t, shell, ui)

	if err := c.stepSelectKey().Execute(context.Background()); err != nil {
		t.Fatalf("select key step returned error: %v", err)
	}
	if c.Key.KeyID != "89AB45EA5F2D4E7B" {
		t.Errorf("selected KeyID = %q, want \"89AB45EA5F2D4E7B\"", c.Key.KeyID)
	}
}

func TestStepSelectKey_GenerationDeclined(t *testing.T) {
	shell := mocks.NewMockShell()
	shell.AddResponse("/usr/bin/gpg", []string{"--list-secret-keys", "--with-colons"}, "", "", nil)
	ui := mocks.NewMockUI()
	ui.ConfirmInputs = []bool{false}

	c := newTestContext(t, shell, ui)

	if err := c.stepSelectKey().Execute(context.Background()); err == nil {
		t.Error("declining key generation should be a fatal error")
	}
}

func TestStepSelectKey_GenerationSucceeds(t *testing.T) {
	shell := mocks.NewMockShell()
	shell.AddResponse("/usr/bin/gpg", []string{"--full-generate-key"}, "", "", nil)
	// generateAndSelect only lists after generation, so the populated
	// listing stands in for the freshly created key.
	shell.AddResponse("/usr/bin/gpg", []string{"--list-secret-keys", "--with-colons"},
		secLine+"\n"+uidLine+"\n", "", nil)
	ui := mocks.NewMockUI()
	ui.ConfirmInputs = []bool{true}

	c := newTestContext(t, shell, ui)

	key, err := c.generateAndSelect()
	if err != nil {
		t.Fatalf("generateAndSelect() returned error: %v", err)
	}
	if key.KeyID != "89AB45EA5F2D4E7B" {
		t.Errorf("generated KeyID = %q, want \"89AB45EA5F2D4E7B\"", key.KeyID)
	}
	if !shell.WasCalled("/usr/bin/gpg", "--full-generate-key") {
		t.Error("generateAndSelect() did not invoke key generation")
	}
}

func TestStepSelectKey_GenerationIncomplete(t *testing.T) {
	shell := mocks.NewMockShell()
	shell.AddResponse("/usr/bin/gpg", []string{"--full-generate-key"}, "", "", nil)
	shell.AddResponse("/usr/bin/gpg", []string{"--list-secret-keys", "--with-colons"}, "", "", nil)
	ui := mocks.NewMockUI()
	ui.ConfirmInputs = []bool{true}

	c := newTestContext(t, shell, ui)

	_, err := c.generateAndSelect()
	if !errors.Is(err, gpg.ErrKeyGenerationIncomplete) {
		t.Errorf("generateAndSelect() with still-empty keyring = %v, want ErrKeyGenerationIncomplete", err)
	}
}

func TestStepInitStore_AlreadyConfigured(t *testing.T) {
	shell := mocks.NewMockShell()
	ui := mocks.NewMockUI()

	c := newTestContext(t, shell, ui)
	c.Key = gpg.SecretKey{KeyID: "89AB45EA5F2D4E7B"}

	marker := filepath.Join(c.StoreDir, ".gpg-id")
	if err := os.WriteFile(marker, []byte("89AB45EA5F2D4E7B\n"), 0600); err != nil {
		t.Fatalf("failed to write marker: %v", err)
	}

	if err := c.stepInitStore().Execute(context.Background()); err != nil {
		t.Fatalf("init store step returned error: %v", err)
	}
	if shell.WasCalled("/usr/bin/pass", "init", "89AB45EA5F2D4E7B") {
		t.Error("store already configured for the key should not be re-initialized")
	}
	if !ui.HasOutput("already configured") {
		t.Error("skip path did not report the existing configuration")
	}
}

func TestStepInitStore_DifferentKeyWarns(t *testing.T) {
	shell := mocks.NewMockShell()
	shell.AddResponse("/usr/bin/pass", []string{"init", "89AB45EA5F2D4E7B"},
		"Password store initialized\n", "", nil)
	ui := mocks.NewMockUI()

	c := newTestContext(t, shell, ui)
	c.Key = gpg.SecretKey{KeyID: "89AB45EA5F2D4E7B"}

	marker := filepath.Join(c.StoreDir, ".gpg-id")
	if err := os.WriteFile(marker, []byte("0000000000000000\n"), 0600); err != nil {
		t.Fatalf("failed to write marker: %v", err)
	}

	if err := c.stepInitStore().Execute(context.Background()); err != nil {
		t.Fatalf("init store step returned error: %v", err)
	}
	if !shell.WasCalled("/usr/bin/pass", "init", "89AB45EA5F2D4E7B") {
		t.Error("store configured for another key was not re-initialized")
	}
	if !ui.HasOutput("verify them afterwards") {
		t.Error("re-initialization did not warn about verifying re-encryption")
	}
}

func TestStepInitStore_FreshStore(t *testing.T) {
	shell := mocks.NewMockShell()
	shell.AddResponse("/usr/bin/pass", []string{"init", "89AB45EA5F2D4E7B"},
		"Password store initialized\n", "", nil)
	ui := mocks.NewMockUI()

	c := newTestContext(t, shell, ui)
	c.Key = gpg.SecretKey{KeyID: "89AB45EA5F2D4E7B"}

	if err := c.stepInitStore().Execute(context.Background()); err != nil {
		t.Fatalf("init store step returned error: %v", err)
	}
	if !shell.WasCalled("/usr/bin/pass", "init", "89AB45EA5F2D4E7B") {
		t.Error("fresh store was not initialized")
	}
}

func TestStepSetupGit_Declined(t *testing.T) {
	shell := mocks.NewMockShell()
	ui := mocks.NewMockUI()
	ui.ConfirmInputs = []bool{false}

	c := newTestContext(t, shell, ui)
	c.GitAvailable = true
	c.Key = gpg.SecretKey{KeyID: "89AB45EA5F2D4E7B"}

	if err := c.stepSetupGit().Execute(context.Background()); err != nil {
		t.Fatalf("setup git step returned error: %v", err)
	}
	if shell.WasCalled("/usr/bin/pass", "git", "init") {
		t.Error("declined git setup should not run pass git init")
	}
}

func TestStepSetupGit_GitUnavailable(t *testing.T) {
	shell := mocks.NewMockShell()
	ui := mocks.NewMockUI()

	c := newTestContext(t, shell, ui)
	c.GitAvailable = false

	if err := c.stepSetupGit().Execute(context.Background()); err != nil {
		t.Fatalf("setup git step without git returned error: %v", err)
	}
}
