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

	"github.com/dibend/passtools/internal/workflow"
	"github.com/dibend/passtools/pkg/cout"
	"github.com/dibend/passtools/pkg/shell"
)

// NewWorkflow builds the setup wizard: tool checks, key discovery, store
// initialization, git integration, usage guide.
func NewWorkflow(storeDir string, sh shell.Executor, ui cout.IO) *workflow.Workflow {
	c := &Context{
		Shell:    sh,
		UI:       ui,
		StoreDir: storeDir,
	}

	w := workflow.New(StateStart)

	w.Configure(StateStart).
		Permit(TriggerCheckTools, StateToolsChecked)

	w.Configure(StateToolsChecked).
		OnEntryFrom(TriggerCheckTools, entryWithRetry(c.stepCheckTools())).
		Permit(TriggerSelectKey, StateKeySelected)

	w.Configure(StateKeySelected).
		OnEntryFrom(TriggerSelectKey, entryWithRetry(c.stepSelectKey())).
		Permit(TriggerInitStore, StateStoreInitialized)

	w.Configure(StateStoreInitialized).
		OnEntryFrom(TriggerInitStore, entryWithRetry(c.stepInitStore())).
		Permit(TriggerSetupGit, StateGitConfigured)

	w.Configure(StateGitConfigured).
		OnEntryFrom(TriggerSetupGit, entryWithRetry(c.stepSetupGit())).
		Permit(TriggerPrintGuide, StateComplete)

	w.Configure(StateComplete).
		OnEntryFrom(TriggerPrintGuide, entryWithRetry(c.stepPrintGuide()))

	w.AddTrigger(TriggerCheckTools)
	w.AddTrigger(TriggerSelectKey)
	w.AddTrigger(TriggerInitStore)
	w.AddTrigger(TriggerSetupGit)
	w.AddTrigger(TriggerPrintGuide)

	return w
}

func entryWithRetry(cfg workflow.StepConfig) func(ctx context.Context, args ...any) error {
	return func(ctx context.Context, args ...any) error {
		return workflow.ExecuteWithRetry(ctx, cfg)
	}
}
