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
	"github.com/dibend/passtools/internal/workflow"
)

const (
	StateStart            workflow.State = "start"
	StateToolsChecked     workflow.State = "tools_checked"
	StateKeySelected      workflow.State = "key_selected"
	StateStoreInitialized workflow.State = "store_initialized"
	StateGitConfigured    workflow.State = "git_configured"
	StateComplete         workflow.State = "complete"
)

const (
	TriggerCheckTools workflow.Trigger = "check_tools"
	TriggerSelectKey  workflow.Trigger = "select_key"
	TriggerInitStore  workflow.Trigger = "init_store"
	TriggerSetupGit   workflow.Trigger = "setup_git"
	TriggerPrintGuide workflow.Trigger = "print_guide"
)
