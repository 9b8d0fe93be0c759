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
	"github.com/dibend/passtools/pkg/cout"
)

func printGuide(ui cout.IO, hasClipboard, hasGit bool) {
	ui.Infoln("")
	ui.Successln("Setup complete. Quick reference:")
	ui.Infoln("")
	ui.Infoln("  pass insert web/example.com     store a password")
	ui.Infoln("  pass generate web/example.com   generate and store a password")
	ui.Infoln("  pass web/example.com            show a password")
	ui.Infoln("  pass ls                         list all entries")
	ui.Infoln("  pass rm web/example.com         remove an entry")

	if hasClipboard {
		ui.Infoln("  pass -c web/example.com         copy a password to the clipboard")
	}

	if hasGit {
		ui.Infoln("")
		ui.Infoln("Every change is committed to the store's git repository.")
		ui.Infoln("Add a remote and `pass git push` to back it up.")
	}

	ui.Infoln("")
	ui.Infoln("Generate a standalone password anytime with `passtools genpass`.")
}
