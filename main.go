// SPDX-License-Identifier: MPL-2.0

package main

import cmd "winpack-cli/cmd/winpack"

func main() {
	cmd.Execute()
}
