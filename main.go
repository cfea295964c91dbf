// SPDX-License-Identifier: MPL-2.0

package main

import cmd "surfconf/cmd/surfconf"

func main() {
	cmd.Execute()
}
