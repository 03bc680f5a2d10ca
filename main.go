// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/orosu/orosu-launcher/cmd/orosu-launcher"

func main() {
	cmd.Execute()
}
