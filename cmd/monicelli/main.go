// SPDX-License-Identifier: Apache-2.0
package main

import (
	"os"

	_ "github.com/tliron/commonlog/simple"

	"monicelli/internal/driver"
)

func main() {
	os.Exit(driver.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
