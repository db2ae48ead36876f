// Command swiftkt translates Swift-family raw-AST JSON into Kotlin-family
// source. See cmd/swiftkt/cmd for the command tree.
package main

import (
	"fmt"
	"os"

	"github.com/swiftkt/swiftkt/cmd/swiftkt/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
