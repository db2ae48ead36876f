// Package cmd wires the swiftkt command tree: translate a directory of
// Swift-family raw-AST JSON files into Kotlin-family source, or dump a
// tree (raw or pass-rewritten) for debugging. Grounded on the teacher's
// cmd/dwscript/cmd package shape: a package-level root cobra.Command, a
// small Execute() wrapper, persistent flags registered in init(), and a
// exitWithError helper for fatal CLI errors.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "swiftkt",
	Short: "Translate Swift-family ASTs into Kotlin-family source",
	Long: `swiftkt rewrites a typed Swift-family AST into an equivalent
Kotlin-family AST and renders it as source text.

Parsing source text is out of scope: swiftkt's input is the raw AST a
frontend already produced, serialized as JSON (see "swiftkt dump-ast"
for the on-disk node shape). The pipeline runs two rounds of passes
around the shared context (spec's first/second round) before rendering.`,
	Version: Version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
