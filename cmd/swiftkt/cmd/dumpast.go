package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/swiftkt/swiftkt/ast"
	"github.com/swiftkt/swiftkt/diag"
	"github.com/swiftkt/swiftkt/driver"
	"github.com/swiftkt/swiftkt/sharedctx"
)

var (
	dumpRewritten     bool
	dumpJSON          bool
	dumpDisable       *[]string
	updateTemplatesAt string
	updateTemplatePat string
	updateTemplateTgt string
)

var dumpAstCmd = &cobra.Command{
	Use:   "dump-ast [file.json]",
	Short: "Print a file's tree for debugging",
	Long: `dump-ast prints the raw AST loaded from a file.json, or (with
--rewritten) the tree after both pipeline rounds have run but before
rendering — useful for seeing what a pass changed without committing to
the renderer's Kotlin-family syntax.

--update-templates appends one (pattern, target) entry to a template
manifest (see "swiftkt translate --templates") instead of printing
anything. --pattern is itself a small AST JSON fragment (an Expression,
same node shape as the rest of the file), --target the substitution
string.

Examples:
  swiftkt dump-ast Shapes.json
  swiftkt dump-ast --rewritten Shapes.json
  swiftkt dump-ast --json Shapes.json
  swiftkt dump-ast --update-templates templates.json \
      --pattern pattern.json --target '$x.isEmpty'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDumpAst,
}

func init() {
	rootCmd.AddCommand(dumpAstCmd)

	dumpAstCmd.Flags().BoolVar(&dumpRewritten, "rewritten", false, "run both pipeline rounds before printing")
	dumpAstCmd.Flags().BoolVar(&dumpJSON, "json", false, "print the node-shape JSON instead of the label tree")
	dumpAstCmd.Flags().StringVar(&updateTemplatesAt, "update-templates", "", "append an entry to this template manifest instead of dumping a file")
	dumpAstCmd.Flags().StringVar(&updateTemplatePat, "pattern", "", "path to an Expression JSON fragment, used with --update-templates")
	dumpAstCmd.Flags().StringVar(&updateTemplateTgt, "target", "", "substitution target string, used with --update-templates")
	dumpDisable = registerDisablePassFlag(dumpAstCmd.Flags())
}

func runDumpAst(_ *cobra.Command, args []string) error {
	if updateTemplatesAt != "" {
		return runUpdateTemplates()
	}
	if len(args) != 1 {
		return fmt.Errorf("dump-ast requires exactly one file argument unless --update-templates is set")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}
	f, err := ast.DecodeFile(data)
	if err != nil {
		return fmt.Errorf("decode %s: %w", args[0], err)
	}

	if dumpRewritten {
		ctx := sharedctx.New()
		sink := diag.NewSink()
		scheduler := buildScheduler(ctx, sink, disabledSet(Config{}, *dumpDisable))
		f = scheduler.Run(f, ctx, sink)
		reportDiagnostics(newLogger(), sink)
	}

	if dumpJSON {
		out, err := ast.EncodeFile(f)
		if err != nil {
			return fmt.Errorf("encode %s: %w", args[0], err)
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Println(f.Name)
	for _, d := range f.Declarations {
		printTree(d.Tree(), 0)
	}
	for _, s := range f.TopLevel {
		printTree(s.Tree(), 0)
	}
	return nil
}

func printTree(t ast.PrintableTree, depth int) {
	fmt.Printf("%s%s\n", strings.Repeat("  ", depth), t.Label)
	for _, c := range t.Children {
		printTree(c, depth+1)
	}
}

func runUpdateTemplates() error {
	if updateTemplatePat == "" || updateTemplateTgt == "" {
		return fmt.Errorf("--update-templates requires both --pattern and --target")
	}
	patternData, err := os.ReadFile(updateTemplatePat)
	if err != nil {
		return fmt.Errorf("read %s: %w", updateTemplatePat, err)
	}
	pattern, err := ast.DecodeExpression(patternData)
	if err != nil {
		return fmt.Errorf("decode %s: %w", updateTemplatePat, err)
	}
	if err := driver.AppendTemplateManifestEntry(updateTemplatesAt, pattern, updateTemplateTgt); err != nil {
		return err
	}
	fmt.Printf("Added template %q -> %q to %s\n", pattern.String(), updateTemplateTgt, updateTemplatesAt)
	return nil
}
