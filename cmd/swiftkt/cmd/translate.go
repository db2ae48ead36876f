package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/swiftkt/swiftkt/ast"
	"github.com/swiftkt/swiftkt/diag"
	"github.com/swiftkt/swiftkt/driver"
	"github.com/swiftkt/swiftkt/pass"
	"github.com/swiftkt/swiftkt/render"
	"github.com/swiftkt/swiftkt/sharedctx"
)

var (
	translateOutDir     string
	translateIndent     string
	translateConfigPath string
	translateManifest   string
	translateDisable    *[]string
)

var translateCmd = &cobra.Command{
	Use:   "translate [file.json ...]",
	Short: "Translate Swift-family AST JSON files into Kotlin-family source",
	Long: `translate runs the full pipeline — first round, second round,
render — over one or more raw-AST JSON files (see "swiftkt dump-ast" for
the on-disk node shape) and writes each result as Kotlin-family source.

Every file named on the command line shares one pipeline run: the shared
context populated by one file's first round is visible, read-only, to
every file's second round (spec §3.3/§5). A structural error anywhere in
the first round stops the whole run before any second-round pass runs.

Examples:
  # Translate to stdout
  swiftkt translate Shapes.json

  # Translate a whole directory's worth of files into out/
  swiftkt translate -o out/ src/*.json

  # Skip a pass for this run only
  swiftkt translate --disable-pass capitalize-enums Shapes.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTranslate,
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVarP(&translateOutDir, "output", "o", "", "output directory (default: print to stdout)")
	translateCmd.Flags().StringVar(&translateIndent, "indent", "", "override the renderer's indent string (default: a tab, or the config file's indent)")
	translateCmd.Flags().StringVar(&translateConfigPath, "config", ".swiftkt.yaml", "path to the pass-toggle config file")
	translateCmd.Flags().StringVar(&translateManifest, "templates", "", "path to a cross-file template manifest JSON file")
	translateDisable = registerDisablePassFlag(translateCmd.Flags())
}

func runTranslate(_ *cobra.Command, args []string) error {
	logger := newLogger()

	cfg, err := loadConfig(translateConfigPath)
	if err != nil {
		return err
	}

	files := make([]*ast.File, 0, len(args))
	for _, arg := range args {
		data, err := os.ReadFile(arg)
		if err != nil {
			return fmt.Errorf("read %s: %w", arg, err)
		}
		f, err := ast.DecodeFile(data)
		if err != nil {
			return fmt.Errorf("decode %s: %w", arg, err)
		}
		files = append(files, f)
		logger.Debug("loaded file", "path", arg, "declarations", len(f.Declarations), "topLevel", len(f.TopLevel))
	}

	ctx := sharedctx.New()
	sink := diag.NewSink()

	if translateManifest != "" {
		if err := driver.LoadTemplateManifest(ctx, translateManifest); err != nil {
			return err
		}
	}

	scheduler := buildScheduler(ctx, sink, disabledSet(cfg, *translateDisable))

	renderOpts := render.Options{}
	if translateIndent != "" {
		renderOpts.IndentWith = translateIndent
	} else if cfg.IndentWith != "" {
		renderOpts.IndentWith = cfg.IndentWith
	}

	results := driver.Run(files, scheduler, ctx, sink, driver.Options{Render: renderOpts})

	reportDiagnostics(logger, sink)

	if translateOutDir != "" {
		if err := os.MkdirAll(translateOutDir, 0755); err != nil {
			return fmt.Errorf("create output directory %s: %w", translateOutDir, err)
		}
	}
	for _, r := range results {
		if translateOutDir == "" {
			fmt.Printf("// ===== %s =====\n%s\n", r.Name, r.Source)
			continue
		}
		outPath := filepath.Join(translateOutDir, kotlinFileName(r.Name))
		if err := os.WriteFile(outPath, []byte(r.Source), 0644); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
		logger.Info("wrote file", "path", outPath)
	}

	if sink.HasFatal() {
		return fmt.Errorf("translation failed with %d fatal diagnostic(s)", fatalCount(sink))
	}
	return nil
}

// kotlinFileName replaces an input file's extension (typically ".json" or
// ".swift") with ".kt", defaulting to appending it when there's none.
func kotlinFileName(name string) string {
	base := filepath.Base(name)
	ext := filepath.Ext(base)
	if ext == "" {
		return base + ".kt"
	}
	return strings.TrimSuffix(base, ext) + ".kt"
}

func fatalCount(sink *diag.Sink) int {
	n := 0
	for _, d := range sink.All() {
		if d.Severity == diag.StructuralError {
			n++
		}
	}
	return n
}

func reportDiagnostics(logger *slog.Logger, sink *diag.Sink) {
	for _, d := range sink.All() {
		msg := d.Format("")
		switch d.Severity {
		case diag.StructuralError:
			fmt.Fprintln(os.Stderr, msg)
		default:
			logger.Warn(msg, "pass", d.Pass)
		}
	}
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func buildScheduler(ctx *sharedctx.Context, sink *diag.Sink, disabled map[string]bool) *pass.Scheduler {
	base := pass.DefaultScheduler(ctx, sink)
	return &pass.Scheduler{
		FirstRound: filterSchedule(base.FirstRound, disabled),
		SecondRound: func(ro *sharedctx.ReadOnly) pass.Schedule {
			return filterSchedule(base.SecondRound(ro), disabled)
		},
	}
}
