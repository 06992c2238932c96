package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"graft/internal/diffview"
	"graft/internal/pipeline"
	"graft/internal/plan"
	"graft/internal/scan"
	"graft/internal/tui"
	"graft/pkg/document"
)

var (
	dryRun bool
	debug  bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "graft [plan.yaml]",
	Short: "Transplant brace-delimited blocks between source documents",
	Long: `graft reads a transplant plan, locates the named blocks in the origin
document by brace-balance scanning, moves them into a freshly assembled
destination document with their qualifiers adapted, and requalifies the
references the move left dangling in the origin.

The whole run is computed in memory; both documents are written exactly once,
at the end, and any failure aborts before anything is written.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runTransplant(args[0]); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
	},
}

// previewCmd lists the resolved blocks without editing anything.
var previewCmd = &cobra.Command{
	Use:   "preview [plan.yaml]",
	Short: "Show which blocks the plan resolves to, without writing anything",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runPreview(args[0]); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
	},
}

func runTransplant(planPath string) error {
	logger, err := buildLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	p, err := plan.Load(planPath)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(p.Origin)
	if err != nil {
		return fmt.Errorf("failed to read origin %s: %w", p.Origin, err)
	}

	result, err := pipeline.Run(document.FromText(string(raw)), p, logger)
	if err != nil {
		return err
	}

	if dryRun {
		fmt.Print(diffview.Unified(string(raw), result.Origin.Text()))
		fmt.Printf("\ndry run: %d block(s), %d lines would move to %s\n",
			len(result.Blocks), result.OriginalLen-result.Origin.Len(), p.Destination)
		return nil
	}

	if err := os.WriteFile(p.Destination, []byte(result.Destination.Text()), 0644); err != nil {
		return fmt.Errorf("failed to write destination %s: %w", p.Destination, err)
	}
	if err := os.WriteFile(p.OutputPath(), []byte(result.Origin.Text()), 0644); err != nil {
		return fmt.Errorf("failed to write origin %s: %w", p.OutputPath(), err)
	}

	fmt.Printf("moved %d block(s) (%d lines) to %s; origin now %d lines (was %d)\n",
		len(result.Blocks), result.OriginalLen-result.Origin.Len(), p.Destination,
		result.Origin.Len(), result.OriginalLen)
	return nil
}

func runPreview(planPath string) error {
	p, err := plan.Load(planPath)
	if err != nil {
		return err
	}
	raw, err := os.ReadFile(p.Origin)
	if err != nil {
		return fmt.Errorf("failed to read origin %s: %w", p.Origin, err)
	}
	spans, _, err := pipeline.Resolve(document.FromText(string(raw)), p, scan.BraceScanner{})
	if err != nil {
		return err
	}
	return tui.Run(p.Origin, spans)
}

func buildLogger() (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the origin diff instead of writing any file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.AddCommand(previewCmd)
}
