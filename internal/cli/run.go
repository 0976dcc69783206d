// internal/cli/run.go
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/seurahaku/harava/internal/app"
	"github.com/seurahaku/harava/internal/browser"
	"github.com/seurahaku/harava/internal/config"
	"github.com/seurahaku/harava/internal/pages"
	"github.com/seurahaku/harava/internal/pipeline"
	"github.com/seurahaku/harava/internal/runctx"
	"github.com/seurahaku/harava/internal/ui"
)

var (
	runDelay    float64
	runResume   bool
	runDryRun   bool
	runHeadless bool
)

var runCmd = &cobra.Command{
	Use:   "run <categories|teams|contact|all>",
	Short: "Run one pipeline stage, or all three in order",
	Long: `Runs the selected stage under the shared contract: the stage fails
before any page visit when its input artifact is missing, --resume
turns it into a no-op when its output already exists, and --dry-run
stops after validation. A stage failure in "all" mode stops the chain.`,
	Example: `# Collect the league listing
harava run categories

# Continue an interrupted full run, keeping finished artifacts
harava run all --resume

# Slower pacing against the live site
harava run teams --delay 5`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"categories", "teams", "contact", "all"},
	RunE:      runStages,
}

func init() {
	runCmd.Flags().Float64Var(&runDelay, "delay", config.DefaultRequestDelay, "Pause between page visits in seconds")
	runCmd.Flags().BoolVar(&runResume, "resume", false, "Skip stages whose output artifact already exists")
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "Validate preconditions without visiting any page")
	runCmd.Flags().BoolVar(&runHeadless, "headless", true, "Run the browser headless (override the config)")
	rootCmd.AddCommand(runCmd)
}

func runStages(cmd *cobra.Command, args []string) error {
	a := GetApp()
	cfg := a.Config

	if cmd.Flags().Changed("headless") {
		cfg.Browser.Headless = runHeadless
	}

	ctx := runctx.WithContext(cmd.Context(), a.Run)

	stages, err := selectStages(args[0], a)
	if err != nil {
		return err
	}

	opts := pipeline.Options{
		Delay:  time.Duration(runDelay * float64(time.Second)),
		Resume: runResume,
		DryRun: runDryRun,
	}

	results, err := pipeline.RunAll(ctx, stages, opts)
	for _, result := range results {
		printStageResult(result)
	}
	return err
}

// selectStages maps the stage argument to the stages to run, wired to
// the live site collector and a scoped browser session.
func selectStages(name string, a *app.Application) ([]pipeline.Stage, error) {
	cfg := a.Config
	collector := pages.NewCollector(cfg)
	session := sessionFunc(cfg)

	// The progress bar competes with console log lines, so it only
	// appears when info logging is off the console.
	var progress io.Writer
	if !cfg.Logging.JSON && cfg.Logging.Level == "error" {
		progress = os.Stderr
	}

	categories := pipeline.NewCategoriesStage(cfg, collector, session, a.Recorder)
	teams := pipeline.NewTeamsStage(cfg, collector, session, a.Recorder)
	teams.Progress = progress
	contacts := pipeline.NewContactsStage(cfg, collector, session, a.Recorder)
	contacts.Progress = progress

	switch name {
	case "categories":
		return []pipeline.Stage{categories}, nil
	case "teams":
		return []pipeline.Stage{teams}, nil
	case "contact":
		return []pipeline.Stage{contacts}, nil
	case "all":
		return []pipeline.Stage{categories, teams, contacts}, nil
	default:
		return nil, fmt.Errorf("unknown stage %q, expected categories, teams, contact or all", name)
	}
}

// sessionFunc adapts the configured browser options to the pipeline's
// session contract.
func sessionFunc(cfg *config.Config) pipeline.SessionFunc {
	opts := browser.Options{
		Headless:   cfg.Browser.Headless,
		WindowSize: cfg.Browser.WindowSize,
		ChromePath: cfg.Browser.ChromePath,
		UserAgent:  cfg.Browser.UserAgent,
		Proxy:      cfg.Browser.Proxy,
	}
	return func(ctx context.Context, fn func(ctx context.Context) error) error {
		return browser.WithSession(ctx, opts, fn)
	}
}

// printStageResult writes the per-stage summary line
func printStageResult(result *pipeline.StageResult) {
	switch {
	case result.ResumeSkip:
		fmt.Printf("%s %s: output exists, skipped (%s)\n",
			ui.Info("↷"), ui.Bold(result.Stage), result.OutputPath)
	case result.DryRun:
		fmt.Printf("%s %s: dry run, would write %s\n",
			ui.Info("•"), ui.Bold(result.Stage), result.OutputPath)
	default:
		fmt.Printf("%s %s: %d records from %d items (%d skipped) -> %s in %s\n",
			ui.Success("✓"), ui.Bold(result.Stage),
			result.Records, result.Processed(), len(result.Skipped()),
			result.OutputPath, result.Duration.Round(100*time.Millisecond))
		for _, item := range result.Skipped() {
			fmt.Printf("    %s %s (%s)\n", ui.Info("skipped"), item.Name, item.Reason)
		}
	}
}
