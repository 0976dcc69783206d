// internal/cli/doctor.go
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/seurahaku/harava/internal/browser"
	"github.com/seurahaku/harava/internal/config"
	"github.com/seurahaku/harava/internal/ui"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that Chrome, the config and the output paths are usable",
	RunE:  doctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func doctor(cmd *cobra.Command, args []string) error {
	cfg := GetApp().Config
	failed := 0

	// Chrome
	if path := browser.Locate(cfg.Browser.ChromePath); path != "" {
		report(true, fmt.Sprintf("Chrome: %s (%s)", path, browser.Version(path)))
	} else {
		report(false, "Chrome: not found (set browser.chrome_path or CHROME_PATH)")
		failed++
	}

	// Config file round trip through the same loader a run uses
	if _, err := config.Load(rootCmd); err != nil {
		report(false, fmt.Sprintf("Config: %v", err))
		failed++
	} else {
		report(true, "Config: valid")
	}

	// Output locations
	for _, dir := range outputDirs(cfg) {
		if err := checkWritable(dir); err != nil {
			report(false, fmt.Sprintf("Writable %s: %v", dir, err))
			failed++
		} else {
			report(true, "Writable "+dir)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d check(s) failed", failed)
	}
	fmt.Printf("\n%s\n", ui.Success("All checks passed"))
	return nil
}

func report(ok bool, msg string) {
	if ok {
		fmt.Printf("%s %s\n", ui.Success("✓"), msg)
	} else {
		fmt.Printf("%s %s\n", ui.Error("✗"), msg)
	}
}

// outputDirs lists the unique directories a full run writes into
func outputDirs(cfg *config.Config) []string {
	seen := map[string]bool{}
	var dirs []string
	for _, path := range []string{
		filepath.Dir(cfg.Output.LeaguesFile),
		filepath.Dir(cfg.Output.TeamsFile),
		filepath.Dir(cfg.Output.ContactsFile),
		cfg.Output.DebugDir,
		cfg.Output.LogsDir,
	} {
		if path != "." && !seen[path] {
			seen[path] = true
			dirs = append(dirs, path)
		}
	}
	return dirs
}

// checkWritable creates dir if needed and proves a file can land in it
func checkWritable(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	probe, err := os.CreateTemp(dir, ".doctor-*")
	if err != nil {
		return err
	}
	probe.Close()
	return os.Remove(probe.Name())
}
