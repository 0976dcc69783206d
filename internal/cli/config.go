// internal/cli/config.go
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/seurahaku/harava/internal/config"
	"github.com/seurahaku/harava/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Prints the configuration the next run would use, after defaults, the
config file, environment variables and flags have been combined.`,
	RunE: showConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented default config file",
	Long: `Writes the default configuration, with comments, to the config path
(--config or ` + config.DefaultConfigPath + `). Refuses to overwrite an
existing file.`,
	RunE: initConfigFile,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func showConfig(cmd *cobra.Command, args []string) error {
	cfg := GetApp().Config

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Section", "Key", "Value"})

	rows := []struct {
		section, key string
		value        interface{}
	}{
		{"browser", "headless", cfg.Browser.Headless},
		{"browser", "window_size", cfg.Browser.WindowSize},
		{"browser", "chrome_path", orAuto(cfg.Browser.ChromePath)},
		{"browser", "user_agent", orAuto(cfg.Browser.UserAgent)},
		{"browser", "proxy", orNone(cfg.Browser.Proxy)},
		{"delays", "page_load", cfg.Delays.PageLoad},
		{"output", "leagues_file", cfg.Output.LeaguesFile},
		{"output", "teams_file", cfg.Output.TeamsFile},
		{"output", "contacts_file", cfg.Output.ContactsFile},
		{"output", "debug_dir", cfg.Output.DebugDir},
		{"output", "logs_dir", cfg.Output.LogsDir},
		{"site", "categories_url", cfg.Site.CategoriesURL},
		{"site", "filters.sport", cfg.Site.Filters.Sport},
		{"site", "filters.area", cfg.Site.Filters.Area},
		{"site", "filters.type", cfg.Site.Filters.Type},
		{"site", "filters.gender", cfg.Site.Filters.Gender},
		{"logging", "level", cfg.Logging.Level},
		{"logging", "json", cfg.Logging.JSON},
	}
	for _, row := range rows {
		t.AppendRow(table.Row{row.section, row.key, row.value})
	}
	t.Render()
	return nil
}

func initConfigFile(cmd *cobra.Command, args []string) error {
	path := config.DefaultConfigPath
	if f := cmd.Flags().Lookup("config"); f != nil && f.Value.String() != "" {
		path = f.Value.String()
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists, remove it first", path)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(path, []byte(config.DefaultFileTemplate), 0644); err != nil {
		return err
	}

	fmt.Printf("%s wrote %s\n", ui.Success("✓"), path)
	return nil
}

func orAuto(s string) string {
	if s == "" {
		return "(auto)"
	}
	return s
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
