// internal/cli/explore.go
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seurahaku/harava/internal/browser"
	"github.com/seurahaku/harava/internal/pages"
	"github.com/seurahaku/harava/internal/ui"
)

var exploreCmd = &cobra.Command{
	Use:   "explore [url]",
	Short: "Open a visible browser on the site for manual inspection",
	Long: `Opens a non-headless browser session on the categories page, or on the
given URL, dismisses the cookie consent dialog and leaves the window
open. Useful for checking what the site currently renders before
blaming the extractors. Press Enter to close the session.`,
	Args: cobra.MaximumNArgs(1),
	RunE: explore,
}

func init() {
	rootCmd.AddCommand(exploreCmd)
}

func explore(cmd *cobra.Command, args []string) error {
	cfg := GetApp().Config

	url := cfg.Site.CategoriesURL
	if len(args) > 0 {
		url = args[0]
	}

	opts := browser.Options{
		Headless:   false,
		WindowSize: cfg.Browser.WindowSize,
		ChromePath: cfg.Browser.ChromePath,
		UserAgent:  cfg.Browser.UserAgent,
		Proxy:      cfg.Browser.Proxy,
	}

	return browser.WithSession(cmd.Context(), opts, func(bctx context.Context) error {
		if err := pages.Visit(bctx, url, cfg.Delays.PageLoadDuration()); err != nil {
			return err
		}

		fmt.Printf("%s %s\n", ui.Success("✓"), "Browser open on "+url)
		fmt.Printf("%s", ui.Info("Press Enter to close... "))

		done := make(chan struct{})
		go func() {
			bufio.NewReader(os.Stdin).ReadString('\n')
			close(done)
		}()

		select {
		case <-done:
		case <-bctx.Done():
		}
		fmt.Println()
		return nil
	})
}
