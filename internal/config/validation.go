package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/seurahaku/harava/internal/siteurl"
)

func validate(c *Config) error {
	if _, _, err := ParseWindowSize(c.Browser.WindowSize); err != nil {
		return fmt.Errorf("browser.window_size: %w", err)
	}
	if c.Browser.NavTimeout <= 0 {
		return fmt.Errorf("navigation timeout must be > 0")
	}
	if c.Delays.PageLoad < 0 {
		return fmt.Errorf("delays.page_load must be >= 0")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
	if err := siteurl.ValidateURL(c.Site.CategoriesURL); err != nil {
		return fmt.Errorf("site.categories_url: %w", err)
	}
	if c.Output.LeaguesFile == "" || c.Output.TeamsFile == "" || c.Output.ContactsFile == "" {
		return fmt.Errorf("output file paths must not be empty")
	}
	return nil
}

// ParseWindowSize parses a window size given as "WxH" or "W,H" into its
// width and height in pixels.
func ParseWindowSize(s string) (int, int, error) {
	sep := "x"
	if strings.Contains(s, ",") {
		sep = ","
	}
	parts := strings.SplitN(s, sep, 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("must be WxH, got %q", s)
	}
	w, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("bad width in %q", s)
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("bad height in %q", s)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("window size must be positive, got %q", s)
	}
	return w, h, nil
}
