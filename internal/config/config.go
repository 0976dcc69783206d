package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// Config holds application configuration values
type Config struct {
	Browser BrowserConfig `json:"browser"`
	Delays  DelayConfig   `json:"delays"`
	Output  OutputConfig  `json:"output"`
	Site    SiteConfig    `json:"site"`
	Logging LoggingConfig `json:"logging"`
}

// BrowserConfig controls how the Chrome session is launched
type BrowserConfig struct {
	Headless   bool   `json:"headless"`
	WindowSize string `json:"window_size"`
	ChromePath string `json:"chrome_path"`
	UserAgent  string `json:"user_agent"`
	Proxy      string `json:"proxy"`

	// NavTimeout bounds waits for page elements. Not a file key; set from
	// the default or the --timeout flag.
	NavTimeout time.Duration `json:"-"`
}

// DelayConfig holds per-page delay settings in seconds
type DelayConfig struct {
	PageLoad float64 `json:"page_load"`
}

// PageLoadDuration returns the page load delay as a time.Duration
func (d DelayConfig) PageLoadDuration() time.Duration {
	return time.Duration(d.PageLoad * float64(time.Second))
}

// OutputConfig names the artifact and diagnostic locations
type OutputConfig struct {
	LeaguesFile  string `json:"leagues_file"`
	TeamsFile    string `json:"teams_file"`
	ContactsFile string `json:"contacts_file"`
	DebugDir     string `json:"debug_dir"`
	LogsDir      string `json:"logs_dir"`
}

// SiteConfig points at the results service and the filter set to apply
type SiteConfig struct {
	CategoriesURL string       `json:"categories_url"`
	Filters       FilterValues `json:"filters"`
}

// FilterValues are the button values clicked on the categories page.
// An empty value skips that filter.
type FilterValues struct {
	Sport  string `json:"sport"`
	Area   string `json:"area"`
	Type   string `json:"type"`
	Gender string `json:"gender"`
}

// LoggingConfig controls log verbosity and format
type LoggingConfig struct {
	Level string `json:"level"`
	JSON  bool   `json:"json"`
}

// Load builds a Config by combining defaults, an optional config file,
// environment variables, and CLI flags, in that order of precedence.
// Caller should pass the root *cobra.Command so flags can be read.
func Load(cmd *cobra.Command) (*Config, error) {
	cfg := Defaults()

	// Resolve the config file path: an explicit --config must exist,
	// the default path is loaded only when present.
	path := ""
	explicit := false
	if cmd != nil {
		if f := cmd.Flags().Lookup("config"); f != nil && f.Value.String() != "" {
			path = f.Value.String()
			explicit = true
		}
	}
	if path == "" {
		if v := os.Getenv("HARAVA_CONFIG"); v != "" {
			path = v
			explicit = true
		}
	}
	if path == "" {
		if _, err := os.Stat(DefaultConfigPath); err == nil {
			path = DefaultConfigPath
		}
	}
	if path != "" {
		if err := loadFile(cfg, path); err != nil {
			if explicit || !os.IsNotExist(err) {
				return nil, fmt.Errorf("invalid config: %w", err)
			}
		}
	}

	// Override from environment variables (simple helpers)
	if v := os.Getenv("HARAVA_CHROME_PATH"); v != "" {
		cfg.Browser.ChromePath = v
	}
	if v := os.Getenv("HARAVA_PROXY"); v != "" {
		cfg.Browser.Proxy = v
	}
	if v := os.Getenv("HARAVA_USER_AGENT"); v != "" {
		cfg.Browser.UserAgent = v
	}

	// Read CLI flags if provided
	if cmd != nil {
		if f := cmd.Flags().Lookup("user-agent"); f != nil {
			if s := f.Value.String(); s != "" {
				cfg.Browser.UserAgent = s
			}
		}
		if f := cmd.Flags().Lookup("proxy"); f != nil {
			if s := f.Value.String(); s != "" {
				cfg.Browser.Proxy = s
			}
		}
		if f := cmd.Flags().Lookup("timeout"); f != nil {
			if s := f.Value.String(); s != "" {
				if d, err := time.ParseDuration(s); err == nil {
					cfg.Browser.NavTimeout = d
				}
			}
		}
		if f := cmd.Flags().Lookup("json"); f != nil {
			if f.Value.String() == "true" {
				cfg.Logging.JSON = true
			}
		}
		if f := cmd.Flags().Lookup("verbose"); f != nil {
			if f.Value.String() == "true" {
				cfg.Logging.Level = "debug"
			}
		}
		if f := cmd.Flags().Lookup("quiet"); f != nil {
			if f.Value.String() == "true" {
				cfg.Logging.Level = "error"
			}
		}
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
