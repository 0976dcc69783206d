package config

import "time"

// Default constants for application configuration
const (
	DefaultLogLevel      = "info"
	DefaultJSONLog       = false
	DefaultCategoriesURL = "https://tulospalvelu.palloliitto.fi/categories"
	DefaultHeadless      = true
	DefaultWindowSize    = "1920x1080"
	DefaultNavTimeout    = 20 * time.Second
	DefaultPageLoadDelay = 3.0
	DefaultRequestDelay  = 2.0
	DefaultLeaguesFile   = "data/intermediate/leagues.json"
	DefaultTeamsFile     = "data/intermediate/teams.json"
	DefaultContactsFile  = "data/contacts.csv"
	DefaultDebugDir      = "data/debug"
	DefaultLogsDir       = "logs"
	DefaultConfigPath    = "config/harava.json"

	// Filter button values on the categories page. Football, southern
	// district, leagues and cups, boys.
	DefaultFilterSport  = "football"
	DefaultFilterArea   = "spletela"
	DefaultFilterType   = "league"
	DefaultFilterGender = "B"
)

// Defaults returns a fully populated Config with documented defaults.
func Defaults() *Config {
	return &Config{
		Browser: BrowserConfig{
			Headless:   DefaultHeadless,
			WindowSize: DefaultWindowSize,
			NavTimeout: DefaultNavTimeout,
		},
		Delays: DelayConfig{
			PageLoad: DefaultPageLoadDelay,
		},
		Output: OutputConfig{
			LeaguesFile:  DefaultLeaguesFile,
			TeamsFile:    DefaultTeamsFile,
			ContactsFile: DefaultContactsFile,
			DebugDir:     DefaultDebugDir,
			LogsDir:      DefaultLogsDir,
		},
		Site: SiteConfig{
			CategoriesURL: DefaultCategoriesURL,
			Filters: FilterValues{
				Sport:  DefaultFilterSport,
				Area:   DefaultFilterArea,
				Type:   DefaultFilterType,
				Gender: DefaultFilterGender,
			},
		},
		Logging: LoggingConfig{
			Level: DefaultLogLevel,
			JSON:  DefaultJSONLog,
		},
	}
}
