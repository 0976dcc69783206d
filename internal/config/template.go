package config

// DefaultFileTemplate is the commented config file "harava config init"
// writes. The parser tolerates the comments; every key is optional and
// defaults to the value shown.
const DefaultFileTemplate = `{
  browser: {
    // Run Chrome without a visible window
    headless: true,
    // "WxH" or "W,H"
    window_size: "1920x1080",
    // Empty means detect Chrome automatically
    chrome_path: "",
    // Empty means the browser default
    user_agent: "",
    // HTTP or SOCKS5 proxy, e.g. "http://localhost:8080"
    proxy: "",
  },
  delays: {
    // Seconds to let each page render after navigation
    page_load: 3.0,
  },
  output: {
    leagues_file: "data/intermediate/leagues.json",
    teams_file: "data/intermediate/teams.json",
    contacts_file: "data/contacts.csv",
    // Page snapshots for failed extractions
    debug_dir: "data/debug",
    // Per-run log files
    logs_dir: "logs",
  },
  site: {
    categories_url: "https://tulospalvelu.palloliitto.fi/categories",
    // Filter button values clicked on the categories page; an empty
    // value skips that filter
    filters: {
      sport: "football",
      area: "spletela",
      type: "league",
      gender: "B",
    },
  },
  logging: {
    // debug, info, warn or error
    level: "info",
    // Raw JSON log lines instead of the console format
    json: false,
  },
}
`
