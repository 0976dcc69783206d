package config

import (
	"fmt"
	"os"

	"dario.cat/mergo"
	"github.com/titanous/json5"
)

// recognized maps each config section to its allowed keys. Anything
// outside this schema fails the load instead of silently defaulting.
var recognized = map[string]map[string]bool{
	"browser": {"headless": true, "window_size": true, "chrome_path": true, "user_agent": true, "proxy": true},
	"delays":  {"page_load": true},
	"output":  {"leagues_file": true, "teams_file": true, "contacts_file": true, "debug_dir": true, "logs_dir": true},
	"site":    {"categories_url": true, "filters": true},
	"logging": {"level": true, "json": true},
}

var filterKeys = map[string]bool{"sport": true, "area": true, "type": true, "gender": true}

// loadFile merges the configuration file at path into cfg. The file is
// JSON with JSON5 comment tolerance. Unknown sections or keys and
// mistyped values are rejected.
func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var raw map[string]interface{}
	if err := json5.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if err := checkKeys(raw); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	var fileCfg Config
	if err := json5.Unmarshal(data, &fileCfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	if err := mergo.Merge(cfg, fileCfg, mergo.WithOverride); err != nil {
		return fmt.Errorf("merge %s: %w", path, err)
	}

	// Mergo treats zero values as unset, so fields whose zero is a
	// legitimate setting are re-applied from key presence.
	if hasKey(raw, "browser", "headless") {
		cfg.Browser.Headless = fileCfg.Browser.Headless
	}
	if hasKey(raw, "logging", "json") {
		cfg.Logging.JSON = fileCfg.Logging.JSON
	}
	if hasKey(raw, "delays", "page_load") {
		cfg.Delays.PageLoad = fileCfg.Delays.PageLoad
	}
	// An empty filter value means "skip that filter", so presence in
	// the file must beat the non-empty default.
	if hasFilterKey(raw, "sport") {
		cfg.Site.Filters.Sport = fileCfg.Site.Filters.Sport
	}
	if hasFilterKey(raw, "area") {
		cfg.Site.Filters.Area = fileCfg.Site.Filters.Area
	}
	if hasFilterKey(raw, "type") {
		cfg.Site.Filters.Type = fileCfg.Site.Filters.Type
	}
	if hasFilterKey(raw, "gender") {
		cfg.Site.Filters.Gender = fileCfg.Site.Filters.Gender
	}

	return nil
}

func checkKeys(raw map[string]interface{}) error {
	for section, v := range raw {
		keys, ok := recognized[section]
		if !ok {
			return fmt.Errorf("unknown config section %q", section)
		}
		obj, ok := v.(map[string]interface{})
		if !ok {
			return fmt.Errorf("config section %q must be an object", section)
		}
		for k, sub := range obj {
			if !keys[k] {
				return fmt.Errorf("unknown config key %q in section %q", k, section)
			}
			if section == "site" && k == "filters" {
				filters, ok := sub.(map[string]interface{})
				if !ok {
					return fmt.Errorf("config key \"site.filters\" must be an object")
				}
				for fk := range filters {
					if !filterKeys[fk] {
						return fmt.Errorf("unknown config key %q in section \"site.filters\"", fk)
					}
				}
			}
		}
	}
	return nil
}

func hasKey(raw map[string]interface{}, section, key string) bool {
	obj, ok := raw[section].(map[string]interface{})
	if !ok {
		return false
	}
	_, ok = obj[key]
	return ok
}

func hasFilterKey(raw map[string]interface{}, key string) bool {
	site, ok := raw["site"].(map[string]interface{})
	if !ok {
		return false
	}
	filters, ok := site["filters"].(map[string]interface{})
	if !ok {
		return false
	}
	_, ok = filters[key]
	return ok
}
