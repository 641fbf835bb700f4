/* config.go
 * Contains the configuration for the tracker. Behavioural data (date rollover cutoff, prop stat keywords,
 * extra team aliases) lives in a yaml file so the supported sports and props can grow without code changes.
 * Secrets (mongo uri, discord tokens) stay in the environment and are loaded from main
 * Authors: Zachary Bower
 */

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Parser ParserConfig `yaml:"parser"`
	ESPN   ESPNConfig   `yaml:"espn"`
	Web    WebConfig    `yaml:"web"`
	Teams  []TeamConfig `yaml:"teams"`
}

type ParserConfig struct {
	// Picks posted before this local hour are assumed to refer to the previous day's slate
	CutoffHour int `yaml:"cutoff_hour"`
	// Prop stat keyword -> canonical stat field, e.g. "rush yds" -> "rushing_yards"
	PropStats map[string]string `yaml:"prop_stats"`
}

type ESPNConfig struct {
	BaseURL string `yaml:"base_url"`
	// Minimum delay between scoreboard requests in milliseconds
	RequestIntervalMs int `yaml:"request_interval_ms"`
	TimeoutSeconds    int `yaml:"timeout_seconds"`
}

type WebConfig struct {
	Addr string `yaml:"addr"`
}

// TeamConfig adds or overrides an alias table entry for one team
type TeamConfig struct {
	Sport   string   `yaml:"sport"`
	Name    string   `yaml:"name"`
	Aliases []string `yaml:"aliases"`
}

// Default returns the compiled in configuration. The prop stat table covers the
// markets the tracked experts actually post; anything else fails the parse
func Default() *Config {
	return &Config{
		Parser: ParserConfig{
			CutoffHour: 6,
			PropStats: map[string]string{
				"receiving yards": "receiving_yards",
				"rec yds":         "receiving_yards",
				"rushing yards":   "rushing_yards",
				"rush yds":        "rushing_yards",
				"passing yards":   "passing_yards",
				"pass yds":        "passing_yards",
				"touchdowns":      "touchdowns",
				"touchdown":       "touchdowns",
				"home runs":       "home_runs",
				"home run":        "home_runs",
				"strikeouts":      "strikeouts",
				"ks":              "strikeouts",
				"hits":            "hits",
				"rbis":            "rbis",
				"rbi":             "rbis",
				"total bases":     "total_bases",
				"goals":           "goals",
				"assists":         "assists",
				"saves":           "saves",
				"shots on goal":   "shots_on_goal",
				"points":          "points",
			},
		},
		ESPN: ESPNConfig{
			BaseURL:           "https://site.api.espn.com/apis/site/v2/sports",
			RequestIntervalMs: 500,
			TimeoutSeconds:    10,
		},
		Web: WebConfig{
			Addr: ":8080",
		},
	}
}

// Load reads a yaml config file and merges it over the defaults. An empty path
// returns the defaults unchanged
func Load(configPath string) (*Config, error) {
	cfg := Default()
	if configPath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if file.Parser.CutoffHour != 0 {
		cfg.Parser.CutoffHour = file.Parser.CutoffHour
	}
	for keyword, stat := range file.Parser.PropStats {
		cfg.Parser.PropStats[keyword] = stat
	}
	if file.ESPN.BaseURL != "" {
		cfg.ESPN.BaseURL = file.ESPN.BaseURL
	}
	if file.ESPN.RequestIntervalMs != 0 {
		cfg.ESPN.RequestIntervalMs = file.ESPN.RequestIntervalMs
	}
	if file.ESPN.TimeoutSeconds != 0 {
		cfg.ESPN.TimeoutSeconds = file.ESPN.TimeoutSeconds
	}
	if file.Web.Addr != "" {
		cfg.Web.Addr = file.Web.Addr
	}
	cfg.Teams = append(cfg.Teams, file.Teams...)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Parser.CutoffHour < 0 || c.Parser.CutoffHour > 23 {
		return fmt.Errorf("cutoff_hour must be between 0 and 23, got %d", c.Parser.CutoffHour)
	}
	for _, team := range c.Teams {
		if team.Sport == "" || team.Name == "" {
			return fmt.Errorf("team entries require both sport and name: %+v", team)
		}
	}
	return nil
}
