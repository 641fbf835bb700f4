/* config_test.go
 * Contains unit tests for config loading and merging
 * Authors: Zachary Bower
 */

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefault_CutoffHour tests the compiled in rollover cutoff
func TestDefault_CutoffHour(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 6, cfg.Parser.CutoffHour)
}

// TestDefault_PropStats tests that the common stat keywords are present
func TestDefault_PropStats(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "receiving_yards", cfg.Parser.PropStats["rec yds"])
	assert.Equal(t, "home_runs", cfg.Parser.PropStats["home runs"])
	assert.Equal(t, "strikeouts", cfg.Parser.PropStats["strikeouts"])
}

// TestLoad_EmptyPath tests that an empty path returns defaults
func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")

	assert.NoError(t, err)
	assert.Equal(t, Default().Parser.CutoffHour, cfg.Parser.CutoffHour)
	assert.Equal(t, Default().ESPN.BaseURL, cfg.ESPN.BaseURL)
}

// TestLoad_MissingFile tests that a bad path returns an error
func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")

	assert.Error(t, err)
}

// TestLoad_MergesOverDefaults tests that file values override defaults and
// unset values keep the defaults
func TestLoad_MergesOverDefaults(t *testing.T) {
	yaml := `
parser:
  cutoff_hour: 4
  prop_stats:
    "stolen bases": "stolen_bases"
teams:
  - sport: MLB
    name: "Sacramento Athletics"
    aliases: ["sac", "athletics"]
`
	path := writeTempConfig(t, yaml)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Parser.CutoffHour)
	// New keyword merged in, defaults retained
	assert.Equal(t, "stolen_bases", cfg.Parser.PropStats["stolen bases"])
	assert.Equal(t, "rushing_yards", cfg.Parser.PropStats["rush yds"])
	assert.Equal(t, Default().ESPN.BaseURL, cfg.ESPN.BaseURL)
	require.Len(t, cfg.Teams, 1)
	assert.Equal(t, "Sacramento Athletics", cfg.Teams[0].Name)
}

// TestLoad_InvalidCutoff tests validation of the cutoff hour range
func TestLoad_InvalidCutoff(t *testing.T) {
	path := writeTempConfig(t, "parser:\n  cutoff_hour: 25\n")

	_, err := Load(path)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cutoff_hour")
}

// TestLoad_TeamMissingName tests validation of team override entries
func TestLoad_TeamMissingName(t *testing.T) {
	path := writeTempConfig(t, "teams:\n  - sport: MLB\n    aliases: [\"oak\"]\n")

	_, err := Load(path)

	assert.Error(t, err)
}

// writeTempConfig writes yaml content to a temp file and returns its path
func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}
