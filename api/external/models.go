/* models.go
 * Contains the data models and lookup tables used by the ESPN scoreboard client
 * Authors: Zachary Bower
 */

package external

import "bet-tracker/api/shared"

// sportPaths maps a sport to its path segment on the ESPN site API
var sportPaths = map[shared.Sport]string{
	shared.SportMLB: "baseball/mlb",
	shared.SportNFL: "football/nfl",
	shared.SportNHL: "hockey/nhl",
	shared.SportCFB: "football/college-football",
}

// leaderStats maps ESPN leader category names to the stat names used on prop bets.
// Categories not listed here are skipped when building the player stat table
var leaderStats = map[string]string{
	"passingYards":        "passing_yards",
	"rushingYards":        "rushing_yards",
	"receivingYards":      "receiving_yards",
	"passingTouchdowns":   "touchdowns",
	"rushingTouchdowns":   "touchdowns",
	"receivingTouchdowns": "touchdowns",
	"homeRuns":            "home_runs",
	"strikeouts":          "strikeouts",
	"hits":                "hits",
	"RBIs":                "rbis",
	"totalBases":          "total_bases",
	"goals":               "goals",
	"assists":             "assists",
	"saves":               "saves",
	"shots":               "shots_on_goal",
	"points":              "points",
}

// statusNames maps ESPN status type names to game statuses. Statuses not listed
// here fall back on the "completed" flag
var statusNames = map[string]shared.GameStatus{
	"STATUS_FINAL":       shared.StatusFinal,
	"STATUS_FULL_TIME":   shared.StatusFinal,
	"STATUS_IN_PROGRESS": shared.StatusInProgress,
	"STATUS_HALFTIME":    shared.StatusInProgress,
	"STATUS_END_PERIOD":  shared.StatusInProgress,
	"STATUS_DELAYED":     shared.StatusInProgress,
	"STATUS_SCHEDULED":   shared.StatusScheduled,
	"STATUS_POSTPONED":   shared.StatusScheduled,
	"STATUS_CANCELED":    shared.StatusScheduled,
}
