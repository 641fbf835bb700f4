/* matching_test.go
 * Contains unit tests for matching.go
 * Authors: Zachary Bower
 */

package logic

import (
	"testing"

	"bet-tracker/api/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dayResults() []shared.GameResult {
	return []shared.GameResult{
		{
			Sport: shared.SportMLB, Date: "2025-09-18",
			HomeTeam: "Baltimore Orioles", AwayTeam: "Toronto Blue Jays",
			HomeScore: 3, AwayScore: 6, Status: shared.StatusFinal,
			PlayerStats: map[string]map[string]float64{
				"Bo Bichette": {"hits": 3},
			},
		},
		{
			Sport: shared.SportMLB, Date: "2025-09-18",
			HomeTeam: "Seattle Mariners", AwayTeam: "Oakland Athletics",
			HomeScore: 2, AwayScore: 5, Status: shared.StatusFinal,
		},
		{
			Sport: shared.SportNFL, Date: "2025-09-18",
			HomeTeam: "Buffalo Bills", AwayTeam: "Miami Dolphins",
			HomeScore: 24, AwayScore: 20, Status: shared.StatusFinal,
		},
	}
}

// TestFindResultForBet_TeamBet tests matching a team bet by subject
func TestFindResultForBet_TeamBet(t *testing.T) {
	bet := shared.Bet{
		Sport: shared.SportMLB, BetType: shared.BetMoneyline,
		Subject: "Oakland Athletics", GameDate: "2025-09-18",
	}

	result, found := FindResultForBet(bet, dayResults())

	require.True(t, found)
	assert.Equal(t, "Seattle Mariners", result.HomeTeam)
}

// TestFindResultForBet_SportFilters tests that a same named date in another sport
// does not match
func TestFindResultForBet_SportFilters(t *testing.T) {
	bet := shared.Bet{
		Sport: shared.SportNHL, BetType: shared.BetMoneyline,
		Subject: "Buffalo Bills", GameDate: "2025-09-18",
	}

	_, found := FindResultForBet(bet, dayResults())

	assert.False(t, found)
}

// TestFindResultForBet_PropMatchesByPlayer tests matching a prop through the stat table
func TestFindResultForBet_PropMatchesByPlayer(t *testing.T) {
	bet := shared.Bet{
		Sport: shared.SportMLB, BetType: shared.BetProp,
		Subject: "Bo Bichette", Stat: "hits",
		Side: shared.SideOver, Line: 1.5, HasLine: true,
		GameDate: "2025-09-18",
	}

	result, found := FindResultForBet(bet, dayResults())

	require.True(t, found)
	assert.Equal(t, "Baltimore Orioles", result.HomeTeam)
}

// TestFindResultForBet_PropPlayerAbsent tests a prop whose player is in no stat table
func TestFindResultForBet_PropPlayerAbsent(t *testing.T) {
	bet := shared.Bet{
		Sport: shared.SportMLB, BetType: shared.BetProp,
		Subject: "Riley Greene", Stat: "home_runs",
		Side: shared.SideOver, Line: 0.5, HasLine: true,
		GameDate: "2025-09-18",
	}

	_, found := FindResultForBet(bet, dayResults())

	assert.False(t, found)
}

// TestFindResultForBet_NoGame tests a team with no game that day
func TestFindResultForBet_NoGame(t *testing.T) {
	bet := shared.Bet{
		Sport: shared.SportMLB, BetType: shared.BetMoneyline,
		Subject: "New York Yankees", GameDate: "2025-09-18",
	}

	_, found := FindResultForBet(bet, dayResults())

	assert.False(t, found)
}

// TestFindResultForBet_DateFilters tests that results from another date never match
func TestFindResultForBet_DateFilters(t *testing.T) {
	bet := shared.Bet{
		Sport: shared.SportMLB, BetType: shared.BetMoneyline,
		Subject: "Oakland Athletics", GameDate: "2025-09-17",
	}

	_, found := FindResultForBet(bet, dayResults())

	assert.False(t, found)
}
