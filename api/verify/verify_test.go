/* verify_test.go
 * Contains unit tests for the settlement logic
 * Authors: Zachary Bower
 */

package verify

import (
	"testing"

	"bet-tracker/api/shared"

	"github.com/stretchr/testify/assert"
)

func finalGame(sport shared.Sport, away string, awayScore float64, home string, homeScore float64) shared.GameResult {
	return shared.GameResult{
		Sport:     sport,
		Date:      "2025-09-18",
		HomeTeam:  home,
		AwayTeam:  away,
		HomeScore: homeScore,
		AwayScore: awayScore,
		Status:    shared.StatusFinal,
	}
}

// TestSettle_SpreadCover tests a favourite covering a run line
func TestSettle_SpreadCover(t *testing.T) {
	bet := shared.Bet{
		Sport: shared.SportMLB, BetType: shared.BetSpread,
		Subject: "Toronto Blue Jays", Line: -1.5, HasLine: true,
		GameDate: "2025-09-18",
	}
	result := finalGame(shared.SportMLB, "Toronto Blue Jays", 6, "Baltimore Orioles", 3)

	outcome, note := Settle(bet, result)

	assert.Equal(t, shared.OutcomeWin, outcome)
	assert.Contains(t, note, "6 -1.5 = 4.5 vs 3")
}

// TestSettle_SpreadFailToCover tests a favourite winning but not covering
func TestSettle_SpreadFailToCover(t *testing.T) {
	bet := shared.Bet{
		Sport: shared.SportMLB, BetType: shared.BetSpread,
		Subject: "Toronto Blue Jays", Line: -1.5, HasLine: true,
		GameDate: "2025-09-18",
	}
	result := finalGame(shared.SportMLB, "Toronto Blue Jays", 4, "Baltimore Orioles", 3)

	outcome, _ := Settle(bet, result)

	assert.Equal(t, shared.OutcomeLoss, outcome)
}

// TestSettle_SpreadPushOnWholeLine tests that a whole number line landing exactly
// grades PUSH
func TestSettle_SpreadPushOnWholeLine(t *testing.T) {
	bet := shared.Bet{
		Sport: shared.SportNFL, BetType: shared.BetSpread,
		Subject: "Buffalo Bills", Line: -3, HasLine: true,
		GameDate: "2025-09-18",
	}
	result := finalGame(shared.SportNFL, "Buffalo Bills", 27, "Miami Dolphins", 24)

	outcome, _ := Settle(bet, result)

	assert.Equal(t, shared.OutcomePush, outcome)
}

// TestSettle_UnderdogCoversWhileLosing tests a plus line covering despite the loss
func TestSettle_UnderdogCoversWhileLosing(t *testing.T) {
	bet := shared.Bet{
		Sport: shared.SportNFL, BetType: shared.BetSpread,
		Subject: "Miami Dolphins", Line: 7, HasLine: true,
		GameDate: "2025-09-18",
	}
	result := finalGame(shared.SportNFL, "Miami Dolphins", 20, "Buffalo Bills", 24)

	outcome, _ := Settle(bet, result)

	assert.Equal(t, shared.OutcomeWin, outcome)
}

// TestSettle_MoneylineWin tests a straight win bet
func TestSettle_MoneylineWin(t *testing.T) {
	bet := shared.Bet{
		Sport: shared.SportMLB, BetType: shared.BetMoneyline,
		Subject: "Oakland Athletics", GameDate: "2025-09-18",
	}
	result := finalGame(shared.SportMLB, "Oakland Athletics", 5, "Seattle Mariners", 2)

	outcome, note := Settle(bet, result)

	assert.Equal(t, shared.OutcomeWin, outcome)
	assert.Contains(t, note, "Oakland Athletics 5 vs 2")
}

// TestSettle_MoneylineTiePushes tests that a tied final grades PUSH
func TestSettle_MoneylineTiePushes(t *testing.T) {
	bet := shared.Bet{
		Sport: shared.SportNFL, BetType: shared.BetMoneyline,
		Subject: "Detroit Lions", GameDate: "2025-09-18",
	}
	result := finalGame(shared.SportNFL, "Detroit Lions", 20, "Green Bay Packers", 20)

	outcome, _ := Settle(bet, result)

	assert.Equal(t, shared.OutcomePush, outcome)
}

// TestSettle_TotalUnder tests an under grading against the combined score
func TestSettle_TotalUnder(t *testing.T) {
	bet := shared.Bet{
		Sport: shared.SportCFB, BetType: shared.BetTotal,
		Subject: "Oklahoma State Cowboys", Opponent: "Tulsa Golden Hurricane",
		Side: shared.SideUnder, Line: 55.5, HasLine: true,
		GameDate: "2025-09-18",
	}
	result := finalGame(shared.SportCFB, "Tulsa Golden Hurricane", 21, "Oklahoma State Cowboys", 27)

	outcome, note := Settle(bet, result)

	assert.Equal(t, shared.OutcomeWin, outcome)
	assert.Contains(t, note, "combined 48 under 55.5")
}

// TestSettle_TotalPushOnWholeLine tests a game total landing exactly on a whole line
func TestSettle_TotalPushOnWholeLine(t *testing.T) {
	bet := shared.Bet{
		Sport: shared.SportNFL, BetType: shared.BetTotal,
		Subject: "Buffalo Bills", Side: shared.SideOver, Line: 44, HasLine: true,
		GameDate: "2025-09-18",
	}
	result := finalGame(shared.SportNFL, "Miami Dolphins", 20, "Buffalo Bills", 24)

	outcome, _ := Settle(bet, result)

	assert.Equal(t, shared.OutcomePush, outcome)
}

// TestSettle_PropOverWin tests a player prop graded from the stat table
func TestSettle_PropOverWin(t *testing.T) {
	bet := shared.Bet{
		Sport: shared.SportNFL, BetType: shared.BetProp,
		Subject: "Ja'Marr Chase", Stat: "receiving_yards",
		Side: shared.SideOver, Line: 69.5, HasLine: true,
		GameDate: "2025-09-18",
	}
	result := finalGame(shared.SportNFL, "Cincinnati Bengals", 24, "Cleveland Browns", 17)
	result.PlayerStats = map[string]map[string]float64{
		"Ja'Marr Chase": {"receiving_yards": 84, "touchdowns": 1},
	}

	outcome, note := Settle(bet, result)

	assert.Equal(t, shared.OutcomeWin, outcome)
	assert.Contains(t, note, "receiving_yards = 84")
}

// TestSettle_PropMissingPlayerUnresolved tests that a player absent from the stat
// table grades UNRESOLVED rather than treating the absence as zero
func TestSettle_PropMissingPlayerUnresolved(t *testing.T) {
	bet := shared.Bet{
		Sport: shared.SportNFL, BetType: shared.BetProp,
		Subject: "Ja'Marr Chase", Stat: "receiving_yards",
		Side: shared.SideOver, Line: 69.5, HasLine: true,
		GameDate: "2025-09-18",
	}
	result := finalGame(shared.SportNFL, "Cincinnati Bengals", 24, "Cleveland Browns", 17)

	outcome, note := Settle(bet, result)

	assert.Equal(t, shared.OutcomeUnresolved, outcome)
	assert.Contains(t, note, "Ja'Marr Chase")
}

// TestSettle_PropMissingStatUnresolved tests a recorded player missing the bet's stat
func TestSettle_PropMissingStatUnresolved(t *testing.T) {
	bet := shared.Bet{
		Sport: shared.SportMLB, BetType: shared.BetProp,
		Subject: "Riley Greene", Stat: "total_bases",
		Side: shared.SideOver, Line: 1.5, HasLine: true,
		GameDate: "2025-09-18",
	}
	result := finalGame(shared.SportMLB, "Detroit Tigers", 4, "Kansas City Royals", 2)
	result.PlayerStats = map[string]map[string]float64{
		"Riley Greene": {"hits": 2},
	}

	outcome, note := Settle(bet, result)

	assert.Equal(t, shared.OutcomeUnresolved, outcome)
	assert.Contains(t, note, "total_bases")
}

// TestSettle_NotFinalUnresolved tests that an in progress game is never graded
func TestSettle_NotFinalUnresolved(t *testing.T) {
	bet := shared.Bet{
		Sport: shared.SportMLB, BetType: shared.BetMoneyline,
		Subject: "Oakland Athletics", GameDate: "2025-09-18",
	}
	result := finalGame(shared.SportMLB, "Oakland Athletics", 5, "Seattle Mariners", 2)
	result.Status = shared.StatusInProgress

	outcome, note := Settle(bet, result)

	assert.Equal(t, shared.OutcomeUnresolved, outcome)
	assert.Contains(t, note, "not final")
}

// TestSettle_DateMismatchUnresolved tests the date precondition
func TestSettle_DateMismatchUnresolved(t *testing.T) {
	bet := shared.Bet{
		Sport: shared.SportMLB, BetType: shared.BetMoneyline,
		Subject: "Oakland Athletics", GameDate: "2025-09-17",
	}
	result := finalGame(shared.SportMLB, "Oakland Athletics", 5, "Seattle Mariners", 2)

	outcome, note := Settle(bet, result)

	assert.Equal(t, shared.OutcomeUnresolved, outcome)
	assert.Contains(t, note, "date mismatch")
}

// TestSettle_SportMismatchUnresolved tests the sport precondition
func TestSettle_SportMismatchUnresolved(t *testing.T) {
	bet := shared.Bet{
		Sport: shared.SportNFL, BetType: shared.BetMoneyline,
		Subject: "Detroit Lions", GameDate: "2025-09-18",
	}
	result := finalGame(shared.SportNHL, "Detroit Red Wings", 3, "Chicago Blackhawks", 1)

	outcome, _ := Settle(bet, result)

	assert.Equal(t, shared.OutcomeUnresolved, outcome)
}

// TestSettle_TeamNotInGameUnresolved tests grading against the wrong game
func TestSettle_TeamNotInGameUnresolved(t *testing.T) {
	bet := shared.Bet{
		Sport: shared.SportMLB, BetType: shared.BetMoneyline,
		Subject: "New York Yankees", GameDate: "2025-09-18",
	}
	result := finalGame(shared.SportMLB, "Oakland Athletics", 5, "Seattle Mariners", 2)

	outcome, note := Settle(bet, result)

	assert.Equal(t, shared.OutcomeUnresolved, outcome)
	assert.Contains(t, note, "New York Yankees")
}
