/* verify.go
 * Contains the settlement logic used to grade a parsed bet against a final game result
 * Authors: Zachary Bower
 */

package verify

import (
	"fmt"
	"math"
	"strings"

	"bet-tracker/api/shared"
)

// Settle grades a bet against a game result and returns the outcome together with
// a note recording the arithmetic used, so every graded bet can be audited later.
// Preconditions: bet has been produced by the parser, result came from the score feed
// Postconditions: returns one of WIN, LOSS, PUSH or UNRESOLVED and a human readable note.
// Settle never guesses: any mismatch between the bet and the result grades UNRESOLVED
func Settle(bet shared.Bet, result shared.GameResult) (shared.Outcome, string) {
	if bet.Sport != result.Sport {
		return shared.OutcomeUnresolved, fmt.Sprintf("sport mismatch: bet is %s, result is %s", bet.Sport, result.Sport)
	}
	if bet.GameDate != result.Date {
		return shared.OutcomeUnresolved, fmt.Sprintf("date mismatch: bet is for %s, result is for %s", bet.GameDate, result.Date)
	}
	if result.Status != shared.StatusFinal {
		return shared.OutcomeUnresolved, fmt.Sprintf("game not final: %s @ %s is %s", result.AwayTeam, result.HomeTeam, result.Status)
	}

	switch bet.BetType {
	case shared.BetSpread:
		return settleSpread(bet, result)
	case shared.BetMoneyline:
		return settleMoneyline(bet, result)
	case shared.BetTotal:
		return settleTotal(bet, result)
	case shared.BetProp:
		return settleProp(bet, result)
	default:
		return shared.OutcomeUnresolved, fmt.Sprintf("unknown bet type %q", bet.BetType)
	}
}

// settleSpread grades a point spread bet. The subject's score is adjusted by the
// full signed line and compared to the opponent's score
func settleSpread(bet shared.Bet, result shared.GameResult) (shared.Outcome, string) {
	subjScore, oppScore, ok := teamScores(bet.Subject, result)
	if !ok {
		return shared.OutcomeUnresolved, fmt.Sprintf("team %q is not in result %s @ %s", bet.Subject, result.AwayTeam, result.HomeTeam)
	}
	if !bet.HasLine {
		return shared.OutcomeUnresolved, "spread bet has no line"
	}

	adjusted := subjScore + bet.Line
	note := fmt.Sprintf("%s final: %s %s %s %s. %s %s %+g = %s vs %s",
		bet.Sport, result.AwayTeam, formatScore(result.AwayScore), result.HomeTeam, formatScore(result.HomeScore),
		bet.Subject, formatScore(subjScore), bet.Line, formatScore(adjusted), formatScore(oppScore))

	switch {
	case adjusted > oppScore:
		return shared.OutcomeWin, note
	case adjusted < oppScore:
		return shared.OutcomeLoss, note
	case canPush(bet.Line):
		return shared.OutcomePush, note
	default:
		// a fractional line can never land exactly on the number
		return shared.OutcomeUnresolved, note + " (tie on a fractional line)"
	}
}

// settleMoneyline grades a straight win bet. A tied final grades PUSH
func settleMoneyline(bet shared.Bet, result shared.GameResult) (shared.Outcome, string) {
	subjScore, oppScore, ok := teamScores(bet.Subject, result)
	if !ok {
		return shared.OutcomeUnresolved, fmt.Sprintf("team %q is not in result %s @ %s", bet.Subject, result.AwayTeam, result.HomeTeam)
	}

	note := fmt.Sprintf("%s final: %s %s %s %s. %s %s vs %s",
		bet.Sport, result.AwayTeam, formatScore(result.AwayScore), result.HomeTeam, formatScore(result.HomeScore),
		bet.Subject, formatScore(subjScore), formatScore(oppScore))

	switch {
	case subjScore > oppScore:
		return shared.OutcomeWin, note
	case subjScore < oppScore:
		return shared.OutcomeLoss, note
	default:
		return shared.OutcomePush, note
	}
}

// settleTotal grades a game total against the combined final score
func settleTotal(bet shared.Bet, result shared.GameResult) (shared.Outcome, string) {
	if !bet.HasLine {
		return shared.OutcomeUnresolved, "total bet has no line"
	}
	combined := result.HomeScore + result.AwayScore
	note := fmt.Sprintf("%s final: %s %s %s %s. combined %s %s %g",
		bet.Sport, result.AwayTeam, formatScore(result.AwayScore), result.HomeTeam, formatScore(result.HomeScore),
		formatScore(combined), strings.ToLower(string(bet.Side)), bet.Line)

	return gradeOverUnder(bet.Side, combined, bet.Line, note)
}

// settleProp grades a player prop against the result's player stat table. A player
// or stat missing from the table grades UNRESOLVED, absence of data is not a zero
func settleProp(bet shared.Bet, result shared.GameResult) (shared.Outcome, string) {
	if !bet.HasLine {
		return shared.OutcomeUnresolved, "prop bet has no line"
	}
	stats, ok := lookupPlayer(bet.Subject, result)
	if !ok {
		return shared.OutcomeUnresolved, fmt.Sprintf("no stats recorded for player %q in %s @ %s", bet.Subject, result.AwayTeam, result.HomeTeam)
	}
	value, ok := stats[bet.Stat]
	if !ok {
		return shared.OutcomeUnresolved, fmt.Sprintf("stat %q not recorded for player %q", bet.Stat, bet.Subject)
	}

	note := fmt.Sprintf("%s: %s %s = %s, line %s %g",
		bet.Sport, bet.Subject, bet.Stat, formatScore(value), strings.ToLower(string(bet.Side)), bet.Line)

	return gradeOverUnder(bet.Side, value, bet.Line, note)
}

// gradeOverUnder compares an actual value to an over/under line
func gradeOverUnder(side shared.Side, actual, line float64, note string) (shared.Outcome, string) {
	if side != shared.SideOver && side != shared.SideUnder {
		return shared.OutcomeUnresolved, note + " (no over or under side)"
	}
	if actual == line {
		if canPush(line) {
			return shared.OutcomePush, note
		}
		return shared.OutcomeUnresolved, note + " (tie on a fractional line)"
	}
	wantOver := side == shared.SideOver
	if (actual > line) == wantOver {
		return shared.OutcomeWin, note
	}
	return shared.OutcomeLoss, note
}

// canPush reports whether a line can land exactly. Half point lines cannot push
func canPush(line float64) bool {
	return line == math.Trunc(line)
}

// teamScores returns the subject's score and the opponent's score, matching the
// subject against either side of the result by canonical name
func teamScores(subject string, result shared.GameResult) (float64, float64, bool) {
	switch {
	case strings.EqualFold(subject, result.HomeTeam):
		return result.HomeScore, result.AwayScore, true
	case strings.EqualFold(subject, result.AwayTeam):
		return result.AwayScore, result.HomeScore, true
	default:
		return 0, 0, false
	}
}

// lookupPlayer finds a player's stat map case insensitively
func lookupPlayer(name string, result shared.GameResult) (map[string]float64, bool) {
	if stats, ok := result.PlayerStats[name]; ok {
		return stats, true
	}
	for player, stats := range result.PlayerStats {
		if strings.EqualFold(player, name) {
			return stats, true
		}
	}
	return nil, false
}

// formatScore renders a score without a trailing .0 for whole values
func formatScore(v float64) string {
	return fmt.Sprintf("%g", v)
}
