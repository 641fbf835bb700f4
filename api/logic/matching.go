/* matching.go
 * Contains the logic for matching a tracked bet to the game result it should be graded against
 * Authors: Zachary Bower
 */

package logic

import (
	"strings"

	"bet-tracker/api/shared"
)

// Function to find the game result a bet should be graded against
// Preconditions: Receives a bet and the day's game results
// Postconditions: Returns the matching result and true, or false when no result or more
// than one result matches. An ambiguous match is treated the same as no match, the bet
// is left for the settlement engine to grade UNRESOLVED
func FindResultForBet(bet shared.Bet, results []shared.GameResult) (shared.GameResult, bool) {
	var matches []shared.GameResult
	for _, result := range results {
		if result.Sport != bet.Sport || result.Date != bet.GameDate {
			continue
		}
		if betMatchesResult(bet, result) {
			matches = append(matches, result)
		}
	}

	if len(matches) != 1 {
		return shared.GameResult{}, false
	}
	return matches[0], true
}

// Helper function to check whether a bet belongs to a single game result
// Preconditions: Receives a bet and a result already filtered to the bet's sport and date
// Postconditions: Returns true if the bet's subject appears in the result
func betMatchesResult(bet shared.Bet, result shared.GameResult) bool {
	switch bet.BetType {
	case shared.BetProp:
		// A prop's subject is a player, find them in the result's stat table
		for player := range result.PlayerStats {
			if strings.EqualFold(player, bet.Subject) {
				return true
			}
		}
		return false
	default:
		if strings.EqualFold(bet.Subject, result.HomeTeam) || strings.EqualFold(bet.Subject, result.AwayTeam) {
			return true
		}
		// A total parsed from a matchup may carry the opponent too
		if bet.Opponent != "" &&
			(strings.EqualFold(bet.Opponent, result.HomeTeam) || strings.EqualFold(bet.Opponent, result.AwayTeam)) {
			return true
		}
		return false
	}
}
