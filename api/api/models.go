/* models.go
 * This file contains the interfaces, structs and helper functions that are used by api consumers
 * Authors: Zachary Bower
 */

package api

import (
	"fmt"

	"bet-tracker/api/shared"
)

// SummarizeBet renders a tracked bet as a short confirmation string
func SummarizeBet(bet shared.Bet) string {
	var line string
	switch bet.BetType {
	case shared.BetSpread:
		line = fmt.Sprintf("%s %+g", bet.Subject, bet.Line)
	case shared.BetMoneyline:
		line = fmt.Sprintf("%s ML", bet.Subject)
	case shared.BetTotal:
		line = fmt.Sprintf("%s %s %g", bet.Subject, sideWord(bet.Side), bet.Line)
	case shared.BetProp:
		line = fmt.Sprintf("%s %s %g %s", bet.Subject, sideWord(bet.Side), bet.Line, bet.Stat)
	default:
		line = bet.Subject
	}
	return fmt.Sprintf("Tracked for %s: [%s] %s on %s", bet.ExpertName, bet.Sport, line, bet.GameDate)
}

func sideWord(side shared.Side) string {
	if side == shared.SideUnder {
		return "under"
	}
	return "over"
}
