/* test_helpers.go
 * Contains test helper functions and sample data builders for store package tests
 * Authors: Zachary Bower
 */

package store

import (
	"context"

	"bet-tracker/api/shared"
)

// CreateTestStore creates a Store connected to a test database.
// Returns the store and a cleanup function.
func CreateTestStore(mongoURI string) (*Store, func(), error) {
	store, err := NewStore("test_bet_tracker", mongoURI)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if store.Client != nil {
			// Drop test database
			store.Database.Drop(context.TODO())
			// Disconnect client
			store.Client.Disconnect(context.TODO())
		}
	}

	return store, cleanup, nil
}

// CreateSampleBet creates sample Bet data for testing.
func CreateSampleBet(expert string, date string) shared.Bet {
	return shared.Bet{
		ExpertName: expert,
		Sport:      shared.SportMLB,
		BetType:    shared.BetSpread,
		Subject:    "Toronto Blue Jays",
		Line:       -1.5,
		HasLine:    true,
		GameDate:   date,
		RawText:    "Toronto Blue Jays -1.5",
		Outcome:    shared.OutcomePending,
	}
}

// CreateSampleGameResult creates sample GameResult data for testing.
func CreateSampleGameResult(date string) shared.GameResult {
	return shared.GameResult{
		Sport:     shared.SportMLB,
		Date:      date,
		HomeTeam:  "Baltimore Orioles",
		AwayTeam:  "Toronto Blue Jays",
		HomeScore: 3,
		AwayScore: 6,
		Status:    shared.StatusFinal,
	}
}
