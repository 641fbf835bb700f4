/* game_results.go
 * Contains the methods for interacting with the game_results collection
 * Authors: Zachary Bower
 */

package store

import (
	"context"
	"fmt"

	"bet-tracker/api/shared"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// StoreGameResults upserts a batch of fetched game results, keyed by matchup.
// A later fetch of the same game replaces the earlier record, which is how an
// in progress score becomes a final one
// Preconditions: Receives a slice of GameResults from the score feed
// Postconditions: The db holds the latest record for each game, or returns an error
func (s *Store) StoreGameResults(results []shared.GameResult) error {
	opts := options.Update().SetUpsert(true)

	for _, result := range results {
		filter := bson.M{
			"sport":     result.Sport,
			"date":      result.Date,
			"home_team": result.HomeTeam,
			"away_team": result.AwayTeam,
		}
		update := bson.M{"$set": result}

		if _, err := s.Collections.GameResults.UpdateOne(context.TODO(), filter, update, opts); err != nil {
			return fmt.Errorf("failed to upsert game result %s: %w", result.Ref(), err)
		}
	}
	return nil
}

// GetGameResults does DB lookup and gets every game result stored for a date
// Preconditions: Receives a date string in YYYY-MM-DD form
// Postconditions: Returns a slice of GameResults, or an error if it occurs
func (s *Store) GetGameResults(date string) ([]shared.GameResult, error) {
	cursor, err := s.Collections.GameResults.Find(context.TODO(), bson.D{{Key: "date", Value: date}})
	if err != nil {
		return nil, fmt.Errorf("error fetching game results from db: %w", err)
	}

	var results []shared.GameResult
	if err = cursor.All(context.TODO(), &results); err != nil {
		return nil, fmt.Errorf("error unpacking cursor into slice of game results: %w", err)
	}
	return results, nil
}
