/* picks.go
 * Contains the methods for interacting with the picks collection
 * Authors: Zachary Bower
 */

package store

import (
	"context"
	"fmt"

	"bet-tracker/api/shared"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StoreBet stores a parsed bet in the db
// Preconditions: Receives a Bet produced by the parser
// Postconditions: Inserts the bet and returns its new id, or an error if the operation was unsuccessful
func (s *Store) StoreBet(bet shared.Bet) (primitive.ObjectID, error) {
	result, err := s.Collections.Picks.InsertOne(context.TODO(), bet)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert bet: %w", err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	return id, nil
}

// GetBetsByDate does DB lookup and gets every bet tracked for a slate date
// Preconditions: Receives a date string in YYYY-MM-DD form
// Postconditions: Returns a slice of Bets, or an error if it occurs
func (s *Store) GetBetsByDate(date string) ([]shared.Bet, error) {
	return s.findBets(bson.D{{Key: "game_date", Value: date}})
}

// GetBetsByExpert does DB lookup and gets every bet tracked for an expert across all dates
// Preconditions: Receives the expert's name
// Postconditions: Returns a slice of Bets, or an error if it occurs
func (s *Store) GetBetsByExpert(expert string) ([]shared.Bet, error) {
	return s.findBets(bson.D{{Key: "expert_name", Value: expert}})
}

// GetUnsettledBets gets the bets for a date that still need grading. This includes
// UNRESOLVED bets so a re-run after late final scores can settle them
// Preconditions: Receives a date string in YYYY-MM-DD form
// Postconditions: Returns a slice of Bets, or an error if it occurs
func (s *Store) GetUnsettledBets(date string) ([]shared.Bet, error) {
	filter := bson.D{
		{Key: "game_date", Value: date},
		{Key: "outcome", Value: bson.D{{Key: "$in", Value: []shared.Outcome{shared.OutcomePending, shared.OutcomeUnresolved}}}},
	}
	return s.findBets(filter)
}

// UpdateBetOutcome records the settlement of a bet
// Preconditions: Receives the bet's id, the graded outcome, the verification note and the ref of the
// game result it was graded against
// Postconditions: Updates the stored bet, or returns an error if the operation was unsuccessful
func (s *Store) UpdateBetOutcome(id primitive.ObjectID, outcome shared.Outcome, note string, resultRef string) error {
	filter := bson.M{"_id": id}
	update := bson.M{
		"$set": bson.M{
			"outcome":           outcome,
			"verification_note": note,
			"result_ref":        resultRef,
		},
	}

	result, err := s.Collections.Picks.UpdateOne(context.TODO(), filter, update)
	if err != nil {
		return fmt.Errorf("failed to update bet outcome: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("no bet found with id %s", id.Hex())
	}
	return nil
}

// Helper function to run a find on the picks collection and unpack the cursor
// Preconditions: Receives a bson filter
// Postconditions: Returns the matching Bets, or an error if it occurs
func (s *Store) findBets(filter bson.D) ([]shared.Bet, error) {
	cursor, err := s.Collections.Picks.Find(context.TODO(), filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching bets from db: %w", err)
	}

	var bets []shared.Bet
	if err = cursor.All(context.TODO(), &bets); err != nil {
		return nil, fmt.Errorf("error unpacking cursor into slice of bets: %w", err)
	}
	return bets, nil
}
