/* store_interface.go
 * Contains the Store interface for dependency injection and testing
 * Authors: Zachary Bower
 */

package store

import (
	"context"

	"bet-tracker/api/shared"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Interface defines the methods that Store implements.
// This allows for mocking in tests.
type Interface interface {
	StoreBet(bet shared.Bet) (primitive.ObjectID, error)
	GetBetsByDate(date string) ([]shared.Bet, error)
	GetBetsByExpert(expert string) ([]shared.Bet, error)
	GetUnsettledBets(date string) ([]shared.Bet, error)
	UpdateBetOutcome(id primitive.ObjectID, outcome shared.Outcome, note string, resultRef string) error
	StoreGameResults(results []shared.GameResult) error
	GetGameResults(date string) ([]shared.GameResult, error)
	StoreReport(report shared.DailyReport) error
	GetReport(date string) (shared.DailyReport, error)

	// Getter methods for accessing fields
	GetDatabase() interface{ Name() string }
	GetClient() interface{ Disconnect(context.Context) error }
}

// Ensure Store implements Interface
var _ Interface = (*Store)(nil)

// GetDatabase returns the database instance
func (s *Store) GetDatabase() interface{ Name() string } {
	return s.Database
}

// GetClient returns the MongoDB client
func (s *Store) GetClient() interface{ Disconnect(context.Context) error } {
	return s.Client
}
