/* test_mocks.go
 * Contains mock structures and interfaces for testing the API package
 * Authors: Zachary Bower
 */

package api

import (
	"context"
	"fmt"

	"bet-tracker/api/shared"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MockStore implements the Store interface for testing
type MockStore struct {
	// Storage for mock data
	Bets    map[primitive.ObjectID]shared.Bet
	Results []shared.GameResult
	Reports map[string]shared.DailyReport

	// Error injection for testing error paths
	StoreBetError         error
	GetBetsError          error
	UpdateBetOutcomeError error
	StoreGameResultsError error
	StoreReportError      error
}

// NewMockStore creates a new MockStore with default values
func NewMockStore() *MockStore {
	return &MockStore{
		Bets:    make(map[primitive.ObjectID]shared.Bet),
		Reports: make(map[string]shared.DailyReport),
	}
}

// StoreBet mock implementation
func (m *MockStore) StoreBet(bet shared.Bet) (primitive.ObjectID, error) {
	if m.StoreBetError != nil {
		return primitive.NilObjectID, m.StoreBetError
	}
	id := primitive.NewObjectID()
	bet.ID = id
	m.Bets[id] = bet
	return id, nil
}

// GetBetsByDate mock implementation
func (m *MockStore) GetBetsByDate(date string) ([]shared.Bet, error) {
	if m.GetBetsError != nil {
		return nil, m.GetBetsError
	}
	var bets []shared.Bet
	for _, bet := range m.Bets {
		if bet.GameDate == date {
			bets = append(bets, bet)
		}
	}
	return bets, nil
}

// GetBetsByExpert mock implementation
func (m *MockStore) GetBetsByExpert(expert string) ([]shared.Bet, error) {
	if m.GetBetsError != nil {
		return nil, m.GetBetsError
	}
	var bets []shared.Bet
	for _, bet := range m.Bets {
		if bet.ExpertName == expert {
			bets = append(bets, bet)
		}
	}
	return bets, nil
}

// GetUnsettledBets mock implementation
func (m *MockStore) GetUnsettledBets(date string) ([]shared.Bet, error) {
	if m.GetBetsError != nil {
		return nil, m.GetBetsError
	}
	var bets []shared.Bet
	for _, bet := range m.Bets {
		if bet.GameDate != date {
			continue
		}
		if bet.Outcome == shared.OutcomePending || bet.Outcome == shared.OutcomeUnresolved {
			bets = append(bets, bet)
		}
	}
	return bets, nil
}

// UpdateBetOutcome mock implementation
func (m *MockStore) UpdateBetOutcome(id primitive.ObjectID, outcome shared.Outcome, note string, resultRef string) error {
	if m.UpdateBetOutcomeError != nil {
		return m.UpdateBetOutcomeError
	}
	bet, ok := m.Bets[id]
	if !ok {
		return fmt.Errorf("no bet found with id %s", id.Hex())
	}
	bet.Outcome = outcome
	bet.VerificationNote = note
	bet.ResultRef = resultRef
	m.Bets[id] = bet
	return nil
}

// StoreGameResults mock implementation
func (m *MockStore) StoreGameResults(results []shared.GameResult) error {
	if m.StoreGameResultsError != nil {
		return m.StoreGameResultsError
	}
	m.Results = append(m.Results, results...)
	return nil
}

// GetGameResults mock implementation
func (m *MockStore) GetGameResults(date string) ([]shared.GameResult, error) {
	var results []shared.GameResult
	for _, result := range m.Results {
		if result.Date == date {
			results = append(results, result)
		}
	}
	return results, nil
}

// StoreReport mock implementation
func (m *MockStore) StoreReport(report shared.DailyReport) error {
	if m.StoreReportError != nil {
		return m.StoreReportError
	}
	m.Reports[report.Date] = report
	return nil
}

// GetReport mock implementation
func (m *MockStore) GetReport(date string) (shared.DailyReport, error) {
	report, ok := m.Reports[date]
	if !ok {
		return shared.DailyReport{}, mongo.ErrNoDocuments
	}
	return report, nil
}

// mockDatabase implements the minimal Database interface needed for tests
type mockDatabase struct {
	name string
}

func (m *mockDatabase) Name() string {
	return m.name
}

// Implement getter methods for StoreInterface
func (m *MockStore) GetDatabase() interface{ Name() string } {
	return &mockDatabase{name: "test_db"}
}

// mockClient implements minimal client interface
type mockClient struct{}

func (mc *mockClient) Disconnect(ctx context.Context) error {
	return nil
}

func (m *MockStore) GetClient() interface{ Disconnect(context.Context) error } {
	return &mockClient{}
}

// MockFetcher implements ResultsFetcher with canned results
type MockFetcher struct {
	Results  []shared.GameResult
	FetchErr error
}

// FetchAllResults mock implementation
func (m *MockFetcher) FetchAllResults(ctx context.Context, date string) ([]shared.GameResult, error) {
	if m.FetchErr != nil {
		return nil, m.FetchErr
	}
	var results []shared.GameResult
	for _, result := range m.Results {
		if result.Date == date {
			results = append(results, result)
		}
	}
	return results, nil
}
