/* api_test.go
 * Contains unit tests for api.go - testing all public API methods
 * Authors: Zachary Bower
 */

package api

import (
	"context"
	"testing"
	"time"

	"bet-tracker/api/parser"
	"bet-tracker/api/shared"
	"bet-tracker/api/teams"
	"bet-tracker/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var posted = time.Date(2025, 9, 18, 14, 30, 0, 0, time.UTC)

func newTestAPI(ms *MockStore, mf *MockFetcher) *API {
	cfg := config.Default()
	registry := teams.NewRegistry(nil)
	return &API{
		Store:   ms,
		Parser:  parser.New(registry, cfg.Parser.PropStats, cfg.Parser.CutoffHour),
		Teams:   registry,
		Fetcher: mf,
	}
}

func blueJaysFinal(date string) shared.GameResult {
	return shared.GameResult{
		Sport: shared.SportMLB, Date: date,
		HomeTeam: "Baltimore Orioles", AwayTeam: "Toronto Blue Jays",
		HomeScore: 3, AwayScore: 6, Status: shared.StatusFinal,
	}
}

// region TrackPick tests

func TestTrackPick_StoresParsedBet(t *testing.T) {
	ms := NewMockStore()
	a := newTestAPI(ms, &MockFetcher{})

	bet, err := a.TrackPick("Toronto Blue Jays -1.5", "Big Smokey Picks", posted, shared.SportMLB)

	require.NoError(t, err)
	assert.False(t, bet.ID.IsZero())
	assert.Len(t, ms.Bets, 1)
	assert.Equal(t, shared.OutcomePending, ms.Bets[bet.ID].Outcome)
}

func TestTrackPick_RejectedPickIsNotStored(t *testing.T) {
	ms := NewMockStore()
	a := newTestAPI(ms, &MockFetcher{})

	_, err := a.TrackPick("great value on the board tonight", "Big Smokey Picks", posted, shared.SportUnknown)

	require.Error(t, err)
	assert.Empty(t, ms.Bets)
}

// endregion

// region VerifyDate tests

func TestVerifyDate_GradesBetsAndBuildsReport(t *testing.T) {
	ms := NewMockStore()
	mf := &MockFetcher{Results: []shared.GameResult{blueJaysFinal("2025-09-18")}}
	a := newTestAPI(ms, mf)

	bet, err := a.TrackPick("Toronto Blue Jays -1.5", "Big Smokey Picks", posted, shared.SportMLB)
	require.NoError(t, err)

	report, err := a.VerifyDate(context.Background(), "2025-09-18")

	require.NoError(t, err)
	assert.Equal(t, shared.OutcomeWin, ms.Bets[bet.ID].Outcome)
	assert.NotEmpty(t, ms.Bets[bet.ID].VerificationNote)
	assert.Equal(t, blueJaysFinal("2025-09-18").Ref(), ms.Bets[bet.ID].ResultRef)

	assert.Equal(t, 1, report.TotalBets)
	assert.Equal(t, 1, report.Overall.Wins)
	require.Len(t, report.Experts, 1)
	assert.Equal(t, "Big Smokey Picks", report.Experts[0].Expert)

	// The report is also persisted
	stored, err := a.GetReport("2025-09-18")
	require.NoError(t, err)
	assert.Equal(t, report.Overall, stored.Overall)
}

func TestVerifyDate_NoResultLeavesBetUnresolved(t *testing.T) {
	ms := NewMockStore()
	a := newTestAPI(ms, &MockFetcher{})

	bet, err := a.TrackPick("Yankees ML", "Big Smokey Picks", posted, shared.SportMLB)
	require.NoError(t, err)

	report, err := a.VerifyDate(context.Background(), "2025-09-18")

	require.NoError(t, err)
	assert.Equal(t, shared.OutcomeUnresolved, ms.Bets[bet.ID].Outcome)
	assert.Contains(t, ms.Bets[bet.ID].VerificationNote, "no result found")
	assert.Equal(t, 1, report.Overall.Unresolved)
}

func TestVerifyDate_RerunSettlesLateFinal(t *testing.T) {
	ms := NewMockStore()
	mf := &MockFetcher{}
	a := newTestAPI(ms, mf)

	bet, err := a.TrackPick("Toronto Blue Jays -1.5", "Big Smokey Picks", posted, shared.SportMLB)
	require.NoError(t, err)

	// First run, no finals yet
	_, err = a.VerifyDate(context.Background(), "2025-09-18")
	require.NoError(t, err)
	assert.Equal(t, shared.OutcomeUnresolved, ms.Bets[bet.ID].Outcome)

	// Second run after the game finished
	mf.Results = []shared.GameResult{blueJaysFinal("2025-09-18")}
	report, err := a.VerifyDate(context.Background(), "2025-09-18")

	require.NoError(t, err)
	assert.Equal(t, shared.OutcomeWin, ms.Bets[bet.ID].Outcome)
	assert.Equal(t, 1, report.Overall.Wins)
	assert.Equal(t, 0, report.Overall.Unresolved)
}

func TestVerifyDate_SettledBetsAreNotRegraded(t *testing.T) {
	ms := NewMockStore()
	mf := &MockFetcher{Results: []shared.GameResult{blueJaysFinal("2025-09-18")}}
	a := newTestAPI(ms, mf)

	bet, err := a.TrackPick("Toronto Blue Jays -1.5", "Big Smokey Picks", posted, shared.SportMLB)
	require.NoError(t, err)

	_, err = a.VerifyDate(context.Background(), "2025-09-18")
	require.NoError(t, err)

	// Flip the feed to a losing score. A settled bet keeps its original grade
	mf.Results = []shared.GameResult{{
		Sport: shared.SportMLB, Date: "2025-09-18",
		HomeTeam: "Baltimore Orioles", AwayTeam: "Toronto Blue Jays",
		HomeScore: 5, AwayScore: 2, Status: shared.StatusFinal,
	}}
	_, err = a.VerifyDate(context.Background(), "2025-09-18")

	require.NoError(t, err)
	assert.Equal(t, shared.OutcomeWin, ms.Bets[bet.ID].Outcome)
}

func TestVerifyDate_FetchErrorFailsRun(t *testing.T) {
	ms := NewMockStore()
	mf := &MockFetcher{FetchErr: assert.AnError}
	a := newTestAPI(ms, mf)

	_, err := a.VerifyDate(context.Background(), "2025-09-18")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error fetching results")
}

// endregion

// region record and report tests

func TestGetExpertRecord_TalliesAcrossDates(t *testing.T) {
	ms := NewMockStore()
	a := newTestAPI(ms, &MockFetcher{})

	for _, outcome := range []shared.Outcome{shared.OutcomeWin, shared.OutcomeWin, shared.OutcomeLoss} {
		bet := shared.Bet{ExpertName: "Big Smokey Picks", Sport: shared.SportMLB, Outcome: outcome, GameDate: "2025-09-18"}
		_, err := ms.StoreBet(bet)
		require.NoError(t, err)
	}

	record, err := a.GetExpertRecord("Big Smokey Picks")

	require.NoError(t, err)
	assert.Equal(t, 2, record.Overall.Wins)
	assert.Equal(t, 1, record.Overall.Losses)
	assert.Equal(t, 2, record.BySport[shared.SportMLB].Wins)
}

func TestGetExpertRecord_UnknownExpert(t *testing.T) {
	a := newTestAPI(NewMockStore(), &MockFetcher{})

	_, err := a.GetExpertRecord("nobody")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no bets tracked")
}

func TestFormatReport_IncludesRecordsAndAccuracy(t *testing.T) {
	report := shared.DailyReport{
		Date:      "2025-09-18",
		TotalBets: 3,
		Experts: []shared.ExpertRecord{
			{Expert: "Big Smokey Picks", Overall: shared.RecordLine{Wins: 2, Losses: 1}},
		},
	}

	out := FormatReport(report)

	assert.Contains(t, out, "Results for 2025-09-18 (3 bets tracked)")
	assert.Contains(t, out, "1. Big Smokey Picks: 2-1 (67%)")
}

func TestSummarizeBet_PerBetType(t *testing.T) {
	spread := shared.Bet{ExpertName: "x", Sport: shared.SportMLB, BetType: shared.BetSpread, Subject: "Toronto Blue Jays", Line: -1.5, HasLine: true, GameDate: "2025-09-18"}
	assert.Contains(t, SummarizeBet(spread), "Toronto Blue Jays -1.5")

	prop := shared.Bet{ExpertName: "x", Sport: shared.SportNFL, BetType: shared.BetProp, Subject: "Ja'Marr Chase", Side: shared.SideOver, Line: 69.5, HasLine: true, Stat: "receiving_yards", GameDate: "2025-09-18"}
	assert.Contains(t, SummarizeBet(prop), "Ja'Marr Chase over 69.5 receiving_yards")
}

// endregion

// region NewAPI tests

func TestNewAPI_MissingDbName(t *testing.T) {
	_, err := NewAPI(config.Default(), "", "mongodb://localhost")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "dbName is required")
}

// endregion
