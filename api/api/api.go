/* api.go
 * This file contains the public methods for interacting with this package. For consistent results, functions should
 * only be called from this file, not the sub packages for parsing, settlement and storage
 * Authors: Zachary Bower
 */

package api

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bet-tracker/api/external"
	"bet-tracker/api/logic"
	"bet-tracker/api/parser"
	"bet-tracker/api/shared"
	"bet-tracker/api/store"
	"bet-tracker/api/teams"
	"bet-tracker/api/verify"
	"bet-tracker/config"
)

// ResultsFetcher is the slice of the score feed client the API needs. It exists so
// tests can grade against canned results instead of the live feed
type ResultsFetcher interface {
	FetchAllResults(ctx context.Context, date string) ([]shared.GameResult, error)
}

// API provides methods for interacting with the bet tracker data layer
type API struct {
	Store   store.Interface
	Parser  *parser.Parser
	Teams   *teams.Registry
	Fetcher ResultsFetcher
}

// NewAPI creates a new API instance with the provided configuration
func NewAPI(cfg *config.Config, dbName string, mongoURI string) (*API, error) {
	if dbName == "" {
		return nil, fmt.Errorf("dbName is required")
	}

	s, err := store.NewStore(dbName, mongoURI)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	registry := teams.NewRegistry(teamExtras(cfg))
	return &API{
		Store:   s,
		Parser:  parser.New(registry, cfg.Parser.PropStats, cfg.Parser.CutoffHour),
		Teams:   registry,
		Fetcher: external.NewClient(cfg.ESPN),
	}, nil
}

// TrackPick parses a free text pick and stores the resulting bet.
// Preconditions: Receives the pick text, the expert it came from, the time it was posted
// and an optional sport hint (SportUnknown when the caller has none)
// Postconditions: Returns the stored bet with its id set, or the parse error. A pick that
// does not parse is never stored
func (a *API) TrackPick(rawText string, expert string, postedAt time.Time, hint shared.Sport) (shared.Bet, error) {
	bet, err := a.Parser.Parse(rawText, expert, postedAt, hint)
	if err != nil {
		return shared.Bet{}, err
	}

	id, err := a.Store.StoreBet(bet)
	if err != nil {
		return shared.Bet{}, err
	}
	bet.ID = id
	return bet, nil
}

// VerifyDate fetches the date's final scores, grades every unsettled bet for the date
// and regenerates the date's accuracy report. Safe to run repeatedly, bets that were
// UNRESOLVED because a game had not finished are graded once a later run sees the final
// Preconditions: Receives context and a date string in YYYY-MM-DD form
// Postconditions: Returns the regenerated report, or an error if it occurs
func (a *API) VerifyDate(ctx context.Context, date string) (shared.DailyReport, error) {
	results, err := a.Fetcher.FetchAllResults(ctx, date)
	if err != nil {
		return shared.DailyReport{}, fmt.Errorf("error fetching results for %s: %w", date, err)
	}
	if err := a.Store.StoreGameResults(results); err != nil {
		return shared.DailyReport{}, err
	}

	unsettled, err := a.Store.GetUnsettledBets(date)
	if err != nil {
		return shared.DailyReport{}, err
	}

	for _, bet := range unsettled {
		outcome, note, resultRef := a.gradeBet(bet, results)
		if err := a.Store.UpdateBetOutcome(bet.ID, outcome, note, resultRef); err != nil {
			return shared.DailyReport{}, err
		}
	}

	return a.regenerateReport(date)
}

// GetReport fetches the stored accuracy report for a date
// Preconditions: Receives a date string in YYYY-MM-DD form
// Postconditions: Returns the report, or an error if none has been generated yet
func (a *API) GetReport(date string) (shared.DailyReport, error) {
	return a.Store.GetReport(date)
}

// GetExpertRecord tallies an expert's all time record across every tracked bet
// Preconditions: Receives the expert's name
// Postconditions: Returns the expert's record, or an error if it occurs
func (a *API) GetExpertRecord(expert string) (shared.ExpertRecord, error) {
	bets, err := a.Store.GetBetsByExpert(expert)
	if err != nil {
		return shared.ExpertRecord{}, err
	}
	if len(bets) == 0 {
		return shared.ExpertRecord{}, fmt.Errorf("no bets tracked for expert '%s'", expert)
	}
	return logic.BuildExpertRecord(expert, bets), nil
}

// GetBetsByDate fetches every bet tracked for a date
// Preconditions: Receives a date string in YYYY-MM-DD form
// Postconditions: Returns the bets, or an error if it occurs
func (a *API) GetBetsByDate(date string) ([]shared.Bet, error) {
	return a.Store.GetBetsByDate(date)
}

// Helper function to grade one bet against the day's results
// Preconditions: Receives a bet and the fetched results for its date
// Postconditions: Returns the outcome, the verification note and the ref of the result used.
// A bet with no matching result grades UNRESOLVED with an empty ref
func (a *API) gradeBet(bet shared.Bet, results []shared.GameResult) (shared.Outcome, string, string) {
	result, found := logic.FindResultForBet(bet, results)
	if !found {
		return shared.OutcomeUnresolved, fmt.Sprintf("no result found for %s on %s", bet.Subject, bet.GameDate), ""
	}

	outcome, note := verify.Settle(bet, result)
	return outcome, note, result.Ref()
}

// Helper function to rebuild and store the report for a date after grading
// Preconditions: Receives a date string in YYYY-MM-DD form
// Postconditions: Returns the stored report, or an error if it occurs
func (a *API) regenerateReport(date string) (shared.DailyReport, error) {
	bets, err := a.Store.GetBetsByDate(date)
	if err != nil {
		return shared.DailyReport{}, err
	}

	report := logic.BuildReport(date, bets)
	if err := a.Store.StoreReport(report); err != nil {
		return shared.DailyReport{}, err
	}
	return report, nil
}

// FormatReport renders a report as a response string for chat and logs
// Preconditions: Receives a daily report
// Postconditions: Returns a multi line summary ordered the way the report is
func FormatReport(report shared.DailyReport) string {
	var response strings.Builder
	response.WriteString(fmt.Sprintf("Results for %s (%d bets tracked):\n", report.Date, report.TotalBets))
	for i, expert := range report.Experts {
		line := expert.Overall
		response.WriteString(fmt.Sprintf("%d. %s: %d-%d", i+1, expert.Expert, line.Wins, line.Losses))
		if line.Pushes > 0 {
			response.WriteString(fmt.Sprintf("-%d", line.Pushes))
		}
		if line.Graded() > 0 {
			response.WriteString(fmt.Sprintf(" (%.0f%%)", line.Accuracy()*100))
		}
		if line.Unresolved > 0 {
			response.WriteString(fmt.Sprintf(", %d unresolved", line.Unresolved))
		}
		response.WriteString("\n")
	}
	return response.String()
}

// Helper function to convert configured team entries into registry extras
func teamExtras(cfg *config.Config) []teams.Extra {
	var extras []teams.Extra
	for _, team := range cfg.Teams {
		extras = append(extras, teams.Extra{
			Sport:   shared.Sport(strings.ToUpper(team.Sport)),
			Name:    team.Name,
			Aliases: team.Aliases,
		})
	}
	return extras
}
