/* report.go
 * Contains the logic for generating daily accuracy reports from graded bets
 * Authors: Zachary Bower
 */

package logic

import (
	"sort"
	"time"

	"bet-tracker/api/shared"
)

// Function to generate the accuracy report for a slate date
// Preconditions: Receives the date the report covers and every bet tracked for that date,
// graded or not. PENDING bets count as unresolved since the report is a snapshot
// Postconditions: Returns a DailyReport with per expert and per sport records, experts
// sorted by graded win rate then name
func BuildReport(date string, bets []shared.Bet) shared.DailyReport {
	report := shared.DailyReport{
		Date:        date,
		GeneratedAt: time.Now(),
		TotalBets:   len(bets),
	}

	byExpert := make(map[string]*shared.ExpertRecord)
	for _, bet := range bets {
		record, ok := byExpert[bet.ExpertName]
		if !ok {
			record = &shared.ExpertRecord{
				Expert:  bet.ExpertName,
				BySport: make(map[shared.Sport]shared.RecordLine),
			}
			byExpert[bet.ExpertName] = record
		}

		record.Overall = tally(record.Overall, bet.Outcome)
		record.BySport[bet.Sport] = tally(record.BySport[bet.Sport], bet.Outcome)
		report.Overall = tally(report.Overall, bet.Outcome)
	}

	for _, record := range byExpert {
		report.Experts = append(report.Experts, *record)
	}
	sort.Slice(report.Experts, func(i, j int) bool {
		a, b := report.Experts[i], report.Experts[j]
		if a.Overall.Accuracy() != b.Overall.Accuracy() {
			return a.Overall.Accuracy() > b.Overall.Accuracy()
		}
		return a.Expert < b.Expert
	})

	return report
}

// Function to tally one expert's record over any set of their bets, used for the
// all time record lookup
// Preconditions: Receives the expert's name and their bets
// Postconditions: Returns the expert's record with per sport breakdowns
func BuildExpertRecord(expert string, bets []shared.Bet) shared.ExpertRecord {
	record := shared.ExpertRecord{
		Expert:  expert,
		BySport: make(map[shared.Sport]shared.RecordLine),
	}
	for _, bet := range bets {
		record.Overall = tally(record.Overall, bet.Outcome)
		record.BySport[bet.Sport] = tally(record.BySport[bet.Sport], bet.Outcome)
	}
	return record
}

// Helper function to add one outcome to a record line
// Preconditions: Receives the current line and a bet outcome
// Postconditions: Returns the line with the outcome counted. PENDING counts as unresolved
func tally(line shared.RecordLine, outcome shared.Outcome) shared.RecordLine {
	switch outcome {
	case shared.OutcomeWin:
		line.Wins++
	case shared.OutcomeLoss:
		line.Losses++
	case shared.OutcomePush:
		line.Pushes++
	default:
		line.Unresolved++
	}
	return line
}
