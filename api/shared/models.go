/* models.go
 * This file contains the enums, structs and helper functions that are shared between sub packages
 * Authors: Zachary Bower
 */

package shared

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sport identifies which league a bet or game result belongs to
type Sport string

const (
	SportMLB     Sport = "MLB"
	SportNFL     Sport = "NFL"
	SportNHL     Sport = "NHL"
	SportCFB     Sport = "CFB"
	SportUnknown Sport = "UNKNOWN"
)

// BetType identifies the market a bet was placed on
type BetType string

const (
	BetSpread    BetType = "SPREAD"
	BetMoneyline BetType = "MONEYLINE"
	BetTotal     BetType = "TOTAL"
	BetProp      BetType = "PROP"
)

// Side is the over/under direction for TOTAL and PROP bets
type Side string

const (
	SideOver  Side = "OVER"
	SideUnder Side = "UNDER"
	SideNone  Side = ""
)

// Outcome is the settlement state of a bet. A bet starts PENDING and is
// only ever moved to another state by the verification engine
type Outcome string

const (
	OutcomePending    Outcome = "PENDING"
	OutcomeWin        Outcome = "WIN"
	OutcomeLoss       Outcome = "LOSS"
	OutcomePush       Outcome = "PUSH"
	OutcomeUnresolved Outcome = "UNRESOLVED"
)

// GameStatus is the lifecycle state of a game result. Settlement is only
// legal against StatusFinal
type GameStatus string

const (
	StatusScheduled  GameStatus = "SCHEDULED"
	StatusInProgress GameStatus = "IN_PROGRESS"
	StatusFinal      GameStatus = "FINAL"
)

// Bet is one structured pick produced by the parser. Outcome and
// VerificationNote are empty until the verification engine settles it
type Bet struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	ExpertName       string             `bson:"expert_name"`
	Sport            Sport              `bson:"sport"`
	BetType          BetType            `bson:"bet_type"`
	Subject          string             `bson:"subject"`
	Opponent         string             `bson:"opponent,omitempty"`
	Stat             string             `bson:"stat,omitempty"` // canonical stat field for PROP bets, e.g. "receiving_yards"
	Line             float64            `bson:"line,omitempty"`
	HasLine          bool               `bson:"has_line"`
	Side             Side               `bson:"side,omitempty"`
	GameDate         string             `bson:"game_date"` // YYYY-MM-DD
	RawText          string             `bson:"raw_text"`
	Outcome          Outcome            `bson:"outcome"`
	VerificationNote string             `bson:"verification_note,omitempty"`
	ResultRef        string             `bson:"result_ref,omitempty"` // identity of the GameResult used to settle
}

// GameResult is a final (or not yet final) game record supplied by the
// results collaborator. Team names are canonical, matching the alias registry.
// PlayerStats maps canonical player name -> stat field -> value, and is only
// populated when the upstream API reports box score data
type GameResult struct {
	Sport       Sport                         `bson:"sport"`
	Date        string                        `bson:"date"` // YYYY-MM-DD
	HomeTeam    string                        `bson:"home_team"`
	AwayTeam    string                        `bson:"away_team"`
	HomeScore   float64                       `bson:"home_score"`
	AwayScore   float64                       `bson:"away_score"`
	Status      GameStatus                    `bson:"status"`
	PlayerStats map[string]map[string]float64 `bson:"player_stats,omitempty"`
}

// Ref returns a short identity string for a game result. This is recorded on
// settled bets so an auditor can locate the exact record that was used
func (g GameResult) Ref() string {
	return fmt.Sprintf("%s/%s/%s@%s", g.Sport, g.Date, g.AwayTeam, g.HomeTeam)
}

// RecordLine is a win/loss tally over some slice of graded bets
type RecordLine struct {
	Wins       int `bson:"wins" json:"wins"`
	Losses     int `bson:"losses" json:"losses"`
	Pushes     int `bson:"pushes" json:"pushes"`
	Unresolved int `bson:"unresolved" json:"unresolved"`
}

// Graded returns the number of bets that settled WIN or LOSS. Pushes and
// unresolved bets do not count towards accuracy
func (r RecordLine) Graded() int {
	return r.Wins + r.Losses
}

// Accuracy returns the win rate over graded bets, or 0 when nothing graded
func (r RecordLine) Accuracy() float64 {
	if r.Graded() == 0 {
		return 0
	}
	return float64(r.Wins) / float64(r.Graded())
}

// ExpertRecord is one expert's tally for a report, broken down by sport
type ExpertRecord struct {
	Expert  string               `bson:"expert" json:"expert"`
	Overall RecordLine           `bson:"overall" json:"overall"`
	BySport map[Sport]RecordLine `bson:"by_sport" json:"by_sport"`
}

// DailyReport is the accuracy report for one slate date
type DailyReport struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Date        string             `bson:"date" json:"date"` // YYYY-MM-DD
	GeneratedAt time.Time          `bson:"generated_at" json:"generated_at"`
	Experts     []ExpertRecord     `bson:"experts" json:"experts"`
	Overall     RecordLine         `bson:"overall" json:"overall"`
	TotalBets   int                `bson:"total_bets" json:"total_bets"`
}

// ParseReason is a machine readable reason code for a rejected pick
type ParseReason string

const (
	ReasonEmptyText         ParseReason = "empty_text"
	ReasonUnknownBetType    ParseReason = "unknown_bet_type"
	ReasonUnknownTeam       ParseReason = "unknown_team"
	ReasonAmbiguousTeam     ParseReason = "ambiguous_team"
	ReasonMissingLine       ParseReason = "missing_line"
	ReasonUnknownStat       ParseReason = "unknown_stat"
	ReasonUnknownSport      ParseReason = "unknown_sport"
	ReasonMultiplePicks     ParseReason = "multiple_picks"
	ReasonUnsupportedMarket ParseReason = "unsupported_market"
)

// ParseError is returned when a pick cannot be turned into exactly one Bet.
// Placeholder values are never synthesized; the pick is dropped by the caller
type ParseError struct {
	Reason ParseReason
	Detail string
}

func (e *ParseError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("parse error: %s", e.Reason)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Reason, e.Detail)
}

// NewParseError creates a ParseError with a formatted detail message
func NewParseError(reason ParseReason, format string, args ...interface{}) *ParseError {
	return &ParseError{Reason: reason, Detail: fmt.Sprintf(format, args...)}
}
