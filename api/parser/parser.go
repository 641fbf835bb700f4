/* parser.go
 * Contains the pick parser: turns one raw expert pick string into zero or one structured Bet.
 * Classification precedence is fixed: TOTAL, then SPREAD, then MONEYLINE, then PROP. The
 * over/under patterns are the most syntactically specific so they are checked first; a
 * configured prop stat keyword after the number moves an over/under pick from TOTAL to PROP.
 * Anything ambiguous is rejected with a reason code, a wrong pick is worse than no pick
 * Authors: Zachary Bower
 */

package parser

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"bet-tracker/api/shared"
	"bet-tracker/api/teams"
)

// Parser converts raw pick text into Bets. It is stateless apart from the read only
// registry and keyword table, so one Parser may be shared by any number of goroutines
type Parser struct {
	registry   *teams.Registry
	propStats  map[string]string // keyword -> canonical stat field
	statOrder  []string          // keywords longest first, for greedy matching
	cutoffHour int
}

// New creates a Parser. propStats maps stat keywords ("rush yds") to canonical stat
// fields ("rushing_yards"); cutoffHour is the local hour before which a pick is
// assumed to refer to the previous day's slate
func New(registry *teams.Registry, propStats map[string]string, cutoffHour int) *Parser {
	order := make([]string, 0, len(propStats))
	for keyword := range propStats {
		order = append(order, keyword)
	}
	// Longest keyword first so "receiving yards" wins over "yards"
	sort.Slice(order, func(i, j int) bool {
		if len(order[i]) != len(order[j]) {
			return len(order[i]) > len(order[j])
		}
		return order[i] < order[j]
	})
	return &Parser{
		registry:   registry,
		propStats:  propStats,
		statOrder:  order,
		cutoffHour: cutoffHour,
	}
}

var (
	reOverUnder = regexp.MustCompile(`\b(over|under|ov|un|o/u)\s*(\d+(?:\.\d+)?)\b`)
	reSigned    = regexp.MustCompile(`[+-]\d+(?:\.\d+)?`)
	reMoneyline = regexp.MustCompile(`\bml\b|\bmoneyline\b|\bmoney line\b`)
	reISODate   = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)
	reUSDate    = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})(?:/(\d{2,4}))?\b`)
	// Markets the settlement rules cannot express. Settling a first half, first five
	// innings or team total line against a full game final score would fabricate results
	reUnsupported = regexp.MustCompile(`\btt\b|\bteam total\b|\bf5\b|\b1h\b|\bfirst half\b|\b1st half\b`)
	reDecorative  = regexp.MustCompile(`[^a-zA-Z0-9 +\-./&'@,:]+`)
	reWhitespace  = regexp.MustCompile(`\s+`)
)

// Parse converts one raw pick into a Bet. expertName and postedAt are metadata from
// the scraping collaborator; hint, when not UNKNOWN, restricts team resolution to one
// sport. Multi pick blocks are rejected whole, this function never returns "the first"
// of several bets in a block
func (p *Parser) Parse(rawText string, expertName string, postedAt time.Time, hint shared.Sport) (shared.Bet, error) {
	normalized := normalize(rawText)
	if normalized == "" {
		return shared.Bet{}, shared.NewParseError(shared.ReasonEmptyText, "pick text is empty after normalization")
	}
	lower := strings.ToLower(normalized)

	// Explicit dates are extracted and blanked out before any numeric matching so the
	// day component of 2025-09-18 is never mistaken for a spread line
	gameDate, lower, normalized := extractDate(lower, normalized, postedAt, p.cutoffHour)

	if reUnsupported.MatchString(lower) {
		return shared.Bet{}, shared.NewParseError(shared.ReasonUnsupportedMarket, "partial game and team total markets cannot be settled: %q", rawText)
	}

	overUnders := reOverUnder.FindAllStringSubmatchIndex(lower, -1)
	spreads := spreadMatches(lower)
	moneylines := reMoneyline.FindAllStringIndex(lower, -1)

	total := len(overUnders) + len(spreads) + len(moneylines)
	if total > 1 {
		return shared.Bet{}, shared.NewParseError(shared.ReasonMultiplePicks, "text contains %d bet patterns, expected exactly one", total)
	}

	var bet shared.Bet
	var err error
	switch {
	case len(overUnders) == 1:
		bet, err = p.parseOverUnder(lower, normalized, overUnders[0], hint)
	case len(spreads) == 1:
		bet, err = p.parseSpread(lower, normalized, spreads[0], hint)
	case len(moneylines) == 1:
		bet, err = p.parseMoneyline(normalized, moneylines[0], hint)
	default:
		bet, err = p.classifyBare(rawText, lower, normalized, hint)
	}
	if err != nil {
		return shared.Bet{}, err
	}

	bet.ExpertName = expertName
	bet.GameDate = gameDate
	bet.RawText = strings.TrimSpace(rawText)
	bet.Outcome = shared.OutcomePending
	return bet, nil
}

// parseOverUnder handles both TOTAL and PROP bets. The pick is a PROP when a
// configured stat keyword follows the number, otherwise a game TOTAL
func (p *Parser) parseOverUnder(lower, normalized string, match []int, hint shared.Sport) (shared.Bet, error) {
	keyword := lower[match[2]:match[3]]
	rawLine := lower[match[4]:match[5]]
	prefix := strings.TrimSpace(normalized[:match[0]])
	suffix := strings.ToLower(strings.TrimSpace(normalized[match[1]:]))

	line, err := strconv.ParseFloat(rawLine, 64)
	if err != nil {
		return shared.Bet{}, shared.NewParseError(shared.ReasonMissingLine, "unparseable line %q", rawLine)
	}

	var side shared.Side
	switch keyword {
	case "over", "ov":
		side = shared.SideOver
	case "under", "un":
		side = shared.SideUnder
	default: // bare "o/u" names a line but not a direction
		return shared.Bet{}, shared.NewParseError(shared.ReasonUnknownBetType, "total line without an over or under side")
	}

	if _, stat, ok := p.findStatKeyword(suffix); ok {
		return p.buildProp(prefix, stat, line, side, hint)
	}

	subject, opponent, sport, err := p.resolveGameTeams(prefix, hint)
	if err != nil {
		return shared.Bet{}, err
	}
	return shared.Bet{
		Sport:    sport,
		BetType:  shared.BetTotal,
		Subject:  subject,
		Opponent: opponent,
		Line:     line,
		HasLine:  true,
		Side:     side,
	}, nil
}

// buildProp assembles a PROP bet. The player name is taken from the tail of the
// prefix; player identities are not canonicalized beyond whitespace cleanup because
// no roster table exists, the stat lookup at settlement time is the authority
func (p *Parser) buildProp(prefix, stat string, line float64, side shared.Side, hint shared.Sport) (shared.Bet, error) {
	player := playerName(prefix)
	if player == "" {
		return shared.Bet{}, shared.NewParseError(shared.ReasonUnknownBetType, "prop bet without a player name")
	}

	sport := hint
	if sport == "" || sport == shared.SportUnknown {
		sport = statSport(stat)
	}
	if sport == shared.SportUnknown {
		return shared.Bet{}, shared.NewParseError(shared.ReasonUnknownSport, "cannot determine sport for %s prop on %q", stat, player)
	}

	return shared.Bet{
		Sport:   sport,
		BetType: shared.BetProp,
		Subject: player,
		Stat:    stat,
		Line:    line,
		HasLine: true,
		Side:    side,
	}, nil
}

// parseSpread handles signed line bets, e.g. "Toronto Blue Jays -1.5 Run Line"
func (p *Parser) parseSpread(lower, normalized string, match []int, hint shared.Sport) (shared.Bet, error) {
	rawLine := lower[match[0]:match[1]]
	line, err := strconv.ParseFloat(rawLine, 64)
	if err != nil {
		return shared.Bet{}, shared.NewParseError(shared.ReasonMissingLine, "unparseable spread line %q", rawLine)
	}

	prefix := strings.TrimSpace(normalized[:match[0]])
	subject, opponent, sport, err := p.resolveGameTeams(prefix, hint)
	if err != nil {
		return shared.Bet{}, err
	}
	return shared.Bet{
		Sport:    sport,
		BetType:  shared.BetSpread,
		Subject:  subject,
		Opponent: opponent,
		Line:     line,
		HasLine:  true,
	}, nil
}

// classifyBare handles text with no line pattern at all. A team name followed by a
// lone odds price and nothing else is a moneyline pick ("Yankees -110"); a stat
// keyword without a threshold is a broken prop; anything else is unclassifiable
func (p *Parser) classifyBare(rawText, lower, normalized string, hint shared.Sport) (shared.Bet, error) {
	if _, _, ok := p.findStatKeyword(lower); ok {
		return shared.Bet{}, shared.NewParseError(shared.ReasonMissingLine, "prop stat mentioned without a threshold line: %q", rawText)
	}
	if odds := oddsMatches(lower); len(odds) == 1 {
		return p.parseMoneyline(normalized, odds[0], hint)
	}
	return shared.Bet{}, shared.NewParseError(shared.ReasonUnknownBetType, "no spread, moneyline, total or prop pattern found: %q", rawText)
}

// parseMoneyline handles bare team picks, e.g. "Oakland Athletics Moneyline"
func (p *Parser) parseMoneyline(normalized string, match []int, hint shared.Sport) (shared.Bet, error) {
	prefix := strings.TrimSpace(normalized[:match[0]])
	subject, opponent, sport, err := p.resolveGameTeams(prefix, hint)
	if err != nil {
		return shared.Bet{}, err
	}
	return shared.Bet{
		Sport:    sport,
		BetType:  shared.BetMoneyline,
		Subject:  subject,
		Opponent: opponent,
	}, nil
}

// resolveGameTeams resolves the team mention(s) in the text before a bet pattern.
// "Tulsa at Oklahoma State" yields both teams; a single mention yields only the
// subject. When two teams are present and the pattern is team-anchored (spread,
// moneyline) the second mention is the subject because the line is adjacent to it
func (p *Parser) resolveGameTeams(prefix string, hint shared.Sport) (subject, opponent string, sport shared.Sport, err error) {
	first, second, hasTwo := splitMatchup(prefix)
	if !hasTwo {
		team, err := p.resolveMention(prefix, hint)
		if err != nil {
			return "", "", "", err
		}
		return team.Name, "", team.Sport, nil
	}

	firstTeam, errFirst := p.resolveMention(first, hint)
	if errFirst == nil {
		// Use the first team's sport to pin down the second
		secondTeam, err := p.resolveMention(second, firstTeam.Sport)
		if err != nil {
			return "", "", "", err
		}
		return secondTeam.Name, firstTeam.Name, firstTeam.Sport, nil
	}

	// First mention alone was ambiguous or unknown; try anchoring on the second
	secondTeam, errSecond := p.resolveMention(second, hint)
	if errSecond != nil {
		return "", "", "", errFirst
	}
	firstTeam, err = p.resolveMention(first, secondTeam.Sport)
	if err != nil {
		return "", "", "", err
	}
	return secondTeam.Name, firstTeam.Name, secondTeam.Sport, nil
}

// resolveMention resolves one team mention, retrying progressively shorter suffixes
// of the text so filler like "lean:" or "best bet" ahead of the team name is skipped.
// An ambiguous suffix stops the search immediately, shortening it further could only
// manufacture a false certainty
func (p *Parser) resolveMention(mention string, hint shared.Sport) (teams.Team, error) {
	fields := strings.Fields(strings.Trim(mention, " ,.:"))
	if len(fields) == 0 {
		return teams.Team{}, shared.NewParseError(shared.ReasonUnknownTeam, "no team mention found")
	}

	start := 0
	if len(fields) > 5 {
		start = len(fields) - 5
	}
	var lastErr error
	for i := start; i < len(fields); i++ {
		candidate := strings.Trim(strings.Join(fields[i:], " "), " ,.:")
		team, err := p.registry.Resolve(candidate, hint)
		if err == nil {
			return team, nil
		}
		lastErr = err
		if parseErr, ok := err.(*shared.ParseError); ok && parseErr.Reason == shared.ReasonAmbiguousTeam {
			return teams.Team{}, err
		}
	}
	return teams.Team{}, lastErr
}

// findStatKeyword scans text for the longest configured prop stat keyword
func (p *Parser) findStatKeyword(text string) (keyword, stat string, ok bool) {
	cleaned := " " + strings.Trim(reWhitespace.ReplaceAllString(strings.ReplaceAll(text, ",", " "), " "), " ") + " "
	for _, candidate := range p.statOrder {
		if strings.Contains(cleaned, " "+candidate+" ") {
			return candidate, p.propStats[candidate], true
		}
	}
	return "", "", false
}

// spreadMatches returns the index pairs of signed numbers that look like bet lines.
// Signed whole numbers of 100 or more are American odds prices and are discarded,
// they are never the bet's own line
func spreadMatches(lower string) [][]int {
	var lines [][]int
	for _, match := range reSigned.FindAllStringIndex(lower, -1) {
		value, err := strconv.ParseFloat(lower[match[0]:match[1]], 64)
		if err != nil {
			continue
		}
		if math.Abs(value) >= 100 && value == math.Trunc(value) {
			continue
		}
		lines = append(lines, match)
	}
	return lines
}

// oddsMatches returns the index pairs of signed numbers that look like American
// odds prices, the complement of spreadMatches
func oddsMatches(lower string) [][]int {
	var odds [][]int
	for _, match := range reSigned.FindAllStringIndex(lower, -1) {
		value, err := strconv.ParseFloat(lower[match[0]:match[1]], 64)
		if err != nil {
			continue
		}
		if math.Abs(value) >= 100 && value == math.Trunc(value) {
			odds = append(odds, match)
		}
	}
	return odds
}

// splitMatchup splits "X at Y" style text into the two team mentions
func splitMatchup(text string) (first, second string, ok bool) {
	lower := strings.ToLower(text)
	for _, sep := range []string{" at ", " @ ", " vs. ", " vs ", " v. "} {
		if idx := strings.Index(lower, sep); idx >= 0 {
			first = strings.TrimSpace(text[:idx])
			second = strings.TrimSpace(text[idx+len(sep):])
			if first != "" && second != "" {
				return first, second, true
			}
		}
	}
	return "", "", false
}

// playerName takes the trailing tokens of a prefix as the player's name. Names on
// pick lines are at most a few tokens ("D. Achane", "Ja'Marr Chase")
func playerName(prefix string) string {
	fields := strings.Fields(strings.Trim(prefix, " ,.:"))
	if len(fields) == 0 {
		return ""
	}
	if len(fields) > 3 {
		fields = fields[len(fields)-3:]
	}
	return strings.Join(fields, " ")
}

// statSport infers the sport a stat belongs to when the caller gave no hint. Stats
// that exist in several sports (points, assists) stay UNKNOWN and fail the parse
func statSport(stat string) shared.Sport {
	switch stat {
	case "receiving_yards", "rushing_yards", "passing_yards", "touchdowns":
		return shared.SportNFL
	case "home_runs", "strikeouts", "hits", "rbis", "total_bases":
		return shared.SportMLB
	case "goals", "saves", "shots_on_goal":
		return shared.SportNHL
	default:
		return shared.SportUnknown
	}
}

// normalize strips decorative characters and collapses whitespace. The original raw
// text is retained on the Bet for auditing, normalization only feeds the matcher
func normalize(raw string) string {
	cleaned := strings.NewReplacer("“", "\"", "”", "\"", "’", "'", "–", "-", "—", "-").Replace(raw)
	cleaned = reDecorative.ReplaceAllString(cleaned, " ")
	cleaned = reWhitespace.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

// extractDate finds an explicit date in the text and blanks it out of both views of
// the string. Without an explicit date the pick refers to postedAt's calendar day,
// rolled back one day for early morning posts about the previous night's slate
func extractDate(lower, normalized string, postedAt time.Time, cutoffHour int) (string, string, string) {
	if match := reISODate.FindStringSubmatchIndex(lower); match != nil {
		year, _ := strconv.Atoi(lower[match[2]:match[3]])
		month, _ := strconv.Atoi(lower[match[4]:match[5]])
		day, _ := strconv.Atoi(lower[match[6]:match[7]])
		if month >= 1 && month <= 12 && day >= 1 && day <= 31 {
			lower = blank(lower, match[0], match[1])
			normalized = blank(normalized, match[0], match[1])
			return fmt.Sprintf("%04d-%02d-%02d", year, month, day), lower, normalized
		}
	}
	if match := reUSDate.FindStringSubmatchIndex(lower); match != nil {
		month, _ := strconv.Atoi(lower[match[2]:match[3]])
		day, _ := strconv.Atoi(lower[match[4]:match[5]])
		if month >= 1 && month <= 12 && day >= 1 && day <= 31 {
			year := postedAt.Year()
			if match[6] >= 0 {
				year, _ = strconv.Atoi(lower[match[6]:match[7]])
				if year < 100 {
					year += 2000
				}
			}
			lower = blank(lower, match[0], match[1])
			normalized = blank(normalized, match[0], match[1])
			return fmt.Sprintf("%04d-%02d-%02d", year, month, day), lower, normalized
		}
	}

	date := postedAt
	if postedAt.Hour() < cutoffHour {
		date = date.AddDate(0, 0, -1)
	}
	return date.Format("2006-01-02"), lower, normalized
}

func blank(s string, from, to int) string {
	return s[:from] + strings.Repeat(" ", to-from) + s[to:]
}
