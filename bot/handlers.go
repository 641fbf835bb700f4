/* handlers.go
 * Contains testable handler methods that accept DiscordSession interface
 * Authors: Zachary Bower
 */

package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"bet-tracker/api/api"
	"bet-tracker/api/shared"

	"github.com/bwmarrin/discordgo"
	"github.com/go-andiamo/splitter"
	"go.mongodb.org/mongo-driver/mongo"
)

// helpMessageHandler handles the $help command with a DiscordSession interface
func (b *Bot) helpMessageHandler(session DiscordSession, message *discordgo.MessageCreate) {
	var res strings.Builder
	res.WriteString("Bet Tracker Bot v1.0\n")
	res.WriteString("`$track \"expert name\" [sport] pick text`: Parses a pick and tracks it. Expert names that contain spaces need to be encased in \" (e.g. \"Big Smokey Picks\"). The sport (MLB, NFL, NHL or CFB) is optional when the team or stat makes it obvious\n")
	res.WriteString("`$verify [date]`: Fetches final scores for the date (yyyy-mm-dd, defaults to yesterday), grades every tracked pick and posts the day's report\n")
	res.WriteString("`$report [date]`: Shows the stored report for the date without re-grading anything\n")
	res.WriteString("`$record \"expert name\"`: Shows an expert's all time record across every tracked pick\n")
	session.ChannelMessageSend(message.ChannelID, res.String())
}

// trackHandler handles the $track command with a DiscordSession interface
func (b *Bot) trackHandler(session DiscordSession, message *discordgo.MessageCreate) {
	args, err := splitArgs(message.Content)
	if err != nil || len(args) < 3 {
		session.ChannelMessageSend(message.ChannelID, "Usage: $track \"expert name\" [sport] pick text")
		return
	}

	expert := args[1]
	rest := args[2:]

	// An optional sport hint can come before the pick text
	hint := shared.SportUnknown
	if sport, ok := parseSport(rest[0]); ok {
		hint = sport
		rest = rest[1:]
	}
	if len(rest) == 0 {
		session.ChannelMessageSend(message.ChannelID, "Usage: $track \"expert name\" [sport] pick text")
		return
	}

	postedAt := message.Timestamp
	if postedAt.IsZero() {
		postedAt = time.Now()
	}

	bet, err := b.APIPtr.TrackPick(strings.Join(rest, " "), expert, postedAt, hint)
	if err != nil {
		var parseErr *shared.ParseError
		if errors.As(err, &parseErr) {
			session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("Could not track that pick (%s): %s", parseErr.Reason, parseErr.Detail))
			return
		}
		log.Println(err)
		session.ChannelMessageSend(message.ChannelID, "An error occured tracking the pick")
		return
	}

	session.ChannelMessageSend(message.ChannelID, api.SummarizeBet(bet))
}

// verifyHandler handles the $verify command with a DiscordSession interface
func (b *Bot) verifyHandler(session DiscordSession, message *discordgo.MessageCreate) {
	date, err := dateArg(message.Content)
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, "Dates need to be in yyyy-mm-dd form, e.g. $verify 2025-09-18")
		return
	}

	report, err := b.APIPtr.VerifyDate(context.Background(), date)
	if err != nil {
		log.Println(err)
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("An error occured verifying picks for %s", date))
		return
	}

	if report.TotalBets == 0 {
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("No picks tracked for %s", date))
		return
	}
	session.ChannelMessageSend(message.ChannelID, api.FormatReport(report))
}

// reportHandler handles the $report command with a DiscordSession interface
func (b *Bot) reportHandler(session DiscordSession, message *discordgo.MessageCreate) {
	date, err := dateArg(message.Content)
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, "Dates need to be in yyyy-mm-dd form, e.g. $report 2025-09-18")
		return
	}

	report, err := b.APIPtr.GetReport(date)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("No report stored for %s. Run $verify %s first", date, date))
			return
		}
		log.Println(err)
		session.ChannelMessageSend(message.ChannelID, "An error occured getting the report")
		return
	}

	session.ChannelMessageSend(message.ChannelID, api.FormatReport(report))
}

// recordHandler handles the $record command with a DiscordSession interface
func (b *Bot) recordHandler(session DiscordSession, message *discordgo.MessageCreate) {
	args, err := splitArgs(message.Content)
	if err != nil || len(args) < 2 {
		session.ChannelMessageSend(message.ChannelID, "Usage: $record \"expert name\"")
		return
	}
	expert := strings.Join(args[1:], " ")

	record, err := b.APIPtr.GetExpertRecord(expert)
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("No picks tracked for '%s'", expert))
		return
	}

	session.ChannelMessageSend(message.ChannelID, formatRecord(record))
}

// Helper function to render an expert's all time record with per sport lines
// Preconditions: Receives an expert record
// Postconditions: Returns a multi line summary, sports in a stable order
func formatRecord(record shared.ExpertRecord) string {
	var res strings.Builder
	overall := record.Overall
	res.WriteString(fmt.Sprintf("%s: %d-%d", record.Expert, overall.Wins, overall.Losses))
	if overall.Pushes > 0 {
		res.WriteString(fmt.Sprintf("-%d", overall.Pushes))
	}
	if overall.Graded() > 0 {
		res.WriteString(fmt.Sprintf(" (%.0f%%)", overall.Accuracy()*100))
	}
	res.WriteString("\n")

	var sports []string
	for sport := range record.BySport {
		sports = append(sports, string(sport))
	}
	sort.Strings(sports)
	for _, sport := range sports {
		line := record.BySport[shared.Sport(sport)]
		res.WriteString(fmt.Sprintf("- %s: %d-%d-%d\n", sport, line.Wins, line.Losses, line.Pushes))
	}
	return res.String()
}

// Helper function to split a command into args. We use splitter here instead of go's built in
// splitter because now we can have expert names that contain spaces e.g. "Big Smokey Picks"
// recognised as one arg not three
// Preconditions: Receives the raw message content
// Postconditions: Returns the args with surrounding quotes removed, or an error
func splitArgs(content string) ([]string, error) {
	spaceSplitter, err := splitter.NewSplitter(' ', splitter.DoubleQuotes, splitter.LeftRightDoubleDoubleQuotes)
	if err != nil {
		return nil, err
	}
	args, err := spaceSplitter.Split(content)
	if err != nil {
		return nil, err
	}

	cleaned := make([]string, 0, len(args))
	for _, arg := range args {
		arg = strings.ReplaceAll(arg, "\"", "")
		arg = strings.ReplaceAll(arg, "“", "")
		arg = strings.ReplaceAll(arg, "”", "")
		if arg != "" {
			cleaned = append(cleaned, arg)
		}
	}
	return cleaned, nil
}

// Helper function to get the date arg from a $verify or $report command
// Preconditions: Receives the raw message content
// Postconditions: Returns the date in yyyy-mm-dd form, defaulting to yesterday when the
// command has no arg, or an error for a malformed date
func dateArg(content string) (string, error) {
	fields := strings.Fields(content)
	if len(fields) < 2 {
		return time.Now().AddDate(0, 0, -1).Format("2006-01-02"), nil
	}

	if _, err := time.Parse("2006-01-02", fields[1]); err != nil {
		return "", err
	}
	return fields[1], nil
}

// Helper function to parse an optional sport hint token
// Preconditions: Receives one arg token
// Postconditions: Returns the sport and true, or false when the token is not a sport
func parseSport(token string) (shared.Sport, bool) {
	switch shared.Sport(strings.ToUpper(token)) {
	case shared.SportMLB:
		return shared.SportMLB, true
	case shared.SportNFL:
		return shared.SportNFL, true
	case shared.SportNHL:
		return shared.SportNHL, true
	case shared.SportCFB:
		return shared.SportCFB, true
	default:
		return shared.SportUnknown, false
	}
}
