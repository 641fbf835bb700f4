/* bot.go
 * Contains logic used for creating the bot and dispatching commands. Requires a discord bot token and ApiPtr,
 * both of which are passed in from main.go
 * Authors: Zachary Bower
 */

package bot

import (
	"fmt"
	"strings"

	"bet-tracker/api/api"

	"github.com/bwmarrin/discordgo"
)

type Bot struct {
	BotToken string
	APIPtr   *api.API
}

func NewBot(botToken string, apiPtr *api.API) (*Bot, error) {
	if botToken == "" {
		return nil, fmt.Errorf("botToken is required but none was provided")
	}

	return &Bot{
		BotToken: botToken,
		APIPtr:   apiPtr,
	}, nil
}

// newMessageHandler dispatches a message to the matching command handler
// Preconditions: Receives a session, the message and the bot's own user id
// Postconditions: The command's response is sent to the channel the command was run in
func (b *Bot) newMessageHandler(session DiscordSession, message *discordgo.MessageCreate, botUserID string) {
	// To prevent bot from responding to its own message, if the message author id matches the bot's then just return
	if message.Author.ID == botUserID {
		return
	}

	// respond to user message if it contains one of the following commands
	switch {
	case startsWith(message.Content, "$help"):
		b.helpMessageHandler(session, message)

	case startsWith(message.Content, "$track"):
		b.trackHandler(session, message)

	case startsWith(message.Content, "$verify"):
		b.verifyHandler(session, message)

	case startsWith(message.Content, "$report"):
		b.reportHandler(session, message)

	case startsWith(message.Content, "$record"):
		b.recordHandler(session, message)
	}
}

// Helper function to check if a string starts with a given substring
// Preconditions: Recieves an input string and a substring
// Postconditions: Returns true if the substring is at the start of the string, else returns false
func startsWith(inputString string, substring string) bool {
	return strings.HasPrefix(inputString, substring)
}
