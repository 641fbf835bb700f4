/* parser.go
 * Contains the logic used to parse ESPN scoreboard json into game results that other functions can use
 * Authors: Zachary Bower
 */

package external

import (
	"encoding/json"
	"fmt"
	"strconv"

	"bet-tracker/api/shared"
)

// Function to parse a scoreboard json document and return the day's game results
// Preconditions: Receives string containing scoreboard json, the sport it was fetched
// for and the date it was fetched for
// Postconditions: Returns a slice containing GameResults or an error that occurs
func ParseScoreboard(scoreboard string, sport shared.Sport, date string) ([]shared.GameResult, error) {
	var root map[string]interface{}
	if err := json.Unmarshal([]byte(scoreboard), &root); err != nil {
		return nil, fmt.Errorf("error parsing JSON: %w", err)
	}

	rawEvents, ok := root["events"].([]interface{})
	if !ok {
		return nil, fmt.Errorf("missing or invalid 'events' field")
	}

	// Iterate over all events in the scoreboard
	var results []shared.GameResult
	for _, event := range rawEvents {
		result, err := ParseEvent(event, sport, date)
		if err != nil {
			return nil, err
		}
		results = append(results, *result)
	}
	return results, nil
}

// Function to create a game result from a single scoreboard event
// Preconditions: Receives event interface, the sport and the date of the fetch
// Postconditions: Returns GameResult pointer populated with the final score and any
// player leader stats, or an error that occurs
func ParseEvent(event interface{}, sport shared.Sport, date string) (*shared.GameResult, error) {
	eventMap, ok := event.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("error mapping event interface")
	}

	// Each event carries exactly one competition, which holds the competitors and status
	competitionsRaw, ok := eventMap["competitions"].([]interface{})
	if !ok || len(competitionsRaw) == 0 {
		return nil, fmt.Errorf("missing or empty 'competitions' field")
	}
	competition, ok := competitionsRaw[0].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("error mapping competition interface")
	}

	status, err := parseStatus(competition)
	if err != nil {
		return nil, err
	}

	competitorsRaw, ok := competition["competitors"].([]interface{})
	if !ok || len(competitorsRaw) != 2 {
		return nil, fmt.Errorf("competitors requires exactly 2 values, recieved %d", len(competitorsRaw))
	}

	result := &shared.GameResult{
		Sport:       sport,
		Date:        date,
		Status:      status,
		PlayerStats: make(map[string]map[string]float64),
	}
	for _, competitorRaw := range competitorsRaw {
		name, score, homeAway, err := parseCompetitor(competitorRaw)
		if err != nil {
			return nil, err
		}
		switch homeAway {
		case "home":
			result.HomeTeam = name
			result.HomeScore = score
		case "away":
			result.AwayTeam = name
			result.AwayScore = score
		default:
			return nil, fmt.Errorf("unexpected homeAway value %q", homeAway)
		}
		parseLeaders(competitorRaw, result.PlayerStats)
	}

	if result.HomeTeam == "" || result.AwayTeam == "" {
		return nil, fmt.Errorf("event is missing a home or away competitor")
	}
	return result, nil
}

// Helper function to get the game status from a competition's status block
// Preconditions: Receives the competition map
// Postconditions: Returns the game status, falling back on the completed flag when the
// status name is not recognised, or an error if the block is malformed
func parseStatus(competition map[string]interface{}) (shared.GameStatus, error) {
	statusMap, ok := competition["status"].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("error mapping status interface")
	}
	typeMap, ok := statusMap["type"].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("error mapping status type interface")
	}

	if name, ok := typeMap["name"].(string); ok {
		if status, known := statusNames[name]; known {
			return status, nil
		}
	}

	completed, ok := typeMap["completed"].(bool)
	if !ok {
		return "", fmt.Errorf("error mapping completed interface")
	}
	if completed {
		return shared.StatusFinal, nil
	}
	return shared.StatusInProgress, nil
}

// Helper function to get a competitor's team name, score and side
// Preconditions: Receives a competitor interface
// Postconditions: Returns the team display name, its score and "home" or "away", or an error
func parseCompetitor(competitorRaw interface{}) (string, float64, string, error) {
	competitor, ok := competitorRaw.(map[string]interface{})
	if !ok {
		return "", 0, "", fmt.Errorf("error mapping competitor interface")
	}

	homeAway, ok := competitor["homeAway"].(string)
	if !ok {
		return "", 0, "", fmt.Errorf("error mapping homeAway interface")
	}

	teamMap, ok := competitor["team"].(map[string]interface{})
	if !ok {
		return "", 0, "", fmt.Errorf("error mapping team interface")
	}
	name, ok := teamMap["displayName"].(string)
	if !ok {
		return "", 0, "", fmt.Errorf("error mapping team displayName interface")
	}

	// Scores are strings in scoreboard json, and absent before a game starts
	score := 0.0
	if scoreStr, ok := competitor["score"].(string); ok && scoreStr != "" {
		parsed, err := strconv.ParseFloat(scoreStr, 64)
		if err != nil {
			return "", 0, "", fmt.Errorf("error parsing score %q: %w", scoreStr, err)
		}
		score = parsed
	}

	return name, score, homeAway, nil
}

// Helper function to collect a competitor's stat leaders into the player stat table.
// Leaders are best effort, a competitor without a leaders block is fine and unknown
// stat categories are skipped
// Preconditions: Receives a competitor interface and the stat table to fill
// Postconditions: The table gains one entry per recognised leader stat per player
func parseLeaders(competitorRaw interface{}, playerStats map[string]map[string]float64) {
	competitor, ok := competitorRaw.(map[string]interface{})
	if !ok {
		return
	}
	leadersRaw, ok := competitor["leaders"].([]interface{})
	if !ok {
		return
	}

	for _, categoryRaw := range leadersRaw {
		category, ok := categoryRaw.(map[string]interface{})
		if !ok {
			continue
		}
		categoryName, ok := category["name"].(string)
		if !ok {
			continue
		}
		statName, known := leaderStats[categoryName]
		if !known {
			continue
		}

		entriesRaw, ok := category["leaders"].([]interface{})
		if !ok {
			continue
		}
		for _, entryRaw := range entriesRaw {
			entry, ok := entryRaw.(map[string]interface{})
			if !ok {
				continue
			}
			value, ok := entry["value"].(float64)
			if !ok {
				continue
			}
			athlete, ok := entry["athlete"].(map[string]interface{})
			if !ok {
				continue
			}
			playerName, ok := athlete["displayName"].(string)
			if !ok {
				continue
			}

			if playerStats[playerName] == nil {
				playerStats[playerName] = make(map[string]float64)
			}
			playerStats[playerName][statName] = value
		}
	}
}
