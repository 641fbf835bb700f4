/* external.go
 * Contains the logic used to fetch final scores from the ESPN scoreboard api, and return the results to the
 * higher level functions
 * Authors: Zachary Bower
 */

package external

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"bet-tracker/api/shared"
	"bet-tracker/config"

	"golang.org/x/time/rate"
)

// Client fetches scoreboards from the ESPN site API. Requests are spaced out by a
// rate limiter so a full day's fetch across every sport stays polite
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Function to create an ESPN client from config
// Preconditions: Receives ESPN config with base url, request interval and timeout
// Postconditions: Returns a Client ready to fetch scoreboards
func NewClient(cfg config.ESPNConfig) *Client {
	interval := time.Duration(cfg.RequestIntervalMs) * time.Millisecond
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		limiter:    rate.NewLimiter(rate.Every(interval), 1),
	}
}

// Function to fetch every game result for a sport on a given date
// Preconditions: Receives context, a known sport and a date string in YYYY-MM-DD form
// Postconditions: Returns a slice of GameResults sorted by matchup, or an error if it occurs
func (c *Client) FetchResults(ctx context.Context, sport shared.Sport, date string) ([]shared.GameResult, error) {
	path, ok := sportPaths[sport]
	if !ok {
		return nil, fmt.Errorf("no scoreboard path for sport %q", sport)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	body, err := c.getScoreboard(ctx, path, date)
	if err != nil {
		return nil, fmt.Errorf("error fetching %s scoreboard: %w", sport, err)
	}

	results, err := ParseScoreboard(body, sport, date)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s scoreboard: %w", sport, err)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Ref() < results[j].Ref()
	})
	return results, nil
}

// Function to fetch the results for a date across all sports that have scoreboards
// Preconditions: Receives context and a date string in YYYY-MM-DD form
// Postconditions: Returns all GameResults for the date across every sport; sports with
// an empty slate simply contribute no results. A failed sport fails the whole fetch
func (c *Client) FetchAllResults(ctx context.Context, date string) ([]shared.GameResult, error) {
	var all []shared.GameResult
	for _, sport := range []shared.Sport{shared.SportMLB, shared.SportNFL, shared.SportNHL, shared.SportCFB} {
		results, err := c.FetchResults(ctx, sport, date)
		if err != nil {
			return nil, err
		}
		all = append(all, results...)
	}
	return all, nil
}

// Function to fetch the raw scoreboard json for a sport path and date
// Preconditions: Receives context, sport path segment (e.g. "baseball/mlb") and a YYYY-MM-DD date
// Postconditions: Returns the response body as a string or errors
func (c *Client) getScoreboard(ctx context.Context, path string, date string) (string, error) {
	endpoint := fmt.Sprintf("%s/%s/scoreboard", c.baseURL, path)
	parsedUrl, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid url: %w", err)
	}

	// The scoreboard api takes dates as YYYYMMDD
	params := parsedUrl.Query()
	params.Set("dates", strings.ReplaceAll(date, "-", ""))
	parsedUrl.RawQuery = params.Encode()

	request, err := http.NewRequestWithContext(ctx, "GET", parsedUrl.String(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	request.Header.Set("User-Agent", "BetTrackerScoreFetcher/1.0")
	request.Header.Set("Accept-Encoding", "gzip")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch scoreboard, status code: %d", response.StatusCode)
	}

	// Get json from response
	var body []byte
	if response.Header.Get("Content-Encoding") == "gzip" {
		reader, err := gzip.NewReader(response.Body)
		if err != nil {
			return "", fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer reader.Close()
		body, err = io.ReadAll(reader)
		if err != nil {
			return "", err
		}
	} else {
		body, err = io.ReadAll(response.Body)
		if err != nil {
			return "", err
		}
	}

	return string(body), nil
}
