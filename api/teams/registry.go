/* registry.go
 * Contains the team alias registry used to resolve free text team mentions to a canonical
 * (sport, team) pair. The registry is built once at startup and is read only after that,
 * so it is safe for concurrent reads without any locking
 * Authors: Zachary Bower
 */

package teams

import (
	"sort"
	"strings"

	"bet-tracker/api/shared"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Team is a resolved canonical team identity
type Team struct {
	Sport shared.Sport
	Name  string
}

// Registry holds the alias tables for every supported sport. Resolution order within
// a sport is exact alias, substring of the canonical name, then fuzzy match
type Registry struct {
	aliases    map[shared.Sport]map[string]string // lowercased alias -> canonical name
	canonicals map[shared.Sport][]string          // lowercased canonical names, sorted
	display    map[shared.Sport]map[string]string // lowercased canonical name -> display name
}

// Extra adds or overrides one alias entry when building a registry
type Extra struct {
	Sport   shared.Sport
	Name    string
	Aliases []string
}

// resolution sports in fixed order so behaviour is deterministic
var allSports = []shared.Sport{shared.SportMLB, shared.SportNFL, shared.SportNHL, shared.SportCFB}

// NewRegistry builds the registry from the built in tables plus any extra entries
// from configuration. The returned registry must not be mutated
func NewRegistry(extras []Extra) *Registry {
	r := &Registry{
		aliases:    make(map[shared.Sport]map[string]string),
		canonicals: make(map[shared.Sport][]string),
		display:    make(map[shared.Sport]map[string]string),
	}
	for _, sport := range allSports {
		r.aliases[sport] = make(map[string]string)
		r.display[sport] = make(map[string]string)
	}

	for _, entry := range defaultTeams {
		r.add(entry.sport, entry.name, entry.aliases)
	}
	for _, extra := range extras {
		r.add(extra.Sport, extra.Name, extra.Aliases)
	}

	for _, sport := range allSports {
		sort.Strings(r.canonicals[sport])
	}
	return r
}

func (r *Registry) add(sport shared.Sport, name string, aliases []string) {
	if _, ok := r.aliases[sport]; !ok {
		return
	}
	lower := strings.ToLower(name)
	r.display[sport][lower] = name
	r.canonicals[sport] = append(r.canonicals[sport], lower)
	r.aliases[sport][lower] = name
	for _, alias := range aliases {
		r.aliases[sport][strings.ToLower(alias)] = name
	}
}

// Resolve maps a free text mention to exactly one canonical team. With a sport hint
// only that sport's table is consulted. Without a hint every sport is tried and the
// mention is accepted only if exactly one sport yields exactly one team; anything
// else is a ParseError, since a wrongly attributed pick is worse than no pick
func (r *Registry) Resolve(mention string, hint shared.Sport) (Team, error) {
	needle := strings.ToLower(strings.TrimSpace(mention))
	if needle == "" {
		return Team{}, shared.NewParseError(shared.ReasonUnknownTeam, "empty team mention")
	}

	if hint != "" && hint != shared.SportUnknown {
		candidates := r.candidates(needle, hint)
		switch len(candidates) {
		case 0:
			return Team{}, shared.NewParseError(shared.ReasonUnknownTeam, "no %s team matches '%s'", hint, mention)
		case 1:
			return Team{Sport: hint, Name: candidates[0]}, nil
		default:
			return Team{}, shared.NewParseError(shared.ReasonAmbiguousTeam, "'%s' matches multiple %s teams: %s", mention, hint, strings.Join(candidates, ", "))
		}
	}

	var hits []Team
	for _, sport := range allSports {
		for _, name := range r.candidates(needle, sport) {
			hits = append(hits, Team{Sport: sport, Name: name})
		}
	}
	switch len(hits) {
	case 0:
		return Team{}, shared.NewParseError(shared.ReasonUnknownTeam, "no team matches '%s' in any sport", mention)
	case 1:
		return hits[0], nil
	default:
		var names []string
		for _, hit := range hits {
			names = append(names, string(hit.Sport)+" "+hit.Name)
		}
		return Team{}, shared.NewParseError(shared.ReasonAmbiguousTeam, "'%s' is ambiguous: %s", mention, strings.Join(names, ", "))
	}
}

// candidates returns the distinct canonical display names a mention could mean
// within one sport
func (r *Registry) candidates(needle string, sport shared.Sport) []string {
	// Exact alias hit is always unambiguous within a sport
	if name, ok := r.aliases[sport][needle]; ok {
		return []string{name}
	}

	// Substring of a canonical name, e.g. "blue jays" in "toronto blue jays"
	seen := make(map[string]bool)
	var matches []string
	for _, canonical := range r.canonicals[sport] {
		if strings.Contains(canonical, needle) {
			name := r.display[sport][canonical]
			if !seen[name] {
				seen[name] = true
				matches = append(matches, name)
			}
		}
	}
	if len(matches) > 0 {
		return matches
	}

	// Fuzzy fallback for typos. Short mentions are excluded because subsequence
	// matching is far too generous on two or three characters
	if len(needle) < 4 {
		return nil
	}
	ranked := fuzzy.RankFind(needle, r.canonicals[sport])
	if len(ranked) == 0 {
		return nil
	}
	// Best rank is the closest canonical name
	sort.Sort(ranked)
	return []string{r.display[sport][ranked[0].Target]}
}

// Canonical reports whether name is the canonical display name of a team in the
// given sport. Used by the results collaborator to sanity check mapped team names
func (r *Registry) Canonical(sport shared.Sport, name string) bool {
	_, ok := r.display[sport][strings.ToLower(name)]
	return ok
}

// TeamNames returns the canonical display names for one sport, sorted
func (r *Registry) TeamNames(sport shared.Sport) []string {
	var names []string
	for _, canonical := range r.canonicals[sport] {
		names = append(names, r.display[sport][canonical])
	}
	return names
}
