// Package matching ranks careers by skill overlap.
package matching

import (
	"sort"
	"strings"

	"github.com/krishna0743/careerguid-ai/internal/careers"
)

// Result is a ranked career suggestion. Score is always positive for real
// matches, so it is omitted only from the no-match placeholder.
type Result struct {
	Career    string `json:"career"`
	Category  string `json:"category"`
	Education string `json:"education"`
	Score     int    `json:"score,omitempty"`
}

// NoMatch is returned when nothing in the dataset overlaps a query.
var NoMatch = Result{
	Career:    careers.NotAvailable,
	Category:  careers.NotAvailable,
	Education: careers.NotAvailable,
}

// ParseSkills turns a comma separated query into a token set.
func ParseSkills(query string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, token := range careers.Tokenize(query) {
		set[token] = struct{}{}
	}
	return set
}

// Match scores every record against the query and returns at most topK
// results ordered by score. Records with equal scores keep dataset order.
func Match(store *careers.Store, query string, topK int) []Result {
	results := make([]Result, 0)
	if store == nil || topK < 1 {
		return results
	}

	wanted := ParseSkills(query)
	if len(wanted) == 0 {
		return results
	}

	for _, rec := range store.Records() {
		overlap := 0
		for token := range rec.Skills() {
			if _, ok := wanted[token]; ok {
				overlap++
			}
		}
		if overlap == 0 {
			continue
		}

		results = append(results, Result{
			Career:    rec.CareerName(),
			Category:  rec.CategoryName(),
			Education: rec.EducationName(),
			Score:     overlap,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > topK {
		results = results[:topK]
	}

	return results
}

// JoinSkills renders extracted skills the way they are fed back into Match.
func JoinSkills(skills []string) string {
	return strings.Join(skills, ", ")
}
