package schema

import (
	"sort"

	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// Dangling describes a reference whose sink is not a table of any database.
type Dangling struct {
	Database  string
	Reference Reference
	// Suggestion is the closest known table name, or empty when there are no tables.
	Suggestion string
}

// DanglingReferences reports references whose sink names no extracted table.
// Such references are still rendered; this is only a diagnostic.
func DanglingReferences(dbs []Database) []Dangling {
	known := make(map[string]bool)
	var names []string
	for _, db := range dbs {
		for _, t := range db.Tables {
			if !known[t.Name] {
				known[t.Name] = true
				names = append(names, t.Name)
			}
		}
	}
	sort.Strings(names)

	var result []Dangling
	for _, db := range dbs {
		for _, ref := range db.References {
			if known[ref.Sink] {
				continue
			}
			result = append(result, Dangling{
				Database:   db.Name,
				Reference:  ref,
				Suggestion: closest(ref.Sink, names),
			})
		}
	}
	return result
}

// closest returns the candidate with the smallest edit distance to name.
// Candidates must be sorted so ties resolve alphabetically.
func closest(name string, candidates []string) string {
	best := ""
	bestDistance := -1
	for _, c := range candidates {
		d := levenshtein.DistanceForStrings([]rune(name), []rune(c), levenshtein.DefaultOptions)
		if bestDistance < 0 || d < bestDistance {
			best, bestDistance = c, d
		}
	}
	return best
}
