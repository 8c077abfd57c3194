package search

import (
	"errors"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mmcdole/bookcase/internal/domain"
)

// ErrNoMatch is returned when no id or name resembles the query
var ErrNoMatch = errors.New("no matching name")

// ResolveID maps free text to a lookup id.
//
// Order of precedence:
//  1. "" or "any" (any case) resolves to domain.AnyID
//  2. an exact id
//  3. an exact name, ignoring case
//  4. the closest fuzzy name match, ties broken by name order
func ResolveID(query string, lookup domain.Lookup) (string, error) {
	q := strings.TrimSpace(query)
	if q == "" || strings.EqualFold(q, domain.AnyID) {
		return domain.AnyID, nil
	}

	if lookup.Has(q) {
		return q, nil
	}

	opts := lookup.Options()
	names := make([]string, len(opts))
	for i, opt := range opts {
		if strings.EqualFold(opt.Name, q) {
			return opt.ID, nil
		}
		names[i] = opt.Name
	}

	ranks := fuzzy.RankFindFold(q, names)
	if len(ranks) == 0 {
		return "", ErrNoMatch
	}

	// names is already in Options order, so OriginalIndex breaks ties
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})

	return opts[ranks[0].OriginalIndex].ID, nil
}
