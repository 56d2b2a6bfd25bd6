// Package ranking derives the transient 1..N positions shown on the
// index page. Rank 1 is the highest-rated movie, rank N the lowest;
// the values live only on the in-memory records for one response.
package ranking

import (
	"reelrank/internal/movies"
)

// Rank assigns dense ranks to the given slice, which must already be
// ordered by rating ascending (unrated first, as the store returns it).
// With N movies the last element gets rank 1 and the first gets rank N.
func Rank(all []movies.Movie) {
	n := len(all)
	for i := range all {
		rank := n - i
		all[i].Ranking = &rank
	}
}
