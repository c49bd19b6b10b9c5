package curator

import (
	"sort"

	"github.com/umputun/reelscope/pkg/domain"
)

// selectItems picks the final collection members. AI matches come first in
// their resolved order, then keyword-pool matches by rating descending.
// Items below minRating are dropped, duplicates by library key keep their
// first (highest priority) occurrence, and the result is cut to maxItems.
func selectItems(aiMatches, fallbackMatches []domain.MatchedItem, minRating *float64, maxItems int) []domain.MatchedItem {
	fallback := make([]domain.MatchedItem, len(fallbackMatches))
	copy(fallback, fallbackMatches)
	sort.SliceStable(fallback, func(i, j int) bool { return fallback[i].Rating > fallback[j].Rating })

	seen := map[string]struct{}{}
	var result []domain.MatchedItem
	for _, m := range append(append([]domain.MatchedItem{}, aiMatches...), fallback...) {
		if minRating != nil && m.Rating < *minRating {
			continue
		}
		if _, dup := seen[m.LibraryKey]; dup {
			continue
		}
		seen[m.LibraryKey] = struct{}{}
		result = append(result, m)
		if maxItems > 0 && len(result) >= maxItems {
			break
		}
	}
	return result
}
