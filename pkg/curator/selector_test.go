package curator

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/reelscope/pkg/domain"
)

func matchWithRating(key string, rating float64, source domain.Provenance) domain.MatchedItem {
	return domain.MatchedItem{
		Candidate:  domain.Candidate{Title: "movie " + key, Rating: rating},
		LibraryKey: key,
		Tier:       domain.TierExact,
		Source:     source,
	}
}

func TestSelectItems_RatingFilterAndCap(t *testing.T) {
	var fallback []domain.MatchedItem
	for i, rating := range []float64{8, 7, 6.5, 5, 9, 6, 4, 7.5} {
		fallback = append(fallback, matchWithRating(fmt.Sprintf("k%d", i), rating, domain.SourceKeyword))
	}

	minRating := 6.0
	got := selectItems(nil, fallback, &minRating, 5)

	require.Len(t, got, 5)
	ratings := make([]float64, len(got))
	for i, m := range got {
		ratings[i] = m.Rating
	}
	assert.Equal(t, []float64{9, 8, 7.5, 7, 6.5}, ratings, "below-minimum dropped, best five by rating")
}

func TestSelectItems_AIFirstInOrder(t *testing.T) {
	ai := []domain.MatchedItem{
		matchWithRating("a1", 6.1, domain.SourceAI),
		matchWithRating("a2", 7.9, domain.SourceAI),
	}
	fallback := []domain.MatchedItem{
		matchWithRating("f1", 9.5, domain.SourceKeyword),
	}

	got := selectItems(ai, fallback, nil, 10)
	require.Len(t, got, 3)

	// AI picks keep their resolved order ahead of higher-rated fallback
	assert.Equal(t, "a1", got[0].LibraryKey)
	assert.Equal(t, "a2", got[1].LibraryKey)
	assert.Equal(t, "f1", got[2].LibraryKey)
}

func TestSelectItems_DedupByLibraryKey(t *testing.T) {
	ai := []domain.MatchedItem{matchWithRating("same", 7, domain.SourceAI)}
	fallback := []domain.MatchedItem{
		matchWithRating("same", 7, domain.SourceKeyword),
		matchWithRating("other", 8, domain.SourceKeyword),
	}

	got := selectItems(ai, fallback, nil, 10)
	require.Len(t, got, 2)
	assert.Equal(t, domain.SourceAI, got[0].Source, "first occurrence wins")
}

func TestSelectItems_Empty(t *testing.T) {
	assert.Empty(t, selectItems(nil, nil, nil, 10))
	minRating := 9.9
	got := selectItems(nil, []domain.MatchedItem{matchWithRating("low", 5, domain.SourceKeyword)}, &minRating, 10)
	assert.Empty(t, got)
}
