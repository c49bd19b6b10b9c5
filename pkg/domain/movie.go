package domain

// Candidate represents a movie found on the metadata service, before any
// matching against the local library. Identity is the external metadata ID.
type Candidate struct {
	ID       int64
	Title    string
	Year     int // 0 when release date is unknown
	Rating   float64
	Overview string
}

// Suggestion is a raw AI-proposed title/year pair. It carries no identity
// and must be resolved to a Candidate before use.
type Suggestion struct {
	Title string
	Year  int // 0 when the model didn't provide a year
}

// MatchTier indicates how confident the library match is
type MatchTier string

// match tiers, exact always outranks fuzzy for the same candidate
const (
	TierExact MatchTier = "exact"
	TierFuzzy MatchTier = "fuzzy"
)

// Provenance indicates which side of the pipeline produced an item
type Provenance string

// provenance values
const (
	SourceAI      Provenance = "ai"
	SourceKeyword Provenance = "keyword"
)

// MatchedItem is a Candidate bound to a confirmed local-library entry
type MatchedItem struct {
	Candidate
	LibraryKey   string // rating key of the library entry
	LibraryTitle string
	Tier         MatchTier
	Source       Provenance
}

// Collection represents the state of a named library collection
type Collection struct {
	Name     string
	Keys     []string // library keys of current members, in collection order
	Promoted bool
}

// HasKey reports whether the collection already contains the library key
func (c *Collection) HasKey(key string) bool {
	for _, k := range c.Keys {
		if k == key {
			return true
		}
	}
	return false
}
