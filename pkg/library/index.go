package library

import (
	"strings"
	"unicode"

	"github.com/umputun/reelscope/pkg/domain"
)

// Index is an in-memory view of the library built for title matching.
// Entries are grouped by normalized title so exact matches are a map hit
// and fuzzy matching scans distinct titles, not every entry.
type Index struct {
	byTitle map[string][]Entry
	size    int
}

// NewIndex builds an index from library entries
func NewIndex(entries []Entry) *Index {
	idx := &Index{byTitle: make(map[string][]Entry, len(entries))}
	for _, e := range entries {
		norm := NormalizeTitle(e.Title)
		if norm == "" {
			continue
		}
		idx.byTitle[norm] = append(idx.byTitle[norm], e)
		idx.size++
	}
	return idx
}

// Size returns the number of indexed entries
func (idx *Index) Size() int { return idx.size }

// Match finds the library entry for a candidate title and year. Exact
// matches (same normalized title, year equal or absent on either side) win
// over fuzzy ones. Fuzzy matches need similarity at or above threshold and
// years within one of each other when both are known. Ties go to the
// higher-rated entry.
func (idx *Index) Match(title string, year int, threshold float64) (Entry, domain.MatchTier, bool) {
	norm := NormalizeTitle(title)
	if norm == "" {
		return Entry{}, "", false
	}

	if entries, ok := idx.byTitle[norm]; ok {
		if best, found := pickByYear(entries, year); found {
			return best, domain.TierExact, true
		}
	}

	// fuzzy pass over distinct normalized titles
	var best Entry
	bestScore := 0.0
	found := false
	for candTitle, entries := range idx.byTitle {
		score := Similarity(norm, candTitle)
		if score < threshold {
			continue
		}
		for _, e := range entries {
			if year > 0 && e.Year > 0 && absInt(year-e.Year) > 1 {
				continue
			}
			if !found || score > bestScore || (score == bestScore && e.Rating > best.Rating) {
				best, bestScore, found = e, score, true
			}
		}
	}
	if !found {
		return Entry{}, "", false
	}
	return best, domain.TierFuzzy, true
}

// pickByYear selects the exact-tier entry: year must be equal, or absent on
// either side. Among qualifying entries the higher rating wins.
func pickByYear(entries []Entry, year int) (Entry, bool) {
	var best Entry
	found := false
	for _, e := range entries {
		if year > 0 && e.Year > 0 && year != e.Year {
			continue
		}
		if !found || e.Rating > best.Rating {
			best, found = e, true
		}
	}
	return best, found
}

// leading articles dropped during normalization
var articles = map[string]struct{}{"the": {}, "a": {}, "an": {}}

// NormalizeTitle lowercases a title, drops parenthetical suffixes and
// punctuation, strips a leading article and collapses whitespace
func NormalizeTitle(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))

	// cut parentheticals like "(1982)" or "(director's cut)"
	if i := strings.IndexByte(s, '('); i > 0 {
		s = s[:i]
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-' || r == ':' || r == '/':
			b.WriteByte(' ')
		}
	}

	fields := strings.Fields(b.String())
	if len(fields) > 1 {
		if _, ok := articles[fields[0]]; ok {
			fields = fields[1:]
		}
	}
	return strings.Join(fields, " ")
}

// Similarity returns a 0..1 score based on Levenshtein distance over the
// longer string's length. Identical strings score 1.
func Similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	ra, rb := []rune(a), []rune(b)
	longest := len(ra)
	if len(rb) > longest {
		longest = len(rb)
	}
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein(ra, rb))/float64(longest)
}

// levenshtein computes edit distance with a single-row buffer
func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	row := make([]int, len(b)+1)
	for j := range row {
		row[j] = j
	}
	for i := 1; i <= len(a); i++ {
		prev := row[0]
		row[0] = i
		for j := 1; j <= len(b); j++ {
			cur := row[j]
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			row[j] = minInt(row[j]+1, minInt(row[j-1]+1, prev+cost))
			prev = cur
		}
	}
	return row[len(b)]
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
