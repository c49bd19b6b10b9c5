package curator

import (
	"strings"
	"unicode"

	"github.com/umputun/reelscope/pkg/config"
)

// stop-words dropped when deriving keywords from a collection name
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "of": {}, "and": {}, "or": {},
	"for": {}, "in": {}, "on": {}, "at": {}, "to": {}, "with": {},
	"from": {}, "by": {},
}

// deriveKeywords produces the search keywords for a theme. Explicit
// keywords win, normalized and deduped in author order. Without them the
// collection name is tokenized with stop-words removed, falling back to
// the whole name when nothing survives.
func deriveKeywords(spec config.ThemeSpec) []string {
	if len(spec.Keywords) > 0 {
		return dedupNormalized(spec.Keywords)
	}

	name := strings.ToLower(strings.TrimSpace(spec.CollectionName))
	var tokens []string
	for _, tok := range strings.Fields(name) {
		tok = strings.Trim(tok, `.,!?:;"'()[]`)
		if !hasAlnum(tok) {
			continue
		}
		if _, stop := stopWords[tok]; stop {
			continue
		}
		tokens = append(tokens, tok)
	}

	if len(tokens) == 0 {
		if name == "" {
			return nil
		}
		return []string{name}
	}
	return dedupNormalized(tokens)
}

// hasAlnum reports whether the token carries at least one letter or digit,
// filtering out leftovers like "&" or "-"
func hasAlnum(tok string) bool {
	for _, r := range tok {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func dedupNormalized(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, kw := range in {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if _, ok := seen[kw]; ok {
			continue
		}
		seen[kw] = struct{}{}
		out = append(out, kw)
	}
	return out
}
