package queries

import (
	"strings"

	"github.com/DCSlucifer/quickblog-backend/pkg/portal"
)

const (
	SortNewest       = "newest"
	SortOldest       = "oldest"
	SortMostComments = "most-comments"
	SortRelevance    = "relevance"
)

type PostFilters struct {
	Text     string
	Category string
	Tags     []string // Matches posts whose tag set intersects the given list.
	Author   string   // Either an author UUID or a name substring.
	Sort     string

	// Published narrows on the draft flag when non-nil. The public listing
	// always pins it to true; the admin listing may leave it open.
	Published *bool

	// AuthorIDs holds the resolved author identities. The repository fills
	// it in before the filters reach the query plan.
	AuthorIDs []uint64
}

func (f PostFilters) GetText() string {
	return f.sanitiseString(f.Text)
}

func (f PostFilters) GetCategory() string {
	return strings.TrimSpace(f.Category)
}

func (f PostFilters) GetAuthor() string {
	return f.sanitiseString(f.Author)
}

func (f PostFilters) GetTags() []string {
	var tags []string

	for _, tag := range f.Tags {
		if clean := f.sanitiseString(tag); clean != "" {
			tags = append(tags, clean)
		}
	}

	return tags
}

// GetSort resolves the effective sort key. Relevance is the default when a
// free-text query is present, newest otherwise; unknown keys fall back to
// the same defaults, and relevance without a query degrades to newest.
func (f PostFilters) GetSort() string {
	sort := f.sanitiseString(f.Sort)
	hasText := f.GetText() != ""

	switch sort {
	case SortOldest, SortMostComments:
		return sort
	case SortNewest:
		return SortNewest
	case SortRelevance:
		if hasText {
			return SortRelevance
		}

		return SortNewest
	}

	if hasText {
		return SortRelevance
	}

	return SortNewest
}

// IsPhrase reports whether the free-text query is wrapped in double quotes,
// which forces exact phrase matching instead of per-term matching.
func (f PostFilters) IsPhrase() bool {
	text := f.GetText()

	return len(text) >= 2 && strings.HasPrefix(text, `"`) && strings.HasSuffix(text, `"`)
}

// Terms returns the match terms derived from the free-text query: the bare
// phrase for quoted queries, the individual words otherwise.
func (f PostFilters) Terms() []string {
	text := f.GetText()
	if text == "" {
		return nil
	}

	if f.IsPhrase() {
		phrase := strings.TrimSpace(strings.Trim(text, `"`))
		if phrase == "" {
			return nil
		}

		return []string{phrase}
	}

	return portal.FilterNonEmpty(strings.Fields(text))
}

func (f PostFilters) sanitiseString(seed string) string {
	str := portal.MakeStringable(seed)

	return strings.TrimSpace(str.ToLower())
}
