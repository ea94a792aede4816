package queries

import (
	"strings"

	"gorm.io/gorm"
)

// CommentCountSelect derives the comment tally for each post. It counts all
// comments, approved or not, matching the admin aggregation.
const CommentCountSelect = "(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id)"

// ApplyPostFilters narrows the given query. The master table is "posts".
// Author resolution happens upstream: only the resolved ids are used here.
func ApplyPostFilters(filters *PostFilters, query *gorm.DB) {
	if filters == nil {
		return
	}

	for _, term := range filters.Terms() {
		pattern := "%" + strings.ToLower(term) + "%"

		query.Where(
			"(LOWER(posts.title) LIKE ? OR LOWER(posts.subtitle) LIKE ? OR LOWER(posts.content) LIKE ?)",
			pattern,
			pattern,
			pattern,
		)
	}

	if category := filters.GetCategory(); category != "" {
		query.Where("posts.category = ?", category)
	}

	if tags := filters.GetTags(); len(tags) > 0 {
		query.Where(
			"posts.id IN (SELECT post_tags.post_id FROM post_tags JOIN tags ON tags.id = post_tags.tag_id WHERE LOWER(tags.name) IN ?)",
			tags,
		)
	}

	if len(filters.AuthorIDs) > 0 {
		query.Where("posts.author_id IN ?", filters.AuthorIDs)
	}
}

// RelevanceSelect builds the text-match score expression for the given
// terms: a title hit is worth two points per term, a subtitle or body hit
// one point each.
func RelevanceSelect(terms []string) (string, []any) {
	var score []string
	var args []any

	for _, term := range terms {
		pattern := "%" + strings.ToLower(term) + "%"

		score = append(score,
			"(CASE WHEN LOWER(posts.title) LIKE ? THEN 2 ELSE 0 END)",
			"(CASE WHEN LOWER(posts.subtitle) LIKE ? THEN 1 ELSE 0 END)",
			"(CASE WHEN LOWER(posts.content) LIKE ? THEN 1 ELSE 0 END)",
		)

		args = append(args, pattern, pattern, pattern)
	}

	if len(score) == 0 {
		return "0", nil
	}

	return "(" + strings.Join(score, " + ") + ")", args
}

// OrderFor maps a resolved sort key to its ORDER BY clause. Ties always
// break on the post id so a fixed plan yields a stable order.
func OrderFor(sort string) string {
	switch sort {
	case SortOldest:
		return "posts.created_at ASC, posts.id ASC"
	case SortMostComments:
		return "comment_count DESC, posts.id DESC"
	case SortRelevance:
		return "relevance DESC, posts.id DESC"
	default:
		return "posts.created_at DESC, posts.id DESC"
	}
}
