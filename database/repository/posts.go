package repository

import (
	"fmt"
	"strings"

	"github.com/DCSlucifer/quickblog-backend/database"
	"github.com/DCSlucifer/quickblog-backend/database/repository/pagination"
	"github.com/DCSlucifer/quickblog-backend/database/repository/queries"
	"github.com/DCSlucifer/quickblog-backend/pkg/gorm"
	"github.com/google/uuid"
)

type Posts struct {
	DB *database.Connection
}

func (p Posts) Create(attrs database.PostAttrs) (*database.Post, error) {
	post := database.Post{
		UUID:          uuid.NewString(),
		AuthorID:      attrs.AuthorID,
		Title:         attrs.Title,
		Subtitle:      attrs.Subtitle,
		Content:       attrs.Content,
		Category:      attrs.Category,
		CoverImageURL: attrs.CoverImageURL,
		IsPublished:   attrs.IsPublished,
	}

	if result := p.DB.Sql().Create(&post); gorm.HasDbIssues(result.Error) {
		return nil, fmt.Errorf("issue creating post [%s]: %s", attrs.Title, result.Error)
	}

	if err := p.SyncTags(&post, attrs.Tags); err != nil {
		return nil, fmt.Errorf("issue tagging post [%s]: %s", attrs.Title, err.Error())
	}

	return &post, nil
}

func (p Posts) Update(post *database.Post, attrs database.PostAttrs) (*database.Post, error) {
	post.Title = attrs.Title
	post.Subtitle = attrs.Subtitle
	post.Content = attrs.Content
	post.Category = attrs.Category
	post.IsPublished = attrs.IsPublished

	if attrs.CoverImageURL != "" {
		post.CoverImageURL = attrs.CoverImageURL
	}

	if result := p.DB.Sql().Save(post); gorm.HasDbIssues(result.Error) {
		return nil, fmt.Errorf("issue updating post [%s]: %s", post.UUID, result.Error)
	}

	if attrs.Tags != nil {
		if err := p.SyncTags(post, attrs.Tags); err != nil {
			return nil, fmt.Errorf("issue re-tagging post [%s]: %s", post.UUID, err.Error())
		}
	}

	return post, nil
}

// SyncTags upserts the given tag names and replaces the post's tag set.
func (p Posts) SyncTags(post *database.Post, names []string) error {
	var tags []database.Tag
	seen := map[string]bool{}

	for _, name := range names {
		clean := strings.ToLower(strings.TrimSpace(name))
		if clean == "" || seen[clean] {
			continue
		}

		seen[clean] = true

		tag := database.Tag{Name: clean}
		if result := p.DB.Sql().Where("name = ?", clean).FirstOrCreate(&tag); gorm.HasDbIssues(result.Error) {
			return fmt.Errorf("upsert tag [%s]: %s", clean, result.Error)
		}

		tags = append(tags, tag)
	}

	if err := p.DB.Sql().Model(post).Association("Tags").Replace(tags); err != nil {
		return fmt.Errorf("replace tags: %s", err.Error())
	}

	post.Tags = tags

	return nil
}

func (p Posts) FindBy(postUUID string) *database.Post {
	post := database.Post{}

	result := p.DB.Sql().
		Preload("Author").
		Preload("Tags").
		Where("uuid = ?", postUUID).
		First(&post)

	if gorm.HasDbIssues(result.Error) {
		return nil
	}

	return &post
}

// Delete removes the post first and its comments second. The two steps are
// deliberately independent: a crash in between leaves orphaned comments,
// which the cleanup job sweeps later.
func (p Posts) Delete(post *database.Post) error {
	if result := p.DB.Sql().Delete(&database.Post{}, post.ID); gorm.HasDbIssues(result.Error) {
		return fmt.Errorf("issue deleting post [%s]: %s", post.UUID, result.Error)
	}

	if result := p.DB.Sql().Where("post_id = ?", post.ID).Delete(&database.PostTag{}); gorm.IsFoundButHasErrors(result.Error) {
		return fmt.Errorf("issue unlinking tags for post [%s]: %s", post.UUID, result.Error)
	}

	if result := p.DB.Sql().Where("post_id = ?", post.ID).Delete(&database.Comment{}); gorm.IsFoundButHasErrors(result.Error) {
		return fmt.Errorf("issue deleting comments for post [%s]: %s", post.UUID, result.Error)
	}

	return nil
}

// TogglePublish flips the draft flag. Concurrent toggles on the same post
// race at the storage layer; last write wins.
func (p Posts) TogglePublish(post *database.Post) (bool, error) {
	post.IsPublished = !post.IsPublished

	if result := p.DB.Sql().Model(post).Update("is_published", post.IsPublished); gorm.HasDbIssues(result.Error) {
		return false, fmt.Errorf("issue toggling post [%s]: %s", post.UUID, result.Error)
	}

	return post.IsPublished, nil
}

func (p Posts) Count() (int64, error) {
	var total int64

	if result := p.DB.Sql().Model(&database.Post{}).Count(&total); gorm.HasDbIssues(result.Error) {
		return 0, result.Error
	}

	return total, nil
}

func (p Posts) CountDrafts() (int64, error) {
	var total int64

	result := p.DB.Sql().
		Model(&database.Post{}).
		Where("is_published = ?", false).
		Count(&total)

	if gorm.HasDbIssues(result.Error) {
		return 0, result.Error
	}

	return total, nil
}

func (p Posts) Recent(limit int) ([]database.Post, error) {
	var posts []database.Post

	result := p.DB.Sql().
		Preload("Author").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&posts)

	if gorm.HasDbIssues(result.Error) {
		return nil, result.Error
	}

	return posts, nil
}

// GetPosts executes the listing plan: filter, count on the same predicate,
// then fetch one relevance- or field-ordered page enriched with the derived
// comment count and the denormalized author.
func (p Posts) GetPosts(filters *queries.PostFilters, paginate pagination.Paginate) (*pagination.Pagination[database.Post], error) {
	if filters == nil {
		filters = &queries.PostFilters{}
	}

	if author := filters.GetAuthor(); author != "" && len(filters.AuthorIDs) == 0 {
		ids, err := p.resolveAuthorIDs(author)

		if err != nil {
			return nil, err
		}

		// An author lookup with no matches is an empty page, not an error.
		if len(ids) == 0 {
			paginate.SetNumItems(0)
			return pagination.MakePagination([]database.Post{}, paginate), nil
		}

		filters.AuthorIDs = ids
	}

	query := p.DB.Sql().Model(&database.Post{})

	queries.ApplyPostFilters(filters, query)

	if filters.Published != nil {
		query.Where("posts.is_published = ?", *filters.Published)
	}

	var total int64
	if err := pagination.Count(&total, query, p.DB.GetSession(), "posts.id"); err != nil {
		return nil, fmt.Errorf("issue counting posts: %s", err.Error())
	}

	paginate.SetNumItems(total)

	sort := filters.GetSort()

	selects := "posts.*, " + queries.CommentCountSelect + " AS comment_count"
	var args []any

	if sort == queries.SortRelevance {
		expr, scoreArgs := queries.RelevanceSelect(filters.Terms())
		selects += ", " + expr + " AS relevance"
		args = scoreArgs
	}

	var posts []database.Post

	result := query.
		Select(selects, args...).
		Preload("Author").
		Preload("Tags").
		Order(queries.OrderFor(sort)).
		Limit(paginate.GetLimit()).
		Offset(paginate.GetOffset()).
		Find(&posts)

	if gorm.HasDbIssues(result.Error) {
		return nil, fmt.Errorf("issue fetching posts: %s", result.Error)
	}

	return pagination.MakePagination(posts, paginate), nil
}

// resolveAuthorIDs accepts either a direct author UUID or a case-insensitive
// name substring and resolves it to the matching user ids.
func (p Posts) resolveAuthorIDs(author string) ([]uint64, error) {
	var ids []uint64

	pattern := "%" + strings.ToLower(author) + "%"

	result := p.DB.Sql().
		Model(&database.User{}).
		Where("uuid = ? OR LOWER(name) LIKE ?", author, pattern).
		Pluck("id", &ids)

	if gorm.HasDbIssues(result.Error) {
		return nil, fmt.Errorf("issue resolving author [%s]: %s", author, result.Error)
	}

	return ids, nil
}
