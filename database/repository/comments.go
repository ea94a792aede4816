package repository

import (
	"fmt"

	"github.com/DCSlucifer/quickblog-backend/database"
	"github.com/DCSlucifer/quickblog-backend/pkg/gorm"
	"github.com/google/uuid"
)

type Comments struct {
	DB *database.Connection
}

// CommentWithPost enriches a comment with its post's headline fields for the
// moderation listing.
type CommentWithPost struct {
	database.Comment `gorm:"embedded"`
	PostTitle        string `gorm:"column:post_title"`
	PostUUID         string `gorm:"column:post_uuid"`
}

func (c Comments) Create(attrs database.CommentAttrs) (*database.Comment, error) {
	comment := database.Comment{
		UUID:    uuid.NewString(),
		PostID:  attrs.PostID,
		Name:    attrs.Name,
		Email:   attrs.Email,
		Content: attrs.Content,
	}

	if result := c.DB.Sql().Create(&comment); gorm.HasDbIssues(result.Error) {
		return nil, fmt.Errorf("issue creating comment: %s", result.Error)
	}

	return &comment, nil
}

// ApprovedFor returns the public comments of one post, newest first. Pending
// comments stay invisible until a moderator approves them.
func (c Comments) ApprovedFor(postID uint64) ([]database.Comment, error) {
	var comments []database.Comment

	result := c.DB.Sql().
		Where("post_id = ? AND is_approved = ?", postID, true).
		Order("created_at DESC, id DESC").
		Find(&comments)

	if gorm.HasDbIssues(result.Error) {
		return nil, fmt.Errorf("issue fetching comments: %s", result.Error)
	}

	return comments, nil
}

func (c Comments) FindBy(commentUUID string) *database.Comment {
	comment := database.Comment{}

	result := c.DB.Sql().
		Where("uuid = ?", commentUUID).
		First(&comment)

	if gorm.HasDbIssues(result.Error) {
		return nil
	}

	return &comment
}

func (c Comments) Approve(comment *database.Comment) error {
	comment.IsApproved = true

	result := c.DB.Sql().
		Model(comment).
		Update("is_approved", true)

	if gorm.HasDbIssues(result.Error) {
		return fmt.Errorf("issue approving comment [%s]: %s", comment.UUID, result.Error)
	}

	return nil
}

func (c Comments) Delete(comment *database.Comment) error {
	if result := c.DB.Sql().Delete(&database.Comment{}, comment.ID); gorm.HasDbIssues(result.Error) {
		return fmt.Errorf("issue deleting comment [%s]: %s", comment.UUID, result.Error)
	}

	return nil
}

// Search lists comments for moderation with optional approval, post and
// date-range filters, newest first, each joined with its post's headline.
func (c Comments) Search(attrs database.CommentSearchAttrs) ([]CommentWithPost, error) {
	query := c.DB.Sql().
		Model(&database.Comment{}).
		Select("comments.*, posts.title AS post_title, posts.uuid AS post_uuid").
		Joins("LEFT JOIN posts ON posts.id = comments.post_id")

	if attrs.Status != nil {
		query.Where("comments.is_approved = ?", *attrs.Status)
	}

	if attrs.PostUUID != "" {
		query.Where("posts.uuid = ?", attrs.PostUUID)
	}

	if attrs.StartDate != nil {
		query.Where("comments.created_at >= ?", *attrs.StartDate)
	}

	if attrs.EndDate != nil {
		query.Where("comments.created_at <= ?", *attrs.EndDate)
	}

	var rows []CommentWithPost

	result := query.
		Order("comments.created_at DESC, comments.id DESC").
		Scan(&rows)

	if gorm.HasDbIssues(result.Error) {
		return nil, fmt.Errorf("issue searching comments: %s", result.Error)
	}

	return rows, nil
}

func (c Comments) Count() (int64, error) {
	var total int64

	if result := c.DB.Sql().Model(&database.Comment{}).Count(&total); gorm.HasDbIssues(result.Error) {
		return 0, result.Error
	}

	return total, nil
}
