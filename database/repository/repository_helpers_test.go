package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/DCSlucifer/quickblog-backend/database"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *database.Connection {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(database.GetSchemaModels()...); err != nil {
		t.Fatalf("migrate schema: %v", err)
	}

	return database.NewConnectionFromGorm(db)
}

// seedPost inserts a post directly, with an explicit creation time so
// ordering assertions stay deterministic.
func seedPost(t *testing.T, conn *database.Connection, post database.Post, createdAt time.Time) database.Post {
	t.Helper()

	if post.UUID == "" {
		post.UUID = fmt.Sprintf("%s-%d", t.Name(), time.Now().UnixNano())
	}

	if post.Category == "" {
		post.Category = database.CategoryTechnology
	}

	if post.Content == "" {
		post.Content = "body"
	}

	post.CreatedAt = createdAt
	post.UpdatedAt = createdAt

	if err := conn.Sql().Create(&post).Error; err != nil {
		t.Fatalf("seed post: %v", err)
	}

	return post
}

func seedComment(t *testing.T, conn *database.Connection, postID uint64, approved bool) database.Comment {
	t.Helper()

	comment := database.Comment{
		UUID:       fmt.Sprintf("%s-c-%d", t.Name(), time.Now().UnixNano()),
		PostID:     postID,
		Name:       "Reader",
		Email:      "reader@example.com",
		Content:    "Nice one",
		IsApproved: approved,
	}

	if err := conn.Sql().Create(&comment).Error; err != nil {
		t.Fatalf("seed comment: %v", err)
	}

	return comment
}

func boolPtr(v bool) *bool {
	return &v
}
