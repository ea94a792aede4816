package cleanup

import (
	"context"
	"testing"

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

func TestOrphanSweepRemovesDanglingRows(t *testing.T) {
	conn := setupDB(t)

	post := database.Post{UUID: "keep", Title: "Kept", Content: "Body", Category: database.CategoryTechnology}
	if err := conn.Sql().Create(&post).Error; err != nil {
		t.Fatalf("create post: %v", err)
	}

	tag := database.Tag{Name: "go"}
	if err := conn.Sql().Create(&tag).Error; err != nil {
		t.Fatalf("create tag: %v", err)
	}

	rows := []database.Comment{
		{UUID: "c-live", PostID: post.ID, Name: "Reader", Email: "r@example.com", Content: "Still valid"},
		{UUID: "c-orphan-1", PostID: post.ID + 1000, Name: "Ghost", Email: "g@example.com", Content: "Post gone"},
		{UUID: "c-orphan-2", PostID: post.ID + 1001, Name: "Ghost", Email: "g@example.com", Content: "Post gone"},
	}
	if err := conn.Sql().Create(&rows).Error; err != nil {
		t.Fatalf("create comments: %v", err)
	}

	links := []database.PostTag{
		{PostID: post.ID, TagID: tag.ID},
		{PostID: post.ID + 1000, TagID: tag.ID},
	}
	if err := conn.Sql().Create(&links).Error; err != nil {
		t.Fatalf("create tag links: %v", err)
	}

	report, err := MakeOrphans(conn).Run(context.Background())
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}

	if report.Comments != 2 {
		t.Fatalf("expected 2 orphaned comments removed, got %d", report.Comments)
	}

	if report.PostTags != 1 {
		t.Fatalf("expected 1 orphaned tag link removed, got %d", report.PostTags)
	}

	var remaining int64
	conn.Sql().Model(&database.Comment{}).Count(&remaining)
	if remaining != 1 {
		t.Fatalf("expected the live comment to survive, got %d rows", remaining)
	}
}

func TestOrphanSweepOnCleanDatabase(t *testing.T) {
	conn := setupDB(t)

	report, err := MakeOrphans(conn).Run(context.Background())
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}

	if report.Comments != 0 || report.PostTags != 0 {
		t.Fatalf("expected nothing removed, got %+v", report)
	}
}
