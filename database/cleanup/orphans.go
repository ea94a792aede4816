package cleanup

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DCSlucifer/quickblog-backend/database"
	"github.com/DCSlucifer/quickblog-backend/pkg/gorm"
)

// Orphans sweeps rows left behind when a post delete got interrupted
// between removing the post and removing its dependants. Post deletion is
// deliberately not transactional, so this job is the safety net that
// restores referential consistency offline.
type Orphans struct {
	DB     *database.Connection
	Logger *slog.Logger
}

// Report counts what a sweep removed.
type Report struct {
	Comments int64
	PostTags int64
}

func MakeOrphans(db *database.Connection) *Orphans {
	return &Orphans{
		DB:     db,
		Logger: slog.Default(),
	}
}

// Run deletes comments and tag links whose post no longer exists.
func (o *Orphans) Run(ctx context.Context) (Report, error) {
	report := Report{}
	logger := o.logger()

	session := o.DB.Sql().WithContext(ctx)

	comments := session.
		Where("post_id NOT IN (SELECT id FROM posts)").
		Delete(&database.Comment{})

	if gorm.HasDbIssues(comments.Error) {
		return report, fmt.Errorf("issue sweeping orphaned comments: %s", comments.Error)
	}

	report.Comments = comments.RowsAffected

	postTags := session.
		Where("post_id NOT IN (SELECT id FROM posts)").
		Delete(&database.PostTag{})

	if gorm.HasDbIssues(postTags.Error) {
		return report, fmt.Errorf("issue sweeping orphaned tag links: %s", postTags.Error)
	}

	report.PostTags = postTags.RowsAffected

	if report.Comments > 0 || report.PostTags > 0 {
		logger.Info("orphan sweep removed rows", "comments", report.Comments, "tag_links", report.PostTags)
	} else {
		logger.Info("orphan sweep found nothing to remove")
	}

	return report, nil
}

func (o *Orphans) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}

	return slog.Default()
}
