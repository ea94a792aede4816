package database

import (
	"time"
)

const DriverName = "postgres"

// Post categories form a closed set. Anything else is rejected at the
// boundary before it reaches the repositories.
const (
	CategoryTechnology = "Technology"
	CategoryStartup    = "Startup"
	CategoryLifestyle  = "Lifestyle"
	CategoryFinance    = "Finance"
)

func Categories() []string {
	return []string{
		CategoryTechnology,
		CategoryStartup,
		CategoryLifestyle,
		CategoryFinance,
	}
}

func IsValidCategory(seed string) bool {
	for _, category := range Categories() {
		if seed == category {
			return true
		}
	}

	return false
}

type Post struct {
	ID            uint64     `gorm:"primaryKey"`
	UUID          string     `gorm:"uniqueIndex;not null"`
	AuthorID      *uint64    `gorm:"index"`
	Author        *User      `gorm:"foreignKey:AuthorID"`
	Title         string     `gorm:"not null;index"`
	Subtitle      string
	Content       string     `gorm:"not null"`
	Category      string     `gorm:"not null;index:idx_posts_category_published"`
	CoverImageURL string     `gorm:"not null"`
	IsPublished   bool       `gorm:"not null;default:false;index:idx_posts_category_published"`
	Tags          []Tag      `gorm:"many2many:post_tags;"`
	CreatedAt     time.Time  `gorm:"index"`
	UpdatedAt     time.Time

	// Derived listing columns. Read-only: filled by the listing plan's
	// SELECT expressions, never persisted.
	CommentCount int64 `gorm:"->;-:migration"`
	Relevance    int64 `gorm:"->;-:migration"`
}

type Tag struct {
	ID        uint64    `gorm:"primaryKey"`
	Name      string    `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
}

// PostTag is the explicit join table behind the posts <-> tags association.
type PostTag struct {
	PostID uint64 `gorm:"primaryKey"`
	TagID  uint64 `gorm:"primaryKey"`
}

// Comment references its post by id only. There is no database-level foreign
// key: deleting a post and its comments are two independent operations, and
// the cleanup job sweeps whatever a crash between them leaves behind.
type Comment struct {
	ID         uint64    `gorm:"primaryKey"`
	UUID       string    `gorm:"uniqueIndex;not null"`
	PostID     uint64    `gorm:"index:idx_comments_post_approved"`
	Name       string    `gorm:"not null"`
	Email      string
	Content    string    `gorm:"not null"`
	IsApproved bool      `gorm:"not null;default:false;index:idx_comments_post_approved"`
	CreatedAt  time.Time `gorm:"index"`
	UpdatedAt  time.Time
}

type Subscriber struct {
	ID           uint64    `gorm:"primaryKey"`
	UUID         string    `gorm:"uniqueIndex;not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	IsActive     bool      `gorm:"not null;default:true;index"`
	SubscribedAt time.Time `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
	RoleModerator  = "moderator"
)

type User struct {
	ID           uint64    `gorm:"primaryKey"`
	UUID         string    `gorm:"uniqueIndex;not null"`
	Name         string    `gorm:"not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"not null;default:admin"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func GetSchemaModels() []any {
	return []any{
		&User{},
		&Post{},
		&Tag{},
		&PostTag{},
		&Comment{},
		&Subscriber{},
	}
}

func GetSchemaTables() []string {
	return []string{
		"users",
		"posts",
		"tags",
		"post_tags",
		"comments",
		"subscribers",
	}
}
