package database

import (
	"time"
)

type PostAttrs struct {
	AuthorID      *uint64
	Title         string
	Subtitle      string
	Content       string
	Category      string
	CoverImageURL string
	IsPublished   bool
	Tags          []string
}

type CommentAttrs struct {
	PostID  uint64
	Name    string
	Email   string
	Content string
}

type CommentSearchAttrs struct {
	// Status filters on approval when non-nil.
	Status    *bool
	PostUUID  string
	StartDate *time.Time
	EndDate   *time.Time
}

type UserAttrs struct {
	Name         string
	Email        string
	PasswordHash string
	Role         string
}
