package handler

import (
	baseHttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DCSlucifer/quickblog-backend/database"
	"github.com/DCSlucifer/quickblog-backend/database/repository"
	"github.com/DCSlucifer/quickblog-backend/handler/payload"
)

func TestDashboardAggregates(t *testing.T) {
	conn := setupConnection(t)
	posts := repository.Posts{DB: conn}
	comments := repository.Comments{DB: conn}
	h := MakeDashboardHandler(&posts, &comments)

	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	published := seedPublished(t, conn, "live", base)
	seedPublished(t, conn, "also live", base.Add(time.Hour))

	draft := database.Post{
		UUID:     "dash-draft",
		Title:    "in progress",
		Content:  "body",
		Category: database.CategoryStartup,
	}
	if err := conn.Sql().Create(&draft).Error; err != nil {
		t.Fatalf("seed draft: %v", err)
	}

	rows := []database.Comment{
		{UUID: "d1", PostID: published.ID, Name: "A", Content: "one", IsApproved: true},
		{UUID: "d2", PostID: published.ID, Name: "B", Content: "two"},
	}
	if err := conn.Sql().Create(&rows).Error; err != nil {
		t.Fatalf("seed comments: %v", err)
	}

	req := httptest.NewRequest(baseHttp.MethodGet, "/api/admin/dashboard", nil)
	rec := httptest.NewRecorder()

	if apiErr := h.Show(rec, req); apiErr != nil {
		t.Fatalf("dashboard failed: %+v", apiErr)
	}

	var response payload.DashboardResponse
	decodeBody(t, rec, &response)

	data := response.Dashboard

	if data.Blogs != 3 || data.Comments != 2 || data.Drafts != 1 {
		t.Fatalf("wrong totals: %+v", data)
	}

	if len(data.RecentBlogs) != 3 {
		t.Fatalf("expected 3 recent blogs, got %d", len(data.RecentBlogs))
	}

	// Drafts appear in the admin overview, newest first.
	if data.RecentBlogs[0].Title != "in progress" {
		t.Fatalf("expected the newest post first: %+v", data.RecentBlogs[0])
	}
}
