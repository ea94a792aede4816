package handler

import (
	baseHttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DCSlucifer/quickblog-backend/database"
	"github.com/DCSlucifer/quickblog-backend/database/repository"
	"github.com/DCSlucifer/quickblog-backend/handler/payload"
)

func makeComments(t *testing.T) (CommentsHandler, *database.Connection) {
	t.Helper()

	conn := setupConnection(t)
	comments := repository.Comments{DB: conn}
	posts := repository.Posts{DB: conn}

	return MakeCommentsHandler(&comments, &posts, testValidator()), conn
}

func TestCommentStoreLandsPending(t *testing.T) {
	h, conn := makeComments(t)

	post := seedPublished(t, conn, "commented", time.Now().UTC())

	body := `{"name":"Reader","email":"reader@example.com","content":"Loved this one"}`
	req := httptest.NewRequest(baseHttp.MethodPost, "/api/blogs/"+post.UUID+"/comments", strings.NewReader(body))
	req.SetPathValue("uuid", post.UUID)
	rec := httptest.NewRecorder()

	if apiErr := h.Store(rec, req); apiErr != nil {
		t.Fatalf("store failed: %+v", apiErr)
	}

	var message payload.MessageResponse
	decodeBody(t, rec, &message)

	if !message.Success || message.Message != "Comment added for review" {
		t.Fatalf("wrong envelope: %+v", message)
	}

	var stored database.Comment
	if err := conn.Sql().Where("post_id = ?", post.ID).First(&stored).Error; err != nil {
		t.Fatalf("comment missing: %v", err)
	}

	if stored.IsApproved {
		t.Fatalf("public comments must await moderation")
	}
}

func TestCommentStoreOnDraftIs404(t *testing.T) {
	h, conn := makeComments(t)

	draft := database.Post{
		UUID:     "draft-c",
		Title:    "unfinished",
		Content:  "body",
		Category: database.CategoryFinance,
	}
	if err := conn.Sql().Create(&draft).Error; err != nil {
		t.Fatalf("seed draft: %v", err)
	}

	body := `{"name":"Reader","content":"Early bird comment"}`
	req := httptest.NewRequest(baseHttp.MethodPost, "/api/blogs/draft-c/comments", strings.NewReader(body))
	req.SetPathValue("uuid", "draft-c")
	rec := httptest.NewRecorder()

	apiErr := h.Store(rec, req)
	if apiErr == nil || apiErr.Status != baseHttp.StatusNotFound {
		t.Fatalf("expected 404 on a draft, got %+v", apiErr)
	}
}

func TestCommentIndexShowsApprovedOnly(t *testing.T) {
	h, conn := makeComments(t)

	post := seedPublished(t, conn, "discussed", time.Now().UTC())

	rows := []database.Comment{
		{UUID: "c1", PostID: post.ID, Name: "A", Content: "pending", IsApproved: false},
		{UUID: "c2", PostID: post.ID, Name: "B", Content: "approved", IsApproved: true},
	}
	if err := conn.Sql().Create(&rows).Error; err != nil {
		t.Fatalf("seed comments: %v", err)
	}

	req := httptest.NewRequest(baseHttp.MethodGet, "/api/blogs/"+post.UUID+"/comments", nil)
	req.SetPathValue("uuid", post.UUID)
	rec := httptest.NewRecorder()

	if apiErr := h.Index(rec, req); apiErr != nil {
		t.Fatalf("index failed: %+v", apiErr)
	}

	var response payload.CommentsListResponse
	decodeBody(t, rec, &response)

	if len(response.Comments) != 1 || response.Comments[0].Content != "approved" {
		t.Fatalf("pending comment leaked: %+v", response.Comments)
	}
}

func TestCommentApproveAndDelete(t *testing.T) {
	h, conn := makeComments(t)

	post := seedPublished(t, conn, "moderated", time.Now().UTC())

	comment := database.Comment{UUID: "pending-1", PostID: post.ID, Name: "A", Content: "hold me"}
	if err := conn.Sql().Create(&comment).Error; err != nil {
		t.Fatalf("seed comment: %v", err)
	}

	approveReq := httptest.NewRequest(baseHttp.MethodPost, "/api/admin/comments/pending-1/approve", nil)
	approveReq.SetPathValue("uuid", "pending-1")
	approveRec := httptest.NewRecorder()

	if apiErr := h.Approve(approveRec, approveReq); apiErr != nil {
		t.Fatalf("approve failed: %+v", apiErr)
	}

	var stored database.Comment
	if err := conn.Sql().Where("uuid = ?", "pending-1").First(&stored).Error; err != nil {
		t.Fatalf("comment missing: %v", err)
	}

	if !stored.IsApproved {
		t.Fatalf("comment should be approved")
	}

	deleteReq := httptest.NewRequest(baseHttp.MethodDelete, "/api/admin/comments/pending-1", nil)
	deleteReq.SetPathValue("uuid", "pending-1")
	deleteRec := httptest.NewRecorder()

	if apiErr := h.Delete(deleteRec, deleteReq); apiErr != nil {
		t.Fatalf("delete failed: %+v", apiErr)
	}

	var remaining int64
	conn.Sql().Model(&database.Comment{}).Count(&remaining)
	if remaining != 0 {
		t.Fatalf("comment should be gone, found %d", remaining)
	}
}

func TestCommentSearchStatusFilter(t *testing.T) {
	h, conn := makeComments(t)

	post := seedPublished(t, conn, "searched", time.Now().UTC())

	rows := []database.Comment{
		{UUID: "s1", PostID: post.ID, Name: "A", Content: "one", IsApproved: true},
		{UUID: "s2", PostID: post.ID, Name: "B", Content: "two", IsApproved: false},
	}
	if err := conn.Sql().Create(&rows).Error; err != nil {
		t.Fatalf("seed comments: %v", err)
	}

	req := httptest.NewRequest(baseHttp.MethodGet, "/api/admin/comments?status=pending", nil)
	rec := httptest.NewRecorder()

	if apiErr := h.Search(rec, req); apiErr != nil {
		t.Fatalf("search failed: %+v", apiErr)
	}

	var response payload.AdminCommentsListResponse
	decodeBody(t, rec, &response)

	if len(response.Comments) != 1 || response.Comments[0].UUID != "s2" {
		t.Fatalf("status filter failed: %+v", response.Comments)
	}

	if response.Comments[0].BlogTitle != "searched" {
		t.Fatalf("expected the post headline joined in: %+v", response.Comments[0])
	}
}

func TestCommentSearchStartOnly(t *testing.T) {
	h, conn := makeComments(t)

	post := seedPublished(t, conn, "archived", time.Now().UTC())

	rows := []database.Comment{
		{UUID: "old", PostID: post.ID, Name: "A", Content: "old", CreatedAt: time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)},
		{UUID: "new", PostID: post.ID, Name: "B", Content: "new", CreatedAt: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)},
	}
	if err := conn.Sql().Create(&rows).Error; err != nil {
		t.Fatalf("seed comments: %v", err)
	}

	req := httptest.NewRequest(baseHttp.MethodGet, "/api/admin/comments?start=2026-02-01", nil)
	rec := httptest.NewRecorder()

	if apiErr := h.Search(rec, req); apiErr != nil {
		t.Fatalf("search failed: %+v", apiErr)
	}

	var response payload.AdminCommentsListResponse
	decodeBody(t, rec, &response)

	if len(response.Comments) != 1 || response.Comments[0].UUID != "new" {
		t.Fatalf("a lone start bound should still filter: %+v", response.Comments)
	}
}

func TestCommentSearchBadDate(t *testing.T) {
	h, _ := makeComments(t)

	req := httptest.NewRequest(baseHttp.MethodGet, "/api/admin/comments?start=yesterday&end=2026-01-31", nil)
	rec := httptest.NewRecorder()

	apiErr := h.Search(rec, req)
	if apiErr == nil || apiErr.Status != baseHttp.StatusBadRequest {
		t.Fatalf("expected 400 for a malformed date, got %+v", apiErr)
	}
}
