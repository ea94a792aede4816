package payload

import (
	"net/http"
	"strings"
	"time"

	"github.com/DCSlucifer/quickblog-backend/database"
	"github.com/DCSlucifer/quickblog-backend/database/repository"
)

type CommentStoreRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"omitempty,email"`
	Content string `json:"content" validate:"required,min=2,max=2000"`
}

type CommentResponse struct {
	UUID      string    `json:"id"`
	Name      string    `json:"name"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type CommentsListResponse struct {
	Success  bool              `json:"success"`
	Comments []CommentResponse `json:"comments"`
}

type AdminCommentResponse struct {
	UUID       string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Content    string    `json:"content"`
	IsApproved bool      `json:"isApproved"`
	CreatedAt  time.Time `json:"createdAt"`
	BlogUUID   string    `json:"blogId"`
	BlogTitle  string    `json:"blogTitle"`
}

type AdminCommentsListResponse struct {
	Success  bool                   `json:"success"`
	Comments []AdminCommentResponse `json:"comments"`
}

func GetCommentResponse(c database.Comment) CommentResponse {
	return CommentResponse{
		UUID:      c.UUID,
		Name:      c.Name,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}

func GetCommentsListResponse(comments []database.Comment) CommentsListResponse {
	response := CommentsListResponse{
		Success:  true,
		Comments: make([]CommentResponse, 0, len(comments)),
	}

	for _, comment := range comments {
		response.Comments = append(response.Comments, GetCommentResponse(comment))
	}

	return response
}

func GetAdminCommentsListResponse(rows []repository.CommentWithPost) AdminCommentsListResponse {
	response := AdminCommentsListResponse{
		Success:  true,
		Comments: make([]AdminCommentResponse, 0, len(rows)),
	}

	for _, row := range rows {
		response.Comments = append(response.Comments, AdminCommentResponse{
			UUID:       row.UUID,
			Name:       row.Name,
			Email:      row.Email,
			Content:    row.Content,
			IsApproved: row.IsApproved,
			CreatedAt:  row.CreatedAt,
			BlogUUID:   row.PostUUID,
			BlogTitle:  row.PostTitle,
		})
	}

	return response
}

// GetCommentSearchAttrsFrom reads the moderation filters off the query
// string: status=approved|pending, blog=<uuid>, start/end as dates.
func GetCommentSearchAttrsFrom(r *http.Request) (database.CommentSearchAttrs, error) {
	query := r.URL.Query()

	attrs := database.CommentSearchAttrs{
		PostUUID: strings.TrimSpace(query.Get("blog")),
	}

	switch strings.ToLower(strings.TrimSpace(query.Get("status"))) {
	case "approved":
		approved := true
		attrs.Status = &approved
	case "pending":
		pending := false
		attrs.Status = &pending
	}

	start, err := parseDate(query.Get("start"))
	if err != nil {
		return attrs, err
	}

	end, err := parseDate(query.Get("end"))
	if err != nil {
		return attrs, err
	}

	attrs.StartDate = start

	if end != nil {
		// The end date is inclusive: "2026-01-31" covers the whole day.
		bounded := end.Add(24*time.Hour - time.Nanosecond)
		attrs.EndDate = &bounded
	}

	return attrs, nil
}

func parseDate(seed string) (*time.Time, error) {
	seed = strings.TrimSpace(seed)
	if seed == "" {
		return nil, nil
	}

	parsed, err := time.Parse("2006-01-02", seed)
	if err != nil {
		return nil, err
	}

	return &parsed, nil
}
