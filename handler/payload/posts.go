package payload

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/DCSlucifer/quickblog-backend/database"
	"github.com/DCSlucifer/quickblog-backend/database/repository/pagination"
	"github.com/DCSlucifer/quickblog-backend/database/repository/queries"
	"github.com/DCSlucifer/quickblog-backend/pkg/portal"
)

type BlogStoreRequest struct {
	Title       string   `json:"title" validate:"required,min=3,max=200"`
	Subtitle    string   `json:"subTitle" validate:"max=300"`
	Description string   `json:"description" validate:"required,min=10"`
	Category    string   `json:"category" validate:"required"`
	Image       string   `json:"image" validate:"omitempty,url"`
	IsPublished bool     `json:"isPublished"`
	Tags        []string `json:"tags" validate:"omitempty,dive,min=1,max=50"`
}

type BlogAuthorResponse struct {
	UUID string `json:"id"`
	Name string `json:"name"`
}

type BlogResponse struct {
	UUID         string              `json:"id"`
	Title        string              `json:"title"`
	Subtitle     string              `json:"subTitle"`
	Description  string              `json:"description"`
	Category     string              `json:"category"`
	Image        string              `json:"image"`
	IsPublished  bool                `json:"isPublished"`
	Author       *BlogAuthorResponse `json:"author,omitempty"`
	Tags         []string            `json:"tags"`
	CommentCount int64               `json:"commentCount"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

// PaginationResponse mirrors the listing metadata contract: totalPages is
// computed from the same predicate that produced the page.
type PaginationResponse struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalBlogs   int64 `json:"totalBlogs"`
	BlogsPerPage int   `json:"blogsPerPage"`
}

type BlogsListResponse struct {
	Success    bool               `json:"success"`
	Blogs      []BlogResponse     `json:"blogs"`
	Pagination PaginationResponse `json:"pagination"`
}

type BlogShowResponse struct {
	Success bool         `json:"success"`
	Blog    BlogResponse `json:"blog"`
}

func GetBlogResponse(p database.Post) BlogResponse {
	response := BlogResponse{
		UUID:         p.UUID,
		Title:        p.Title,
		Subtitle:     p.Subtitle,
		Description:  p.Content,
		Category:     p.Category,
		Image:        p.CoverImageURL,
		IsPublished:  p.IsPublished,
		Tags:         make([]string, 0, len(p.Tags)),
		CommentCount: p.CommentCount,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}

	for _, tag := range p.Tags {
		response.Tags = append(response.Tags, tag.Name)
	}

	if p.Author != nil {
		response.Author = &BlogAuthorResponse{
			UUID: p.Author.UUID,
			Name: p.Author.Name,
		}
	}

	return response
}

func GetBlogsListResponse(page *pagination.Pagination[database.Post]) BlogsListResponse {
	blogs := make([]BlogResponse, 0, len(page.Data))

	for _, post := range page.Data {
		blogs = append(blogs, GetBlogResponse(post))
	}

	return BlogsListResponse{
		Success: true,
		Blogs:   blogs,
		Pagination: PaginationResponse{
			CurrentPage:  page.Page,
			TotalPages:   page.TotalPages,
			TotalBlogs:   page.Total,
			BlogsPerPage: page.PageSize,
		},
	}
}

// GetListFiltersFrom reads the listing parameters off the query string.
// Malformed page/limit values clamp to defaults instead of failing.
func GetListFiltersFrom(r *http.Request) (queries.PostFilters, pagination.Paginate) {
	query := r.URL.Query()

	filters := queries.PostFilters{
		Text:     query.Get("q"),
		Category: query.Get("category"),
		Tags:     portal.SplitList(query.Get("tags")),
		Author:   query.Get("author"),
		Sort:     query.Get("sort"),
	}

	page, _ := strconv.Atoi(query.Get("page"))
	limit, _ := strconv.Atoi(query.Get("limit"))

	return filters, pagination.MakePaginate(page, limit)
}

func GetUUIDFrom(r *http.Request, name string) string {
	return strings.TrimSpace(r.PathValue(name))
}

// NormaliseCategory folds user input into the stored enum casing
// ("technology" -> "Technology").
func NormaliseCategory(seed string) string {
	return portal.MakeStringable(seed).ToTitle()
}
