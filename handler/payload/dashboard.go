package payload

type DashboardData struct {
	Blogs       int64          `json:"blogs"`
	Comments    int64          `json:"comments"`
	Drafts      int64          `json:"drafts"`
	RecentBlogs []BlogResponse `json:"recentBlogs"`
}

type DashboardResponse struct {
	Success   bool          `json:"success"`
	Dashboard DashboardData `json:"dashboardData"`
}
