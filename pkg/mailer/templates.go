package mailer

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/DCSlucifer/quickblog-backend/database"
)

var postTemplate = template.Must(template.New("post").Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif; color: #1f2937; margin: 0; padding: 24px;">
    <div style="max-width: 560px; margin: 0 auto;">
      <p style="color: #5044E5; font-weight: bold;">{{.Heading}}</p>
      <h1 style="font-size: 22px; margin: 8px 0;">{{.Title}}</h1>
      {{if .Subtitle}}<p style="color: #6b7280; margin: 4px 0 16px;">{{.Subtitle}}</p>{{end}}
      <p style="margin: 16px 0;">{{.Excerpt}}</p>
      <a href="{{.URL}}" style="display: inline-block; background: #5044E5; color: #ffffff; padding: 10px 20px; border-radius: 6px; text-decoration: none;">Read the full post</a>
      <p style="color: #9ca3af; font-size: 12px; margin-top: 32px;">You received this because you subscribed to {{.SiteName}}.</p>
    </div>
  </body>
</html>`))

var welcomeTemplate = template.Must(template.New("welcome").Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif; color: #1f2937; margin: 0; padding: 24px;">
    <div style="max-width: 560px; margin: 0 auto;">
      <h1 style="font-size: 22px;">Welcome to {{.SiteName}}</h1>
      <p>Thanks for subscribing. We will let you know whenever a new post is published.</p>
      <p style="color: #9ca3af; font-size: 12px; margin-top: 32px;">If this was not you, simply ignore this email.</p>
    </div>
  </body>
</html>`))

type postTemplateData struct {
	Heading  string
	Title    string
	Subtitle string
	Excerpt  string
	URL      string
	SiteName string
}

// NewPostEmail renders the notification sent to subscribers when a post
// goes live for the first time.
func NewPostEmail(post *database.Post, siteName, siteURL string) (subject, html string) {
	return postEmail(post, "New on "+siteName, "New post: "+post.Title, siteName, siteURL)
}

// UpdatedPostEmail renders the notification sent when an already published
// post receives an update.
func UpdatedPostEmail(post *database.Post, siteName, siteURL string) (subject, html string) {
	return postEmail(post, "Updated on "+siteName, "Updated post: "+post.Title, siteName, siteURL)
}

func postEmail(post *database.Post, heading, subject, siteName, siteURL string) (string, string) {
	data := postTemplateData{
		Heading:  heading,
		Title:    post.Title,
		Subtitle: post.Subtitle,
		Excerpt:  excerpt(post.Content, 240),
		URL:      fmt.Sprintf("%s/blog/%s", strings.TrimRight(siteURL, "/"), post.UUID),
		SiteName: siteName,
	}

	var sb strings.Builder
	if err := postTemplate.Execute(&sb, data); err != nil {
		return subject, data.Title
	}

	return subject, sb.String()
}

// WelcomeEmail renders the confirmation sent after a successful subscription.
func WelcomeEmail(siteName string) (subject, html string) {
	var sb strings.Builder
	if err := welcomeTemplate.Execute(&sb, struct{ SiteName string }{SiteName: siteName}); err != nil {
		return "Welcome to " + siteName, "Thanks for subscribing to " + siteName + "."
	}

	return "Welcome to " + siteName, sb.String()
}

func excerpt(content string, max int) string {
	content = strings.TrimSpace(content)

	if len(content) <= max {
		return content
	}

	cut := content[:max]
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}

	return cut + "..."
}
