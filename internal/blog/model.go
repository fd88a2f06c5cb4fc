package blog

import "time"

// Post is a published blog article.
type Post struct {
	ID        string
	Title     string
	Excerpt   string
	Content   string
	Category  string
	Tags      []string
	Image     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Input carries the writable fields of a post.
type Input struct {
	Title    string   `json:"title"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Image    string   `json:"image"`
}
