package blog

import "time"

// Response is the outward-facing representation of a blog post.
type Response struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	Tags      []string  `json:"tags"`
	Image     string    `json:"image,omitempty"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toResponse(post Post, viewURL func(string) string) Response {
	resp := Response{
		ID:        post.ID,
		Title:     post.Title,
		Excerpt:   post.Excerpt,
		Content:   post.Content,
		Category:  post.Category,
		Tags:      post.Tags,
		Image:     post.Image,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
	if post.Image != "" && viewURL != nil {
		resp.ImageURL = viewURL(post.Image)
	}
	return resp
}

func toResponses(list []Post, viewURL func(string) string) []Response {
	out := make([]Response, 0, len(list))
	for _, post := range list {
		out = append(out, toResponse(post, viewURL))
	}
	return out
}
