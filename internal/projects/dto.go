package projects

import "time"

// Response is the outward-facing representation of a project.
type Response struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	LongDescription string    `json:"longDescription"`
	Category        string    `json:"category"`
	Technologies    []string  `json:"technologies"`
	Features        []string  `json:"features"`
	MainImage       string    `json:"mainImage,omitempty"`
	MainImageURL    string    `json:"mainImageUrl,omitempty"`
	LiveURL         string    `json:"liveUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func toResponse(project Project, viewURL func(string) string) Response {
	resp := Response{
		ID:              project.ID,
		Title:           project.Title,
		LongDescription: project.LongDescription,
		Category:        project.Category,
		Technologies:    project.Technologies,
		Features:        project.Features,
		MainImage:       project.MainImage,
		LiveURL:         project.LiveURL,
		CreatedAt:       project.CreatedAt,
		UpdatedAt:       project.UpdatedAt,
	}
	if project.MainImage != "" && viewURL != nil {
		resp.MainImageURL = viewURL(project.MainImage)
	}
	return resp
}

func toResponses(list []Project, viewURL func(string) string) []Response {
	out := make([]Response, 0, len(list))
	for _, project := range list {
		out = append(out, toResponse(project, viewURL))
	}
	return out
}
