package team

import "time"

// Response is the outward-facing representation of a team member.
type Response struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Role            string    `json:"role"`
	LongBio         string    `json:"longBio"`
	Expertise       []string  `json:"expertise"`
	Experience      string    `json:"experience"`
	LinkedIn        string    `json:"linkedin,omitempty"`
	GitHub          string    `json:"github,omitempty"`
	Email           string    `json:"email"`
	ProfileImage    string    `json:"profileImage,omitempty"`
	ProfileImageURL string    `json:"profileImageUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func toResponse(member Member, viewURL func(string) string) Response {
	resp := Response{
		ID:           member.ID,
		Name:         member.Name,
		Role:         member.Role,
		LongBio:      member.LongBio,
		Expertise:    member.Expertise,
		Experience:   member.Experience,
		LinkedIn:     member.LinkedIn,
		GitHub:       member.GitHub,
		Email:        member.Email,
		ProfileImage: member.ProfileImage,
		CreatedAt:    member.CreatedAt,
		UpdatedAt:    member.UpdatedAt,
	}
	if member.ProfileImage != "" && viewURL != nil {
		resp.ProfileImageURL = viewURL(member.ProfileImage)
	}
	return resp
}

func toResponses(list []Member, viewURL func(string) string) []Response {
	out := make([]Response, 0, len(list))
	for _, member := range list {
		out = append(out, toResponse(member, viewURL))
	}
	return out
}
