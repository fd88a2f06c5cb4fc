package team

import "time"

// Member is a team member profile shown on the site.
type Member struct {
	ID           string
	Name         string
	Role         string
	LongBio      string
	Expertise    []string
	Experience   string
	LinkedIn     string
	GitHub       string
	Email        string
	ProfileImage string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Input carries the writable fields of a member.
type Input struct {
	Name         string   `json:"name"`
	Role         string   `json:"role"`
	LongBio      string   `json:"longBio"`
	Expertise    []string `json:"expertise"`
	Experience   string   `json:"experience"`
	LinkedIn     string   `json:"linkedin"`
	GitHub       string   `json:"github"`
	Email        string   `json:"email"`
	ProfileImage string   `json:"profileImage"`
}
