package projects

import "time"

// Project is a portfolio entry shown on the public site.
type Project struct {
	ID              string
	Title           string
	LongDescription string
	Category        string
	Technologies    []string
	Features        []string
	MainImage       string // storage key of the main picture
	LiveURL         string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Input carries the mutable fields of a project.
type Input struct {
	Title           string   `json:"title"`
	LongDescription string   `json:"longDescription"`
	Category        string   `json:"category"`
	Technologies    []string `json:"technologies"`
	Features        []string `json:"features"`
	MainImage       string   `json:"mainImage"`
	LiveURL         string   `json:"liveUrl"`
}
