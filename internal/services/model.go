package services

import "time"

// Service is an offering listed on the site.
type Service struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Input carries the writable fields of a service.
type Input struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
