package services

import "time"

// Response is the outward-facing representation of a service.
type Response struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toResponse(svc Service) Response {
	return Response{
		ID:          svc.ID,
		Name:        svc.Name,
		Description: svc.Description,
		CreatedAt:   svc.CreatedAt,
		UpdatedAt:   svc.UpdatedAt,
	}
}

func toResponses(list []Service) []Response {
	out := make([]Response, 0, len(list))
	for _, svc := range list {
		out = append(out, toResponse(svc))
	}
	return out
}
