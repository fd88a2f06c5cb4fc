package contact

import "time"

// Response is the outward-facing representation of a submission.
type Response struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Company     string    `json:"company,omitempty"`
	Subject     string    `json:"subject"`
	Message     string    `json:"message"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submittedAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type statusUpdateRequest struct {
	Status string `json:"status"`
}

func toResponse(sub Submission) Response {
	return Response{
		ID:          sub.ID,
		Name:        sub.Name,
		Email:       sub.Email,
		Company:     sub.Company,
		Subject:     sub.Subject,
		Message:     sub.Message,
		Status:      string(sub.Status),
		SubmittedAt: sub.SubmittedAt,
		UpdatedAt:   sub.UpdatedAt,
	}
}

func toResponses(list []Submission) []Response {
	out := make([]Response, 0, len(list))
	for _, sub := range list {
		out = append(out, toResponse(sub))
	}
	return out
}
