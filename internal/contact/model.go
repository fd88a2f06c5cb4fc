package contact

import "time"

// Submission is a contact-form message from a site visitor.
type Submission struct {
	ID          string
	Name        string
	Email       string
	Company     string
	Subject     string
	Message     string
	Status      Status
	SubmittedAt time.Time
	UpdatedAt   time.Time
}

// Status tracks the handling state of a submission.
type Status string

const (
	StatusNew        Status = "new"
	StatusInProgress Status = "in-progress"
	StatusResponded  Status = "responded"
	StatusClosed     Status = "closed"
	StatusSpam       Status = "spam"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusResponded, StatusClosed, StatusSpam:
		return true
	}
	return false
}

// Input carries the fields a visitor submits through the contact form.
type Input struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
