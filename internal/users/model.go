package users

import "time"

// AdminLabel is the role label that grants access to the admin dashboard.
// It is assigned out-of-band by an operator, never by this application.
const AdminLabel = "admin"

// User is an account created by the identity provider handshake.
type User struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	PictureURL string    `json:"pictureUrl,omitempty"`
	Labels     []string  `json:"labels"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// HasLabel reports whether the user carries the given role label.
func (u User) HasLabel(label string) bool {
	for _, l := range u.Labels {
		if l == label {
			return true
		}
	}
	return false
}
