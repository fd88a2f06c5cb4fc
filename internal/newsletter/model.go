package newsletter

import "time"

// Subscriber is a newsletter signup.
type Subscriber struct {
	ID           string
	Email        string
	Status       string
	SubscribedAt time.Time
}

// StatusActive is the only status currently issued; kept as a column so
// unsubscribes can be modelled without a schema change.
const StatusActive = "active"
