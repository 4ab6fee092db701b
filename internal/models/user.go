package models

// User represents a user as echoed by the backend on login/registration.
// The client stores it for display only; credentials never persist.
type User struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}
