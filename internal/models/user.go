package models

import "time"

// User is a registered account. The password is stored in plaintext:
// there is no server and no hashing in the system contract, which is a
// documented limitation rather than an oversight.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Session is the reduced projection of the logged-in user. At most one
// session is active at a time.
type Session struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
