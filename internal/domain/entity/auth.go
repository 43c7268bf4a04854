package entity

import "github.com/google/uuid"

// Credentials is a transient email and plaintext password pair.
// It is never persisted or logged.
type Credentials struct {
	Email    string
	Password string
}

// Claims is the identity assertion embedded in a token. It never carries the password hash.
type Claims struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}
