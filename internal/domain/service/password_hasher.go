// Package service declares the stateless domain capabilities the identity use cases depend on.
package service

// PasswordHasher turns a plaintext password into a salted one-way secret and compares against it.
type PasswordHasher interface {
	// Hash returns a new salted secret. Two calls with the same password return different strings.
	Hash(password string) (string, error)

	// Check reports whether password produces hash. A malformed hash never matches and never panics.
	Check(password, hash string) bool
}
