// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// GeneratedPassword is a freshly generated credential pair. The plaintext is
// transient; only the hash may ever be persisted.
type GeneratedPassword struct {
	Plain  string
	Hashed string
}

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash. A mismatch yields
	// (false, nil); an error is returned only when the stored hash itself is
	// malformed or the subsystem fails.
	Check(password, hash string) (bool, error)

	// Generate produces a cryptographically random plaintext password and its hash.
	Generate() (*GeneratedPassword, error)
}
