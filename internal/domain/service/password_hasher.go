// Package service declares the account security ports used by the credential manager.
package service

// PasswordHasher turns registration passwords into stored digests and verifies
// login attempts against them. Plaintext passwords never leave the usecase layer.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches digest. A malformed digest never matches.
	Check(password, digest string) bool
}
