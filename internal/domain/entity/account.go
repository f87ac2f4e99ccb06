// Package entity contains the core business objects of the planner,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Account is a registered user. The password is only ever held as a bcrypt hash.
type Account struct {
	ID           string    // Assigned by the store on creation, immutable afterwards.
	Name         string    // Display name, 6 to 255 characters.
	Email        string    // Login identifier, unique across all accounts.
	PasswordHash string    // bcrypt hash of the password, never the plaintext.
	CreatedAt    time.Time // Timestamp of registration.
}
