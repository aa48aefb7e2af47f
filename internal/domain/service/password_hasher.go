// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., argon2id), keeping the domain pure.
type PasswordHasher interface {
	// Digest generates a salted, one-way digest from a plaintext password.
	// Identical passwords produce different digests (random salt per call).
	Digest(password string) (string, error)

	// Verify compares a plaintext password with a stored digest.
	// A mismatch is (false, nil); an error means the digest could not be
	// evaluated at all (e.g. malformed), never "the password was wrong".
	Verify(password, digest string) (bool, error)
}
