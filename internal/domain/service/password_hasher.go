// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// HashGenerator produces a salted hash from a plaintext password.
type HashGenerator interface {
	Hash(plain string) (string, error)
}

// HashComparer checks a plaintext password against a stored hash.
type HashComparer interface {
	Compare(plain, hash string) bool
}

// PasswordHasher combines both directions; the bcrypt adapter implements it.
type PasswordHasher interface {
	HashGenerator
	HashComparer
}
