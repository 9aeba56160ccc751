package model

// Hasher provides one-way hashing and verification of user passwords.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Compare(plaintext, digest string) bool
}
