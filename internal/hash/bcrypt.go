package hash

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Bcrypt hashes and verifies user passwords. The salt is embedded in the
// digest, so Compare works against digests produced with any prior cost.
type Bcrypt struct {
	cost int
}

// NewBcrypt creates a hasher with the default bcrypt cost.
func NewBcrypt() *Bcrypt {
	return &Bcrypt{cost: bcrypt.DefaultCost}
}

// Hash returns a salted one-way digest of the plaintext, safe to store.
func (b *Bcrypt) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), b.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(digest), nil
}

// Compare reports whether plaintext matches digest. A mismatch or a
// malformed digest returns false, never an error.
func (b *Bcrypt) Compare(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
