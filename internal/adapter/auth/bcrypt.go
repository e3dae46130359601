package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/nachtlabs/git-nacht/internal/port"
)

// AlgoBcrypt is the algorithm tag stored with bcrypt credentials.
const AlgoBcrypt = "bcrypt"

// BcryptHasher implements port.PasswordHasher with bcrypt. The algorithm is
// selected by the stored tag, never by sniffing the hash value.
type BcryptHasher struct {
	cost int
}

var _ port.PasswordHasher = (*BcryptHasher)(nil)

// NewBcryptHasher creates a hasher with the default bcrypt cost.
func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

// Hash hashes a plaintext password.
func (h *BcryptHasher) Hash(plain string) (string, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), AlgoBcrypt, nil
}

// Verify checks plain against hash using the tagged algorithm.
func (h *BcryptHasher) Verify(hash, algo, plain string) error {
	if algo != AlgoBcrypt {
		return fmt.Errorf("%w: unsupported password algorithm %q", port.ErrAuthFailure, algo)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)); err != nil {
		return port.ErrAuthFailure
	}
	return nil
}
