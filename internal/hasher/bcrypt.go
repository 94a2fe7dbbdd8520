package hasher

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"github.com/barnbook/barnbook-seed/internal/model"
)

// DefaultCost is the documented work factor for seeded credentials.
const DefaultCost = 12

// maxCredentialBytes is the bcrypt input limit; longer inputs are rejected
// rather than truncated.
const maxCredentialBytes = 72

var _ model.CredentialHasher = (*Bcrypt)(nil)

// Bcrypt hashes credentials with bcrypt at a fixed cost. Every hash carries
// its own random salt.
type Bcrypt struct {
	cost int
}

// NewBcrypt creates a hasher with the given work factor.
func NewBcrypt(cost int) (*Bcrypt, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	return &Bcrypt{cost: cost}, nil
}

// Hash returns the bcrypt hash of raw.
func (b *Bcrypt) Hash(raw string) (string, error) {
	if !utf8.ValidString(raw) {
		return "", fmt.Errorf("%w: credential is not valid UTF-8", model.ErrHashing)
	}
	if len(raw) > maxCredentialBytes {
		return "", fmt.Errorf("%w: credential exceeds %d bytes", model.ErrHashing, maxCredentialBytes)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(raw), b.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", model.ErrHashing, err)
	}

	return string(hash), nil
}

// Verify compares raw with a stored hash.
func (b *Bcrypt) Verify(hash, raw string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return model.ErrCredentialMismatch
		}
		return fmt.Errorf("%w: %w", model.ErrHashing, err)
	}

	return nil
}

// Cost reports the work factor this hasher applies.
func (b *Bcrypt) Cost() int {
	return b.cost
}
