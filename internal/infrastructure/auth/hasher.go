package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"helpdesk/internal/domain/admin"
)

// BcryptPasswordHasher implements admin.PasswordHasher. The cost comes from
// configuration; values outside bcrypt's supported range fall back to the
// library default rather than failing at startup.
type BcryptPasswordHasher struct {
	cost int
}

var _ admin.PasswordHasher = (*BcryptPasswordHasher)(nil)

func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost: cost}
}

func (h *BcryptPasswordHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports a single generic error for any failure: a wrong password and
// a malformed stored hash must be indistinguishable to the caller.
func (h *BcryptPasswordHasher) Verify(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return fmt.Errorf("password verification failed")
	}
	return nil
}
