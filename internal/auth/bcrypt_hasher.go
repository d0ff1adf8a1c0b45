package auth

import (
	"golang.org/x/crypto/bcrypt"

	"shopflow/internal/domain"
)

type bcryptHasher struct{}

// NewBcryptHasher bcrypt tabanlı parola özetleyici döner; tuz üretimi
// bcrypt'in kendisine bırakılır.
func NewBcryptHasher() domain.PasswordHasher {
	return &bcryptHasher{}
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
