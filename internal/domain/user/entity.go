// internal/domain/user/entity.go
package user

import (
	"errors"
	"strings"
	"time"
)

// User is the account entity. PasswordHash never leaves the domain/adapters
// boundary (it is excluded from JSON).
type User struct {
	ID           string    `json:"id" firestore:"id"`
	Email        string    `json:"email" firestore:"email"`
	Name         string    `json:"name" firestore:"name"`
	IsAdmin      bool      `json:"isAdmin" firestore:"isAdmin"`
	PasswordHash string    `json:"-" firestore:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt" firestore:"createdAt"`
}

var (
	ErrInvalidID    = errors.New("user: invalid id")
	ErrInvalidEmail = errors.New("user: invalid email")
	ErrInvalidName  = errors.New("user: invalid name")
)

// New builds a validated User. Email is normalized to lower case.
func New(id, email, name, passwordHash string, isAdmin bool, now time.Time) (User, error) {
	u := User{
		ID:           strings.TrimSpace(id),
		Email:        NormalizeEmail(email),
		Name:         strings.TrimSpace(name),
		IsAdmin:      isAdmin,
		PasswordHash: passwordHash,
		CreatedAt:    now.UTC(),
	}
	if err := u.validate(); err != nil {
		return User{}, err
	}
	return u, nil
}

// NormalizeEmail trims and lower-cases an email for lookup/uniqueness.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *User) validate() error {
	if u == nil || strings.TrimSpace(u.ID) == "" {
		return ErrInvalidID
	}
	if u.Email == "" || !strings.Contains(u.Email, "@") {
		return ErrInvalidEmail
	}
	if strings.TrimSpace(u.Name) == "" {
		return ErrInvalidName
	}
	return nil
}
