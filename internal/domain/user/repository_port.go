package user

import (
	"context"
	"errors"
)

// Repository is the persistence port for User.
//
// Email uniqueness is enforced here: Create must fail with ErrEmailTaken when
// a user with the same (normalized) email already exists.
type Repository interface {
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	Create(ctx context.Context, u User) (User, error)
}

var (
	ErrNotFound   = errors.New("user: not found")
	ErrEmailTaken = errors.New("user: email already registered")
)
