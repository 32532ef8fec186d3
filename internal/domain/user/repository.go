package user

import "context"

type UserRepository interface {
	// GetByUsername returns ErrUserNotFound when no active user has the username
	GetByUsername(ctx context.Context, username string) (User, error)
}
