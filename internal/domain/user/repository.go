package user

import "context"

type Repository interface {
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByCredentials(ctx context.Context, username, password string) (*User, error)
	Create(ctx context.Context, user *User) error
}
