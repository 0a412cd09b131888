package user

import "errors"

var (
	ErrUsernameRequired   = errors.New("username cannot be empty")
	ErrPasswordRequired   = errors.New("password cannot be empty")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)
