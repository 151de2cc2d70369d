package directory

import "errors"

var (
	ErrFetchUsers   = errors.New("failed to fetch users")
	ErrUserNotFound = errors.New("user not found")
)
