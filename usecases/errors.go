package usecases

import "errors"

// Sentinel errors the handlers map onto HTTP statuses. "Not found" covers
// both absent rows and rows the caller may not see, so existence never
// leaks to non-owners.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrDuplicateShare     = errors.New("collection already shared with this user")
	ErrSelfShare          = errors.New("cannot share a collection with its owner")
	ErrNotAllowed         = errors.New("not allowed to modify this resource")
)
