package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
// Entries owned by a different user surface this same error so callers
// cannot probe for the existence of other users' entries.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller's identity could not be established.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the caller is known but not allowed to act on the resource.
var ErrForbidden = errors.New("forbidden")

// ErrRefreshTokenExpired indicates that the stored refresh token has passed its expiry.
var ErrRefreshTokenExpired = errors.New("refresh token expired")
