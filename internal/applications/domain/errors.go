package domain

import "errors"

var (
	ErrMissingIDs     = errors.New("user id and internship id are required")
	ErrInvalidStatus  = errors.New("invalid application status")
	ErrRecordNotFound = errors.New("application record not found")
)
