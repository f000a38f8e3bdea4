package application

import "errors"

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrAlreadyReviewed     = errors.New("application has already been reviewed")
	ErrPendingExists       = errors.New("a pending application for this email already exists")
	ErrEmailRegistered     = errors.New("email is already registered")
)
