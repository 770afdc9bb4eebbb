package models

import "errors"

var (
	ErrTaskNotFound       = errors.New("task doesn't exist")
	ErrUserNotFound       = errors.New("user doesn't exist")
	ErrInvalidStatus      = errors.New("invalid task status")
	ErrEmailTaken         = errors.New("email already in use")
	ErrUserHasTasks       = errors.New("user still owns tasks")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
