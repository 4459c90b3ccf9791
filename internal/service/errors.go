package service

import "errors"

var (
	ErrValidation         = errors.New("invalid data provided")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("not the owner")
)
