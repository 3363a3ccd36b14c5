package domain

import "errors"

var (
	ErrUserExists         = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrPasswordTooLong    = errors.New("password must not exceed 30 characters")
	ErrTokenInvalid       = errors.New("token is invalid or expired")

	// ErrNoAccount means the caller is authenticated but has no billing
	// account, so account-scoped operations cannot proceed.
	ErrNoAccount = errors.New("no billing account")

	// ErrApplianceNotFound covers both truly absent appliances and ones
	// owned by another account; the two cases are deliberately
	// indistinguishable to the caller.
	ErrApplianceNotFound = errors.New("appliance not found")

	ErrInvalidApplianceType = errors.New("invalid appliance type")
	ErrInvalidAction        = errors.New("action must be ON or OFF")
	ErrInvalidRange         = errors.New("range must be 24h, week or month")
)
