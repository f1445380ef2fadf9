package errors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("no user found with those inputs, please check your email or password")
	ErrAccountNotVerified = errors.New("please verify your account before logging in")
	ErrUnauthorized       = errors.New("you are not logged in, please log in to get access")

	ErrUserNotFound    = errors.New("user not found")
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrEmailTaken      = errors.New("an account with that email already exists")
	ErrSelfFriend      = errors.New("you cannot add yourself as a friend")

	ErrTokenInvalid       = errors.New("token is invalid")
	ErrTokenExpired       = errors.New("token has expired")
	ErrActivationNotFound = errors.New("no account matches that activation link")
	ErrResetTokenInvalid  = errors.New("reset token is invalid or has expired")

	ErrEmailDelivery = errors.New("there was an error sending the email, try again later")
)

type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Validation wraps a field-level validation failure with the VALIDATION_ERROR code.
func Validation(message string, err error) *AppError {
	return NewAppError("VALIDATION_ERROR", message, err)
}
