package apperrors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies application errors independently of the HTTP status.
type ErrorCode string

// ValidationItem is a single field failure, rendered as {"msg": ...} in the
// 400 errors array.
type ValidationItem struct {
	Msg   string `json:"msg"`
	Param string `json:"param,omitempty"`
}

// AppError is the application error type carried from services up to handlers.
type AppError struct {
	Code       ErrorCode
	Message    string
	Validation []ValidationItem
	Err        error
	HTTPCode   int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithError(err error) *AppError {
	clone := *e
	clone.Err = err
	return &clone
}

// Is and As wrap the standard errors helpers so callers need a single import.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Predefined errors. Messages match the API contract verbatim.
var (
	// Auth guard
	ErrNoToken      = New(CodeNoToken, "No token, authorization denied", http.StatusUnauthorized)
	ErrInvalidToken = New(CodeInvalidToken, "Token is not valid", http.StatusUnauthorized)

	// Users
	ErrUserExists         = New(CodeUserExists, "User already exists", http.StatusBadRequest)
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Invalid credentials", http.StatusBadRequest)
	ErrUserNotFound       = New(CodeNotFound, "User not found", http.StatusNotFound)

	// Profiles. A well-formed user id with no profile is a 400 while a
	// malformed id is a 404; both carry the same message.
	ErrNoProfile          = New(CodeNoProfile, "There is no profile for this user", http.StatusBadRequest)
	ErrProfileNotFound    = New(CodeNotFound, "Profile not found", http.StatusBadRequest)
	ErrMalformedProfileID = New(CodeMalformedID, "Profile not found", http.StatusNotFound)

	// Posts
	ErrPostNotFound    = New(CodeNotFound, "Post not found", http.StatusNotFound)
	ErrMalformedPostID = New(CodeMalformedID, "Post not found", http.StatusNotFound)
	ErrNotPostOwner    = New(CodeNotOwner, "User not authorized", http.StatusUnauthorized)
	ErrAlreadyLiked    = New(CodeAlreadyLiked, "Post already liked", http.StatusBadRequest)
	ErrNotYetLiked     = New(CodeNotYetLiked, "Post has not yet been liked", http.StatusBadRequest)

	// GitHub proxy
	ErrNoGithubProfile = New(CodeNotFound, "No Github profile found", http.StatusNotFound)
)

// ValidationError builds a 400 carrying the per-field failure list.
func ValidationError(items []ValidationItem) *AppError {
	return &AppError{
		Code:       CodeValidationFailed,
		Message:    "Validation failed",
		Validation: items,
		HTTPCode:   http.StatusBadRequest,
	}
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Server Error", http.StatusInternalServerError)
}
