package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	CodeConflict     ErrorCode = "CONFLICT"

	// Validation errors
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"

	// Quiz specific errors
	CodeQuizNotFound    ErrorCode = "QUIZ_NOT_FOUND"
	CodeQuizUnavailable ErrorCode = "QUIZ_UNAVAILABLE"
	CodeResultNotFound  ErrorCode = "RESULT_NOT_FOUND"

	// Vocabulary and account errors
	CodeWordNotFound       ErrorCode = "WORD_NOT_FOUND"
	CodeUserNotFound       ErrorCode = "USER_NOT_FOUND"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeTokenRevoked       ErrorCode = "TOKEN_REVOKED"
)

// Sentinel errors returned by the pure quiz functions. Services translate them
// into DomainErrors.
var (
	ErrInsufficientVocabulary = errors.New("insufficient vocabulary to generate quiz")
	ErrInvalidQuestionCount   = errors.New("question count must be greater than 0")
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap exposes the cause to errors.Is / errors.As.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// WithContext attaches a detail entry returned to the client alongside the error.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// IsCode reports whether err is a DomainError carrying code.
func IsCode(err error, code ErrorCode) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

// Helper functions for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewUnauthorizedError(message string) *DomainError {
	return NewError(CodeUnauthorized, message, nil)
}

func NewConflictError(message string) *DomainError {
	return NewError(CodeConflict, message, nil)
}

func NewQuizNotFoundError(quizID string) *DomainError {
	return NewError(CodeQuizNotFound, "Quiz not found", nil).WithContext("quizId", quizID)
}

func NewQuizUnavailableError(available, requested int) *DomainError {
	return NewError(CodeQuizUnavailable, "Not enough words to generate a quiz.", ErrInsufficientVocabulary).
		WithContext("available", available).
		WithContext("requested", requested)
}

func NewResultNotFoundError(resultID string) *DomainError {
	return NewError(CodeResultNotFound, "Quiz result not found", nil).WithContext("resultId", resultID)
}

func NewWordNotFoundError(wordID string) *DomainError {
	return NewError(CodeWordNotFound, "Word not found or does not belong to the user", nil).WithContext("wordId", wordID)
}

func NewUserNotFoundError(userID string) *DomainError {
	return NewError(CodeUserNotFound, "User not found.", nil).WithContext("userId", userID)
}

func NewInvalidCredentialsError() *DomainError {
	return NewError(CodeInvalidCredentials, "Invalid credentials", nil)
}

func NewTokenRevokedError() *DomainError {
	return NewError(CodeTokenRevoked, "Token is invalidated, please log in again.", nil)
}
