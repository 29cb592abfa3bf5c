package errors

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this SSN"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a field-level or record-level validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ReferentialConflictError represents a delete or edit blocked by dependent records
type ReferentialConflictError struct {
	Entity     string
	Dependents []string
}

func (e *ReferentialConflictError) Error() string {
	if len(e.Dependents) > 0 {
		return fmt.Sprintf("%s is referenced by dependent records: %s", e.Entity, strings.Join(e.Dependents, ", "))
	}
	return fmt.Sprintf("%s is referenced by dependent records", e.Entity)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrLocationNotFound         = &NotFoundError{Entity: "location"}
	ErrPersonnelNotFound        = &NotFoundError{Entity: "personnel"}
	ErrAssignmentNotFound       = &NotFoundError{Entity: "personnel assignment"}
	ErrFamilyMemberNotFound     = &NotFoundError{Entity: "family member"}
	ErrSecondaryContactNotFound = &NotFoundError{Entity: "secondary family member"}
	ErrClubMemberNotFound       = &NotFoundError{Entity: "club member"}
	ErrHobbyNotFound            = &NotFoundError{Entity: "hobby"}
	ErrRelationshipNotFound     = &NotFoundError{Entity: "family relationship"}
	ErrPaymentNotFound          = &NotFoundError{Entity: "payment"}
	ErrSessionNotFound          = &NotFoundError{Entity: "session"}
	ErrSessionTeamNotFound      = &NotFoundError{Entity: "session team"}
	ErrPlayerAssignmentNotFound = &NotFoundError{Entity: "player assignment"}
	ErrEmailLogNotFound         = &NotFoundError{Entity: "email log"}
)

// Already Exists Errors
var (
	ErrLocationExists         = &AlreadyExistsError{Entity: "location", Context: "with this name"}
	ErrPersonnelExists        = &AlreadyExistsError{Entity: "personnel", Context: "with this SSN, medicare number or email"}
	ErrFamilyMemberExists     = &AlreadyExistsError{Entity: "family member", Context: "with this SSN, medicare number or email"}
	ErrClubMemberExists       = &AlreadyExistsError{Entity: "club member", Context: "with this SSN, medicare number or email"}
	ErrHobbyExists            = &AlreadyExistsError{Entity: "hobby", Context: "with this name"}
	ErrMemberHobbyExists      = &AlreadyExistsError{Entity: "member hobby", Context: "for this member and hobby"}
	ErrRelationshipExists     = &AlreadyExistsError{Entity: "family relationship", Context: "for this minor and guardian"}
	ErrPlayerAssignmentExists = &AlreadyExistsError{Entity: "player assignment", Context: "for this member and team"}
)

// Business Logic Errors
var (
	ErrUnknownReport       = errors.New("unknown report")
	ErrInvalidReportParams = errors.New("invalid report parameters")
	ErrMemberNotActive     = errors.New("club member is not active")
	ErrSessionDateInPast   = errors.New("session date cannot be in the past")
	ErrInvalidTimeRange    = errors.New("invalid time range")
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid credentials"}
	ErrInvalidToken       = &AuthenticationError{Message: "invalid or expired token"}
	ErrMissingToken       = &AuthenticationError{Message: "authorization token is missing"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsReferentialConflict checks if an error is a ReferentialConflictError
func IsReferentialConflict(err error) bool {
	var conflictErr *ReferentialConflictError
	return errors.As(err, &conflictErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewReferentialConflictError creates a new ReferentialConflictError
func NewReferentialConflictError(entity string, dependents ...string) error {
	return &ReferentialConflictError{Entity: entity, Dependents: dependents}
}
