package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "location"}
		assert.Equal(t, "location not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "location"}
		err2 := &NotFoundError{Entity: "location"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "location"}
		err2 := &NotFoundError{Entity: "club member"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrClubMemberNotFound, ErrClubMemberNotFound))
		assert.False(t, errors.Is(ErrClubMemberNotFound, ErrLocationNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrSessionNotFound))
		assert.False(t, IsNotFound(ErrMemberNotActive))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "location", Context: "with this name"}
		assert.Equal(t, "location already exists with this name", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "location"}
		assert.Equal(t, "location already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "hobby", Context: "with this name"}
		err2 := &AlreadyExistsError{Entity: "hobby", Context: "with this name"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrClubMemberExists))
		assert.False(t, IsAlreadyExists(ErrClubMemberNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "birthdate", Message: "cannot be in the future"}
		assert.Equal(t, "validation error: birthdate - cannot be in the future", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "cannot be in the future"}
		assert.Equal(t, "validation error: cannot be in the future", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("email", "invalid")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrLocationNotFound))
	})
}

func TestReferentialConflictError(t *testing.T) {
	t.Run("Error message with dependents", func(t *testing.T) {
		err := &ReferentialConflictError{
			Entity:     "location",
			Dependents: []string{"3 club members", "1 family members"},
		}
		assert.Equal(t, "location is referenced by dependent records: 3 club members, 1 family members", err.Error())
	})

	t.Run("Error message without dependents", func(t *testing.T) {
		err := &ReferentialConflictError{Entity: "location"}
		assert.Equal(t, "location is referenced by dependent records", err.Error())
	})

	t.Run("IsReferentialConflict helper", func(t *testing.T) {
		err := NewReferentialConflictError("hobby", "2 members")
		assert.True(t, IsReferentialConflict(err))
		assert.False(t, IsReferentialConflict(ErrHobbyNotFound))
	})
}

func TestAuthenticationError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		assert.Equal(t, "invalid credentials", ErrInvalidCredentials.Error())
		assert.Equal(t, "invalid or expired token", ErrInvalidToken.Error())
		assert.Equal(t, "authorization token is missing", ErrMissingToken.Error())
	})

	t.Run("IsAuthentication helper", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrInvalidCredentials))
		assert.True(t, IsAuthentication(ErrMissingToken))
		assert.False(t, IsAuthentication(ErrClubMemberNotFound))
	})
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("custom entity")
		assert.Equal(t, "custom entity not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("custom", "in scope")
		assert.Equal(t, "custom already exists in scope", err.Error())
		assert.True(t, IsAlreadyExists(err))
	})

	t.Run("NewValidationError", func(t *testing.T) {
		err := NewValidationError("field", "message")
		assert.Equal(t, "validation error: field - message", err.Error())
		assert.True(t, IsValidation(err))
	})
}

func TestBusinessLogicErrors(t *testing.T) {
	t.Run("Report errors", func(t *testing.T) {
		assert.Error(t, ErrUnknownReport)
		assert.Error(t, ErrInvalidReportParams)
		assert.Error(t, ErrInvalidTimeRange)
	})

	t.Run("Scheduling and membership errors", func(t *testing.T) {
		assert.Error(t, ErrMemberNotActive)
		assert.Error(t, ErrSessionDateInPast)
	})
}
