package errors

import (
	"errors"
	"fmt"
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
	Context string // Additional context like "with this email"
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

// ValidationError represents a validation error
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

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound         = &NotFoundError{Entity: "user"}
	ErrPlayerNotFound       = &NotFoundError{Entity: "player"}
	ErrMatchNotFound        = &NotFoundError{Entity: "match"}
	ErrLineupEntryNotFound  = &NotFoundError{Entity: "lineup entry"}
	ErrMatchEventNotFound   = &NotFoundError{Entity: "match event"}
	ErrAnnouncementNotFound = &NotFoundError{Entity: "announcement"}
	ErrGalleryPhotoNotFound = &NotFoundError{Entity: "gallery photo"}
)

// Already Exists Errors
var (
	ErrUserExists         = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrJerseyNumberTaken  = &AlreadyExistsError{Entity: "player", Context: "with this jersey number"}
	ErrPlayerInLineup     = &AlreadyExistsError{Entity: "lineup entry", Context: "for this player in the match"}
	ErrAdminAlreadyExists = &AlreadyExistsError{Entity: "administrator", Context: "(bootstrap already completed)"}
)

// Business Logic Errors
var (
	ErrInvalidPosition         = errors.New("invalid player position")
	ErrInvalidMatchStatus      = errors.New("invalid match status")
	ErrInvalidVenue            = errors.New("invalid venue")
	ErrInvalidEventType        = errors.New("invalid match event type")
	ErrInvalidLineupRole       = errors.New("invalid lineup role")
	ErrInvalidRole             = errors.New("invalid user role")
	ErrPlayerInactive          = errors.New("player is not active")
	ErrStartingLineupFull      = errors.New("starting lineup already has 11 players")
	ErrMatchCancelled          = errors.New("match is cancelled")
	ErrScoreRequired           = errors.New("both home and away goals are required to record a result")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
	ErrLastAdmin               = errors.New("cannot remove the last remaining administrator")
)

// Authentication Errors
var (
	ErrInvalidCredentials  = &AuthenticationError{Message: "invalid email or password"}
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token has expired")
	ErrUserInactive        = &AuthenticationError{Message: "user account is deactivated"}
	ErrPasswordConfirm     = &AuthorizationError{Message: "password confirmation failed"}
	ErrAdminRequired       = &AuthorizationError{Message: "administrator role required"}
)

// Configuration Errors
var (
	ErrImageHostNotConfigured = &ConfigurationError{Message: "image host API key is not configured"}
	ErrImageHostUploadFailed  = errors.New("image host upload failed")
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

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
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

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
