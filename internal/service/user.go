package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/Isak-k/Sanbitu-FC/internal/database/models"
	apperrors "github.com/Isak-k/Sanbitu-FC/internal/errors"
	"github.com/Isak-k/Sanbitu-FC/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService handles business logic for portal accounts
type UserService struct {
	repo      repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{
		repo:      repo,
		validator: validator,
	}
}

// CreateUserRequest represents the data needed to create a user
type CreateUserRequest struct {
	Email     string `json:"email" validate:"required,email,max=255"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Role      string `json:"role" example:"member" default:"member"` // Optional: defaults to "member". Valid values: admin, member
}

// UpdateUserRequest represents the data needed to update a user.
// ConfirmPassword is the acting administrator's own password and is required
// whenever the target account holds, gains or loses the admin role.
type UpdateUserRequest struct {
	Email           *string `json:"email" validate:"omitempty,email,max=255"`
	Password        *string `json:"password" validate:"omitempty,min=8,max=72"`
	FirstName       *string `json:"first_name" validate:"omitempty,max=100"`
	LastName        *string `json:"last_name" validate:"omitempty,max=100"`
	Role            *string `json:"role"`
	IsActive        *bool   `json:"is_active"`
	ConfirmPassword string  `json:"confirm_password"`
}

// DeleteUserRequest carries the acting administrator's password confirmation
type DeleteUserRequest struct {
	ConfirmPassword string `json:"confirm_password"`
}

// BootstrapAdminRequest represents the data needed to create the first administrator
type BootstrapAdminRequest struct {
	Email     string `json:"email" validate:"required,email,max=255"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
}

// UserResponse represents the response data for a user
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

// CreateUser creates a new user account
func (s *UserService) CreateUser(req *CreateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	role := models.UserRoleMember
	if req.Role != "" {
		role = models.UserRole(req.Role)
		if !role.IsValid() {
			return nil, apperrors.ErrInvalidRole
		}
	}

	if existing, err := s.repo.GetByEmail(req.Email); err == nil && existing != nil {
		return nil, apperrors.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         role,
		IsActive:     true,
	}

	if err := s.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return convertUserToResponse(user), nil
}

// BootstrapAdmin creates the first administrator account.
// It is rejected once any user exists.
func (s *UserService) BootstrapAdmin(req *BootstrapAdminRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	total, err := s.repo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if total > 0 {
		return nil, apperrors.ErrAdminAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         models.UserRoleAdmin,
		IsActive:     true,
	}

	if err := s.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create administrator: %w", err)
	}

	return convertUserToResponse(user), nil
}

// GetUserByID retrieves a user by ID
func (s *UserService) GetUserByID(id uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	return convertUserToResponse(user), nil
}

// ListUsers retrieves users with an optional role filter
func (s *UserService) ListUsers(role string, limit, offset int) ([]UserResponse, int64, error) {
	var roleFilter *models.UserRole
	if role != "" {
		r := models.UserRole(role)
		if !r.IsValid() {
			return nil, 0, apperrors.ErrInvalidRole
		}
		roleFilter = &r
	}

	users, total, err := s.repo.GetAll(roleFilter, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = *convertUserToResponse(&user)
	}

	return responses, total, nil
}

// Authenticate verifies a credential pair and returns the matching active user
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	user, err := s.repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperrors.ErrUserInactive
	}

	return user, nil
}

// UpdateUser updates an existing user. Mutations touching the admin role
// require the acting administrator to re-confirm their own password.
func (s *UserService) UpdateUser(id, actorID uuid.UUID, req *UpdateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	var newRole *models.UserRole
	if req.Role != nil {
		r := models.UserRole(*req.Role)
		if !r.IsValid() {
			return nil, apperrors.ErrInvalidRole
		}
		newRole = &r
	}

	touchesAdmin := user.IsAdmin() || (newRole != nil && *newRole == models.UserRoleAdmin)
	if touchesAdmin {
		if err := s.confirmActorPassword(actorID, req.ConfirmPassword); err != nil {
			return nil, err
		}
	}

	// Demoting or deactivating the last active administrator would lock
	// everyone out of the admin tier
	demotes := user.IsAdmin() && newRole != nil && *newRole != models.UserRoleAdmin
	deactivates := user.IsAdmin() && user.IsActive && req.IsActive != nil && !*req.IsActive
	if demotes || deactivates {
		admins, err := s.repo.CountActiveAdmins()
		if err != nil {
			return nil, fmt.Errorf("failed to count administrators: %w", err)
		}
		if admins <= 1 {
			return nil, apperrors.ErrLastAdmin
		}
	}

	if req.Email != nil && *req.Email != user.Email {
		if existing, err := s.repo.GetByEmail(*req.Email); err == nil && existing != nil && existing.ID != id {
			return nil, apperrors.ErrUserExists
		}
		user.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if newRole != nil {
		user.Role = *newRole
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return convertUserToResponse(user), nil
}

// DeleteUser deletes a user. Deleting an administrator requires the acting
// administrator to re-confirm their own password, and the last active
// administrator can never be deleted.
func (s *UserService) DeleteUser(id, actorID uuid.UUID, req *DeleteUserRequest) error {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return apperrors.ErrUserNotFound
	}

	if user.IsAdmin() {
		if err := s.confirmActorPassword(actorID, req.ConfirmPassword); err != nil {
			return err
		}
		admins, err := s.repo.CountActiveAdmins()
		if err != nil {
			return fmt.Errorf("failed to count administrators: %w", err)
		}
		if user.IsActive && admins <= 1 {
			return apperrors.ErrLastAdmin
		}
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}

// VerifyPassword re-checks a user's current password
func (s *UserService) VerifyPassword(id uuid.UUID, password string) error {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return apperrors.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return apperrors.ErrInvalidCredentials
	}
	return nil
}

func (s *UserService) confirmActorPassword(actorID uuid.UUID, password string) error {
	if password == "" {
		return apperrors.ErrPasswordConfirm
	}
	actor, err := s.repo.GetByID(actorID)
	if err != nil {
		return apperrors.ErrPasswordConfirm
	}
	if err := bcrypt.CompareHashAndPassword([]byte(actor.PasswordHash), []byte(password)); err != nil {
		return apperrors.ErrPasswordConfirm
	}
	return nil
}

func convertUserToResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      string(user.Role),
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
		UpdatedAt: user.UpdatedAt.Format(time.RFC3339),
	}
}
