package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/octobees/partner-intelligence/api/internal/dto"
	"github.com/octobees/partner-intelligence/api/internal/entity"
	"github.com/octobees/partner-intelligence/api/internal/repository"
)

// UserService encapsulates administrative account operations.
type UserService struct {
	repo repository.UsersRepository
}

// NewUserService builds a new UserService instance.
func NewUserService(repo repository.UsersRepository) *UserService {
	return &UserService{repo: repo}
}

// UserToResponse maps an account entity to its client representation.
func UserToResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:    u.ID.String(),
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

// ListUsers returns all accounts as DTOs.
func (s *UserService) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, UserToResponse(&users[i]))
	}
	return responses, nil
}

// CreateUser provisions an account with the supplied role, defaulting new
// accounts to analyst.
func (s *UserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Role = strings.TrimSpace(req.Role)

	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, ValidationError{Message: "name, email and password are required"}
	}
	if req.Role == "" {
		req.Role = entity.RoleAnalyst
	}
	if !entity.IsValidRole(req.Role) {
		return nil, ValidationError{Message: fmt.Sprintf("unknown role %q", req.Role)}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.Create(ctx, req.Name, req.Email, string(hashed), req.Role)
	if err != nil {
		return nil, err
	}

	resp := UserToResponse(user)
	return &resp, nil
}

// UpdateUser mutates selected account fields.
func (s *UserService) UpdateUser(ctx context.Context, id string, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, ValidationError{Message: "invalid user id"}
	}

	patch := repository.UserPatch{}

	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		if trimmed == "" {
			return nil, ValidationError{Message: "name cannot be empty"}
		}
		patch.Name = &trimmed
	}
	if req.Email != nil {
		trimmed := strings.TrimSpace(*req.Email)
		if trimmed == "" {
			return nil, ValidationError{Message: "email cannot be empty"}
		}
		patch.Email = &trimmed
	}
	if req.Role != nil {
		trimmed := strings.TrimSpace(*req.Role)
		if !entity.IsValidRole(trimmed) {
			return nil, ValidationError{Message: fmt.Sprintf("unknown role %q", trimmed)}
		}
		patch.Role = &trimmed
	}
	if req.Password != nil {
		if strings.TrimSpace(*req.Password) == "" {
			return nil, ValidationError{Message: "password cannot be empty"}
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		pwd := string(hashed)
		patch.PasswordHash = &pwd
	}

	user, err := s.repo.Update(ctx, userID, patch)
	if err != nil {
		return nil, err
	}

	resp := UserToResponse(user)
	return &resp, nil
}

// DeleteUser removes an account by id.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	userID, err := uuid.Parse(id)
	if err != nil {
		return ValidationError{Message: "invalid user id"}
	}
	return s.repo.Delete(ctx, userID)
}
