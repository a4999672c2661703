package service

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/octobees/partner-intelligence/api/internal/auth"
	"github.com/octobees/partner-intelligence/api/internal/entity"
	"github.com/octobees/partner-intelligence/api/internal/repository"
)

// Authentication sentinels.
var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService coordinates credential validation and token issuance.
type AuthService struct {
	users repository.UsersRepository
	jwt   *auth.JWTManager
}

// NewAuthService constructs a new AuthService.
func NewAuthService(users repository.UsersRepository, jwtManager *auth.JWTManager) *AuthService {
	return &AuthService{users: users, jwt: jwtManager}
}

// Register creates a self-service analyst account and logs the new user
// straight in. Elevated roles are granted through the admin endpoints.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, *entity.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return "", nil, ValidationError{Message: "name, email and password are required"}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	user, err := s.users.Create(ctx, name, email, string(hashed), entity.RoleAnalyst)
	if err != nil {
		if errors.Is(err, repository.ErrEmailDuplicate) {
			return "", nil, ErrEmailAlreadyExists
		}
		return "", nil, err
	}

	token, err := s.jwt.GenerateToken(user.ID.String(), user.Email, user.Name, user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Login validates credentials and returns a JWT with the account.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	if email == "" || password == "" {
		return "", nil, ValidationError{Message: "email and password are required"}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID.String(), user.Email, user.Name, user.Role)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}
