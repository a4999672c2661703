package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/octobees/partner-intelligence/api/internal/dto"
	"github.com/octobees/partner-intelligence/api/internal/entity"
	"github.com/octobees/partner-intelligence/api/internal/repository"
)

// TeamService manages the sales team roster.
type TeamService struct {
	repo repository.TeamMembersRepository
}

// NewTeamService creates a new instance of TeamService.
func NewTeamService(repo repository.TeamMembersRepository) *TeamService {
	return &TeamService{repo: repo}
}

// ListTeamMembers returns all team members.
func (s *TeamService) ListTeamMembers(ctx context.Context) ([]entity.TeamMember, error) {
	members, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if members == nil {
		members = []entity.TeamMember{}
	}
	return members, nil
}

// CreateTeamMember validates the payload and adds a member to the roster.
func (s *TeamService) CreateTeamMember(ctx context.Context, req dto.CreateTeamMemberRequest) (*entity.TeamMember, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Role = strings.TrimSpace(req.Role)

	if req.Name == "" || req.Email == "" || req.Role == "" {
		return nil, ValidationError{Message: "name, email and role are required"}
	}
	if !strings.Contains(req.Email, "@") {
		return nil, ValidationError{Message: "invalid email address"}
	}

	member := &entity.TeamMember{
		ID:         uuid.New(),
		Name:       req.Name,
		Email:      req.Email,
		Role:       req.Role,
		Department: req.Department,
		JoinedAt:   time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}
