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

// Audit identities: CRUD entries are attributed to the system, generated
// narratives to the AI analyst.
const (
	AuditSystemID   = "system"
	AuditSystemName = "System"
	AuditAIID       = "ai"
	AuditAIName     = "AI Analysis"
)

// ActivityService manages the append-only audit trail.
type ActivityService struct {
	repo repository.ActivityLogsRepository
}

// NewActivityService creates a new instance of ActivityService.
func NewActivityService(repo repository.ActivityLogsRepository) *ActivityService {
	return &ActivityService{repo: repo}
}

// ListActivityLogs returns entries newest first. An empty companyID returns
// the full trail.
func (s *ActivityService) ListActivityLogs(ctx context.Context, companyID string) ([]entity.ActivityLog, error) {
	var scope *uuid.UUID
	if strings.TrimSpace(companyID) != "" {
		parsed, err := uuid.Parse(companyID)
		if err != nil {
			return nil, ValidationError{Message: "invalid company id"}
		}
		scope = &parsed
	}

	logs, err := s.repo.List(ctx, scope)
	if err != nil {
		return nil, err
	}
	if logs == nil {
		logs = []entity.ActivityLog{}
	}
	return logs, nil
}

// Record appends an audit entry, assigning id and timestamp.
func (s *ActivityService) Record(ctx context.Context, companyID *uuid.UUID, userID, userName, action, description string) (*entity.ActivityLog, error) {
	log := &entity.ActivityLog{
		ID:          uuid.New(),
		CompanyID:   companyID,
		UserID:      userID,
		UserName:    userName,
		Action:      action,
		Description: description,
		Timestamp:   time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

// CreateActivityLog validates and appends an externally submitted entry.
func (s *ActivityService) CreateActivityLog(ctx context.Context, req dto.CreateActivityLogRequest) (*entity.ActivityLog, error) {
	if strings.TrimSpace(req.Action) == "" || strings.TrimSpace(req.Description) == "" {
		return nil, ValidationError{Message: "action and description are required"}
	}

	userID := strings.TrimSpace(req.UserID)
	userName := strings.TrimSpace(req.UserName)
	if userID == "" {
		userID = AuditSystemID
	}
	if userName == "" {
		userName = AuditSystemName
	}

	var companyID *uuid.UUID
	if req.CompanyID != nil && strings.TrimSpace(*req.CompanyID) != "" {
		parsed, err := uuid.Parse(*req.CompanyID)
		if err != nil {
			return nil, ValidationError{Message: "invalid company id"}
		}
		companyID = &parsed
	}

	return s.Record(ctx, companyID, userID, userName, req.Action, req.Description)
}
