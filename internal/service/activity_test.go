package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/octobees/partner-intelligence/api/internal/dto"
	"github.com/octobees/partner-intelligence/api/internal/entity"
)

type mockActivityLogsRepository struct {
	insert func(ctx context.Context, log *entity.ActivityLog) error
	list   func(ctx context.Context, companyID *uuid.UUID) ([]entity.ActivityLog, error)
}

func (m *mockActivityLogsRepository) Insert(ctx context.Context, log *entity.ActivityLog) error {
	if m.insert != nil {
		return m.insert(ctx, log)
	}
	return errors.New("insert not implemented")
}

func (m *mockActivityLogsRepository) List(ctx context.Context, companyID *uuid.UUID) ([]entity.ActivityLog, error) {
	if m.list != nil {
		return m.list(ctx, companyID)
	}
	return nil, errors.New("list not implemented")
}

func TestActivityService_Record(t *testing.T) {
	var captured *entity.ActivityLog
	repo := &mockActivityLogsRepository{
		insert: func(ctx context.Context, log *entity.ActivityLog) error {
			captured = log
			return nil
		},
	}

	companyID := uuid.New()
	service := NewActivityService(repo)
	log, err := service.Record(context.Background(), &companyID, AuditSystemID, AuditSystemName, "company_created", "Added new company: Acme")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if captured != log {
		t.Fatalf("expected repository to receive the entry")
	}
	if log.ID == uuid.Nil || log.Timestamp.IsZero() {
		t.Fatalf("expected id and timestamp assigned: %+v", log)
	}
	if log.UserID != "system" || log.UserName != "System" {
		t.Fatalf("unexpected audit identity: %+v", log)
	}
}

func TestActivityService_ListActivityLogs(t *testing.T) {
	repo := &mockActivityLogsRepository{
		list: func(ctx context.Context, companyID *uuid.UUID) ([]entity.ActivityLog, error) {
			if companyID != nil {
				t.Fatalf("expected unscoped list, got %v", companyID)
			}
			return nil, nil
		},
	}

	logs, err := NewActivityService(repo).ListActivityLogs(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if logs == nil {
		t.Fatalf("expected empty slice, got nil")
	}
}

func TestActivityService_ListActivityLogs_InvalidCompanyID(t *testing.T) {
	service := NewActivityService(&mockActivityLogsRepository{})
	_, err := service.ListActivityLogs(context.Background(), "not-a-uuid")
	var vErr ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestActivityService_CreateActivityLog(t *testing.T) {
	var captured *entity.ActivityLog
	repo := &mockActivityLogsRepository{
		insert: func(ctx context.Context, log *entity.ActivityLog) error {
			captured = log
			return nil
		},
	}

	service := NewActivityService(repo)
	log, err := service.CreateActivityLog(context.Background(), dto.CreateActivityLogRequest{
		Action:      "note_added",
		Description: "Quarterly review scheduled",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if captured == nil {
		t.Fatalf("expected entry persisted")
	}
	if log.UserID != AuditSystemID || log.UserName != AuditSystemName {
		t.Fatalf("expected system defaults, got %+v", log)
	}

	if _, err := service.CreateActivityLog(context.Background(), dto.CreateActivityLogRequest{}); err == nil {
		t.Fatalf("expected validation error for empty payload")
	}
}
