package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/octobees/partner-intelligence/api/internal/entity"
)

func TestPGXTeamMembersRepository_Insert(t *testing.T) {
	called := false
	repo := &PGXTeamMembersRepository{pool: &stubPool{
		execFunc: func(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
			called = true
			if len(args) != 6 {
				t.Fatalf("expected 6 args, got %d", len(args))
			}
			return pgconn.CommandTag{}, nil
		},
	}}

	err := repo.Insert(context.Background(), &entity.TeamMember{
		ID:       uuid.New(),
		Name:     "Jordan Lee",
		Email:    "jordan@example.com",
		Role:     "Account Executive",
		JoinedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatalf("expected exec to be called")
	}
}

func TestPGXTeamMembersRepository_Insert_DuplicateEmail(t *testing.T) {
	repo := &PGXTeamMembersRepository{pool: &stubPool{
		execFunc: func(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
			return pgconn.CommandTag{}, &pgconn.PgError{
				Code:    "23505",
				Message: `duplicate key value violates unique constraint "team_members_email_key"`,
			}
		},
	}}

	err := repo.Insert(context.Background(), &entity.TeamMember{
		ID:    uuid.New(),
		Email: "jordan@example.com",
	})
	if !errors.Is(err, ErrMemberEmailTaken) {
		t.Fatalf("expected ErrMemberEmailTaken, got %v", err)
	}
}

func TestPGXTeamMembersRepository_List(t *testing.T) {
	repo := &PGXTeamMembersRepository{pool: &stubPool{
		queryFunc: func(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
			return &stubRows{scans: []func(dest ...any) error{
				func(dest ...any) error {
					department := "Enterprise Sales"
					*dest[0].(*uuid.UUID) = uuid.New()
					*dest[1].(*string) = "Jordan Lee"
					*dest[2].(*string) = "jordan@example.com"
					*dest[3].(*string) = "Account Executive"
					*dest[4].(**string) = &department
					*dest[5].(*time.Time) = time.Now()
					return nil
				},
			}}, nil
		},
	}}

	members, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(members) != 1 || members[0].Email != "jordan@example.com" {
		t.Fatalf("unexpected members: %+v", members)
	}
	if members[0].Department == nil || *members[0].Department != "Enterprise Sales" {
		t.Fatalf("expected department set, got %+v", members[0].Department)
	}
}
