package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/octobees/partner-intelligence/api/internal/entity"
)

// ErrMemberEmailTaken is returned when a team member email already exists.
var ErrMemberEmailTaken = errors.New("team member email already exists")

// TeamMembersRepository persists the sales team roster.
type TeamMembersRepository interface {
	Insert(ctx context.Context, member *entity.TeamMember) error
	List(ctx context.Context) ([]entity.TeamMember, error)
}

// PGXTeamMembersRepository implements TeamMembersRepository with pgx.
type PGXTeamMembersRepository struct {
	pool pgxPool
}

// NewPGXTeamMembersRepository instantiates a team members repository.
func NewPGXTeamMembersRepository(pool *pgxpool.Pool) *PGXTeamMembersRepository {
	return &PGXTeamMembersRepository{pool: pool}
}

// Insert adds a team member. Email uniqueness is enforced by the schema.
func (r *PGXTeamMembersRepository) Insert(ctx context.Context, member *entity.TeamMember) error {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO team_members (id, name, email, role, department, joined_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `, member.ID, member.Name, member.Email, member.Role, member.Department, member.JoinedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && strings.Contains(pgErr.Message, "team_members_email_key") {
			return fmt.Errorf("%w: %v", ErrMemberEmailTaken, pgErr)
		}
		return fmt.Errorf("insert team member: %w", err)
	}
	return nil
}

// List returns all team members ordered by name.
func (r *PGXTeamMembersRepository) List(ctx context.Context) ([]entity.TeamMember, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, email, role, department, joined_at FROM team_members ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}
	defer rows.Close()

	var members []entity.TeamMember
	for rows.Next() {
		var member entity.TeamMember
		if err := rows.Scan(&member.ID, &member.Name, &member.Email, &member.Role, &member.Department, &member.JoinedAt); err != nil {
			return nil, fmt.Errorf("scan team member row: %w", err)
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate team members: %w", err)
	}
	return members, nil
}
