package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/octobees/partner-intelligence/api/internal/entity"
)

// ErrCompanyNotFound is returned when no company matches the given id.
var ErrCompanyNotFound = errors.New("company not found")

// CompanyFilter is the normalized listing filter. All predicates are
// AND-combined; nil pointer fields mean "no constraint". Search matches
// name, industry or country case-insensitively.
type CompanyFilter struct {
	Search            string
	Industry          *string
	DigitalTwinStatus *string
	Country           *string
	MinScore          *int
	MaxScore          *int
}

// CompanyPatch carries a partial update. Only non-nil fields are written;
// last_updated is always refreshed, even for an empty patch.
type CompanyPatch struct {
	Name                *string
	Industry            *string
	Country             *string
	Employees           *int
	Revenue             *string
	Headquarters        *string
	CEO                 *string
	Founded             *int
	Website             *string
	BusinessAreas       *[]string
	DigitalTwinStatus   *string
	DigitalTwinMaturity *int
	OpportunityScore    *int
	EstimatedDealValue  *string
	NextFollowUp        *time.Time
	Notes               *string
	CompetitiveAnalysis *string
	DellOpportunity     *string
	DigitalTwinStrategy *string
}

// CompaniesRepository describes persistence operations for partner companies.
type CompaniesRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Company, error)
	List(ctx context.Context, filter CompanyFilter) ([]entity.Company, error)
	Update(ctx context.Context, id uuid.UUID, patch CompanyPatch) (*entity.Company, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// pgxPool is the subset of pgxpool.Pool the repositories depend on,
// extracted so tests can stub the database.
type pgxPool interface {
	QueryRow(ctx context.Context, query string, args ...any) pgx.Row
	Query(ctx context.Context, query string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error)
}

var _ pgxPool = (*pgxpool.Pool)(nil)

// PGXCompaniesRepository implements CompaniesRepository using pgx.
type PGXCompaniesRepository struct {
	pool pgxPool
}

// NewPGXCompaniesRepository wires a pgx backed repository.
func NewPGXCompaniesRepository(pool *pgxpool.Pool) *PGXCompaniesRepository {
	return &PGXCompaniesRepository{pool: pool}
}

const companyColumns = `
        id, name, industry, country, employees, revenue, headquarters, ceo,
        founded, website, business_areas, digital_twin_status,
        digital_twin_maturity, opportunity_score, estimated_deal_value,
        last_updated, next_follow_up, notes, competitive_analysis,
        dell_opportunity, digital_twin_strategy`

// Create inserts a fully populated company row. The caller assigns the id
// and last_updated timestamp.
func (r *PGXCompaniesRepository) Create(ctx context.Context, company *entity.Company) error {
	if company == nil {
		return fmt.Errorf("company payload is nil")
	}

	areas, err := json.Marshal(company.BusinessAreas)
	if err != nil {
		return fmt.Errorf("encode business areas: %w", err)
	}

	query := `
        INSERT INTO companies (
            id, name, industry, country, employees, revenue, headquarters,
            ceo, founded, website, business_areas, digital_twin_status,
            digital_twin_maturity, opportunity_score, estimated_deal_value,
            last_updated, next_follow_up, notes, competitive_analysis,
            dell_opportunity, digital_twin_strategy
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11::jsonb, $12,
            $13, $14, $15, $16, $17, $18, $19, $20, $21
        )`

	_, err = r.pool.Exec(ctx, query,
		company.ID,
		company.Name,
		company.Industry,
		company.Country,
		company.Employees,
		company.Revenue,
		company.Headquarters,
		company.CEO,
		company.Founded,
		company.Website,
		areas,
		company.DigitalTwinStatus,
		company.DigitalTwinMaturity,
		company.OpportunityScore,
		company.EstimatedDealValue,
		company.LastUpdated,
		company.NextFollowUp,
		company.Notes,
		company.CompetitiveAnalysis,
		company.DellOpportunity,
		company.DigitalTwinStrategy,
	)
	if err != nil {
		return fmt.Errorf("insert company: %w", err)
	}

	return nil
}

// GetByID fetches a single company or ErrCompanyNotFound.
func (r *PGXCompaniesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id)

	company, err := scanCompany(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("query company by id: %w", err)
	}

	return company, nil
}

// List retrieves companies matching the filter, newest activity first.
func (r *PGXCompaniesRepository) List(ctx context.Context, filter CompanyFilter) ([]entity.Company, error) {
	var (
		clauses []string
		args    []any
		idx     = 1
	)

	if filter.Search != "" {
		pattern := fmt.Sprintf("%%%s%%", filter.Search)
		clauses = append(clauses, fmt.Sprintf("(name ILIKE $%d OR industry ILIKE $%d OR country ILIKE $%d)", idx, idx+1, idx+2))
		args = append(args, pattern, pattern, pattern)
		idx += 3
	}
	if filter.Industry != nil {
		clauses = append(clauses, fmt.Sprintf("industry = $%d", idx))
		args = append(args, *filter.Industry)
		idx++
	}
	if filter.DigitalTwinStatus != nil {
		clauses = append(clauses, fmt.Sprintf("digital_twin_status = $%d", idx))
		args = append(args, *filter.DigitalTwinStatus)
		idx++
	}
	if filter.Country != nil {
		clauses = append(clauses, fmt.Sprintf("country = $%d", idx))
		args = append(args, *filter.Country)
		idx++
	}
	if filter.MinScore != nil {
		clauses = append(clauses, fmt.Sprintf("opportunity_score >= $%d", idx))
		args = append(args, *filter.MinScore)
		idx++
	}
	if filter.MaxScore != nil {
		clauses = append(clauses, fmt.Sprintf("opportunity_score <= $%d", idx))
		args = append(args, *filter.MaxScore)
		idx++
	}

	query := strings.Builder{}
	query.WriteString(`SELECT ` + companyColumns + ` FROM companies`)
	if len(clauses) > 0 {
		query.WriteString(" WHERE ")
		query.WriteString(strings.Join(clauses, " AND "))
	}
	query.WriteString(" ORDER BY last_updated DESC")

	rows, err := r.pool.Query(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	return scanCompanies(rows)
}

// Update applies the non-nil patch fields and refreshes last_updated in the
// same statement. Returns ErrCompanyNotFound when the id does not exist.
func (r *PGXCompaniesRepository) Update(ctx context.Context, id uuid.UUID, patch CompanyPatch) (*entity.Company, error) {
	setClauses := make([]string, 0)
	args := make([]any, 0)
	idx := 1

	set := func(column string, value any) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, idx))
		args = append(args, value)
		idx++
	}

	if patch.Name != nil {
		set("name", *patch.Name)
	}
	if patch.Industry != nil {
		set("industry", *patch.Industry)
	}
	if patch.Country != nil {
		set("country", *patch.Country)
	}
	if patch.Employees != nil {
		set("employees", *patch.Employees)
	}
	if patch.Revenue != nil {
		set("revenue", *patch.Revenue)
	}
	if patch.Headquarters != nil {
		set("headquarters", *patch.Headquarters)
	}
	if patch.CEO != nil {
		set("ceo", *patch.CEO)
	}
	if patch.Founded != nil {
		set("founded", *patch.Founded)
	}
	if patch.Website != nil {
		set("website", *patch.Website)
	}
	if patch.BusinessAreas != nil {
		areas, err := json.Marshal(*patch.BusinessAreas)
		if err != nil {
			return nil, fmt.Errorf("encode business areas: %w", err)
		}
		setClauses = append(setClauses, fmt.Sprintf("business_areas = $%d::jsonb", idx))
		args = append(args, areas)
		idx++
	}
	if patch.DigitalTwinStatus != nil {
		set("digital_twin_status", *patch.DigitalTwinStatus)
	}
	if patch.DigitalTwinMaturity != nil {
		set("digital_twin_maturity", *patch.DigitalTwinMaturity)
	}
	if patch.OpportunityScore != nil {
		set("opportunity_score", *patch.OpportunityScore)
	}
	if patch.EstimatedDealValue != nil {
		set("estimated_deal_value", *patch.EstimatedDealValue)
	}
	if patch.NextFollowUp != nil {
		set("next_follow_up", *patch.NextFollowUp)
	}
	if patch.Notes != nil {
		set("notes", *patch.Notes)
	}
	if patch.CompetitiveAnalysis != nil {
		set("competitive_analysis", *patch.CompetitiveAnalysis)
	}
	if patch.DellOpportunity != nil {
		set("dell_opportunity", *patch.DellOpportunity)
	}
	if patch.DigitalTwinStrategy != nil {
		set("digital_twin_strategy", *patch.DigitalTwinStrategy)
	}

	// Even an empty patch bumps last_updated.
	setClauses = append(setClauses, "last_updated = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE companies SET %s WHERE id = $%d RETURNING `+companyColumns,
		strings.Join(setClauses, ", "), idx)

	company, err := scanCompany(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("update company: %w", err)
	}

	return company, nil
}

// Delete removes a company. The boolean result reports whether a row
// existed; a missing id is not an error.
func (r *PGXCompaniesRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete company: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func scanCompany(row pgx.Row) (*entity.Company, error) {
	var (
		company entity.Company
		areas   []byte
	)
	err := row.Scan(
		&company.ID,
		&company.Name,
		&company.Industry,
		&company.Country,
		&company.Employees,
		&company.Revenue,
		&company.Headquarters,
		&company.CEO,
		&company.Founded,
		&company.Website,
		&areas,
		&company.DigitalTwinStatus,
		&company.DigitalTwinMaturity,
		&company.OpportunityScore,
		&company.EstimatedDealValue,
		&company.LastUpdated,
		&company.NextFollowUp,
		&company.Notes,
		&company.CompetitiveAnalysis,
		&company.DellOpportunity,
		&company.DigitalTwinStrategy,
	)
	if err != nil {
		return nil, err
	}

	if len(areas) > 0 {
		if err := json.Unmarshal(areas, &company.BusinessAreas); err != nil {
			return nil, fmt.Errorf("decode business areas: %w", err)
		}
	}
	if company.BusinessAreas == nil {
		company.BusinessAreas = []string{}
	}

	return &company, nil
}

func scanCompanies(rows pgx.Rows) ([]entity.Company, error) {
	var companies []entity.Company
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company row: %w", err)
		}
		companies = append(companies, *company)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate companies: %w", err)
	}
	return companies, nil
}
