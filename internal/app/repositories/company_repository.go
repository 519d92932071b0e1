package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yigit/placementhub/internal/app/models"
	"github.com/yigit/placementhub/internal/pkg/apperrors"
	"github.com/yigit/placementhub/internal/pkg/dberrors"
	"github.com/yigit/placementhub/internal/pkg/logger"
)

// ICompanyRepository defines the interface for company database operations
type ICompanyRepository interface {
	Create(ctx context.Context, company *models.Company) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Company, error)
	NameExists(ctx context.Context, name string) (bool, error)
	GetAll(ctx context.Context) ([]*models.Company, error)
	Delete(ctx context.Context, id int64) error
}

// CompanyRepository handles company database operations
type CompanyRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCompanyRepository creates a new CompanyRepository
func NewCompanyRepository(db *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var companyColumns = []string{
	"id", "name", "visiting_date", "min_tenth_marks", "min_twelfth_marks",
	"min_cgpa_aggregate", "allows_backlog", "created_at", "updated_at",
}

func scanCompany(row pgx.Row) (*models.Company, error) {
	c := &models.Company{}
	err := row.Scan(
		&c.ID, &c.Name, &c.VisitingDate,
		&c.Eligibility.TenthMarks, &c.Eligibility.TwelfthMarks,
		&c.Eligibility.CGPAAggregate, &c.Eligibility.ActiveBacklog,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Create inserts a new company. The unique index on name backstops the
// check-then-insert done in the service layer.
func (r *CompanyRepository) Create(ctx context.Context, company *models.Company) (int64, error) {
	sql, args, err := r.sb.Insert("companies").
		Columns("name", "visiting_date", "min_tenth_marks", "min_twelfth_marks", "min_cgpa_aggregate", "allows_backlog").
		Values(
			company.Name, company.VisitingDate,
			company.Eligibility.TenthMarks, company.Eligibility.TwelfthMarks,
			company.Eligibility.CGPAAggregate, company.Eligibility.ActiveBacklog,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create company query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrCompanyAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create company query")
		return 0, fmt.Errorf("error creating company: %w", err)
	}

	return id, nil
}

// GetByID retrieves a company by ID
func (r *CompanyRepository) GetByID(ctx context.Context, id int64) (*models.Company, error) {
	sql, args, err := r.sb.Select(companyColumns...).
		From("companies").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get company query: %w", err)
	}

	company, err := scanCompany(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCompanyNotFound
		}
		logger.Error().Err(err).Int64("companyID", id).Msg("Error scanning company row")
		return nil, fmt.Errorf("error getting company by ID: %w", err)
	}

	return company, nil
}

// NameExists checks whether a company with the name already exists
func (r *CompanyRepository) NameExists(ctx context.Context, name string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("companies").
		Where(squirrel.Eq{"name": name}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build company name existence query: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Str("name", name).Msg("Error checking company name existence")
		return false, fmt.Errorf("error checking company name existence: %w", err)
	}

	return exists, nil
}

// GetAll retrieves all companies, soonest visit first
func (r *CompanyRepository) GetAll(ctx context.Context) ([]*models.Company, error) {
	sql, args, err := r.sb.Select(companyColumns...).
		From("companies").
		OrderBy("visiting_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all companies query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all companies query")
		return nil, fmt.Errorf("error querying companies: %w", err)
	}
	defer rows.Close()

	companies := []*models.Company{}
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning company row: %w", err)
		}
		companies = append(companies, company)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating company rows: %w", err)
	}

	return companies, nil
}

// Delete removes a company by ID. Applications referencing it stay behind.
func (r *CompanyRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("companies").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete company query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("companyID", id).Msg("Error executing delete company query")
		return fmt.Errorf("error deleting company: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCompanyNotFound
	}

	return nil
}
