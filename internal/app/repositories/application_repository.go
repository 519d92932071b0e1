package repositories

import (
	"context"
	"database/sql"
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

// ApplicationRecord is an application row joined with its student and company
// display fields. Company fields are Null* because the referenced company may
// have been deleted after the application was made.
type ApplicationRecord struct {
	models.Application
	CompanyName         sql.NullString
	CompanyVisitingDate sql.NullTime
	StudentName         string
	StudentEmail        string
	StudentMobileNumber string
	StudentBranch       string
}

// IApplicationRepository defines the interface for application database operations
type IApplicationRepository interface {
	Create(ctx context.Context, studentID, companyID int64) (*models.Application, error)
	ExistsForPair(ctx context.Context, studentID, companyID int64) (bool, error)
	ListByStudent(ctx context.Context, studentID int64) ([]*ApplicationRecord, error)
	ListAll(ctx context.Context) ([]*ApplicationRecord, error)
}

// ApplicationRepository handles application database operations
type ApplicationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new application in the initial Applied state. The unique
// index on (student_id, company_id) backstops the duplicate check done in
// the service layer.
func (r *ApplicationRepository) Create(ctx context.Context, studentID, companyID int64) (*models.Application, error) {
	sql, args, err := r.sb.Insert("applications").
		Columns("student_id", "company_id", "status").
		Values(studentID, companyID, models.StatusApplied).
		Suffix("RETURNING id, date_applied").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create application query: %w", err)
	}

	app := &models.Application{
		StudentID: studentID,
		CompanyID: companyID,
		Status:    models.StatusApplied,
	}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&app.ID, &app.DateApplied)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrAlreadyApplied
		}
		logger.Error().Err(err).Int64("studentID", studentID).Int64("companyID", companyID).Msg("Error executing create application query")
		return nil, fmt.Errorf("error creating application: %w", err)
	}

	return app, nil
}

// ExistsForPair checks whether the student already applied to the company
func (r *ApplicationRepository) ExistsForPair(ctx context.Context, studentID, companyID int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("applications").
		Where(squirrel.Eq{"student_id": studentID, "company_id": companyID}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build application existence query: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Msg("Error checking application existence")
		return false, fmt.Errorf("error checking application existence: %w", err)
	}

	return exists, nil
}

var applicationJoinColumns = []string{
	"a.id", "a.student_id", "a.company_id", "a.date_applied", "a.status",
	"a.interview_date", "a.interview_link",
	"c.name", "c.visiting_date",
	"s.name", "s.email", "s.mobile_number", "s.branch",
}

func scanApplicationRecord(row pgx.Row) (*ApplicationRecord, error) {
	rec := &ApplicationRecord{}
	var interviewDate sql.NullTime
	var interviewLink sql.NullString
	err := row.Scan(
		&rec.ID, &rec.StudentID, &rec.CompanyID, &rec.DateApplied, &rec.Status,
		&interviewDate, &interviewLink,
		&rec.CompanyName, &rec.CompanyVisitingDate,
		&rec.StudentName, &rec.StudentEmail, &rec.StudentMobileNumber, &rec.StudentBranch,
	)
	if err != nil {
		return nil, err
	}
	if interviewDate.Valid {
		t := interviewDate.Time
		rec.InterviewDate = &t
	}
	if interviewLink.Valid {
		l := interviewLink.String
		rec.InterviewLink = &l
	}
	return rec, nil
}

func (r *ApplicationRepository) listRecords(ctx context.Context, builder squirrel.SelectBuilder) ([]*ApplicationRecord, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build application list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing application list query")
		return nil, fmt.Errorf("error querying applications: %w", err)
	}
	defer rows.Close()

	records := []*ApplicationRecord{}
	for rows.Next() {
		rec, err := scanApplicationRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning application row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating application rows: %w", err)
	}

	return records, nil
}

// ListByStudent retrieves a student's applications newest first, joined with
// company display fields.
func (r *ApplicationRepository) ListByStudent(ctx context.Context, studentID int64) ([]*ApplicationRecord, error) {
	builder := r.sb.Select(applicationJoinColumns...).
		From("applications a").
		LeftJoin("companies c ON c.id = a.company_id").
		Join("students s ON s.id = a.student_id").
		Where(squirrel.Eq{"a.student_id": studentID}).
		OrderBy("a.date_applied DESC")
	return r.listRecords(ctx, builder)
}

// ListAll retrieves every application with both student and company display
// fields, for the admin dashboard.
func (r *ApplicationRepository) ListAll(ctx context.Context) ([]*ApplicationRecord, error) {
	builder := r.sb.Select(applicationJoinColumns...).
		From("applications a").
		LeftJoin("companies c ON c.id = a.company_id").
		Join("students s ON s.id = a.student_id").
		OrderBy("a.id ASC")
	return r.listRecords(ctx, builder)
}
