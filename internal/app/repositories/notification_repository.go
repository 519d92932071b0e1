package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yigit/placementhub/internal/app/models"
	"github.com/yigit/placementhub/internal/pkg/logger"
)

// INotificationRepository defines the interface for notification database operations
type INotificationRepository interface {
	InsertForStudents(ctx context.Context, companyName, message string, studentIDs []int64) (int64, error)
	ListByStudent(ctx context.Context, studentID int64) ([]*models.Notification, error)
}

// NotificationRepository handles notification database operations
type NotificationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// InsertForStudents appends one notification row per targeted student in a
// single bulk statement. Ids that no longer resolve to a student are skipped,
// so the returned count may be lower than len(studentIDs).
func (r *NotificationRepository) InsertForStudents(ctx context.Context, companyName, message string, studentIDs []int64) (int64, error) {
	sql, args, err := r.sb.Insert("notifications").
		Columns("student_id", "company_name", "message").
		Select(
			squirrel.Select("id").
				Column(squirrel.Expr("?", companyName)).
				Column(squirrel.Expr("?", message)).
				From("students").
				Where(squirrel.Expr("id = ANY(?)", studentIDs)),
		).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert notifications query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("companyName", companyName).Msg("Error executing insert notifications query")
		return 0, fmt.Errorf("error inserting notifications: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}

// ListByStudent retrieves a student's notifications newest first. Ordering is
// applied at read time.
func (r *NotificationRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Notification, error) {
	sql, args, err := r.sb.Select("id", "student_id", "company_name", "message", "created_at").
		From("notifications").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list notifications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing list notifications query")
		return nil, fmt.Errorf("error querying notifications: %w", err)
	}
	defer rows.Close()

	notifications := []*models.Notification{}
	for rows.Next() {
		n := &models.Notification{}
		if err := rows.Scan(&n.ID, &n.StudentID, &n.CompanyName, &n.Message, &n.Date); err != nil {
			return nil, fmt.Errorf("error scanning notification row: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notification rows: %w", err)
	}

	return notifications, nil
}
