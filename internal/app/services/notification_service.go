package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/yigit/placementhub/internal/app/models/dto"
	"github.com/yigit/placementhub/internal/app/repositories"
	"github.com/yigit/placementhub/internal/pkg/apperrors"
	"github.com/yigit/placementhub/internal/pkg/ws"
)

// Broadcaster pushes a notification event to connected students.
type Broadcaster interface {
	Publish(event *ws.Event, studentIDs []int64)
}

// NotificationService defines the interface for admin notification broadcasts
type NotificationService interface {
	Send(ctx context.Context, req *dto.SendNotificationRequest) (int64, error)
}

type notificationServiceImpl struct {
	notificationRepo repositories.INotificationRepository
	broadcaster      Broadcaster
	logger           zerolog.Logger
}

// NewNotificationService creates a new NotificationService. The broadcaster
// may be nil when no realtime stream is wired (tests).
func NewNotificationService(notificationRepo repositories.INotificationRepository, broadcaster Broadcaster, logger zerolog.Logger) NotificationService {
	return &notificationServiceImpl{
		notificationRepo: notificationRepo,
		broadcaster:      broadcaster,
		logger:           logger,
	}
}

// Send appends the notification to every targeted student's inbox in one
// bulk write and reports how many rows were written. No-op sends are
// rejected, not silently accepted.
func (s *notificationServiceImpl) Send(ctx context.Context, req *dto.SendNotificationRequest) (int64, error) {
	if strings.TrimSpace(req.CompanyName) == "" {
		return 0, fmt.Errorf("%w: company name cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(req.Message) == "" {
		return 0, fmt.Errorf("%w: message cannot be empty", apperrors.ErrValidationFailed)
	}
	if len(req.EligibleStudents) == 0 {
		return 0, fmt.Errorf("%w: eligible students cannot be empty", apperrors.ErrValidationFailed)
	}

	count, err := s.notificationRepo.InsertForStudents(ctx, req.CompanyName, req.Message, req.EligibleStudents)
	if err != nil {
		return 0, err
	}

	s.logger.Info().
		Str("companyName", req.CompanyName).
		Int("targets", len(req.EligibleStudents)).
		Int64("notified", count).
		Msg("Notification broadcast stored")

	if s.broadcaster != nil {
		s.broadcaster.Publish(&ws.Event{
			CompanyName: req.CompanyName,
			Message:     req.Message,
			Date:        time.Now(),
		}, req.EligibleStudents)
	}

	return count, nil
}
