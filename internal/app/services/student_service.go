package services

import (
	"context"
	"fmt"

	"github.com/yigit/placementhub/internal/app/models"
	"github.com/yigit/placementhub/internal/app/models/dto"
	"github.com/yigit/placementhub/internal/app/repositories"
	"github.com/yigit/placementhub/internal/pkg/apperrors"
	"github.com/yigit/placementhub/internal/pkg/validation"
)

// StudentService defines the interface for student profile operations
type StudentService interface {
	GetProfile(ctx context.Context, studentID int64) (*models.Student, error)
	UpdateProfile(ctx context.Context, studentID int64, req *dto.UpdateProfileRequest) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	Delete(ctx context.Context, id int64) error
	Notifications(ctx context.Context, studentID int64) ([]*models.Notification, error)
}

type studentServiceImpl struct {
	studentRepo      repositories.IStudentRepository
	notificationRepo repositories.INotificationRepository
}

// NewStudentService creates a new StudentService
func NewStudentService(studentRepo repositories.IStudentRepository, notificationRepo repositories.INotificationRepository) StudentService {
	return &studentServiceImpl{
		studentRepo:      studentRepo,
		notificationRepo: notificationRepo,
	}
}

// GetProfile retrieves a student's own profile
func (s *studentServiceImpl) GetProfile(ctx context.Context, studentID int64) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, studentID)
}

// UpdateProfile applies a partial profile update: absent fields keep their
// stored values. The registration form posts the whole profile; later edits
// may send individual fields.
func (s *studentServiceImpl) UpdateProfile(ctx context.Context, studentID int64, req *dto.UpdateProfileRequest) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		student.Name = *req.Name
	}
	if req.ClassName != nil {
		student.ClassName = *req.ClassName
	}
	if req.Division != nil {
		student.Division = *req.Division
	}
	if req.Branch != nil {
		student.Branch = models.Branch(*req.Branch)
	}
	if req.Gender != nil {
		student.Gender = models.Gender(*req.Gender)
	}
	if req.MobileNumber != nil {
		if !validation.IsValidMobileNumber(*req.MobileNumber) {
			return nil, fmt.Errorf("%w: mobile number must be 10 digits", apperrors.ErrValidationFailed)
		}
		student.MobileNumber = *req.MobileNumber
	}
	if req.TenthMarks != nil {
		student.TenthMarks = *req.TenthMarks
	}
	if req.TwelfthMarks != nil {
		student.TwelfthMarks = *req.TwelfthMarks
	}
	if req.CGPAAggregate != nil {
		student.CGPAAggregate = *req.CGPAAggregate
	}
	if req.ActiveBacklog != nil {
		student.ActiveBacklog = models.BacklogFlag(*req.ActiveBacklog)
	}
	if req.ResumeURL != nil {
		student.ResumeURL = *req.ResumeURL
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// GetAll retrieves all students, for the admin dashboard
func (s *studentServiceImpl) GetAll(ctx context.Context) ([]*models.Student, error) {
	return s.studentRepo.GetAll(ctx)
}

// Delete hard-deletes a student account. Issued tokens are not revoked; the
// authorization gate rejects them once the record is gone.
func (s *studentServiceImpl) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}
	return s.studentRepo.Delete(ctx, id)
}

// Notifications retrieves the student's inbox, newest first
func (s *studentServiceImpl) Notifications(ctx context.Context, studentID int64) ([]*models.Notification, error) {
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		return nil, err
	}
	return s.notificationRepo.ListByStudent(ctx, studentID)
}
