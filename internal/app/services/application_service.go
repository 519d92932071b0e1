package services

import (
	"context"

	"github.com/yigit/placementhub/internal/app/models/dto"
	"github.com/yigit/placementhub/internal/app/repositories"
	"github.com/yigit/placementhub/internal/pkg/apperrors"
)

// ApplicationService defines the interface for application tracking
type ApplicationService interface {
	Apply(ctx context.Context, studentID, companyID int64) (*dto.ApplicationResponse, error)
	ListByStudent(ctx context.Context, studentID int64) ([]*dto.ApplicationResponse, error)
	ListAll(ctx context.Context) ([]*dto.ApplicationResponse, error)
}

type applicationServiceImpl struct {
	applicationRepo repositories.IApplicationRepository
	companyRepo     repositories.ICompanyRepository
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(applicationRepo repositories.IApplicationRepository, companyRepo repositories.ICompanyRepository) ApplicationService {
	return &applicationServiceImpl{
		applicationRepo: applicationRepo,
		companyRepo:     companyRepo,
	}
}

// Apply records a student's application to a company, at most once per pair.
// The response embeds the company's display fields for immediate rendering.
func (s *applicationServiceImpl) Apply(ctx context.Context, studentID, companyID int64) (*dto.ApplicationResponse, error) {
	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	exists, err := s.applicationRepo.ExistsForPair(ctx, studentID, companyID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrAlreadyApplied
	}

	app, err := s.applicationRepo.Create(ctx, studentID, companyID)
	if err != nil {
		return nil, err
	}

	return &dto.ApplicationResponse{
		ID:          app.ID,
		StudentID:   app.StudentID,
		CompanyID:   app.CompanyID,
		DateApplied: app.DateApplied,
		Status:      app.Status,
		Company: &dto.CompanyRef{
			ID:           company.ID,
			Name:         company.Name,
			VisitingDate: company.VisitingDate,
		},
	}, nil
}

// ListByStudent retrieves the student's applications newest first, with
// company display fields.
func (s *applicationServiceImpl) ListByStudent(ctx context.Context, studentID int64) ([]*dto.ApplicationResponse, error) {
	records, err := s.applicationRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return toApplicationResponses(records, false), nil
}

// ListAll retrieves every application with both student and company display
// fields, for the admin dashboard.
func (s *applicationServiceImpl) ListAll(ctx context.Context) ([]*dto.ApplicationResponse, error) {
	records, err := s.applicationRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toApplicationResponses(records, true), nil
}

func toApplicationResponses(records []*repositories.ApplicationRecord, withStudent bool) []*dto.ApplicationResponse {
	responses := make([]*dto.ApplicationResponse, 0, len(records))
	for _, rec := range records {
		resp := &dto.ApplicationResponse{
			ID:            rec.ID,
			StudentID:     rec.StudentID,
			CompanyID:     rec.CompanyID,
			DateApplied:   rec.DateApplied,
			Status:        rec.Status,
			InterviewDate: rec.InterviewDate,
			InterviewLink: rec.InterviewLink,
		}
		// Company may have been deleted since the application was made.
		if rec.CompanyName.Valid {
			resp.Company = &dto.CompanyRef{
				ID:           rec.CompanyID,
				Name:         rec.CompanyName.String,
				VisitingDate: rec.CompanyVisitingDate.Time,
			}
		}
		if withStudent {
			resp.Student = &dto.StudentRef{
				ID:           rec.StudentID,
				Name:         rec.StudentName,
				Email:        rec.StudentEmail,
				MobileNumber: rec.StudentMobileNumber,
				Branch:       rec.StudentBranch,
			}
		}
		responses = append(responses, resp)
	}
	return responses
}
