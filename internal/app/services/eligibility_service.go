package services

import (
	"context"

	"github.com/yigit/placementhub/internal/app/models"
	"github.com/yigit/placementhub/internal/app/repositories"
	"github.com/yigit/placementhub/internal/pkg/apperrors"
)

// EligibilityService computes which companies a student qualifies for, and
// the inverse: which students qualify for a company. Both directions use the
// same predicate, models.Company.Admits.
type EligibilityService interface {
	EligibleCompanies(ctx context.Context, studentID int64) ([]*models.Company, error)
	EligibleStudents(ctx context.Context, companyID int64) ([]*models.Student, error)
}

type eligibilityServiceImpl struct {
	studentRepo repositories.IStudentRepository
	companyRepo repositories.ICompanyRepository
}

// NewEligibilityService creates a new EligibilityService
func NewEligibilityService(studentRepo repositories.IStudentRepository, companyRepo repositories.ICompanyRepository) EligibilityService {
	return &eligibilityServiceImpl{
		studentRepo: studentRepo,
		companyRepo: companyRepo,
	}
}

// EligibleCompanies returns the companies whose thresholds the student meets.
// Fails closed: a student who has not completed registration gets
// ErrProfileIncomplete instead of an empty list, steering the client to the
// registration form.
func (s *eligibilityServiceImpl) EligibleCompanies(ctx context.Context, studentID int64) ([]*models.Company, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if !student.FullyRegistered() {
		return nil, apperrors.ErrProfileIncomplete
	}

	companies, err := s.companyRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	eligible := []*models.Company{}
	for _, company := range companies {
		if company.Admits(student) {
			eligible = append(eligible, company)
		}
	}
	return eligible, nil
}

// EligibleStudents returns the fully-registered students who meet the
// company's thresholds, for targeting an admin broadcast.
func (s *eligibilityServiceImpl) EligibleStudents(ctx context.Context, companyID int64) ([]*models.Student, error) {
	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	eligible := []*models.Student{}
	for _, student := range students {
		if !student.FullyRegistered() {
			continue
		}
		if company.Admits(student) {
			eligible = append(eligible, student)
		}
	}
	return eligible, nil
}
