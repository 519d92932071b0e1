package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/placementhub/internal/app/models"
	"github.com/yigit/placementhub/internal/app/models/dto"
	"github.com/yigit/placementhub/internal/app/repositories"
	"github.com/yigit/placementhub/internal/pkg/apperrors"
)

// CompanyService defines the interface for company operations
type CompanyService interface {
	Create(ctx context.Context, req *dto.CreateCompanyRequest) (*models.Company, error)
	GetAll(ctx context.Context) ([]*models.Company, error)
	Delete(ctx context.Context, id int64) error
}

type companyServiceImpl struct {
	companyRepo repositories.ICompanyRepository
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(companyRepo repositories.ICompanyRepository) CompanyService {
	return &companyServiceImpl{
		companyRepo: companyRepo,
	}
}

// Create posts a new company. The name-uniqueness check here mirrors the
// original flow; the unique index in the repository closes the race.
func (s *companyServiceImpl) Create(ctx context.Context, req *dto.CreateCompanyRequest) (*models.Company, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: company name cannot be empty", apperrors.ErrValidationFailed)
	}

	exists, err := s.companyRepo.NameExists(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("error checking company name: %w", err)
	}
	if exists {
		return nil, apperrors.ErrCompanyAlreadyExists
	}

	company := &models.Company{
		Name:         name,
		VisitingDate: req.VisitingDate,
		Eligibility: models.Eligibility{
			TenthMarks:    req.Eligibility.TenthMarks,
			TwelfthMarks:  req.Eligibility.TwelfthMarks,
			CGPAAggregate: req.Eligibility.CGPAAggregate,
			ActiveBacklog: models.BacklogFlag(req.Eligibility.ActiveBacklog),
		},
	}

	id, err := s.companyRepo.Create(ctx, company)
	if err != nil {
		return nil, err
	}
	company.ID = id

	return company, nil
}

// GetAll retrieves all companies
func (s *companyServiceImpl) GetAll(ctx context.Context) ([]*models.Company, error) {
	return s.companyRepo.GetAll(ctx)
}

// Delete removes a company. Existing applications keep their reference to
// the deleted id; listings tolerate the orphan.
func (s *companyServiceImpl) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid company ID", apperrors.ErrValidationFailed)
	}
	return s.companyRepo.Delete(ctx, id)
}
