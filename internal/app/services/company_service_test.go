package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/yigit/placementhub/internal/app/models"
	"github.com/yigit/placementhub/internal/app/models/dto"
	"github.com/yigit/placementhub/internal/pkg/apperrors"
)

func TestCreateCompany(t *testing.T) {
	svc := NewCompanyService(newFakeCompanyRepo())

	company, err := svc.Create(context.Background(), &dto.CreateCompanyRequest{
		Name:         "  Acme Corp  ",
		VisitingDate: time.Now().Add(96 * time.Hour),
		Eligibility: dto.EligibilityRequest{
			TenthMarks:    70,
			TwelfthMarks:  70,
			CGPAAggregate: 7.5,
			ActiveBacklog: "no",
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if company.ID == 0 {
		t.Error("expected an assigned company ID")
	}
	if company.Name != "Acme Corp" {
		t.Errorf("Name = %q, want trimmed Acme Corp", company.Name)
	}
}

func TestCreateCompanyDuplicateName(t *testing.T) {
	svc := NewCompanyService(newFakeCompanyRepo())

	req := &dto.CreateCompanyRequest{Name: "Acme Corp", VisitingDate: time.Now()}
	if _, err := svc.Create(context.Background(), req); err != nil {
		t.Fatalf("first Create: %v", err)
	}

	_, err := svc.Create(context.Background(), req)
	if !errors.Is(err, apperrors.ErrCompanyAlreadyExists) {
		t.Fatalf("err = %v, want ErrCompanyAlreadyExists", err)
	}
}

func TestCreateCompanyEmptyName(t *testing.T) {
	svc := NewCompanyService(newFakeCompanyRepo())

	_, err := svc.Create(context.Background(), &dto.CreateCompanyRequest{Name: "   ", VisitingDate: time.Now()})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("err = %v, want ErrValidationFailed", err)
	}
}

func TestDeleteCompany(t *testing.T) {
	repo := newFakeCompanyRepo()
	id := seedCompany(t, repo, &models.Company{Name: "Acme Corp", VisitingDate: time.Now()})

	svc := NewCompanyService(repo)
	if err := svc.Delete(context.Background(), id); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if err := svc.Delete(context.Background(), id); !errors.Is(err, apperrors.ErrCompanyNotFound) {
		t.Fatalf("second Delete err = %v, want ErrCompanyNotFound", err)
	}

	if err := svc.Delete(context.Background(), 0); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("Delete(0) err = %v, want ErrValidationFailed", err)
	}
}
