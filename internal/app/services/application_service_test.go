package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/yigit/placementhub/internal/app/models"
	"github.com/yigit/placementhub/internal/pkg/apperrors"
)

func TestApply(t *testing.T) {
	companyRepo := newFakeCompanyRepo()
	companyID := seedCompany(t, companyRepo, &models.Company{
		Name:         "Acme Corp",
		VisitingDate: time.Now().Add(48 * time.Hour),
	})

	svc := NewApplicationService(newFakeApplicationRepo(), companyRepo)

	resp, err := svc.Apply(context.Background(), 1, companyID)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if resp.Status != models.StatusApplied {
		t.Errorf("Status = %q, want %q", resp.Status, models.StatusApplied)
	}
	if resp.Company == nil || resp.Company.Name != "Acme Corp" {
		t.Errorf("Company = %+v, want embedded Acme Corp ref", resp.Company)
	}
}

func TestApplyTwiceRejected(t *testing.T) {
	companyRepo := newFakeCompanyRepo()
	companyID := seedCompany(t, companyRepo, &models.Company{
		Name:         "Acme Corp",
		VisitingDate: time.Now().Add(48 * time.Hour),
	})

	svc := NewApplicationService(newFakeApplicationRepo(), companyRepo)

	if _, err := svc.Apply(context.Background(), 1, companyID); err != nil {
		t.Fatalf("first Apply: %v", err)
	}
	_, err := svc.Apply(context.Background(), 1, companyID)
	if !errors.Is(err, apperrors.ErrAlreadyApplied) {
		t.Fatalf("second Apply err = %v, want ErrAlreadyApplied", err)
	}
}

func TestApplyDifferentCompaniesAllowed(t *testing.T) {
	companyRepo := newFakeCompanyRepo()
	firstID := seedCompany(t, companyRepo, &models.Company{Name: "Acme Corp", VisitingDate: time.Now()})
	secondID := seedCompany(t, companyRepo, &models.Company{Name: "Initech", VisitingDate: time.Now()})

	svc := NewApplicationService(newFakeApplicationRepo(), companyRepo)

	if _, err := svc.Apply(context.Background(), 1, firstID); err != nil {
		t.Fatalf("Apply to first company: %v", err)
	}
	if _, err := svc.Apply(context.Background(), 1, secondID); err != nil {
		t.Fatalf("Apply to second company: %v", err)
	}

	apps, err := svc.ListByStudent(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListByStudent: %v", err)
	}
	if len(apps) != 2 {
		t.Errorf("len(apps) = %d, want 2", len(apps))
	}
}

func TestApplyUnknownCompany(t *testing.T) {
	svc := NewApplicationService(newFakeApplicationRepo(), newFakeCompanyRepo())

	_, err := svc.Apply(context.Background(), 1, 99)
	if !errors.Is(err, apperrors.ErrCompanyNotFound) {
		t.Fatalf("err = %v, want ErrCompanyNotFound", err)
	}
}

func TestListByStudentToleratesDeletedCompany(t *testing.T) {
	companyRepo := newFakeCompanyRepo()
	companyID := seedCompany(t, companyRepo, &models.Company{Name: "Acme Corp", VisitingDate: time.Now()})

	appRepo := newFakeApplicationRepo()
	svc := NewApplicationService(appRepo, companyRepo)

	if _, err := svc.Apply(context.Background(), 1, companyID); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if err := companyRepo.Delete(context.Background(), companyID); err != nil {
		t.Fatalf("deleting company: %v", err)
	}

	apps, err := svc.ListByStudent(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListByStudent: %v", err)
	}
	if len(apps) != 1 {
		t.Fatalf("len(apps) = %d, want 1", len(apps))
	}
	// The fake join resolves nothing for the deleted company.
	if apps[0].Company != nil {
		t.Errorf("Company = %+v, want nil for orphaned application", apps[0].Company)
	}
	if apps[0].CompanyID != companyID {
		t.Errorf("CompanyID = %d, want %d", apps[0].CompanyID, companyID)
	}
}
