package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/yigit/placementhub/internal/app/models"
	"github.com/yigit/placementhub/internal/pkg/apperrors"
)

func seedStudent(t *testing.T, repo *fakeStudentRepo, s *models.Student) int64 {
	t.Helper()
	id, err := repo.Create(context.Background(), s)
	if err != nil {
		t.Fatalf("seeding student: %v", err)
	}
	return id
}

func seedCompany(t *testing.T, repo *fakeCompanyRepo, c *models.Company) int64 {
	t.Helper()
	id, err := repo.Create(context.Background(), c)
	if err != nil {
		t.Fatalf("seeding company: %v", err)
	}
	return id
}

func TestEligibleCompanies(t *testing.T) {
	tests := []struct {
		name     string
		student  models.Student
		company  models.Eligibility
		eligible bool
	}{
		{
			name:     "all thresholds met",
			student:  models.Student{TenthMarks: 85, TwelfthMarks: 80, CGPAAggregate: 8.2, ActiveBacklog: models.BacklogNo},
			company:  models.Eligibility{TenthMarks: 70, TwelfthMarks: 70, CGPAAggregate: 7.5, ActiveBacklog: models.BacklogNo},
			eligible: true,
		},
		{
			name:     "tenth marks below threshold",
			student:  models.Student{TenthMarks: 85, TwelfthMarks: 80, CGPAAggregate: 8.2, ActiveBacklog: models.BacklogNo},
			company:  models.Eligibility{TenthMarks: 90, TwelfthMarks: 70, CGPAAggregate: 7.5, ActiveBacklog: models.BacklogNo},
			eligible: false,
		},
		{
			name:     "exact threshold counts as met",
			student:  models.Student{TenthMarks: 70, TwelfthMarks: 70, CGPAAggregate: 7.5, ActiveBacklog: models.BacklogNo},
			company:  models.Eligibility{TenthMarks: 70, TwelfthMarks: 70, CGPAAggregate: 7.5, ActiveBacklog: models.BacklogNo},
			eligible: true,
		},
		{
			name:     "backlog student rejected by strict company",
			student:  models.Student{TenthMarks: 85, TwelfthMarks: 80, CGPAAggregate: 8.2, ActiveBacklog: models.BacklogYes},
			company:  models.Eligibility{TenthMarks: 70, TwelfthMarks: 70, CGPAAggregate: 7.5, ActiveBacklog: models.BacklogNo},
			eligible: false,
		},
		{
			name:     "backlog student accepted by tolerant company",
			student:  models.Student{TenthMarks: 85, TwelfthMarks: 80, CGPAAggregate: 8.2, ActiveBacklog: models.BacklogYes},
			company:  models.Eligibility{TenthMarks: 70, TwelfthMarks: 70, CGPAAggregate: 7.5, ActiveBacklog: models.BacklogYes},
			eligible: true,
		},
		{
			name:     "clean student accepted by tolerant company",
			student:  models.Student{TenthMarks: 85, TwelfthMarks: 80, CGPAAggregate: 8.2, ActiveBacklog: models.BacklogNo},
			company:  models.Eligibility{TenthMarks: 70, TwelfthMarks: 70, CGPAAggregate: 7.5, ActiveBacklog: models.BacklogYes},
			eligible: true,
		},
		{
			name:     "cgpa below threshold",
			student:  models.Student{TenthMarks: 85, TwelfthMarks: 80, CGPAAggregate: 7.0, ActiveBacklog: models.BacklogNo},
			company:  models.Eligibility{TenthMarks: 70, TwelfthMarks: 70, CGPAAggregate: 7.5, ActiveBacklog: models.BacklogNo},
			eligible: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			studentRepo := newFakeStudentRepo()
			companyRepo := newFakeCompanyRepo()

			student := tt.student
			student.Email = "s@college.edu"
			student.Name = "Asha Patil"
			studentID := seedStudent(t, studentRepo, &student)

			seedCompany(t, companyRepo, &models.Company{
				Name:         "Acme Corp",
				VisitingDate: time.Now().Add(72 * time.Hour),
				Eligibility:  tt.company,
			})

			svc := NewEligibilityService(studentRepo, companyRepo)
			companies, err := svc.EligibleCompanies(context.Background(), studentID)
			if err != nil {
				t.Fatalf("EligibleCompanies: %v", err)
			}

			if got := len(companies) == 1; got != tt.eligible {
				t.Errorf("eligible = %v, want %v", got, tt.eligible)
			}
		})
	}
}

func TestEligibleCompaniesIncompleteProfile(t *testing.T) {
	studentRepo := newFakeStudentRepo()
	companyRepo := newFakeCompanyRepo()

	// Account exists but registration was never completed.
	studentID := seedStudent(t, studentRepo, &models.Student{Email: "new@college.edu"})

	svc := NewEligibilityService(studentRepo, companyRepo)
	_, err := svc.EligibleCompanies(context.Background(), studentID)
	if !errors.Is(err, apperrors.ErrProfileIncomplete) {
		t.Fatalf("err = %v, want ErrProfileIncomplete", err)
	}
}

func TestEligibleCompaniesUnknownStudent(t *testing.T) {
	svc := NewEligibilityService(newFakeStudentRepo(), newFakeCompanyRepo())
	_, err := svc.EligibleCompanies(context.Background(), 42)
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("err = %v, want ErrStudentNotFound", err)
	}
}

func TestEligibleStudents(t *testing.T) {
	studentRepo := newFakeStudentRepo()
	companyRepo := newFakeCompanyRepo()

	qualifiedID := seedStudent(t, studentRepo, &models.Student{
		Email: "good@college.edu", Name: "Asha Patil",
		TenthMarks: 85, TwelfthMarks: 80, CGPAAggregate: 8.2, ActiveBacklog: models.BacklogNo,
	})
	seedStudent(t, studentRepo, &models.Student{
		Email: "low@college.edu", Name: "Rohan Shah",
		TenthMarks: 60, TwelfthMarks: 80, CGPAAggregate: 8.2, ActiveBacklog: models.BacklogNo,
	})
	// Registered account without a completed profile never qualifies.
	seedStudent(t, studentRepo, &models.Student{
		Email: "incomplete@college.edu",
		TenthMarks: 99, TwelfthMarks: 99, CGPAAggregate: 9.9, ActiveBacklog: models.BacklogNo,
	})

	companyID := seedCompany(t, companyRepo, &models.Company{
		Name:         "Acme Corp",
		VisitingDate: time.Now().Add(72 * time.Hour),
		Eligibility:  models.Eligibility{TenthMarks: 70, TwelfthMarks: 70, CGPAAggregate: 7.5, ActiveBacklog: models.BacklogNo},
	})

	svc := NewEligibilityService(studentRepo, companyRepo)
	students, err := svc.EligibleStudents(context.Background(), companyID)
	if err != nil {
		t.Fatalf("EligibleStudents: %v", err)
	}

	if len(students) != 1 {
		t.Fatalf("len(students) = %d, want 1", len(students))
	}
	if students[0].ID != qualifiedID {
		t.Errorf("students[0].ID = %d, want %d", students[0].ID, qualifiedID)
	}
}

func TestEligibleStudentsUnknownCompany(t *testing.T) {
	svc := NewEligibilityService(newFakeStudentRepo(), newFakeCompanyRepo())
	_, err := svc.EligibleStudents(context.Background(), 99)
	if !errors.Is(err, apperrors.ErrCompanyNotFound) {
		t.Fatalf("err = %v, want ErrCompanyNotFound", err)
	}
}
