package dto

import (
	"time"

	"github.com/yigit/placementhub/internal/app/models"
)

// CompanyRef is the company display data embedded in application responses.
// Nil when the referenced company was deleted after the application was made.
type CompanyRef struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	VisitingDate time.Time `json:"visitingDate"`
}

// StudentRef is the student display data embedded in admin application
// listings.
type StudentRef struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobileNumber"`
	Branch       string `json:"branch"`
}

// ApplicationResponse is an application enriched with display fields for
// immediate client rendering.
type ApplicationResponse struct {
	ID            int64                    `json:"id"`
	StudentID     int64                    `json:"studentId"`
	CompanyID     int64                    `json:"companyId"`
	DateApplied   time.Time                `json:"dateApplied"`
	Status        models.ApplicationStatus `json:"status"`
	InterviewDate *time.Time               `json:"interviewDate,omitempty"`
	InterviewLink *string                  `json:"interviewLink,omitempty"`
	Company       *CompanyRef              `json:"company,omitempty"`
	Student       *StudentRef              `json:"student,omitempty"`
}
