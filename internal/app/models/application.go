package models

import "time"

// Application defines the application model based on the 'applications'
// table. CompanyID intentionally has no foreign key: deleting a company
// keeps the historical applications around, and reads tolerate the orphaned
// reference.
type Application struct {
	ID            int64             `json:"id" db:"id"`
	StudentID     int64             `json:"studentId" db:"student_id"`
	CompanyID     int64             `json:"companyId" db:"company_id"`
	DateApplied   time.Time         `json:"dateApplied" db:"date_applied"`
	Status        ApplicationStatus `json:"status" db:"status" example:"Applied"`
	InterviewDate *time.Time        `json:"interviewDate,omitempty" db:"interview_date"`
	InterviewLink *string           `json:"interviewLink,omitempty" db:"interview_link"`
}
