package models

import (
	"time"
)

// Student defines the student model based on the 'students' table
type Student struct {
	ID            int64       `json:"id" db:"id" example:"1"`
	Email         string      `json:"email" db:"email" example:"student@college.edu"`
	Password      string      `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	Name          string      `json:"name" db:"name" example:"Jane Doe"`
	ClassName     string      `json:"className" db:"class_name" example:"BE"`
	Division      string      `json:"division" db:"division" example:"3"`
	Branch        Branch      `json:"branch" db:"branch" example:"IT"`
	Gender        Gender      `json:"gender" db:"gender" example:"Female"`
	MobileNumber  string      `json:"mobileNumber" db:"mobile_number" example:"9876543210"`
	TenthMarks    float64     `json:"tenthMarks" db:"tenth_marks" example:"85"`
	TwelfthMarks  float64     `json:"twelfthMarks" db:"twelfth_marks" example:"80"`
	CGPAAggregate float64     `json:"cgpaAggregate" db:"cgpa_aggregate" example:"8.2"`
	ActiveBacklog BacklogFlag `json:"activeBacklog" db:"active_backlog" example:"no"`
	ResumeURL     string      `json:"resumeUrl" db:"resume_url"`
	CreatedAt     time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time   `json:"updatedAt" db:"updated_at"`
}

// FullyRegistered reports whether the student completed the registration
// form. A bare account (email + password only) has an empty name and is kept
// out of eligibility matching until the profile is filled in.
func (s *Student) FullyRegistered() bool {
	return s.Name != ""
}
