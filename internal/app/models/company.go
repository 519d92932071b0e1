package models

import "time"

// Eligibility holds the minimum thresholds a student must meet to see and
// apply to a company.
type Eligibility struct {
	TenthMarks    float64     `json:"tenthMarks" db:"min_tenth_marks" example:"70"`
	TwelfthMarks  float64     `json:"twelfthMarks" db:"min_twelfth_marks" example:"70"`
	CGPAAggregate float64     `json:"cgpaAggregate" db:"min_cgpa_aggregate" example:"7.5"`
	ActiveBacklog BacklogFlag `json:"activeBacklog" db:"allows_backlog" example:"no"`
}

// Company defines the company model based on the 'companies' table
type Company struct {
	ID           int64       `json:"id" db:"id"`
	Name         string      `json:"name" db:"name" example:"Acme Corp"`
	VisitingDate time.Time   `json:"visitingDate" db:"visiting_date"`
	Eligibility  Eligibility `json:"eligibility"`
	CreatedAt    time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time   `json:"updatedAt" db:"updated_at"`
}

// Admits reports whether a student meets this company's eligibility
// thresholds. The backlog rule is asymmetric: a company that allows backlogs
// places no constraint, only a company that disallows them filters out
// students with an active backlog.
func (c *Company) Admits(s *Student) bool {
	e := c.Eligibility
	if s.TenthMarks < e.TenthMarks {
		return false
	}
	if s.TwelfthMarks < e.TwelfthMarks {
		return false
	}
	if s.CGPAAggregate < e.CGPAAggregate {
		return false
	}
	if e.ActiveBacklog == BacklogNo && s.ActiveBacklog != BacklogNo {
		return false
	}
	return true
}
