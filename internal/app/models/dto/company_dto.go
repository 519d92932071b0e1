package dto

import "time"

// EligibilityRequest is the nested eligibility block of a company payload.
type EligibilityRequest struct {
	TenthMarks    float64 `json:"tenthMarks" binding:"gte=0,lte=100"`
	TwelfthMarks  float64 `json:"twelfthMarks" binding:"gte=0,lte=100"`
	CGPAAggregate float64 `json:"cgpaAggregate" binding:"gte=0,lte=10"`
	ActiveBacklog string  `json:"activeBacklog" binding:"required,oneof=yes no"`
}

// CreateCompanyRequest represents an admin posting a new company.
type CreateCompanyRequest struct {
	Name         string             `json:"name" binding:"required"`
	VisitingDate time.Time          `json:"visitingDate" binding:"required"`
	Eligibility  EligibilityRequest `json:"eligibility" binding:"required"`
}
