package dto

// UpdateProfileRequest carries a student profile update. All fields are
// optional; absent fields keep their stored values, matching the incremental
// way the registration form is filled in.
type UpdateProfileRequest struct {
	Name          *string  `json:"name"`
	ClassName     *string  `json:"className" binding:"omitempty,oneof=SE TE BE"`
	Division      *string  `json:"division"`
	Branch        *string  `json:"branch" binding:"omitempty,oneof=ENTC IT ECE CE AIDS"`
	Gender        *string  `json:"gender" binding:"omitempty,oneof=Male Female Other"`
	MobileNumber  *string  `json:"mobileNumber"`
	TenthMarks    *float64 `json:"tenthMarks" binding:"omitempty,gte=0,lte=100"`
	TwelfthMarks  *float64 `json:"twelfthMarks" binding:"omitempty,gte=0,lte=100"`
	CGPAAggregate *float64 `json:"cgpaAggregate" binding:"omitempty,gte=0,lte=10"`
	ActiveBacklog *string  `json:"activeBacklog" binding:"omitempty,oneof=yes no"`
	ResumeURL     *string  `json:"resumeUrl"`
}
