package dto

// SendNotificationRequest is an admin broadcast targeting a set of eligible
// students.
type SendNotificationRequest struct {
	CompanyName      string  `json:"companyName" binding:"required"`
	Message          string  `json:"message" binding:"required"`
	EligibleStudents []int64 `json:"eligibleStudents" binding:"required,min=1"`
}

// SendNotificationResponse reports how many students were actually updated.
type SendNotificationResponse struct {
	Notified int64 `json:"notified"`
}
