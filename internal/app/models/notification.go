package models

import "time"

// Notification is one entry in a student's inbox, created by an admin
// broadcast for a visiting company.
type Notification struct {
	ID          int64     `json:"id" db:"id"`
	StudentID   int64     `json:"-" db:"student_id"`
	CompanyName string    `json:"companyName" db:"company_name"`
	Message     string    `json:"message" db:"message"`
	Date        time.Time `json:"date" db:"created_at"`
}
