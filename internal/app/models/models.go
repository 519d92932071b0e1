package models

// RoleType defines the principal role carried in tokens
type RoleType string

const (
	RoleStudent RoleType = "student"
	RoleAdmin   RoleType = "admin"
)

// BacklogFlag is the yes/no flag used for active backlogs, both on student
// profiles and on company eligibility criteria.
type BacklogFlag string

const (
	BacklogYes BacklogFlag = "yes"
	BacklogNo  BacklogFlag = "no"
)

// Branch is the academic branch of a student
type Branch string

const (
	BranchENTC Branch = "ENTC"
	BranchIT   Branch = "IT"
	BranchECE  Branch = "ECE"
	BranchCE   Branch = "CE"
	BranchAIDS Branch = "AIDS"
	BranchNone Branch = ""
)

// Gender of a student
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
	GenderNone   Gender = ""
)

// ApplicationStatus is the lifecycle stage of an application.
// Only the initial Applied stage is ever set by this backend; the later
// stages exist in the data model for the admin workflow.
type ApplicationStatus string

const (
	StatusApplied            ApplicationStatus = "Applied"
	StatusShortlisted        ApplicationStatus = "Shortlisted"
	StatusInterviewScheduled ApplicationStatus = "Interview Scheduled"
	StatusRejected           ApplicationStatus = "Rejected"
	StatusPlaced             ApplicationStatus = "Placed"
)
