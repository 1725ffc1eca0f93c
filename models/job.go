package models

import "time"

// JobStatus is the stage a job application is in.
type JobStatus string

const (
	StatusApplied   JobStatus = "Applied"
	StatusInterview JobStatus = "Interview"
	StatusOffer     JobStatus = "Offer"
	StatusRejected  JobStatus = "Rejected"
)

// JobStatuses lists every accepted status in display order.
var JobStatuses = []JobStatus{StatusApplied, StatusInterview, StatusOffer, StatusRejected}

// IsValid reports whether s belongs to the closed status set.
func (s JobStatus) IsValid() bool {
	for _, status := range JobStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// OrDefault returns s, or [StatusApplied] when s is empty.
func (s JobStatus) OrDefault() JobStatus {
	if s == "" {
		return StatusApplied
	}
	return s
}

// JobApplication is one tracked application owned by a single user.
type JobApplication struct {
	ID string `json:"id"`

	// UserID is the owner. It is set from the authenticated identity and
	// never taken from the request body.
	UserID string `json:"user"`

	CompanyName     string    `json:"companyName"`
	JobTitle        string    `json:"jobTitle"`
	ApplicationDate Date      `json:"applicationDate"`
	Status          JobStatus `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the JobApplication model.
func (j JobApplication) TableName() string {
	return "job_applications"
}

// Apply copies every user-editable field of req onto j, filling the default
// status when it was omitted.
func (j *JobApplication) Apply(req JobRequest) {
	j.CompanyName = req.CompanyName
	j.JobTitle = req.JobTitle
	j.ApplicationDate = req.ApplicationDate
	j.Status = req.Status.OrDefault()
}
