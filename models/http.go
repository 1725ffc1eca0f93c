package models

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,bcryptlen"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// JobRequest carries the user-supplied fields of a job application for both
// create and full-replace update. Status may be omitted and then defaults to
// [StatusApplied].
type JobRequest struct {
	CompanyName     string    `json:"companyName" validate:"required,min=3"`
	JobTitle        string    `json:"jobTitle" validate:"required"`
	ApplicationDate Date      `json:"applicationDate" validate:"required,notfuture"`
	Status          JobStatus `json:"status" validate:"omitempty,jobstatus"`
}
