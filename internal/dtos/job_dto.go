package dtos

import "time"

type JobCreationRequest struct {
	CompanyName string `json:"company_name" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	CategoryID  uint   `json:"category_id" binding:"required"`

	// Optional fields
	Location    string     `json:"location"`
	JobType     string     `json:"job_type" binding:"omitempty,oneof=FULL_TIME PART_TIME INTERNSHIP CONTRACT"`
	SalaryRange string     `json:"salary_range"`
	Status      string     `json:"status" binding:"omitempty,oneof=ACTIVE CLOSED DRAFT"` // defaults to ACTIVE
	Deadline    *time.Time `json:"deadline"`
}

type JobStatusUpdateRequest struct {
	Status string `json:"status" binding:"required,oneof=ACTIVE CLOSED DRAFT"`
}
