package models

import (
	"time"

	"gorm.io/gorm"
)

// Role values for User.Role
const (
	RoleStudent = "STUDENT"
	RoleAdmin   = "ADMIN"
)

// Job lifecycle states.
const (
	JobStatusActive = "ACTIVE"
	JobStatusClosed = "CLOSED"
	JobStatusDraft  = "DRAFT"
)

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         string `gorm:"default:'STUDENT'" json:"role"`
	// API token issued at registration/login; looked up by the auth middleware
	Token string `gorm:"uniqueIndex" json:"-"`

	// Profile fields used to derive the dashboard's "incomplete profile" flag
	FullName       string `json:"full_name"`
	Headline       string `json:"headline"`
	GraduationYear int    `json:"graduation_year"`

	Skills []Skill `json:"skills,omitempty"`
}

type Skill struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID uint `gorm:"index;not null" json:"user_id"`

	Name string `gorm:"not null" json:"name"`
	// One of BEGINNER / INTERMEDIATE / ADVANCED / EXPERT
	Level             string `gorm:"not null" json:"level"`
	YearsOfExperience int    `json:"years_of_experience"`
}

type Company struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name string `gorm:"uniqueIndex;not null" json:"company_name"`

	// 'omitempty' prevents infinite loops when fetching a Job -> Company -> Jobs -> ...
	Jobs []Job `json:"jobs,omitempty"`
}

type Category struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name     string `gorm:"uniqueIndex;not null" json:"name"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	Jobs []Job `json:"jobs,omitempty"`
}

type Job struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CompanyID uint    `json:"company_id"`
	Company   Company `json:"company"`

	CategoryID uint     `gorm:"index" json:"category_id"`
	Category   Category `json:"-"`

	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Location    string `json:"location"`
	// e.g. FULL_TIME, PART_TIME, INTERNSHIP, CONTRACT
	JobType     string     `json:"job_type"`
	SalaryRange string     `json:"salary_range"`
	Status      string     `gorm:"default:'ACTIVE';index" json:"status"`
	Deadline    *time.Time `json:"deadline,omitempty"`
}

// Application is the student<->job relation. The composite unique index keeps
// at most one application per (job, student); the reconciler also dedupes by
// job id when indexing.
// Deleted hard, not soft: a withdrawn application must not keep holding the
// unique (job, user) slot.
type Application struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	JobID  uint `gorm:"not null;uniqueIndex:idx_app_job_user" json:"job_id"`
	Job    Job  `json:"-"`
	UserID uint `gorm:"not null;uniqueIndex:idx_app_job_user" json:"user_id"`

	Status string `gorm:"default:'PENDING'" json:"status"`
}

// SavedJob is a set membership: a job is saved by a student or it is not.
type SavedJob struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	JobID  uint `gorm:"not null;uniqueIndex:idx_saved_job_user" json:"job_id"`
	UserID uint `gorm:"not null;uniqueIndex:idx_saved_job_user" json:"user_id"`
}

// JobEvent is an append-only audit row for job/application state changes.
type JobEvent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	JobID     uint      `json:"job_id"`
	EventType string    `json:"event_type"`
	Details   string    `gorm:"type:text" json:"details"`
}
