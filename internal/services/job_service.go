package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/campushire/jobboard-api/internal/dtos"
	"github.com/campushire/jobboard-api/internal/models"
	"gorm.io/gorm"
)

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{DB: db}
}

// CreateJob creates a posting under the named company, creating the company
// row on first use.
func (s *JobService) CreateJob(req *dtos.JobCreationRequest) (*models.Job, error) {
	var category models.Category
	err := s.DB.First(&category, req.CategoryID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: category %d", ErrNotFound, req.CategoryID)
	}
	if err != nil {
		return nil, err
	}

	var company models.Company
	// creates the entry if it doesn't exist yet
	err = s.DB.Where(models.Company{Name: req.CompanyName}).
		FirstOrCreate(&company).Error
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.JobStatusActive
	}

	job := &models.Job{
		CompanyID:   company.ID,
		CategoryID:  category.ID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		JobType:     req.JobType,
		SalaryRange: req.SalaryRange,
		Status:      status,
		Deadline:    req.Deadline,
	}
	if err := s.DB.Create(job).Error; err != nil {
		return nil, err
	}
	job.Company = company
	return job, nil
}

// GetJob loads one posting with its company.
func (s *JobService) GetJob(jobID uint) (*models.Job, error) {
	var job models.Job
	err := s.DB.Preload("Company").Preload("Category").First(&job, jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: job %d", ErrNotFound, jobID)
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// ListJobs returns browsable postings newest first, optionally filtered by
// category and/or status. DRAFT postings are never browsable, whatever the
// status filter says; they only surface through the admin endpoints.
func (s *JobService) ListJobs(categoryID uint, status string) ([]models.Job, error) {
	q := s.DB.Preload("Company").Preload("Category").
		Where("status <> ?", models.JobStatusDraft).
		Order("created_at DESC")
	if categoryID != 0 {
		q = q.Where("category_id = ?", categoryID)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var jobs []models.Job
	if err := q.Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// UpdateJobStatus transitions a posting and records the change as a JobEvent.
func (s *JobService) UpdateJobStatus(jobID uint, status string) (*models.Job, error) {
	if status != models.JobStatusActive && status != models.JobStatusClosed && status != models.JobStatusDraft {
		return nil, fmt.Errorf("%w: unknown job status %q", ErrValidation, status)
	}

	job, err := s.GetJob(jobID)
	if err != nil {
		return nil, err
	}
	previous := job.Status
	job.Status = status
	if err := s.DB.Save(job).Error; err != nil {
		return nil, err
	}
	s.recordEvent(job.ID, "STATUS_CHANGE", fmt.Sprintf("%s -> %s", previous, status))
	return job, nil
}

// CloseExpiredJobs closes every ACTIVE posting whose deadline has passed and
// returns how many were closed. Runs from the expiry watcher.
func (s *JobService) CloseExpiredJobs(now time.Time) (int, error) {
	var expired []models.Job
	err := s.DB.
		Where("status = ? AND deadline IS NOT NULL AND deadline < ?", models.JobStatusActive, now).
		Find(&expired).Error
	if err != nil {
		return 0, err
	}

	for _, job := range expired {
		if err := s.DB.Model(&models.Job{}).Where("id = ?", job.ID).
			Update("status", models.JobStatusClosed).Error; err != nil {
			return 0, err
		}
		s.recordEvent(job.ID, "EXPIRED", fmt.Sprintf("deadline %s passed", job.Deadline.Format(time.RFC3339)))
	}
	return len(expired), nil
}

func (s *JobService) recordEvent(jobID uint, eventType, details string) {
	event := models.JobEvent{JobID: jobID, EventType: eventType, Details: details}
	if err := s.DB.Create(&event).Error; err != nil {
		// The audit trail is best-effort; the state change already happened.
		log.Printf("failed to record job event for job %d: %v", jobID, err)
	}
}
