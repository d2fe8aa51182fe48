package services

import (
	"errors"
	"fmt"

	"github.com/campushire/jobboard-api/internal/models"
	"gorm.io/gorm"
)

type ApplicationService struct {
	DB *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{DB: db}
}

// Apply records the student's application to a job. Applying to a missing job
// is ErrNotFound, to a non-ACTIVE job ErrPrecondition, and a second time to
// the same job ErrConflict.
func (s *ApplicationService) Apply(userID, jobID uint) (*models.Application, error) {
	var job models.Job
	err := s.DB.First(&job, jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: job %d", ErrNotFound, jobID)
	}
	if err != nil {
		return nil, err
	}
	if job.Status != models.JobStatusActive {
		return nil, fmt.Errorf("%w: job %d is %s", ErrPrecondition, jobID, job.Status)
	}

	var count int64
	if err := s.DB.Model(&models.Application{}).
		Where("job_id = ? AND user_id = ?", jobID, userID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: already applied to job %d", ErrConflict, jobID)
	}

	app := &models.Application{JobID: jobID, UserID: userID}
	if err := s.DB.Create(app).Error; err != nil {
		return nil, err
	}
	return app, nil
}

// Withdraw removes the student's application.
func (s *ApplicationService) Withdraw(userID, jobID uint) error {
	res := s.DB.Where("job_id = ? AND user_id = ?", jobID, userID).Delete(&models.Application{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: no application for job %d", ErrNotFound, jobID)
	}
	return nil
}

// ListForUser returns the student's applications, newest first.
func (s *ApplicationService) ListForUser(userID uint) ([]models.Application, error) {
	var apps []models.Application
	err := s.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

// SaveJob adds a job to the student's saved set. Saving an already-saved job
// is a no-op, matching set semantics.
func (s *ApplicationService) SaveJob(userID, jobID uint) error {
	var job models.Job
	err := s.DB.First(&job, jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: job %d", ErrNotFound, jobID)
	}
	if err != nil {
		return err
	}

	var count int64
	if err := s.DB.Model(&models.SavedJob{}).
		Where("job_id = ? AND user_id = ?", jobID, userID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return s.DB.Create(&models.SavedJob{JobID: jobID, UserID: userID}).Error
}

// UnsaveJob removes a job from the saved set.
func (s *ApplicationService) UnsaveJob(userID, jobID uint) error {
	res := s.DB.Where("job_id = ? AND user_id = ?", jobID, userID).Delete(&models.SavedJob{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: job %d is not saved", ErrNotFound, jobID)
	}
	return nil
}

// SavedJobIDs returns the student's saved set as a lookup map, the shape
// Reconcile consumes.
func (s *ApplicationService) SavedJobIDs(userID uint) (map[uint]bool, error) {
	var saved []models.SavedJob
	if err := s.DB.Where("user_id = ?", userID).Find(&saved).Error; err != nil {
		return nil, err
	}
	ids := make(map[uint]bool, len(saved))
	for _, sj := range saved {
		ids[sj.JobID] = true
	}
	return ids, nil
}
