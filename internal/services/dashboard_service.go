package services

import (
	"github.com/campushire/jobboard-api/internal/models"
	"gorm.io/gorm"
)

// DashboardService fetches fresh snapshots and feeds them through the pure
// reconcile/recommend/prioritize functions. Each call works on its own
// snapshot; nothing here holds state between requests.
type DashboardService struct {
	DB       *gorm.DB
	Affinity AffinityFunc
	Weights  RecommendWeights
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{
		DB:       db,
		Affinity: SkillNameAffinity,
		Weights:  DefaultRecommendWeights(),
	}
}

// Overview builds the reconciled dashboard view for one student.
func (s *DashboardService) Overview(userID uint) (ReconciledView, error) {
	jobs, applications, savedIDs, err := s.snapshot(userID)
	if err != nil {
		return ReconciledView{}, err
	}
	return Reconcile(jobs, applications, savedIDs), nil
}

// Recommendations ranks jobs the student has not applied to yet.
func (s *DashboardService) Recommendations(userID uint, limit int) ([]models.Job, error) {
	jobs, applications, _, err := s.snapshot(userID)
	if err != nil {
		return nil, err
	}

	var skills []models.Skill
	if err := s.DB.Where("user_id = ?", userID).Find(&skills).Error; err != nil {
		return nil, err
	}

	appliedIDs := make(map[uint]bool, len(applications))
	for _, app := range applications {
		appliedIDs[app.JobID] = true
	}
	return Recommend(jobs, appliedIDs, skills, s.Affinity, s.Weights, limit), nil
}

// QuickActions derives the prioritizer flags from the student's current
// profile state and returns the ordered action list.
func (s *DashboardService) QuickActions(userID uint) ([]QuickAction, error) {
	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}

	var skillCount int64
	if err := s.DB.Model(&models.Skill{}).Where("user_id = ?", userID).Count(&skillCount).Error; err != nil {
		return nil, err
	}

	var pendingCount int64
	if err := s.DB.Model(&models.Application{}).
		Where("user_id = ? AND status = ?", userID, "PENDING").
		Count(&pendingCount).Error; err != nil {
		return nil, err
	}

	flags := ActionFlags{
		IncompleteProfile:   user.Headline == "" || user.GraduationYear == 0,
		PendingApplications: pendingCount > 0,
		NeedsSkillUpdate:    skillCount == 0,
	}
	return PrioritizeActions(flags), nil
}

// snapshot loads the browsable job list plus the student's application and
// saved-job sets in one place so every dashboard read derives from the same
// queries.
func (s *DashboardService) snapshot(userID uint) ([]models.Job, []models.Application, map[uint]bool, error) {
	var jobs []models.Job
	err := s.DB.Preload("Company").Preload("Category").
		Where("status <> ?", models.JobStatusDraft).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, nil, nil, err
	}

	var applications []models.Application
	if err := s.DB.Where("user_id = ?", userID).Find(&applications).Error; err != nil {
		return nil, nil, nil, err
	}

	var saved []models.SavedJob
	if err := s.DB.Where("user_id = ?", userID).Find(&saved).Error; err != nil {
		return nil, nil, nil, err
	}
	savedIDs := make(map[uint]bool, len(saved))
	for _, sj := range saved {
		savedIDs[sj.JobID] = true
	}

	return jobs, applications, savedIDs, nil
}
