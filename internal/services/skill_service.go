package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/campushire/jobboard-api/internal/models"
	"gorm.io/gorm"
)

// Skill proficiency levels.
const (
	LevelBeginner     = "BEGINNER"
	LevelIntermediate = "INTERMEDIATE"
	LevelAdvanced     = "ADVANCED"
	LevelExpert       = "EXPERT"
)

const (
	MinYearsOfExperience = 0
	MaxYearsOfExperience = 50
)

// LevelInfo is display metadata for a proficiency level. Rank orders levels
// for sorting (BEGINNER=1 .. EXPERT=4).
type LevelInfo struct {
	Label string `json:"label"`
	Rank  int    `json:"rank"`
}

var levelInfos = map[string]LevelInfo{
	LevelBeginner:     {Label: "Beginner", Rank: 1},
	LevelIntermediate: {Label: "Intermediate", Rank: 2},
	LevelAdvanced:     {Label: "Advanced", Rank: 3},
	LevelExpert:       {Label: "Expert", Rank: 4},
}

// ClassifyLevel returns the display metadata for a proficiency level. An
// unknown level falls back to BEGINNER's metadata: writes already rejected
// invalid levels, so this is a read-path convenience, not silent data loss.
func ClassifyLevel(level string) LevelInfo {
	if info, ok := levelInfos[level]; ok {
		return info
	}
	return levelInfos[LevelBeginner]
}

// SkillInput is the validated payload for creating or updating a skill.
type SkillInput struct {
	Name              string
	Level             string
	YearsOfExperience int
}

// validateSkillInput checks the invariants shared by AddSkill and
// UpdateSkill. The trimmed name is written back into the input.
func validateSkillInput(input *SkillInput) error {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return fmt.Errorf("%w: skill name must not be empty", ErrValidation)
	}
	if _, ok := levelInfos[input.Level]; !ok {
		return fmt.Errorf("%w: unknown skill level %q", ErrValidation, input.Level)
	}
	if input.YearsOfExperience < MinYearsOfExperience || input.YearsOfExperience > MaxYearsOfExperience {
		return fmt.Errorf("%w: years of experience must be between %d and %d",
			ErrValidation, MinYearsOfExperience, MaxYearsOfExperience)
	}
	return nil
}

type SkillService struct {
	DB *gorm.DB
}

func NewSkillService(db *gorm.DB) *SkillService {
	return &SkillService{DB: db}
}

// AddSkill validates and stores a new skill on the given profile.
func (s *SkillService) AddSkill(userID uint, input SkillInput) (*models.Skill, error) {
	if err := validateSkillInput(&input); err != nil {
		return nil, err
	}
	skill := &models.Skill{
		UserID:            userID,
		Name:              input.Name,
		Level:             input.Level,
		YearsOfExperience: input.YearsOfExperience,
	}
	if err := s.DB.Create(skill).Error; err != nil {
		return nil, err
	}
	return skill, nil
}

// UpdateSkill applies a validated patch to a skill owned by userID. A skill
// id that does not exist under this profile is ErrNotFound, also when it
// belongs to somebody else.
func (s *SkillService) UpdateSkill(userID, skillID uint, input SkillInput) (*models.Skill, error) {
	if err := validateSkillInput(&input); err != nil {
		return nil, err
	}
	var skill models.Skill
	err := s.DB.Where("id = ? AND user_id = ?", skillID, userID).First(&skill).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: skill %d", ErrNotFound, skillID)
	}
	if err != nil {
		return nil, err
	}

	skill.Name = input.Name
	skill.Level = input.Level
	skill.YearsOfExperience = input.YearsOfExperience
	if err := s.DB.Save(&skill).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

// RemoveSkill deletes a skill owned by userID. Asking twice yields
// ErrNotFound the second time; confirmation dialogs are the caller's concern.
func (s *SkillService) RemoveSkill(userID, skillID uint) error {
	res := s.DB.Where("id = ? AND user_id = ?", skillID, userID).Delete(&models.Skill{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: skill %d", ErrNotFound, skillID)
	}
	return nil
}

// ListSkills returns the profile's skills, strongest first.
func (s *SkillService) ListSkills(userID uint) ([]models.Skill, error) {
	var skills []models.Skill
	if err := s.DB.Where("user_id = ?", userID).Find(&skills).Error; err != nil {
		return nil, err
	}
	// Strongest first: level rank descending, then years descending.
	sort.SliceStable(skills, func(i, j int) bool {
		ri, rj := ClassifyLevel(skills[i].Level).Rank, ClassifyLevel(skills[j].Level).Rank
		if ri != rj {
			return ri > rj
		}
		return skills[i].YearsOfExperience > skills[j].YearsOfExperience
	})
	return skills, nil
}
