package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/campushire/jobboard-api/internal/models"
	"gorm.io/gorm"
)

type CategoryService struct {
	DB *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{DB: db}
}

func (s *CategoryService) CreateCategory(name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name must not be empty", ErrValidation)
	}

	var count int64
	if err := s.DB.Model(&models.Category{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: category %q", ErrConflict, name)
	}

	category := &models.Category{Name: name, IsActive: true}
	if err := s.DB.Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.DB.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *CategoryService) SetActive(categoryID uint, active bool) (*models.Category, error) {
	category, err := s.getCategory(categoryID)
	if err != nil {
		return nil, err
	}
	category.IsActive = active
	if err := s.DB.Save(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// Stats recomputes the category's statistics from the current jobs and
// applications. An unknown category id is ErrNotFound; a known category with
// no jobs aggregates cleanly to zeros.
func (s *CategoryService) Stats(categoryID uint) (CategoryStats, error) {
	category, err := s.getCategory(categoryID)
	if err != nil {
		return CategoryStats{}, err
	}

	var jobs []models.Job
	if err := s.DB.Where("category_id = ?", category.ID).Find(&jobs).Error; err != nil {
		return CategoryStats{}, err
	}

	var applications []models.Application
	if len(jobs) > 0 {
		jobIDs := make([]uint, 0, len(jobs))
		for _, job := range jobs {
			jobIDs = append(jobIDs, job.ID)
		}
		if err := s.DB.Where("job_id IN ?", jobIDs).Find(&applications).Error; err != nil {
			return CategoryStats{}, err
		}
	}

	return AggregateCategoryStats(*category, jobs, applications)
}

func (s *CategoryService) getCategory(categoryID uint) (*models.Category, error) {
	var category models.Category
	err := s.DB.First(&category, categoryID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: category %d", ErrNotFound, categoryID)
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}
