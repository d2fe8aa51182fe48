package services

import (
	"errors"
	"reflect"
	"testing"

	"github.com/campushire/jobboard-api/internal/models"
)

func TestAggregateCategoryStats(t *testing.T) {
	category := models.Category{ID: 5, Name: "Engineering"}
	jobs := []models.Job{
		{ID: 1, CategoryID: 5, Status: models.JobStatusActive, JobType: "FULL_TIME"},
		{ID: 2, CategoryID: 5, Status: models.JobStatusClosed, JobType: "INTERNSHIP"},
		{ID: 3, CategoryID: 5, Status: models.JobStatusActive, JobType: "INTERNSHIP"},
		{ID: 4, CategoryID: 9, Status: models.JobStatusActive, JobType: "FULL_TIME"}, // other category
	}
	applications := []models.Application{
		{JobID: 1},
		{JobID: 2},
		{JobID: 4},  // other category, not counted
		{JobID: 99}, // orphan, not counted
	}

	stats, err := AggregateCategoryStats(category, jobs, applications)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.JobCount != 3 {
		t.Errorf("JobCount = %d, want 3", stats.JobCount)
	}
	if stats.ActiveJobCount != 2 {
		t.Errorf("ActiveJobCount = %d, want 2", stats.ActiveJobCount)
	}
	if stats.TotalApplications != 2 {
		t.Errorf("TotalApplications = %d, want 2", stats.TotalApplications)
	}

	want := []JobTypeCount{
		{JobType: "INTERNSHIP", Count: 2},
		{JobType: "FULL_TIME", Count: 1},
	}
	if !reflect.DeepEqual(stats.JobTypeDistribution, want) {
		t.Errorf("distribution = %v, want %v", stats.JobTypeDistribution, want)
	}
}

func TestAggregateCategoryStatsZeroJobs(t *testing.T) {
	category := models.Category{ID: 5, Name: "Design"}

	stats, err := AggregateCategoryStats(category, nil, nil)
	if err != nil {
		t.Fatalf("zero-job category must not error, got %v", err)
	}
	if stats.JobCount != 0 || stats.ActiveJobCount != 0 || stats.TotalApplications != 0 {
		t.Errorf("stats = %+v, want zero-filled", stats)
	}
	if len(stats.JobTypeDistribution) != 0 {
		t.Errorf("distribution = %v, want empty", stats.JobTypeDistribution)
	}
}

func TestAggregateCategoryStatsUnpersistedCategory(t *testing.T) {
	_, err := AggregateCategoryStats(models.Category{}, nil, nil)
	if !errors.Is(err, ErrPrecondition) {
		t.Errorf("err = %v, want ErrPrecondition", err)
	}
}

// Ties in the distribution keep the order in which each type was first seen.
func TestAggregateCategoryStatsTieOrder(t *testing.T) {
	category := models.Category{ID: 1, Name: "Ops"}
	jobs := []models.Job{
		{ID: 1, CategoryID: 1, JobType: "CONTRACT"},
		{ID: 2, CategoryID: 1, JobType: "PART_TIME"},
	}

	stats, err := AggregateCategoryStats(category, jobs, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []JobTypeCount{
		{JobType: "CONTRACT", Count: 1},
		{JobType: "PART_TIME", Count: 1},
	}
	if !reflect.DeepEqual(stats.JobTypeDistribution, want) {
		t.Errorf("distribution = %v, want first-seen order %v", stats.JobTypeDistribution, want)
	}
}
