package services

import (
	"fmt"
	"sort"

	"github.com/campushire/jobboard-api/internal/models"
)

// JobTypeCount is one bucket of the per-category job-type distribution.
type JobTypeCount struct {
	JobType string `json:"job_type"`
	Count   int    `json:"count"`
}

// CategoryStats is the admin view model for one category. All fields are
// recomputed from the current job/application snapshots on every call, never
// persisted, so they cannot go stale.
type CategoryStats struct {
	CategoryID          uint           `json:"category_id"`
	CategoryName        string         `json:"category_name"`
	JobCount            int            `json:"job_count"`
	ActiveJobCount      int            `json:"active_job_count"`
	TotalApplications   int            `json:"total_applications"`
	JobTypeDistribution []JobTypeCount `json:"job_type_distribution"`
}

// AggregateCategoryStats computes the stats for one category over snapshots
// of jobs and applications. A category with zero jobs is valid and yields
// zero-filled stats; a zero-valued category is a caller mistake and fails
// with ErrPrecondition (the service layer resolves unknown ids to ErrNotFound
// before ever reaching this point).
//
// The distribution is ordered by count descending; ties keep the order in
// which each job type was first seen in the job list.
func AggregateCategoryStats(category models.Category, jobs []models.Job, applications []models.Application) (CategoryStats, error) {
	if category.ID == 0 {
		return CategoryStats{}, fmt.Errorf("%w: category is not persisted", ErrPrecondition)
	}

	stats := CategoryStats{
		CategoryID:          category.ID,
		CategoryName:        category.Name,
		JobTypeDistribution: []JobTypeCount{},
	}

	inCategory := make(map[uint]bool)
	typeCounts := make(map[string]int)
	var typeOrder []string

	for _, job := range jobs {
		if job.CategoryID != category.ID {
			continue
		}
		inCategory[job.ID] = true
		stats.JobCount++
		if job.Status == models.JobStatusActive {
			stats.ActiveJobCount++
		}
		if _, seen := typeCounts[job.JobType]; !seen {
			typeOrder = append(typeOrder, job.JobType)
		}
		typeCounts[job.JobType]++
	}

	for _, app := range applications {
		if inCategory[app.JobID] {
			stats.TotalApplications++
		}
	}

	for _, jobType := range typeOrder {
		stats.JobTypeDistribution = append(stats.JobTypeDistribution, JobTypeCount{
			JobType: jobType,
			Count:   typeCounts[jobType],
		})
	}
	sort.SliceStable(stats.JobTypeDistribution, func(i, j int) bool {
		return stats.JobTypeDistribution[i].Count > stats.JobTypeDistribution[j].Count
	})

	return stats, nil
}
