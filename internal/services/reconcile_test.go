package services

import (
	"testing"

	"github.com/campushire/jobboard-api/internal/models"
)

func TestReconcileStatesAndCounts(t *testing.T) {
	jobs := []models.Job{
		{ID: 1, Status: models.JobStatusActive},
		{ID: 2, Status: models.JobStatusClosed},
	}
	applications := []models.Application{
		{ID: 10, JobID: 1, UserID: 7},
	}
	saved := map[uint]bool{2: true}

	view := Reconcile(jobs, applications, saved)

	if view.TotalJobs != 2 {
		t.Errorf("TotalJobs = %d, want 2", view.TotalJobs)
	}
	if view.AppliedJobs != 1 {
		t.Errorf("AppliedJobs = %d, want 1", view.AppliedJobs)
	}
	if view.SavedJobs != 1 {
		t.Errorf("SavedJobs = %d, want 1", view.SavedJobs)
	}
	if view.SuccessRate != 50 {
		t.Errorf("SuccessRate = %d, want 50", view.SuccessRate)
	}

	if view.Jobs[0].State != JobStateApplied {
		t.Errorf("job 1 state = %s, want %s", view.Jobs[0].State, JobStateApplied)
	}
	if view.Jobs[1].State != JobStateSaved {
		t.Errorf("job 2 state = %s, want %s", view.Jobs[1].State, JobStateSaved)
	}
}

func TestReconcileAppliedAndSaved(t *testing.T) {
	jobs := []models.Job{{ID: 1}}
	applications := []models.Application{{JobID: 1}}
	saved := map[uint]bool{1: true}

	view := Reconcile(jobs, applications, saved)
	if view.Jobs[0].State != JobStateAppliedAndSaved {
		t.Errorf("state = %s, want %s", view.Jobs[0].State, JobStateAppliedAndSaved)
	}
}

func TestReconcileEmptyInputs(t *testing.T) {
	view := Reconcile(nil, nil, nil)
	if view.TotalJobs != 0 || view.AppliedJobs != 0 || view.SavedJobs != 0 {
		t.Errorf("counts = %d/%d/%d, want all zero", view.TotalJobs, view.AppliedJobs, view.SavedJobs)
	}
	if view.SuccessRate != 0 {
		t.Errorf("SuccessRate = %d, want 0", view.SuccessRate)
	}
	if len(view.Jobs) != 0 {
		t.Errorf("len(Jobs) = %d, want 0", len(view.Jobs))
	}
}

// An application whose job was deleted upstream must be skipped, not counted
// and not crash the view.
func TestReconcileIgnoresOrphanApplications(t *testing.T) {
	jobs := []models.Job{{ID: 1}}
	applications := []models.Application{
		{JobID: 1},
		{JobID: 99}, // job no longer exists
	}

	view := Reconcile(jobs, applications, nil)
	if view.AppliedJobs != 1 {
		t.Errorf("AppliedJobs = %d, want 1 (orphan excluded)", view.AppliedJobs)
	}
	if view.SuccessRate != 100 {
		t.Errorf("SuccessRate = %d, want 100", view.SuccessRate)
	}
}

// A duplicate application for the same job, if it ever arrives upstream,
// counts once.
func TestReconcileDeduplicatesApplications(t *testing.T) {
	jobs := []models.Job{{ID: 1}, {ID: 2}}
	applications := []models.Application{
		{ID: 1, JobID: 1},
		{ID: 2, JobID: 1},
	}

	view := Reconcile(jobs, applications, nil)
	if view.AppliedJobs != 1 {
		t.Errorf("AppliedJobs = %d, want 1", view.AppliedJobs)
	}
	if view.SuccessRate != 50 {
		t.Errorf("SuccessRate = %d, want 50", view.SuccessRate)
	}
}

func TestReconcileSuccessRateRounding(t *testing.T) {
	tests := []struct {
		name    string
		jobs    int
		applied int
		want    int
	}{
		{"one of three rounds down", 3, 1, 33},
		{"two of three rounds up", 3, 2, 67},
		{"half rounds up", 8, 1, 13}, // 12.5 -> 13
		{"all applied", 4, 4, 100},
		{"none applied", 5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var jobs []models.Job
			var apps []models.Application
			for i := 1; i <= tt.jobs; i++ {
				jobs = append(jobs, models.Job{ID: uint(i)})
			}
			for i := 1; i <= tt.applied; i++ {
				apps = append(apps, models.Application{JobID: uint(i)})
			}

			view := Reconcile(jobs, apps, nil)
			if view.SuccessRate != tt.want {
				t.Errorf("SuccessRate = %d, want %d", view.SuccessRate, tt.want)
			}
			if view.SuccessRate < 0 || view.SuccessRate > 100 {
				t.Errorf("SuccessRate = %d out of [0,100]", view.SuccessRate)
			}
		})
	}
}
