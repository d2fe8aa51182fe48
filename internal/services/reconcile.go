package services

import (
	"math"

	"github.com/campushire/jobboard-api/internal/models"
)

// Per-job application state derived by Reconcile. Never persisted.
const (
	JobStateNotApplied      = "NOT_APPLIED"
	JobStateApplied         = "APPLIED"
	JobStateSaved           = "SAVED"
	JobStateAppliedAndSaved = "APPLIED_AND_SAVED"
)

// JobWithState pairs a job with its derived application/save state.
type JobWithState struct {
	Job   models.Job `json:"job"`
	State string     `json:"state"`
}

// ReconciledView is the dashboard's view model: every job tagged with its
// state plus the aggregate counters the stat cards render.
type ReconciledView struct {
	Jobs        []JobWithState `json:"jobs"`
	TotalJobs   int            `json:"total_jobs"`
	AppliedJobs int            `json:"applied_jobs"`
	SavedJobs   int            `json:"saved_jobs"`
	// Percentage of jobs applied to, rounded half-up to an integer. 0 when
	// there are no jobs at all.
	SuccessRate int `json:"success_rate"`
}

// Reconcile computes each job's state from independently fetched snapshots of
// the student's applications and saved-job ids.
//
// Applications are indexed by job id, first record wins, so a duplicate
// application upstream counts once. An application whose job id is absent
// from jobs is an expected upstream race (job deleted after applying) and is
// ignored rather than failing the whole view.
func Reconcile(jobs []models.Job, applications []models.Application, savedJobIDs map[uint]bool) ReconciledView {
	appByJob := make(map[uint]models.Application, len(applications))
	for _, app := range applications {
		if _, ok := appByJob[app.JobID]; !ok {
			appByJob[app.JobID] = app
		}
	}

	view := ReconciledView{
		Jobs:      make([]JobWithState, 0, len(jobs)),
		TotalJobs: len(jobs),
		SavedJobs: len(savedJobIDs),
	}

	for _, job := range jobs {
		_, applied := appByJob[job.ID]
		saved := savedJobIDs[job.ID]

		state := JobStateNotApplied
		switch {
		case applied && saved:
			state = JobStateAppliedAndSaved
		case applied:
			state = JobStateApplied
		case saved:
			state = JobStateSaved
		}

		if applied {
			view.AppliedJobs++
		}
		view.Jobs = append(view.Jobs, JobWithState{Job: job, State: state})
	}

	if view.TotalJobs > 0 {
		view.SuccessRate = int(math.Round(float64(view.AppliedJobs) / float64(view.TotalJobs) * 100))
	}
	return view
}
