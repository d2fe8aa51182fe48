package services

import (
	"sort"
	"strings"

	"github.com/campushire/jobboard-api/internal/models"
)

// DefaultRecommendLimit caps the recommendation list when the caller passes
// limit <= 0.
const DefaultRecommendLimit = 3

// AffinityFunc reports whether a job's category correlates with the student's
// skills. The signal is supplied by the caller; Recommend only consumes it.
type AffinityFunc func(job models.Job, skills []models.Skill) bool

// RecommendWeights are the additive scoring bonuses. They are deliberately
// configurable; the defaults are not load-bearing.
type RecommendWeights struct {
	AffinityBonus int
	ActiveBonus   int
}

func DefaultRecommendWeights() RecommendWeights {
	return RecommendWeights{AffinityBonus: 2, ActiveBonus: 1}
}

// Recommend scores candidate jobs against the student's profile and returns
// the top entries, newest first among equal scores. Jobs already applied to
// are never recommended. The result is deterministic for identical inputs.
func Recommend(candidates []models.Job, appliedJobIDs map[uint]bool, skills []models.Skill, affinity AffinityFunc, weights RecommendWeights, limit int) []models.Job {
	if limit <= 0 {
		limit = DefaultRecommendLimit
	}

	type scored struct {
		job   models.Job
		score int
	}

	ranked := make([]scored, 0, len(candidates))
	for _, job := range candidates {
		if appliedJobIDs[job.ID] {
			continue
		}
		score := 0
		if affinity != nil && affinity(job, skills) {
			score += weights.AffinityBonus
		}
		if job.Status == models.JobStatusActive {
			score += weights.ActiveBonus
		}
		ranked = append(ranked, scored{job: job, score: score})
	}

	// Stable: candidates with equal score and creation time keep input order.
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].job.CreatedAt.After(ranked[j].job.CreatedAt)
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]models.Job, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.job)
	}
	return out
}

// SkillNameAffinity is the default affinity signal: a skill name appearing in
// the job's title, description, or category name counts as a match. Very
// short skill names are skipped to avoid false positives ("Go", "R").
func SkillNameAffinity(job models.Job, skills []models.Skill) bool {
	title := strings.ToLower(job.Title)
	desc := strings.ToLower(job.Description)
	category := strings.ToLower(job.Category.Name)

	for _, skill := range skills {
		name := strings.ToLower(strings.TrimSpace(skill.Name))
		if len(name) < 3 {
			continue
		}
		if strings.Contains(title, name) || strings.Contains(desc, name) || strings.Contains(category, name) {
			return true
		}
	}
	return false
}
