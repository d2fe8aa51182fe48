package services

import "sort"

// Priority tiers for quick actions, highest first.
const (
	PriorityHigh   = "HIGH"
	PriorityMedium = "MEDIUM"
	PriorityLow    = "LOW"
)

var priorityRank = map[string]int{
	PriorityHigh:   3,
	PriorityMedium: 2,
	PriorityLow:    1,
}

// QuickAction is a data-only action template for the dashboard. Rendering
// (icons, animation) belongs entirely to the frontend.
type QuickAction struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Badge       string `json:"badge,omitempty"`
	TargetLink  string `json:"target_link"`
}

// ActionFlags describe the profile-completeness state that upgrades
// individual actions.
type ActionFlags struct {
	IncompleteProfile   bool `json:"incomplete_profile"`
	PendingApplications bool `json:"pending_applications"`
	NeedsSkillUpdate    bool `json:"needs_skill_update"`
}

// PrioritizeActions returns the fixed six-action catalog ordered by priority
// tier. Three entries are upgraded to HIGH with a badge when the matching
// flag is set. The sort is stable: equal tiers keep catalog order, so the
// output is deterministic for identical flags.
func PrioritizeActions(flags ActionFlags) []QuickAction {
	actions := []QuickAction{
		{
			ID:          "browse-jobs",
			Title:       "Browse Jobs",
			Description: "Explore open positions across all categories",
			Priority:    PriorityMedium,
			TargetLink:  "/jobs",
		},
		{
			ID:          "view-applications",
			Title:       "View Applications",
			Description: "Track the status of jobs you applied to",
			Priority:    PriorityMedium,
			TargetLink:  "/applications",
		},
		{
			ID:          "saved-jobs",
			Title:       "Saved Jobs",
			Description: "Revisit jobs you bookmarked for later",
			Priority:    PriorityLow,
			TargetLink:  "/saved",
		},
		{
			ID:          "update-profile",
			Title:       "Update Profile",
			Description: "Keep your profile current for recruiters",
			Priority:    PriorityMedium,
			TargetLink:  "/profile",
		},
		{
			ID:          "manage-skills",
			Title:       "Manage Skills",
			Description: "Add or update the skills on your profile",
			Priority:    PriorityMedium,
			TargetLink:  "/profile/skills",
		},
		{
			ID:          "add-experience",
			Title:       "Add Experience",
			Description: "List internships and past positions",
			Priority:    PriorityLow,
			TargetLink:  "/profile/experience",
		},
	}

	for i := range actions {
		switch actions[i].ID {
		case "update-profile":
			if flags.IncompleteProfile {
				actions[i].Priority = PriorityHigh
				actions[i].Badge = "Complete Profile"
			}
		case "view-applications":
			if flags.PendingApplications {
				actions[i].Priority = PriorityHigh
				actions[i].Badge = "Pending"
			}
		case "manage-skills":
			if flags.NeedsSkillUpdate {
				actions[i].Priority = PriorityHigh
				actions[i].Badge = "Add Skills"
			}
		}
	}

	sort.SliceStable(actions, func(i, j int) bool {
		return priorityRank[actions[i].Priority] > priorityRank[actions[j].Priority]
	})
	return actions
}
