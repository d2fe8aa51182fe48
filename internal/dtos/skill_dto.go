package dtos

// SkillRequest covers both create and update; the service layer re-validates
// against its own error kinds so the core stays transport-agnostic.
type SkillRequest struct {
	Name              string `json:"name" binding:"required"`
	Level             string `json:"level" binding:"required,oneof=BEGINNER INTERMEDIATE ADVANCED EXPERT"`
	YearsOfExperience *int   `json:"years_of_experience" binding:"required,min=0,max=50"`
}
