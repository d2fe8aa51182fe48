package handlers

import (
	"net/http"

	"github.com/campushire/jobboard-api/internal/auth"
	"github.com/campushire/jobboard-api/internal/dtos"
	"github.com/campushire/jobboard-api/internal/services"
	"github.com/gin-gonic/gin"
)

type SkillHandler struct {
	SkillService *services.SkillService
}

func NewSkillHandler(skills *services.SkillService) *SkillHandler {
	return &SkillHandler{SkillService: skills}
}

// ListSkills is GET /skills. Each skill is returned together with its level
// metadata so the frontend never hardcodes the level ordering.
func (h *SkillHandler) ListSkills(c *gin.Context) {
	user := auth.CurrentUser(c)
	skills, err := h.SkillService.ListSkills(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	type skillView struct {
		ID                uint               `json:"id"`
		Name              string             `json:"name"`
		Level             string             `json:"level"`
		LevelInfo         services.LevelInfo `json:"level_info"`
		YearsOfExperience int                `json:"years_of_experience"`
	}
	out := make([]skillView, 0, len(skills))
	for _, s := range skills {
		out = append(out, skillView{
			ID:                s.ID,
			Name:              s.Name,
			Level:             s.Level,
			LevelInfo:         services.ClassifyLevel(s.Level),
			YearsOfExperience: s.YearsOfExperience,
		})
	}
	c.JSON(http.StatusOK, out)
}

// AddSkill is POST /skills
func (h *SkillHandler) AddSkill(c *gin.Context) {
	var req dtos.SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	user := auth.CurrentUser(c)
	skill, err := h.SkillService.AddSkill(user.ID, services.SkillInput{
		Name:              req.Name,
		Level:             req.Level,
		YearsOfExperience: *req.YearsOfExperience,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, skill)
}

// UpdateSkill is PUT /skills/:id
func (h *SkillHandler) UpdateSkill(c *gin.Context) {
	skillID, ok := pathID(c)
	if !ok {
		return
	}
	var req dtos.SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	user := auth.CurrentUser(c)
	skill, err := h.SkillService.UpdateSkill(user.ID, skillID, services.SkillInput{
		Name:              req.Name,
		Level:             req.Level,
		YearsOfExperience: *req.YearsOfExperience,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, skill)
}

// RemoveSkill is DELETE /skills/:id. Confirmation dialogs are the frontend's
// business; once this is called the skill is gone.
func (h *SkillHandler) RemoveSkill(c *gin.Context) {
	skillID, ok := pathID(c)
	if !ok {
		return
	}
	user := auth.CurrentUser(c)
	if err := h.SkillService.RemoveSkill(user.ID, skillID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
