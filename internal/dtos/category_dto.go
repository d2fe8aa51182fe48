package dtos

type CategoryCreationRequest struct {
	Name string `json:"name" binding:"required"`
}

type CategoryActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}
