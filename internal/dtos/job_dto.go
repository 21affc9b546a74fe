package dtos

type JobCreationRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Company     string `json:"company" binding:"required"`
	Location    string `json:"location" binding:"required"`

	// Optional Fields
	Salary *float64 `json:"salary" binding:"omitempty,gte=0"`
}
