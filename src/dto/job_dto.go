package dto

type CreateJobDTO struct {
	Title         string   `json:"title" binding:"required"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Location      string   `json:"location"`
	Remote        bool     `json:"remote"`
	BudgetAmount  float64  `json:"budget_amount"`
	Skills        []string `json:"skills"`
	WorkersNeeded int      `json:"workers_needed" binding:"required,min=1"`
}

type UpdateWorkersDTO struct {
	WorkersNeeded int `json:"workers_needed" binding:"required,min=1"`
}
