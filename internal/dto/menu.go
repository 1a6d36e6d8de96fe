package dto

type OrderingAllowedResponseDTO struct {
	Allowed bool `json:"allowed" example:"true"`
}

type TimeSlotRequestDTO struct {
	Name      string `json:"name" example:"Lunch Menu"`
	StartDate string `json:"start_date" example:"2024-01-01"`
	EndDate   string `json:"end_date" example:"2024-01-31"`
	StartTime string `json:"start_time" example:"09:00"`
	EndTime   string `json:"end_time" example:"17:00"`
	IsActive  bool   `json:"is_active" example:"true"`
}

type TimeSlotResponseDTO struct {
	ID        int    `json:"id" example:"2"`
	Name      string `json:"name" example:"Lunch Menu"`
	StartDate string `json:"start_date" example:"2024-01-01"`
	EndDate   string `json:"end_date" example:"2024-01-31"`
	StartTime string `json:"start_time" example:"09:00:00"`
	EndTime   string `json:"end_time" example:"17:00:00"`
	IsActive  bool   `json:"is_active" example:"true"`
}

type CategoryResponseDTO struct {
	ID    int     `json:"id" example:"3"`
	Name  string  `json:"name" example:"South Indian Thali"`
	Price float64 `json:"price" example:"120.5"`
}
