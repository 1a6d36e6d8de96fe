package dto

type AggregatesResponseDTO struct {
	Total        float64 `json:"total" example:"450"`
	Completed    float64 `json:"completed" example:"250"`
	Pending      float64 `json:"pending" example:"200"`
	Balance      float64 `json:"balance" example:"200"`
	DistinctDays int     `json:"distinct_days" example:"3"`
}

type PaymentRequestDTO struct {
	UserID           int     `json:"user_id" example:"7"`
	PaymentAmount    float64 `json:"payment_amount" example:"250"`
	MarkAllCompleted bool    `json:"mark_all_completed" example:"false"`
}

type PaymentResponseDTO struct {
	Message          string  `json:"message" example:"Payment of 250.00 processed successfully"`
	OrdersCompleted  int     `json:"orders_completed" example:"2"`
	RemainingBalance float64 `json:"remaining_balance" example:"200"`
}

type MarkAllCompletedResponseDTO struct {
	Message string `json:"message" example:"All orders marked as completed for Asha"`
}

type DeleteOrdersRequestDTO struct {
	OrderIDs []int  `json:"order_ids" example:"4,5,6"`
	Date     string `json:"date" example:"2024-01-15"`
}

type DeleteOrdersResponseDTO struct {
	DeletedCount int `json:"deleted_count" example:"3"`
}

type StaffSummaryRowDTO struct {
	UserID      int     `json:"user_id" example:"7"`
	Name        string  `json:"name" example:"Asha"`
	Email       string  `json:"email" example:"asha@example.com"`
	Phone       string  `json:"phone" example:"9876543210"`
	TotalDays   int     `json:"total_days" example:"12"`
	TotalAmount float64 `json:"total_amount" example:"1450"`
	Completed   float64 `json:"completed_amount" example:"900"`
	Pending     float64 `json:"pending_amount" example:"550"`
	Balance     float64 `json:"balance" example:"550"`
}
