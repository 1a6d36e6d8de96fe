package dto

type PlaceOrderRequestDTO struct {
	CategoryID int `json:"category_id" example:"3"`
}

type OrderResponseDTO struct {
	ID        int     `json:"id" example:"17"`
	Category  string  `json:"category,omitempty" example:"South Indian Thali"`
	Price     float64 `json:"price" example:"120.5"`
	Status    string  `json:"status" example:"pending"`
	Date      string  `json:"date" example:"2024-01-15"`
	CreatedAt string  `json:"created_at" example:"2024-01-15T09:12:43+05:30"`
}

type PlaceOrderResponseDTO struct {
	OrderID int    `json:"order_id" example:"17"`
	Message string `json:"message" example:"Order placed successfully!"`
}

type UpdateStatusRequestDTO struct {
	OrderID int    `json:"order_id" example:"17"`
	Status  string `json:"status" example:"preparing"`
}

type KitchenOrderDTO struct {
	ID        int    `json:"id" example:"17"`
	User      string `json:"user" example:"Asha"`
	Status    string `json:"status" example:"pending"`
	CreatedAt string `json:"created_at" example:"2024-01-15T09:12:43+05:30"`
}

type KitchenCategoryDTO struct {
	Category string            `json:"category" example:"South Indian Thali"`
	Count    int               `json:"count" example:"4"`
	Orders   []KitchenOrderDTO `json:"orders"`
}

type KitchenBoardResponseDTO struct {
	Categories  []KitchenCategoryDTO `json:"categories"`
	TotalOrders int                  `json:"total_orders" example:"11"`
}
