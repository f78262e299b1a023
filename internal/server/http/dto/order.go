package dto

import "time"

// OrderResponse describes one order row for the dashboard.
type OrderResponse struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	ISBN      *string   `json:"isbn"`
	Title     string    `json:"title"`
	Address   string    `json:"address"`
	Status    string    `json:"status"`
	Tracking  *string   `json:"tracking"`
	CreatedAt time.Time `json:"created_at"`
}

// UpdateStatusRequest carries a dashboard-driven status change.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderStatsResponse summarizes the order book.
type OrderStatsResponse struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Delivered int `json:"delivered"`
}
