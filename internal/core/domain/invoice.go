package domain

import "time"

// Invoice is a bill issued to or received from a company.
type Invoice struct {
	ID        int64     `json:"id"`
	Reference string    `json:"reference"`
	CompanyID int64     `json:"company_id"`
	Amount    float64   `json:"amount"`
	DueDate   time.Time `json:"due_date"`
	CreatedAt time.Time `json:"created_at"`
}
