package domain

import "time"

// Contact is a person working for a company.
type Contact struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CompanyID int64     `json:"company_id"`
	CreatedAt time.Time `json:"created_at"`
}
