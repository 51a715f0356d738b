package domain

import "time"

// Company is a customer or supplier the accounting team deals with.
type Company struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Country   string    `json:"country"`
	VAT       string    `json:"vat"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}
