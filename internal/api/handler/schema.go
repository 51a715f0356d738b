package handler

import "github.com/cogip/cogip-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// createdResponse is returned by every create endpoint.
type createdResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// --- Request / Response types ---

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

type createCompanyRequest struct {
	Name    string `json:"name"    validate:"required"`
	Country string `json:"country" validate:"required"`
	VAT     string `json:"vat"     validate:"required"`
	Type    string `json:"type"    validate:"required"`
}

type companiesResponse struct {
	Companies []*domain.Company `json:"companies"`
}

type createContactRequest struct {
	Name      string `json:"name"       validate:"required"`
	Email     string `json:"email"      validate:"required,email"`
	Phone     string `json:"phone"`
	CompanyID int64  `json:"company_id" validate:"required,gt=0"`
}

type contactsResponse struct {
	Contacts []*domain.Contact `json:"contacts"`
}

type createInvoiceRequest struct {
	Reference string  `json:"reference"  validate:"required"`
	CompanyID int64   `json:"company_id" validate:"required,gt=0"`
	Amount    float64 `json:"amount"     validate:"required,gt=0"`
	DueDate   string  `json:"due_date"   validate:"required,datetime=2006-01-02"`
}

type invoicesResponse struct {
	Invoices []*domain.Invoice `json:"invoices"`
}

type createUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,max=72"`
	Role     string `json:"role"     validate:"required,oneof=admin accountant intern"`
}

type usersResponse struct {
	Users []*domain.User `json:"users"`
}
