package postgres

import (
	"time"

	"github.com/cogip/cogip-api/internal/core/domain"
)

type userRow struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Username     string    `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string    `gorm:"size:255;not null"`
	Role         string    `gorm:"size:32;not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (userRow) TableName() string { return "users" }

func (r userRow) toDomain() *domain.User {
	return &domain.User{
		ID:           r.ID,
		Username:     r.Username,
		PasswordHash: r.PasswordHash,
		Role:         domain.Role(r.Role),
		CreatedAt:    r.CreatedAt.UTC(),
	}
}

type companyRow struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"size:255;not null"`
	Country   string    `gorm:"size:255;not null"`
	VAT       string    `gorm:"column:vat;size:255;not null"`
	Type      string    `gorm:"size:255;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (companyRow) TableName() string { return "companies" }

func (r companyRow) toDomain() *domain.Company {
	return &domain.Company{
		ID:        r.ID,
		Name:      r.Name,
		Country:   r.Country,
		VAT:       r.VAT,
		Type:      r.Type,
		CreatedAt: r.CreatedAt.UTC(),
	}
}

type contactRow struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"size:255;not null"`
	Email     string    `gorm:"size:255;not null"`
	Phone     string    `gorm:"size:64"`
	CompanyID int64     `gorm:"index;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (contactRow) TableName() string { return "contacts" }

func (r contactRow) toDomain() *domain.Contact {
	return &domain.Contact{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		CompanyID: r.CompanyID,
		CreatedAt: r.CreatedAt.UTC(),
	}
}

type invoiceRow struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Reference string    `gorm:"size:255;uniqueIndex;not null"`
	CompanyID int64     `gorm:"index;not null"`
	Amount    float64   `gorm:"not null"`
	DueDate   time.Time `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (invoiceRow) TableName() string { return "invoices" }

func (r invoiceRow) toDomain() *domain.Invoice {
	return &domain.Invoice{
		ID:        r.ID,
		Reference: r.Reference,
		CompanyID: r.CompanyID,
		Amount:    r.Amount,
		DueDate:   r.DueDate.UTC(),
		CreatedAt: r.CreatedAt.UTC(),
	}
}
