package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cogip/cogip-api/internal/core/ports"
)

// CompanyHandler handles HTTP requests for company records.
type CompanyHandler struct {
	service ports.CompanyService
}

func NewCompanyHandler(service ports.CompanyService) *CompanyHandler {
	return &CompanyHandler{service: service}
}

// Create stores a new company.
//
// @Summary      Create a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCompanyRequest  true  "Company"
// @Success      201   {object}  createdResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/company [post]
func (h *CompanyHandler) Create(c echo.Context) error {
	var req createCompanyRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	company, err := h.service.CreateCompany(c.Request().Context(), ports.CreateCompanyInput{
		Name:    req.Name,
		Country: req.Country,
		VAT:     req.VAT,
		Type:    req.Type,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to create company"})
	}

	return c.JSON(http.StatusCreated, createdResponse{
		ID:      company.ID,
		Message: fmt.Sprintf("Company %s created", company.Name),
	})
}

// List returns every company.
//
// @Summary      List companies
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  companiesResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/companies [get]
func (h *CompanyHandler) List(c echo.Context) error {
	companies, err := h.service.ListCompanies(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to list companies"})
	}
	return c.JSON(http.StatusOK, companiesResponse{Companies: companies})
}
