package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cogip/cogip-api/internal/core/ports"
)

const dueDateLayout = "2006-01-02"

// InvoiceHandler handles HTTP requests for invoice records.
type InvoiceHandler struct {
	service ports.InvoiceService
}

func NewInvoiceHandler(service ports.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{service: service}
}

// Create stores a new invoice.
//
// @Summary      Create an invoice
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createInvoiceRequest  true  "Invoice"
// @Success      201   {object}  createdResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/invoice [post]
func (h *InvoiceHandler) Create(c echo.Context) error {
	var req createInvoiceRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	// Format already checked by the datetime validator.
	due, _ := time.Parse(dueDateLayout, req.DueDate)

	invoice, err := h.service.CreateInvoice(c.Request().Context(), ports.CreateInvoiceInput{
		Reference: req.Reference,
		CompanyID: req.CompanyID,
		Amount:    req.Amount,
		DueDate:   due,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to create invoice"})
	}

	return c.JSON(http.StatusCreated, createdResponse{
		ID:      invoice.ID,
		Message: fmt.Sprintf("Invoice %s created", invoice.Reference),
	})
}

// List returns every invoice.
//
// @Summary      List invoices
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  invoicesResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/invoices [get]
func (h *InvoiceHandler) List(c echo.Context) error {
	invoices, err := h.service.ListInvoices(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to list invoices"})
	}
	return c.JSON(http.StatusOK, invoicesResponse{Invoices: invoices})
}
