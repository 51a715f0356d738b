package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cogip/cogip-api/internal/core/ports"
)

// ContactHandler handles HTTP requests for contact records.
type ContactHandler struct {
	service ports.ContactService
}

func NewContactHandler(service ports.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// Create stores a new contact.
//
// @Summary      Create a contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createContactRequest  true  "Contact"
// @Success      201   {object}  createdResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/contact [post]
func (h *ContactHandler) Create(c echo.Context) error {
	var req createContactRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	contact, err := h.service.CreateContact(c.Request().Context(), ports.CreateContactInput{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		CompanyID: req.CompanyID,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to create contact"})
	}

	return c.JSON(http.StatusCreated, createdResponse{
		ID:      contact.ID,
		Message: fmt.Sprintf("Contact %s created", contact.Name),
	})
}

// List returns every contact.
//
// @Summary      List contacts
// @Tags         contacts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  contactsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/contacts [get]
func (h *ContactHandler) List(c echo.Context) error {
	contacts, err := h.service.ListContacts(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to list contacts"})
	}
	return c.JSON(http.StatusOK, contactsResponse{Contacts: contacts})
}
