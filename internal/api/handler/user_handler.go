package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cogip/cogip-api/internal/core/domain"
	"github.com/cogip/cogip-api/internal/core/ports"
)

// UserHandler handles user management. Password hashes never leave the store.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Create registers a new user with the given role.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "User"
// @Success      201   {object}  createdResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/user [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	user, err := h.service.Register(c.Request().Context(), ports.RegisterUserInput{
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserExists):
			return c.JSON(http.StatusConflict, errorResponse{Error: "user already exists"})
		case errors.Is(err, domain.ErrInvalidRole), errors.Is(err, domain.ErrPasswordTooLong):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		case errors.Is(err, domain.ErrBadRequest):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "username and password are required"})
		default:
			return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to create user"})
		}
	}

	return c.JSON(http.StatusCreated, createdResponse{
		ID:      user.ID,
		Message: fmt.Sprintf("User %s created", user.Username),
	})
}

// List returns every user without password hashes.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  usersResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to list users"})
	}
	return c.JSON(http.StatusOK, usersResponse{Users: users})
}
