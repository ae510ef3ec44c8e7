package handlers

import (
	"net/http"

	"userbase/internal/response"
	"userbase/internal/services"
	"userbase/internal/validation"

	"github.com/labstack/echo/v4"
)

// UserHandlers handles user-related HTTP requests
type UserHandlers struct {
	userService services.UserService
}

// NewUserHandlers creates a new user handlers instance
func NewUserHandlers(userService services.UserService) *UserHandlers {
	return &UserHandlers{userService: userService}
}

// CreateUser handles creating a new user
func (h *UserHandlers) CreateUser(c echo.Context) error {
	var req validation.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "Invalid request body", nil)
	}

	input, errs := validation.ValidateCreateUser(&req)
	if errs != nil {
		return response.ValidationFailed(c, errs)
	}

	user, err := h.userService.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, user, "User created successfully")
}

// GetUser handles getting user details by ID
func (h *UserHandlers) GetUser(c echo.Context) error {
	id, errs := validation.ValidateUserID(c.Param("id"))
	if errs != nil {
		return response.ValidationFailed(c, errs)
	}

	user, err := h.userService.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if user == nil {
		return response.NotFound(c, "User not found")
	}

	return response.Success(c, http.StatusOK, user, "")
}

// ListUsers handles getting a paginated list of users
func (h *UserHandlers) ListUsers(c echo.Context) error {
	query, errs := validation.ValidateListQuery(c.QueryParam("page"), c.QueryParam("limit"))
	if errs != nil {
		return response.ValidationFailed(c, errs)
	}

	skip := (query.Page - 1) * query.Limit
	users, total, err := h.userService.List(c.Request().Context(), skip, query.Limit)
	if err != nil {
		return err
	}

	totalPages := (total + int64(query.Limit) - 1) / int64(query.Limit)

	return response.Success(c, http.StatusOK, map[string]any{
		"users": users,
		"pagination": map[string]any{
			"page":        query.Page,
			"limit":       query.Limit,
			"total":       total,
			"total_pages": totalPages,
		},
	}, "")
}

// UpdateUser handles partial updates of user details
func (h *UserHandlers) UpdateUser(c echo.Context) error {
	id, errs := validation.ValidateUserID(c.Param("id"))
	if errs != nil {
		return response.ValidationFailed(c, errs)
	}

	var req validation.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "Invalid request body", nil)
	}

	input, errs := validation.ValidateUpdateUser(&req)
	if errs != nil {
		return response.ValidationFailed(c, errs)
	}

	user, err := h.userService.Update(c.Request().Context(), id, input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, user, "User updated successfully")
}

// DeleteUser handles deleting a user
func (h *UserHandlers) DeleteUser(c echo.Context) error {
	id, errs := validation.ValidateUserID(c.Param("id"))
	if errs != nil {
		return response.ValidationFailed(c, errs)
	}

	if err := h.userService.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "User deleted successfully")
}

// ToggleUserStatus flips is_active and reports the resulting state.
func (h *UserHandlers) ToggleUserStatus(c echo.Context) error {
	id, errs := validation.ValidateUserID(c.Param("id"))
	if errs != nil {
		return response.ValidationFailed(c, errs)
	}

	user, err := h.userService.ToggleStatus(c.Request().Context(), id)
	if err != nil {
		return err
	}

	message := "User deactivated successfully"
	if user.IsActive {
		message = "User activated successfully"
	}

	return response.Success(c, http.StatusOK, user, message)
}
