package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"userbase/internal/common"
	"userbase/internal/middleware"
	"userbase/internal/models"
	"userbase/internal/validation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Create(ctx context.Context, input *validation.CreateUserInput) (*models.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) List(ctx context.Context, skip, take int) ([]*models.User, int64, error) {
	args := m.Called(ctx, skip, take)
	return args.Get(0).([]*models.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserService) Update(ctx context.Context, id uuid.UUID, input *validation.UpdateUserInput) (*models.User, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserService) ToggleStatus(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// newTestServer wires the handlers into a real echo instance with the
// production error boundary so routing and status mapping are exercised.
func newTestServer(svc *MockUserService) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler("test")

	h := NewUserHandlers(svc)
	api := e.Group("/api")
	api.GET("/users", h.ListUsers)
	api.POST("/users", h.CreateUser)
	api.GET("/users/:id", h.GetUser)
	api.PUT("/users/:id", h.UpdateUser)
	api.DELETE("/users/:id", h.DeleteUser)
	api.PATCH("/users/:id/toggle-status", h.ToggleUserStatus)
	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func sampleUser(id uuid.UUID) *models.User {
	now := time.Now().UTC()
	return &models.User{
		ID:           id,
		Email:        "a@b.com",
		PasswordHash: "$2a$10$secret",
		FirstName:    "A",
		LastName:     "B",
		Role:         models.RoleUser,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestCreateUser_Success(t *testing.T) {
	svc := &MockUserService{}
	id := uuid.New()
	svc.On("Create", mock.Anything, mock.AnythingOfType("*validation.CreateUserInput")).
		Return(sampleUser(id), nil).
		Run(func(args mock.Arguments) {
			input := args.Get(1).(*validation.CreateUserInput)
			assert.Equal(t, "a@b.com", input.Email, "email is lowercased before the service sees it")
			assert.Equal(t, models.RoleUser, input.Role)
		})

	rec := doJSON(newTestServer(svc), http.MethodPost, "/api/users",
		`{"email":"A@B.com","password":"Abcdef12","first_name":"A","last_name":"B"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "User created successfully", body["message"])

	data := body["data"].(map[string]any)
	assert.Equal(t, "a@b.com", data["email"])
	assert.Equal(t, "user", data["role"])
	assert.NotContains(t, data, "password")
	assert.NotContains(t, rec.Body.String(), "secret", "hash never leaves the server")
	svc.AssertExpectations(t)
}

func TestCreateUser_ValidationFailure(t *testing.T) {
	svc := &MockUserService{}

	rec := doJSON(newTestServer(svc), http.MethodPost, "/api/users",
		`{"email":"bad","password":"short"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Validation failed", body["error"])

	fieldErrors := body["errors"].(map[string]any)
	assert.Contains(t, fieldErrors, "email")
	assert.Contains(t, fieldErrors, "password")
	assert.Contains(t, fieldErrors, "first_name")
	assert.Contains(t, fieldErrors, "last_name")
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	svc := &MockUserService{}
	svc.On("Create", mock.Anything, mock.Anything).
		Return(nil, common.Conflict("User with this email already exists"))

	rec := doJSON(newTestServer(svc), http.MethodPost, "/api/users",
		`{"email":"a@b.com","password":"Abcdef12","first_name":"A","last_name":"B"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "User with this email already exists", body["error"])
}

func TestGetUser_Success(t *testing.T) {
	svc := &MockUserService{}
	id := uuid.New()
	svc.On("GetByID", mock.Anything, id).Return(sampleUser(id), nil)

	rec := doJSON(newTestServer(svc), http.MethodGet, "/api/users/"+id.String(), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]any)
	assert.Equal(t, id.String(), data["id"])
	assert.NotContains(t, data, "password")
}

func TestGetUser_NotFound(t *testing.T) {
	svc := &MockUserService{}
	id := uuid.New()
	svc.On("GetByID", mock.Anything, id).Return(nil, nil)

	rec := doJSON(newTestServer(svc), http.MethodGet, "/api/users/"+id.String(), "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", decodeBody(t, rec)["error"])
}

func TestGetUser_MalformedID(t *testing.T) {
	svc := &MockUserService{}

	rec := doJSON(newTestServer(svc), http.MethodGet, "/api/users/not-a-uuid", "")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	fieldErrors := decodeBody(t, rec)["errors"].(map[string]any)
	assert.Contains(t, fieldErrors, "id")
	svc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestListUsers_PaginationMath(t *testing.T) {
	svc := &MockUserService{}
	page := make([]*models.User, 5)
	for i := range page {
		page[i] = sampleUser(uuid.New())
	}
	// 12 users, page 2 of limit 5 -> skip 5, 3 total pages.
	svc.On("List", mock.Anything, 5, 5).Return(page, int64(12), nil)

	rec := doJSON(newTestServer(svc), http.MethodGet, "/api/users?page=2&limit=5", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]any)
	assert.Len(t, data["users"], 5)

	pagination := data["pagination"].(map[string]any)
	assert.Equal(t, float64(2), pagination["page"])
	assert.Equal(t, float64(5), pagination["limit"])
	assert.Equal(t, float64(12), pagination["total"])
	assert.Equal(t, float64(3), pagination["total_pages"])
	svc.AssertExpectations(t)
}

func TestListUsers_BadQuery(t *testing.T) {
	svc := &MockUserService{}

	rec := doJSON(newTestServer(svc), http.MethodGet, "/api/users?page=zero&limit=500", "")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	fieldErrors := decodeBody(t, rec)["errors"].(map[string]any)
	assert.Contains(t, fieldErrors, "page")
	assert.Contains(t, fieldErrors, "limit")
	svc.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateUser_Success(t *testing.T) {
	svc := &MockUserService{}
	id := uuid.New()
	updated := sampleUser(id)
	updated.FirstName = "Ada"
	svc.On("Update", mock.Anything, id, mock.AnythingOfType("*validation.UpdateUserInput")).
		Return(updated, nil).
		Run(func(args mock.Arguments) {
			input := args.Get(2).(*validation.UpdateUserInput)
			require.NotNil(t, input.FirstName)
			assert.Equal(t, "Ada", *input.FirstName)
			assert.Nil(t, input.Password)
		})

	rec := doJSON(newTestServer(svc), http.MethodPut, "/api/users/"+id.String(),
		`{"first_name":"Ada"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "User updated successfully", body["message"])
	svc.AssertExpectations(t)
}

func TestUpdateUser_NotFound(t *testing.T) {
	svc := &MockUserService{}
	id := uuid.New()
	svc.On("Update", mock.Anything, id, mock.Anything).
		Return(nil, common.NotFound("User not found"))

	rec := doJSON(newTestServer(svc), http.MethodPut, "/api/users/"+id.String(),
		`{"first_name":"Ada"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", decodeBody(t, rec)["error"])
}

func TestDeleteUser_Success(t *testing.T) {
	svc := &MockUserService{}
	id := uuid.New()
	svc.On("Delete", mock.Anything, id).Return(nil)

	rec := doJSON(newTestServer(svc), http.MethodDelete, "/api/users/"+id.String(), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "User deleted successfully", body["message"])
	value, present := body["data"]
	assert.True(t, present, "data is present and null")
	assert.Nil(t, value)
}

func TestDeleteUser_RepeatedDeleteIsNotFound(t *testing.T) {
	svc := &MockUserService{}
	id := uuid.New()
	svc.On("Delete", mock.Anything, id).Return(common.NotFound("User not found"))

	rec := doJSON(newTestServer(svc), http.MethodDelete, "/api/users/"+id.String(), "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestToggleUserStatus_Messages(t *testing.T) {
	svc := &MockUserService{}
	id := uuid.New()

	deactivated := sampleUser(id)
	deactivated.IsActive = false
	activated := sampleUser(id)
	activated.IsActive = true

	svc.On("ToggleStatus", mock.Anything, id).Return(deactivated, nil).Once()
	svc.On("ToggleStatus", mock.Anything, id).Return(activated, nil).Once()

	e := newTestServer(svc)

	rec := doJSON(e, http.MethodPatch, "/api/users/"+id.String()+"/toggle-status", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "User deactivated successfully", body["message"])
	assert.Equal(t, false, body["data"].(map[string]any)["is_active"])

	rec = doJSON(e, http.MethodPatch, "/api/users/"+id.String()+"/toggle-status", "")
	body = decodeBody(t, rec)
	assert.Equal(t, "User activated successfully", body["message"])
	assert.Equal(t, true, body["data"].(map[string]any)["is_active"])
	svc.AssertExpectations(t)
}

// The toggle-status route must stay reachable alongside the plain id routes.
func TestToggleStatusRouteNotShadowed(t *testing.T) {
	svc := &MockUserService{}
	id := uuid.New()
	svc.On("ToggleStatus", mock.Anything, id).Return(sampleUser(id), nil)

	rec := doJSON(newTestServer(svc), http.MethodPatch, "/api/users/"+id.String()+"/toggle-status", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertCalled(t, "ToggleStatus", mock.Anything, id)
	svc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUnknownRoute(t *testing.T) {
	svc := &MockUserService{}

	rec := doJSON(newTestServer(svc), http.MethodGet, "/api/unknown", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", decodeBody(t, rec)["error"])
}
