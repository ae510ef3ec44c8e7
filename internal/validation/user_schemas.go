package validation

import (
	"regexp"
	"strconv"

	"userbase/internal/models"

	"github.com/google/uuid"
)

var (
	emailRe     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	upperRe     = regexp.MustCompile(`[A-Z]`)
	lowerRe     = regexp.MustCompile(`[a-z]`)
	digitRe     = regexp.MustCompile(`[0-9]`)
	allowedRole = []string{models.RoleUser, models.RoleAdmin}
)

func emailRules() []StringRule {
	return []StringRule{
		Trim(),
		Lower(),
		Matches(emailRe, "Invalid email format"),
	}
}

func passwordRules() []StringRule {
	return []StringRule{
		MinLen(8, "Password must be at least 8 characters long"),
		Matches(upperRe, "Password must contain at least one uppercase letter"),
		Matches(lowerRe, "Password must contain at least one lowercase letter"),
		Matches(digitRe, "Password must contain at least one number"),
	}
}

func nameRules(emptyMessage, maxMessage string) []StringRule {
	return []StringRule{
		Trim(),
		NonEmpty(emptyMessage),
		MaxLen(100, maxMessage),
	}
}

// CreateUserRequest is the raw create payload. Pointer fields distinguish
// absent fields from empty ones.
type CreateUserRequest struct {
	Email     *string `json:"email"`
	Password  *string `json:"password"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Role      *string `json:"role"`
}

// CreateUserInput is a validated, normalized create payload.
type CreateUserInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string
}

func ValidateCreateUser(req *CreateUserRequest) (*CreateUserInput, Errors) {
	errs := Errors{}
	input := &CreateUserInput{Role: models.RoleUser}

	if req.Email == nil {
		errs.Add("email", "Email is required")
	} else {
		input.Email = Apply("email", *req.Email, errs, emailRules()...)
	}

	if req.Password == nil {
		errs.Add("password", "Password is required")
	} else {
		input.Password = Apply("password", *req.Password, errs, passwordRules()...)
	}

	if req.FirstName == nil {
		errs.Add("first_name", "First name is required")
	} else {
		input.FirstName = Apply("first_name", *req.FirstName, errs,
			nameRules("First name is required", "First name must not exceed 100 characters")...)
	}

	if req.LastName == nil {
		errs.Add("last_name", "Last name is required")
	} else {
		input.LastName = Apply("last_name", *req.LastName, errs,
			nameRules("Last name is required", "Last name must not exceed 100 characters")...)
	}

	if req.Role != nil {
		input.Role = Apply("role", *req.Role, errs,
			OneOf(allowedRole, "Role must be either 'user' or 'admin'"))
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return input, nil
}

// UpdateUserRequest is the raw update payload; every field is optional.
type UpdateUserRequest struct {
	Email     *string `json:"email"`
	Password  *string `json:"password"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Role      *string `json:"role"`
	IsActive  *bool   `json:"is_active"`
}

// UpdateUserInput carries only the fields that were supplied, validated and
// normalized.
type UpdateUserInput struct {
	Email     *string
	Password  *string
	FirstName *string
	LastName  *string
	Role      *string
	IsActive  *bool
}

func ValidateUpdateUser(req *UpdateUserRequest) (*UpdateUserInput, Errors) {
	errs := Errors{}
	input := &UpdateUserInput{IsActive: req.IsActive}

	if req.Email != nil {
		email := Apply("email", *req.Email, errs, emailRules()...)
		input.Email = &email
	}
	if req.Password != nil {
		password := Apply("password", *req.Password, errs, passwordRules()...)
		input.Password = &password
	}
	if req.FirstName != nil {
		firstName := Apply("first_name", *req.FirstName, errs,
			nameRules("First name cannot be empty", "First name must not exceed 100 characters")...)
		input.FirstName = &firstName
	}
	if req.LastName != nil {
		lastName := Apply("last_name", *req.LastName, errs,
			nameRules("Last name cannot be empty", "Last name must not exceed 100 characters")...)
		input.LastName = &lastName
	}
	if req.Role != nil {
		role := Apply("role", *req.Role, errs,
			OneOf(allowedRole, "Role must be either 'user' or 'admin'"))
		input.Role = &role
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return input, nil
}

// ListQuery is the validated pagination query.
type ListQuery struct {
	Page  int
	Limit int
}

// ValidateListQuery parses the page/limit query strings, applying defaults
// of 1 and 10 and bounding limit to 100.
func ValidateListQuery(page, limit string) (*ListQuery, Errors) {
	errs := Errors{}
	query := &ListQuery{}

	if page == "" {
		page = "1"
	}
	if limit == "" {
		limit = "10"
	}

	pageNum, err := strconv.Atoi(page)
	switch {
	case err != nil:
		errs.Add("page", "Page must be a number")
	case pageNum < 1:
		errs.Add("page", "Page must be at least 1")
	default:
		query.Page = pageNum
	}

	limitNum, err := strconv.Atoi(limit)
	switch {
	case err != nil:
		errs.Add("limit", "Limit must be a number")
	case limitNum < 1:
		errs.Add("limit", "Limit must be at least 1")
	case limitNum > 100:
		errs.Add("limit", "Limit cannot exceed 100")
	default:
		query.Limit = limitNum
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return query, nil
}

// ValidateUserID checks the id path parameter for UUID syntax.
func ValidateUserID(raw string) (uuid.UUID, Errors) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, Errors{"id": {"Invalid user ID format"}}
	}
	return id, nil
}
