package handlers

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-board-service/internal/api/dto"
	"github.com/spec-kit/job-board-service/internal/auth"
	"github.com/spec-kit/job-board-service/internal/config"
	"github.com/spec-kit/job-board-service/internal/service"
	apperrors "github.com/spec-kit/job-board-service/pkg/util"
)

// UsersHandler exposes account endpoints.
type UsersHandler struct {
	users *service.UserService
	app   config.AppConfig
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService, appCfg config.AppConfig) *UsersHandler {
	return &UsersHandler{users: userService, app: appCfg}
}

// Signup handles POST /users/signup.
func (h *UsersHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.FullName == "" || req.Email == "" || req.Password == "" || req.Role == "" {
		return apperrors.NewValidationError("full_name, email, password, role required", nil)
	}

	user, verificationToken, err := h.users.Signup(c.UserContext(), service.SignupInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}

	object := fiber.Map{"user": dto.NewUserResponse(user)}
	if h.app.Env == "development" {
		object["verification_token"] = verificationToken
		object["verification_url"] = fmt.Sprintf("%s/api/v1/users/verify-email?token=%s", h.app.PublicBaseURL, verificationToken)
	}
	return c.Status(http.StatusCreated).JSON(dto.OK(
		"User created successfully. Please verify your email using the link sent.", object))
}

// Login handles POST /users/login.
func (h *UsersHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}

	user, token, exp, err := h.users.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("Login successful", dto.AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   exp,
		User:        dto.NewUserResponse(user),
	}))
}

// VerifyEmail handles GET /users/verify-email?token=...
func (h *UsersHandler) VerifyEmail(c *fiber.Ctx) error {
	token := c.Query("token")
	if token == "" {
		return apperrors.NewValidationError("token required", nil)
	}
	user, err := h.users.VerifyEmail(c.UserContext(), token)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("Email verified successfully", dto.NewUserResponse(user)))
}

// Me handles GET /users/me.
func (h *UsersHandler) Me(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewAuthenticationError("authentication required")
	}
	return c.JSON(dto.OK("User retrieved successfully", dto.NewUserResponse(principal.User)))
}

// Update handles PUT /users/me.
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewAuthenticationError("authentication required")
	}
	var req dto.UserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	user, err := h.users.Update(c.UserContext(), principal.ID(), service.UserUpdateInput{
		FullName: req.FullName,
		Email:    req.Email,
		IsActive: req.IsActive,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("User updated successfully", dto.NewUserResponse(user)))
}

// ChangePassword handles POST /users/change-password.
func (h *UsersHandler) ChangePassword(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewAuthenticationError("authentication required")
	}
	var req dto.PasswordChangeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return apperrors.NewValidationError("current_password and new_password required", nil)
	}

	if err := h.users.ChangePassword(c.UserContext(), principal.ID(), req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(dto.OK("Password changed successfully", nil))
}
