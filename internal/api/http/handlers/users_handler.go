package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/manyabajaj09/audience-assist/internal/api/dto"
	"github.com/manyabajaj09/audience-assist/internal/domain"
	"github.com/manyabajaj09/audience-assist/internal/service"
	apperrors "github.com/manyabajaj09/audience-assist/pkg/util"
)

// UsersHandler manages the agent directory endpoints.
type UsersHandler struct {
	service *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{service: userService}
}

// Create POST /api/users.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	user, err := h.service.CreateUser(c.UserContext(), service.UserCreateInput{
		Name:  req.Name,
		Email: req.Email,
		Role:  domain.UserRole(req.Role),
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}

// List GET /api/users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.service.ListUsers(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		items = append(items, dto.NewUserResponse(&users[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}
