package handlers

import (
	"github.com/gaineafrica/farmrecords/internal/services"
	"github.com/gaineafrica/farmrecords/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UserHandler handles user profile routes
type UserHandler struct {
	DB *gorm.DB
}

// ListUsers handles GET /api/users
// @Summary List users
// @Description Public listing of user ids and names
// @Tags Users
// @Produce json
// @Success 200 {array} services.UserSummary
// @Router /users [get]
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := services.ListUsers(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, "Internal server error", fiber.StatusInternalServerError, "listUsers")
	}
	return c.Status(fiber.StatusOK).JSON(users)
}

// GetUser handles GET /api/users/:id
// @Summary Get a user
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	user, err := services.GetUser(h.DB, c.Params("id"))
	if err != nil {
		return utils.CustomErrorResponse(c, err, "getUser")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"id":    user.UserID,
		"name":  user.Name,
		"email": user.Email,
	})
}

// UpdateUser handles PUT /api/users/:id. Only the authenticated owner may
// update their profile, and only name and email are updatable.
// @Summary Update a user profile
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param body body services.UpdateUserInput true "Profile subset"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	callerID, err := getCallerID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized, "users.authorization")
	}

	if callerID != c.Params("id") {
		return utils.ErrorResponse(c, "Access denied", fiber.StatusForbidden, "users.authorization.owner")
	}

	var in services.UpdateUserInput
	if perr := parseBody(c, &in, "users.validation.input"); perr != nil {
		return utils.ErrorResponse(c, perr.Message, perr.Code, perr.Type)
	}

	if _, err := services.UpdateUser(h.DB, callerID, in); err != nil {
		return utils.CustomErrorResponse(c, err, "updateUser")
	}

	return utils.MessageResponse(c, fiber.StatusOK, "User updated successfully")
}
