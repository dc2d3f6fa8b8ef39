// auth.go
//
// Farm record keeping and crop prediction data service for Gaine Africa
// Copyright (c) 2026 Gaine Africa
//
// This file is part of farmrecords.
// farmrecords is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// farmrecords is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with farmrecords.
// If not, see <https://www.gnu.org/licenses/>.

package handlers

import (
	"github.com/gaineafrica/farmrecords/internal/services"
	"github.com/gaineafrica/farmrecords/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AuthHandler handles registration and login routes
type AuthHandler struct {
	DB     *gorm.DB
	Tokens *services.TokenService
}

type loginRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// Register handles POST /api/register
// @Summary Register a new farmer
// @Description Create a user account with the full farm profile
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.RegisterInput true "Registration payload"
// @Success 201 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in services.RegisterInput
	if err := parseBody(c, &in, "users.validation.input"); err != nil {
		return utils.ErrorResponse(c, err.Message, err.Code, err.Type)
	}

	user, err := services.RegisterUser(h.DB, in)
	if err != nil {
		return utils.CustomErrorResponse(c, err, "register")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"id":      user.UserID,
	})
}

// Login handles POST /api/login
// @Summary Authenticate and obtain a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body loginRequest true "Credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in loginRequest
	if err := parseBody(c, &in, "auth.validation.input"); err != nil {
		return utils.ErrorResponse(c, err.Message, err.Code, err.Type)
	}

	if in.Email == nil || *in.Email == "" || in.Password == nil || *in.Password == "" {
		return utils.ErrorResponse(c, "Email and password are required", fiber.StatusBadRequest, "auth.validation.input")
	}

	user, err := services.AuthenticateUser(h.DB, *in.Email, *in.Password)
	if err != nil {
		return utils.CustomErrorResponse(c, err, "login")
	}

	token, err := h.Tokens.Issue(user.UserID)
	if err != nil {
		return utils.ErrorResponse(c, "Failed to issue token", fiber.StatusInternalServerError, "auth.token.issue")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"access_token": token,
		"user": fiber.Map{
			"id":    user.UserID,
			"name":  user.Name,
			"email": user.Email,
		},
	})
}

// Logout handles POST /api/logout. Tokens are stateless; expiry is the only
// invalidation mechanism, so this only acknowledges.
// @Summary Log out
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.MessageResponseStruct
// @Router /logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return utils.MessageResponse(c, fiber.StatusOK, "Logout successful")
}
