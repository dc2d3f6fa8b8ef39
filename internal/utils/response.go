// response.go
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

package utils

import (
	"errors"
	"time"

	"github.com/gaineafrica/farmrecords/internal/types"
	"github.com/gofiber/fiber/v2"
)

// ErrorResponse sends a standard error envelope
func ErrorResponse(c *fiber.Ctx, message string, status int, errorType string) error {
	return c.Status(status).JSON(fiber.Map{
		"status":    status,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}

// CustomErrorResponse renders a *types.CustomError with the standard envelope.
// Any other error becomes a 500 with the given fallback type.
func CustomErrorResponse(c *fiber.Ctx, err error, fallbackType string) error {
	var ce *types.CustomError
	if errors.As(err, &ce) {
		return ErrorResponse(c, ce.Message, ce.Code, ce.Type)
	}
	return ErrorResponse(c, "Internal server error", fiber.StatusInternalServerError, fallbackType)
}

// NotFoundResponse sends a 404 not found response
func NotFoundResponse(c *fiber.Ctx, message, errorType string) error {
	return ErrorResponse(c, message, fiber.StatusNotFound, errorType)
}

// MessageResponse sends a mutation acknowledgement with the given status
func MessageResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"message": message,
	})
}

// ErrorResponseStruct defines the schema for error responses
type ErrorResponseStruct struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	Ok        bool   `json:"ok"`
	Timestamp string `json:"timestamp"`
	URL       string `json:"url"`
	Type      string `json:"type,omitempty"`
}

// MessageResponseStruct defines the schema for mutation acknowledgements
type MessageResponseStruct struct {
	Message string `json:"message"`
}
