// common.go
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
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gaineafrica/farmrecords/internal/middleware"
	"github.com/gaineafrica/farmrecords/internal/types"
	"github.com/gofiber/fiber/v2"
)

// getCallerID extracts the verified caller identity from context
// (set by the auth middleware).
func getCallerID(c *fiber.Ctx) (string, error) {
	caller := c.Locals(middleware.CallerIDKey)
	if caller == nil {
		return "", fmt.Errorf("caller identity not found in context")
	}

	callerID, ok := caller.(string)
	if !ok || callerID == "" {
		return "", fmt.Errorf("invalid caller identity in context")
	}

	return callerID, nil
}

// parseBody decodes a JSON body into target, rejecting unknown keys.
// Entity updates are allow-listed; a body naming any other field fails
// before validation rather than being silently ignored.
func parseBody(c *fiber.Ctx, target interface{}, errorType string) *types.CustomError {
	dec := json.NewDecoder(bytes.NewReader(c.Body()))
	dec.DisallowUnknownFields()

	if err := dec.Decode(target); err != nil {
		msg := "Invalid input"
		switch {
		case strings.Contains(err.Error(), "unknown field"):
			msg = "Unknown field in request body"
		case strings.Contains(err.Error(), "FlexFloat64"),
			strings.Contains(err.Error(), "FlexUint64"):
			msg = "Invalid number format"
		}
		return types.NewValidationError(msg, errorType)
	}

	return nil
}
