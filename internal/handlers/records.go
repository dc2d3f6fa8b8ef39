// records.go
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
	"strconv"

	"github.com/gaineafrica/farmrecords/internal/services"
	"github.com/gaineafrica/farmrecords/internal/types"
	"github.com/gaineafrica/farmrecords/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RecordHandler handles owner-scoped farming record routes
type RecordHandler struct {
	DB *gorm.DB
}

// authorizeOwner is the gate in front of every record operation: the verified
// caller identity must exactly equal the path-declared owner id. The path id
// is only used for this match, never as the acting identity. On mismatch a
// fixed 403 is returned with nothing touched and nothing disclosed about the
// target; record existence is checked afterwards via the (record, owner)
// pair, which reads as 404 for foreign records.
func (h *RecordHandler) authorizeOwner(c *fiber.Ctx) (string, *types.CustomError) {
	callerID, err := getCallerID(c)
	if err != nil {
		return "", types.NewAuthError(err.Error(), "records.authorization")
	}

	if callerID != c.Params("id") {
		return "", types.NewForbiddenError("Access denied", "records.authorization.owner")
	}

	return callerID, nil
}

// parseRecordID reads the :rid path parameter. Unparseable ids read the same
// as absent records.
func parseRecordID(c *fiber.Ctx) (uint64, bool) {
	rid, err := strconv.ParseUint(c.Params("rid"), 10, 64)
	if err != nil {
		return 0, false
	}
	return rid, true
}

// ListRecords handles GET /api/users/:id/records
// @Summary List farming records
// @Description All records owned by the authenticated user, with computed profit_or_loss
// @Tags Records
// @Produce json
// @Param id path string true "Owner ID"
// @Success 200 {array} services.RecordOutput
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /users/{id}/records [get]
func (h *RecordHandler) ListRecords(c *fiber.Ctx) error {
	ownerID, authErr := h.authorizeOwner(c)
	if authErr != nil {
		return utils.ErrorResponse(c, authErr.Message, authErr.Code, authErr.Type)
	}

	records, err := services.ListRecords(h.DB, ownerID)
	if err != nil {
		return utils.ErrorResponse(c, "Internal server error", fiber.StatusInternalServerError, "listRecords")
	}

	return c.Status(fiber.StatusOK).JSON(records)
}

// CreateRecord handles POST /api/users/:id/records
// @Summary Create a farming record
// @Tags Records
// @Accept json
// @Produce json
// @Param id path string true "Owner ID"
// @Param body body services.RecordInput true "Record fields, all required"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /users/{id}/records [post]
func (h *RecordHandler) CreateRecord(c *fiber.Ctx) error {
	ownerID, authErr := h.authorizeOwner(c)
	if authErr != nil {
		return utils.ErrorResponse(c, authErr.Message, authErr.Code, authErr.Type)
	}

	var in services.RecordInput
	if perr := parseBody(c, &in, "records.validation.input"); perr != nil {
		return utils.ErrorResponse(c, perr.Message, perr.Code, perr.Type)
	}

	record, err := services.CreateRecord(h.DB, ownerID, in)
	if err != nil {
		return utils.CustomErrorResponse(c, err, "createRecord")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Record created successfully",
		"record":  record,
	})
}

// GetRecord handles GET /api/users/:id/records/:rid
// @Summary Get one farming record
// @Tags Records
// @Produce json
// @Param id path string true "Owner ID"
// @Param rid path int true "Record ID"
// @Success 200 {object} services.RecordOutput
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /users/{id}/records/{rid} [get]
func (h *RecordHandler) GetRecord(c *fiber.Ctx) error {
	ownerID, authErr := h.authorizeOwner(c)
	if authErr != nil {
		return utils.ErrorResponse(c, authErr.Message, authErr.Code, authErr.Type)
	}

	rid, ok := parseRecordID(c)
	if !ok {
		return utils.NotFoundResponse(c, "Record not found", "records.notfound")
	}

	record, err := services.GetRecord(h.DB, ownerID, rid)
	if err != nil {
		return utils.CustomErrorResponse(c, err, "getRecord")
	}

	return c.Status(fiber.StatusOK).JSON(record)
}

// UpdateRecord handles PUT /api/users/:id/records/:rid
// @Summary Update a farming record
// @Description Partial update; only fields present in the body are overwritten
// @Tags Records
// @Accept json
// @Produce json
// @Param id path string true "Owner ID"
// @Param rid path int true "Record ID"
// @Param body body services.RecordInput true "Field subset"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /users/{id}/records/{rid} [put]
func (h *RecordHandler) UpdateRecord(c *fiber.Ctx) error {
	ownerID, authErr := h.authorizeOwner(c)
	if authErr != nil {
		return utils.ErrorResponse(c, authErr.Message, authErr.Code, authErr.Type)
	}

	rid, ok := parseRecordID(c)
	if !ok {
		return utils.NotFoundResponse(c, "Record not found", "records.notfound")
	}

	var in services.RecordInput
	if perr := parseBody(c, &in, "records.validation.input"); perr != nil {
		return utils.ErrorResponse(c, perr.Message, perr.Code, perr.Type)
	}

	record, err := services.UpdateRecord(h.DB, ownerID, rid, in)
	if err != nil {
		return utils.CustomErrorResponse(c, err, "updateRecord")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Record updated successfully",
		"record":  record,
	})
}

// DeleteRecord handles DELETE /api/users/:id/records/:rid
// @Summary Delete a farming record
// @Description Permanent, non-recoverable removal
// @Tags Records
// @Produce json
// @Param id path string true "Owner ID"
// @Param rid path int true "Record ID"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /users/{id}/records/{rid} [delete]
func (h *RecordHandler) DeleteRecord(c *fiber.Ctx) error {
	ownerID, authErr := h.authorizeOwner(c)
	if authErr != nil {
		return utils.ErrorResponse(c, authErr.Message, authErr.Code, authErr.Type)
	}

	rid, ok := parseRecordID(c)
	if !ok {
		return utils.NotFoundResponse(c, "Record not found", "records.notfound")
	}

	if err := services.DeleteRecord(h.DB, ownerID, rid); err != nil {
		return utils.CustomErrorResponse(c, err, "deleteRecord")
	}

	return utils.MessageResponse(c, fiber.StatusOK, "Record deleted successfully")
}
