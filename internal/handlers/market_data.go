package handlers

import (
	"github.com/gaineafrica/farmrecords/internal/services"
	"github.com/gaineafrica/farmrecords/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// MarketDataHandler handles crop market price routes
type MarketDataHandler struct {
	DB *gorm.DB
}

// ListMarketData handles GET /api/market-data
// @Summary List observed crop market prices
// @Tags MarketData
// @Produce json
// @Success 200 {array} models.MarketData
// @Router /market-data [get]
func (h *MarketDataHandler) ListMarketData(c *fiber.Ctx) error {
	entries, err := services.ListMarketData(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, "Internal server error", fiber.StatusInternalServerError, "listMarketData")
	}
	return c.Status(fiber.StatusOK).JSON(entries)
}

// CreateMarketData handles POST /api/market-data
// @Summary Store one crop market price observation
// @Tags MarketData
// @Accept json
// @Produce json
// @Param body body services.MarketDataInput true "Market data fields"
// @Success 201 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /market-data [post]
func (h *MarketDataHandler) CreateMarketData(c *fiber.Ctx) error {
	var in services.MarketDataInput
	if perr := parseBody(c, &in, "market.validation.input"); perr != nil {
		return utils.ErrorResponse(c, perr.Message, perr.Code, perr.Type)
	}

	if _, err := services.CreateMarketData(h.DB, in); err != nil {
		return utils.CustomErrorResponse(c, err, "createMarketData")
	}

	return utils.MessageResponse(c, fiber.StatusCreated, "Market data added successfully")
}
