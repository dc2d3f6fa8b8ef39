package handlers

import (
	"github.com/gaineafrica/farmrecords/internal/services"
	"github.com/gaineafrica/farmrecords/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PredictionHandler handles crop prediction routes
type PredictionHandler struct {
	DB *gorm.DB
}

// ListPredictions handles GET /api/predictions
// @Summary List stored crop predictions
// @Tags Predictions
// @Produce json
// @Success 200 {array} models.Prediction
// @Router /predictions [get]
func (h *PredictionHandler) ListPredictions(c *fiber.Ctx) error {
	predictions, err := services.ListPredictions(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, "Internal server error", fiber.StatusInternalServerError, "listPredictions")
	}
	return c.Status(fiber.StatusOK).JSON(predictions)
}

// CreatePrediction handles POST /api/predictions
// @Summary Store an upstream-generated crop prediction
// @Tags Predictions
// @Accept json
// @Produce json
// @Param body body services.PredictionInput true "Prediction fields"
// @Success 201 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /predictions [post]
func (h *PredictionHandler) CreatePrediction(c *fiber.Ctx) error {
	var in services.PredictionInput
	if perr := parseBody(c, &in, "predictions.validation.input"); perr != nil {
		return utils.ErrorResponse(c, perr.Message, perr.Code, perr.Type)
	}

	if _, err := services.CreatePrediction(h.DB, in); err != nil {
		return utils.CustomErrorResponse(c, err, "createPrediction")
	}

	return utils.MessageResponse(c, fiber.StatusCreated, "Prediction added successfully")
}
