package handlers

import (
	"errors"

	"fridgesmart/domain"
	"fridgesmart/internal/api/presenters"
	"fridgesmart/pkg/analysis"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ScanHandler interface {
		ScanImage(c *fiber.Ctx) error
		GetScanResult(c *fiber.Ctx) error
	}

	scanHandler struct {
		analysisService analysis.AnalysisService
		validator       *validator.Validate
	}
)

func NewScanHandler(analysisService analysis.AnalysisService, validator *validator.Validate) ScanHandler {
	return &scanHandler{
		analysisService: analysisService,
		validator:       validator,
	}
}

func (h *scanHandler) ScanImage(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.ScanImageRequest)

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Image = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedScanImage, err)
	}

	res, err := h.analysisService.ScanImage(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrAnalysisFailed) {
			// The whole scan fails as one unit; the client retries from
			// the camera, never from a partial result.
			return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedScanImage, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedScanImage, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessScanImage)
}

func (h *scanHandler) GetScanResult(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	scanID := c.Params("id")

	res, err := h.analysisService.GetScanResult(c.Context(), scanID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrScanNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetScanResult, err)
		}
		if errors.Is(err, domain.ErrUnauthorizedAccess) {
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedGetScanResult, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetScanResult, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetScanResult)
}
