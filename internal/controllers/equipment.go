package controllers

import (
	"fmt"
	"net/http"

	"calibration-system/internal/dto"
	"calibration-system/internal/services"
	apperrors "calibration-system/pkg/errors"
	"calibration-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type EquipmentController struct {
	equipmentService services.EquipmentServiceInterface
	logger           *zap.Logger
}

func NewEquipmentController(equipmentService services.EquipmentServiceInterface, logger *zap.Logger) *EquipmentController {
	return &EquipmentController{
		equipmentService: equipmentService,
		logger:           logger,
	}
}

func (c *EquipmentController) CreateEquipment(ctx echo.Context) error {
	var payload dto.CreateEquipmentDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("CreateEquipment: failed to bind request body", zap.Error(err))
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil),
			c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.equipmentService.CreateEquipment(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "equipment registered", http.StatusCreated)
}

func (c *EquipmentController) GetEquipment(ctx echo.Context) error {
	serial := ctx.Param("serial_number")
	res, err := c.equipmentService.GetEquipmentBySerial(ctx.Request().Context(), serial)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "equipment found", http.StatusOK)
}

func (c *EquipmentController) ListEquipment(ctx echo.Context) error {
	status := ctx.Param("status")
	res, err := c.equipmentService.ListEquipmentByStatus(ctx.Request().Context(), status)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "equipment list", http.StatusOK)
}

func (c *EquipmentController) CalibrateEquipment(ctx echo.Context) error {
	serial := ctx.Param("serial_number")

	var payload dto.CalibrationUpdateDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("CalibrateEquipment: failed to bind request body",
			zap.String("serial_number", serial), zap.Error(err))
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil),
			c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.equipmentService.CalibrateEquipment(ctx.Request().Context(), serial, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "calibration recorded", http.StatusOK)
}

func (c *EquipmentController) DeliverEquipment(ctx echo.Context) error {
	var payload dto.DeliveryUpdateDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("DeliverEquipment: failed to bind request body", zap.Error(err))
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil),
			c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.equipmentService.DeliverEquipment(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	message := fmt.Sprintf("%d equipment delivered", res.Attempted)
	return utils.SuccessResponse(ctx, res, message, http.StatusOK)
}
