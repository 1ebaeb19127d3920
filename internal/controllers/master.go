package controllers

import (
	"net/http"

	"calibration-system/internal/dto"
	"calibration-system/internal/services"
	apperrors "calibration-system/pkg/errors"
	"calibration-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type MasterController struct {
	masterService services.MasterServiceInterface
	logger        *zap.Logger
}

func NewMasterController(masterService services.MasterServiceInterface, logger *zap.Logger) *MasterController {
	return &MasterController{
		masterService: masterService,
		logger:        logger,
	}
}

func (c *MasterController) CreateMaster(ctx echo.Context) error {
	var payload dto.CreateEquipmentMasterDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("CreateMaster: failed to bind request body", zap.Error(err))
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil),
			c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.masterService.CreateMaster(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "equipment master created", http.StatusCreated)
}

func (c *MasterController) GetMaster(ctx echo.Context) error {
	res, err := c.masterService.GetMaster(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "equipment master found", http.StatusOK)
}

func (c *MasterController) GetMasterBySerial(ctx echo.Context) error {
	res, err := c.masterService.GetMasterBySerial(ctx.Request().Context(), ctx.Param("serial_number"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "equipment master found", http.StatusOK)
}

func (c *MasterController) ListMasters(ctx echo.Context) error {
	res, err := c.masterService.ListMasters(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "equipment master list", http.StatusOK)
}

func (c *MasterController) UpdateMaster(ctx echo.Context) error {
	var payload dto.UpdateEquipmentMasterDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("UpdateMaster: failed to bind request body", zap.Error(err))
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil),
			c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.masterService.UpdateMaster(ctx.Request().Context(), ctx.Param("id"), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "equipment master updated", http.StatusOK)
}

func (c *MasterController) DeleteMaster(ctx echo.Context) error {
	if err := c.masterService.DeleteMaster(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, "equipment master deleted", http.StatusOK)
}

func (c *MasterController) GetCatalogEntry(ctx echo.Context) error {
	res, err := c.masterService.GetCatalogEntry(ctx.Request().Context(), ctx.Param("serial_number"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "catalog entry found", http.StatusOK)
}

func (c *MasterController) ListCatalog(ctx echo.Context) error {
	res, err := c.masterService.ListCatalog(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "equipment catalog", http.StatusOK)
}
