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

// RegistryController exposes the reference registries that feed the intake
// and calibration forms.
type RegistryController struct {
	registryService services.RegistryServiceInterface
	logger          *zap.Logger
}

func NewRegistryController(registryService services.RegistryServiceInterface, logger *zap.Logger) *RegistryController {
	return &RegistryController{
		registryService: registryService,
		logger:          logger,
	}
}

func (c *RegistryController) bindNamedEntity(ctx echo.Context) (*dto.CreateNamedEntityDTO, error) {
	var payload dto.CreateNamedEntityDTO
	if err := ctx.Bind(&payload); err != nil {
		return nil, apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil)
	}
	if err := ctx.Validate(&payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *RegistryController) CreateBrand(ctx echo.Context) error {
	payload, err := c.bindNamedEntity(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.registryService.CreateBrand(ctx.Request().Context(), *payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "brand created", http.StatusCreated)
}

func (c *RegistryController) GetBrands(ctx echo.Context) error {
	res, err := c.registryService.GetBrands(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "brand list", http.StatusOK)
}

func (c *RegistryController) CreateModel(ctx echo.Context) error {
	payload, err := c.bindNamedEntity(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.registryService.CreateModel(ctx.Request().Context(), *payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "model created", http.StatusCreated)
}

func (c *RegistryController) GetModels(ctx echo.Context) error {
	res, err := c.registryService.GetModels(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "model list", http.StatusOK)
}

func (c *RegistryController) CreateTechnician(ctx echo.Context) error {
	payload, err := c.bindNamedEntity(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.registryService.CreateTechnician(ctx.Request().Context(), *payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "technician created", http.StatusCreated)
}

func (c *RegistryController) GetTechnicians(ctx echo.Context) error {
	res, err := c.registryService.GetTechnicians(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "technician list", http.StatusOK)
}

func (c *RegistryController) CreateClient(ctx echo.Context) error {
	var payload dto.CreateClientDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("CreateClient: failed to bind request body", zap.Error(err))
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil),
			c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.registryService.CreateClient(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "client created", http.StatusCreated)
}

func (c *RegistryController) GetClients(ctx echo.Context) error {
	res, err := c.registryService.GetClients(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "client list", http.StatusOK)
}

func (c *RegistryController) GetClientByCIF(ctx echo.Context) error {
	res, err := c.registryService.GetClientByCIF(ctx.Request().Context(), ctx.Param("cif"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "client found", http.StatusOK)
}
