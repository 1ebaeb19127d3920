package controllers

import (
	"fmt"
	"net/http"

	"calibration-system/internal/services"
	"calibration-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type CertificateController struct {
	certificateService services.CertificateServiceInterface
	logger             *zap.Logger
}

func NewCertificateController(certificateService services.CertificateServiceInterface, logger *zap.Logger) *CertificateController {
	return &CertificateController{
		certificateService: certificateService,
		logger:             logger,
	}
}

func (c *CertificateController) GetCertificateBySerial(ctx echo.Context) error {
	serial := ctx.Param("serial_number")

	content, err := c.certificateService.GenerateForSerial(ctx.Request().Context(), serial)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return servePDF(ctx, fmt.Sprintf("certificado_%s.pdf", serial), content)
}

func (c *CertificateController) GetCertificateForEntry(ctx echo.Context) error {
	id := ctx.Param("id")

	content, err := c.certificateService.GenerateForHistoryEntry(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return servePDF(ctx, fmt.Sprintf("certificado_%s.pdf", id), content)
}

func servePDF(ctx echo.Context, filename string, content []byte) error {
	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return ctx.Blob(http.StatusOK, "application/pdf", content)
}
