package controllers

import (
	"fmt"
	"net/http"
	"time"

	"calibration-system/internal/dto"
	"calibration-system/internal/services"
	"calibration-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type HistoryController struct {
	historyService services.HistoryServiceInterface
	logger         *zap.Logger
}

func NewHistoryController(historyService services.HistoryServiceInterface, logger *zap.Logger) *HistoryController {
	return &HistoryController{
		historyService: historyService,
		logger:         logger,
	}
}

func searchFromQuery(ctx echo.Context) dto.HistorySearchDTO {
	return dto.HistorySearchDTO{
		SerialNumber: ctx.QueryParam("serial_number"),
		ClientName:   ctx.QueryParam("client_name"),
		ClientCIF:    ctx.QueryParam("client_cif"),
		Technician:   ctx.QueryParam("technician"),
		DateFrom:     ctx.QueryParam("date_from"),
		DateTo:       ctx.QueryParam("date_to"),
	}
}

func (c *HistoryController) SearchHistory(ctx echo.Context) error {
	search := searchFromQuery(ctx)
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	res, total, err := c.historyService.Search(ctx.Request().Context(), search, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "calibration history", http.StatusOK, total)
}

func (c *HistoryController) GetEntry(ctx echo.Context) error {
	res, err := c.historyService.GetEntry(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "history entry found", http.StatusOK)
}

func (c *HistoryController) ListBySerial(ctx echo.Context) error {
	res, err := c.historyService.ListBySerial(ctx.Request().Context(), ctx.Param("serial_number"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "calibration history for serial", http.StatusOK)
}

// ExportHistory streams the matching entries as an XLSX download.
func (c *HistoryController) ExportHistory(ctx echo.Context) error {
	search := searchFromQuery(ctx)

	content, err := c.historyService.Export(ctx.Request().Context(), search)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	filename := fmt.Sprintf("historial_calibraciones_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return ctx.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", content)
}
