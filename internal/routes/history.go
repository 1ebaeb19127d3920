package routes

import (
	"calibration-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runHistoryRouter(g *echo.Group, ctrl *controllers.HistoryController) {
	g.GET("/history/search", ctrl.SearchHistory)
	g.GET("/history/export", ctrl.ExportHistory)
	g.GET("/history/serial/:serial_number", ctrl.ListBySerial)
	g.GET("/history/:id", ctrl.GetEntry)
}
