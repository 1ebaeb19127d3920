package routes

import (
	"calibration-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runEquipmentRouter(g *echo.Group, ctrl *controllers.EquipmentController) {
	g.POST("/equipment", ctrl.CreateEquipment)
	g.PUT("/equipment/deliver", ctrl.DeliverEquipment)
	g.GET("/equipment/serial/:serial_number", ctrl.GetEquipment)
	g.PUT("/equipment/:serial_number/calibrate", ctrl.CalibrateEquipment)
	// Status listings: /equipment/pending, /equipment/calibrated,
	// /equipment/delivered. Static routes above take precedence.
	g.GET("/equipment/:status", ctrl.ListEquipment)
}
