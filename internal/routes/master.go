package routes

import (
	"calibration-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runMasterRouter(g *echo.Group, ctrl *controllers.MasterController) {
	g.POST("/equipment-master", ctrl.CreateMaster)
	g.GET("/equipment-master", ctrl.ListMasters)
	g.GET("/equipment-master/serial/:serial_number", ctrl.GetMasterBySerial)
	g.GET("/equipment-master/:id", ctrl.GetMaster)
	g.PUT("/equipment-master/:id", ctrl.UpdateMaster)
	g.DELETE("/equipment-master/:id", ctrl.DeleteMaster)

	g.GET("/equipment-catalog", ctrl.ListCatalog)
	g.GET("/equipment-catalog/:serial_number", ctrl.GetCatalogEntry)
}
