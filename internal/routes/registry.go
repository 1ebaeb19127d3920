package routes

import (
	"calibration-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runRegistryRouter(g *echo.Group, ctrl *controllers.RegistryController) {
	g.POST("/brands", ctrl.CreateBrand)
	g.GET("/brands", ctrl.GetBrands)
	g.POST("/models", ctrl.CreateModel)
	g.GET("/models", ctrl.GetModels)
	g.POST("/technicians", ctrl.CreateTechnician)
	g.GET("/technicians", ctrl.GetTechnicians)
	g.POST("/clients", ctrl.CreateClient)
	g.GET("/clients", ctrl.GetClients)
	g.GET("/clients/:cif", ctrl.GetClientByCIF)
}
