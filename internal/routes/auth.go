package routes

import (
	"calibration-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runAuthRouter(api *echo.Group, secureGroup *echo.Group, ctrl *controllers.AuthController) {
	api.POST("/auth/register", ctrl.Register)
	api.POST("/auth/login", ctrl.Login)
	secureGroup.GET("/auth/me", ctrl.Me)
}
