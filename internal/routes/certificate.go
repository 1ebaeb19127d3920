package routes

import (
	"calibration-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runCertificateRouter(g *echo.Group, ctrl *controllers.CertificateController) {
	g.GET("/certificates/serial/:serial_number", ctrl.GetCertificateBySerial)
	g.GET("/certificates/history/:id", ctrl.GetCertificateForEntry)
}
