package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"calibration-system/internal/controllers"
	"calibration-system/internal/repositories"
	"calibration-system/internal/services"
	"calibration-system/pkg/middleware"
	"calibration-system/pkg/service"
)

// InitRouter wires repositories, services and controllers and registers the
// full HTTP surface under /api. Everything except register and login sits
// behind the auth middleware.
func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, logger *zap.Logger) {
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)

	equipmentRepo := repositories.NewEquipmentRepository(dbConn)
	historyRepo := repositories.NewCalibrationHistoryRepository(dbConn)
	catalogRepo := repositories.NewEquipmentCatalogRepository(dbConn)
	counterRepo := repositories.NewCertificateCounterRepository(dbConn)
	masterRepo := repositories.NewEquipmentMasterRepository(dbConn)
	brandRepo := repositories.NewBrandRepository(dbConn)
	modelRepo := repositories.NewModelRepository(dbConn)
	technicianRepo := repositories.NewTechnicianRepository(dbConn)
	clientRepo := repositories.NewClientRepository(dbConn)
	userRepo := repositories.NewUserRepository(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	equipmentService := services.NewEquipmentService(equipmentRepo, historyRepo, catalogRepo, counterRepo, logger)
	historyService := services.NewHistoryService(historyRepo, logger)
	certificateService := services.NewCertificateService(equipmentRepo, historyRepo, logger)
	registryService := services.NewRegistryService(brandRepo, modelRepo, technicianRepo, clientRepo, cacheRepo, logger)
	masterService := services.NewMasterService(masterRepo, catalogRepo, logger)
	authService := services.NewAuthService(userRepo, jwtSvc, logger)

	equipmentController := controllers.NewEquipmentController(equipmentService, logger)
	historyController := controllers.NewHistoryController(historyService, logger)
	certificateController := controllers.NewCertificateController(certificateService, logger)
	registryController := controllers.NewRegistryController(registryService, logger)
	masterController := controllers.NewMasterController(masterService, logger)
	authController := controllers.NewAuthController(authService, logger)

	secureGroup := api.Group("", authMW.Auth)

	runAuthRouter(api, secureGroup, authController)
	runEquipmentRouter(secureGroup, equipmentController)
	runHistoryRouter(secureGroup, historyController)
	runCertificateRouter(secureGroup, certificateController)
	runMasterRouter(secureGroup, masterController)
	runRegistryRouter(secureGroup, registryController)

	logger.Info("routes registered")
}
