package app

import (
	"context"
	"database/sql"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"gearlog/backend/libs/db"
	libredis "gearlog/backend/libs/redis"
	"gearlog/backend/services/garage-service/internal/analytics"
	"gearlog/backend/services/garage-service/internal/config"
	httpserver "gearlog/backend/services/garage-service/internal/http"
	"gearlog/backend/services/garage-service/internal/http/handlers"
	"gearlog/backend/services/garage-service/internal/http/middleware"
	redisstore "gearlog/backend/services/garage-service/internal/redis"
	"gearlog/backend/services/garage-service/internal/repository"
	"gearlog/backend/services/garage-service/internal/service"
)

// App wires garage-service dependencies.
type App struct {
	server      *httpserver.Server
	db          *sql.DB
	redisClient *redis.Client
	logger      *zap.Logger
}

// New constructs the application graph.
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	sqlDB, err := db.NewPostgres(cfg.Database.DSN)
	if err != nil {
		return nil, err
	}

	redisClient, err := libredis.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		sqlDB.Close()
		return nil, err
	}

	vehicleRepo := repository.NewVehicleRepository(sqlDB)
	fuelLogRepo := repository.NewFuelLogRepository(sqlDB)
	maintenanceRepo := repository.NewMaintenanceRepository(sqlDB)
	categoryRepo := repository.NewCategoryRepository(sqlDB)

	calc := analytics.NewFuelCalculator()
	if cfg.Analytics.MaxEfficiency > 0 {
		calc.MaxEfficiency = cfg.Analytics.MaxEfficiency
	}
	scorer := analytics.NewHealthScorer()

	reportCache := redisstore.NewReportCache(redisClient, cfg.ReportTTL())

	vehicleService := service.NewVehicleService(vehicleRepo)
	fuelService := service.NewFuelService(vehicleRepo, fuelLogRepo, calc, reportCache, logger)
	maintenanceService := service.NewMaintenanceService(vehicleRepo, maintenanceRepo, categoryRepo, reportCache, logger)
	healthService := service.NewHealthService(vehicleRepo, fuelLogRepo, maintenanceRepo, calc, scorer, reportCache, logger)

	fuelHandler := handlers.NewFuelHandler(fuelService, logger)
	maintenanceHandler := handlers.NewMaintenanceHandler(maintenanceService, logger)

	routes := httpserver.Routes{
		VehiclesList:       handlers.NewVehiclesListHandler(vehicleService),
		VehicleGet:         handlers.NewVehicleGetHandler(vehicleService),
		FuelStats:          fuelHandler.HandleStats,
		FuelAdd:            fuelHandler.HandleAdd,
		MaintenanceHistory: maintenanceHandler.HandleHistory,
		MaintenanceAdd:     maintenanceHandler.HandleAdd,
		Categories:         maintenanceHandler.HandleCategories,
		VehicleHealth:      handlers.NewVehicleHealthHandler(healthService, logger),
		Liveness:           handlers.NewLivenessHandler(),
	}

	router := httpserver.NewRouter(routes, middleware.Auth(cfg.Auth.JWTSecret))
	server := httpserver.NewServer(cfg.HTTPAddress(), router, logger)

	return &App{
		server:      server,
		db:          sqlDB,
		redisClient: redisClient,
		logger:      logger,
	}, nil
}

// Run starts HTTP server.
func (a *App) Run(ctx context.Context) error {
	return a.server.Run(ctx)
}

// Close releases resources.
func (a *App) Close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn("failed to close db", zap.Error(err))
		}
	}
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warn("failed to close redis", zap.Error(err))
		}
	}
}
