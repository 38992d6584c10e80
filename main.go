package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/planweave/api/audit"
	"github.com/planweave/api/config"
	"github.com/planweave/api/controller"
	"github.com/planweave/api/dao"
	"github.com/planweave/api/db"
	"github.com/planweave/api/engine"
	logger "github.com/planweave/api/logging"
	"github.com/planweave/api/router"
	"github.com/planweave/api/service"
	"github.com/planweave/api/util"
)

func main() {
	// Initialize configuration
	if err := config.InitConfig(); err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}

	// Initialize logger
	logger.InitLogger(config.GetString("log.dir"))
	defer logger.Sync()

	// Initialize Neo4j
	if err := db.InitNeo4j(); err != nil {
		logger.Fatal("Failed to initialize Neo4j", zap.Error(err))
	}
	defer db.CloseNeo4j()

	// Initialize Redis
	if err := db.InitRedis(); err != nil {
		logger.Fatal("Failed to initialize Redis", zap.Error(err))
	}
	defer db.CloseRedis()

	// Initialize EventBus
	eventBus := util.NewEventBus()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eventBus.Start(ctx)

	// Initialize services and utilities
	validationUtil := util.NewValidationUtil()
	cacheService := util.NewCacheService()
	notificationService := util.NewNotificationService()
	auditRepository, err := audit.NewElasticsearchRepository(config.GetString("elasticsearch.url"))
	if err != nil {
		logger.Fatal("Failed to initialize audit repository", zap.Error(err))
	}
	auditService := audit.NewService(auditRepository)

	// Initialize DAOs
	planningDAO := dao.NewPlanningDAO(db.Neo4jDriver)

	// Initialize the validation engine with configured defaults
	strictSkillMatching := config.GetBool("engine.strictSkillMatching")
	allowOverAllocation := config.GetBool("engine.allowOverAllocation")
	maxSkillGapTolerance := config.GetInt("engine.maxSkillGapTolerance")
	validateLeaveSchedules := config.GetBool("engine.validateLeaveSchedules")
	validateCapacityLimits := config.GetBool("engine.validateCapacityLimits")
	validationEngine := engine.NewEngine(&engine.Overrides{
		StrictSkillMatching:    &strictSkillMatching,
		AllowOverAllocation:    &allowOverAllocation,
		MaxSkillGapTolerance:   &maxSkillGapTolerance,
		ValidateLeaveSchedules: &validateLeaveSchedules,
		ValidateCapacityLimits: &validateCapacityLimits,
	})

	// Initialize services
	validationService := service.NewValidationService(
		validationEngine,
		planningDAO,
		validationUtil,
		cacheService,
		notificationService,
		eventBus,
		auditService,
	)

	// Initialize controllers
	validationController := controller.NewValidationController(validationService)
	controllers := controller.NewControllers(validationController)

	// Set up Gin
	gin.SetMode(gin.ReleaseMode)
	engineRouter := router.SetupRouter(controllers, 100, time.Minute) // 100 requests per minute

	// Set up the server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", config.GetString("server.port")),
		Handler: engineRouter,
	}

	// Start the server in a goroutine
	go func() {
		logger.Info("Starting server", zap.String("port", config.GetString("server.port")))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// The context is used to inform the server it has 5 seconds to finish
	// the request it is currently handling
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
}
