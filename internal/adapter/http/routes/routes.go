package routes

import (
	"os"
	"strconv"
	"strings"

	_ "toyauction/docs" // swag-generated swagger spec
	"toyauction/internal/adapter/http/handlers"
	"toyauction/internal/adapter/http/middleware"
	"toyauction/internal/adapter/persistence/repository"
	"toyauction/internal/infrastructure/cache"
	"toyauction/internal/infrastructure/database"
	"toyauction/internal/infrastructure/notification"
	"toyauction/internal/infrastructure/qr"
	"toyauction/internal/infrastructure/scheduler"
	"toyauction/internal/infrastructure/storage"
	"toyauction/internal/usecase"
	"toyauction/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run wires the whole service and starts the HTTP listener.
func Run() {
	setMiddlewares()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := router.Run(":" + port); err != nil {
		logrus.Fatalf("Failed to startup the application: %v", err)
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	auctionRepo := repository.NewAuctionDynamoRepository(ddb)
	bidRepo := repository.NewBidDynamoRepository(ddb)
	paymentRepo := repository.NewPaymentDynamoRepository(ddb)
	profileRepo := repository.NewProfileDynamoRepository(ddb)

	sessions := buildSessionStore()
	notifier := buildNotifier()

	slipStore, err := storage.NewLocalSlipStore(os.Getenv("SLIP_UPLOAD_DIR"))
	if err != nil {
		logrus.Fatalf("Failed to prepare slip upload dir: %v", err)
	}

	auctionUseCase := usecase.NewAuctionUseCase(auctionRepo, bidRepo, profileRepo, notifier)
	paymentUseCase := usecase.NewPaymentUseCase(
		paymentRepo, auctionRepo, profileRepo,
		qr.NewPromptPayQRService(), slipStore, qrTTLMinutes())

	sweeper := scheduler.NewSweeper(auctionUseCase, os.Getenv("SWEEP_SCHEDULE"))
	if err := sweeper.Start(); err != nil {
		logrus.Fatalf("Failed to start auction sweeper: %v", err)
	}

	auctionHandler := handlers.NewAuctionHandler(auctionUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	adminHandler := handlers.NewAdminHandler(auctionUseCase, paymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuctionRoutes(v1, auctionHandler, sessions)
	addPaymentRoutes(v1, paymentHandler, sessions)
	addAdminRoutes(v1, adminHandler, sessions)
}

// buildSessionStore returns nil when Redis is not configured; auth then
// validates tokens by signature and expiry alone.
func buildSessionStore() interfaces.ISessionStore {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil
	}

	store, err := cache.NewRedisSessionStore(addr, os.Getenv("REDIS_PASSWORD"))
	if err != nil {
		logrus.Warnf("Redis not reachable, session liveness checks disabled: %v", err)
		return nil
	}
	return store
}

func buildNotifier() interfaces.IWinnerNotifier {
	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		return notification.NewLogWinnerNotifier()
	}

	n, err := notification.NewKafkaWinnerNotifier(strings.Split(brokers, ","))
	if err != nil {
		logrus.Warnf("Kafka not reachable, winner notifications will be logged only: %v", err)
		return notification.NewLogWinnerNotifier()
	}
	return n
}

func qrTTLMinutes() int {
	v, err := strconv.Atoi(os.Getenv("QR_TTL_MINUTES"))
	if err != nil {
		return 0
	}
	return v
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logrus.Errorf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func authMiddleware(sessions interfaces.ISessionStore) gin.HandlerFunc {
	return middleware.RequireAuth(sessions)
}
