package router

import (
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/playmakerhq/playmaker/backend/internal/handlers"
	"github.com/playmakerhq/playmaker/backend/internal/middleware"
	"github.com/playmakerhq/playmaker/backend/internal/models"
	"github.com/playmakerhq/playmaker/backend/internal/notifications"
	"github.com/playmakerhq/playmaker/backend/internal/repositories"
	"github.com/playmakerhq/playmaker/backend/pkg/config"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
}

// SetupRoutes configures all application routes and injects dependencies.
// The returned dispatcher must be closed on shutdown so queued fan-out
// drains.
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, cfg *config.Config, log *zap.Logger) (*notifications.QueueDispatcher, error) {
	// AutoMigrate PostgreSQL models
	err := pgdb.AutoMigrate(
		&models.User{},
		&models.School{},
		&models.StudentProfile{},
		&models.SchoolAdminProfile{},
		&models.SystemAdminProfile{},
		&models.ViewerProfile{},
		&models.ScoutProfile{},
		&models.ScoutAdmin{},
		&models.Follow{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.SchoolPaymentRecord{},
		&models.EvaluationFormSubmission{},
		&models.Notification{},
	)
	if err != nil {
		return nil, err
	}

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	schoolRepo := repositories.NewPostgresSchoolRepository(pgdb)
	profileRepo := repositories.NewPostgresProfileRepository(pgdb)
	followRepo := repositories.NewPostgresFollowRepository(pgdb)
	postRepo := repositories.NewPostgresPostRepository(pgdb)
	commentRepo := repositories.NewPostgresCommentRepository(pgdb)
	likeRepo := repositories.NewPostgresLikeRepository(pgdb)
	paymentRepo := repositories.NewPostgresPaymentRepository(pgdb)
	submissionRepo := repositories.NewPostgresSubmissionRepository(pgdb)
	notificationRepo := repositories.NewPostgresNotificationRepository(pgdb)

	// --- Notification engine ---
	dispatcher := notifications.NewQueueDispatcher(cfg.NotifyWorkers, cfg.NotifyQueueSize, log)
	resolver := notifications.NewRecipientResolver(followRepo, userRepo)
	identity := notifications.NewIdentityResolver(userRepo, profileRepo)
	coordinator := notifications.NewCoordinator(dispatcher, resolver, identity, notificationRepo, schoolRepo, log)

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))

	// User profile routes
	userHandler := handlers.NewUserHandler(userRepo, identity)
	userHandler.RegisterProfileRoutes(api)

	// Post routes
	postHandler := handlers.NewPostHandler(postRepo, coordinator)
	postHandler.RegisterPostRoutes(api)

	// Feed routes
	feedHandler := handlers.NewFeedHandler(postRepo, followRepo)
	feedHandler.RegisterFeedRoutes(api)

	// Follow routes
	followHandler := handlers.NewFollowHandler(followRepo, userRepo, coordinator)
	followHandler.RegisterFollowRoutes(api)

	// Comment routes
	commentHandler := handlers.NewCommentHandler(commentRepo, postRepo, coordinator)
	commentHandler.RegisterCommentRoutes(api)

	// Like routes
	likeHandler := handlers.NewLikeHandler(likeRepo, postRepo, coordinator)
	likeHandler.RegisterLikeRoutes(api)

	// Payment routes
	paymentHandler := handlers.NewPaymentHandler(paymentRepo, schoolRepo, coordinator)
	paymentHandler.RegisterPaymentRoutes(api)

	// Submission routes
	submissionHandler := handlers.NewSubmissionHandler(submissionRepo, userRepo, coordinator)
	submissionHandler.RegisterSubmissionRoutes(api)

	// Notification routes
	notificationHandler := handlers.NewNotificationHandler(notificationRepo, identity)
	notificationHandler.RegisterNotificationRoutes(api)

	log.Info("all routes configured")
	return dispatcher, nil
}
