package routes

import (
	"club-registry-backend/internal/api/handlers"
	"club-registry-backend/internal/api/middleware"
	"club-registry-backend/internal/auth"
	"club-registry-backend/internal/config"
	"club-registry-backend/internal/repository"
	"club-registry-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Metrics())

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	locationRepo := repository.NewLocationRepository(db)
	personnelRepo := repository.NewPersonnelRepository(db)
	familyMemberRepo := repository.NewFamilyMemberRepository(db)
	clubMemberRepo := repository.NewClubMemberRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	hobbyRepo := repository.NewHobbyRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	playerAssignmentRepo := repository.NewPlayerAssignmentRepository(db)
	emailLogRepo := repository.NewEmailLogRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Initialize services
	locationService := service.NewLocationService(locationRepo, validator)
	personnelService := service.NewPersonnelService(personnelRepo, locationRepo, validator)
	familyMemberService := service.NewFamilyMemberService(familyMemberRepo, locationRepo, clubMemberRepo, validator)
	clubMemberService := service.NewClubMemberService(clubMemberRepo, locationRepo, validator)
	paymentService := service.NewPaymentService(paymentRepo, clubMemberRepo, validator)
	hobbyService := service.NewHobbyService(hobbyRepo, clubMemberRepo, validator)
	sessionService := service.NewSessionService(sessionRepo, locationRepo, personnelRepo, validator)
	playerAssignmentService := service.NewPlayerAssignmentService(playerAssignmentRepo, sessionRepo, clubMemberRepo, validator)
	emailLogService := service.NewEmailLogService(emailLogRepo, locationRepo, validator)
	reportService := service.NewReportService(reportRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	locationHandler := handlers.NewLocationHandler(locationService)
	personnelHandler := handlers.NewPersonnelHandler(personnelService)
	familyMemberHandler := handlers.NewFamilyMemberHandler(familyMemberService)
	clubMemberHandler := handlers.NewClubMemberHandler(clubMemberService, paymentService, hobbyService)
	hobbyHandler := handlers.NewHobbyHandler(hobbyService)
	sessionHandler := handlers.NewSessionHandler(sessionService, playerAssignmentService)
	emailLogHandler := handlers.NewEmailLogHandler(emailLogService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes; token auth is off entirely when no secret is configured
	var authMiddleware *auth.Middleware
	if cfg.AuthEnabled() {
		authService := auth.NewService(cfg)
		authHandler := auth.NewHandler(authService)
		authMiddleware = auth.NewMiddleware(authService)

		router.POST("/api/auth/login", authHandler.Login)
	}

	// API v1 routes
	v1 := router.Group("/api/v1")

	if authMiddleware != nil {
		v1.Use(authMiddleware.RequireAuth())
	}

	{
		// Location routes
		locations := v1.Group("/locations")
		{
			locations.GET("", locationHandler.GetAllLocations)
			locations.POST("", locationHandler.CreateLocation)
			locations.GET("/:id", locationHandler.GetLocation)
			locations.PUT("/:id", locationHandler.UpdateLocation)
			locations.DELETE("/:id", locationHandler.DeleteLocation)
		}

		// Personnel routes
		personnel := v1.Group("/personnel")
		{
			personnel.GET("", personnelHandler.GetAllPersonnel)
			personnel.POST("", personnelHandler.CreatePersonnel)
			personnel.GET("/:id", personnelHandler.GetPersonnel)
			personnel.PUT("/:id", personnelHandler.UpdatePersonnel)
			personnel.DELETE("/:id", personnelHandler.DeletePersonnel)
			personnel.GET("/:id/assignments", personnelHandler.GetAssignments)
			personnel.POST("/:id/assignments", personnelHandler.CreateAssignment)
		}

		// Personnel assignment routes (addressed by their own id)
		personnelAssignments := v1.Group("/personnel-assignments")
		{
			personnelAssignments.PUT("/:id", personnelHandler.UpdateAssignment)
			personnelAssignments.DELETE("/:id", personnelHandler.DeleteAssignment)
		}

		// Family member routes
		familyMembers := v1.Group("/family-members")
		{
			familyMembers.GET("", familyMemberHandler.GetAllFamilyMembers)
			familyMembers.POST("", familyMemberHandler.CreateFamilyMember)
			familyMembers.GET("/:id", familyMemberHandler.GetFamilyMember)
			familyMembers.PUT("/:id", familyMemberHandler.UpdateFamilyMember)
			familyMembers.DELETE("/:id", familyMemberHandler.DeleteFamilyMember)
			familyMembers.POST("/:id/secondary-contacts", familyMemberHandler.CreateSecondaryContact)
			familyMembers.POST("/:id/relationships", familyMemberHandler.CreateRelationship)
		}

		// Secondary contact routes
		secondaryContacts := v1.Group("/secondary-contacts")
		{
			secondaryContacts.PUT("/:id", familyMemberHandler.UpdateSecondaryContact)
			secondaryContacts.DELETE("/:id", familyMemberHandler.DeleteSecondaryContact)
		}

		// Guardian-minor relationship routes
		relationships := v1.Group("/relationships")
		{
			relationships.DELETE("/:id", familyMemberHandler.DeleteRelationship)
		}

		// Club member routes
		clubMembers := v1.Group("/club-members")
		{
			clubMembers.GET("", clubMemberHandler.GetAllClubMembers)
			clubMembers.POST("", clubMemberHandler.CreateClubMember)
			clubMembers.GET("/:id", clubMemberHandler.GetClubMember)
			clubMembers.GET("/by-number/:number", clubMemberHandler.GetClubMemberByNumber)
			clubMembers.PUT("/:id", clubMemberHandler.UpdateClubMember)
			clubMembers.PATCH("/:id/status", clubMemberHandler.SetClubMemberStatus)
			clubMembers.DELETE("/:id", clubMemberHandler.DeleteClubMember)
			clubMembers.GET("/:id/payments", clubMemberHandler.GetPayments)
			clubMembers.POST("/:id/payments", clubMemberHandler.CreatePayment)
			clubMembers.GET("/:id/payments/summary", clubMemberHandler.GetPaymentSummary)
			clubMembers.GET("/:id/hobbies", clubMemberHandler.GetMemberHobbies)
			clubMembers.PUT("/:id/hobbies/:hobbyId", clubMemberHandler.AttachHobby)
			clubMembers.DELETE("/:id/hobbies/:hobbyId", clubMemberHandler.DetachHobby)
			clubMembers.GET("/:id/assignments", sessionHandler.GetMemberAssignments)
		}

		// Payment routes (addressed by their own id)
		payments := v1.Group("/payments")
		{
			payments.PUT("/:id", clubMemberHandler.UpdatePayment)
			payments.DELETE("/:id", clubMemberHandler.DeletePayment)
		}

		// Hobby catalog routes
		hobbies := v1.Group("/hobbies")
		{
			hobbies.GET("", hobbyHandler.GetAllHobbies)
			hobbies.POST("", hobbyHandler.CreateHobby)
			hobbies.DELETE("/:id", hobbyHandler.DeleteHobby)
		}

		// Session routes
		sessions := v1.Group("/sessions")
		{
			sessions.GET("", sessionHandler.GetAllSessions)
			sessions.POST("", sessionHandler.CreateSession)
			sessions.GET("/:id", sessionHandler.GetSession)
			sessions.PUT("/:id", sessionHandler.UpdateSession)
			sessions.DELETE("/:id", sessionHandler.DeleteSession)
			sessions.POST("/:id/teams", sessionHandler.CreateTeam)
		}

		// Session team routes
		teams := v1.Group("/teams")
		{
			teams.GET("", sessionHandler.GetAllTeams)
			teams.GET("/:id", sessionHandler.GetTeam)
			teams.PUT("/:id", sessionHandler.UpdateTeam)
			teams.DELETE("/:id", sessionHandler.DeleteTeam)
			teams.GET("/:id/players", sessionHandler.GetTeamPlayers)
			teams.POST("/:id/players", sessionHandler.CreatePlayerAssignment)
		}

		// Player assignment routes (addressed by their own id)
		playerAssignments := v1.Group("/player-assignments")
		{
			playerAssignments.PUT("/:id", sessionHandler.UpdatePlayerAssignment)
			playerAssignments.DELETE("/:id", sessionHandler.DeletePlayerAssignment)
		}

		// Email archive routes
		emailLogs := v1.Group("/email-logs")
		{
			emailLogs.GET("", emailLogHandler.GetAllEmailLogs)
			emailLogs.POST("", emailLogHandler.CreateEmailLog)
			emailLogs.GET("/:id", emailLogHandler.GetEmailLog)
			emailLogs.DELETE("/:id", emailLogHandler.DeleteEmailLog)
		}

		// Report routes
		reports := v1.Group("/reports")
		{
			reports.GET("/:name", reportHandler.RunReport)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString(middleware.RequestIDHeader),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
