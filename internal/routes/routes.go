package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VelvetStudioPL/salon-scheduler/internal/audit"
	"github.com/VelvetStudioPL/salon-scheduler/internal/cache"
	"github.com/VelvetStudioPL/salon-scheduler/internal/config"
	"github.com/VelvetStudioPL/salon-scheduler/internal/db"
	"github.com/VelvetStudioPL/salon-scheduler/internal/handlers"
	infraRepo "github.com/VelvetStudioPL/salon-scheduler/internal/infra/repository"
	"github.com/VelvetStudioPL/salon-scheduler/internal/middleware"
	"github.com/VelvetStudioPL/salon-scheduler/internal/uploads"
	ucBooking "github.com/VelvetStudioPL/salon-scheduler/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, adapter db.QueryAdapter, cfg *config.Config, store *uploads.Store) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingSQLRepository(adapter)
	availability := cache.New(cfg.RedisAddr, cfg.RedisPass)

	auditLogger := audit.New(adapter)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES — BOOKING
	// ======================================================
	bookUC := ucBooking.NewBookAppointment(bookingRepo, availability)

	availabilityUC := ucBooking.NewAvailability(bookingRepo, availability)

	manageSlotsUC := ucBooking.NewManageSlots(
		bookingRepo,
		availability,
		auditDispatcher,
	)

	manageAppointmentsUC := ucBooking.NewManageAppointments(
		bookingRepo,
		availability,
		auditDispatcher,
	)

	manualAppointmentUC := ucBooking.NewManualAppointment(
		bookingRepo,
		availability,
		auditDispatcher,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(adapter, cfg)

	bookingHandler := handlers.NewBookingHandler(
		bookUC,
		availabilityUC,
		manageAppointmentsUC,
	)

	adminSlotsHandler := handlers.NewAdminSlotsHandler(
		manageSlotsUC,
		availabilityUC,
	)

	adminAppointmentsHandler := handlers.NewAdminAppointmentsHandler(
		manageAppointmentsUC,
		manualAppointmentUC,
	)

	adminUsersHandler := handlers.NewAdminUsersHandler(adapter, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(adapter)
	articleHandler := handlers.NewArticleHandler(adapter)
	reviewHandler := handlers.NewReviewHandler(adapter)
	metamorphosisHandler := handlers.NewMetamorphosisHandler(adapter, store)
	auditLogsHandler := handlers.NewAuditLogsHandler(adapter)

	// ======================================================
	// 📁 STATIC UPLOADS
	// ======================================================
	r.Static("/uploads", store.Root())

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 PUBLIC
		// ------------------------------
		api.GET("/test", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "API działa poprawnie!"})
		})

		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		api.GET("/available-dates", bookingHandler.AvailableDates)
		api.GET("/available-slots/:date", bookingHandler.AvailableSlots)

		api.GET("/services", serviceHandler.ListPublic)
		api.GET("/articles", articleHandler.ListPublic)
		api.GET("/articles/:slug", articleHandler.GetBySlug)
		api.GET("/reviews", reviewHandler.ListPublic)
		api.GET("/metamorphoses", metamorphosisHandler.List)

		// ------------------------------
		// 🔐 AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.POST("/book-appointment", bookingHandler.Book)
			secured.GET("/user/appointments", bookingHandler.MyAppointments)
			secured.POST("/reviews", reviewHandler.Create)
		}

		// ------------------------------
		// 👑 ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg), middleware.RequireAdmin())
		{
			admin.GET("", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{
					"success": true,
					"message": "Witaj w panelu administratora!",
				})
			})

			admin.GET("/users", adminUsersHandler.List)
			admin.GET("/users/search", adminUsersHandler.Search)
			admin.PATCH("/users/:id/activate", adminUsersHandler.Activate)
			admin.DELETE("/users/:id", adminUsersHandler.Delete)

			admin.GET("/slots/:date", adminSlotsHandler.Day)
			admin.POST("/slots", adminSlotsHandler.Open)
			admin.DELETE("/slots/:date/:time", adminSlotsHandler.Close)

			admin.GET("/appointments", adminAppointmentsHandler.List)
			admin.PATCH("/appointments/:id/confirm", adminAppointmentsHandler.Confirm)
			admin.DELETE("/appointments/:id", adminAppointmentsHandler.Delete)
			admin.POST("/appointments/manual", adminAppointmentsHandler.CreateManual)

			admin.GET("/services", serviceHandler.ListAdmin)
			admin.POST("/services", serviceHandler.Create)
			admin.PUT("/services/:id", serviceHandler.Update)
			admin.DELETE("/services/:id", serviceHandler.Delete)

			admin.GET("/articles", articleHandler.ListAdmin)
			admin.POST("/articles", articleHandler.Create)
			admin.PUT("/articles/:id", articleHandler.Update)
			admin.DELETE("/articles/:id", articleHandler.Delete)

			admin.GET("/reviews", reviewHandler.ListAdmin)
			admin.DELETE("/reviews/:id", reviewHandler.Delete)

			admin.GET("/audit-logs", auditLogsHandler.List)

			admin.GET("/metamorphoses", metamorphosisHandler.List)
			admin.POST("/metamorphoses", metamorphosisHandler.Create)
			admin.PUT("/metamorphoses/:id", metamorphosisHandler.Update)
			admin.DELETE("/metamorphoses/:id", metamorphosisHandler.Delete)
		}
	}
}
