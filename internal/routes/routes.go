package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/threadfolio/threadfolio-api/internal/audit"
	"github.com/threadfolio/threadfolio-api/internal/cache"
	"github.com/threadfolio/threadfolio-api/internal/config"
	"github.com/threadfolio/threadfolio-api/internal/handlers"
	infraRepo "github.com/threadfolio/threadfolio-api/internal/infra/repository"
	"github.com/threadfolio/threadfolio-api/internal/mailer"
	"github.com/threadfolio/threadfolio-api/internal/media"
	"github.com/threadfolio/threadfolio-api/internal/middleware"
	"github.com/threadfolio/threadfolio-api/internal/payments"
	ucAppointment "github.com/threadfolio/threadfolio-api/internal/usecase/appointment"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	cc *cache.Cache,
	storage *media.Storage,
	mail *mailer.Mailer,
	checkout *payments.Checkout,
) {

	// ======================================================
	// 🌍 GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	completeAppointmentUC := ucAppointment.NewCompleteAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(
		appointmentRepo,
	)

	listAppointmentsByMonthUC := ucAppointment.NewListAppointmentsByMonth(
		appointmentRepo,
	)

	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	shopHandler := handlers.NewShopHandler(db, cc)
	shopHoursHandler := handlers.NewShopHoursHandler(db, cc)

	clientHandler := handlers.NewClientHandler(db, auditDispatcher)
	orderHandler := handlers.NewOrderHandler(db, auditDispatcher)
	garmentHandler := handlers.NewGarmentHandler(db, auditDispatcher, storage)
	serviceHandler := handlers.NewServiceHandler(db, auditDispatcher)
	invoiceHandler := handlers.NewInvoiceHandler(db)
	paymentHandler := handlers.NewPaymentHandler(db, auditDispatcher, checkout)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		completeAppointmentUC,
		cancelAppointmentUC,
		listAppointmentsByDateUC,
		listAppointmentsByMonthUC,
	)

	emailHandler := handlers.NewEmailHandler(db, mail)
	auditLogHandler := handlers.NewAuditLogHandler(db)
	systemHandler := handlers.NewSystemHandler(cfg)

	publicHandler := handlers.NewPublicHandler(db, cc, availabilityUC, createAppointmentUC)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// SYSTEM
		// ------------------------------
		api.GET("/system/health", systemHandler.Health)
		api.GET("/system/db-probe", systemHandler.DBProbe)

		// ------------------------------
		// 🌐 PUBLIC BOOKING API
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug", publicHandler.GetShop)
			publicAPI.GET("/:slug/availability", publicHandler.GetAvailability)
			publicAPI.POST("/:slug/appointments", publicHandler.CreateAppointment)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/shop", shopHandler.GetMyShop)
			secured.PATCH("/me/shop", shopHandler.UpdateMyShop)

			secured.GET("/me/shop/hours", shopHoursHandler.Get)
			secured.PUT("/me/shop/hours", shopHoursHandler.Update)

			secured.GET("/me/clients", clientHandler.List)
			secured.POST("/me/clients", clientHandler.Create)
			secured.GET("/me/clients/:id", clientHandler.Get)

			// ------------------------------
			// ORDERS AND INVOICING
			// ------------------------------
			secured.POST("/me/orders", orderHandler.Create)
			secured.GET("/me/orders", orderHandler.List)
			secured.GET("/me/orders/:id", orderHandler.Get)
			secured.PATCH("/me/orders/:id/status", orderHandler.UpdateStatus)

			secured.GET("/me/orders/:id/invoice", invoiceHandler.Get)
			secured.POST("/me/orders/:id/payments", paymentHandler.Record)
			secured.POST("/me/orders/:id/checkout", paymentHandler.CreateCheckout)
			secured.POST("/me/orders/:id/notify-pickup", emailHandler.NotifyPickupReady)

			// ------------------------------
			// GARMENTS
			// ------------------------------
			secured.GET("/me/garments", garmentHandler.List)
			secured.PATCH("/me/garments/:id/stage", garmentHandler.UpdateStage)
			secured.POST("/me/garments/:id/photo", garmentHandler.UploadPhoto)
			secured.DELETE("/me/garments/:id/photo", garmentHandler.DeletePhoto)

			secured.GET("/me/garments/:id/services", serviceHandler.ListForGarment)
			secured.POST("/me/garments/:id/services", serviceHandler.AddToGarment)
			secured.PATCH("/me/services/:id", serviceHandler.Update)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.GET("/me/appointments/month", appointmentHandler.ListByMonth)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/me/appointments/:id/complete", appointmentHandler.Complete)

			secured.POST("/me/email/test", emailHandler.SendTest)
			secured.GET("/me/audit-logs", auditLogHandler.List)
		}
	}
}
