package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberflow/api/internal/cache"
	"github.com/barberflow/api/internal/config"
	domain "github.com/barberflow/api/internal/domain/booking"
	"github.com/barberflow/api/internal/handlers"
	infraRepo "github.com/barberflow/api/internal/infra/repository"
	"github.com/barberflow/api/internal/middleware"
	"github.com/barberflow/api/internal/models"
	"github.com/barberflow/api/internal/notify"
	"github.com/barberflow/api/internal/reminder"
	"github.com/barberflow/api/internal/storage"
	ucBooking "github.com/barberflow/api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	slotLocker := domain.NewSlotLocker()

	notifyStore := notify.NewStore(db)
	notifyDispatcher := notify.NewDispatcher(notifyStore)

	redisClient := cache.NewRedis(cfg)
	themeStore := cache.NewThemeStore(redisClient)

	uploader := storage.NewUploader(cfg)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		notifyDispatcher,
		slotLocker,
		cfg.AdminUserID,
	)

	confirmBookingUC := ucBooking.NewConfirmBooking(
		bookingRepo,
		notifyDispatcher,
	)

	cancelBookingUC := ucBooking.NewCancelBooking(
		bookingRepo,
		notifyDispatcher,
	)

	completeBookingUC := ucBooking.NewCompleteBooking(
		bookingRepo,
	)

	listCustomerBookingsUC := ucBooking.NewListCustomerBookings(
		bookingRepo,
	)

	barberScheduleUC := ucBooking.NewBarberSchedule(
		bookingRepo,
	)

	listAllBookingsUC := ucBooking.NewListAllBookings(
		bookingRepo,
	)

	toggleDayOffUC := ucBooking.NewToggleDayOff(
		bookingRepo,
	)

	// ======================================================
	// BACKGROUND
	// ======================================================
	reminder.NewService(bookingRepo, notifyDispatcher).StartScheduler()

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	bookingHandler := handlers.NewBookingHandler(
		db,
		createBookingUC,
		confirmBookingUC,
		cancelBookingUC,
		completeBookingUC,
		listCustomerBookingsUC,
		barberScheduleUC,
		listAllBookingsUC,
	)

	serviceHandler := handlers.NewServiceHandler(db)
	barberHandler := handlers.NewBarberHandler(db, toggleDayOffUC)
	notificationHandler := handlers.NewNotificationHandler(notifyStore)
	galleryHandler := handlers.NewGalleryHandler(db, uploader)
	themeHandler := handlers.NewThemeHandler(themeStore)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH (role-selection stub)
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/theme", themeHandler.Get)
			secured.PUT("/me/theme", themeHandler.Set)

			secured.GET("/me/notifications", notificationHandler.List)
			secured.POST("/me/notifications/read", notificationHandler.MarkAllRead)

			secured.GET("/services", serviceHandler.List)
			secured.GET("/barbers", barberHandler.List)
			secured.GET("/gallery", galleryHandler.List)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.POST("/bookings",
				middleware.RequireRole(models.RoleCustomer),
				bookingHandler.Create)
			secured.GET("/me/bookings",
				middleware.RequireRole(models.RoleCustomer),
				bookingHandler.ListMine)

			secured.GET("/me/schedule",
				middleware.RequireRole(models.RoleBarber),
				bookingHandler.Schedule)
			secured.POST("/me/off-days/toggle",
				middleware.RequireRole(models.RoleBarber),
				barberHandler.ToggleDayOff)

			secured.PATCH("/bookings/:id/confirm",
				middleware.RequireRole(models.RoleBarber, models.RoleAdmin),
				bookingHandler.Confirm)
			secured.PATCH("/bookings/:id/cancel",
				bookingHandler.Cancel)
			secured.PATCH("/bookings/:id/complete",
				middleware.RequireRole(models.RoleBarber, models.RoleAdmin),
				bookingHandler.Complete)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.GET("/bookings", bookingHandler.ListAll)

				admin.POST("/services", serviceHandler.Create)
				admin.DELETE("/services/:id", serviceHandler.Delete)

				admin.POST("/barbers", barberHandler.Create)
				admin.DELETE("/barbers/:id", barberHandler.Delete)

				admin.POST("/gallery", galleryHandler.Add)
				admin.DELETE("/gallery/:id", galleryHandler.Delete)
			}
		}
	}
}
