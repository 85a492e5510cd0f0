package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/divinedarshan/divine-darshan-backend/config"
	"github.com/divinedarshan/divine-darshan-backend/database"
	"github.com/divinedarshan/divine-darshan-backend/internal/auditlog"
	"github.com/divinedarshan/divine-darshan-backend/internal/auth"
	"github.com/divinedarshan/divine-darshan-backend/internal/booking"
	"github.com/divinedarshan/divine-darshan-backend/internal/content"
	"github.com/divinedarshan/divine-darshan-backend/internal/payment"
	"github.com/divinedarshan/divine-darshan-backend/internal/service"
	"github.com/divinedarshan/divine-darshan-backend/internal/subscription"
	"github.com/divinedarshan/divine-darshan-backend/internal/temple"
	"github.com/divinedarshan/divine-darshan-backend/internal/user"
	"github.com/divinedarshan/divine-darshan-backend/middleware"
	"github.com/divinedarshan/divine-darshan-backend/utils"
)

func Setup(r *gin.Engine, cfg *config.Config) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	api := r.Group("/api")
	api.Use(middleware.RateLimiter())
	api.Use(middleware.ClientIPMiddleware())

	mailer := utils.NewMailer(cfg)

	auditRepo := auditlog.NewRepository(database.DB)
	auditSvc := auditlog.NewService(auditRepo)
	auditHandler := auditlog.NewHandler(auditSvc)

	authRepo := auth.NewRepository(database.DB)
	authSvc := auth.NewService(authRepo, cfg, mailer)
	authHandler := auth.NewHandler(authSvc)

	templeRepo := temple.NewRepository(database.DB)
	templeSvc := temple.NewService(templeRepo)
	templeHandler := temple.NewHandler(templeSvc)

	serviceRepo := service.NewRepository(database.DB)
	serviceSvc := service.NewService(serviceRepo)
	serviceHandler := service.NewHandler(serviceSvc)

	contentRepo := content.NewRepository(database.DB)
	contentSvc := content.NewService(contentRepo)
	contentHandler := content.NewHandler(contentSvc)

	bookingRepo := booking.NewRepository(database.DB)
	bookingSvc := booking.NewService(bookingRepo, auditSvc, mailer)
	bookingHandler := booking.NewHandler(bookingSvc)

	subscriptionRepo := subscription.NewRepository(database.DB)
	subscriptionSvc := subscription.NewService(subscriptionRepo, auditSvc)
	subscriptionHandler := subscription.NewHandler(subscriptionSvc)

	paymentSvc := payment.NewService(payment.NewRazorpayGateway(cfg), cfg, auditSvc, bookingRepo, subscriptionRepo)
	paymentHandler := payment.NewHandler(paymentSvc)

	userRepo := user.NewRepository(database.DB)
	userSvc := user.NewService(userRepo, bookingRepo, auditSvc)
	userHandler := user.NewHandler(userSvc)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/forgot-password", authHandler.ForgotPassword)
		authGroup.POST("/reset-password", authHandler.ResetPassword)
		authGroup.GET("/me", middleware.AuthMiddleware(cfg), authHandler.Me)
	}

	// The gateway calls the webhook directly; it authenticates with its
	// signature, not a bearer token.
	api.POST("/payments/webhook", paymentHandler.Webhook)

	// Public catalogue
	api.GET("/temples", templeHandler.List)
	api.GET("/temples/:id", templeHandler.Get)
	api.GET("/services", serviceHandler.List)
	api.GET("/content/testimonials", contentHandler.ListTestimonials)
	api.GET("/content/seasonalevent", contentHandler.GetSeasonalEvent)

	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg))

	adminOnly := middleware.Authorize(middleware.RoleAdmin)

	protected.POST("/payments/create-order", paymentHandler.CreateOrder)

	protected.POST("/temples", adminOnly, templeHandler.Create)
	protected.PUT("/temples/:id", middleware.Authorize(middleware.RoleAdmin, middleware.RoleTempleManager), templeHandler.Update)
	protected.DELETE("/temples/:id", adminOnly, templeHandler.Delete)

	protected.POST("/services", adminOnly, serviceHandler.Create)
	protected.PUT("/services/:id", adminOnly, serviceHandler.Update)
	protected.DELETE("/services/:id", adminOnly, serviceHandler.Delete)

	protected.POST("/content/testimonials", adminOnly, contentHandler.CreateTestimonial)
	protected.PUT("/content/testimonials/:id", adminOnly, contentHandler.UpdateTestimonial)
	protected.DELETE("/content/testimonials/:id", adminOnly, contentHandler.DeleteTestimonial)
	protected.PUT("/content/seasonalevent", adminOnly, contentHandler.UpdateSeasonalEvent)

	protected.POST("/bookings", bookingHandler.Create)
	protected.GET("/bookings", adminOnly, bookingHandler.All)
	protected.GET("/bookings/my-bookings", bookingHandler.MyBookings)
	protected.GET("/bookings/all", adminOnly, bookingHandler.All)
	protected.GET("/bookings/export", adminOnly, bookingHandler.Export)
	protected.PATCH("/bookings/:id/complete", adminOnly, bookingHandler.Complete)
	protected.GET("/bookings/:id/receipt", bookingHandler.Receipt)

	protected.POST("/subscriptions", subscriptionHandler.Create)
	protected.GET("/subscriptions/my-subscriptions", subscriptionHandler.MySubscriptions)
	protected.GET("/subscriptions/all", adminOnly, subscriptionHandler.All)
	protected.PUT("/subscriptions/:id/cancel", subscriptionHandler.Cancel)

	protected.GET("/users", adminOnly, userHandler.List)
	protected.POST("/users", adminOnly, userHandler.Create)
	protected.PUT("/users/:id", userHandler.Update)
	protected.DELETE("/users/:id", adminOnly, userHandler.Delete)

	protected.GET("/auditlogs", adminOnly, auditHandler.List)
}
