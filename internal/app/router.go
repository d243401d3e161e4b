// internal/app/router.go
package app

import (
	attendanceHandler "gymflow-service/internal/handlers/attendance"
	authHandler "gymflow-service/internal/handlers/auth"
	clientHandler "gymflow-service/internal/handlers/client"
	feeHandler "gymflow-service/internal/handlers/feecollection"
	membershipHandler "gymflow-service/internal/handlers/membership"
	refdataHandler "gymflow-service/internal/handlers/refdata"
	stateHandler "gymflow-service/internal/handlers/state"
	subscriptionHandler "gymflow-service/internal/handlers/subscription"
	wsHandler "gymflow-service/internal/handlers/ws"
	"gymflow-service/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	AuthHandler         *authHandler.AuthHandler
	ClientHandler       *clientHandler.ClientHandler
	MembershipHandler   *membershipHandler.MembershipHandler
	SubscriptionHandler *subscriptionHandler.SubscriptionHandler
	AttendanceHandler   *attendanceHandler.AttendanceHandler
	FeeHandler          *feeHandler.FeeHandler
	StateHandler        *stateHandler.StateHandler
	RefDataHandler      *refdataHandler.RefDataHandler
	WSHandler           *wsHandler.WSHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

func SetupRouter(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/v1")

	// ==================== Health & Metrics ====================
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ==================== WebSocket ====================
	r.GET("/ws/checkins", h.WSHandler.CheckinFeed)

	// ==================== Auth ====================
	authPublic := api.Group("/auth")
	{
		authPublic.POST("/login", h.AuthHandler.Login)
	}

	authProtected := api.Group("/auth")
	authProtected.Use(h.AuthMiddleware.Auth())
	{
		authProtected.POST("/logout", h.AuthHandler.Logout)
		authProtected.GET("/me", h.AuthHandler.Me)
	}
	api.POST("/auth/register", append(h.AuthMiddleware.AdminOnly(), h.AuthHandler.Register)...)

	// ==================== Clients ====================
	clients := api.Group("/clients")
	clients.Use(h.AuthMiddleware.Auth())
	{
		clients.GET("", h.ClientHandler.List)
		clients.GET("/:id", h.ClientHandler.Get)
		clients.GET("/document/:document_number", h.ClientHandler.GetByDocumentNumber)
		clients.GET("/:id/subscriptions", h.ClientHandler.SubscriptionHistory)
		clients.GET("/:id/observations", h.ClientHandler.Observations)
		clients.POST("/:id/observations", h.ClientHandler.AddObservation)
		clients.POST("", h.ClientHandler.Create)
		clients.PUT("/:id", h.ClientHandler.Update)
		clients.DELETE("/:id", h.ClientHandler.Delete)
		clients.POST("/:id/subscription/cancel", h.SubscriptionHandler.Cancel)
	}

	// ==================== Memberships ====================
	memberships := api.Group("/memberships")
	memberships.Use(h.AuthMiddleware.Auth())
	{
		memberships.GET("", h.MembershipHandler.List)
		memberships.GET("/:id", h.MembershipHandler.Get)
	}
	membershipsAdmin := api.Group("/memberships")
	membershipsAdmin.Use(h.AuthMiddleware.AdminOnly()...)
	{
		membershipsAdmin.POST("", h.MembershipHandler.Create)
		membershipsAdmin.PUT("/:id", h.MembershipHandler.Update)
		membershipsAdmin.DELETE("/:id", h.MembershipHandler.Delete)
	}

	// ==================== Subscriptions ====================
	subscriptions := api.Group("/subscriptions")
	subscriptions.Use(h.AuthMiddleware.Auth())
	{
		subscriptions.POST("", h.SubscriptionHandler.Create)
		subscriptions.GET("/current", h.SubscriptionHandler.GetCurrent)
		subscriptions.GET("/:id", h.SubscriptionHandler.Get)
		subscriptions.GET("/:id/attendances", h.AttendanceHandler.History)
		subscriptions.GET("/:id/attendances/weekly-count", h.AttendanceHandler.WeeklyCount)
		subscriptions.GET("/:id/fees", h.FeeHandler.History)
		subscriptions.GET("/:id/payment-status", h.FeeHandler.PaymentStatus)
	}
	subscriptionsAdmin := api.Group("/subscriptions")
	subscriptionsAdmin.Use(h.AuthMiddleware.AdminOnly()...)
	{
		subscriptionsAdmin.PUT("/:id/state/:state", h.SubscriptionHandler.SetState)
	}

	// ==================== Attendance & Fees ====================
	operations := api.Group("")
	operations.Use(h.AuthMiddleware.Auth())
	{
		operations.POST("/attendances/checkin", h.AttendanceHandler.CheckIn)
		operations.POST("/fees", h.FeeHandler.Collect)
	}

	// ==================== States & Reference Data ====================
	refdata := api.Group("")
	refdata.Use(h.AuthMiddleware.Auth())
	{
		refdata.GET("/states", h.StateHandler.List)
		refdata.GET("/genders", h.RefDataHandler.ListGenders)
		refdata.GET("/blood-types", h.RefDataHandler.ListBloodTypes)
		refdata.GET("/client-goals", h.RefDataHandler.ListClientGoals)
	}
	refdataAdmin := api.Group("")
	refdataAdmin.Use(h.AuthMiddleware.AdminOnly()...)
	{
		refdataAdmin.POST("/states", h.StateHandler.Create)
		refdataAdmin.POST("/genders", h.RefDataHandler.CreateGender)
		refdataAdmin.POST("/blood-types", h.RefDataHandler.CreateBloodType)
		refdataAdmin.POST("/client-goals", h.RefDataHandler.CreateClientGoal)
	}
}
