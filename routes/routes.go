package routes

import (
	"net/http"
	"time"

	"brilho/handlers"
	"brilho/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterServiceRoutes registers the lifecycle endpoints. Budgeting,
// payment confirmation, assignment and cancellation are each one transition
// of the engine.
func RegisterServiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.POST("", hb.CreateService)
		api.GET("", hb.ListServices)
		api.GET("/:id", hb.GetService)
		api.POST("/:id/transition", hb.TransitionService)
		api.PUT("/:id/budget", hb.BudgetService)
		api.POST("/:id/approve", hb.ApproveBudget)
		api.POST("/:id/reject", hb.RejectBudget)
		api.POST("/:id/signal-paid", hb.ConfirmSignalPayment)
		api.POST("/:id/final-paid", hb.ConfirmFinalPayment)
		api.PUT("/:id/assign", hb.AssignCollaborator)
		api.POST("/:id/check-in", hb.CheckIn)
		api.POST("/:id/complete", hb.CompleteService)
		api.POST("/:id/cancel", hb.CancelService)
	}
}

// RegisterLedgerRoutes registers the transaction ledger endpoints, all
// admin-token protected.
func RegisterLedgerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/transactions")
	api.Use(middleware.AdminAuthMiddleware())
	{
		api.GET("", hb.ListTransactions)
		api.POST("", hb.CreateTransaction)
		api.PUT("/:id/paid", hb.MarkTransactionPaid)
		api.DELETE("/:id", hb.DeleteTransaction)
	}
}

// RegisterSettingsRoutes registers the platform settings endpoints.
func RegisterSettingsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/settings")
	api.Use(middleware.AdminAuthMiddleware())
	{
		api.GET("", hb.GetSettings)
		api.PUT("", hb.UpdateSettings)
	}
}

// RegisterCollaboratorRoutes registers the collaborator lookup endpoints.
func RegisterCollaboratorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/collaborators")
	{
		api.GET("", hb.ListCollaborators)
		api.GET("/:id", hb.GetCollaborator)
		api.PUT("", middleware.AdminAuthMiddleware(), hb.UpsertCollaborator)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Brilho"})
	})
}

// RegisterRoutes wires CORS and every route group onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterServiceRoutes(r, hb)
	RegisterLedgerRoutes(r, hb)
	RegisterSettingsRoutes(r, hb)
	RegisterCollaboratorRoutes(r, hb)
}
