package routes

import (
	"toyauction/internal/adapter/http/handlers"
	"toyauction/internal/adapter/http/middleware"
	"toyauction/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

const PathAdmin = "/admin"

func addAdminRoutes(rg *gin.RouterGroup, h *handlers.AdminHandler, sessions interfaces.ISessionStore) {
	admin := rg.Group(PathAdmin)
	admin.Use(authMiddleware(sessions), middleware.RequireAdmin())
	{
		admin.GET("/auctions", h.ListAuctions)
		admin.POST("/auctions/:id/force-end", h.ForceEndAuction)
		admin.POST("/auctions/force-end-all", h.ForceEndAllActive)

		admin.GET("/payments/pending", h.ListPendingPayments)
		admin.GET("/payments/paid", h.ListPaidPayments)
		admin.GET("/payments/:id", h.GetPayment)
		admin.POST("/payments/:id/approve", h.ApprovePayment)
		admin.POST("/payments/:id/reject", h.RejectPayment)
	}
}
