package routes

import (
	"toyauction/internal/adapter/http/handlers"
	"toyauction/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

const PathPayments = "/payments"

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.PaymentHandler, sessions interfaces.ISessionStore) {
	payments := rg.Group(PathPayments)
	payments.Use(authMiddleware(sessions))
	{
		payments.POST("/generate-qr", h.GenerateQR)
		payments.POST("/upload-slip/:paymentId", h.UploadSlip)
		payments.GET("/payment-status/:id", h.CheckStatus)
		payments.GET("/slip-by-auction/:auctionId", h.GetSlipByAuction)
		payments.GET("/me", h.ListMine)
		payments.POST("/confirm-payment/by-auction/:auctionId", h.ConfirmPaymentByAuction)
		payments.POST("/shipping-status/:paymentId", h.UpdateShippingStatus)
		payments.POST("/shipping-address/:paymentId", h.UpdateShippingAddress)
		payments.PATCH("/confirm-delivery/:auctionId", h.ConfirmDelivery)
	}
}
