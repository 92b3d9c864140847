package request

type GenerateQRRequest struct {
	AuctionID string `json:"auctionId" binding:"required"`
}

type ShippingStatusRequest struct {
	ShippingStatus string `json:"shipping_status" binding:"required"`
	TrackingNumber string `json:"tracking_number"`
}

type ShippingAddressRequest struct {
	Address        string `json:"address" binding:"required"`
	RecipientName  string `json:"recipient_name"`
	RecipientPhone string `json:"recipient_phone"`
	Note           string `json:"note"`
}
