package response

import (
	"time"

	"toyauction/internal/domain/entities"
)

type PaymentResponse struct {
	ID                  string     `json:"id"`
	AuctionID           string     `json:"auction_id"`
	UserID              string     `json:"user_id"`
	Amount              float64    `json:"amount"`
	QRCode              string     `json:"qr_code,omitempty"`
	SlipImage           string     `json:"slip_image,omitempty"`
	Status              string     `json:"status"`
	ShippingAddress     string     `json:"shipping_address,omitempty"`
	RecipientName       string     `json:"recipient_name,omitempty"`
	RecipientPhone      string     `json:"recipient_phone,omitempty"`
	ShippingStatus      string     `json:"shipping_status"`
	TrackingNumber      string     `json:"tracking_number,omitempty"`
	Note                string     `json:"note,omitempty"`
	IsPaid              bool       `json:"is_paid"`
	PaymentConfirmedAt  *time.Time `json:"payment_confirmed_at,omitempty"`
	DeliveryConfirmedAt *time.Time `json:"delivery_confirmed_at,omitempty"`
	ExpiresAt           time.Time  `json:"expires_at"`
	CreatedAt           time.Time  `json:"created_at"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                  p.ID,
		AuctionID:           p.AuctionID,
		UserID:              p.UserID,
		Amount:              p.Amount,
		QRCode:              p.QRCode,
		SlipImage:           p.SlipImage,
		Status:              string(p.Status),
		ShippingAddress:     p.ShippingAddress,
		RecipientName:       p.RecipientName,
		RecipientPhone:      p.RecipientPhone,
		ShippingStatus:      string(p.ShippingStatus),
		TrackingNumber:      p.TrackingNumber,
		Note:                p.Note,
		IsPaid:              p.IsPaid,
		PaymentConfirmedAt:  p.PaymentConfirmedAt,
		DeliveryConfirmedAt: p.DeliveryConfirmedAt,
		ExpiresAt:           p.ExpiresAt,
		CreatedAt:           p.CreatedAt,
	}
}

func FromPayments(payments []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p))
	}
	return out
}
