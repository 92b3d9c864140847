package entities

import "time"

// PaymentStatus tracks the proof-of-payment review lifecycle.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusUploaded PaymentStatus = "uploaded"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusRejected PaymentStatus = "rejected"
	PaymentStatusComplete PaymentStatus = "completed"
)

// ShippingStatus is the forward-only shipment sub-state. "completed" is
// reachable only through the buyer's delivery confirmation.

type ShippingStatus string

const (
	ShippingNotSent   ShippingStatus = "not_sent"
	ShippingShipped   ShippingStatus = "shipped"
	ShippingDelivered ShippingStatus = "delivered"
	ShippingCompleted ShippingStatus = "completed"
)

var shippingRank = map[ShippingStatus]int{
	ShippingNotSent:   0,
	ShippingShipped:   1,
	ShippingDelivered: 2,
	ShippingCompleted: 3,
}

// ValidShippingStatus reports whether s is a recognized shipping state.
func ValidShippingStatus(s ShippingStatus) bool {
	_, ok := shippingRank[s]
	return ok
}

// ShippingAdvances reports whether moving from one state to another keeps the
// sub-state monotonic. Re-asserting the current state counts as an advance so
// a tracking number can be corrected without a state change.
func ShippingAdvances(from, to ShippingStatus) bool {
	fr, ok := shippingRank[from]
	if !ok {
		fr = 0
	}
	tr, ok := shippingRank[to]
	if !ok {
		return false
	}
	return tr >= fr
}

// Payment is the permanent transaction record for one winning bidder on one
// auction: QR issuance, slip review, shipment, delivery confirmation.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (auction_id-index): auction_id
//   - GSI2 (user_id-index): user_id
//   - Uniqueness: at most one record with is_paid=false per (auction, user),
//     enforced by a guard item written/removed transactionally alongside the
//     payment.
//
// ShippingAddress, RecipientName and RecipientPhone are snapshot fields taken
// from the buyer's profile at decision time.
type Payment struct {
	ID                  string         `json:"id"`
	AuctionID           string         `json:"auction_id"`
	UserID              string         `json:"user_id"`
	Amount              float64        `json:"amount"`
	QRCode              string         `json:"qr_code"`
	SlipImage           string         `json:"slip_image,omitempty"`
	Status              PaymentStatus  `json:"status"`
	ShippingAddress     string         `json:"shipping_address,omitempty"`
	RecipientName       string         `json:"recipient_name,omitempty"`
	RecipientPhone      string         `json:"recipient_phone,omitempty"`
	ShippingStatus      ShippingStatus `json:"shipping_status"`
	TrackingNumber      string         `json:"tracking_number,omitempty"`
	Note                string         `json:"note,omitempty"`
	IsPaid              bool           `json:"is_paid"`
	PaymentConfirmedAt  *time.Time     `json:"payment_confirmed_at,omitempty"`
	DeliveryConfirmedAt *time.Time     `json:"delivery_confirmed_at,omitempty"`
	ExpiresAt           time.Time      `json:"expires_at"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}
