package entities

// Address is one shipping address in a buyer's address book.

type Address struct {
	Label       string `json:"label"`
	FullAddress string `json:"full_address"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	IsDefault   bool   `json:"is_default"`
}

// Profile holds the contact/address data the payment engine reads when
// synthesizing shipping snapshots. The profile store is owned by the account
// service; this service treats it as read-only input.
//
// Storage model (DynamoDB):
//   - PK: user_id

type Profile struct {
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	PromptPayID string    `json:"promptpay_id,omitempty"`
	Addresses   []Address `json:"addresses,omitempty"`
}

// DefaultAddress returns the default address, falling back to the first one.
func (p Profile) DefaultAddress() (Address, bool) {
	for _, a := range p.Addresses {
		if a.IsDefault {
			return a, true
		}
	}
	if len(p.Addresses) > 0 {
		return p.Addresses[0], true
	}
	return Address{}, false
}

// PayoutTarget resolves the seller's PromptPay receiving identifier.
func (p Profile) PayoutTarget() string {
	if p.PromptPayID != "" {
		return p.PromptPayID
	}
	return p.Phone
}
