package models

// TransactionalEvent is the body posted to the campaign platform's
// transactional messaging API for a single recipient.
type TransactionalEvent struct {
	Email string       `json:"email"`
	Ctx   CampaignCart `json:"ctx"`
}

type CampaignCart struct {
	Total    float64            `json:"total"`
	Currency string             `json:"currency"`
	CartID   int64              `json:"cartId"`
	Products []*CampaignProduct `json:"products"`
}

// CampaignProduct is one mapped line item. Entries without a matching
// catalog record stay nil so the list keeps index parity with the cart items.
type CampaignProduct struct {
	SKU      string  `json:"sku"`
	Slug     string  `json:"slug,omitempty"`
	Name     string  `json:"name,omitempty"`
	Path     string  `json:"path"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image"`
}
