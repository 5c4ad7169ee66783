package models

// Cart is a commerce platform cart enriched with totals and the full
// product record of every line item.
type Cart struct {
	ID              int64      `json:"id"`
	IsActive        bool       `json:"is_active"`
	ReservedOrderID int64      `json:"reserved_order_id,omitempty"`
	Items           []CartItem `json:"items"`
	Totals          *Totals    `json:"totals,omitempty"`
	Products        []*Product `json:"products,omitempty"`
}

type CartItem struct {
	ItemID      int64   `json:"item_id,omitempty"`
	SKU         string  `json:"sku"`
	Name        string  `json:"name,omitempty"`
	Price       float64 `json:"price,omitempty"`
	Qty         int     `json:"qty,omitempty"`
	ProductType string  `json:"product_type,omitempty"`
}

type Totals struct {
	GrandTotal       float64 `json:"grand_total"`
	BaseCurrencyCode string  `json:"base_currency_code"`
}

// Product is the catalog record behind a line item's SKU.
type Product struct {
	SKU                 string            `json:"sku"`
	Name                string            `json:"name,omitempty"`
	Price               float64           `json:"price,omitempty"`
	CustomAttributes    []CustomAttribute `json:"custom_attributes,omitempty"`
	MediaGalleryEntries []MediaEntry      `json:"media_gallery_entries,omitempty"`
}

type CustomAttribute struct {
	AttributeCode string `json:"attribute_code"`
	Value         string `json:"value"`
}

type MediaEntry struct {
	File string `json:"file"`
}
