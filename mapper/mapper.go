package mapper

import (
	"strings"

	"github.com/adobe/commerce-cif-cart-abandonment/models"
)

const slugPlaceholder = "{{slug}}"

// undefinedValue stands in for a missing slug or image path so that URL
// construction never fails, matching the upstream event definition. The
// resulting URLs are malformed on purpose.
const undefinedValue = "undefined"

// CampaignMapper maps a commerce cart and an email address to a campaign
// transactional event body.
//
// The mapping may need to be customized to the definition of the
// transactional event in the campaign platform.
type CampaignMapper struct {
	productPageURL      string
	productAssetBaseURL string
}

func NewCampaignMapper(productPageURL, productAssetBaseURL string) *CampaignMapper {
	return &CampaignMapper{
		productPageURL:      productPageURL,
		productAssetBaseURL: productAssetBaseURL,
	}
}

// Map wraps the mapped cart and the recipient email in an event envelope.
func (m *CampaignMapper) Map(cart *models.Cart, email string) *models.TransactionalEvent {
	return &models.TransactionalEvent{
		Email: email,
		Ctx:   m.mapCart(cart),
	}
}

func (m *CampaignMapper) mapCart(cart *models.Cart) models.CampaignCart {
	campaignCart := models.CampaignCart{
		CartID:   cart.ID,
		Products: make([]*models.CampaignProduct, 0, len(cart.Items)),
	}
	if cart.Totals != nil {
		campaignCart.Total = cart.Totals.GrandTotal
		campaignCart.Currency = cart.Totals.BaseCurrencyCode
	}

	// One slot per line item. Items without a matching product keep a nil
	// slot so the product list stays index-aligned with the items.
	for _, item := range cart.Items {
		campaignCart.Products = append(campaignCart.Products, m.mapProduct(item, cart.Products))
	}

	return campaignCart
}

func (m *CampaignMapper) mapProduct(item models.CartItem, products []*models.Product) *models.CampaignProduct {
	var product *models.Product
	for _, p := range products {
		if p != nil && p.SKU == item.SKU {
			product = p
			break
		}
	}
	if product == nil {
		return nil
	}

	var slug string
	for _, attr := range product.CustomAttributes {
		if attr.AttributeCode == "url_key" {
			slug = attr.Value
			break
		}
	}

	var image string
	if len(product.MediaGalleryEntries) > 0 {
		image = product.MediaGalleryEntries[0].File
	} else {
		image = undefinedValue
	}

	pathSlug := slug
	if pathSlug == "" {
		pathSlug = undefinedValue
	}

	return &models.CampaignProduct{
		SKU:      item.SKU,
		Slug:     slug,
		Name:     item.Name,
		Path:     strings.Replace(m.productPageURL, slugPlaceholder, pathSlug, 1),
		Price:    item.Price,
		Quantity: item.Qty,
		Image:    m.productAssetBaseURL + image,
	}
}
