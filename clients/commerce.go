package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/adobe/commerce-cif-cart-abandonment/config"
	"github.com/adobe/commerce-cif-cart-abandonment/models"
	"go.uber.org/zap"
)

// CommerceClient retrieves cart information from the commerce platform's
// REST API using a fixed bearer token.
type CommerceClient struct {
	host       string
	authToken  string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewCommerceClient creates a new CommerceClient from the invocation config.
func NewCommerceClient(cfg *config.CommerceConfig, logger *zap.Logger) *CommerceClient {
	return &CommerceClient{
		host:      cfg.Host,
		authToken: cfg.AuthToken,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// GetCart returns the cart enriched with totals and per-item product
// records. The base cart and totals requests run concurrently, then one
// product request per line item runs concurrently. Any failed request fails
// the whole call; there is no partial result and no retry.
func (c *CommerceClient) GetCart(ctx context.Context, cartID string) (*models.Cart, error) {
	var (
		cart   *models.Cart
		totals *models.Totals
	)

	errs := make(chan error, 2)
	go func() {
		var err error
		cart, err = c.getBaseCart(ctx, cartID)
		errs <- err
	}()
	go func() {
		var err error
		totals, err = c.getTotals(ctx, cartID)
		errs <- err
	}()
	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			return nil, err
		}
	}
	cart.Totals = totals

	// One product request per line item, repeated SKUs included. The
	// result slice is indexed by item position so product order always
	// matches item order.
	products := make([]*models.Product, len(cart.Items))
	perrs := make(chan error, len(cart.Items))
	for i, item := range cart.Items {
		go func(i int, sku string) {
			p, err := c.getProduct(ctx, sku)
			products[i] = p
			perrs <- err
		}(i, item.SKU)
	}
	for range cart.Items {
		if err := <-perrs; err != nil {
			return nil, err
		}
	}
	cart.Products = products

	c.logger.Debug("Fetched enriched cart",
		zap.String("cart_id", cartID),
		zap.Int("items", len(cart.Items)),
	)
	return cart, nil
}

func (c *CommerceClient) getBaseCart(ctx context.Context, cartID string) (*models.Cart, error) {
	var cart models.Cart
	url := fmt.Sprintf("%s/rest/V1/carts/%s", c.host, cartID)
	if err := c.doGet(ctx, url, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *CommerceClient) getTotals(ctx context.Context, cartID string) (*models.Totals, error) {
	var totals models.Totals
	url := fmt.Sprintf("%s/rest/V1/carts/%s/totals", c.host, cartID)
	if err := c.doGet(ctx, url, &totals); err != nil {
		return nil, err
	}
	return &totals, nil
}

func (c *CommerceClient) getProduct(ctx context.Context, sku string) (*models.Product, error) {
	var product models.Product
	url := fmt.Sprintf("%s/rest/V1/products/%s", c.host, sku)
	if err := c.doGet(ctx, url, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *CommerceClient) doGet(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.authToken)
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("commerce API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("commerce API returned %d for %s", resp.StatusCode, url)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode commerce API response: %w", err)
	}
	return nil
}
