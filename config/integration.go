package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// CommerceConfig is the per-invocation configuration of the get-cart action.
// Every field is required; nothing is defaulted in code so that a missing
// value fails the invocation before any request is made.
type CommerceConfig struct {
	Host                     string `json:"host" validate:"required"`
	AuthToken                string `json:"authToken" validate:"required"`
	AnalyticsCartIDDimension string `json:"analyticsCartIdDimension" validate:"required"`
	AnalyticsEmailDimension  string `json:"analyticsEMailDimension" validate:"required"`
}

// Validate checks that all required fields are set.
func (c *CommerceConfig) Validate() error {
	if c == nil {
		return fmt.Errorf("missing commerce configuration")
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid commerce configuration: %w", err)
	}
	return nil
}

// CampaignConfig is the per-invocation configuration of the cart-abandonment
// action. The key pair is PEM-encoded; jwtPayload is passed to the JWT
// exchange as signed claims without interpretation.
type CampaignConfig struct {
	PrivateKey          string                 `json:"privateKey" validate:"required"`
	PublicKey           string                 `json:"publicKey" validate:"required"`
	ClientID            string                 `json:"clientId" validate:"required"`
	ClientSecret        string                 `json:"clientSecret" validate:"required"`
	Organization        string                 `json:"organization" validate:"required"`
	TransactionalAPI    string                 `json:"transactionalApi" validate:"required"`
	JWTExchange         string                 `json:"jwtExchange" validate:"required"`
	CampaignAPIHost     string                 `json:"campaignApiHost" validate:"required"`
	EventID             string                 `json:"eventId" validate:"required"`
	JWTPayload          map[string]interface{} `json:"jwtPayload" validate:"required"`
	ProductPageURL      string                 `json:"productPageUrl" validate:"required"`
	ProductAssetBaseURL string                 `json:"productAssetBaseUrl" validate:"required"`
}

// Validate checks that all required fields are set.
func (c *CampaignConfig) Validate() error {
	if c == nil {
		return fmt.Errorf("missing campaign configuration")
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid campaign configuration: %w", err)
	}
	return nil
}
