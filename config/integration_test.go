package config_test

import (
	"testing"

	"github.com/adobe/commerce-cif-cart-abandonment/config"
	"github.com/stretchr/testify/assert"
)

func validCampaignConfig() *config.CampaignConfig {
	return &config.CampaignConfig{
		PrivateKey:          "key",
		PublicKey:           "key",
		ClientID:            "my-client-id",
		ClientSecret:        "my-client-secret",
		Organization:        "org",
		TransactionalAPI:    "myAPI",
		JWTExchange:         "http://my.jwt.exchange",
		CampaignAPIHost:     "http://my.campaign.host",
		EventID:             "myEvent",
		JWTPayload:          map[string]interface{}{"iss": "org"},
		ProductPageURL:      "http://localhost/product/{{slug}}.html",
		ProductAssetBaseURL: "http://localhost/media",
	}
}

func TestCommerceConfig_Validate(t *testing.T) {
	cfg := &config.CommerceConfig{
		Host:                     "http://my.commerce.cloud",
		AuthToken:                "my-auth-token",
		AnalyticsCartIDDimension: "eVar3",
		AnalyticsEmailDimension:  "eVar4",
	}
	assert.NoError(t, cfg.Validate())
}

func TestCommerceConfig_ValidateRejectsMissingField(t *testing.T) {
	cfg := &config.CommerceConfig{
		Host:      "http://my.commerce.cloud",
		AuthToken: "my-auth-token",
	}
	assert.Error(t, cfg.Validate())
}

func TestCommerceConfig_ValidateRejectsNil(t *testing.T) {
	var cfg *config.CommerceConfig
	assert.Error(t, cfg.Validate())
}

func TestCampaignConfig_Validate(t *testing.T) {
	assert.NoError(t, validCampaignConfig().Validate())
}

func TestCampaignConfig_ValidateRejectsMissingField(t *testing.T) {
	cfg := validCampaignConfig()
	cfg.JWTPayload = nil
	assert.Error(t, cfg.Validate())
}

func TestCampaignConfig_ValidateRejectsNil(t *testing.T) {
	var cfg *config.CampaignConfig
	assert.Error(t, cfg.Validate())
}
