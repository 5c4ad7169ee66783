package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/adobe/commerce-cif-cart-abandonment/config"
	"github.com/adobe/commerce-cif-cart-abandonment/models"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

const jwtExpiry = 10 * time.Minute

// CampaignClient authenticates against the campaign platform and posts
// transactional events to it.
type CampaignClient struct {
	privateKey       string
	publicKey        string
	clientID         string
	clientSecret     string
	organization     string
	transactionalAPI string
	jwtExchange      string
	campaignAPIHost  string
	httpClient       *http.Client
	logger           *zap.Logger
}

// NewCampaignClient creates a new CampaignClient from the invocation config.
func NewCampaignClient(cfg *config.CampaignConfig, logger *zap.Logger) *CampaignClient {
	return &CampaignClient{
		privateKey:       cfg.PrivateKey,
		publicKey:        cfg.PublicKey,
		clientID:         cfg.ClientID,
		clientSecret:     cfg.ClientSecret,
		organization:     cfg.Organization,
		transactionalAPI: cfg.TransactionalAPI,
		jwtExchange:      cfg.JWTExchange,
		campaignAPIHost:  cfg.CampaignAPIHost,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Authenticate signs the payload into a JWT, verifies it against the public
// key and exchanges it for an access token. Any stage failing aborts the
// whole call; later stages are not reached and no credential state is kept.
func (c *CampaignClient) Authenticate(ctx context.Context, payload map[string]interface{}) (string, error) {
	token, err := c.signJWT(payload)
	if err != nil {
		return "", fmt.Errorf("failed to sign JWT: %w", err)
	}

	if err := c.verifyJWT(token); err != nil {
		return "", fmt.Errorf("failed to verify JWT: %w", err)
	}

	accessToken, err := c.exchangeJWT(ctx, token)
	if err != nil {
		return "", err
	}
	return accessToken, nil
}

func (c *CampaignClient) signJWT(payload map[string]interface{}) (string, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(c.privateKey))
	if err != nil {
		return "", err
	}

	claims := jwt.MapClaims{}
	for k, v := range payload {
		claims[k] = v
	}
	claims["exp"] = time.Now().Add(jwtExpiry).Unix()

	return jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
}

func (c *CampaignClient) verifyJWT(tokenStr string) error {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(c.publicKey))
	if err != nil {
		return err
	}

	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return key, nil
	})
	if err != nil {
		return err
	}
	if !token.Valid {
		return fmt.Errorf("token is not valid")
	}
	return nil
}

func (c *CampaignClient) exchangeJWT(ctx context.Context, tokenStr string) (string, error) {
	form := url.Values{}
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)
	form.Set("jwt_token", tokenStr)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.jwtExchange,
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("JWT exchange request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("JWT exchange returned %s: %s", resp.Status, string(body))
	}

	var exchange struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&exchange); err != nil {
		return "", fmt.Errorf("failed to decode JWT exchange response: %w", err)
	}
	return exchange.AccessToken, nil
}

// SendTransactionalEvent posts the mapped event body to the campaign
// platform's transactional messaging API and returns the raw response.
func (c *CampaignClient) SendTransactionalEvent(ctx context.Context, accessToken, eventID string, event *models.TransactionalEvent) (map[string]interface{}, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}

	apiURL := fmt.Sprintf("%s/%s/campaign/%s/%s",
		c.campaignAPIHost, c.organization, c.transactionalAPI, eventID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("X-Api-Key", c.clientID)
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Content-Type", "application/json;charset=utf-8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("transactional event request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("transactional event API returned %s: %s", resp.Status, string(respBody))
	}

	c.logger.Info("Transactional event sent", zap.String("event_id", eventID))

	if len(respBody) == 0 {
		return nil, nil
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(respBody, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode transactional event response: %w", err)
	}
	return raw, nil
}
