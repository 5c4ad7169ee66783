package controllers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/adobe/commerce-cif-cart-abandonment/config"
	"github.com/adobe/commerce-cif-cart-abandonment/controllers"
	"github.com/adobe/commerce-cif-cart-abandonment/models"
	"github.com/adobe/commerce-cif-cart-abandonment/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// ---- mock campaign sender ----

type mockSender struct {
	accessToken string
	authErr     error
	sendResp    map[string]interface{}
	sendErr     error

	authCalls int
	sendCalls int
	sentEvent *models.TransactionalEvent
}

func (m *mockSender) Authenticate(_ context.Context, _ map[string]interface{}) (string, error) {
	m.authCalls++
	return m.accessToken, m.authErr
}

func (m *mockSender) SendTransactionalEvent(_ context.Context, _, _ string, event *models.TransactionalEvent) (map[string]interface{}, error) {
	m.sendCalls++
	m.sentEvent = event
	return m.sendResp, m.sendErr
}

// ---- helpers ----

func abandonmentRouter(sender *mockSender) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctrl := controllers.NewAbandonmentController(zap.NewNop(), func(cfg *config.CampaignConfig) services.CampaignSender {
		return sender
	})
	r.POST("/actions/cart-abandonment", ctrl.Handle)
	return r
}

func abandonmentBody() map[string]interface{} {
	return map[string]interface{}{
		"cart": map[string]interface{}{
			"id":        1,
			"is_active": true,
			"items": []map[string]interface{}{
				{"sku": "A", "qty": 1, "price": 10},
			},
			"totals": map[string]interface{}{
				"grand_total":        10,
				"base_currency_code": "USD",
			},
			"products": []map[string]interface{}{
				{"sku": "A"},
			},
		},
		"email": "user@domain.com",
		"config": map[string]interface{}{
			"privateKey":          "key",
			"publicKey":           "key",
			"clientId":            "my-client-id",
			"clientSecret":        "my-client-secret",
			"organization":        "org",
			"transactionalApi":    "myAPI",
			"jwtExchange":         "http://my.jwt.exchange",
			"campaignApiHost":     "http://my.campaign.host",
			"eventId":             "myEvent",
			"jwtPayload":          map[string]interface{}{"iss": "org"},
			"productPageUrl":      "http://localhost/product/{{slug}}.html",
			"productAssetBaseUrl": "http://localhost/media",
		},
	}
}

// ---- tests ----

func TestAbandonmentAction_ChallengeEchoStripsConfig(t *testing.T) {
	sender := &mockSender{}
	r := abandonmentRouter(sender)

	w := postJSON(t, r, "/actions/cart-abandonment", map[string]interface{}{
		"config":    map[string]interface{}{"super": "secret"},
		"challenge": "abc",
		"sample":    "test",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "abc", resp["challenge"])
	assert.Equal(t, "test", resp["sample"])
	assert.NotContains(t, resp, "config")
	assert.Zero(t, sender.authCalls)
}

func TestAbandonmentAction_SkipsWithoutCart(t *testing.T) {
	sender := &mockSender{}
	r := abandonmentRouter(sender)

	w := postJSON(t, r, "/actions/cart-abandonment", map[string]interface{}{
		"email": "user@domain.com",
	})

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())
	assert.Zero(t, sender.authCalls)
	assert.Zero(t, sender.sendCalls)
}

func TestAbandonmentAction_RejectsEmptyCart(t *testing.T) {
	sender := &mockSender{}
	r := abandonmentRouter(sender)

	body := abandonmentBody()
	body["cart"].(map[string]interface{})["products"] = []map[string]interface{}{}
	w := postJSON(t, r, "/actions/cart-abandonment", body)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Zero(t, sender.authCalls)
}

func TestAbandonmentAction_RejectsReservedOrder(t *testing.T) {
	sender := &mockSender{}
	r := abandonmentRouter(sender)

	body := abandonmentBody()
	body["cart"].(map[string]interface{})["reserved_order_id"] = 123
	w := postJSON(t, r, "/actions/cart-abandonment", body)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Zero(t, sender.authCalls)
}

func TestAbandonmentAction_RejectsInactiveCart(t *testing.T) {
	sender := &mockSender{}
	r := abandonmentRouter(sender)

	body := abandonmentBody()
	body["cart"].(map[string]interface{})["is_active"] = false
	w := postJSON(t, r, "/actions/cart-abandonment", body)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Zero(t, sender.authCalls)
}

func TestAbandonmentAction_MissingConfigIsBadRequest(t *testing.T) {
	sender := &mockSender{}
	r := abandonmentRouter(sender)

	body := abandonmentBody()
	delete(body, "config")
	w := postJSON(t, r, "/actions/cart-abandonment", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, sender.authCalls)
}

func TestAbandonmentAction_SendsTransactionalEvent(t *testing.T) {
	sender := &mockSender{
		accessToken: "sample-access-token",
		sendResp:    map[string]interface{}{"status": "queued"},
	}
	r := abandonmentRouter(sender)

	w := postJSON(t, r, "/actions/cart-abandonment", abandonmentBody())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "queued", resp["status"])

	assert.Equal(t, 1, sender.authCalls)
	assert.Equal(t, 1, sender.sendCalls)
	require.NotNil(t, sender.sentEvent)
	assert.Equal(t, "user@domain.com", sender.sentEvent.Email)
}

func TestAbandonmentAction_AuthFailureIsBadGateway(t *testing.T) {
	sender := &mockSender{authErr: errors.New("JWT exchange returned 401")}
	r := abandonmentRouter(sender)

	w := postJSON(t, r, "/actions/cart-abandonment", abandonmentBody())

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Zero(t, sender.sendCalls)
}
