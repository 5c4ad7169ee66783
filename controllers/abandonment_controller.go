package controllers

import (
	"net/http"

	"github.com/adobe/commerce-cif-cart-abandonment/clients"
	"github.com/adobe/commerce-cif-cart-abandonment/config"
	"github.com/adobe/commerce-cif-cart-abandonment/mapper"
	"github.com/adobe/commerce-cif-cart-abandonment/models"
	"github.com/adobe/commerce-cif-cart-abandonment/services"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

// AbandonmentArgs is the invocation payload of the cart-abandonment action.
type AbandonmentArgs struct {
	Cart   *models.Cart           `json:"cart"`
	Email  string                 `json:"email"`
	Config *config.CampaignConfig `json:"config"`
}

// CampaignSenderFactory builds the campaign client for one invocation's
// configuration. Tests substitute a mock here.
type CampaignSenderFactory func(cfg *config.CampaignConfig) services.CampaignSender

// AbandonmentController handles POST /actions/cart-abandonment.
type AbandonmentController struct {
	logger    *zap.Logger
	newClient CampaignSenderFactory
}

// NewAbandonmentController creates a new AbandonmentController. A nil
// factory falls back to the real campaign client.
func NewAbandonmentController(logger *zap.Logger, newClient CampaignSenderFactory) *AbandonmentController {
	if newClient == nil {
		newClient = func(cfg *config.CampaignConfig) services.CampaignSender {
			return clients.NewCampaignClient(cfg, logger)
		}
	}
	return &AbandonmentController{logger: logger, newClient: newClient}
}

// Handle sends a transactional event to the campaign platform for an
// abandoned cart. A webhook challenge is echoed back without the
// configuration. Rejected carts produce an empty 204 response and no
// upstream call.
func (ac *AbandonmentController) Handle(c *gin.Context) {
	if handleChallenge(c) {
		return
	}

	var args AbandonmentArgs
	if err := c.ShouldBindBodyWith(&args, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}

	// The rejection checks need no configuration, so they run before
	// config validation to keep rejected carts cheap.
	if rejection := services.ValidateAbandonedCart(args.Cart, args.Email, ac.logger); rejection != services.Accepted {
		c.Status(http.StatusNoContent)
		return
	}

	if err := args.Config.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m := mapper.NewCampaignMapper(args.Config.ProductPageURL, args.Config.ProductAssetBaseURL)
	svc := services.NewAbandonmentService(ac.newClient(args.Config), m, ac.logger)

	resp, _, err := svc.Run(c.Request.Context(), args.Cart, args.Email,
		args.Config.JWTPayload, args.Config.EventID)
	if err != nil {
		ac.logger.Error("Failed to send transactional event", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to send transactional event"})
		return
	}

	if resp == nil {
		c.Status(http.StatusOK)
		return
	}
	c.JSON(http.StatusOK, resp)
}
