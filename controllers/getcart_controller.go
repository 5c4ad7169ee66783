package controllers

import (
	"errors"
	"net/http"

	"github.com/adobe/commerce-cif-cart-abandonment/clients"
	"github.com/adobe/commerce-cif-cart-abandonment/config"
	"github.com/adobe/commerce-cif-cart-abandonment/models"
	"github.com/adobe/commerce-cif-cart-abandonment/services"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

// GetCartArgs is the invocation payload of the get-cart action.
type GetCartArgs struct {
	Event  *models.AnalyticsEvent `json:"event"`
	Config *config.CommerceConfig `json:"config"`
}

// CartFetcherFactory builds the commerce client for one invocation's
// configuration. Tests substitute a mock here.
type CartFetcherFactory func(cfg *config.CommerceConfig) services.CartFetcher

// GetCartController handles POST /actions/get-cart.
type GetCartController struct {
	logger    *zap.Logger
	newClient CartFetcherFactory
}

// NewGetCartController creates a new GetCartController. A nil factory falls
// back to the real commerce client.
func NewGetCartController(logger *zap.Logger, newClient CartFetcherFactory) *GetCartController {
	if newClient == nil {
		newClient = func(cfg *config.CommerceConfig) services.CartFetcher {
			return clients.NewCommerceClient(cfg, logger)
		}
	}
	return &GetCartController{logger: logger, newClient: newClient}
}

// Handle receives an analytics event and returns the matching customer
// cart. A webhook challenge is echoed back without the configuration. A
// rejected invocation produces an empty 204 response and no upstream call.
func (gc *GetCartController) Handle(c *gin.Context) {
	if handleChallenge(c) {
		return
	}

	var args GetCartArgs
	if err := c.ShouldBindBodyWith(&args, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}

	if args.Event == nil {
		gc.logger.Info("Skipping run", zap.String("reason", services.RejectionNoEvent.String()))
		c.Status(http.StatusNoContent)
		return
	}

	if err := args.Config.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewGetCartService(gc.newClient(args.Config), gc.logger)
	result, rejection, err := svc.Run(c.Request.Context(), args.Event,
		args.Config.AnalyticsCartIDDimension, args.Config.AnalyticsEmailDimension)
	if err != nil {
		if errors.Is(err, services.ErrMalformedEvent) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		gc.logger.Error("Failed to fetch cart", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to fetch cart"})
		return
	}
	if rejection != services.Accepted {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, result)
}
