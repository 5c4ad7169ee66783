package services

import (
	"context"

	"github.com/adobe/commerce-cif-cart-abandonment/mapper"
	"github.com/adobe/commerce-cif-cart-abandonment/models"
	"go.uber.org/zap"
)

// CampaignSender authenticates against the campaign platform and delivers
// transactional events.
type CampaignSender interface {
	Authenticate(ctx context.Context, payload map[string]interface{}) (string, error)
	SendTransactionalEvent(ctx context.Context, accessToken, eventID string, event *models.TransactionalEvent) (map[string]interface{}, error)
}

// AbandonmentService validates an abandoned cart and sends it to the
// campaign platform as a transactional event.
type AbandonmentService struct {
	client CampaignSender
	mapper *mapper.CampaignMapper
	logger *zap.Logger
}

func NewAbandonmentService(client CampaignSender, m *mapper.CampaignMapper, logger *zap.Logger) *AbandonmentService {
	return &AbandonmentService{client: client, mapper: m, logger: logger}
}

// ValidateAbandonedCart walks the ordered rejection checks of the
// cart-abandonment action. It is pure apart from logging and never touches
// the network, so callers may run it before building any client.
func ValidateAbandonedCart(cart *models.Cart, email string, logger *zap.Logger) Rejection {
	if cart == nil || email == "" {
		logger.Info("Skipping run", zap.String("reason", RejectionNoCart.String()))
		return RejectionNoCart
	}

	if len(cart.Products) == 0 {
		logger.Info("Cart rejected", zap.String("reason", RejectionEmptyCart.String()))
		return RejectionEmptyCart
	}

	// A reserved order id of exactly zero means no order was created yet.
	if cart.ReservedOrderID != 0 {
		logger.Info("Cart rejected", zap.String("reason", RejectionAlreadyOrdered.String()))
		return RejectionAlreadyOrdered
	}

	if !cart.IsActive {
		logger.Info("Cart rejected", zap.String("reason", RejectionInactiveCart.String()))
		return RejectionInactiveCart
	}

	return Accepted
}

// Run walks the validation chain, authenticates, maps the cart and sends
// the event. Rejections produce no client calls. A failure of the send
// after a successful authentication is not compensated; the token is
// simply discarded.
func (s *AbandonmentService) Run(ctx context.Context, cart *models.Cart, email string, jwtPayload map[string]interface{}, eventID string) (map[string]interface{}, Rejection, error) {
	if rejection := ValidateAbandonedCart(cart, email, s.logger); rejection != Accepted {
		return nil, rejection, nil
	}

	accessToken, err := s.client.Authenticate(ctx, jwtPayload)
	if err != nil {
		return nil, Accepted, err
	}

	event := s.mapper.Map(cart, email)

	resp, err := s.client.SendTransactionalEvent(ctx, accessToken, eventID, event)
	if err != nil {
		return nil, Accepted, err
	}
	return resp, Accepted, nil
}
