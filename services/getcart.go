package services

import (
	"context"
	"errors"

	"github.com/adobe/commerce-cif-cart-abandonment/models"
	"go.uber.org/zap"
)

// ErrMalformedEvent marks an event that is present but lacks the fixed
// pipeline message envelope. Unlike an absent event this is a hard failure,
// not a silent skip.
var ErrMalformedEvent = errors.New("event is missing the pipeline message envelope")

// CartFetcher retrieves an enriched cart from the commerce platform.
type CartFetcher interface {
	GetCart(ctx context.Context, cartID string) (*models.Cart, error)
}

// GetCartResult is the successful output of the get-cart action.
type GetCartResult struct {
	Cart   *models.Cart `json:"cart"`
	CartID string       `json:"cartId"`
	Email  string       `json:"email"`
}

// GetCartService extracts the cart id and email from an analytics event and
// fetches the matching cart.
type GetCartService struct {
	client CartFetcher
	logger *zap.Logger
}

func NewGetCartService(client CartFetcher, logger *zap.Logger) *GetCartService {
	return &GetCartService{client: client, logger: logger}
}

// Run walks the validation chain and fetches the cart. A rejection yields a
// nil result with no client call; a malformed event envelope or a failed
// fetch is a hard error.
func (s *GetCartService) Run(ctx context.Context, event *models.AnalyticsEvent, cartIDDimension, emailDimension string) (*GetCartResult, Rejection, error) {
	if event == nil {
		s.logger.Info("Skipping run", zap.String("reason", RejectionNoEvent.String()))
		return nil, RejectionNoEvent, nil
	}

	if event.PipelineMessage == nil || event.PipelineMessage.Trigger == nil {
		return nil, Accepted, ErrMalformedEvent
	}
	dimensions := event.PipelineMessage.Trigger.Enrichments.AnalyticsHitSummary.Dimensions

	// Repeated dimension values are last-write-wins, so the freshest
	// entry is the last element of the data sequence.
	cartIDDim, ok := dimensions[cartIDDimension]
	if !ok || len(cartIDDim.Data) == 0 {
		s.logger.Info("Skipping run", zap.String("reason", RejectionNoCartID.String()))
		return nil, RejectionNoCartID, nil
	}
	cartID := cartIDDim.Data[len(cartIDDim.Data)-1]

	emailDim, ok := dimensions[emailDimension]
	if !ok || len(emailDim.Data) == 0 {
		s.logger.Info("Skipping run", zap.String("reason", RejectionNoEmail.String()))
		return nil, RejectionNoEmail, nil
	}
	email := emailDim.Data[len(emailDim.Data)-1]

	cart, err := s.client.GetCart(ctx, cartID)
	if err != nil {
		return nil, Accepted, err
	}

	return &GetCartResult{
		Cart:   cart,
		CartID: cartID,
		Email:  email,
	}, Accepted, nil
}
