package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// Gateway creates payment intents for bookings.
type Gateway interface {
	CreateIntent(ctx context.Context, req IntentRequest) (*Intent, error)
}

// IntentRequest describes a charge in minor currency units.
type IntentRequest struct {
	Amount   int64
	Currency string
	Metadata map[string]string
}

// Intent is the created payment intent.
type Intent struct {
	ID           string
	ClientSecret string
	Amount       int64
	Currency     string
}

// StripeGateway implements Gateway on the Stripe PaymentIntents API.
type StripeGateway struct{}

// NewStripeGateway sets the global Stripe key. It returns nil when key is
// empty so callers can treat payments as unconfigured.
func NewStripeGateway(key string) Gateway {
	if key == "" {
		return nil
	}
	stripe.Key = key
	return &StripeGateway{}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, req IntentRequest) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.Amount),
		Currency: stripe.String(req.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe: failed to create payment intent: %w", err)
	}
	return &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
	}, nil
}
