package payments

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/threadfolio/threadfolio-api/internal/config"
)

// Checkout creates hosted-checkout preferences with Mercado Pago. Card data
// never touches this service; the client is redirected to the gateway.
type Checkout struct {
	client preference.Client
}

type CheckoutLink struct {
	PreferenceID string `json:"preference_id"`
	InitPoint    string `json:"init_point"`
}

// ErrNotConfigured is returned when MP_ACCESS_TOKEN is absent.
var ErrNotConfigured = fmt.Errorf("payment gateway not configured")

func New(cfg *config.Config) (*Checkout, error) {
	if !cfg.PaymentsConfigured() {
		return &Checkout{}, nil
	}

	mpCfg, err := mpconfig.New(cfg.MPAccessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}

	return &Checkout{client: preference.NewClient(mpCfg)}, nil
}

func (c *Checkout) Configured() bool {
	return c.client != nil
}

// CreateLink builds a single-item preference for the amount still due on an
// order. amountCents is converted to the gateway's decimal representation
// at the last possible moment.
func (c *Checkout) CreateLink(
	ctx context.Context,
	externalRef string,
	title string,
	amountCents int64,
) (*CheckoutLink, error) {

	if c.client == nil {
		return nil, ErrNotConfigured
	}
	if amountCents <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}

	req := preference.Request{
		ExternalReference: externalRef,
		Items: []preference.ItemRequest{
			{
				Title:     title,
				Quantity:  1,
				UnitPrice: float64(amountCents) / 100,
			},
		},
	}

	resp, err := c.client.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create preference: %w", err)
	}

	return &CheckoutLink{
		PreferenceID: resp.ID,
		InitPoint:    resp.InitPoint,
	}, nil
}
