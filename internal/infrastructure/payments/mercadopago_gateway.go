package payments

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"time"

	"freelanceflow/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway resolves Mercado Pago webhook events into ledger payment
// events by fetching the referenced payment from the provider.
//
// Mock mode (PAYMENT_GATEWAY_MOCK) skips the provider call and builds the
// event from the webhook payload itself, mirroring the fields the provider
// would return.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IPaymentEventSource = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, mockMode bool) (*MercadoPagoGateway, error) {
	if mockMode {
		log.Printf("[webhook][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[webhook][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[webhook][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[webhook][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

// providerPayment is the subset of the provider response the ledger needs.
// The sdk response is round-tripped through JSON so only stable wire field
// names are relied on.
type providerPayment struct {
	Status            string  `json:"status"`
	TransactionAmount float64 `json:"transaction_amount"`
	ExternalReference string  `json:"external_reference"`
	PaymentMethodID   string  `json:"payment_method_id"`
}

func (g *MercadoPagoGateway) ResolvePayment(ctx context.Context, providerPaymentID string, rawPayload json.RawMessage) (interfaces.PaymentEvent, error) {
	if g != nil && g.mockMode {
		var pp providerPayment
		if len(rawPayload) > 0 && json.Valid(rawPayload) {
			_ = json.Unmarshal(rawPayload, &pp)
		}
		if pp.Status == "" {
			pp.Status = "approved"
		}
		log.Printf("[webhook][gateway] mock resolve provider_payment_id=%s status=%s", providerPaymentID, pp.Status)
		return eventFromProviderPayment(providerPaymentID, pp), nil
	}

	if g == nil || g.client == nil {
		return interfaces.PaymentEvent{}, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(providerPaymentID)
	if err != nil {
		return interfaces.PaymentEvent{}, err
	}

	resp, err := g.client.Get(ctx, id)
	if err != nil {
		log.Printf("[webhook][gateway] sdk get failed provider_payment_id=%s err=%v", providerPaymentID, err)
		return interfaces.PaymentEvent{}, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return interfaces.PaymentEvent{}, err
	}
	var pp providerPayment
	if err := json.Unmarshal(b, &pp); err != nil {
		return interfaces.PaymentEvent{}, err
	}
	log.Printf("[webhook][gateway] resolved provider_payment_id=%s status=%s amount=%.2f", providerPaymentID, pp.Status, pp.TransactionAmount)

	return eventFromProviderPayment(providerPaymentID, pp), nil
}

func eventFromProviderPayment(id string, pp providerPayment) interfaces.PaymentEvent {
	return interfaces.PaymentEvent{
		ProviderPaymentID: id,
		ExternalReference: pp.ExternalReference,
		Amount:            pp.TransactionAmount,
		Status:            pp.Status,
		Method:            pp.PaymentMethodID,
		Date:              time.Now().UTC(),
	}
}
