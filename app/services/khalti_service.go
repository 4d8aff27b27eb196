package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
	"github.com/ssapkota/hamropasal/app/models"
)

var (
	ErrPaymentInitiation = errors.New("payment initiation failed")

	paisaPerRupee = decimal.NewFromInt(100)
)

// PaymentGateway is the opaque external collaborator that checkout
// hands an order to. Initiate returns the URL the customer is
// redirected to; Verify resolves a callback token into a final
// outcome.
type PaymentGateway interface {
	Initiate(ctx context.Context, order *models.Order, returnURL string) (redirectURL string, token string, err error)
	Verify(ctx context.Context, token string) (*VerifyResult, error)
}

type VerifyResult struct {
	Success       bool
	TransactionID string
	// AmountPaisa is what the gateway says was actually paid; callers
	// compare it against the order total before marking the order paid.
	AmountPaisa int64
}

// RupeesToPaisa converts a rupee amount to the integer paisa the
// gateway wire format uses.
func RupeesToPaisa(amount decimal.Decimal) int64 {
	return amount.Mul(paisaPerRupee).IntPart()
}

// KhaltiService talks to the Khalti ePayment API. Amounts on the wire
// are in paisa.
type KhaltiService struct {
	client    *resty.Client
	secretKey string
	appURL    string
}

type khaltiInitiateRequest struct {
	ReturnURL         string `json:"return_url"`
	WebsiteURL        string `json:"website_url"`
	Amount            int64  `json:"amount"`
	PurchaseOrderID   string `json:"purchase_order_id"`
	PurchaseOrderName string `json:"purchase_order_name"`
}

type khaltiInitiateResponse struct {
	Pidx       string `json:"pidx"`
	PaymentURL string `json:"payment_url"`
	ExpiresAt  string `json:"expires_at"`
}

type khaltiLookupResponse struct {
	Pidx          string `json:"pidx"`
	TotalAmount   int64  `json:"total_amount"`
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id"`
}

func NewKhaltiService(baseURL, secretKey, appURL string) *KhaltiService {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Authorization", "Key "+secretKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	return &KhaltiService{
		client:    client,
		secretKey: secretKey,
		appURL:    appURL,
	}
}

func (s *KhaltiService) Initiate(ctx context.Context, order *models.Order, returnURL string) (string, string, error) {
	payload := khaltiInitiateRequest{
		ReturnURL:         returnURL,
		WebsiteURL:        s.appURL,
		Amount:            RupeesToPaisa(order.Total),
		PurchaseOrderID:   order.ID,
		PurchaseOrderName: order.ProductName,
	}

	var result khaltiInitiateResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&result).
		Post("/epayment/initiate/")
	if err != nil {
		return "", "", fmt.Errorf("khalti initiate request failed: %w", err)
	}
	if resp.IsError() {
		log.Printf("KhaltiService: initiate returned %s for order %s: %s", resp.Status(), order.ID, resp.String())
		return "", "", ErrPaymentInitiation
	}
	if result.PaymentURL == "" || result.Pidx == "" {
		return "", "", ErrPaymentInitiation
	}

	return result.PaymentURL, result.Pidx, nil
}

func (s *KhaltiService) Verify(ctx context.Context, token string) (*VerifyResult, error) {
	var result khaltiLookupResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(map[string]string{"pidx": token}).
		SetResult(&result).
		Post("/epayment/lookup/")
	if err != nil {
		return nil, fmt.Errorf("khalti lookup request failed: %w", err)
	}
	if resp.IsError() {
		log.Printf("KhaltiService: lookup returned %s for pidx %s: %s", resp.Status(), token, resp.String())
		return nil, fmt.Errorf("khalti lookup returned %s", resp.Status())
	}

	return &VerifyResult{
		Success:       result.Status == "Completed",
		TransactionID: result.TransactionID,
		AmountPaisa:   result.TotalAmount,
	}, nil
}
