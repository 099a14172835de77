package services

import (
	"fmt"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"github.com/volthome/storefront/app/configs"
	"github.com/volthome/storefront/app/models"
)

// PaymentService creates gateway transactions for orders. Gateway
// notifications/callbacks are handled by the payment provider integration
// outside this service.
type PaymentService struct {
	client *snap.Client
}

func NewPaymentService() *PaymentService {
	return &PaymentService{client: &configs.MidtransClient}
}

func (s *PaymentService) CreateSnapTransaction(order *models.Order) (*snap.Response, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  order.OrderCode,
			GrossAmt: order.GrandTotal.IntPart(),
		},
	}

	if order.Customer != nil {
		req.CustomerDetail = &midtrans.CustomerDetails{
			FName: order.Customer.FirstName,
			LName: order.Customer.LastName,
			Email: order.Customer.Email,
			Phone: order.Customer.Phone,
		}
	}

	resp, err := s.client.CreateTransaction(req)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment transaction: %w", err)
	}
	return resp, nil
}
