package commerce

import (
	"mindfulmeals-backend/domain"
	"mindfulmeals-backend/internal/utils"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

// PaymentGateway creates the payment invoice for an order. Kept behind an
// interface so the order flow can be tested without the midtrans sandbox.
type PaymentGateway interface {
	CreateInvoice(orderID string, amount float64, email string) (string, error)
}

type midtransGateway struct {
	client snap.Client
}

func NewMidtransGateway() PaymentGateway {
	env := midtrans.Sandbox
	if utils.GetConfig("IsProd") == "true" {
		env = midtrans.Production
	}

	client := snap.Client{}
	client.New(utils.GetConfig("SERVER_KEY"), env)

	return &midtransGateway{client: client}
}

func (g *midtransGateway) CreateInvoice(orderID string, amount float64, email string) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: int64(amount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			Email: email,
		},
	}

	resp, err := g.client.CreateTransaction(req)
	if err != nil {
		return "", domain.ErrPaymentFailed
	}

	return resp.RedirectURL, nil
}
