package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetVendors  = "vendors retrieved successfully"
	MessageSuccessGetProducts = "products retrieved successfully"
	MessageSuccessCreateOrder = "order created successfully"
	MessageSuccessGetOrder    = "order retrieved successfully"
	MessageSuccessWebhook     = "payment notification processed"

	MessageFailedGetVendors  = "failed to retrieve vendors"
	MessageFailedGetProducts = "failed to retrieve products"
	MessageFailedCreateOrder = "failed to create order"
	MessageFailedGetOrder    = "failed to retrieve order"
	MessageFailedWebhook     = "failed to process payment notification"

	ErrVendorNotFound   = errors.New("vendor not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrEmptyOrder       = errors.New("shopping list has no pending items to order")
	ErrDuplicateOrder   = errors.New("order already exists for this reference")
	ErrPaymentFailed    = errors.New("payment processing failed")
)

type (
	VendorResponse struct {
		ID          string  `json:"id"`
		Name        string  `json:"name"`
		Description string  `json:"description,omitempty"`
		Region      string  `json:"region,omitempty"`
		Rating      float64 `json:"rating"`
		ImageURL    string  `json:"image_url,omitempty"`
	}

	ProductResponse struct {
		ID        string  `json:"id"`
		VendorID  string  `json:"vendor_id"`
		Name      string  `json:"name"`
		Category  string  `json:"category"`
		Unit      string  `json:"unit"`
		Price     float64 `json:"price"`
		Currency  string  `json:"currency"`
		Brand     string  `json:"brand,omitempty"`
		IsOrganic bool    `json:"is_organic"`
		IsLocal   bool    `json:"is_local"`
	}

	CreateOrderRequest struct {
		ShoppingListID string `json:"shopping_list_id" validate:"required,uuid"`
		VendorID       string `json:"vendor_id" validate:"required,uuid"`
		Email          string `json:"email" validate:"required,email"`
	}

	CreateOrderResponse struct {
		OrderID    string  `json:"order_id"`
		Status     string  `json:"status"`
		Total      float64 `json:"total"`
		Currency   string  `json:"currency"`
		InvoiceURL string  `json:"invoice_url"`
	}

	OrderItemResponse struct {
		Name      string  `json:"name"`
		Category  string  `json:"category"`
		Quantity  float64 `json:"quantity"`
		Unit      string  `json:"unit"`
		UnitPrice float64 `json:"unit_price"`
	}

	OrderResponse struct {
		ID          string              `json:"id"`
		VendorID    string              `json:"vendor_id"`
		Status      string              `json:"status"`
		TotalAmount float64             `json:"total_amount"`
		Currency    string              `json:"currency"`
		PaidAt      *time.Time          `json:"paid_at,omitempty"`
		Items       []OrderItemResponse `json:"items"`
		CreatedAt   time.Time           `json:"created_at"`
	}

	PaymentNotification struct {
		OrderID           string `json:"order_id"`
		TransactionStatus string `json:"transaction_status"`
		FraudStatus       string `json:"fraud_status"`
	}
)
