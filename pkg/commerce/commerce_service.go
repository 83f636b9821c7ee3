package commerce

import (
	"context"
	"errors"
	"time"

	"mindfulmeals-backend/domain"
	"mindfulmeals-backend/entities"
	"mindfulmeals-backend/pkg/shoppinglist"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CommerceService interface {
		GetVendors(ctx context.Context, region string, page, limit int) ([]domain.VendorResponse, int64, error)
		GetVendorProducts(ctx context.Context, vendorID string, search string, page, limit int) ([]domain.ProductResponse, int64, error)
		CreateOrder(ctx context.Context, req domain.CreateOrderRequest, householdID string) (domain.CreateOrderResponse, error)
		GetOrder(ctx context.Context, id string, householdID string) (domain.OrderResponse, error)
		HandlePaymentNotification(ctx context.Context, notification domain.PaymentNotification) error
	}

	commerceService struct {
		commerceRepository CommerceRepository
		listRepository     shoppinglist.ShoppingListRepository
		gateway            PaymentGateway
		now                func() time.Time
	}
)

func NewCommerceService(commerceRepository CommerceRepository, listRepository shoppinglist.ShoppingListRepository, gateway PaymentGateway) CommerceService {
	return &commerceService{
		commerceRepository: commerceRepository,
		listRepository:     listRepository,
		gateway:            gateway,
		now:                time.Now,
	}
}

func (s *commerceService) GetVendors(ctx context.Context, region string, page, limit int) ([]domain.VendorResponse, int64, error) {
	vendors, count, err := s.commerceRepository.GetVendors(ctx, region, page, limit)
	if err != nil {
		return nil, 0, err
	}

	var response []domain.VendorResponse
	for _, vendor := range vendors {
		response = append(response, domain.VendorResponse{
			ID:          vendor.ID.String(),
			Name:        vendor.Name,
			Description: vendor.Description,
			Region:      vendor.Region,
			Rating:      vendor.Rating,
			ImageURL:    vendor.ImageURL,
		})
	}

	return response, count, nil
}

func (s *commerceService) GetVendorProducts(ctx context.Context, vendorID string, search string, page, limit int) ([]domain.ProductResponse, int64, error) {
	if _, err := s.commerceRepository.GetVendorByID(ctx, vendorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, domain.ErrVendorNotFound
		}
		return nil, 0, err
	}

	products, count, err := s.commerceRepository.GetProducts(ctx, vendorID, search, page, limit)
	if err != nil {
		return nil, 0, err
	}

	var response []domain.ProductResponse
	for _, product := range products {
		response = append(response, domain.ProductResponse{
			ID:        product.ID.String(),
			VendorID:  product.VendorID.String(),
			Name:      product.Name,
			Category:  product.Category,
			Unit:      product.Unit,
			Price:     product.Price,
			Currency:  product.Currency,
			Brand:     product.Brand,
			IsOrganic: product.IsOrganic,
			IsLocal:   product.IsLocal,
		})
	}

	return response, count, nil
}

// CreateOrder turns a shopping list's pending items into a vendor order and
// opens a payment invoice for it.
func (s *commerceService) CreateOrder(ctx context.Context, req domain.CreateOrderRequest, householdID string) (domain.CreateOrderResponse, error) {
	vendor, err := s.commerceRepository.GetVendorByID(ctx, req.VendorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CreateOrderResponse{}, domain.ErrVendorNotFound
		}
		return domain.CreateOrderResponse{}, err
	}

	list, err := s.listRepository.GetListByID(ctx, req.ShoppingListID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CreateOrderResponse{}, domain.ErrShoppingListNotFound
		}
		return domain.CreateOrderResponse{}, err
	}
	if list.HouseholdID.String() != householdID {
		return domain.CreateOrderResponse{}, domain.ErrShoppingListNotFound
	}

	// One open order per list; a second checkout while payment is pending
	// would double-charge.
	if _, err := s.commerceRepository.GetPendingOrderByListID(ctx, list.ID.String()); err == nil {
		return domain.CreateOrderResponse{}, domain.ErrDuplicateOrder
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.CreateOrderResponse{}, err
	}

	orderID := uuid.New()
	var items []*entities.OrderItem
	var total float64

	for _, line := range list.Items {
		if line.IsCompleted {
			continue
		}

		var unitPrice float64
		if line.EstimatedPrice != nil {
			unitPrice = *line.EstimatedPrice
		}
		total += unitPrice * line.Quantity

		items = append(items, &entities.OrderItem{
			ID:        uuid.New(),
			OrderID:   orderID,
			Name:      line.Name,
			Category:  line.Category,
			Quantity:  line.Quantity,
			Unit:      line.Unit,
			UnitPrice: unitPrice,
		})
	}

	if len(items) == 0 {
		return domain.CreateOrderResponse{}, domain.ErrEmptyOrder
	}

	invoiceURL, err := s.gateway.CreateInvoice(orderID.String(), total, req.Email)
	if err != nil {
		return domain.CreateOrderResponse{}, err
	}

	listID := list.ID
	order := &entities.Order{
		ID:             orderID,
		HouseholdID:    list.HouseholdID,
		VendorID:       vendor.ID,
		ShoppingListID: &listID,
		Status:         entities.OrderStatusPending,
		TotalAmount:    total,
		Currency:       list.Currency,
	}

	payment := &entities.PaymentTransaction{
		ID:          uuid.New(),
		OrderID:     orderID,
		Provider:    "midtrans",
		ExternalRef: orderID.String(),
		Status:      "pending",
		Amount:      total,
		InvoiceURL:  invoiceURL,
	}

	if err := s.commerceRepository.CreateOrderWithPayment(ctx, order, items, payment); err != nil {
		return domain.CreateOrderResponse{}, err
	}

	return domain.CreateOrderResponse{
		OrderID:    orderID.String(),
		Status:     order.Status,
		Total:      total,
		Currency:   order.Currency,
		InvoiceURL: invoiceURL,
	}, nil
}

func (s *commerceService) GetOrder(ctx context.Context, id string, householdID string) (domain.OrderResponse, error) {
	order, err := s.commerceRepository.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.OrderResponse{}, domain.ErrOrderNotFound
		}
		return domain.OrderResponse{}, err
	}
	if order.HouseholdID.String() != householdID {
		return domain.OrderResponse{}, domain.ErrOrderNotFound
	}

	response := domain.OrderResponse{
		ID:          order.ID.String(),
		VendorID:    order.VendorID.String(),
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
		Currency:    order.Currency,
		PaidAt:      order.PaidAt,
		CreatedAt:   order.CreatedAt,
	}
	for _, item := range order.Items {
		response.Items = append(response.Items, domain.OrderItemResponse{
			Name:      item.Name,
			Category:  item.Category,
			Quantity:  item.Quantity,
			Unit:      item.Unit,
			UnitPrice: item.UnitPrice,
		})
	}

	return response, nil
}

func (s *commerceService) HandlePaymentNotification(ctx context.Context, notification domain.PaymentNotification) error {
	order, err := s.commerceRepository.GetOrderByID(ctx, notification.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrOrderNotFound
		}
		return err
	}

	payment, err := s.commerceRepository.GetPaymentByOrderID(ctx, order.ID.String())
	if err != nil {
		return err
	}

	payment.Status = notification.TransactionStatus

	switch notification.TransactionStatus {
	case "capture", "settlement":
		if notification.FraudStatus == "" || notification.FraudStatus == "accept" {
			paidAt := s.now()
			order.Status = entities.OrderStatusPaid
			order.PaidAt = &paidAt
		}
	case "deny", "cancel", "expire":
		order.Status = entities.OrderStatusCancelled
	}

	return s.commerceRepository.UpdateOrderAndPayment(ctx, order, payment)
}
