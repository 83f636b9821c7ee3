package commerce

import (
	"context"
	"testing"
	"time"

	"mindfulmeals-backend/domain"
	"mindfulmeals-backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeCommerceRepository struct {
	vendors  map[string]*entities.Vendor
	orders   map[string]*entities.Order
	payments map[string]*entities.PaymentTransaction

	createdItems []*entities.OrderItem
}

func newFakeCommerceRepository() *fakeCommerceRepository {
	return &fakeCommerceRepository{
		vendors:  map[string]*entities.Vendor{},
		orders:   map[string]*entities.Order{},
		payments: map[string]*entities.PaymentTransaction{},
	}
}

func (r *fakeCommerceRepository) GetVendors(_ context.Context, _ string, _, _ int) ([]*entities.Vendor, int64, error) {
	var vendors []*entities.Vendor
	for _, vendor := range r.vendors {
		vendors = append(vendors, vendor)
	}
	return vendors, int64(len(vendors)), nil
}

func (r *fakeCommerceRepository) GetVendorByID(_ context.Context, id string) (*entities.Vendor, error) {
	vendor, ok := r.vendors[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return vendor, nil
}

func (r *fakeCommerceRepository) GetProducts(_ context.Context, _ string, _ string, _, _ int) ([]*entities.Product, int64, error) {
	return nil, 0, nil
}

func (r *fakeCommerceRepository) CreateOrderWithPayment(_ context.Context, order *entities.Order, items []*entities.OrderItem, payment *entities.PaymentTransaction) error {
	order.Items = items
	r.orders[order.ID.String()] = order
	r.payments[order.ID.String()] = payment
	r.createdItems = items
	return nil
}

func (r *fakeCommerceRepository) GetOrderByID(_ context.Context, id string) (*entities.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return order, nil
}

func (r *fakeCommerceRepository) GetPendingOrderByListID(_ context.Context, listID string) (*entities.Order, error) {
	for _, order := range r.orders {
		if order.ShoppingListID != nil && order.ShoppingListID.String() == listID && order.Status == entities.OrderStatusPending {
			return order, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCommerceRepository) GetPaymentByOrderID(_ context.Context, orderID string) (*entities.PaymentTransaction, error) {
	payment, ok := r.payments[orderID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return payment, nil
}

func (r *fakeCommerceRepository) UpdateOrderAndPayment(_ context.Context, order *entities.Order, payment *entities.PaymentTransaction) error {
	r.orders[order.ID.String()] = order
	r.payments[order.ID.String()] = payment
	return nil
}

type fakeListRepository struct {
	lists map[string]*entities.ShoppingList
}

func (r *fakeListRepository) CreateListWithItems(_ context.Context, list *entities.ShoppingList, items []*entities.ShoppingListItem) error {
	list.Items = items
	r.lists[list.ID.String()] = list
	return nil
}

func (r *fakeListRepository) GetListByID(_ context.Context, id string) (*entities.ShoppingList, error) {
	list, ok := r.lists[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return list, nil
}

func (r *fakeListRepository) GetLists(_ context.Context, _ string, _ string, _, _ int) ([]*entities.ShoppingList, int64, error) {
	return nil, 0, nil
}

func (r *fakeListRepository) UpdateList(_ context.Context, list *entities.ShoppingList) error {
	r.lists[list.ID.String()] = list
	return nil
}

func (r *fakeListRepository) GetItemByID(_ context.Context, _ string) (*entities.ShoppingListItem, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeListRepository) GetListItems(_ context.Context, listID string) ([]*entities.ShoppingListItem, error) {
	list, ok := r.lists[listID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return list.Items, nil
}

func (r *fakeListRepository) SaveItemWithStats(_ context.Context, _ *entities.ShoppingListItem, list *entities.ShoppingList) error {
	r.lists[list.ID.String()] = list
	return nil
}

func (r *fakeListRepository) DeleteItemWithStats(_ context.Context, _ *entities.ShoppingListItem, list *entities.ShoppingList) error {
	r.lists[list.ID.String()] = list
	return nil
}

type fakeGateway struct {
	invoiceURL string
	err        error

	lastOrderID string
	lastAmount  float64
	lastEmail   string
}

func (g *fakeGateway) CreateInvoice(orderID string, amount float64, email string) (string, error) {
	g.lastOrderID = orderID
	g.lastAmount = amount
	g.lastEmail = email
	if g.err != nil {
		return "", g.err
	}
	return g.invoiceURL, nil
}

type commerceFixture struct {
	service     *commerceService
	repo        *fakeCommerceRepository
	listRepo    *fakeListRepository
	gateway     *fakeGateway
	vendor      *entities.Vendor
	householdID uuid.UUID
	now         time.Time
}

func newCommerceFixture() *commerceFixture {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	repo := newFakeCommerceRepository()
	vendor := &entities.Vendor{ID: uuid.New(), Name: "Green Grocer", Region: "north"}
	repo.vendors[vendor.ID.String()] = vendor

	listRepo := &fakeListRepository{lists: map[string]*entities.ShoppingList{}}
	gateway := &fakeGateway{invoiceURL: "https://pay.example/invoice/123"}

	return &commerceFixture{
		service: &commerceService{
			commerceRepository: repo,
			listRepository:     listRepo,
			gateway:            gateway,
			now:                func() time.Time { return now },
		},
		repo:        repo,
		listRepo:    listRepo,
		gateway:     gateway,
		vendor:      vendor,
		householdID: uuid.New(),
		now:         now,
	}
}

func floatPtr(v float64) *float64 {
	return &v
}

func (f *commerceFixture) seedList(items ...*entities.ShoppingListItem) *entities.ShoppingList {
	list := &entities.ShoppingList{
		ID:          uuid.New(),
		HouseholdID: f.householdID,
		Name:        "Weekly",
		Status:      entities.ListStatusActive,
		Currency:    "USD",
		Items:       items,
	}
	for _, item := range items {
		item.ShoppingListID = list.ID
	}
	f.listRepo.lists[list.ID.String()] = list
	return list
}

func TestCreateOrderFromPendingItems(t *testing.T) {
	f := newCommerceFixture()

	list := f.seedList(
		&entities.ShoppingListItem{ID: uuid.New(), Name: "Milk", Category: "dairy", Quantity: 2, Unit: "litre", EstimatedPrice: floatPtr(3.50)},
		&entities.ShoppingListItem{ID: uuid.New(), Name: "Bread", Category: "bakery", Quantity: 1, Unit: "loaf", EstimatedPrice: floatPtr(2.00)},
		&entities.ShoppingListItem{ID: uuid.New(), Name: "Eggs", Category: "dairy", Quantity: 1, Unit: "dozen", IsCompleted: true, EstimatedPrice: floatPtr(4.00)},
	)

	res, err := f.service.CreateOrder(context.Background(), domain.CreateOrderRequest{
		ShoppingListID: list.ID.String(),
		VendorID:       f.vendor.ID.String(),
		Email:          "shopper@example.com",
	}, f.householdID.String())

	assert.NoError(t, err)
	assert.Equal(t, entities.OrderStatusPending, res.Status)
	// Completed items are excluded: 2*3.50 + 1*2.00.
	assert.InDelta(t, 9.0, res.Total, 1e-9)
	assert.Equal(t, "USD", res.Currency)
	assert.Equal(t, "https://pay.example/invoice/123", res.InvoiceURL)

	assert.Len(t, f.repo.createdItems, 2)
	assert.Equal(t, res.OrderID, f.gateway.lastOrderID)
	assert.InDelta(t, 9.0, f.gateway.lastAmount, 1e-9)
	assert.Equal(t, "shopper@example.com", f.gateway.lastEmail)

	payment := f.repo.payments[res.OrderID]
	assert.Equal(t, "midtrans", payment.Provider)
	assert.Equal(t, "pending", payment.Status)
}

func TestCreateOrderEmptyList(t *testing.T) {
	f := newCommerceFixture()

	list := f.seedList(
		&entities.ShoppingListItem{ID: uuid.New(), Name: "Eggs", Quantity: 1, Unit: "dozen", IsCompleted: true},
	)

	_, err := f.service.CreateOrder(context.Background(), domain.CreateOrderRequest{
		ShoppingListID: list.ID.String(),
		VendorID:       f.vendor.ID.String(),
		Email:          "shopper@example.com",
	}, f.householdID.String())

	assert.ErrorIs(t, err, domain.ErrEmptyOrder)
	assert.Empty(t, f.repo.orders)
}

func TestCreateOrderRejectsSecondPendingOrder(t *testing.T) {
	f := newCommerceFixture()

	list := f.seedList(
		&entities.ShoppingListItem{ID: uuid.New(), Name: "Milk", Quantity: 1, Unit: "litre", EstimatedPrice: floatPtr(3)},
	)
	req := domain.CreateOrderRequest{
		ShoppingListID: list.ID.String(),
		VendorID:       f.vendor.ID.String(),
		Email:          "shopper@example.com",
	}

	_, err := f.service.CreateOrder(context.Background(), req, f.householdID.String())
	assert.NoError(t, err)

	_, err = f.service.CreateOrder(context.Background(), req, f.householdID.String())
	assert.ErrorIs(t, err, domain.ErrDuplicateOrder)
	assert.Len(t, f.repo.orders, 1)
}

func TestCreateOrderUnknownVendor(t *testing.T) {
	f := newCommerceFixture()
	list := f.seedList(&entities.ShoppingListItem{ID: uuid.New(), Name: "Milk", Quantity: 1, Unit: "litre"})

	_, err := f.service.CreateOrder(context.Background(), domain.CreateOrderRequest{
		ShoppingListID: list.ID.String(),
		VendorID:       uuid.NewString(),
		Email:          "shopper@example.com",
	}, f.householdID.String())

	assert.ErrorIs(t, err, domain.ErrVendorNotFound)
}

func TestCreateOrderListScopedToHousehold(t *testing.T) {
	f := newCommerceFixture()
	list := f.seedList(&entities.ShoppingListItem{ID: uuid.New(), Name: "Milk", Quantity: 1, Unit: "litre"})

	_, err := f.service.CreateOrder(context.Background(), domain.CreateOrderRequest{
		ShoppingListID: list.ID.String(),
		VendorID:       f.vendor.ID.String(),
		Email:          "shopper@example.com",
	}, uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrShoppingListNotFound)
}

func TestCreateOrderGatewayFailure(t *testing.T) {
	f := newCommerceFixture()
	f.gateway.err = domain.ErrPaymentFailed

	list := f.seedList(&entities.ShoppingListItem{ID: uuid.New(), Name: "Milk", Quantity: 1, Unit: "litre", EstimatedPrice: floatPtr(3)})

	_, err := f.service.CreateOrder(context.Background(), domain.CreateOrderRequest{
		ShoppingListID: list.ID.String(),
		VendorID:       f.vendor.ID.String(),
		Email:          "shopper@example.com",
	}, f.householdID.String())

	assert.ErrorIs(t, err, domain.ErrPaymentFailed)
	assert.Empty(t, f.repo.orders)
}

func TestHandlePaymentNotification(t *testing.T) {
	tests := []struct {
		name              string
		transactionStatus string
		fraudStatus       string
		expectedStatus    string
		expectPaidAt      bool
	}{
		{name: "settlement marks paid", transactionStatus: "settlement", expectedStatus: entities.OrderStatusPaid, expectPaidAt: true},
		{name: "capture with fraud accept marks paid", transactionStatus: "capture", fraudStatus: "accept", expectedStatus: entities.OrderStatusPaid, expectPaidAt: true},
		{name: "capture under fraud review stays pending", transactionStatus: "capture", fraudStatus: "challenge", expectedStatus: entities.OrderStatusPending},
		{name: "deny cancels", transactionStatus: "deny", expectedStatus: entities.OrderStatusCancelled},
		{name: "expire cancels", transactionStatus: "expire", expectedStatus: entities.OrderStatusCancelled},
		{name: "unknown status leaves order untouched", transactionStatus: "refund", expectedStatus: entities.OrderStatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCommerceFixture()

			order := &entities.Order{
				ID:          uuid.New(),
				HouseholdID: f.householdID,
				VendorID:    f.vendor.ID,
				Status:      entities.OrderStatusPending,
				TotalAmount: 9,
				Currency:    "USD",
			}
			f.repo.orders[order.ID.String()] = order
			f.repo.payments[order.ID.String()] = &entities.PaymentTransaction{
				ID:      uuid.New(),
				OrderID: order.ID,
				Status:  "pending",
			}

			err := f.service.HandlePaymentNotification(context.Background(), domain.PaymentNotification{
				OrderID:           order.ID.String(),
				TransactionStatus: tt.transactionStatus,
				FraudStatus:       tt.fraudStatus,
			})

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, order.Status)
			assert.Equal(t, tt.transactionStatus, f.repo.payments[order.ID.String()].Status)
			if tt.expectPaidAt {
				assert.NotNil(t, order.PaidAt)
				assert.Equal(t, f.now, *order.PaidAt)
			} else {
				assert.Nil(t, order.PaidAt)
			}
		})
	}
}

func TestHandlePaymentNotificationUnknownOrder(t *testing.T) {
	f := newCommerceFixture()

	err := f.service.HandlePaymentNotification(context.Background(), domain.PaymentNotification{
		OrderID:           uuid.NewString(),
		TransactionStatus: "settlement",
	})

	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestGetOrderScopedToHousehold(t *testing.T) {
	f := newCommerceFixture()

	order := &entities.Order{
		ID:          uuid.New(),
		HouseholdID: f.householdID,
		VendorID:    f.vendor.ID,
		Status:      entities.OrderStatusPending,
	}
	f.repo.orders[order.ID.String()] = order

	_, err := f.service.GetOrder(context.Background(), order.ID.String(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)

	res, err := f.service.GetOrder(context.Background(), order.ID.String(), f.householdID.String())
	assert.NoError(t, err)
	assert.Equal(t, order.ID.String(), res.ID)
}

func TestGetVendorProductsUnknownVendor(t *testing.T) {
	f := newCommerceFixture()

	_, _, err := f.service.GetVendorProducts(context.Background(), uuid.NewString(), "", 1, 20)
	assert.ErrorIs(t, err, domain.ErrVendorNotFound)
}
