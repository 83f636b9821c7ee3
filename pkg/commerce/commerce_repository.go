package commerce

import (
	"context"

	"mindfulmeals-backend/entities"

	"gorm.io/gorm"
)

type (
	CommerceRepository interface {
		GetVendors(ctx context.Context, region string, page, limit int) ([]*entities.Vendor, int64, error)
		GetVendorByID(ctx context.Context, id string) (*entities.Vendor, error)
		GetProducts(ctx context.Context, vendorID string, search string, page, limit int) ([]*entities.Product, int64, error)
		// CreateOrderWithPayment persists the order, its items and the
		// payment transaction atomically.
		CreateOrderWithPayment(ctx context.Context, order *entities.Order, items []*entities.OrderItem, payment *entities.PaymentTransaction) error
		GetOrderByID(ctx context.Context, id string) (*entities.Order, error)
		GetPendingOrderByListID(ctx context.Context, listID string) (*entities.Order, error)
		GetPaymentByOrderID(ctx context.Context, orderID string) (*entities.PaymentTransaction, error)
		UpdateOrderAndPayment(ctx context.Context, order *entities.Order, payment *entities.PaymentTransaction) error
	}

	commerceRepository struct {
		db *gorm.DB
	}
)

func NewCommerceRepository(db *gorm.DB) CommerceRepository {
	return &commerceRepository{db: db}
}

func (r *commerceRepository) GetVendors(ctx context.Context, region string, page, limit int) ([]*entities.Vendor, int64, error) {
	var vendors []*entities.Vendor
	var count int64

	query := r.db.WithContext(ctx).Where("is_active = ?", true)
	if region != "" {
		query = query.Where("region = ?", region)
	}

	if err := query.Model(&entities.Vendor{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.
		Order("rating DESC").
		Offset(offset).
		Limit(limit).
		Find(&vendors).Error; err != nil {
		return nil, 0, err
	}

	return vendors, count, nil
}

func (r *commerceRepository) GetVendorByID(ctx context.Context, id string) (*entities.Vendor, error) {
	var vendor entities.Vendor
	if err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&vendor).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (r *commerceRepository) GetProducts(ctx context.Context, vendorID string, search string, page, limit int) ([]*entities.Product, int64, error) {
	var products []*entities.Product
	var count int64

	query := r.db.WithContext(ctx).Where("vendor_id = ? AND in_stock = ?", vendorID, true)
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("(name ILIKE ? OR brand ILIKE ?)", pattern, pattern)
	}

	if err := query.Model(&entities.Product{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.
		Order("name ASC").
		Offset(offset).
		Limit(limit).
		Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, count, nil
}

func (r *commerceRepository) CreateOrderWithPayment(ctx context.Context, order *entities.Order, items []*entities.OrderItem, payment *entities.PaymentTransaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Create(order).Error; err != nil {
			return err
		}
		for _, item := range items {
			if err := tx.Create(item).Error; err != nil {
				return err
			}
		}
		return tx.Create(payment).Error
	})
}

func (r *commerceRepository) GetOrderByID(ctx context.Context, id string) (*entities.Order, error) {
	var order entities.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *commerceRepository) GetPendingOrderByListID(ctx context.Context, listID string) (*entities.Order, error) {
	var order entities.Order
	if err := r.db.WithContext(ctx).
		Where("shopping_list_id = ? AND status = ?", listID, entities.OrderStatusPending).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *commerceRepository) GetPaymentByOrderID(ctx context.Context, orderID string) (*entities.PaymentTransaction, error) {
	var payment entities.PaymentTransaction
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *commerceRepository) UpdateOrderAndPayment(ctx context.Context, order *entities.Order, payment *entities.PaymentTransaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Save(order).Error; err != nil {
			return err
		}
		return tx.Save(payment).Error
	})
}
