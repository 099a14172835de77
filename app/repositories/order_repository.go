package repositories

import (
	"context"

	"github.com/volthome/storefront/app/models"
	"gorm.io/gorm"
)

type OrderRepositoryImpl interface {
	CreateWithItems(ctx context.Context, order *models.Order, fn func(tx *gorm.DB) error) error
	GetByCode(ctx context.Context, code string) (*models.Order, error)
	UpdatePayment(ctx context.Context, orderID, transactionID, paymentURL, status string) error
}

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepositoryImpl {
	return &OrderRepository{db}
}

// CreateWithItems persists the order graph (order, items, customer) and
// runs fn inside the same transaction, so stock decrements and cart
// clearing commit or roll back together with the order.
func (r *OrderRepository) CreateWithItems(ctx context.Context, order *models.Order, fn func(tx *gorm.DB) error) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		if fn != nil {
			return fn(tx)
		}
		return nil
	})
}

func (r *OrderRepository) GetByCode(ctx context.Context, code string) (*models.Order, error) {
	var order models.Order
	err := r.DB.WithContext(ctx).
		Preload("OrderItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.created_at ASC")
		}).
		Preload("Customer").
		First(&order, "order_code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) UpdatePayment(ctx context.Context, orderID, transactionID, paymentURL, status string) error {
	return r.DB.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"midtrans_transaction_id": transactionID,
			"payment_url":             paymentURL,
			"payment_status":          status,
		}).Error
}
