package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/vendasapp/vendas-api/internal/domains/orders/domain"
	"github.com/vendasapp/vendas-api/internal/domains/orders/ports"
)

var _ ports.ItemRepository = (*ItemRepository)(nil)

// ItemRepository persists order line items in PostgreSQL using GORM.
type ItemRepository struct {
	db *gorm.DB
}

// NewItemRepository wires a PostgreSQL-backed item repository.
func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

type orderItemRecord struct {
	ID        int64     `gorm:"primaryKey;column:id"`
	OrderID   int64     `gorm:"column:order_id;index"`
	ProductID int64     `gorm:"column:product_id;index"`
	Quantity  int32     `gorm:"column:quantity"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (orderItemRecord) TableName() string { return "order_items" }

func (r *ItemRepository) List(ctx context.Context) ([]*domain.OrderItem, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []orderItemRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	items := make([]*domain.OrderItem, 0, len(records))
	for i := range records {
		items = append(items, records[i].toDomain())
	}
	return items, nil
}

func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*domain.OrderItem, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record orderItemRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrItemNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *ItemRepository) Create(ctx context.Context, item *domain.OrderItem) (*domain.OrderItem, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if item == nil {
		return nil, errors.New("order item is nil")
	}
	clone := *item
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	record := orderItemRecord{OrderID: clone.OrderID, ProductID: clone.ProductID, Quantity: clone.Quantity}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *ItemRepository) Update(ctx context.Context, item *domain.OrderItem) (*domain.OrderItem, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if item == nil {
		return nil, errors.New("order item is nil")
	}
	clone := *item
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	updates := map[string]any{
		"order_id":   clone.OrderID,
		"product_id": clone.ProductID,
		"quantity":   clone.Quantity,
		"updated_at": time.Now(),
	}
	result := r.db.WithContext(ctx).Model(&orderItemRecord{}).Where("id = ?", clone.ID).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ports.ErrItemNotFound
	}
	return r.GetByID(ctx, clone.ID)
}

func (r *ItemRepository) Delete(ctx context.Context, id int64) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&orderItemRecord{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrItemNotFound
	}
	return nil
}

func (r *ItemRepository) CountByProduct(ctx context.Context, productID int64) (int64, error) {
	if err := r.ensureDB(); err != nil {
		return 0, err
	}
	var count int64
	err := r.db.WithContext(ctx).
		Model(&orderItemRecord{}).
		Where("product_id = ?", productID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ItemRepository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres order item repository not configured")
	}
	return nil
}

func (r orderItemRecord) toDomain() *domain.OrderItem {
	return &domain.OrderItem{ID: r.ID, OrderID: r.OrderID, ProductID: r.ProductID, Quantity: r.Quantity}
}
