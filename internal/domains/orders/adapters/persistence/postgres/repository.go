package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Apurer/shop-backoffice/internal/domains/orders/domain"
	"github.com/Apurer/shop-backoffice/internal/domains/orders/ports"
	"github.com/Apurer/shop-backoffice/internal/shared/projection"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists orders in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&OrderRecord{})
	}
	return repo
}

// OrderRecord maps the order aggregate to a relational table.
// References are plain columns: deleting a customer or product leaves the order in place.
type OrderRecord struct {
	ID         int64           `gorm:"primaryKey;autoIncrement;column:id"`
	CustomerID int64           `gorm:"column:customer_id;index"`
	ProductID  int64           `gorm:"column:product_id;index"`
	Quantity   int             `gorm:"column:quantity"`
	Price      decimal.Decimal `gorm:"column:price;type:numeric(14,2)"`
	OrderDate  time.Time       `gorm:"column:order_date;type:date;index"`
	Status     string          `gorm:"column:status;type:varchar(32);index"`
	CreatedAt  time.Time       `gorm:"column:created_at;index"`
	UpdatedAt  time.Time       `gorm:"column:updated_at;index"`
}

func (OrderRecord) TableName() string { return "orders" }

func (r *Repository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("order is nil")
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	record := toRecord(order)
	record.ID = 0
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record OrderRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// Update overwrites every mutable column; last writer wins.
func (r *Repository) Update(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("order is nil")
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	record := toRecord(order)
	result := r.db.WithContext(ctx).Model(&OrderRecord{}).
		Where("id = ?", record.ID).
		Updates(map[string]any{
			"customer_id": record.CustomerID,
			"product_id":  record.ProductID,
			"quantity":    record.Quantity,
			"price":       record.Price,
			"order_date":  record.OrderDate,
			"status":      record.Status,
			"updated_at":  gorm.Expr("NOW()"),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ports.ErrNotFound
	}
	return r.GetByID(ctx, record.ID)
}

func (r *Repository) Delete(ctx context.Context, id int64) (bool, error) {
	if err := r.ensureDB(); err != nil {
		return false, err
	}
	result := r.db.WithContext(ctx).Delete(&OrderRecord{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *Repository) List(ctx context.Context) ([]*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []OrderRecord
	if err := r.db.WithContext(ctx).Order("id asc").Find(&records).Error; err != nil {
		return nil, err
	}
	orders := make([]*domain.Order, 0, len(records))
	for i := range records {
		orders = append(orders, records[i].toDomain())
	}
	return orders, nil
}

func (r *Repository) CountByCustomer(ctx context.Context, customerID int64) (int64, error) {
	return r.countWhere(ctx, "customer_id = ?", customerID)
}

func (r *Repository) CountByProduct(ctx context.Context, productID int64) (int64, error) {
	return r.countWhere(ctx, "product_id = ?", productID)
}

func (r *Repository) countWhere(ctx context.Context, query string, arg int64) (int64, error) {
	if err := r.ensureDB(); err != nil {
		return 0, err
	}
	var n int64
	if err := r.db.WithContext(ctx).Model(&OrderRecord{}).Where(query, arg).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres order repository not configured")
	}
	return nil
}

func toRecord(order *domain.Order) OrderRecord {
	return OrderRecord{
		ID:         order.ID,
		CustomerID: order.CustomerID,
		ProductID:  order.ProductID,
		Quantity:   order.Quantity,
		Price:      order.Price,
		OrderDate:  domain.CalendarDate(order.Date),
		Status:     string(order.Status),
	}
}

func (r OrderRecord) toDomain() *domain.Order {
	return &domain.Order{
		ID:         r.ID,
		CustomerID: r.CustomerID,
		ProductID:  r.ProductID,
		Quantity:   r.Quantity,
		Price:      r.Price,
		Date:       domain.CalendarDate(r.OrderDate),
		Status:     domain.Status(r.Status),
		Metadata:   projection.Metadata{CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt},
	}
}
