package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Apurer/shop-backoffice/internal/domains/customers/domain"
	"github.com/Apurer/shop-backoffice/internal/domains/customers/ports"
	"github.com/Apurer/shop-backoffice/internal/shared/projection"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists customers in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&CustomerRecord{})
	}
	return repo
}

// CustomerRecord is the customers table row.
type CustomerRecord struct {
	ID           int64     `gorm:"primaryKey;autoIncrement;column:id"`
	Name         string    `gorm:"column:name;index"`
	Email        string    `gorm:"column:email"`
	Phone        string    `gorm:"column:phone"`
	Address      string    `gorm:"column:address"`
	Province     string    `gorm:"column:province"`
	City         string    `gorm:"column:city"`
	CustomerType string    `gorm:"column:customer_type"`
	Notes        string    `gorm:"column:notes"`
	ImageURL     string    `gorm:"column:image_url"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (CustomerRecord) TableName() string { return "customers" }

func (r *Repository) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, errors.New("customer is nil")
	}
	if err := customer.Validate(); err != nil {
		return nil, err
	}
	record := toRecord(customer)
	record.ID = 0
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record CustomerRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) Update(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, errors.New("customer is nil")
	}
	if err := customer.Validate(); err != nil {
		return nil, err
	}
	record := toRecord(customer)
	result := r.db.WithContext(ctx).Model(&CustomerRecord{}).
		Where("id = ?", record.ID).
		Updates(map[string]any{
			"name":          record.Name,
			"email":         record.Email,
			"phone":         record.Phone,
			"address":       record.Address,
			"province":      record.Province,
			"city":          record.City,
			"customer_type": record.CustomerType,
			"notes":         record.Notes,
			"image_url":     record.ImageURL,
			"updated_at":    gorm.Expr("NOW()"),
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
	result := r.db.WithContext(ctx).Delete(&CustomerRecord{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *Repository) List(ctx context.Context) ([]*domain.Customer, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []CustomerRecord
	if err := r.db.WithContext(ctx).Order("id asc").Find(&records).Error; err != nil {
		return nil, err
	}
	customers := make([]*domain.Customer, 0, len(records))
	for i := range records {
		customers = append(customers, records[i].toDomain())
	}
	return customers, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres customer repository not configured")
	}
	return nil
}

func toRecord(customer *domain.Customer) CustomerRecord {
	return CustomerRecord{
		ID:           customer.ID,
		Name:         customer.Name,
		Email:        customer.Email,
		Phone:        customer.Phone,
		Address:      customer.Address,
		Province:     customer.Province,
		City:         customer.City,
		CustomerType: customer.Type,
		Notes:        customer.Notes,
		ImageURL:     customer.ImageURL,
	}
}

func (r CustomerRecord) toDomain() *domain.Customer {
	return &domain.Customer{
		ID:       r.ID,
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Address:  r.Address,
		Province: r.Province,
		City:     r.City,
		Type:     r.CustomerType,
		Notes:    r.Notes,
		ImageURL: r.ImageURL,
		Metadata: projection.Metadata{CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt},
	}
}
