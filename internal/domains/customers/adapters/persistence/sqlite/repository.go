package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Apurer/shop-backoffice/internal/domains/customers/domain"
	"github.com/Apurer/shop-backoffice/internal/domains/customers/ports"
	platformsqlite "github.com/Apurer/shop-backoffice/internal/platform/sqlite"
	"github.com/Apurer/shop-backoffice/internal/shared/projection"
)

var _ ports.Repository = (*Repository)(nil)

const customerColumns = `id, name, email, phone, address, province, city, customer_type, notes, image_url, created_at, updated_at`

// Repository persists customers in SQLite.
type Repository struct {
	db  *sql.DB
	now func() time.Time
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db, now: time.Now}
}

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
	now := platformsqlite.ToMillis(r.now())
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO customers (name, email, phone, address, province, city, customer_type, notes, image_url, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		customer.Name, customer.Email, customer.Phone, customer.Address, customer.Province, customer.City,
		customer.Type, customer.Notes, customer.ImageURL, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert customer: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("customer id: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	row := r.db.QueryRowContext(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = ?`, id)
	customer, err := scanCustomer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return customer, nil
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
	result, err := r.db.ExecContext(ctx,
		`UPDATE customers SET name = ?, email = ?, phone = ?, address = ?, province = ?, city = ?,
		 customer_type = ?, notes = ?, image_url = ?, updated_at = ? WHERE id = ?`,
		customer.Name, customer.Email, customer.Phone, customer.Address, customer.Province, customer.City,
		customer.Type, customer.Notes, customer.ImageURL, platformsqlite.ToMillis(r.now()), customer.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return nil, ports.ErrNotFound
	}
	return r.GetByID(ctx, customer.ID)
}

func (r *Repository) Delete(ctx context.Context, id int64) (bool, error) {
	if err := r.ensureDB(); err != nil {
		return false, err
	}
	result, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete customer: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *Repository) List(ctx context.Context) ([]*domain.Customer, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	customers := []*domain.Customer{}
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}
	return customers, rows.Err()
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("sqlite customer repository not configured")
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCustomer(row scanner) (*domain.Customer, error) {
	var (
		customer             domain.Customer
		createdAt, updatedAt int64
	)
	if err := row.Scan(&customer.ID, &customer.Name, &customer.Email, &customer.Phone, &customer.Address,
		&customer.Province, &customer.City, &customer.Type, &customer.Notes, &customer.ImageURL,
		&createdAt, &updatedAt); err != nil {
		return nil, err
	}
	customer.Metadata = projection.Metadata{
		CreatedAt: platformsqlite.FromMillis(createdAt),
		UpdatedAt: platformsqlite.FromMillis(updatedAt),
	}
	return &customer, nil
}
