package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Apurer/shop-backoffice/internal/domains/orders/domain"
	"github.com/Apurer/shop-backoffice/internal/domains/orders/ports"
	platformsqlite "github.com/Apurer/shop-backoffice/internal/platform/sqlite"
	"github.com/Apurer/shop-backoffice/internal/shared/projection"
)

var _ ports.Repository = (*Repository)(nil)

const orderColumns = `id, customer_id, product_id, quantity, price, order_date, status, created_at, updated_at`

// Repository persists orders in SQLite. Money is stored as decimal text, dates as YYYY-MM-DD.
type Repository struct {
	db  *sql.DB
	now func() time.Time
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db, now: time.Now}
}

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
	now := platformsqlite.ToMillis(r.now())
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO orders (customer_id, product_id, quantity, price, order_date, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		order.CustomerID, order.ProductID, order.Quantity, order.Price.String(),
		domain.FormatDate(order.Date), string(order.Status), now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("order id: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	order, err := scanOrder(r.db.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

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
	result, err := r.db.ExecContext(ctx,
		`UPDATE orders SET customer_id = ?, product_id = ?, quantity = ?, price = ?, order_date = ?, status = ?, updated_at = ?
		 WHERE id = ?`,
		order.CustomerID, order.ProductID, order.Quantity, order.Price.String(),
		domain.FormatDate(order.Date), string(order.Status), platformsqlite.ToMillis(r.now()), order.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return nil, ports.ErrNotFound
	}
	return r.GetByID(ctx, order.ID)
}

func (r *Repository) Delete(ctx context.Context, id int64) (bool, error) {
	if err := r.ensureDB(); err != nil {
		return false, err
	}
	result, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete order: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *Repository) List(ctx context.Context) ([]*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	orders := []*domain.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (r *Repository) CountByCustomer(ctx context.Context, customerID int64) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM orders WHERE customer_id = ?`, customerID)
}

func (r *Repository) CountByProduct(ctx context.Context, productID int64) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM orders WHERE product_id = ?`, productID)
}

func (r *Repository) count(ctx context.Context, query string, arg int64) (int64, error) {
	if err := r.ensureDB(); err != nil {
		return 0, err
	}
	var n int64
	if err := r.db.QueryRowContext(ctx, query, arg).Scan(&n); err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return n, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("sqlite order repository not configured")
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(row scanner) (*domain.Order, error) {
	var (
		order                domain.Order
		price, date, status  string
		createdAt, updatedAt int64
	)
	if err := row.Scan(&order.ID, &order.CustomerID, &order.ProductID, &order.Quantity, &price, &date, &status,
		&createdAt, &updatedAt); err != nil {
		return nil, err
	}
	parsedPrice, err := decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("order %d price: %w", order.ID, err)
	}
	parsedDate, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("order %d date: %w", order.ID, err)
	}
	order.Price = parsedPrice
	order.Date = parsedDate
	order.Status = domain.Status(status)
	order.Metadata = projection.Metadata{
		CreatedAt: platformsqlite.FromMillis(createdAt),
		UpdatedAt: platformsqlite.FromMillis(updatedAt),
	}
	return &order, nil
}
