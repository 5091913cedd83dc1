package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Apurer/shop-backoffice/internal/domains/catalog/domain"
	"github.com/Apurer/shop-backoffice/internal/domains/catalog/ports"
	platformsqlite "github.com/Apurer/shop-backoffice/internal/platform/sqlite"
	"github.com/Apurer/shop-backoffice/internal/shared/projection"
)

var _ ports.Repository = (*Repository)(nil)

const productColumns = `id, sku, name, category, unit_price, stock, description, variants, image_url, created_at, updated_at`

// Repository persists products in SQLite.
type Repository struct {
	db  *sql.DB
	now func() time.Time
}

// NewRepository expects a handle opened by platform/sqlite.Open.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db, now: time.Now}
}

func (r *Repository) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if product == nil {
		return nil, errors.New("product is nil")
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}
	variants, err := encodeVariants(product.Variants)
	if err != nil {
		return nil, err
	}
	now := platformsqlite.ToMillis(r.now())
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO products (sku, name, category, unit_price, stock, description, variants, image_url, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		product.SKU, product.Name, product.Category, product.UnitPrice.String(), product.Stock,
		product.Description, variants, product.ImageURL, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("product id: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	row := r.db.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE id = ?`, id)
	product, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (r *Repository) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if product == nil {
		return nil, errors.New("product is nil")
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}
	variants, err := encodeVariants(product.Variants)
	if err != nil {
		return nil, err
	}
	result, err := r.db.ExecContext(ctx,
		`UPDATE products SET sku = ?, name = ?, category = ?, unit_price = ?, stock = ?, description = ?,
		 variants = ?, image_url = ?, updated_at = ? WHERE id = ?`,
		product.SKU, product.Name, product.Category, product.UnitPrice.String(), product.Stock,
		product.Description, variants, product.ImageURL, platformsqlite.ToMillis(r.now()), product.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return nil, ports.ErrNotFound
	}
	return r.GetByID(ctx, product.ID)
}

func (r *Repository) Delete(ctx context.Context, id int64) (bool, error) {
	if err := r.ensureDB(); err != nil {
		return false, err
	}
	result, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *Repository) List(ctx context.Context) ([]*domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, `SELECT `+productColumns+` FROM products ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	products := []*domain.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("sqlite product repository not configured")
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(row scanner) (*domain.Product, error) {
	var (
		product              domain.Product
		price, variants      string
		createdAt, updatedAt int64
	)
	if err := row.Scan(&product.ID, &product.SKU, &product.Name, &product.Category, &price, &product.Stock,
		&product.Description, &variants, &product.ImageURL, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	unitPrice, err := decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("product %d price: %w", product.ID, err)
	}
	product.UnitPrice = unitPrice
	if err := json.Unmarshal([]byte(variants), &product.Variants); err != nil {
		return nil, fmt.Errorf("product %d variants: %w", product.ID, err)
	}
	if product.Variants == nil {
		product.Variants = []string{}
	}
	product.Metadata = projection.Metadata{
		CreatedAt: platformsqlite.FromMillis(createdAt),
		UpdatedAt: platformsqlite.FromMillis(updatedAt),
	}
	return &product, nil
}

func encodeVariants(variants []string) (string, error) {
	if variants == nil {
		variants = []string{}
	}
	raw, err := json.Marshal(variants)
	if err != nil {
		return "", fmt.Errorf("encode variants: %w", err)
	}
	return string(raw), nil
}
