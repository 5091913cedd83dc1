package migrations

import (
	"gorm.io/gorm"

	catalogpostgres "github.com/Apurer/shop-backoffice/internal/domains/catalog/adapters/persistence/postgres"
	customerpostgres "github.com/Apurer/shop-backoffice/internal/domains/customers/adapters/persistence/postgres"
	orderpostgres "github.com/Apurer/shop-backoffice/internal/domains/orders/adapters/persistence/postgres"
)

// Run applies the back-office schema from the adapters' own record types, so
// the migrated columns are exactly the ones the repositories read and write.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&catalogpostgres.ProductRecord{},
		&customerpostgres.CustomerRecord{},
		&orderpostgres.OrderRecord{},
	)
}
