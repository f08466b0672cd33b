package postgres

import (
	"fmt"
	"log/slog"
	"time"

	"rental/internal/adapters/out/postgres/categoryrepo"
	"rental/internal/adapters/out/postgres/orderrepo"
	"rental/internal/adapters/out/postgres/productrepo"
	"rental/internal/adapters/out/postgres/userrepo"

	_ "github.com/lib/pq" // registers the "postgres" database/sql driver
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens a GORM connection over the lib/pq driver.
func Connect(dsn string, log *slog.Logger) (*gorm.DB, error) {
	if log == nil {
		log = slog.Default()
	}

	db, err := gorm.Open(gorm_postgres.New(gorm_postgres.Config{
		DriverName: "postgres",
		DSN:        dsn,
	}), &gorm.Config{
		TranslateError: true,
		Logger: logger.New(slogWriter{log: log.With("component", "gorm")}, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	return db, nil
}

// slogWriter routes GORM's slow-query and error lines into slog.
type slogWriter struct {
	log *slog.Logger
}

func (w slogWriter) Printf(format string, args ...any) {
	w.log.Warn(fmt.Sprintf(format, args...))
}

type constraint struct {
	model any
	name  string
	ddl   string
}

// Migrate creates or updates the schema, including the foreign keys that
// GORM cannot infer from the DTOs.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&userrepo.UserDTO{},
		&categoryrepo.CategoryDTO{},
		&productrepo.ProductDTO{},
		&orderrepo.RentalOrderDTO{},
		&orderrepo.OrderLineDTO{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	constraints := []constraint{
		{
			model: &productrepo.ProductDTO{},
			name:  "fk_products_category",
			ddl: "ALTER TABLE products ADD CONSTRAINT fk_products_category " +
				"FOREIGN KEY (category_id) REFERENCES categories (id) ON DELETE RESTRICT",
		},
		{
			model: &orderrepo.OrderLineDTO{},
			name:  "fk_order_lines_product",
			ddl: "ALTER TABLE order_lines ADD CONSTRAINT fk_order_lines_product " +
				"FOREIGN KEY (product_id) REFERENCES products (id) ON DELETE RESTRICT",
		},
	}

	for _, c := range constraints {
		if db.Migrator().HasConstraint(c.model, c.name) {
			continue
		}
		if err := db.Exec(c.ddl).Error; err != nil {
			return fmt.Errorf("add constraint %s: %w", c.name, err)
		}
	}

	return nil
}
