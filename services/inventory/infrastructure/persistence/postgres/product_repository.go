package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ghuser/inventree/pkg/database"
	invdomain "github.com/ghuser/inventree/services/inventory/domain"
	"github.com/ghuser/inventree/services/inventory/domain/models"
	"github.com/ghuser/inventree/services/inventory/domain/repositories"
)

// ProductRepository implements repositories.ProductRepository against
// PostgreSQL. Identity is the (brand, model, variant) value triple; the
// empty variant is an identity of its own.
type ProductRepository struct {
	db *database.Database
}

// NewProductRepository returns a ProductRepository backed by the given pool.
func NewProductRepository(db *database.Database) *ProductRepository {
	return &ProductRepository{db: db}
}

// Add persists a new product with its default features.
// Returns ErrDuplicateProduct on identity collision.
func (r *ProductRepository) Add(ctx context.Context, product *models.Product) error {
	return r.db.WithTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO products (brand, model, variant) VALUES ($1, $2, $3)`,
			product.ID.Brand, product.ID.Model, product.ID.Variant,
		); err != nil {
			if code, _ := pgErrCode(err); code == pgUniqueViolation {
				return fmt.Errorf("%w: %s", invdomain.ErrDuplicateProduct, product.ID)
			}
			return wrapStorage("insert product", err)
		}

		for _, name := range product.Features.Names() {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO product_features (brand, model, variant, name, value)
				 VALUES ($1, $2, $3, $4, $5)`,
				product.ID.Brand, product.ID.Model, product.ID.Variant, name, product.Features[name],
			); err != nil {
				return wrapStorage("insert product feature", err)
			}
		}
		return nil
	})
}

// Get looks a product up by value equality of its identity fields.
func (r *ProductRepository) Get(ctx context.Context, id models.ProductID) (*models.Product, error) {
	q := r.db.DB()

	var found bool
	if err := q.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM products WHERE brand = $1 AND model = $2 AND variant = $3)`,
		id.Brand, id.Model, id.Variant,
	).Scan(&found); err != nil {
		return nil, wrapStorage("query product", err)
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", invdomain.ErrProductNotFound, id)
	}

	product := models.NewProduct(id)
	rows, err := q.QueryContext(ctx,
		`SELECT name, value FROM product_features WHERE brand = $1 AND model = $2 AND variant = $3`,
		id.Brand, id.Model, id.Variant,
	)
	if err != nil {
		return nil, wrapStorage("query product features", err)
	}
	defer rows.Close() //nolint:errcheck
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return nil, wrapStorage("scan product feature", err)
		}
		product.Features[name] = value
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStorage("iterate product features", err)
	}
	return product, nil
}

// Delete removes the catalog entry and its default features. Deleting a
// product that items still reference fails with ErrProductInUse (the
// restrict foreign key guarantees references never dangle); deleting an
// unknown product fails with ErrProductNotFound.
func (r *ProductRepository) Delete(ctx context.Context, id models.ProductID) error {
	return r.db.WithTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`DELETE FROM products WHERE brand = $1 AND model = $2 AND variant = $3`,
			id.Brand, id.Model, id.Variant,
		)
		if err != nil {
			if code, _ := pgErrCode(err); code == pgForeignKeyViolation {
				return fmt.Errorf("%w: %s", invdomain.ErrProductInUse, id)
			}
			return wrapStorage("delete product", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return wrapStorage("delete product", err)
		}
		if n == 0 {
			return fmt.Errorf("%w: %s", invdomain.ErrProductNotFound, id)
		}
		return nil
	})
}

// List returns a page of the catalog ordered by identity, with default
// features attached, plus the total product count.
func (r *ProductRepository) List(ctx context.Context, opts repositories.QueryOpts) ([]*models.Product, int, error) {
	opts = clampOpts(opts)
	var products []*models.Product
	var total int

	err := r.db.WithReadTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx,
			`SELECT brand, model, variant FROM products
			 ORDER BY brand, model, variant
			 LIMIT $1 OFFSET $2`,
			opts.Limit, opts.Offset,
		)
		if err != nil {
			return wrapStorage("query products", err)
		}
		byID := make(map[models.ProductID]*models.Product)
		for rows.Next() {
			var id models.ProductID
			if err := rows.Scan(&id.Brand, &id.Model, &id.Variant); err != nil {
				rows.Close()
				return wrapStorage("scan product", err)
			}
			p := models.NewProduct(id)
			byID[id] = p
			products = append(products, p)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return wrapStorage("iterate products", err)
		}

		frows, err := tx.QueryContext(ctx,
			`SELECT brand, model, variant, name, value FROM product_features`,
		)
		if err != nil {
			return wrapStorage("query product features", err)
		}
		defer frows.Close() //nolint:errcheck
		for frows.Next() {
			var id models.ProductID
			var name, value string
			if err := frows.Scan(&id.Brand, &id.Model, &id.Variant, &name, &value); err != nil {
				return wrapStorage("scan product feature", err)
			}
			if p, ok := byID[id]; ok {
				p.Features[name] = value
			}
		}
		if err := frows.Err(); err != nil {
			return wrapStorage("iterate product features", err)
		}

		if err := tx.QueryRowContext(ctx, `SELECT count(*) FROM products`).Scan(&total); err != nil {
			return wrapStorage("count products", err)
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}
