// Package postgres implements the inventory repository contracts against
// PostgreSQL. The tree is stored as a parent_code adjacency list; subtrees,
// ancestor paths and cycle checks are computed with recursive CTEs inside
// the transaction that needs them.
package postgres

import (
	"context"
	"database/sql"

	"github.com/ghuser/inventree/services/inventory/domain/models"
)

// querier is satisfied by both *sql.DB and *sql.Tx so read helpers work
// inside and outside transactions.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// subtreeCTE selects the node identified by $1 (case-insensitively) plus all
// its descendants, with depth 0 at the requested root.
const subtreeCTE = `WITH RECURSIVE subtree AS (
	SELECT code, parent_code, brand, model, variant, created_at, 0 AS depth
	FROM items WHERE lower(code) = lower($1)
	UNION ALL
	SELECT i.code, i.parent_code, i.brand, i.model, i.variant, i.created_at, s.depth + 1
	FROM items i JOIN subtree s ON i.parent_code = s.code
)`

// lockSubtreeCodes collects the codes of the subtree rooted at code, deepest
// first, and takes FOR UPDATE row locks on the underlying items rows. The
// locks keep concurrent moves from detaching a descendant between the
// collection and the mutation that follows it in the same transaction.
func lockSubtreeCodes(ctx context.Context, q querier, code string) ([]string, error) {
	rows, err := q.QueryContext(ctx,
		subtreeCTE+` SELECT i.code FROM items i JOIN subtree s ON i.code = s.code
		 ORDER BY s.depth DESC, lower(i.code) FOR UPDATE OF i`,
		code,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var codes []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		codes = append(codes, c)
	}
	return codes, rows.Err()
}

// ancestorCTE walks from the node identified by $1 up to the tree root,
// depth 0 at the node itself.
const ancestorCTE = `WITH RECURSIVE up AS (
	SELECT code, parent_code, 0 AS depth
	FROM items WHERE lower(code) = lower($1)
	UNION ALL
	SELECT i.code, i.parent_code, u.depth + 1
	FROM items i JOIN up u ON u.parent_code = i.code
)`

// itemRow is one row of the items table as selected by subtreeCTE.
type itemRow struct {
	code      string
	parent    sql.NullString
	brand     sql.NullString
	model     sql.NullString
	variant   sql.NullString
	createdAt sql.NullTime
	depth     int
}

// lookupCode resolves a code to its stored spelling and parent.
// Returns sql.ErrNoRows when the code is unknown.
func lookupCode(ctx context.Context, q querier, code models.ItemCode) (stored string, parent sql.NullString, err error) {
	err = q.QueryRowContext(ctx,
		`SELECT code, parent_code FROM items WHERE lower(code) = lower($1)`,
		code.String(),
	).Scan(&stored, &parent)
	return stored, parent, err
}

// loadPath returns the ancestor codes of the given stored code, tree root
// first, excluding the code itself.
func loadPath(ctx context.Context, q querier, code string) ([]models.ItemCode, error) {
	rows, err := q.QueryContext(ctx,
		ancestorCTE+` SELECT code FROM up WHERE depth > 0 ORDER BY depth DESC`,
		code,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var path []models.ItemCode
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		path = append(path, models.ItemCode(c))
	}
	return path, rows.Err()
}

// ancestorChain returns the node and all its ancestors (inclusive, any
// order) for cycle checks during a move.
func ancestorChain(ctx context.Context, q querier, code string) ([]string, error) {
	rows, err := q.QueryContext(ctx, ancestorCTE+` SELECT code FROM up`, code)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var chain []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		chain = append(chain, c)
	}
	return chain, rows.Err()
}

// loadSubtree loads the full subtree rooted at code: node rows, own
// features, and the default feature sets of every referenced product, all
// from the same querier (and therefore the same snapshot when q is a
// transaction). Returns (nil, nil, nil) when the code is unknown.
func loadSubtree(ctx context.Context, q querier, code models.ItemCode) (*models.Item, map[models.ProductID]models.Features, error) {
	rows, err := q.QueryContext(ctx,
		subtreeCTE+` SELECT code, parent_code, brand, model, variant, created_at, depth
		FROM subtree ORDER BY depth, lower(code)`,
		code.String(),
	)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close() //nolint:errcheck

	byCode := make(map[string]*models.Item)
	var root *models.Item
	var order []itemRow
	for rows.Next() {
		var r itemRow
		if err := rows.Scan(&r.code, &r.parent, &r.brand, &r.model, &r.variant, &r.createdAt, &r.depth); err != nil {
			return nil, nil, err
		}
		order = append(order, r)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}
	if len(order) == 0 {
		return nil, nil, nil
	}

	for _, r := range order {
		node := models.NewItem(models.ItemCode(r.code))
		if r.createdAt.Valid {
			node.CreatedAt = r.createdAt.Time
		}
		if r.brand.Valid {
			node.Product = &models.ProductID{
				Brand:   r.brand.String,
				Model:   r.model.String,
				Variant: r.variant.String,
			}
		}
		byCode[r.code] = node
		if r.depth == 0 {
			root = node
			if r.parent.Valid {
				p := models.ItemCode(r.parent.String)
				node.Parent = &p
			}
		} else {
			parent := byCode[r.parent.String]
			p := parent.Code
			node.Parent = &p
			parent.Children = append(parent.Children, node)
		}
	}

	if err := loadOwnFeatures(ctx, q, code, byCode); err != nil {
		return nil, nil, err
	}
	defaults, err := loadProductDefaults(ctx, q, code)
	if err != nil {
		return nil, nil, err
	}

	// Derive paths from the root's ancestors plus the in-tree parent chain.
	rootPath, err := loadPath(ctx, q, root.Code.String())
	if err != nil {
		return nil, nil, err
	}
	root.Path = rootPath
	root.Walk(func(node *models.Item) bool {
		for _, child := range node.Children {
			child.Path = append(append([]models.ItemCode{}, node.Path...), node.Code)
		}
		return true
	})

	return root, defaults, nil
}

// loadOwnFeatures attaches item-level features to every node of the subtree.
func loadOwnFeatures(ctx context.Context, q querier, code models.ItemCode, byCode map[string]*models.Item) error {
	rows, err := q.QueryContext(ctx,
		subtreeCTE+` SELECT f.item_code, f.name, f.value
		FROM item_features f JOIN subtree s ON f.item_code = s.code`,
		code.String(),
	)
	if err != nil {
		return err
	}
	defer rows.Close() //nolint:errcheck

	for rows.Next() {
		var itemCode, name, value string
		if err := rows.Scan(&itemCode, &name, &value); err != nil {
			return err
		}
		if node, ok := byCode[itemCode]; ok {
			node.OwnFeatures[name] = value
		}
	}
	return rows.Err()
}

// loadProductDefaults collects the default feature sets of every product
// referenced by any node of the subtree.
func loadProductDefaults(ctx context.Context, q querier, code models.ItemCode) (map[models.ProductID]models.Features, error) {
	rows, err := q.QueryContext(ctx,
		subtreeCTE+` SELECT DISTINCT pf.brand, pf.model, pf.variant, pf.name, pf.value
		FROM subtree s
		JOIN product_features pf
		  ON pf.brand = s.brand AND pf.model = s.model AND pf.variant = s.variant`,
		code.String(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	defaults := make(map[models.ProductID]models.Features)
	for rows.Next() {
		var id models.ProductID
		var name, value string
		if err := rows.Scan(&id.Brand, &id.Model, &id.Variant, &name, &value); err != nil {
			return nil, err
		}
		if defaults[id] == nil {
			defaults[id] = models.Features{}
		}
		defaults[id][name] = value
	}
	return defaults, rows.Err()
}
