package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/ghuser/inventree/pkg/database"
	invdomain "github.com/ghuser/inventree/services/inventory/domain"
	"github.com/ghuser/inventree/services/inventory/domain/models"
	"github.com/ghuser/inventree/services/inventory/domain/repositories"
	domainservices "github.com/ghuser/inventree/services/inventory/domain/services"
)

const (
	defaultSearchLimit = 50
	maxSearchLimit     = 200
)

// clampOpts applies the shared paging bounds: a zero or negative limit falls
// back to the default page size, oversized limits are capped, negative
// offsets reset to zero.
func clampOpts(opts repositories.QueryOpts) repositories.QueryOpts {
	if opts.Limit <= 0 {
		opts.Limit = defaultSearchLimit
	}
	if opts.Limit > maxSearchLimit {
		opts.Limit = maxSearchLimit
	}
	if opts.Offset < 0 {
		opts.Offset = 0
	}
	return opts
}

// SearchRepository implements repositories.SearchRepository: conjunctive
// predicate queries over the item tree, evaluated against each item's
// combined feature view, with stable offset/limit paging.
type SearchRepository struct {
	db       *database.Database
	registry *models.Registry
}

// NewSearchRepository returns a SearchRepository backed by the given pool.
// The registry decides whether a sort feature orders numerically or
// lexically.
func NewSearchRepository(db *database.Database, registry *models.Registry) *SearchRepository {
	return &SearchRepository{db: db, registry: registry}
}

// Search executes the query and returns one page of matches, each carrying
// its full descendant subtree with combined features annotated. Matches are
// reported independently: a match nested under another match still appears.
func (r *SearchRepository) Search(ctx context.Context, query repositories.SearchQuery, opts repositories.QueryOpts) (*repositories.Page, error) {
	if query.Empty() {
		return nil, invdomain.ErrEmptySearch
	}
	if query.SortFeature != "" {
		if _, ok := r.registry.Lookup(query.SortFeature); !ok {
			return nil, fmt.Errorf("%w: unknown sort feature %q", invdomain.ErrValidation, query.SortFeature)
		}
	}
	for _, f := range query.Filters {
		if _, ok := r.registry.Lookup(f.Name); !ok {
			return nil, fmt.Errorf("%w: unknown filter feature %q", invdomain.ErrValidation, f.Name)
		}
	}

	opts = clampOpts(opts)

	numericSort := false
	if def, ok := r.registry.Lookup(query.SortFeature); ok {
		numericSort = def.Kind == models.KindInteger
	}
	matchSQL, matchArgs, countSQL, countArgs := buildSearchSQL(query, opts, numericSort)

	page := &repositories.Page{Limit: opts.Limit, Offset: opts.Offset}
	err := r.db.WithReadTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, countSQL, countArgs...).Scan(&page.Total); err != nil {
			return wrapStorage("count matches", err)
		}

		rows, err := tx.QueryContext(ctx, matchSQL, matchArgs...)
		if err != nil {
			return wrapStorage("query matches", err)
		}
		var codes []string
		for rows.Next() {
			var c string
			if err := rows.Scan(&c); err != nil {
				rows.Close()
				return wrapStorage("scan match", err)
			}
			codes = append(codes, c)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return wrapStorage("iterate matches", err)
		}

		for _, code := range codes {
			root, defaults, err := loadSubtree(ctx, tx, models.ItemCode(code))
			if err != nil {
				return wrapStorage("load match subtree", err)
			}
			if root == nil {
				continue
			}
			domainservices.Annotate(root, func(id models.ProductID) models.Features {
				return defaults[id]
			})
			page.Items = append(page.Items, root)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return page, nil
}

// combinedValueExpr builds the SQL expression for one feature of the
// combined view: the item's own value when present, else the linked
// product's default. The feature name is bound at the given placeholder.
func combinedValueExpr(placeholder int) string {
	return fmt.Sprintf(`COALESCE(
		(SELECT f.value FROM item_features f WHERE f.item_code = i.code AND f.name = $%d),
		(SELECT pf.value FROM product_features pf
		 WHERE pf.brand = i.brand AND pf.model = i.model AND pf.variant = i.variant AND pf.name = $%d))`,
		placeholder, placeholder)
}

// buildSearchSQL renders the match and count statements for a query with
// their respective argument lists (the count statement has no sort or
// paging arguments). Ordering is by the sort feature's combined value
// (numerically for integer features), then code ascending, so paging is
// stable for fixed predicates and fixed data.
func buildSearchSQL(query repositories.SearchQuery, opts repositories.QueryOpts, numericSort bool) (matchSQL string, matchArgs []any, countSQL string, countArgs []any) {
	var prefix string
	var conds []string
	var args []any

	if query.Ancestor != nil {
		prefix = `WITH RECURSIVE anc AS (
	SELECT code FROM items WHERE lower(code) = lower($1)
	UNION ALL
	SELECT i.code FROM items i JOIN anc ON i.parent_code = anc.code
)
`
		args = append(args, query.Ancestor.String())
		conds = append(conds, `i.code IN (SELECT code FROM anc)`)
	}

	if query.CodePattern != "" {
		args = append(args, query.CodePattern)
		conds = append(conds, fmt.Sprintf(`i.code ILIKE $%d`, len(args)))
	}
	for _, f := range query.Filters {
		args = append(args, f.Name)
		expr := combinedValueExpr(len(args))
		args = append(args, f.Value)
		conds = append(conds, fmt.Sprintf(`%s = $%d`, expr, len(args)))
	}

	where := strings.Join(conds, " AND ")
	countSQL = fmt.Sprintf(`%sSELECT count(*) FROM items i WHERE %s`, prefix, where)
	countArgs = append(countArgs, args...)

	orderBy := `lower(i.code) ASC`
	if query.SortFeature != "" {
		args = append(args, query.SortFeature)
		sortExpr := combinedValueExpr(len(args))
		if numericSort {
			sortExpr = "(" + sortExpr + ")::numeric"
		}
		direction := "ASC"
		if query.SortDescending {
			direction = "DESC"
		}
		orderBy = fmt.Sprintf("%s %s NULLS LAST, lower(i.code) ASC", sortExpr, direction)
	}

	args = append(args, opts.Limit, opts.Offset)
	matchSQL = fmt.Sprintf(`%sSELECT i.code FROM items i WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d`,
		prefix, where, orderBy, len(args)-1, len(args))

	return matchSQL, args, countSQL, countArgs
}
