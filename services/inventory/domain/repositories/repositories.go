package repositories

import (
	"context"

	"github.com/ghuser/inventree/services/inventory/domain/models"
)

// QueryOpts contains pagination parameters for list queries.
type QueryOpts struct {
	Limit  int // Maximum number of records to return
	Offset int // Number of records to skip
}

// ItemRepository is the persistence contract for the item tree. The domain
// layer owns this interface; infrastructure implements it.
//
// Every mutation runs inside exactly one transaction that also writes the
// matching audit entries; on any failure nothing of the operation is
// observable afterwards.
type ItemRepository interface {
	// AddSubtree inserts root and every nested child atomically, optionally
	// attached under parent. One audit entry per created node.
	AddSubtree(ctx context.Context, root *models.Item, parent *models.ItemCode, actor string) error

	// MoveSubtree reparents the identified node (nil newParent moves it to
	// the top level). The cycle-freedom invariant is re-verified inside the
	// same transaction that performs the reparenting.
	MoveSubtree(ctx context.Context, code models.ItemCode, newParent *models.ItemCode, actor string) error

	// DeleteSubtree removes the node and all descendants atomically and
	// returns how many nodes were removed. One audit entry per removed node.
	DeleteSubtree(ctx context.Context, code models.ItemCode, actor string) (int, error)

	// GetSubtree returns the item with its full descendant subtree plus the
	// default feature sets of every product referenced inside it, loaded
	// from one snapshot. Combining them is the resolver's job.
	GetSubtree(ctx context.Context, code models.ItemCode) (*models.Item, map[models.ProductID]models.Features, error)

	// SetFeature and RemoveFeature mutate own features only, never the
	// linked product's defaults.
	SetFeature(ctx context.Context, code models.ItemCode, name, value, actor string) error
	RemoveFeature(ctx context.Context, code models.ItemCode, name, actor string) error

	// SetProduct links the item to a product identity, or unlinks it when
	// id is nil.
	SetProduct(ctx context.Context, code models.ItemCode, id *models.ProductID, actor string) error

	// Exists reports whether any item uses the code, case-insensitively.
	Exists(ctx context.Context, code models.ItemCode) (bool, error)
}

// ProductRepository is the persistence contract for the product catalog.
// Lookup is by (brand, model, variant) value equality.
type ProductRepository interface {
	Add(ctx context.Context, product *models.Product) error
	Get(ctx context.Context, id models.ProductID) (*models.Product, error)

	// Delete removes the catalog entry. Deleting a product that items still
	// reference fails with the product-in-use error; references can never
	// dangle.
	Delete(ctx context.Context, id models.ProductID) error

	List(ctx context.Context, opts QueryOpts) ([]*models.Product, int, error)
}

// SearchQuery is the conjunctive predicate set accepted by the search
// engine. At least one predicate must be present.
type SearchQuery struct {
	// CodePattern matches codes case-insensitively with SQL-style wildcards
	// (% and _).
	CodePattern string

	// Ancestor restricts matches to the subtree rooted at this code,
	// inclusive of the ancestor itself.
	Ancestor *models.ItemCode

	// Filters are feature equality constraints evaluated against each
	// item's combined feature view.
	Filters []models.Feature

	// SortFeature orders results by this feature's combined value; ties and
	// unsorted queries fall back to code ascending so paging stays stable.
	SortFeature    string
	SortDescending bool
}

// Empty reports whether the query has no predicate at all.
func (q SearchQuery) Empty() bool {
	return q.CodePattern == "" && q.Ancestor == nil && len(q.Filters) == 0
}

// Page is one page of search results. Every matching item is reported
// independently (a match nested under another match still appears) and
// carries its full descendant subtree.
type Page struct {
	Items  []*models.Item `json:"items"`
	Total  int            `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// SearchRepository executes bounded predicate queries over the item tree.
type SearchRepository interface {
	Search(ctx context.Context, query SearchQuery, opts QueryOpts) (*Page, error)
}

// AuditRepository is the read side of the append-only audit log. Writes
// happen inside the item repository's mutation transactions and are not
// exposed here; entries are never updated or deleted.
type AuditRepository interface {
	// History returns the audit entries recorded for one item code, newest
	// first, plus the total count.
	History(ctx context.Context, code string, opts QueryOpts) ([]models.AuditEntry, int, error)
}
