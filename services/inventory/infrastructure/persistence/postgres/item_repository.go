package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/ghuser/inventree/pkg/database"
	"github.com/ghuser/inventree/pkg/events"
	invdomain "github.com/ghuser/inventree/services/inventory/domain"
	domainevents "github.com/ghuser/inventree/services/inventory/domain/events"
	"github.com/ghuser/inventree/services/inventory/domain/models"
)

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
// Every mutation runs inside one transaction that also writes the matching
// audit entries and publishes an ItemMutatedEvent through the outbox, so
// partial application is never observable.
type ItemRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewItemRepository returns an ItemRepository backed by the given pool and
// event bus. The bus may be nil (tests); events are then skipped.
func NewItemRepository(db *database.Database, bus *events.EventBus) *ItemRepository {
	return &ItemRepository{db: db, bus: bus}
}

// AddSubtree inserts root and its nested children atomically, optionally
// attached under parent. One audit entry is written per created node.
func (r *ItemRepository) AddSubtree(ctx context.Context, root *models.Item, parent *models.ItemCode, actor string) error {
	return r.db.WithTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		var parentStored sql.NullString
		if parent != nil {
			stored, _, err := lookupCode(ctx, tx, *parent)
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("%w: %q", invdomain.ErrParentNotFound, parent.String())
			}
			if err != nil {
				return wrapStorage("resolve parent", err)
			}
			parentStored = sql.NullString{String: stored, Valid: true}
		}

		if err := r.insertSubtree(ctx, tx, root, parentStored, actor); err != nil {
			return err
		}

		path, err := loadPath(ctx, tx, root.Code.String())
		if err != nil {
			return wrapStorage("load path", err)
		}
		return r.publishMutation(tx, models.AuditCreate, root.Code, path, nil, nil, actor)
	})
}

// insertSubtree inserts node and recurses into its children, writing one
// create audit entry per node.
func (r *ItemRepository) insertSubtree(ctx context.Context, tx *sql.Tx, node *models.Item, parent sql.NullString, actor string) error {
	var brand, model, variant any
	if node.Product != nil {
		brand, model, variant = node.Product.Brand, node.Product.Model, node.Product.Variant
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO items (code, parent_code, brand, model, variant)
		 VALUES ($1, $2, $3, $4, $5)`,
		node.Code.String(), parent, brand, model, variant,
	); err != nil {
		switch code, _ := pgErrCode(err); code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %q", invdomain.ErrDuplicateCode, node.Code.String())
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s", invdomain.ErrProductNotFound, node.Product)
		default:
			return wrapStorage("insert item", err)
		}
	}

	for _, name := range node.OwnFeatures.Names() {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO item_features (item_code, name, value) VALUES ($1, $2, $3)`,
			node.Code.String(), name, node.OwnFeatures[name],
		); err != nil {
			return wrapStorage("insert item feature", err)
		}
	}

	detail := map[string]string{}
	if parent.Valid {
		detail["parent"] = parent.String
	}
	if err := appendAudit(ctx, tx, models.NewAuditEntry(actor, node.Code, models.AuditCreate, detail)); err != nil {
		return err
	}

	self := sql.NullString{String: node.Code.String(), Valid: true}
	for _, child := range node.Children {
		if err := r.insertSubtree(ctx, tx, child, self, actor); err != nil {
			return err
		}
	}
	return nil
}

// MoveSubtree reparents the identified node. The cycle-freedom invariant is
// verified against the data as seen by this transaction, in the same
// transaction that performs the reparenting.
func (r *ItemRepository) MoveSubtree(ctx context.Context, code models.ItemCode, newParent *models.ItemCode, actor string) error {
	return r.db.WithTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		stored, oldParent, err := lookupCode(ctx, tx, code)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: %q", invdomain.ErrItemNotFound, code.String())
		}
		if err != nil {
			return wrapStorage("resolve item", err)
		}

		var parentStored sql.NullString
		if newParent != nil {
			target, _, err := lookupCode(ctx, tx, *newParent)
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("%w: %q", invdomain.ErrParentNotFound, newParent.String())
			}
			if err != nil {
				return wrapStorage("resolve new parent", err)
			}

			// The new parent must not be the moved node or any of its
			// descendants; equivalently, the moved node must not appear in
			// the new parent's inclusive ancestor chain.
			chain, err := ancestorChain(ctx, tx, target)
			if err != nil {
				return wrapStorage("load ancestor chain", err)
			}
			for _, ancestor := range chain {
				if strings.EqualFold(ancestor, stored) {
					return fmt.Errorf("%w: %q is inside the subtree of %q",
						invdomain.ErrCycle, newParent.String(), code.String())
				}
			}
			parentStored = sql.NullString{String: target, Valid: true}
		}

		oldPath, err := loadPath(ctx, tx, stored)
		if err != nil {
			return wrapStorage("load old path", err)
		}

		// The reparent changes the ancestor path of every node in the moved
		// subtree; the codes are needed for cache invalidation and the locks
		// pin the subtree against concurrent structural changes.
		subtree, err := lockSubtreeCodes(ctx, tx, stored)
		if err != nil {
			return wrapStorage("collect subtree", err)
		}

		if _, err := tx.ExecContext(ctx,
			`UPDATE items SET parent_code = $1 WHERE code = $2`,
			parentStored, stored,
		); err != nil {
			return wrapStorage("update parent", err)
		}

		detail := map[string]string{
			"old_parent": oldParent.String,
			"new_parent": parentStored.String,
		}
		entry := models.NewAuditEntry(actor, models.ItemCode(stored), models.AuditMove, detail)
		if err := appendAudit(ctx, tx, entry); err != nil {
			return err
		}

		path, err := loadPath(ctx, tx, stored)
		if err != nil {
			return wrapStorage("load path", err)
		}
		return r.publishMutation(tx, models.AuditMove, code, path, oldPath, subtree, actor)
	})
}

// DeleteSubtree removes the node and all descendants atomically, writing one
// audit entry per removed node (deepest first), and returns the removed
// node count.
func (r *ItemRepository) DeleteSubtree(ctx context.Context, code models.ItemCode, actor string) (int, error) {
	var removed int
	err := r.db.WithTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		// Row locks pin the collected set so a concurrent move cannot detach
		// a descendant between the collection and the cascading delete.
		codes, err := lockSubtreeCodes(ctx, tx, code.String())
		if err != nil {
			return wrapStorage("collect subtree", err)
		}
		if len(codes) == 0 {
			return fmt.Errorf("%w: %q", invdomain.ErrItemNotFound, code.String())
		}

		path, err := loadPath(ctx, tx, codes[len(codes)-1])
		if err != nil {
			return wrapStorage("load path", err)
		}

		entries := make([]models.AuditEntry, 0, len(codes))
		for _, c := range codes {
			entries = append(entries, models.NewAuditEntry(actor, models.ItemCode(c), models.AuditDelete, nil))
		}
		if err := appendAudit(ctx, tx, entries...); err != nil {
			return err
		}

		// Delete exactly the locked set so the removed count and the audit
		// rows always describe rows that actually went away. ON DELETE
		// CASCADE on item_features clears the feature rows.
		res, err := tx.ExecContext(ctx, `DELETE FROM items WHERE code = ANY($1)`, codes)
		if err != nil {
			return wrapStorage("delete subtree", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return wrapStorage("delete subtree", err)
		}
		if n == 0 {
			return fmt.Errorf("%w: %q", invdomain.ErrItemNotFound, code.String())
		}

		removed = int(n)
		return r.publishMutation(tx, models.AuditDelete, code, path, nil, codes, actor)
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// GetSubtree returns the item with its full descendant subtree and the
// default feature sets of every product referenced in it, read from one
// consistent snapshot.
func (r *ItemRepository) GetSubtree(ctx context.Context, code models.ItemCode) (*models.Item, map[models.ProductID]models.Features, error) {
	var root *models.Item
	var defaults map[models.ProductID]models.Features
	err := r.db.WithReadTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		var err error
		root, defaults, err = loadSubtree(ctx, tx, code)
		if err != nil {
			return wrapStorage("load subtree", err)
		}
		if root == nil {
			return fmt.Errorf("%w: %q", invdomain.ErrItemNotFound, code.String())
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return root, defaults, nil
}

// SetFeature sets or replaces one own feature. The linked product's defaults
// are never touched.
func (r *ItemRepository) SetFeature(ctx context.Context, code models.ItemCode, name, value, actor string) error {
	return r.db.WithTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		stored, _, err := lookupCode(ctx, tx, code)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: %q", invdomain.ErrItemNotFound, code.String())
		}
		if err != nil {
			return wrapStorage("resolve item", err)
		}

		var old sql.NullString
		err = tx.QueryRowContext(ctx,
			`SELECT value FROM item_features WHERE item_code = $1 AND name = $2`,
			stored, name,
		).Scan(&old)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return wrapStorage("read old value", err)
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO item_features (item_code, name, value) VALUES ($1, $2, $3)
			 ON CONFLICT (item_code, name) DO UPDATE SET value = EXCLUDED.value`,
			stored, name, value,
		); err != nil {
			return wrapStorage("upsert feature", err)
		}

		detail := map[string]string{"feature": name, "new": value}
		if old.Valid {
			detail["old"] = old.String
		}
		entry := models.NewAuditEntry(actor, models.ItemCode(stored), models.AuditFeatureSet, detail)
		if err := appendAudit(ctx, tx, entry); err != nil {
			return err
		}

		path, err := loadPath(ctx, tx, stored)
		if err != nil {
			return wrapStorage("load path", err)
		}
		return r.publishMutation(tx, models.AuditFeatureSet, code, path, nil, nil, actor)
	})
}

// RemoveFeature removes one own feature. Removing a feature the item does
// not carry is a no-op and writes no audit entry.
func (r *ItemRepository) RemoveFeature(ctx context.Context, code models.ItemCode, name, actor string) error {
	return r.db.WithTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		stored, _, err := lookupCode(ctx, tx, code)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: %q", invdomain.ErrItemNotFound, code.String())
		}
		if err != nil {
			return wrapStorage("resolve item", err)
		}

		var old sql.NullString
		err = tx.QueryRowContext(ctx,
			`DELETE FROM item_features WHERE item_code = $1 AND name = $2 RETURNING value`,
			stored, name,
		).Scan(&old)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return wrapStorage("delete feature", err)
		}

		detail := map[string]string{"feature": name, "old": old.String}
		entry := models.NewAuditEntry(actor, models.ItemCode(stored), models.AuditFeatureRemove, detail)
		if err := appendAudit(ctx, tx, entry); err != nil {
			return err
		}

		path, err := loadPath(ctx, tx, stored)
		if err != nil {
			return wrapStorage("load path", err)
		}
		return r.publishMutation(tx, models.AuditFeatureRemove, code, path, nil, nil, actor)
	})
}

// SetProduct links the item to a product identity, or unlinks it when id is
// nil. Linking to an unknown product fails.
func (r *ItemRepository) SetProduct(ctx context.Context, code models.ItemCode, id *models.ProductID, actor string) error {
	return r.db.WithTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		stored, _, err := lookupCode(ctx, tx, code)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: %q", invdomain.ErrItemNotFound, code.String())
		}
		if err != nil {
			return wrapStorage("resolve item", err)
		}

		var brand, model, variant any
		detail := map[string]string{}
		if id != nil {
			var exists bool
			if err := tx.QueryRowContext(ctx,
				`SELECT EXISTS (SELECT 1 FROM products WHERE brand = $1 AND model = $2 AND variant = $3)`,
				id.Brand, id.Model, id.Variant,
			).Scan(&exists); err != nil {
				return wrapStorage("check product", err)
			}
			if !exists {
				return fmt.Errorf("%w: %s", invdomain.ErrProductNotFound, id)
			}
			brand, model, variant = id.Brand, id.Model, id.Variant
			detail["brand"], detail["model"], detail["variant"] = id.Brand, id.Model, id.Variant
		} else {
			detail["unlinked"] = "true"
		}

		if _, err := tx.ExecContext(ctx,
			`UPDATE items SET brand = $1, model = $2, variant = $3 WHERE code = $4`,
			brand, model, variant, stored,
		); err != nil {
			return wrapStorage("update product link", err)
		}

		entry := models.NewAuditEntry(actor, models.ItemCode(stored), models.AuditProductLink, detail)
		if err := appendAudit(ctx, tx, entry); err != nil {
			return err
		}

		path, err := loadPath(ctx, tx, stored)
		if err != nil {
			return wrapStorage("load path", err)
		}
		return r.publishMutation(tx, models.AuditProductLink, code, path, nil, nil, actor)
	})
}

// Exists reports whether any item uses the code, case-insensitively.
func (r *ItemRepository) Exists(ctx context.Context, code models.ItemCode) (bool, error) {
	var exists bool
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM items WHERE lower(code) = lower($1))`,
		code.String(),
	).Scan(&exists)
	if err != nil {
		return false, wrapStorage("check code", err)
	}
	return exists, nil
}

// publishMutation publishes an ItemMutatedEvent within tx via the outbox so
// the event commits atomically with the mutation and its audit rows.
func (r *ItemRepository) publishMutation(tx *sql.Tx, action models.AuditAction, code models.ItemCode, path, previous []models.ItemCode, subtree []string, actor string) error {
	if r.bus == nil {
		return nil
	}
	event := domainevents.ItemMutatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		Action:     string(action),
		ItemCode:   code.String(),
		Subtree:    subtree,
		Actor:      actor,
		OccurredAt: time.Now().UTC(),
	}
	for _, p := range path {
		event.Path = append(event.Path, p.String())
	}
	for _, p := range previous {
		event.PreviousPath = append(event.PreviousPath, p.String())
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(domainevents.TopicItemMutated, msg)
}
