package services

import (
	"context"
	"encoding/json"
	"fmt"

	pkgcache "github.com/ghuser/inventree/pkg/cache"
	invdomain "github.com/ghuser/inventree/services/inventory/domain"
	"github.com/ghuser/inventree/services/inventory/domain/models"
	"github.com/ghuser/inventree/services/inventory/domain/repositories"
	domainsvcs "github.com/ghuser/inventree/services/inventory/domain/services"
)

// ItemService orchestrates mutations and reads of the item containment tree.
// Audit entries and event publishing are handled by the repository layer
// inside the mutation transaction (outbox pattern). Subtree reads are served
// from Redis cache when available; mutations invalidate the touched entries
// directly and a worker invalidates the rest from the mutation events.
type ItemService struct {
	repo  repositories.ItemRepository
	audit repositories.AuditRepository
	cache *pkgcache.SubtreeCache

	registry *models.Registry
}

// NewItemService returns an ItemService wired with the given repositories,
// cache and feature registry. The cache may be nil.
func NewItemService(repo repositories.ItemRepository, audit repositories.AuditRepository, cache *pkgcache.SubtreeCache, registry *models.Registry) *ItemService {
	return &ItemService{repo: repo, audit: audit, cache: cache, registry: registry}
}

// Add validates and persists a new subtree, optionally attached under parent.
// The whole subtree is created in one transaction; the repository publishes
// an ItemMutatedEvent with action C.
func (s *ItemService) Add(ctx context.Context, root *models.Item, parent *models.ItemCode, actor string) error {
	if err := domainsvcs.ValidateSubtree(root, s.registry); err != nil {
		return fmt.Errorf("%w: %w", invdomain.ErrValidation, err)
	}
	if err := s.repo.AddSubtree(ctx, root, parent, actor); err != nil {
		return fmt.Errorf("add subtree: %w", err)
	}
	if parent != nil {
		s.invalidate(ctx, parent.String())
	}
	return nil
}

// Get retrieves an item with its full descendant subtree and the combined
// feature view filled on every node, using a read-through cache pattern:
//  1. Check Redis cache first.
//  2. On cache miss (or cache error), load from Postgres and resolve
//     features against product defaults from the same snapshot.
//  3. Asynchronously warm the cache with the resolved subtree.
func (s *ItemService) Get(ctx context.Context, code models.ItemCode) (*models.Item, error) {
	if s.cache != nil {
		if payload, err := s.cache.Get(ctx, code.String()); err == nil {
			var cached models.Item
			if err := json.Unmarshal(payload, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	root, defaults, err := s.repo.GetSubtree(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("get subtree: %w", err)
	}
	domainsvcs.Annotate(root, func(id models.ProductID) models.Features {
		return defaults[id]
	})

	if s.cache != nil {
		if payload, err := json.Marshal(root); err == nil {
			key := root.Code.String()
			go func() {
				_ = s.cache.Set(context.Background(), key, payload)
			}()
		}
	}
	return root, nil
}

// Move reparents the identified subtree; nil newParent moves it to the top
// level. Cycle detection happens in the repository transaction.
func (s *ItemService) Move(ctx context.Context, code models.ItemCode, newParent *models.ItemCode, actor string) error {
	if err := s.repo.MoveSubtree(ctx, code, newParent, actor); err != nil {
		return fmt.Errorf("move subtree: %w", err)
	}
	if newParent != nil {
		s.invalidate(ctx, code.String(), newParent.String())
	} else {
		s.invalidate(ctx, code.String())
	}
	return nil
}

// Delete removes the item and its whole subtree, returning the removed node
// count.
func (s *ItemService) Delete(ctx context.Context, code models.ItemCode, actor string) (int, error) {
	removed, err := s.repo.DeleteSubtree(ctx, code, actor)
	if err != nil {
		return 0, fmt.Errorf("delete subtree: %w", err)
	}
	s.invalidate(ctx, code.String())
	return removed, nil
}

// SetFeature validates the value against the feature registry and sets it as
// an own feature of the item.
func (s *ItemService) SetFeature(ctx context.Context, code models.ItemCode, name, value, actor string) error {
	if err := s.registry.Validate(name, value); err != nil {
		return fmt.Errorf("%w: %w", invdomain.ErrValidation, err)
	}
	if err := s.repo.SetFeature(ctx, code, name, value, actor); err != nil {
		return fmt.Errorf("set feature: %w", err)
	}
	s.invalidate(ctx, code.String())
	return nil
}

// RemoveFeature removes an own feature; the linked product's default for the
// same name becomes visible again in the combined view. Removing a feature
// the item does not carry is a no-op.
func (s *ItemService) RemoveFeature(ctx context.Context, code models.ItemCode, name, actor string) error {
	if err := s.repo.RemoveFeature(ctx, code, name, actor); err != nil {
		return fmt.Errorf("remove feature: %w", err)
	}
	s.invalidate(ctx, code.String())
	return nil
}

// SetProduct links the item to a product identity, or unlinks it when id is
// nil.
func (s *ItemService) SetProduct(ctx context.Context, code models.ItemCode, id *models.ProductID, actor string) error {
	if err := s.repo.SetProduct(ctx, code, id, actor); err != nil {
		return fmt.Errorf("set product: %w", err)
	}
	s.invalidate(ctx, code.String())
	return nil
}

// History returns the audit entries recorded for the item, newest first,
// plus the total count. The item must exist; history of a deleted item is
// still addressable by code.
func (s *ItemService) History(ctx context.Context, code models.ItemCode, opts repositories.QueryOpts) ([]models.AuditEntry, int, error) {
	entries, total, err := s.audit.History(ctx, code.String(), opts)
	if err != nil {
		return nil, 0, fmt.Errorf("item history: %w", err)
	}
	return entries, total, nil
}

// invalidate drops cached subtrees best-effort. Ancestor entries are handled
// by the worker, which sees the full path in the mutation event.
func (s *ItemService) invalidate(ctx context.Context, codes ...string) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Delete(ctx, codes...)
}
