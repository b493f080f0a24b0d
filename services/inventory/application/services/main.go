package services

import (
	"github.com/ghuser/inventree/pkg/app"
	"github.com/ghuser/inventree/pkg/cache"
	"github.com/ghuser/inventree/services/inventory/domain/models"
	"github.com/ghuser/inventree/services/inventory/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Item    *ItemService
	Product *ProductService
	Search  *SearchService
	Bulk    *BulkService
}

// New wires all inventory application services with infrastructure from the
// Application container. All services share one feature registry so every
// write path validates against the same vocabulary the search path sorts by.
func New(a *app.Application) *Services {
	registry := models.DefaultRegistry()
	itemRepo := postgres.NewItemRepository(a.Db, a.EventBus)
	productRepo := postgres.NewProductRepository(a.Db)
	searchRepo := postgres.NewSearchRepository(a.Db, registry)
	auditRepo := postgres.NewAuditRepository(a.Db)

	var subtreeCache *cache.SubtreeCache
	if a.Redis != nil {
		subtreeCache = cache.NewSubtreeCache(a.Redis)
	}

	return &Services{
		Item:    NewItemService(itemRepo, auditRepo, subtreeCache, registry),
		Product: NewProductService(productRepo, registry),
		Search:  NewSearchService(searchRepo),
		Bulk:    NewBulkService(a.TemporalClient),
	}
}
