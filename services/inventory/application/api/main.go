package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/inventree/pkg/app"
	"github.com/ghuser/inventree/services/inventory/application/handlers"
	appsvcs "github.com/ghuser/inventree/services/inventory/application/services"
)

// InventoryRoutes registers all inventory endpoints on the provided chi router.
func InventoryRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			r.Post("/", handlers.NewPostItemsHandler(svcs).Execute)
			r.Route("/{code}", func(r chi.Router) {
				r.Get("/", handlers.NewGetItemHandler(svcs).Execute)
				r.Delete("/", handlers.NewDeleteItemHandler(svcs).Execute)
				r.Put("/parent", handlers.NewPutItemParentHandler(svcs).Execute)
				r.Put("/features/{name}", handlers.NewPutItemFeatureHandler(svcs).Execute)
				r.Delete("/features/{name}", handlers.NewDeleteItemFeatureHandler(svcs).Execute)
				r.Put("/product", handlers.NewPutItemProductHandler(svcs).Execute)
				r.Get("/history", handlers.NewGetItemHistoryHandler(svcs).Execute)
			})
		})
		r.Route("/products", func(r chi.Router) {
			r.Post("/", handlers.NewPostProductsHandler(svcs).Execute)
			r.Get("/", handlers.NewGetProductsHandler(svcs).Execute)
			r.Get("/{brand}/{model}", handlers.NewGetProductHandler(svcs).Execute)
			r.Delete("/{brand}/{model}", handlers.NewDeleteProductHandler(svcs).Execute)
			r.Get("/{brand}/{model}/{variant}", handlers.NewGetProductHandler(svcs).Execute)
			r.Delete("/{brand}/{model}/{variant}", handlers.NewDeleteProductHandler(svcs).Execute)
		})
		r.Get("/search", handlers.NewGetSearchHandler(svcs).Execute)
		r.Post("/bulk/add", handlers.NewPostBulkAddHandler(svcs).Execute)
	})
}
