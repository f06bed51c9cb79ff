package routes

import (
	"github.com/shashiranjanraj/slopestock/app/controllers"
	"github.com/shashiranjanraj/slopestock/app/services"
	"github.com/shashiranjanraj/slopestock/config"
	"github.com/shashiranjanraj/slopestock/pkg/metrics"
	"github.com/shashiranjanraj/slopestock/pkg/router"
)

// RegisterAPI mounts the catalog API under /api, the Prometheus endpoint,
// and the static client at /. The static mount goes last so API routes win.
func RegisterAPI(r *router.Router, service *services.ProductService) {
	products := controllers.NewProductController(service)

	api := r.Group("/api")
	api.Get("/products", "products.index", products.Index)
	api.Get("/products/{id}", "products.show", products.Show)
	api.Post("/products", "products.store", products.Store)
	api.Put("/products/{id}", "products.update", products.Update)
	api.Delete("/products/{id}", "products.destroy", products.Destroy)

	r.HandleFunc("/metrics", metrics.Handler())

	r.Static("/", config.StaticDir())
}
