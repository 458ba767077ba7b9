package http

import (
	"github.com/amm-ar03/Point-of-Sale-System/internal/usecase"
	"github.com/amm-ar03/Point-of-Sale-System/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(catalogUC usecase.CatalogUC, cartUC usecase.CartUC,
	lookupUC usecase.LookupUC, orderUC usecase.OrderUC) {
	r.router.Route("/api/v1", func(v1 chi.Router) {
		registerCatalogRoutes(v1, NewCatalogHandler(catalogUC, r.logger))
		registerCartRoutes(v1, NewCartHandler(cartUC, lookupUC, r.logger))
		registerLookupRoutes(v1, NewLookupHandler(lookupUC, r.logger))
		registerOrderRoutes(v1, NewOrderHandler(orderUC, r.logger))
	})
}

func registerCatalogRoutes(router chi.Router, h *CatalogHandler) {
	router.Route("/catalog", func(c chi.Router) {
		c.Get("/", h.listProducts)
		c.Post("/refresh", h.refresh)
		c.Post("/products", h.createProduct)
		c.Delete("/products/{id}", h.deleteProduct)
	})
}

func registerCartRoutes(router chi.Router, h *CartHandler) {
	router.Route("/cart", func(c chi.Router) {
		c.Get("/", h.view)
		c.Delete("/", h.clear)
		c.Post("/items", h.addItem)
		c.Post("/scan", h.scanAdd)
		c.Post("/items/{id}/increment", h.increment)
		c.Post("/items/{id}/decrement", h.decrement)
		c.Delete("/items/{id}", h.removeItem)
	})
}

func registerLookupRoutes(router chi.Router, h *LookupHandler) {
	router.Route("/lookup", func(l chi.Router) {
		l.Get("/", h.current)
		l.Post("/search", h.search)
		l.Post("/commit", h.commit)
		l.Post("/cancel", h.cancel)
	})
}

func registerOrderRoutes(router chi.Router, h *OrderHandler) {
	router.Route("/orders", func(o chi.Router) {
		o.Get("/", h.history)
		o.Post("/", h.submit)
	})
}
