package wire

import (
	"event-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCatalog(r chi.Router, catalogHandler *adaptor.CatalogHandler) {
	// Public catalog routes
	r.Get("/api/services/item/{id}", catalogHandler.GetServiceByID)
	r.Get("/api/services/{category}", catalogHandler.GetServices)
}
