package wire

import (
	"clinic-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCatalog(r chi.Router, catalogHandler *adaptor.CatalogHandler) {
	// ==================== PUBLIC ROUTES ====================
	// GET /service - list service names
	r.Get("/service", catalogHandler.ListServices)

	// GET /available?date= - per-service open and booked slots for a day
	r.Get("/available", catalogHandler.GetAvailable)
}
