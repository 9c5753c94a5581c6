package api

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/kaushalendrasingh/portfolio-backend/database"
	"github.com/kaushalendrasingh/portfolio-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, assets *services.AssetStore) *routeHandlers {
	return &routeHandlers{
		projectHandler: newProjectHandler(db.ProjectRepo(), assets),
		profileHandler: newProfileHandler(db.ProfileRepo()),
		inquiryHandler: newInquiryHandler(db.InquiryRepo(), assets),
	}
}

// health reports service liveness.
func (h *routeHandlers) health() http.HandlerFunc {
	responder := NewResponder(log.With().Str("handlerName", "health").Logger())
	return func(w http.ResponseWriter, r *http.Request) {
		responder.WriteJSON(w, map[string]bool{"ok": true})
	}
}
