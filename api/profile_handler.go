package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kaushalendrasingh/portfolio-backend/database"
	"github.com/kaushalendrasingh/portfolio-backend/errs"
	"github.com/kaushalendrasingh/portfolio-backend/models"
)

type profileHandler struct {
	responder   Responder
	logger      zerolog.Logger
	profileRepo *database.ProfileRepo
}

func newProfileHandler(profileRepo *database.ProfileRepo) profileHandler {
	logger := log.With().Str("handlerName", "profileHandler").Logger()

	return profileHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		profileRepo: profileRepo,
	}
}

// getProfile returns the singleton profile row, creating it with the default
// payload on first read.
func (h profileHandler) getProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := h.profileRepo.GetOrCreate()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("get profile", "profile", err))
			return
		}

		h.responder.WriteJSON(w, profile)
	}
}

// updateProfile applies the supplied fields onto the singleton row. Fields
// follow the same presence convention as project patches.
func (h profileHandler) updateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch models.ProfilePatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode profile patch body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		profile, err := h.profileRepo.Update(patch.Changes())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update profile", "profile", err))
			return
		}

		h.responder.WriteJSON(w, profile)
	}
}
