package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kaushalendrasingh/portfolio-backend/database"
	"github.com/kaushalendrasingh/portfolio-backend/errs"
	"github.com/kaushalendrasingh/portfolio-backend/metrics"
	"github.com/kaushalendrasingh/portfolio-backend/models"
	"github.com/kaushalendrasingh/portfolio-backend/services"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type inquiryHandler struct {
	responder   Responder
	logger      zerolog.Logger
	validate    *validator.Validate
	inquiryRepo *database.InquiryRepo
	assets      *services.AssetStore
}

func newInquiryHandler(inquiryRepo *database.InquiryRepo, assets *services.AssetStore) inquiryHandler {
	logger := log.With().Str("handlerName", "inquiryHandler").Logger()

	return inquiryHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		validate:    validator.New(),
		inquiryRepo: inquiryRepo,
		assets:      assets,
	}
}

// createInquiry records a visitor contact submission with an optional
// attachment. The attachment is staged on disk before the row insert; the two
// steps are not jointly atomic, so a failed insert discards the staged file.
func (h inquiryHandler) createInquiry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(services.MaxInquiryAttachmentSize); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed multipart body"))
			return
		}

		name := strings.TrimSpace(r.FormValue("name"))
		email := strings.TrimSpace(r.FormValue("email"))
		company := strings.TrimSpace(r.FormValue("company"))
		message := strings.TrimSpace(r.FormValue("message"))

		if name == "" {
			h.responder.WriteError(w, errs.NewInvalidFieldError("name", "is required"))
			return
		}
		if message == "" {
			h.responder.WriteError(w, errs.NewInvalidFieldError("message", "is required"))
			return
		}
		if err := h.validate.Var(email, "required,email"); err != nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("email", "must be a valid email address"))
			return
		}

		var attachmentPath *string
		if file, header, err := r.FormFile("attachment"); err == nil {
			file.Close()
			saved, err := h.assets.SaveInquiryAttachment(header)
			if err != nil {
				metrics.IncrementAssetUpload("inquiry", "rejected")
				h.responder.WriteError(w, err)
				return
			}
			metrics.IncrementAssetUpload("inquiry", "success")
			attachmentPath = &saved
		} else if !errors.Is(err, http.ErrMissingFile) {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed attachment"))
			return
		}

		inquiry := models.Inquiry{
			Name:           name,
			Email:          email,
			Message:        message,
			AttachmentPath: attachmentPath,
		}
		if company != "" {
			inquiry.Company = &company
		}

		if err := h.inquiryRepo.Add(&inquiry); err != nil {
			if attachmentPath != nil {
				h.assets.Remove(*attachmentPath)
			}
			h.responder.WriteError(w, wrapDatabaseError("create inquiry", "inquiry", err))
			return
		}
		metrics.IncrementInquiryCreated()

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, inquiry)
	}
}

// listInquiries returns one page of the inquiry log with totals. The search
// term matches name, email, company, and message case-insensitively.
func (h inquiryHandler) listInquiries() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := positiveQueryParam(r, "page", 1)
		pageSize := positiveQueryParam(r, "page_size", defaultPageSize)
		if pageSize > maxPageSize {
			pageSize = maxPageSize
		}
		search := r.URL.Query().Get("search")

		items, total, err := h.inquiryRepo.Search(search, page, pageSize)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("search inquiries", "inquiries", err))
			return
		}

		totalPages := 0
		if total > 0 {
			totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
		}

		h.responder.WriteJSON(w, InquiryListResponse{
			Items:      items,
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
		})
	}
}

// positiveQueryParam reads an integer query parameter, falling back to the
// default when absent, malformed, or below 1.
func positiveQueryParam(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
