// Copyright (c) 2026 Skyreport. All rights reserved.
// Author: minh.phamduc.vn@gmail.com

package weather

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/phamduc/skyreport/internal/platform/apperr"
	"github.com/phamduc/skyreport/internal/platform/ctxutil"
	"github.com/phamduc/skyreport/internal/platform/respond"
	"github.com/phamduc/skyreport/internal/platform/validate"
)

// Handler implements the weather lookup HTTP endpoint.
type Handler struct {
	weatherService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{weatherService: service}
}

// Routes returns a [chi.Router] configured with weather routes.
//
// # Endpoints
//   - GET /{city} : Current conditions for a city (protected).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/{city}", handler.search)

	return router
}

// search handles GET /api/v1/weather/{city} requests.
//
// The route is mounted behind the access gate, so the session claims are
// guaranteed present; the nil check below only guards against a wiring
// mistake that skipped the gate.
func (handler *Handler) search(writer http.ResponseWriter, request *http.Request) {
	// ── 1. Identity ───────────────────────────────────────────────────────

	claims := ctxutil.GetAccount(request.Context())
	if claims == nil {
		respond.Error(writer, request, apperr.Unauthorized("No token provided"))
		return
	}

	// ── 2. Boundary Validation ────────────────────────────────────────────

	city := chi.URLParam(request, "city")
	v := &validate.Validator{}
	v.Required("city", city).MaxLen("city", city, 100)
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 3. Application Execution ──────────────────────────────────────────

	payload, err := handler.weatherService.Search(request.Context(), claims.AccountID, city)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 4. Presentation Output ────────────────────────────────────────────

	// Relay the provider document byte-for-byte.
	respond.Raw(writer, payload)
}
