// Copyright (c) 2026 Skyreport. All rights reserved.
// Author: minh.phamduc.vn@gmail.com

package report

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/phamduc/skyreport/internal/platform/respond"
	"github.com/phamduc/skyreport/pkg/pagination"
)

// Handler implements the history report HTTP endpoint.
//
// The listing is a pure read over the search history; there is no service
// layer because there are no business rules between the handler and the
// repository.
type Handler struct {
	entries EntryRepository
}

// NewHandler constructs a new [Handler] with its repository dependency.
func NewHandler(entries EntryRepository) *Handler {
	return &Handler{entries: entries}
}

// Routes returns a [chi.Router] configured with report routes.
//
// # Endpoints
//   - GET / : Paginated shared search history (protected).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)

	return router
}

// list handles GET /api/v1/report requests.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	entries, total, err := handler.entries.List(request.Context(), params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, entries, pagination.NewMeta(params.Page, params.Limit, total))
}
