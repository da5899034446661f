// AngelaMos | 2026
// handler.go

package pvz

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/angelamos/pvz-backend/internal/core"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, moderatorOnly, anyRole func(http.Handler) http.Handler,
) {
	r.With(authenticator, moderatorOnly).Post("/pvz", h.Create)
	r.With(authenticator, anyRole).Get("/pvz", h.List)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	point, err := h.service.Create(r.Context(), req.City)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.Created(w, ToPickupPointResponse(point))
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	params := ListParams{
		Page:     parseIntQuery(r, "page", 1),
		PageSize: parseIntQuery(r, "page_size", defaultPageSize),
	}

	startDate, ok := parseDateQuery(w, r, "start_date")
	if !ok {
		return
	}
	endDate, ok := parseDateQuery(w, r, "end_date")
	if !ok {
		return
	}
	params.StartDate = startDate
	params.EndDate = endDate

	items, total, err := h.service.List(r.Context(), params)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	params.Normalize()
	core.Paginated(w, items, params.Page, params.PageSize, total)
}

func parseIntQuery(r *http.Request, key string, defaultVal int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}

	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}

	return parsed
}

// parseDateQuery accepts RFC 3339 or a bare date; an absent parameter
// leaves that bound open. A false return means the response is written.
func parseDateQuery(
	w http.ResponseWriter,
	r *http.Request,
	key string,
) (*time.Time, bool) {
	val := r.URL.Query().Get(key)
	if val == "" {
		return nil, true
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if parsed, err := time.Parse(layout, val); err == nil {
			return &parsed, true
		}
	}

	core.BadRequest(w, key+" must be an ISO 8601 datetime")
	return nil, false
}
