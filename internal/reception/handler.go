// AngelaMos | 2026
// handler.go

package reception

import (
	"encoding/json"
	"net/http"
	"strconv"

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
	authenticator, clientOnly func(http.Handler) http.Handler,
) {
	r.Group(func(r chi.Router) {
		r.Use(authenticator, clientOnly)

		r.Post("/receptions", h.Open)
		r.Post("/products", h.AddProduct)
		r.Delete("/pvz/{pvzID}/delete_last_product", h.RemoveLastProduct)
		r.Post("/pvz/{pvzID}/close_last_reception", h.Close)
	})
}

func (h *Handler) Open(w http.ResponseWriter, r *http.Request) {
	var req OpenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	rec, err := h.service.Open(r.Context(), req.PVZID)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.Created(w, ToReceptionResponse(rec))
}

func (h *Handler) AddProduct(w http.ResponseWriter, r *http.Request) {
	var req AddProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	product, err := h.service.AddProduct(r.Context(), req.ReceptionID, req.Type)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.Created(w, ToProductResponse(product))
}

func (h *Handler) RemoveLastProduct(w http.ResponseWriter, r *http.Request) {
	pvzID, ok := parsePVZID(w, r)
	if !ok {
		return
	}

	product, err := h.service.RemoveLastProduct(r.Context(), pvzID)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, ToProductResponse(product))
}

func (h *Handler) Close(w http.ResponseWriter, r *http.Request) {
	pvzID, ok := parsePVZID(w, r)
	if !ok {
		return
	}

	rec, err := h.service.Close(r.Context(), pvzID)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, ToReceptionResponse(rec))
}

// parsePVZID reads the pvzID path segment; a false return means the
// response is already written.
func parsePVZID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "pvzID")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		core.BadRequest(w, "pvzID must be a positive integer")
		return 0, false
	}

	return id, true
}
