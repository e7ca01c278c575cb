package rest

import (
	"net/http"

	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
)

// LocationHandler - каскадный справочник локаций. Неизвестный родитель дает пустой список, а не 404.
type LocationHandler struct {
	locationsUC usecases_port.GetLocationsUseCase
}

func NewLocationHandler(locationsUC usecases_port.GetLocationsUseCase) *LocationHandler {
	return &LocationHandler{locationsUC: locationsUC}
}

func (h *LocationHandler) Countries(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, h.locationsUC.Countries(r.Context()))
}

func (h *LocationHandler) States(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, h.locationsUC.States(r.Context(), chi.URLParam(r, "country")))
}

// Cities: ?state= обязателен для стран со штатами
func (h *LocationHandler) Cities(w http.ResponseWriter, r *http.Request) {
	options := h.locationsUC.Cities(r.Context(), chi.URLParam(r, "country"), r.URL.Query().Get("state"))
	RespondWithJSON(w, http.StatusOK, options)
}

func (h *LocationHandler) Districts(w http.ResponseWriter, r *http.Request) {
	options := h.locationsUC.Districts(r.Context(), chi.URLParam(r, "country"), chi.URLParam(r, "city"))
	RespondWithJSON(w, http.StatusOK, options)
}

// Cascade обрабатывает GET /api/v1/locations/cascade?country=&state=&city=&district=
func (h *LocationHandler) Cascade(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	path := domain.LocationPath{
		Country:  q.Get("country"),
		State:    q.Get("state"),
		City:     q.Get("city"),
		District: q.Get("district"),
	}
	RespondWithJSON(w, http.StatusOK, toCascadeResponse(h.locationsUC.Cascade(r.Context(), path)))
}
