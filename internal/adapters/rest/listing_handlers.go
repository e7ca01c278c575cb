package rest

import (
	"net/http"

	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
)

type ListingHandler struct {
	createUC usecases_port.CreateListingUseCase
	updateUC usecases_port.UpdateListingUseCase
	statusUC usecases_port.ChangeListingStatusUseCase
	deleteUC usecases_port.DeleteListingUseCase
	getUC    usecases_port.GetListingUseCase
}

func NewListingHandler(
	createUC usecases_port.CreateListingUseCase,
	updateUC usecases_port.UpdateListingUseCase,
	statusUC usecases_port.ChangeListingStatusUseCase,
	deleteUC usecases_port.DeleteListingUseCase,
	getUC usecases_port.GetListingUseCase,
) *ListingHandler {
	return &ListingHandler{
		createUC: createUC,
		updateUC: updateUC,
		statusUC: statusUC,
		deleteUC: deleteUC,
		getUC:    getUC,
	}
}

// GetListing обрабатывает GET /api/v1/listings/{listingID}
func (h *ListingHandler) GetListing(w http.ResponseWriter, r *http.Request) {
	listing, err := h.getUC.ByID(r.Context(), chi.URLParam(r, "listingID"))
	if err != nil {
		writeDomainError(w, r, err, "Failed to get listing")
		return
	}
	RespondWithJSON(w, http.StatusOK, toListingResponse(*listing))
}

// GetListingBySlug обрабатывает GET /api/v1/listings/by-slug/{slug}
func (h *ListingHandler) GetListingBySlug(w http.ResponseWriter, r *http.Request) {
	listing, err := h.getUC.BySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeDomainError(w, r, err, "Failed to get listing")
		return
	}
	RespondWithJSON(w, http.StatusOK, toListingResponse(*listing))
}

// CreateListing обрабатывает POST /api/v1/listings
func (h *ListingHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
	var req ListingRequest
	if err := decodeAndValidate(r, w, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	listing, err := h.createUC.Execute(r.Context(), req.toDomain())
	if err != nil {
		writeDomainError(w, r, err, "Failed to create listing")
		return
	}
	w.Header().Set("Location", "/api/v1/listings/"+listing.ID)
	RespondWithJSON(w, http.StatusCreated, toListingResponse(*listing))
}

// UpdateListing обрабатывает PUT /api/v1/listings/{listingID}
func (h *ListingHandler) UpdateListing(w http.ResponseWriter, r *http.Request) {
	var req ListingRequest
	if err := decodeAndValidate(r, w, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	listing, err := h.updateUC.Execute(r.Context(), chi.URLParam(r, "listingID"), req.toDomain())
	if err != nil {
		writeDomainError(w, r, err, "Failed to update listing")
		return
	}
	RespondWithJSON(w, http.StatusOK, toListingResponse(*listing))
}

// ChangeStatus обрабатывает PATCH /api/v1/listings/{listingID}/status
func (h *ListingHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	var req StatusChangeRequest
	if err := decodeAndValidate(r, w, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	listing, err := h.statusUC.Execute(r.Context(), chi.URLParam(r, "listingID"), domain.ListingStatus(req.Status))
	if err != nil {
		writeDomainError(w, r, err, "Failed to change listing status")
		return
	}
	RespondWithJSON(w, http.StatusOK, toListingResponse(*listing))
}

// DeleteListing обрабатывает DELETE /api/v1/listings/{listingID}
func (h *ListingHandler) DeleteListing(w http.ResponseWriter, r *http.Request) {
	if err := h.deleteUC.Execute(r.Context(), chi.URLParam(r, "listingID")); err != nil {
		writeDomainError(w, r, err, "Failed to delete listing")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
