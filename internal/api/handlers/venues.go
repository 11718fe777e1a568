package handlers

import (
	"errors"
	"net/http"

	"github.com/eventhub/server/internal/api/respond"
	"github.com/eventhub/server/internal/domain/venues"
)

type VenuesHandler struct {
	Service *venues.Service
}

func NewVenuesHandler(service *venues.Service) *VenuesHandler {
	return &VenuesHandler{Service: service}
}

func (h *VenuesHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.List(r.Context())
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, respond.KindServerError, "An error occurred while fetching venues", err)
		return
	}
	respond.JSON(w, http.StatusOK, list)
}

func (h *VenuesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !requireValidID(w, r, id, "Invalid venue ID format") {
		return
	}

	venue, err := h.Service.GetByID(r.Context(), id)
	if errors.Is(err, venues.ErrNotFound) {
		respond.Error(w, r, http.StatusNotFound, respond.KindNotFound, "Venue not found", nil)
		return
	}
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, respond.KindServerError, "An error occurred while fetching the venue", err)
		return
	}
	respond.JSON(w, http.StatusOK, venue)
}

func (h *VenuesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input venues.CreateVenueInput
	if !decodeBody(w, r, &input, venues.Messages) {
		return
	}

	if errs := venues.ValidateCreate(input); len(errs) > 0 {
		respond.FieldErrors(w, r, errs)
		return
	}

	venue, err := h.Service.Create(r.Context(), input)
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, respond.KindServerError, "An error occurred while creating the venue", err)
		return
	}
	respond.JSON(w, http.StatusCreated, venue)
}

func (h *VenuesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !requireValidID(w, r, id, "Invalid venue ID format") {
		return
	}

	var input venues.UpdateVenueInput
	if !decodeBody(w, r, &input, venues.Messages) {
		return
	}

	if errs := venues.ValidateUpdate(input); len(errs) > 0 {
		respond.FieldErrors(w, r, errs)
		return
	}

	matched, err := h.Service.Update(r.Context(), id, input)
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, respond.KindServerError, "An error occurred while updating the venue", err)
		return
	}
	if matched == 0 {
		respond.Error(w, r, http.StatusNotFound, respond.KindNotFound, "Venue not found", nil)
		return
	}
	respond.NoContent(w)
}

func (h *VenuesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !requireValidID(w, r, id, "Invalid venue ID format") {
		return
	}

	deleted, err := h.Service.Delete(r.Context(), id)
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, respond.KindServerError, "An error occurred while deleting the venue", err)
		return
	}
	if deleted == 0 {
		respond.Error(w, r, http.StatusNotFound, respond.KindNotFound, "Venue not found", nil)
		return
	}
	respond.NoContent(w)
}
