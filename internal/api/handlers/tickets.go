package handlers

import (
	"errors"
	"net/http"

	"github.com/eventhub/server/internal/api/respond"
	"github.com/eventhub/server/internal/domain/tickets"
)

type TicketsHandler struct {
	Service *tickets.Service
}

func NewTicketsHandler(service *tickets.Service) *TicketsHandler {
	return &TicketsHandler{Service: service}
}

func (h *TicketsHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.List(r.Context())
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, respond.KindServerError, "An error occurred while fetching tickets", err)
		return
	}
	respond.JSON(w, http.StatusOK, list)
}

func (h *TicketsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !requireValidID(w, r, id, "Invalid ticket ID format") {
		return
	}

	ticket, err := h.Service.GetByID(r.Context(), id)
	if errors.Is(err, tickets.ErrNotFound) {
		respond.Error(w, r, http.StatusNotFound, respond.KindNotFound, "Ticket not found", nil)
		return
	}
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, respond.KindServerError, "An error occurred while fetching the ticket", err)
		return
	}
	respond.JSON(w, http.StatusOK, ticket)
}

func (h *TicketsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input tickets.CreateTicketInput
	if !decodeBody(w, r, &input, tickets.Messages) {
		return
	}

	if errs := tickets.ValidateCreate(input); len(errs) > 0 {
		respond.FieldErrors(w, r, errs)
		return
	}

	ticket, err := h.Service.Create(r.Context(), input)
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, respond.KindServerError, "An error occurred while creating the ticket", err)
		return
	}
	respond.JSON(w, http.StatusCreated, ticket)
}

func (h *TicketsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !requireValidID(w, r, id, "Invalid ticket ID format") {
		return
	}

	var input tickets.UpdateTicketInput
	if !decodeBody(w, r, &input, tickets.Messages) {
		return
	}

	if errs := tickets.ValidateUpdate(input); len(errs) > 0 {
		respond.FieldErrors(w, r, errs)
		return
	}

	matched, err := h.Service.Update(r.Context(), id, input)
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, respond.KindServerError, "An error occurred while updating the ticket", err)
		return
	}
	if matched == 0 {
		respond.Error(w, r, http.StatusNotFound, respond.KindNotFound, "Ticket not found", nil)
		return
	}
	respond.NoContent(w)
}

func (h *TicketsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !requireValidID(w, r, id, "Invalid ticket ID format") {
		return
	}

	deleted, err := h.Service.Delete(r.Context(), id)
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, respond.KindServerError, "An error occurred while deleting the ticket", err)
		return
	}
	if deleted == 0 {
		respond.Error(w, r, http.StatusNotFound, respond.KindNotFound, "Ticket not found", nil)
		return
	}
	respond.NoContent(w)
}
