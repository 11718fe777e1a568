package handlers

import (
	"errors"
	"net/http"

	"github.com/eventhub/server/internal/api/respond"
	"github.com/eventhub/server/internal/domain/events"
)

type EventsHandler struct {
	Service *events.Service
}

func NewEventsHandler(service *events.Service) *EventsHandler {
	return &EventsHandler{Service: service}
}

func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.List(r.Context())
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, respond.KindServerError, "An error occurred while fetching events", err)
		return
	}
	respond.JSON(w, http.StatusOK, list)
}

func (h *EventsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !requireValidID(w, r, id, "Invalid event ID format") {
		return
	}

	event, err := h.Service.GetByID(r.Context(), id)
	if errors.Is(err, events.ErrNotFound) {
		respond.Error(w, r, http.StatusNotFound, respond.KindNotFound, "Event not found", nil)
		return
	}
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, respond.KindServerError, "An error occurred while fetching the event", err)
		return
	}
	respond.JSON(w, http.StatusOK, event)
}

func (h *EventsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input events.CreateEventInput
	if !decodeBody(w, r, &input, events.Messages) {
		return
	}

	if errs := events.ValidateCreate(input); len(errs) > 0 {
		respond.FieldErrors(w, r, errs)
		return
	}

	event, err := h.Service.Create(r.Context(), input)
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, respond.KindServerError, "An error occurred while creating the event", err)
		return
	}
	respond.JSON(w, http.StatusCreated, event)
}

func (h *EventsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !requireValidID(w, r, id, "Invalid event ID format") {
		return
	}

	var input events.UpdateEventInput
	if !decodeBody(w, r, &input, events.Messages) {
		return
	}

	if errs := events.ValidateUpdate(input); len(errs) > 0 {
		respond.FieldErrors(w, r, errs)
		return
	}

	matched, err := h.Service.Update(r.Context(), id, input)
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, respond.KindServerError, "An error occurred while updating the event", err)
		return
	}
	if matched == 0 {
		respond.Error(w, r, http.StatusNotFound, respond.KindNotFound, "Event not found", nil)
		return
	}
	respond.NoContent(w)
}

func (h *EventsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !requireValidID(w, r, id, "Invalid event ID format") {
		return
	}

	deleted, err := h.Service.Delete(r.Context(), id)
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, respond.KindServerError, "An error occurred while deleting the event", err)
		return
	}
	if deleted == 0 {
		respond.Error(w, r, http.StatusNotFound, respond.KindNotFound, "Event not found", nil)
		return
	}
	respond.NoContent(w)
}
