package handlers

import (
	"errors"
	"net/http"

	"github.com/eventhub/server/internal/api/respond"
	"github.com/eventhub/server/internal/domain/speakers"
)

type SpeakersHandler struct {
	Service *speakers.Service
}

func NewSpeakersHandler(service *speakers.Service) *SpeakersHandler {
	return &SpeakersHandler{Service: service}
}

func (h *SpeakersHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.List(r.Context())
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, respond.KindServerError, "An error occurred while fetching speakers", err)
		return
	}
	respond.JSON(w, http.StatusOK, list)
}

func (h *SpeakersHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !requireValidID(w, r, id, "Invalid speaker ID format") {
		return
	}

	speaker, err := h.Service.GetByID(r.Context(), id)
	if errors.Is(err, speakers.ErrNotFound) {
		respond.Error(w, r, http.StatusNotFound, respond.KindNotFound, "Speaker not found", nil)
		return
	}
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, respond.KindServerError, "An error occurred while fetching the speaker", err)
		return
	}
	respond.JSON(w, http.StatusOK, speaker)
}

func (h *SpeakersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input speakers.CreateSpeakerInput
	if !decodeBody(w, r, &input, speakers.Messages) {
		return
	}

	if errs := speakers.ValidateCreate(input); len(errs) > 0 {
		respond.FieldErrors(w, r, errs)
		return
	}

	speaker, err := h.Service.Create(r.Context(), input)
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, respond.KindServerError, "An error occurred while creating the speaker", err)
		return
	}
	respond.JSON(w, http.StatusCreated, speaker)
}

func (h *SpeakersHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !requireValidID(w, r, id, "Invalid speaker ID format") {
		return
	}

	var input speakers.UpdateSpeakerInput
	if !decodeBody(w, r, &input, speakers.Messages) {
		return
	}

	if errs := speakers.ValidateUpdate(input); len(errs) > 0 {
		respond.FieldErrors(w, r, errs)
		return
	}

	matched, err := h.Service.Update(r.Context(), id, input)
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, respond.KindServerError, "An error occurred while updating the speaker", err)
		return
	}
	if matched == 0 {
		respond.Error(w, r, http.StatusNotFound, respond.KindNotFound, "Speaker not found", nil)
		return
	}
	respond.NoContent(w)
}

func (h *SpeakersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !requireValidID(w, r, id, "Invalid speaker ID format") {
		return
	}

	deleted, err := h.Service.Delete(r.Context(), id)
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, respond.KindServerError, "An error occurred while deleting the speaker", err)
		return
	}
	if deleted == 0 {
		respond.Error(w, r, http.StatusNotFound, respond.KindNotFound, "Speaker not found", nil)
		return
	}
	respond.NoContent(w)
}
