package handlers

import (
	"errors"
	"net/http"

	"github.com/eventhub/server/internal/api/respond"
	"github.com/eventhub/server/internal/domain/users"
)

type UsersHandler struct {
	Service *users.Service
}

func NewUsersHandler(service *users.Service) *UsersHandler {
	return &UsersHandler{Service: service}
}

func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.List(r.Context())
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, respond.KindServerError, "An error occurred while fetching users", err)
		return
	}
	respond.JSON(w, http.StatusOK, list)
}

func (h *UsersHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !requireValidID(w, r, id, "Invalid user ID format") {
		return
	}

	user, err := h.Service.GetByID(r.Context(), id)
	if errors.Is(err, users.ErrNotFound) {
		respond.Error(w, r, http.StatusNotFound, respond.KindNotFound, "User not found", nil)
		return
	}
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, respond.KindServerError, "An error occurred while fetching the user", err)
		return
	}
	respond.JSON(w, http.StatusOK, user)
}

func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input users.CreateUserInput
	if !decodeBody(w, r, &input, users.Messages) {
		return
	}

	if errs := users.ValidateCreate(input); len(errs) > 0 {
		respond.FieldErrors(w, r, errs)
		return
	}

	user, err := h.Service.Create(r.Context(), input)
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, respond.KindServerError, "An error occurred while creating the user", err)
		return
	}
	respond.JSON(w, http.StatusCreated, user)
}

func (h *UsersHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !requireValidID(w, r, id, "Invalid user ID format") {
		return
	}

	var input users.UpdateUserInput
	if !decodeBody(w, r, &input, users.Messages) {
		return
	}

	if errs := users.ValidateUpdate(input); len(errs) > 0 {
		respond.FieldErrors(w, r, errs)
		return
	}

	matched, err := h.Service.Update(r.Context(), id, input)
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, respond.KindServerError, "An error occurred while updating the user", err)
		return
	}
	if matched == 0 {
		respond.Error(w, r, http.StatusNotFound, respond.KindNotFound, "User not found", nil)
		return
	}
	respond.NoContent(w)
}

func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !requireValidID(w, r, id, "Invalid user ID format") {
		return
	}

	deleted, err := h.Service.Delete(r.Context(), id)
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, respond.KindServerError, "An error occurred while deleting the user", err)
		return
	}
	if deleted == 0 {
		respond.Error(w, r, http.StatusNotFound, respond.KindNotFound, "User not found", nil)
		return
	}
	respond.NoContent(w)
}
