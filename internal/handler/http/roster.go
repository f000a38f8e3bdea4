package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/edutrack/edutrack-backend-go/internal/domain/roster"
	"github.com/edutrack/edutrack-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type RosterHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	ListByClass(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	DeleteClass(w http.ResponseWriter, r *http.Request)
}

type rosterHandlerImpl struct {
	rosterService roster.RosterService
}

func NewRosterHandler(rosterService roster.RosterService) RosterHandler {
	return &rosterHandlerImpl{
		rosterService: rosterService,
	}
}

// List implements RosterHandler.
func (h *rosterHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var entries []roster.EntryResponse
	var err error
	if class := r.URL.Query().Get("class"); class != "" {
		entries, err = h.rosterService.GetClassRoster(r.Context(), class)
	} else {
		entries, err = h.rosterService.GetRoster(r.Context())
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// ListByClass implements RosterHandler.
func (h *rosterHandlerImpl) ListByClass(w http.ResponseWriter, r *http.Request) {
	class := chi.URLParam(r, "class")
	if class == "" {
		response.BadRequest(w, "Class is required", nil)
		return
	}

	entries, err := h.rosterService.GetClassRoster(r.Context(), class)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// Create implements RosterHandler.
func (h *rosterHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req roster.CreateEntryRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create roster entry decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	// Call service
	entry, err := h.rosterService.AddStudent(r.Context(), req)
	if err != nil {
		slog.Error("Create roster entry service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Student added to roster", entry)
}

// Update implements RosterHandler.
func (h *rosterHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req roster.UpdateEntryRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update roster entry decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	// Validate DTO
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	// Call service
	entry, err := h.rosterService.UpdateStudent(r.Context(), req)
	if err != nil {
		slog.Error("Update roster entry service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Roster entry updated", entry)
}

// Delete implements RosterHandler.
func (h *rosterHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Roster entry id is required", nil)
		return
	}

	if err := h.rosterService.RemoveStudent(r.Context(), id); err != nil {
		slog.Error("Delete roster entry service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Roster entry deleted", nil)
}

// DeleteClass implements RosterHandler.
func (h *rosterHandlerImpl) DeleteClass(w http.ResponseWriter, r *http.Request) {
	class := chi.URLParam(r, "class")
	if class == "" {
		response.BadRequest(w, "Class is required", nil)
		return
	}

	result, err := h.rosterService.RemoveClass(r.Context(), class)
	if err != nil {
		slog.Error("Delete class roster service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Class roster deleted", result)
}
