package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/edutrack/edutrack-backend-go/internal/domain/application"
	"github.com/edutrack/edutrack-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ApplicationHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type applicationHandlerImpl struct {
	applicationService application.ApplicationService
}

func NewApplicationHandler(applicationService application.ApplicationService) ApplicationHandler {
	return &applicationHandlerImpl{
		applicationService: applicationService,
	}
}

// Apply implements ApplicationHandler.
func (h *applicationHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	var req application.ApplyRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Apply decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	// Call service
	submitted, err := h.applicationService.Apply(r.Context(), req)
	if err != nil {
		slog.Error("Apply service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Signup application submitted")
	response.Created(w, "Application submitted successfully", submitted)
}

// List implements ApplicationHandler.
func (h *applicationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter application.ListFilter
	if v := r.URL.Query().Get("status"); v != "" {
		filter.Status = &v
	}

	// Validate DTO
	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	applications, err := h.applicationService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, applications)
}

// Approve implements ApplicationHandler.
func (h *applicationHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Application id is required", nil)
		return
	}

	result, err := h.applicationService.Approve(r.Context(), id)
	if err != nil {
		slog.Error("Approve application service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Signup application approved", "application_id", id)
	response.SuccessWithMessage(w, "Application approved", result)
}

// Reject implements ApplicationHandler.
func (h *applicationHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	var req application.RejectRequest

	// Decode JSON, tolerating an empty body for a reasonless rejection
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		slog.Error("Reject decode error", "error", err)
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
	if err := h.applicationService.Reject(r.Context(), req); err != nil {
		slog.Error("Reject application service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Signup application rejected", "application_id", req.ID)
	response.SuccessWithMessage(w, "Application rejected", nil)
}
