package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/edutrack/edutrack-backend-go/internal/domain/attendance"
	"github.com/edutrack/edutrack-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Mark(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	GetMyStats(w http.ResponseWriter, r *http.Request)
	GetMyCalendar(w http.ResponseWriter, r *http.Request)
	ListClasses(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter attendance.ListAttendanceFilter
	if v := r.URL.Query().Get("class"); v != "" {
		filter.Class = &v
	}
	if v := r.URL.Query().Get("roll_number"); v != "" {
		filter.RollNumber = &v
	}
	if v := r.URL.Query().Get("date"); v != "" {
		filter.Date = &v
	}

	records, err := h.attendanceService.ListAttendance(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// Mark implements AttendanceHandler.
func (h *attendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkAttendanceRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Mark attendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	// Call service
	result, err := h.attendanceService.MarkAttendance(r.Context(), req)
	if err != nil {
		slog.Error("Mark attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance marked successfully", result)
}

// Delete implements AttendanceHandler.
func (h *attendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Attendance record id is required", nil)
		return
	}

	if err := h.attendanceService.DeleteAttendance(r.Context(), id); err != nil {
		slog.Error("Delete attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance record deleted", nil)
}

// GetMyStats implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetMyStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.attendanceService.GetMyStats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// GetMyCalendar implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetMyCalendar(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	req := attendance.CalendarRequest{
		Month: int(now.Month()),
		Year:  now.Year(),
	}

	if v := r.URL.Query().Get("month"); v != "" {
		month, err := strconv.Atoi(v)
		if err != nil {
			response.HandleError(w, attendance.ErrInvalidCalendarMonth)
			return
		}
		req.Month = month
	}
	if v := r.URL.Query().Get("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "Invalid year", nil)
			return
		}
		req.Year = year
	}

	// Validate DTO
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	calendar, err := h.attendanceService.GetMyCalendar(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, calendar)
}

// ListClasses implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListClasses(w http.ResponseWriter, r *http.Request) {
	classes, err := h.attendanceService.ListClasses(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, classes)
}
