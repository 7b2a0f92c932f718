package handler

import (
	"encoding/json"
	"net/http"

	"roomly/internal/rooms/service"
	httputil "roomly/pkg/http"
	"roomly/pkg/logger"
	"roomly/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type roomCreatedResponse struct {
	Message string     `json:"message"`
	Room    model.Room `json:"room"`
}

type bookingCreatedResponse struct {
	Message string        `json:"message"`
	Booking model.Booking `json:"booking"`
}

type BookingHandler struct {
	service service.BookingService
	log     *logger.Logger
}

func NewBookingHandler(service service.BookingService, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

func (h *BookingHandler) CreateRoom(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var room model.Room
	if err := json.NewDecoder(r.Body).Decode(&room); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "CreateRoom", "error", writeErr)
		}
		return
	}

	if err := h.service.CreateRoom(r.Context(), &room); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "CreateRoom", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, roomCreatedResponse{
		Message: "Room created successfully",
		Room:    room,
	}); err != nil {
		h.log.Error("failed to write created response", "handler", "CreateRoom", "error", err)
	}
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var booking model.Booking
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "CreateBooking", "error", writeErr)
		}
		return
	}

	if err := h.service.CreateBooking(r.Context(), &booking); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "CreateBooking", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, bookingCreatedResponse{
		Message: "Room booked successfully",
		Booking: booking,
	}); err != nil {
		h.log.Error("failed to write created response", "handler", "CreateBooking", "error", err)
	}
}

func (h *BookingHandler) ListRooms(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	rooms, err := h.service.ListRoomsWithBookings(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "ListRooms", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, rooms); err != nil {
		h.log.Error("failed to write success response", "handler", "ListRooms", "error", err)
	}
}

func (h *BookingHandler) ListCustomers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	customers, err := h.service.ListCustomers(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "ListCustomers", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, customers); err != nil {
		h.log.Error("failed to write success response", "handler", "ListCustomers", "error", err)
	}
}

func (h *BookingHandler) ListCustomerBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	history, err := h.service.ListCustomerBookingHistory(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "ListCustomerBookings", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, history); err != nil {
		h.log.Error("failed to write success response", "handler", "ListCustomerBookings", "error", err)
	}
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/rooms", h.CreateRoom)
	router.POST("/bookings", h.CreateBooking)
	router.GET("/rooms", h.ListRooms)
	router.GET("/customers", h.ListCustomers)
	router.GET("/customer-bookings", h.ListCustomerBookings)
}
