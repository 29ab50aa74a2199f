// Package httpapi браузерный JSON API сервиса бронирования.
package httpapi

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Crystallized21/spacecase/internal/auth"
	"github.com/Crystallized21/spacecase/internal/calendar"
	"github.com/Crystallized21/spacecase/internal/clients"
	"github.com/Crystallized21/spacecase/internal/config"
	"github.com/Crystallized21/spacecase/internal/service"
	"github.com/Crystallized21/spacecase/internal/telemetry"
)

var bookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
	Name: "spacecase_bookings_created_total",
	Help: "Number of room bookings successfully created.",
})

type Server struct {
	cfg          *config.Config
	jwtPublicKey *rsa.PublicKey
	users        *service.UserService
	bookings     *service.BookingService
	rooms        *service.RoomService
	slots        *service.SlotService
	clerk        *clients.ClerkClient
	logger       *zap.Logger
}

func NewServer(
	cfg *config.Config,
	users *service.UserService,
	bookings *service.BookingService,
	rooms *service.RoomService,
	slots *service.SlotService,
	clerk *clients.ClerkClient,
	logger *zap.Logger,
) (*Server, error) {
	var publicKey *rsa.PublicKey
	if cfg.ClerkJWTPublicKey != "" {
		key, err := auth.ParseRSAPublicKey(cfg.ClerkJWTPublicKey)
		if err != nil {
			return nil, err
		}
		publicKey = key
	}

	return &Server{
		cfg:          cfg,
		jwtPublicKey: publicKey,
		users:        users,
		bookings:     bookings,
		rooms:        rooms,
		slots:        slots,
		clerk:        clerk,
		logger:       logger,
	}, nil
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/term", s.handleTerm)
		r.With(s.authMiddleware).Get("/users/{userId}", s.handleGetUser)
		r.Post("/webhooks/clerk", s.handleClerkWebhook)

		r.Route("/bookings", func(r chi.Router) {
			r.Get("/", s.handleListBookings)
			r.With(s.authMiddleware).Post("/", s.handleCreateBooking)
			r.Get("/view", s.handleBookingsView)
			r.Get("/commons", s.handleCommons)
			r.Get("/rooms", s.handleRooms)
			r.With(s.authMiddleware).Get("/subjects", s.handleSubjects)
			r.Get("/slots", s.handleSlots)
		})
	})

	return r
}

// Auth

type clerkIDKey struct{}

// authMiddleware проверяет Bearer JWT Clerk и кладёт subject в контекст
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.jwtPublicKey == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		token := bearerToken(r.Header.Get("Authorization"))
		if token == "" {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		clerkID, err := auth.ParseToken(s.jwtPublicKey, token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), clerkIDKey{}, clerkID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func clerkIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(clerkIDKey{}).(string)
	return id
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && header[:len(prefix)] == prefix {
		return header[len(prefix):]
	}
	return ""
}

// Handlers

// handleTerm отдаёт четверть и неделю для даты (по умолчанию сегодня)
func (s *Server) handleTerm(w http.ResponseWriter, r *http.Request) {
	date := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid date")
			return
		}
		date = parsed
	}

	tw := calendar.TermAndWeek(date)
	if !tw.Known {
		writeJSON(w, http.StatusOK, map[string]any{"term": "N/A", "weekInTerm": "?"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"term": tw.Term, "weekInTerm": tw.WeekInTerm})
}

func (s *Server) handleCommons(w http.ResponseWriter, r *http.Request) {
	names, err := s.rooms.Commons(r.Context())
	if err != nil {
		s.logger.Error("Failed to fetch commons", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	writeJSON(w, http.StatusOK, names)
}

func (s *Server) handleRooms(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	common := query.Get("common")
	if common == "" {
		writeError(w, http.StatusBadRequest, "Missing common")
		return
	}

	period, _ := strconv.Atoi(query.Get("slot"))

	rooms, err := s.rooms.Rooms(r.Context(), common, query.Get("date"), period)
	if err != nil {
		if errors.Is(err, service.ErrCommonNotFound) {
			writeError(w, http.StatusNotFound, "Common not found")
			return
		}
		s.logger.Error("Failed to fetch rooms", zap.String("common", common), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to fetch rooms")
		return
	}

	writeJSON(w, http.StatusOK, rooms)
}

func (s *Server) handleSubjects(w http.ResponseWriter, r *http.Request) {
	lines, err := s.users.SubjectsForTeacher(r.Context(), clerkIDFromContext(r.Context()))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnauthenticated):
			writeError(w, http.StatusUnauthorized, "Unauthorized")
		case errors.Is(err, service.ErrTeacherNotFound):
			writeError(w, http.StatusNotFound, "User not found")
		default:
			s.logger.Error("Failed to fetch subjects", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to fetch subjects")
		}
		return
	}

	writeJSON(w, http.StatusOK, lines)
}

func (s *Server) handleSlots(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	line, _ := strconv.Atoi(query.Get("line"))

	slots := s.slots.Slots(r.Context(), service.SlotQuery{
		Day:    query.Get("day"),
		Room:   query.Get("room"),
		Common: query.Get("common"),
		Date:   query.Get("date"),
		Line:   line,
	})

	writeJSON(w, http.StatusOK, slots)
}

type createBookingRequest struct {
	Subject       int64  `json:"subject"`
	Line          int    `json:"line"`
	Common        string `json:"common"`
	Room          string `json:"room"`
	Date          string `json:"date"`
	Slot          int    `json:"slot"`
	Justification string `json:"justification"`
}

func (s *Server) handleCreateBooking(w http.ResponseWriter, r *http.Request) {
	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	booking, err := s.bookings.Create(r.Context(), clerkIDFromContext(r.Context()), service.CreateBookingInput{
		SubjectID:     req.Subject,
		Line:          req.Line,
		Common:        req.Common,
		Room:          req.Room,
		Date:          req.Date,
		Period:        req.Slot,
		Justification: req.Justification,
	})
	if err != nil {
		s.writeBookingError(w, err)
		return
	}

	bookingsCreated.Inc()

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Booking created successfully",
		"booking": booking,
	})
}

// writeBookingError раскладывает ошибки создания брони по статусам
func (s *Server) writeBookingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		writeError(w, http.StatusBadRequest, "Missing required fields")
	case errors.Is(err, service.ErrUnauthenticated):
		writeError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, service.ErrTeacherNotFound):
		writeError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, service.ErrCommonNotFound):
		writeError(w, http.StatusNotFound, "Common not found")
	case errors.Is(err, service.ErrRoomNotFound):
		writeError(w, http.StatusNotFound, "Room not found")
	case errors.Is(err, service.ErrSlotConflict):
		writeError(w, http.StatusConflict, "Slot already booked")
	default:
		s.logger.Error("Failed to create booking", zap.Error(err))
		telemetry.CaptureError(err, "bookings.insert", nil)
		writeError(w, http.StatusInternalServerError, "Failed to create booking")
	}
}

func (s *Server) handleListBookings(w http.ResponseWriter, r *http.Request) {
	views, err := s.bookings.List(r.Context(), r.URL.Query().Get("userId"))
	if err != nil {
		s.logger.Error("Failed to fetch bookings", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleBookingsView(w http.ResponseWriter, r *http.Request) {
	views, err := s.bookings.List(r.Context(), "")
	if err != nil {
		s.logger.Error("Failed to fetch bookings view", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Database query failed")
		return
	}
	writeJSON(w, http.StatusOK, views)
}

// handleGetUser проксирует профиль из Clerk на фронт
func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	user, err := s.clerk.GetUser(r.Context(), userID)
	if err != nil {
		s.logger.Error("Failed to fetch clerk user", zap.String("user_id", userID), zap.Error(err))
		telemetry.CaptureError(err, "clerk.users.get", map[string]any{"userId": userID})
		writeError(w, http.StatusInternalServerError, "Failed to fetch user")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"id":        user.ID,
		"firstName": user.FirstName,
		"lastName":  user.LastName,
		"imageUrl":  user.ImageURL,
		"email":     user.Email(),
	})
}

// Helpers

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
