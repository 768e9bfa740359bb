// Package api exposes the tracker facade over JSON/HTTP with bearer
// token sessions.
package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	apperrors "github.com/louisbranch/tfc.fitness/internal/platform/errors"
	"github.com/louisbranch/tfc.fitness/internal/tracker"
)

// Server routes HTTP requests to the tracker facade.
type Server struct {
	svc    *tracker.Service
	tokens *TokenIssuer
}

// New builds the API server over a facade and token issuer.
func New(svc *tracker.Service, tokens *TokenIssuer) *Server {
	return &Server{svc: svc, tokens: tokens}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/register", s.handleRegister)
	mux.HandleFunc("POST /api/login", s.handleLogin)
	mux.HandleFunc("GET /api/check-username", s.handleCheckUsername)
	mux.HandleFunc("GET /api/check-email", s.handleCheckEmail)
	mux.HandleFunc("GET /api/me", s.withAuth(s.handleMe))
	mux.HandleFunc("GET /api/users/{id}", s.withAuth(s.handleGetUser))
	mux.HandleFunc("GET /api/workouts", s.withAuth(s.handleListWorkouts))
	mux.HandleFunc("POST /api/workouts", s.withAuth(s.handleSaveWorkout))
	mux.HandleFunc("GET /api/muscle-groups", s.handleMuscleGroups)
	mux.HandleFunc("GET /api/exercises", s.handleExercises)
	return mux
}

// withAuth verifies the bearer token and hands the user id to the handler.
func (s *Server) withAuth(next func(http.ResponseWriter, *http.Request, int64)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			writeError(w, ErrInvalidToken)
			return
		}
		userID, err := s.tokens.Verify(raw)
		if err != nil {
			writeError(w, err)
			return
		}
		next(w, r, userID)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("write response: %v", err)
	}
}

// writeError maps typed domain errors onto HTTP statuses; anything untyped
// is reported as an opaque internal failure.
func writeError(w http.ResponseWriter, err error) {
	var domainErr *apperrors.Error
	if !errors.As(err, &domainErr) {
		log.Printf("unhandled api error: %v", err)
		domainErr = apperrors.New(apperrors.CodeUnknown, "internal error")
	}
	writeJSON(w, domainErr.Code.HTTPStatus(), errorResponse{
		Error: errorBody{Code: string(domainErr.Code), Message: domainErr.Message},
	})
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperrors.New(apperrors.CodeInvalidArgument, "invalid JSON body")
	}
	return nil
}
